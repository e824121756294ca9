// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package runner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/domain/validation"
	"github.com/payglobal/ess-validator/app/domain/validation/catalog"
	"github.com/payglobal/ess-validator/app/domain/validation/runner"
	"github.com/payglobal/ess-validator/app/types"
)

type ruleFunc func(ctx context.Context, env *validation.Env, collector *results.Collector) error

func (f ruleFunc) Check(ctx context.Context, env *validation.Env, collector *results.Collector) error {
	return f(ctx, env, collector)
}

func passing(name string) catalog.Entry {
	return catalog.Entry{Name: name, Rule: ruleFunc(
		func(_ context.Context, _ *validation.Env, c *results.Collector) error {
			c.Add("cat", name, types.StatusPass, "ok")
			return nil
		})}
}

func env() *validation.Env {
	return &validation.Env{Facts: &types.HostFacts{}, Deployment: &types.DeploymentResult{}}
}

func TestRun_ExecutesRulesInOrder(t *testing.T) {
	cat := catalog.FromEntries(passing("first"), passing("second"), passing("third"))
	collector := results.NewCollector()

	engine := runner.NewRunner(config.DefaultSettings(), cat)
	require.NoError(t, engine.Run(context.Background(), env(), collector))

	list := collector.List()
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Check)
	assert.Equal(t, "second", list[1].Check)
	assert.Equal(t, "third", list[2].Check)
}

func TestRun_PanickingRuleIsContained(t *testing.T) {
	boom := catalog.Entry{Name: "boom", Rule: ruleFunc(
		func(_ context.Context, _ *validation.Env, _ *results.Collector) error {
			panic("rule exploded")
		})}

	cat := catalog.FromEntries(passing("before"), boom, passing("after"))
	collector := results.NewCollector()

	engine := runner.NewRunner(config.DefaultSettings(), cat)
	require.NoError(t, engine.Run(context.Background(), env(), collector))

	list := collector.List()
	require.Len(t, list, 3, "rules after the panic must still run")
	assert.Equal(t, "before", list[0].Check)
	assert.Equal(t, types.StatusWarning, list[1].Status)
	assert.Equal(t, config.CategorySelfCheck, list[1].Category)
	assert.Equal(t, "after", list[2].Check)
}

func TestRun_FailingRuleIsRecordedAsWarning(t *testing.T) {
	failing := catalog.Entry{Name: "flaky", Rule: ruleFunc(
		func(_ context.Context, _ *validation.Env, _ *results.Collector) error {
			return errors.New("dependency offline")
		})}

	cat := catalog.FromEntries(failing, passing("after"))
	collector := results.NewCollector()

	engine := runner.NewRunner(config.DefaultSettings(), cat)
	require.NoError(t, engine.Run(context.Background(), env(), collector))

	list := collector.List()
	require.Len(t, list, 2)
	assert.Equal(t, types.StatusWarning, list[0].Status)
	assert.Contains(t, list[0].Message, "dependency offline")
}

func TestRun_CancellationStopsBetweenRules(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cancelling := catalog.Entry{Name: "cancelling", Rule: ruleFunc(
		func(_ context.Context, _ *validation.Env, c *results.Collector) error {
			c.Add("cat", "cancelling", types.StatusPass, "ok")
			cancel()
			return nil
		})}

	cat := catalog.FromEntries(cancelling, passing("never-runs"))
	collector := results.NewCollector()

	engine := runner.NewRunner(config.DefaultSettings(), cat)
	err := engine.Run(ctx, env(), collector)

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, collector.List(), 1, "results collected before cancellation stay reportable")
}
