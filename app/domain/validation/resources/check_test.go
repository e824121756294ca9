// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resources_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/domain/validation"
	"github.com/payglobal/ess-validator/app/domain/validation/resources"
	"github.com/payglobal/ess-validator/app/types"
)

func f64(v float64) *float64 { return &v }

func i(v int) *int { return &v }

func runRule(t *testing.T, facts *types.HostFacts) *results.Collector {
	t.Helper()
	rule := resources.NewRule(context.Background(), config.DefaultSettings())
	collector := results.NewCollector()
	env := &validation.Env{Facts: facts, Deployment: &types.DeploymentResult{}}
	require.NoError(t, rule.Check(context.Background(), env, collector))
	return collector
}

func statusOf(t *testing.T, collector *results.Collector, check string) types.CheckStatus {
	t.Helper()
	for _, r := range collector.List() {
		if r.Check == check {
			return r.Status
		}
	}
	t.Fatalf("no result recorded for check %q", check)
	return ""
}

func TestCheck_AllResourcesSufficient(t *testing.T) {
	collector := runRule(t, &types.HostFacts{
		DiskFreeGB:      f64(120),
		MemoryGB:        f64(64),
		CoreCount:       i(8),
		AverageClockGHz: f64(3.2),
	})

	s := collector.Summary()
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 4, s.Pass)
}

func TestCheck_BoundaryEqualPasses(t *testing.T) {
	// meeting the minimum exactly is sufficient
	cfg := config.DefaultSettings()
	collector := runRule(t, &types.HostFacts{
		DiskFreeGB:      f64(cfg.Requirements.MinDiskFreeGB),
		MemoryGB:        f64(cfg.Requirements.MinMemoryGB),
		CoreCount:       i(cfg.Requirements.MinCores),
		AverageClockGHz: f64(cfg.Requirements.MinClockGHz),
	})

	assert.Equal(t, 4, collector.Summary().Pass)
	assert.Zero(t, collector.Summary().Fail)
}

func TestCheck_BelowThresholdFails(t *testing.T) {
	collector := runRule(t, &types.HostFacts{
		DiskFreeGB:      f64(1),
		MemoryGB:        f64(64),
		CoreCount:       i(2),
		AverageClockGHz: f64(3.2),
	})

	assert.Equal(t, types.StatusFail, statusOf(t, collector, config.CheckDiskSpace))
	assert.Equal(t, types.StatusFail, statusOf(t, collector, config.CheckCPUCores))
	assert.Equal(t, types.StatusPass, statusOf(t, collector, config.CheckMemory))

	// a FAIL message names both the measured and the required value
	for _, r := range collector.ByStatus(types.StatusFail) {
		assert.Contains(t, r.Message, "requires at least")
	}
}

func TestCheck_MissingDataWarnsNeverFails(t *testing.T) {
	collector := runRule(t, &types.HostFacts{})

	s := collector.Summary()
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 4, s.Warning)
	assert.Zero(t, s.Fail, "absent measurements must never fail the host")
}
