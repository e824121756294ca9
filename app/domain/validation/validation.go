// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package validation defines the rule-based validation pipeline that turns
// host facts and discovered instances into typed check results.
//
// Rules are independent: they never read each other's output and never
// mutate the environment they are given, so the catalog order is a
// presentation choice, not a dependency order, and every rule is testable
// in isolation.
package validation

import (
	"context"

	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/types"
)

// Env is the read-only input shared by every rule.
type Env struct {
	Facts      *types.HostFacts
	Deployment *types.DeploymentResult
}

// Rule is one validation rule. Implementations record their findings in
// the collector and return an error only for unrecoverable conditions;
// recoverable problems become WARNING or FAIL results instead.
type Rule interface {
	Check(ctx context.Context, env *Env, collector *results.Collector) error
}
