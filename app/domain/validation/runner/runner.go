// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package runner executes the rule catalog against one environment with
// per-rule failure isolation.
package runner

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/domain/validation"
	"github.com/payglobal/ess-validator/app/domain/validation/catalog"
	logging "github.com/payglobal/ess-validator/app/logging/validator"
	"github.com/payglobal/ess-validator/app/types"
)

type Runner struct {
	cfg     *config.Settings
	catalog *catalog.Catalog
	logger  *logrus.Entry
}

func NewRunner(cfg *config.Settings, cat *catalog.Catalog) *Runner {
	return &Runner{
		cfg:     cfg,
		catalog: cat,
		logger:  logging.NewLogger().WithField(logging.OpField, "runner"),
	}
}

// Run executes every rule in catalog order. One mis-firing rule never
// aborts the rest of the run: errors and panics are recorded as WARNING
// results and execution continues. Cancellation stops before the next
// rule; whatever was collected so far remains reportable.
func (r *Runner) Run(ctx context.Context, env *validation.Env, collector *results.Collector) error {
	for _, entry := range r.catalog.Entries() {
		if err := ctx.Err(); err != nil {
			r.logger.Warnf("run cancelled before rule %s", entry.Name)
			return err
		}
		r.runOne(ctx, entry, env, collector)
	}
	return nil
}

func (r *Runner) runOne(ctx context.Context, entry catalog.Entry, env *validation.Env, collector *results.Collector) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Errorf("rule %s panicked: %v", entry.Name, rec)
			collector.Add(config.CategorySelfCheck, entry.Name, types.StatusWarning,
				fmt.Sprintf("rule %s aborted: %v", entry.Name, rec))
		}
	}()

	if err := entry.Rule.Check(ctx, env, collector); err != nil {
		r.logger.WithError(err).Errorf("rule %s failed", entry.Name)
		collector.Add(config.CategorySelfCheck, entry.Name, types.StatusWarning,
			fmt.Sprintf("rule %s did not complete: %v", entry.Name, err))
	}
}
