// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package database attempts a live connection to every discovered
// instance's database.
package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/domain/validation"
	logging "github.com/payglobal/ess-validator/app/logging/validator"
	"github.com/payglobal/ess-validator/app/storage/dbprobe"
	"github.com/payglobal/ess-validator/app/types"
)

type checker struct {
	cfg    *config.Settings
	prober dbprobe.Prober
	logger *logrus.Entry
}

func NewRule(ctx context.Context, cfg *config.Settings) validation.Rule {
	return NewRuleWithProber(ctx, cfg,
		dbprobe.New(cfg.Database.User, cfg.Database.Password, cfg.Database.ProbeTimeout))
}

// NewRuleWithProber allows tests to substitute the connection probe.
func NewRuleWithProber(ctx context.Context, cfg *config.Settings, prober dbprobe.Prober) validation.Rule {
	return &checker{
		cfg:    cfg,
		prober: prober,
		logger: logging.NewLogger().
			WithContext(ctx).WithField(logging.OpField, "database"),
	}
}

// Check probes each ESS and WFE instance independently. An instance whose
// marker file had no parsable connection string is a WARNING, not a FAIL.
func (c *checker) Check(ctx context.Context, env *validation.Env, collector *results.Collector) error {
	for _, inst := range env.Deployment.ESSInstances {
		label := fmt.Sprintf("ESS %s%s", inst.SiteName, inst.ApplicationPath)
		c.probe(ctx, label, inst.DatabaseBinding, collector)
	}
	for _, inst := range env.Deployment.WFEInstances {
		label := fmt.Sprintf("WFE %s%s", inst.SiteName, inst.ApplicationPath)
		c.probe(ctx, label, inst.DatabaseBinding, collector)
	}
	return nil
}

func (c *checker) probe(ctx context.Context, label string, binding types.DatabaseBinding, collector *results.Collector) {
	if binding.Server == nil || binding.Database == nil {
		collector.Add(config.CategoryDatabase, config.CheckDatabaseReach, types.StatusWarning,
			fmt.Sprintf("%s: no parsable connection string, skipping connectivity probe", label))
		return
	}

	if err := c.prober.Probe(ctx, *binding.Server, *binding.Database); err != nil {
		collector.Add(config.CategoryDatabase, config.CheckDatabaseReach, types.StatusFail,
			fmt.Sprintf("%s: cannot connect to %s/%s: %v", label, *binding.Server, *binding.Database, err))
		return
	}

	collector.Add(config.CategoryDatabase, config.CheckDatabaseReach, types.StatusPass,
		fmt.Sprintf("%s: connected to %s/%s", label, *binding.Server, *binding.Database))
}
