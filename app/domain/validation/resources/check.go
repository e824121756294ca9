// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resources checks the host against the minimum resource
// requirements for an upgrade.
package resources

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/domain/validation"
	logging "github.com/payglobal/ess-validator/app/logging/validator"
	"github.com/payglobal/ess-validator/app/types"
)

type checker struct {
	cfg    *config.Settings
	logger *logrus.Entry
}

func NewRule(ctx context.Context, cfg *config.Settings) validation.Rule {
	return &checker{
		cfg: cfg,
		logger: logging.NewLogger().
			WithContext(ctx).WithField(logging.OpField, "resources"),
	}
}

// Check compares each measured resource against its configured minimum.
// Meeting the minimum exactly passes; a missing measurement is a WARNING,
// never a FAIL, because absence of data is not evidence of a problem.
func (c *checker) Check(_ context.Context, env *validation.Env, collector *results.Collector) error {
	req := c.cfg.Requirements
	facts := env.Facts

	c.threshold(collector, config.CheckDiskSpace, facts.DiskFreeGB, req.MinDiskFreeGB, "GB free disk")
	c.threshold(collector, config.CheckMemory, facts.MemoryGB, req.MinMemoryGB, "GB memory")
	c.cores(collector, facts.CoreCount, req.MinCores)
	c.threshold(collector, config.CheckCPUClock, facts.AverageClockGHz, req.MinClockGHz, "GHz average clock")
	return nil
}

func (c *checker) threshold(collector *results.Collector, check string, actual *float64, required float64, unit string) {
	if actual == nil {
		collector.Add(config.CategoryResources, check, types.StatusWarning,
			fmt.Sprintf("could not determine %s", unit))
		return
	}
	if *actual < required {
		collector.Add(config.CategoryResources, check, types.StatusFail,
			fmt.Sprintf("%.1f %s, requires at least %.1f", *actual, unit, required))
		return
	}
	collector.Add(config.CategoryResources, check, types.StatusPass,
		fmt.Sprintf("%.1f %s (minimum %.1f)", *actual, unit, required))
}

func (c *checker) cores(collector *results.Collector, actual *int, required int) {
	if actual == nil {
		collector.Add(config.CategoryResources, config.CheckCPUCores, types.StatusWarning,
			"could not determine CPU core count")
		return
	}
	if *actual < required {
		collector.Add(config.CategoryResources, config.CheckCPUCores, types.StatusFail,
			fmt.Sprintf("%d cores, requires at least %d", *actual, required))
		return
	}
	collector.Add(config.CategoryResources, config.CheckCPUCores, types.StatusPass,
		fmt.Sprintf("%d cores (minimum %d)", *actual, required))
}
