// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package versions checks each ESS instance's product version against the
// upgrade floor and the companion-version compatibility table.
package versions

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/domain/validation"
	logging "github.com/payglobal/ess-validator/app/logging/validator"
	"github.com/payglobal/ess-validator/app/types"
	"github.com/payglobal/ess-validator/app/utils/version"
)

type checker struct {
	cfg    *config.Settings
	logger *logrus.Entry
}

func NewRule(ctx context.Context, cfg *config.Settings) validation.Rule {
	return &checker{
		cfg: cfg,
		logger: logging.NewLogger().
			WithContext(ctx).WithField(logging.OpField, "versions"),
	}
}

func (c *checker) Check(_ context.Context, env *validation.Env, collector *results.Collector) error {
	for _, inst := range env.Deployment.ESSInstances {
		c.productFloor(inst, collector)
		c.companion(inst, collector)
	}
	return nil
}

// productFloor enforces the hard minimum below which an in-place upgrade
// is unsupported. Missing version data is a WARNING, never a FAIL.
func (c *checker) productFloor(inst types.ESSInstance, collector *results.Collector) {
	label := fmt.Sprintf("%s%s", inst.SiteName, inst.ApplicationPath)
	floor := c.cfg.Versions.MinimumProductVersion

	if inst.ProductVersion == nil {
		collector.Add(config.CategoryVersions, config.CheckProductVersion, types.StatusWarning,
			fmt.Sprintf("%s: product version could not be read", label))
		return
	}

	ok, err := version.AtLeast(*inst.ProductVersion, floor)
	if err != nil {
		collector.Add(config.CategoryVersions, config.CheckProductVersion, types.StatusWarning,
			fmt.Sprintf("%s: unrecognized product version %q", label, *inst.ProductVersion))
		return
	}
	if !ok {
		collector.Add(config.CategoryVersions, config.CheckProductVersion, types.StatusFail,
			fmt.Sprintf("%s: product version %s is below the supported upgrade floor %s",
				label, *inst.ProductVersion, floor))
		return
	}
	collector.Add(config.CategoryVersions, config.CheckProductVersion, types.StatusPass,
		fmt.Sprintf("%s: product version %s (floor %s)", label, *inst.ProductVersion, floor))
}

// companion reports the compatibility verdict derived at discovery time,
// naming the required companion version on failure so the operator knows
// what to install.
func (c *checker) companion(inst types.ESSInstance, collector *results.Collector) {
	label := fmt.Sprintf("%s%s", inst.SiteName, inst.ApplicationPath)

	switch inst.Compatibility {
	case types.CompatibilityIncompatible:
		required := "unknown"
		if inst.ProductVersion != nil {
			if r, ok := c.cfg.Versions.RequiredCompanion(*inst.ProductVersion); ok {
				required = r
			}
		}
		companion := "unknown"
		if inst.CompanionVersion != nil {
			companion = *inst.CompanionVersion
		}
		collector.Add(config.CategoryVersions, config.CheckCompanionVersion, types.StatusFail,
			fmt.Sprintf("%s: companion version %s is incompatible; requires at least %s",
				label, companion, required))
	case types.CompatibilityCompatible:
		collector.Add(config.CategoryVersions, config.CheckCompanionVersion, types.StatusPass,
			fmt.Sprintf("%s: companion version is compatible", label))
	default:
		collector.Add(config.CategoryVersions, config.CheckCompanionVersion, types.StatusWarning,
			fmt.Sprintf("%s: version data incomplete, compatibility unknown", label))
	}
}
