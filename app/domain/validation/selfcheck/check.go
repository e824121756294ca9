// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package selfcheck verifies the validator's own environment: temp-dir
// writability and process elevation. Failures here degrade the run (some
// checks may report incomplete data) but never block it, so everything in
// this package is WARNING at worst.
package selfcheck

import (
	"context"
	"os"

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
			WithContext(ctx).WithField(logging.OpField, "selfcheck"),
	}
}

func (c *checker) Check(_ context.Context, _ *validation.Env, collector *results.Collector) error {
	c.tempWrite(collector)
	c.elevation(collector)
	return nil
}

func (c *checker) tempWrite(collector *results.Collector) {
	f, err := os.CreateTemp("", "ess-validator-*")
	if err != nil {
		collector.Add(config.CategorySelfCheck, config.CheckTempWrite, types.StatusWarning,
			"cannot write to the temp directory: "+err.Error())
		return
	}
	name := f.Name()
	_, werr := f.WriteString("ok")
	cerr := f.Close()
	_ = os.Remove(name)
	if werr != nil || cerr != nil {
		collector.Add(config.CategorySelfCheck, config.CheckTempWrite, types.StatusWarning,
			"temp directory write test did not complete cleanly")
		return
	}
	collector.Add(config.CategorySelfCheck, config.CheckTempWrite, types.StatusPass,
		"temp directory is writable")
}

func (c *checker) elevation(collector *results.Collector) {
	if elevated() {
		collector.Add(config.CategorySelfCheck, config.CheckElevation, types.StatusPass,
			"running with elevated privileges")
		return
	}
	collector.Add(config.CategorySelfCheck, config.CheckElevation, types.StatusWarning,
		"not running elevated; some host facts and config files may be unreadable")
}
