// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package platform checks web-server and .NET runtime presence against the
// supported minimums.
package platform

import (
	"context"
	"fmt"
	"strings"

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
			WithContext(ctx).WithField(logging.OpField, "platform"),
	}
}

func (c *checker) Check(_ context.Context, env *validation.Env, collector *results.Collector) error {
	c.webServer(env.Facts, collector)
	c.dotNet(env.Facts, collector)
	return nil
}

func (c *checker) webServer(facts *types.HostFacts, collector *results.Collector) {
	if !facts.HasWebServer {
		collector.Add(config.CategoryPlatform, config.CheckWebServer, types.StatusFail,
			"no web server role detected on this host")
		return
	}
	collector.Add(config.CategoryPlatform, config.CheckWebServer, types.StatusPass,
		"web server role present")

	minVersion := c.cfg.Requirements.MinWebServerVersion
	if facts.WebServerVersion == nil {
		collector.Add(config.CategoryPlatform, config.CheckWebServerVersion, types.StatusWarning,
			"could not determine web server version")
		return
	}
	ok, err := version.AtLeast(*facts.WebServerVersion, minVersion)
	if err != nil {
		collector.Add(config.CategoryPlatform, config.CheckWebServerVersion, types.StatusWarning,
			fmt.Sprintf("unrecognized web server version %q", *facts.WebServerVersion))
		return
	}
	if !ok {
		collector.Add(config.CategoryPlatform, config.CheckWebServerVersion, types.StatusFail,
			fmt.Sprintf("web server version %s, requires at least %s", *facts.WebServerVersion, minVersion))
		return
	}
	collector.Add(config.CategoryPlatform, config.CheckWebServerVersion, types.StatusPass,
		fmt.Sprintf("web server version %s (minimum %s)", *facts.WebServerVersion, minVersion))
}

// dotNet passes when any installed runtime meets the minimum. Hosts often
// carry several side-by-side versions; only the newest matters.
func (c *checker) dotNet(facts *types.HostFacts, collector *results.Collector) {
	minVersion := c.cfg.Requirements.MinDotNetVersion
	if len(facts.DotNetVersions) == 0 {
		collector.Add(config.CategoryPlatform, config.CheckDotNetRuntime, types.StatusFail,
			fmt.Sprintf("no .NET runtime detected, requires at least %s", minVersion))
		return
	}

	for _, v := range facts.DotNetVersions {
		if ok, err := version.AtLeast(v, minVersion); err == nil && ok {
			collector.Add(config.CategoryPlatform, config.CheckDotNetRuntime, types.StatusPass,
				fmt.Sprintf(".NET %s installed (minimum %s)", v, minVersion))
			return
		}
	}

	collector.Add(config.CategoryPlatform, config.CheckDotNetRuntime, types.StatusFail,
		fmt.Sprintf("installed .NET runtimes (%s) are all below the required %s",
			strings.Join(facts.DotNetVersions, ", "), minVersion))
}
