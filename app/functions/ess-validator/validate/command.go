// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package validate contains the CLI commands for running upgrade-readiness
// validation.
package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/discovery"
	"github.com/payglobal/ess-validator/app/domain/healthcheck"
	"github.com/payglobal/ess-validator/app/domain/hostfacts"
	"github.com/payglobal/ess-validator/app/domain/report"
	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/domain/validation"
	"github.com/payglobal/ess-validator/app/domain/validation/catalog"
	"github.com/payglobal/ess-validator/app/domain/validation/runner"
	logging "github.com/payglobal/ess-validator/app/logging/validator"
	"github.com/payglobal/ess-validator/app/types"
)

const configFileDesc = "input " + config.FlagDescConfFile

var configAlias = []string{"f"}

func NewCommand() *cli.Command {
	cmd := &cli.Command{
		Name:    "validate",
		Usage:   "upgrade-readiness validation commands",
		Aliases: []string{"val", "v"},
		Subcommands: []*cli.Command{
			{
				Name:  "get-available",
				Usage: "lists the available validation checks",
				Action: func(c *cli.Context) error {
					registry := catalog.NewCatalog(c.Context, config.DefaultSettings())
					for _, check := range registry.List() {
						fmt.Println("- " + check)
					}
					return nil
				},
			},
			{
				Name:  "run",
				Usage: "runs the full validation pipeline against this host",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: config.FlagConfigFile, Aliases: configAlias, Usage: configFileDesc, Required: false},
					&cli.StringFlag{Name: config.FlagSitesFile, Usage: "site inventory file describing the host web server", Required: true},
					&cli.StringFlag{Name: config.FlagOutputFile, Aliases: []string{"o"}, Usage: "path for the JSON report", Required: false},
					&cli.BoolFlag{Name: "skip-health", Usage: "skip instance health-endpoint probes", Required: false},
				},
				Action: runValidation,
			},
			{
				Name:  "discover",
				Usage: "discovers instances and prints the deployment classification",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: config.FlagConfigFile, Aliases: configAlias, Usage: configFileDesc, Required: false},
					&cli.StringFlag{Name: config.FlagSitesFile, Usage: "site inventory file describing the host web server", Required: true},
				},
				Action: runDiscovery,
			},
			{
				Name:  "healthcheck",
				Usage: "probes a single health endpoint and prints the outcome",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: config.FlagConfigFile, Aliases: configAlias, Usage: configFileDesc, Required: false},
					&cli.StringFlag{Name: config.FlagBaseURL, Usage: "base URL of the instance, e.g. https://host/ess", Required: true},
				},
				Action: runHealthProbe,
			},
		},
	}
	return cmd
}

// loadSettings reads the config files given on the command line, falling
// back to built-in defaults when none were given. A config error aborts
// the run; nothing downstream can produce trustworthy results without a
// valid configuration.
func loadSettings(c *cli.Context) (*config.Settings, error) {
	configs := c.StringSlice(config.FlagConfigFile)
	if len(configs) == 0 {
		return config.DefaultSettings(), nil
	}

	cfg, err := config.NewSettings(configs...)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Logging.Location != "" {
		logging.SetUpLogging(cfg.Logging.Level, logging.LogFormatJSON)
		_ = logging.LogToFile(cfg.Logging.Location)
	}
	return cfg, nil
}

// gatherFacts measures host resources and loads the site inventory.
func gatherFacts(ctx context.Context, cfg *config.Settings, sitesFile string) (*types.HostFacts, error) {
	facts := &types.HostFacts{}
	hostfacts.NewCollector(ctx).CollectResources(ctx, facts)
	if err := hostfacts.LoadInventory(sitesFile, facts); err != nil {
		return nil, err
	}
	return facts, nil
}

func runValidation(c *cli.Context) error {
	ctx := c.Context

	cfg, err := loadSettings(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	facts, err := gatherFacts(ctx, cfg, c.String(config.FlagSitesFile))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	deployment := discovery.New(cfg).Discover(facts)
	logrus.WithField("deployment", deployment.DeploymentType).Info("instance discovery complete")

	collector := results.NewCollector()
	env := &validation.Env{Facts: facts, Deployment: deployment}

	engine := runner.NewRunner(cfg, catalog.NewCatalog(ctx, cfg))
	if err := engine.Run(ctx, env, collector); err != nil {
		return cli.Exit(fmt.Sprintf("validation aborted: %v", err), 2)
	}

	var health []healthcheck.InstanceOutcome
	if !c.Bool("skip-health") {
		targets, skipped := healthcheck.TargetsFromDeployment(deployment, facts)
		for _, label := range skipped {
			collector.Add(config.CategoryHealthCheck, config.CheckInstanceHealth, types.StatusWarning,
				label+": no resolvable host, skipping health probe")
		}
		health = healthcheck.NewRunner(cfg).Run(ctx, targets, collector)
	}

	printResults(deployment, collector)

	if out := c.String(config.FlagOutputFile); out != "" {
		if err := report.Build(collector, facts, deployment, health).Write(out); err != nil {
			return cli.Exit(err.Error(), 2)
		}
		fmt.Println("\nreport written to " + out)
	}

	if collector.Summary().Fail > 0 {
		return cli.Exit("one or more validation checks failed", 1)
	}
	return nil
}

func runDiscovery(c *cli.Context) error {
	ctx := c.Context

	cfg, err := loadSettings(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	facts, err := gatherFacts(ctx, cfg, c.String(config.FlagSitesFile))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	deployment := discovery.New(cfg).Discover(facts)
	data, err := json.MarshalIndent(deployment, "", "  ")
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	fmt.Println(string(data))
	return nil
}

func runHealthProbe(c *cli.Context) error {
	cfg, err := loadSettings(c)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	endpoint, err := healthcheck.BuildEndpoint(c.String(config.FlagBaseURL), "")
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	client := healthcheck.New(healthcheck.Options{
		Timeout:    cfg.HealthCheck.Timeout,
		MaxRetries: cfg.HealthCheck.MaxRetries,
		RetryDelay: cfg.HealthCheck.RetryDelay,
	})
	outcome := client.Check(c.Context, endpoint)

	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	fmt.Println(string(data))

	if outcome.Overall != types.OverallHealthy {
		return cli.Exit("instance is not healthy", 1)
	}
	return nil
}

func printResults(deployment *types.DeploymentResult, collector *results.Collector) {
	fmt.Printf("Deployment: %s (%d ESS, %d WFE)\n\n",
		deployment.DeploymentType, len(deployment.ESSInstances), len(deployment.WFEInstances))

	fmt.Printf("%-25s %-25s %-8s %s\n", "Category", "Check", "Status", "Message")
	//revive:disable-next-line
	fmt.Printf("%-25s %-25s %-8s %s\n", strings.Repeat("-", 25), strings.Repeat("-", 25), strings.Repeat("-", 8), strings.Repeat("-", 40))
	for _, r := range collector.List() {
		fmt.Printf("%-25s %-25s %-8s %s\n", r.Category, r.Check, r.Status, r.Message)
	}

	s := collector.Summary()
	fmt.Printf("\nTotal: %d  Pass: %d  Fail: %d  Warning: %d  Info: %d\n",
		s.Total, s.Pass, s.Fail, s.Warning, s.Info)
}
