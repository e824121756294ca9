// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package healthcheck

import (
	"context"
	"fmt"
	"sort"
	"sync"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/types"
	"github.com/payglobal/ess-validator/app/utils/parallel"
)

// Target is one health endpoint to probe, labelled for reporting.
type Target struct {
	Label    string
	Endpoint string
}

// InstanceOutcome pairs a target's label with its probe outcome.
type InstanceOutcome struct {
	Label   string                    `json:"label"`
	Outcome *types.HealthCheckOutcome `json:"outcome"`
}

// Runner probes many health endpoints concurrently on a bounded pool and
// records every outcome in the shared result collector.
type Runner struct {
	client      *Client
	concurrency int
}

func NewRunner(cfg *config.Settings) *Runner {
	return NewRunnerWithClient(cfg, New(Options{
		Timeout:    cfg.HealthCheck.Timeout,
		MaxRetries: cfg.HealthCheck.MaxRetries,
		RetryDelay: cfg.HealthCheck.RetryDelay,
	}))
}

// NewRunnerWithClient allows tests to substitute the probe client.
func NewRunnerWithClient(cfg *config.Settings, client *Client) *Runner {
	return &Runner{client: client, concurrency: cfg.HealthCheck.Concurrency}
}

// TargetsFromDeployment derives one probe target per discovered ESS
// instance. Instances without a resolvable host are skipped here and
// surface as a WARNING when the runner executes.
func TargetsFromDeployment(deployment *types.DeploymentResult, facts *types.HostFacts) ([]Target, []string) {
	sitesByName := make(map[string]types.Site, len(facts.Sites))
	for _, s := range facts.Sites {
		sitesByName[s.Name] = s
	}

	var targets []Target
	var skipped []string
	for _, inst := range deployment.ESSInstances {
		label := fmt.Sprintf("%s%s", inst.SiteName, inst.ApplicationPath)
		endpoint, err := EndpointForInstance(inst, sitesByName[inst.SiteName])
		if err != nil {
			skipped = append(skipped, label)
			continue
		}
		targets = append(targets, Target{Label: label, Endpoint: endpoint})
	}
	return targets, skipped
}

// Run probes every target and records one result per target in the
// collector. It returns the per-target outcomes sorted by label so report
// output is stable across runs.
func (r *Runner) Run(ctx context.Context, targets []Target, collector *results.Collector) []InstanceOutcome {
	pool := parallel.New(r.concurrency)
	defer pool.Close()
	waiter := parallel.NewWaiter()

	var mu sync.Mutex
	outcomes := make([]InstanceOutcome, 0, len(targets))

	for _, target := range targets {
		t := target
		pool.Run(func() error {
			outcome := r.client.Check(ctx, t.Endpoint)
			record(collector, t.Label, outcome)

			mu.Lock()
			outcomes = append(outcomes, InstanceOutcome{Label: t.Label, Outcome: outcome})
			mu.Unlock()
			return nil
		}, waiter)
	}
	waiter.Wait()

	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].Label < outcomes[j].Label })
	return outcomes
}

// record maps a probe outcome onto a collector entry. Partial outages are
// warnings; unreachable or malformed endpoints fail, since an instance
// whose health cannot be read cannot be certified upgrade-ready.
func record(collector *results.Collector, label string, outcome *types.HealthCheckOutcome) {
	summary := fmt.Sprintf("%s: %s (%d/%d components healthy, %d attempt(s))",
		label, outcome.Meaning,
		outcome.Summary.HealthyComponents, outcome.Summary.TotalComponents,
		outcome.Attempts)

	switch outcome.Overall {
	case types.OverallHealthy:
		collector.Add(config.CategoryHealthCheck, config.CheckInstanceHealth, types.StatusPass, summary)
	case types.OverallPartiallyUnhealthy:
		collector.Add(config.CategoryHealthCheck, config.CheckInstanceHealth, types.StatusWarning,
			summary+unhealthyDetail(outcome))
	case types.OverallUnhealthy:
		collector.Add(config.CategoryHealthCheck, config.CheckInstanceHealth, types.StatusFail,
			summary+unhealthyDetail(outcome))
	default:
		msg := summary
		if outcome.Error != nil {
			msg = fmt.Sprintf("%s: %s", label, *outcome.Error)
		}
		collector.Add(config.CategoryHealthCheck, config.CheckInstanceHealth, types.StatusFail, msg)
	}
}

func unhealthyDetail(outcome *types.HealthCheckOutcome) string {
	detail := ""
	for _, comp := range outcome.Components {
		if comp.Healthy() {
			continue
		}
		detail += "; " + comp.Name
		for _, m := range comp.Messages {
			detail += ": " + m.Detail
		}
	}
	return detail
}
