// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report assembles one validation run into a single JSON document
// suitable for attaching to an upgrade ticket.
package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/payglobal/ess-validator/app/domain/healthcheck"
	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/types"
)

// Report is the full record of one validation run.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Hostname    string    `json:"hostname"`

	Facts      *types.HostFacts              `json:"host_facts"`
	Deployment *types.DeploymentResult       `json:"deployment"`
	Results    []types.CheckResult           `json:"results"`
	Summary    types.Summary                 `json:"summary"`
	Health     []healthcheck.InstanceOutcome `json:"health,omitempty"`
}

// Build snapshots the collector and its inputs into a report.
func Build(collector *results.Collector, facts *types.HostFacts, deployment *types.DeploymentResult, health []healthcheck.InstanceOutcome) *Report {
	hostname, _ := os.Hostname()
	return &Report{
		RunID:       collector.RunID().String(),
		GeneratedAt: time.Now().UTC(),
		Hostname:    hostname,
		Facts:       facts,
		Deployment:  deployment,
		Results:     collector.List(),
		Summary:     collector.Summary(),
		Health:      health,
	}
}

// Write marshals the report as indented JSON to the given path.
func (r *Report) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling report")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing report to %s", path)
	}
	return nil
}
