// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package platform_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/domain/validation"
	"github.com/payglobal/ess-validator/app/domain/validation/platform"
	"github.com/payglobal/ess-validator/app/types"
)

func strptr(s string) *string { return &s }

func run(t *testing.T, facts *types.HostFacts) *results.Collector {
	t.Helper()
	rule := platform.NewRule(context.Background(), config.DefaultSettings())
	collector := results.NewCollector()
	env := &validation.Env{Facts: facts, Deployment: &types.DeploymentResult{}}
	require.NoError(t, rule.Check(context.Background(), env, collector))
	return collector
}

func statusOf(t *testing.T, collector *results.Collector, check string) types.CheckStatus {
	t.Helper()
	for _, r := range collector.List() {
		if r.Check == check {
			return r.Status
		}
	}
	t.Fatalf("no result recorded for check %q", check)
	return ""
}

func TestCheck_WebServer(t *testing.T) {
	tcases := []struct {
		name            string
		facts           *types.HostFacts
		expectedRole    types.CheckStatus
		expectedVersion types.CheckStatus
	}{
		{
			name:            "present and new enough",
			facts:           &types.HostFacts{HasWebServer: true, WebServerVersion: strptr("10.0")},
			expectedRole:    types.StatusPass,
			expectedVersion: types.StatusPass,
		},
		{
			name:            "present at the exact minimum",
			facts:           &types.HostFacts{HasWebServer: true, WebServerVersion: strptr("7.5")},
			expectedRole:    types.StatusPass,
			expectedVersion: types.StatusPass,
		},
		{
			name:            "present but too old",
			facts:           &types.HostFacts{HasWebServer: true, WebServerVersion: strptr("6.0")},
			expectedRole:    types.StatusPass,
			expectedVersion: types.StatusFail,
		},
		{
			name:            "present with unknown version",
			facts:           &types.HostFacts{HasWebServer: true},
			expectedRole:    types.StatusPass,
			expectedVersion: types.StatusWarning,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			collector := run(t, tc.facts)
			assert.Equal(t, tc.expectedRole, statusOf(t, collector, config.CheckWebServer))
			assert.Equal(t, tc.expectedVersion, statusOf(t, collector, config.CheckWebServerVersion))
		})
	}
}

func TestCheck_NoWebServerFails(t *testing.T) {
	collector := run(t, &types.HostFacts{HasWebServer: false})
	assert.Equal(t, types.StatusFail, statusOf(t, collector, config.CheckWebServer))
}

func TestCheck_DotNet(t *testing.T) {
	tcases := []struct {
		name     string
		versions []string
		expected types.CheckStatus
	}{
		{name: "meets the minimum", versions: []string{"4.8"}, expected: types.StatusPass},
		{name: "any side-by-side runtime suffices", versions: []string{"3.5", "4.8.1"}, expected: types.StatusPass},
		{name: "all too old", versions: []string{"3.5", "4.5"}, expected: types.StatusFail},
		{name: "none installed", versions: nil, expected: types.StatusFail},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			collector := run(t, &types.HostFacts{HasWebServer: true, DotNetVersions: tc.versions})
			assert.Equal(t, tc.expected, statusOf(t, collector, config.CheckDotNetRuntime))
		})
	}
}
