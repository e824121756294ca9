// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package healthcheck_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/healthcheck"
	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/types"
)

func strptr(s string) *string { return &s }

func TestRunner_RecordsOneResultPerTarget(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Successful": true, "Components": []}`))
	}))
	defer healthy.Close()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer down.Close()

	cfg := config.DefaultSettings()
	runner := healthcheck.NewRunnerWithClient(cfg, healthcheck.New(healthcheck.Options{
		Timeout:    5 * time.Second,
		MaxRetries: 0,
		RetryDelay: time.Millisecond,
	}))

	targets := []healthcheck.Target{
		{Label: "siteA/", Endpoint: healthy.URL + "/api/v1/healthcheck"},
		{Label: "siteB/ess", Endpoint: down.URL + "/api/v1/healthcheck"},
	}

	collector := results.NewCollector()
	outcomes := runner.Run(context.Background(), targets, collector)

	require.Len(t, outcomes, 2)
	assert.Equal(t, "siteA/", outcomes[0].Label, "outcomes are sorted by label")
	assert.Equal(t, types.OverallHealthy, outcomes[0].Outcome.Overall)
	assert.Equal(t, types.OverallUnhealthy, outcomes[1].Outcome.Overall)

	byCheck := collector.ByCategory(config.CategoryHealthCheck)
	require.Len(t, byCheck, 2)

	summary := collector.Summary()
	assert.Equal(t, 1, summary.Pass)
	assert.Equal(t, 1, summary.Fail)
}

func TestTargetsFromDeployment(t *testing.T) {
	deployment := &types.DeploymentResult{
		ESSInstances: []types.ESSInstance{
			{
				InstanceIdentity: types.InstanceIdentity{SiteName: "main", ApplicationPath: "/ess"},
				Host:             strptr("ess.acme.example"),
				Protocol:         strptr("https"),
				VirtualRoot:      strptr("/ess"),
			},
			{
				// no host in config and no bindings on the site
				InstanceIdentity: types.InstanceIdentity{SiteName: "orphan", ApplicationPath: "/"},
			},
		},
	}
	facts := &types.HostFacts{
		Sites: []types.Site{
			{Name: "main"},
			{Name: "orphan"},
		},
	}

	targets, skipped := healthcheck.TargetsFromDeployment(deployment, facts)

	require.Len(t, targets, 1)
	assert.Equal(t, "main/ess", targets[0].Label)
	assert.Equal(t, "https://ess.acme.example/ess/api/v1/healthcheck", targets[0].Endpoint)

	require.Len(t, skipped, 1)
	assert.Equal(t, "orphan/", skipped[0])
}

func TestTargetsFromDeployment_BindingFallback(t *testing.T) {
	deployment := &types.DeploymentResult{
		ESSInstances: []types.ESSInstance{
			{InstanceIdentity: types.InstanceIdentity{SiteName: "bound", ApplicationPath: "/"}},
		},
	}
	facts := &types.HostFacts{
		Sites: []types.Site{
			{
				Name: "bound",
				Bindings: []types.Binding{
					{Protocol: "http", Port: 8080, HostHeader: "intranet.local"},
				},
			},
		},
	}

	targets, skipped := healthcheck.TargetsFromDeployment(deployment, facts)

	require.Empty(t, skipped)
	require.Len(t, targets, 1)
	assert.Equal(t, "http://intranet.local:8080/api/v1/healthcheck", targets[0].Endpoint)
}

func TestTargetsFromDeployment_BindingFallbackPrefersSchemeMatch(t *testing.T) {
	tcases := []struct {
		name     string
		bindings []types.Binding
		endpoint string
	}{
		{
			// an HTTPS instance must not pick up an HTTP binding's port
			// when a matching binding exists later in the list
			name: "https instance skips earlier http binding",
			bindings: []types.Binding{
				{Protocol: "http", Port: 8080, HostHeader: "plain.local"},
				{Protocol: "https", Port: 8443, HostHeader: "secure.local"},
			},
			endpoint: "https://secure.local:8443/api/v1/healthcheck",
		},
		{
			name: "no matching protocol falls back to the first binding",
			bindings: []types.Binding{
				{Protocol: "http", Port: 8080, HostHeader: "first.local"},
				{Protocol: "http", Port: 9090, HostHeader: "second.local"},
			},
			endpoint: "https://first.local:8080/api/v1/healthcheck",
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			deployment := &types.DeploymentResult{
				ESSInstances: []types.ESSInstance{
					{
						InstanceIdentity: types.InstanceIdentity{SiteName: "bound", ApplicationPath: "/"},
						Protocol:         strptr("https"),
					},
				},
			}
			facts := &types.HostFacts{
				Sites: []types.Site{{Name: "bound", Bindings: tc.bindings}},
			}

			targets, skipped := healthcheck.TargetsFromDeployment(deployment, facts)

			require.Empty(t, skipped)
			require.Len(t, targets, 1)
			assert.Equal(t, tc.endpoint, targets[0].Endpoint)
		})
	}
}
