// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/discovery"
	"github.com/payglobal/ess-validator/app/domain/healthcheck"
	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/domain/validation"
	"github.com/payglobal/ess-validator/app/domain/validation/catalog"
	"github.com/payglobal/ess-validator/app/domain/validation/database"
	"github.com/payglobal/ess-validator/app/domain/validation/encryption"
	"github.com/payglobal/ess-validator/app/domain/validation/platform"
	"github.com/payglobal/ess-validator/app/domain/validation/resources"
	"github.com/payglobal/ess-validator/app/domain/validation/runner"
	"github.com/payglobal/ess-validator/app/domain/validation/selfcheck"
	"github.com/payglobal/ess-validator/app/domain/validation/transport"
	"github.com/payglobal/ess-validator/app/domain/validation/versions"
	"github.com/payglobal/ess-validator/app/types"
)

type reachableProber struct{}

func (reachableProber) Probe(context.Context, string, string) error { return nil }

func f64(v float64) *float64 { return &v }

func iptr(v int) *int { return &v }

func strptr(s string) *string { return &s }

// fullCatalog mirrors the production rule order with the live database
// probe swapped for a stub.
func fullCatalog(ctx context.Context, cfg *config.Settings) *catalog.Catalog {
	return catalog.FromEntries(
		catalog.Entry{Name: "resources", Rule: resources.NewRule(ctx, cfg)},
		catalog.Entry{Name: "platform", Rule: platform.NewRule(ctx, cfg)},
		catalog.Entry{Name: "encryption", Rule: encryption.NewRule(ctx, cfg)},
		catalog.Entry{Name: "versions", Rule: versions.NewRule(ctx, cfg)},
		catalog.Entry{Name: "transport", Rule: transport.NewRule(ctx, cfg)},
		catalog.Entry{Name: "database", Rule: database.NewRuleWithProber(ctx, cfg, reachableProber{})},
		catalog.Entry{Name: "selfcheck", Rule: selfcheck.NewRule(ctx, cfg)},
	)
}

func TestFullValidationRun(t *testing.T) {
	ctx := context.Background()

	// a health endpoint for the ESS instance to report against
	health := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
  "Successful": true,
  "Components": [
    {"ComponentName": "PayGlobal Database", "Successful": true},
    {"ComponentName": "Self-Service Software", "Successful": true}
  ]
}`))
	}))
	defer health.Close()
	healthURL, err := url.Parse(health.URL)
	require.NoError(t, err)

	// one site: ESS at the root, WFE as a sub-application
	root := t.TempDir()
	essDir := filepath.Join(root, "ess")
	wfeDir := filepath.Join(root, "wfe")
	require.NoError(t, os.MkdirAll(essDir, 0o755))
	require.NoError(t, os.MkdirAll(wfeDir, 0o755))

	essConfig := `<configuration>
  <add key="TenantId" value="acme" />
  <add key="Host" value="` + healthURL.Host + `" />
  <add key="Protocol" value="http" />
  <add key="AuthenticationMode" value="Forms" />
  <connectionStrings>Data Source=sql01;Initial Catalog=PayGlobal;</connectionStrings>
</configuration>`
	require.NoError(t, os.WriteFile(filepath.Join(essDir, discovery.ESSMarkerFile), []byte(essConfig), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(essDir, discovery.WebConfigFile),
		[]byte(`<configuration><appSettings/></configuration>`), 0o644))

	wfeConfig := `<configuration>
  <add key="ClientUrl" value="http://` + healthURL.Host + `/" />
  <connectionStrings>Data Source=sql02;Initial Catalog=Workflow;</connectionStrings>
</configuration>`
	require.NoError(t, os.WriteFile(filepath.Join(wfeDir, discovery.WFEMarkerFile), []byte(wfeConfig), 0o644))

	facts := &types.HostFacts{
		HasWebServer:     true,
		WebServerVersion: strptr("10.0"),
		DotNetVersions:   []string{"4.8"},
		DiskFreeGB:       f64(100),
		MemoryGB:         f64(64),
		CoreCount:        iptr(8),
		AverageClockGHz:  f64(3.0),
		Sites: []types.Site{
			{
				Name:         "Default Web Site",
				PhysicalPath: essDir,
				Applications: []types.Application{{Path: "/wfe", PhysicalPath: wfeDir}},
			},
		},
	}

	cfg := config.DefaultSettings()
	deployment := discovery.New(cfg).Discover(facts)
	assert.Equal(t, types.DeploymentCombined, deployment.DeploymentType)

	collector := results.NewCollector()
	env := &validation.Env{Facts: facts, Deployment: deployment}

	engine := runner.NewRunner(cfg, fullCatalog(ctx, cfg))
	require.NoError(t, engine.Run(ctx, env, collector))

	targets, skipped := healthcheck.TargetsFromDeployment(deployment, facts)
	assert.Empty(t, skipped)
	require.Len(t, targets, 1)

	hcRunner := healthcheck.NewRunnerWithClient(cfg, healthcheck.New(healthcheck.Options{
		Timeout:    5 * time.Second,
		MaxRetries: 0,
		RetryDelay: time.Millisecond,
	}))
	outcomes := hcRunner.Run(ctx, targets, collector)

	require.Len(t, outcomes, 1)
	assert.Equal(t, types.OverallHealthy, outcomes[0].Outcome.Overall)
	require.NotNil(t, outcomes[0].Outcome.PayGlobalDatabase)

	// every category contributed at least one result
	for _, category := range []string{
		config.CategoryResources,
		config.CategoryPlatform,
		config.CategoryInstances,
		config.CategoryVersions,
		config.CategoryTransport,
		config.CategoryDatabase,
		config.CategorySelfCheck,
		config.CategoryHealthCheck,
	} {
		assert.NotEmpty(t, collector.ByCategory(category), "category %s recorded nothing", category)
	}

	s := collector.Summary()
	assert.Equal(t, s.Total, s.Pass+s.Fail+s.Warning+s.Info)
	assert.Zero(t, s.Fail, "a well-provisioned host with healthy instances must not fail")
}
