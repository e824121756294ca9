// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package transport checks the HTTPS posture of each ESS site and the
// expiry of its serving certificates.
package transport

import (
	"context"
	"fmt"
	"time"

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

	// now is replaceable in tests
	now func() time.Time
}

func NewRule(ctx context.Context, cfg *config.Settings) validation.Rule {
	return &checker{
		cfg: cfg,
		logger: logging.NewLogger().
			WithContext(ctx).WithField(logging.OpField, "transport"),
		now: time.Now,
	}
}

func (c *checker) Check(_ context.Context, env *validation.Env, collector *results.Collector) error {
	for _, inst := range env.Deployment.ESSInstances {
		c.instance(inst, collector)
	}
	return nil
}

func (c *checker) instance(inst types.ESSInstance, collector *results.Collector) {
	label := fmt.Sprintf("%s%s", inst.SiteName, inst.ApplicationPath)

	if !inst.TLS.UsesHTTPS {
		// not an error: on-prem deployments may intentionally serve HTTP
		collector.Add(config.CategoryTransport, config.CheckHTTPSBinding, types.StatusInfo,
			fmt.Sprintf("%s: site is served over HTTP only", label))
		return
	}

	collector.Add(config.CategoryTransport, config.CheckHTTPSBinding, types.StatusPass,
		fmt.Sprintf("%s: HTTPS binding present", label))

	for _, cert := range inst.TLS.Certificates {
		c.certificate(label, cert, collector)
	}
}

func (c *checker) certificate(label string, cert types.CertificateExpiry, collector *results.Collector) {
	if cert.Error != nil || cert.NotAfter == nil {
		detail := "certificate could not be read"
		if cert.Error != nil {
			detail = *cert.Error
		}
		collector.Add(config.CategoryTransport, config.CheckCertificate, types.StatusFail,
			fmt.Sprintf("%s (%s): %s", label, cert.Binding, detail))
		return
	}

	now := c.now()
	warnWindow := time.Duration(c.cfg.Requirements.CertWarningDays) * 24 * time.Hour

	switch {
	case cert.NotAfter.Before(now):
		collector.Add(config.CategoryTransport, config.CheckCertificate, types.StatusFail,
			fmt.Sprintf("%s (%s): certificate expired %s", label, cert.Binding,
				cert.NotAfter.Format(time.RFC3339)))
	case cert.NotAfter.Before(now.Add(warnWindow)):
		collector.Add(config.CategoryTransport, config.CheckCertificate, types.StatusWarning,
			fmt.Sprintf("%s (%s): certificate expires %s, within the %d-day warning window",
				label, cert.Binding, cert.NotAfter.Format(time.RFC3339), c.cfg.Requirements.CertWarningDays))
	default:
		collector.Add(config.CategoryTransport, config.CheckCertificate, types.StatusPass,
			fmt.Sprintf("%s (%s): certificate valid until %s", label, cert.Binding,
				cert.NotAfter.Format(time.RFC3339)))
	}
}
