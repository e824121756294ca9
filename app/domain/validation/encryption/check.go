// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package encryption applies the encryption-versus-authentication-mode
// upgrade policy to every discovered ESS instance.
package encryption

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/results"
	"github.com/payglobal/ess-validator/app/domain/validation"
	logging "github.com/payglobal/ess-validator/app/logging/validator"
	"github.com/payglobal/ess-validator/app/types"
)

// SingleSignOnMode is the authentication mode whose encrypted configs the
// upgrade cannot migrate in place.
const SingleSignOnMode = "SingleSignOn"

type checker struct {
	cfg    *config.Settings
	logger *logrus.Entry
}

func NewRule(ctx context.Context, cfg *config.Settings) validation.Rule {
	return &checker{
		cfg: cfg,
		logger: logging.NewLogger().
			WithContext(ctx).WithField(logging.OpField, "encryption"),
	}
}

// Check applies the policy table per instance:
//
//	SingleSignOn + encrypted      FAIL (decrypt before upgrade)
//	SingleSignOn + not encrypted  PASS
//	other mode   + encrypted      INFO (encryption not required here)
//	other mode   + not encrypted  PASS
func (c *checker) Check(_ context.Context, env *validation.Env, collector *results.Collector) error {
	for _, inst := range env.Deployment.ESSInstances {
		c.instance(inst, collector)
	}
	return nil
}

func (c *checker) instance(inst types.ESSInstance, collector *results.Collector) {
	label := fmt.Sprintf("%s%s", inst.SiteName, inst.ApplicationPath)

	if inst.AuthenticationMode == nil {
		collector.Add(config.CategoryInstances, config.CheckEncryption, types.StatusWarning,
			fmt.Sprintf("%s: authentication mode could not be determined", label))
		return
	}

	sso := *inst.AuthenticationMode == SingleSignOnMode
	encrypted := inst.Encryption.Encrypted

	switch {
	case sso && encrypted:
		collector.Add(config.CategoryInstances, config.CheckEncryption, types.StatusFail,
			fmt.Sprintf("%s: SingleSignOn configuration is encrypted; decrypt before upgrade", label))
	case sso:
		collector.Add(config.CategoryInstances, config.CheckEncryption, types.StatusPass,
			fmt.Sprintf("%s: SingleSignOn configuration is not encrypted", label))
	case encrypted:
		collector.Add(config.CategoryInstances, config.CheckEncryption, types.StatusInfo,
			fmt.Sprintf("%s: configuration is encrypted (mode %s); encryption is not required outside SingleSignOn",
				label, *inst.AuthenticationMode))
	default:
		collector.Add(config.CategoryInstances, config.CheckEncryption, types.StatusPass,
			fmt.Sprintf("%s: configuration is not encrypted (mode %s)", label, *inst.AuthenticationMode))
	}
}
