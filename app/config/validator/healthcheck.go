// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultHealthCheckTimeout     = 90 * time.Second
	DefaultHealthCheckMaxRetries  = 2
	DefaultHealthCheckRetryDelay  = 5 * time.Second
	DefaultHealthCheckConcurrency = 3
)

// HealthCheck configures the per-instance health endpoint client. All
// timeouts are caller-supplied so tests can set them arbitrarily low.
type HealthCheck struct {
	Timeout     time.Duration `yaml:"timeout" env:"HEALTHCHECK_TIMEOUT"`
	MaxRetries  int           `yaml:"max_retries" env:"HEALTHCHECK_MAX_RETRIES"`
	RetryDelay  time.Duration `yaml:"retry_delay" env:"HEALTHCHECK_RETRY_DELAY"`
	Concurrency int           `yaml:"concurrency" env:"HEALTHCHECK_CONCURRENCY"`
}

func (h *HealthCheck) Validate() error {
	if h.MaxRetries < 0 {
		return errors.New("health check max_retries cannot be negative")
	}
	if h.Timeout == 0 {
		h.Timeout = DefaultHealthCheckTimeout
	}
	if h.MaxRetries == 0 {
		h.MaxRetries = DefaultHealthCheckMaxRetries
	}
	if h.RetryDelay == 0 {
		h.RetryDelay = DefaultHealthCheckRetryDelay
	}
	if h.Concurrency <= 0 {
		h.Concurrency = DefaultHealthCheckConcurrency
	}
	return nil
}
