// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import "github.com/pkg/errors"

// Defaults for the minimum host requirements. Every threshold can be
// overridden from the config file or environment.
const (
	DefaultMinDiskFreeGB       = 10.0
	DefaultMinMemoryGB         = 32.0
	DefaultMinCores            = 4
	DefaultMinClockGHz         = 2.0
	DefaultMinDotNetVersion    = "4.8"
	DefaultMinWebServerVersion = "7.5"
	DefaultCertWarningDays     = 30
)

// Requirements holds the minimum host thresholds validated by the resource
// and platform rules.
type Requirements struct {
	MinDiskFreeGB       float64 `yaml:"min_disk_free_gb" env:"MIN_DISK_FREE_GB"`
	MinMemoryGB         float64 `yaml:"min_memory_gb" env:"MIN_MEMORY_GB"`
	MinCores            int     `yaml:"min_cores" env:"MIN_CORES"`
	MinClockGHz         float64 `yaml:"min_clock_ghz" env:"MIN_CLOCK_GHZ"`
	MinDotNetVersion    string  `yaml:"min_dotnet_version" env:"MIN_DOTNET_VERSION"`
	MinWebServerVersion string  `yaml:"min_web_server_version" env:"MIN_WEB_SERVER_VERSION"`

	// CertWarningDays is the window before certificate expiry in which the
	// transport rule emits a WARNING instead of a PASS.
	CertWarningDays int `yaml:"cert_warning_days" env:"CERT_WARNING_DAYS"`
}

func (r *Requirements) Validate() error {
	if r.MinDiskFreeGB < 0 || r.MinMemoryGB < 0 || r.MinClockGHz < 0 {
		return errors.New("requirement thresholds cannot be negative")
	}
	if r.MinDiskFreeGB == 0 {
		r.MinDiskFreeGB = DefaultMinDiskFreeGB
	}
	if r.MinMemoryGB == 0 {
		r.MinMemoryGB = DefaultMinMemoryGB
	}
	if r.MinCores == 0 {
		r.MinCores = DefaultMinCores
	}
	if r.MinClockGHz == 0 {
		r.MinClockGHz = DefaultMinClockGHz
	}
	if r.MinDotNetVersion == "" {
		r.MinDotNetVersion = DefaultMinDotNetVersion
	}
	if r.MinWebServerVersion == "" {
		r.MinWebServerVersion = DefaultMinWebServerVersion
	}
	if r.CertWarningDays == 0 {
		r.CertWarningDays = DefaultCertWarningDays
	}
	return nil
}
