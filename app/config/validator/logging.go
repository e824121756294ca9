// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"

	"github.com/pkg/errors"
)

type Logging struct {
	Level    string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format   string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	Location string `yaml:"location" env:"LOG_LOCATION"`
}

func (l *Logging) Validate() error {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
	switch strings.ToLower(l.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		return errors.Errorf("unknown log level %q", l.Level)
	}
	return nil
}
