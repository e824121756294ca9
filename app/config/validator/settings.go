// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config contains configuration settings for the upgrade validator.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Settings struct {
	Logging      Logging      `yaml:"logging"`
	Requirements Requirements `yaml:"requirements"`
	Versions     Versions     `yaml:"versions"`
	HealthCheck  HealthCheck  `yaml:"health_check"`
	Database     Database     `yaml:"database"`
}

// NewSettings loads settings from the given config files in order, later
// files overriding earlier ones, then applies environment overrides.
func NewSettings(configFiles ...string) (*Settings, error) {
	var cfg Settings

	// do not allow empty arrays
	if configFiles == nil {
		return nil, errors.New("the config files slice cannot be nil")
	}

	for _, cfgFile := range configFiles {
		if cfgFile == "" {
			continue
		}

		if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("no config file %s: %w", cfgFile, err)
		}

		err := cleanenv.ReadConfig(cfgFile, &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to read config from %s: %w", cfgFile, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultSettings returns settings with every section at its documented
// default, for runs without a config file.
func DefaultSettings() *Settings {
	cfg := &Settings{}
	// defaults never fail validation
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

func (s *Settings) Validate() error {
	if err := s.Logging.Validate(); err != nil {
		return err
	}

	if err := s.Requirements.Validate(); err != nil {
		return err
	}

	if err := s.Versions.Validate(); err != nil {
		return err
	}

	if err := s.HealthCheck.Validate(); err != nil {
		return err
	}

	if err := s.Database.Validate(); err != nil {
		return err
	}

	return nil
}

func (s *Settings) ToYAML() ([]byte, error) {
	raw, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode into yaml: %w", err)
	}
	return raw, nil
}

// ToBytes returns a serialized representation of the data in the class
func (s *Settings) ToBytes() ([]byte, error) {
	return s.ToYAML()
}
