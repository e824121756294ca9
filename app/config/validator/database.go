// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import "time"

const DefaultDatabaseProbeTimeout = 15 * time.Second

// Database configures the live connectivity probe against each discovered
// instance's database. Probes open a connection, ping, and close; nothing
// is held across rules.
type Database struct {
	ProbeTimeout time.Duration `yaml:"probe_timeout" env:"DATABASE_PROBE_TIMEOUT"`

	// User and Password are optional; when empty the probe uses the
	// host's integrated authentication, matching how the instances
	// themselves connect.
	User     string `yaml:"user" env:"DATABASE_USER"`
	Password string `yaml:"password" env:"DATABASE_PASSWORD"`
}

func (d *Database) Validate() error {
	if d.ProbeTimeout == 0 {
		d.ProbeTimeout = DefaultDatabaseProbeTimeout
	}
	return nil
}
