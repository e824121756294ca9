// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// DefaultMinimumProductVersion is the hard floor below which an ESS
// instance cannot be upgraded in place.
const DefaultMinimumProductVersion = "4.3.0"

// Versions configures the version-compatibility checks. Compatibility maps
// a product major.minor to the minimum companion (back-office) version it
// requires. Product lines not present in the table are assumed compatible:
// the table is a narrow safety net for known-bad pairings, not an
// exhaustive matrix.
type Versions struct {
	MinimumProductVersion string            `yaml:"minimum_product_version" env:"MINIMUM_PRODUCT_VERSION"`
	Compatibility         map[string]string `yaml:"compatibility"`
}

func (v *Versions) Validate() error {
	if v.MinimumProductVersion == "" {
		v.MinimumProductVersion = DefaultMinimumProductVersion
	}
	if v.Compatibility == nil {
		v.Compatibility = map[string]string{
			"4.6": "4.42.0",
			"4.7": "4.44.0",
		}
	}
	return nil
}

// RequiredCompanion returns the minimum companion version for the given
// product version, keyed by its major.minor prefix. ok is false when the
// product line is not in the table.
func (v *Versions) RequiredCompanion(productVersion string) (string, bool) {
	parts := strings.SplitN(productVersion, ".", 3)
	if len(parts) < 2 {
		return "", false
	}
	required, ok := v.Compatibility[parts[0]+"."+parts[1]]
	return required, ok
}
