// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package hostfacts

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/payglobal/ess-validator/app/types"
)

// inventory is the on-disk shape of a site inventory file. It mirrors
// HostFacts but only carries the web-server topology; resource facts are
// always measured live.
type inventory struct {
	HasWebServer     *bool        `yaml:"has_web_server"`
	WebServerVersion *string      `yaml:"web_server_version"`
	DotNetVersions   []string     `yaml:"dotnet_versions"`
	Sites            []types.Site `yaml:"sites"`
}

// LoadInventory reads a site inventory file and folds its web-server
// facts into the given facts structure. The file describes what the host
// web server is serving: sites, sub-applications, bindings, and the
// platform versions the validator cannot measure from inside the process.
func LoadInventory(path string, facts *types.HostFacts) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading site inventory %s", path)
	}

	var inv inventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		return errors.Wrapf(err, "parsing site inventory %s", path)
	}

	facts.Sites = inv.Sites
	facts.WebServerVersion = inv.WebServerVersion
	facts.DotNetVersions = inv.DotNetVersions
	if inv.HasWebServer != nil {
		facts.HasWebServer = *inv.HasWebServer
	} else {
		// a populated inventory implies a web server
		facts.HasWebServer = len(inv.Sites) > 0
	}
	return nil
}
