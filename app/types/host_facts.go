// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package types

// Binding is one protocol binding of a web-server site.
type Binding struct {
	Protocol   string `json:"protocol" yaml:"protocol"`
	Port       int    `json:"port" yaml:"port"`
	HostHeader string `json:"host_header" yaml:"host_header"`
}

// Application is one sub-application under a site.
type Application struct {
	Path            string `json:"path" yaml:"path"`
	PhysicalPath    string `json:"physical_path" yaml:"physical_path"`
	ApplicationPool string `json:"application_pool" yaml:"application_pool"`
}

// Site is one web-server site with its root path, sub-applications, and
// bindings. Site roots and sub-applications are probed independently during
// discovery.
type Site struct {
	Name            string        `json:"name" yaml:"name"`
	PhysicalPath    string        `json:"physical_path" yaml:"physical_path"`
	ApplicationPool string        `json:"application_pool" yaml:"application_pool"`
	Applications    []Application `json:"applications" yaml:"applications"`
	Bindings        []Binding     `json:"bindings" yaml:"bindings"`
}

// HostFacts is the opaque host-facts structure produced by the fact
// collector. Nil pointer fields mean the fact could not be collected;
// absence of data is never treated as evidence of a problem.
type HostFacts struct {
	HasWebServer     bool     `json:"has_web_server" yaml:"has_web_server"`
	WebServerVersion *string  `json:"web_server_version" yaml:"web_server_version"`
	Sites            []Site   `json:"sites" yaml:"sites"`
	DotNetVersions   []string `json:"dotnet_versions" yaml:"dotnet_versions"`

	DiskFreeGB      *float64 `json:"disk_free_gb" yaml:"disk_free_gb"`
	DiskTotalGB     *float64 `json:"disk_total_gb" yaml:"disk_total_gb"`
	MemoryGB        *float64 `json:"memory_gb" yaml:"memory_gb"`
	CoreCount       *int     `json:"core_count" yaml:"core_count"`
	AverageClockGHz *float64 `json:"average_clock_ghz" yaml:"average_clock_ghz"`

	SQLServerInstalled bool `json:"sql_server_installed" yaml:"sql_server_installed"`
}
