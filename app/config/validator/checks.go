// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

// Categories under which CheckResults are reported.
const (
	CategoryResources   = "System Resources"
	CategoryPlatform    = "Platform"
	CategoryInstances   = "Instance Configuration"
	CategoryVersions    = "Version Compatibility"
	CategoryTransport   = "Transport Security"
	CategoryDatabase    = "Database Connectivity"
	CategorySelfCheck   = "Validator Self-Check"
	CategoryHealthCheck = "Instance Health"
)

// Names of the individual validation checks.
const (
	CheckDiskSpace        = "Disk Space"
	CheckMemory           = "Memory"
	CheckCPUCores         = "CPU Cores"
	CheckCPUClock         = "CPU Clock Speed"
	CheckWebServer        = "Web Server"
	CheckWebServerVersion = "Web Server Version"
	CheckDotNetRuntime    = ".NET Runtime"
	CheckEncryption       = "Configuration Encryption"
	CheckProductVersion   = "Product Version"
	CheckCompanionVersion = "Companion Version"
	CheckHTTPSBinding     = "HTTPS Binding"
	CheckCertificate      = "Certificate Expiry"
	CheckDatabaseReach    = "Database Connection"
	CheckTempWrite        = "Temp Directory Write"
	CheckElevation        = "Elevation"
	CheckInstanceHealth   = "Health Endpoint"
)

// CLI flag names shared between subcommands.
const (
	FlagConfigFile   = "config"
	FlagDescConfFile = "config file path (repeatable)"
	FlagSitesFile    = "sites-file"
	FlagOutputFile   = "output"
	FlagBaseURL      = "url"
)
