// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package types

import "time"

// InstanceIdentity is the part of an instance record shared by the ESS and
// WFE variants: where the application lives on the host's web server.
type InstanceIdentity struct {
	SiteName        string `json:"site_name"`
	ApplicationPath string `json:"application_path"`
	PhysicalPath    string `json:"physical_path"`
	ApplicationPool string `json:"application_pool"`
}

// DatabaseBinding names the relational database an instance is bound to.
// Both fields are nil only when the marker configuration file carried no
// parsable connection string.
type DatabaseBinding struct {
	Server   *string `json:"server"`
	Database *string `json:"database"`
}

// CertificateExpiry is the expiry verdict for one HTTPS binding of an ESS
// site.
type CertificateExpiry struct {
	Binding  string     `json:"binding"`
	NotAfter *time.Time `json:"not_after"`
	Error    *string    `json:"error,omitempty"`
	Subject  string     `json:"subject,omitempty"`
}

// TLSInfo describes the transport configuration of an ESS site.
type TLSInfo struct {
	UsesHTTPS    bool                `json:"uses_https"`
	Certificates []CertificateExpiry `json:"certificates,omitempty"`
}

// EncryptionInfo reports whether the instance's web config is protected,
// with a breakdown by inspected section.
type EncryptionInfo struct {
	Encrypted bool            `json:"encrypted"`
	Sections  map[string]bool `json:"sections,omitempty"`
}

// VersionCompatibility is the derived verdict from the product-version to
// companion-version compatibility table.
type VersionCompatibility string

const (
	CompatibilityCompatible   VersionCompatibility = "Compatible"
	CompatibilityIncompatible VersionCompatibility = "Incompatible"
	CompatibilityUnknown      VersionCompatibility = "Unknown"
)

// ESSInstance is one discovered employee self-service installation.
// Instances are created once per discovery pass and are immutable
// thereafter; they are never persisted.
type ESSInstance struct {
	InstanceIdentity
	DatabaseBinding

	TenantID           *string              `json:"tenant_id"`
	Host               *string              `json:"host"`
	VirtualRoot        *string              `json:"virtual_root"`
	Protocol           *string              `json:"protocol"`
	AuthenticationMode *string              `json:"authentication_mode"`
	Encryption         EncryptionInfo       `json:"encryption"`
	ProductVersion     *string              `json:"product_version"`
	CompanionVersion   *string              `json:"companion_version"`
	Compatibility      VersionCompatibility `json:"compatibility"`
	TLS                TLSInfo              `json:"tls"`
}

// WFEInstance is one discovered workflow-engine installation.
type WFEInstance struct {
	InstanceIdentity
	DatabaseBinding

	ClientURL   *string `json:"client_url"`
	TenantID    *string `json:"tenant_id"`
	FromAddress *string `json:"from_address"`
}
