// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package configparse extracts structured facts from the two marker
// configuration-file formats found under an instance's install directory.
//
// Extraction is deliberately pattern-based and per-field independent: real
// site configs accumulate years of hand edits, so the absence or corruption
// of one field must never block extraction of the others. A missing or
// unreadable file yields a zero value plus a warning-level log line; this
// package never returns an error to discovery.
package configparse

import (
	"os"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	logging "github.com/payglobal/ess-validator/app/logging/validator"
)

// ESSConfig is the set of facts extractable from an ESS marker config.
// Every field is independently optional.
type ESSConfig struct {
	DatabaseServer     *string
	DatabaseName       *string
	TenantID           *string
	Host               *string
	VirtualRoot        *string
	Protocol           *string
	AuthenticationMode *string
}

// WFEConfig is the set of facts extractable from a WFE marker config.
type WFEConfig struct {
	DatabaseServer *string
	DatabaseName   *string
	ClientURL      *string
	TenantID       *string
	FromAddress    *string
}

var (
	reDataSource     = regexp.MustCompile(`(?i)Data Source=([^;"'<]+)`)
	reInitialCatalog = regexp.MustCompile(`(?i)Initial Catalog=([^;"'<]+)`)

	// <add key="..." value="..."/> entries, attribute order fixed the way
	// the product writes them.
	reAddKey = regexp.MustCompile(`(?i)<add\s+key\s*=\s*"([^"]+)"\s+value\s*=\s*"([^"]*)"`)
)

type Parser struct {
	logger *logrus.Entry
}

func New() *Parser {
	return &Parser{
		logger: logging.NewLogger().WithField(logging.OpField, "configparse"),
	}
}

// ESSFromFile reads and parses an ESS marker config. Unreadable files
// produce a zero value, never an error.
func (p *Parser) ESSFromFile(path string) ESSConfig {
	content, err := os.ReadFile(path)
	if err != nil {
		p.logger.WithError(err).Warnf("unable to read ESS config %s", path)
		return ESSConfig{}
	}
	return ParseESS(content)
}

// WFEFromFile reads and parses a WFE marker config. Unreadable files
// produce a zero value, never an error.
func (p *Parser) WFEFromFile(path string) WFEConfig {
	content, err := os.ReadFile(path)
	if err != nil {
		p.logger.WithError(err).Warnf("unable to read WFE config %s", path)
		return WFEConfig{}
	}
	return ParseWFE(content)
}

// ParseESS extracts ESS facts from raw config content.
func ParseESS(content []byte) ESSConfig {
	keys := settingKeys(content)
	server, database := connectionString(content)
	return ESSConfig{
		DatabaseServer:     server,
		DatabaseName:       database,
		TenantID:           keys["tenantid"],
		Host:               keys["host"],
		VirtualRoot:        keys["virtualroot"],
		Protocol:           keys["protocol"],
		AuthenticationMode: keys["authenticationmode"],
	}
}

// ParseWFE extracts WFE facts from raw config content.
func ParseWFE(content []byte) WFEConfig {
	keys := settingKeys(content)
	server, database := connectionString(content)
	return WFEConfig{
		DatabaseServer: server,
		DatabaseName:   database,
		ClientURL:      keys["clienturl"],
		TenantID:       keys["tenantid"],
		FromAddress:    keys["fromaddress"],
	}
}

// connectionString pulls the database server and name out of the first
// connection string present in the content. Both values are nil when no
// parsable connection string exists.
func connectionString(content []byte) (server, database *string) {
	if m := reDataSource.FindSubmatch(content); m != nil {
		server = trimmed(string(m[1]))
	}
	if m := reInitialCatalog.FindSubmatch(content); m != nil {
		database = trimmed(string(m[1]))
	}
	return server, database
}

// settingKeys collects every <add key value> entry, keyed by the lowercased
// key name.
func settingKeys(content []byte) map[string]*string {
	out := map[string]*string{}
	for _, m := range reAddKey.FindAllSubmatch(content, -1) {
		out[strings.ToLower(string(m[1]))] = trimmed(string(m[2]))
	}
	return out
}

func trimmed(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
