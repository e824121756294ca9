// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package catalog assembles the fixed, ordered list of validation rules.
package catalog

import (
	"context"

	config "github.com/payglobal/ess-validator/app/config/validator"
	"github.com/payglobal/ess-validator/app/domain/validation"
	"github.com/payglobal/ess-validator/app/domain/validation/database"
	"github.com/payglobal/ess-validator/app/domain/validation/encryption"
	"github.com/payglobal/ess-validator/app/domain/validation/platform"
	"github.com/payglobal/ess-validator/app/domain/validation/resources"
	"github.com/payglobal/ess-validator/app/domain/validation/selfcheck"
	"github.com/payglobal/ess-validator/app/domain/validation/transport"
	"github.com/payglobal/ess-validator/app/domain/validation/versions"
)

// Entry pairs a rule with its stable name.
type Entry struct {
	Name string
	Rule validation.Rule
}

// Catalog holds the rules in their fixed execution order.
type Catalog struct {
	entries []Entry
}

// NewCatalog builds the full rule set. Order mirrors the report layout:
// host checks first, then per-instance checks.
func NewCatalog(ctx context.Context, cfg *config.Settings) *Catalog {
	return &Catalog{entries: []Entry{
		{Name: "resources", Rule: resources.NewRule(ctx, cfg)},
		{Name: "platform", Rule: platform.NewRule(ctx, cfg)},
		{Name: "encryption", Rule: encryption.NewRule(ctx, cfg)},
		{Name: "versions", Rule: versions.NewRule(ctx, cfg)},
		{Name: "transport", Rule: transport.NewRule(ctx, cfg)},
		{Name: "database", Rule: database.NewRule(ctx, cfg)},
		{Name: "selfcheck", Rule: selfcheck.NewRule(ctx, cfg)},
	}}
}

// FromEntries builds a catalog with an explicit rule list, preserving the
// given order.
func FromEntries(entries ...Entry) *Catalog {
	return &Catalog{entries: entries}
}

// List returns the rule names in execution order.
func (c *Catalog) List() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.Name)
	}
	return names
}

// Entries returns the ordered rules.
func (c *Catalog) Entries() []Entry {
	return c.entries
}
