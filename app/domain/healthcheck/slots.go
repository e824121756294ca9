// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package healthcheck

import (
	"strings"

	"github.com/payglobal/ess-validator/app/types"
)

// slotPattern matches one named component slot by fuzzy name tokens.
// Component names upstream drift across releases ("Self Service Database",
// "Self-ServiceDatabase"), so matching works on a normalized form with
// spaces, hyphens, and underscores stripped.
type slotPattern struct {
	contains []string
	anyOf    []string
	excludes []string
	assign   func(*types.HealthCheckOutcome, *types.ComponentHealth)
}

// slotPatterns is evaluated in order per component; the first matching
// pattern claims the component. The plain Bridge slot must exclude
// "communication" or it would swallow Bridge Communication, and the
// PayGlobal database pattern must run before the generic database ones.
var slotPatterns = []slotPattern{
	{
		contains: []string{"payglobal", "database"},
		excludes: []string{"selfservice", "wfe", "workflow"},
		assign: func(o *types.HealthCheckOutcome, c *types.ComponentHealth) {
			if o.PayGlobalDatabase == nil {
				o.PayGlobalDatabase = c
			}
		},
	},
	{
		// the software component has shipped under several names
		contains: []string{"selfservice"},
		anyOf:    []string{"software", "app", "ess"},
		assign: func(o *types.HealthCheckOutcome, c *types.ComponentHealth) {
			if o.SelfServiceSoftware == nil {
				o.SelfServiceSoftware = c
			}
		},
	},
	{
		contains: []string{"selfservice", "database"},
		assign: func(o *types.HealthCheckOutcome, c *types.ComponentHealth) {
			if o.SelfServiceDatabase == nil {
				o.SelfServiceDatabase = c
			}
		},
	},
	{
		contains: []string{"bridge"},
		excludes: []string{"communication"},
		assign: func(o *types.HealthCheckOutcome, c *types.ComponentHealth) {
			if o.Bridge == nil {
				o.Bridge = c
			}
		},
	},
	{
		contains: []string{"wfe", "database"},
		assign: func(o *types.HealthCheckOutcome, c *types.ComponentHealth) {
			if o.WFEDatabase == nil {
				o.WFEDatabase = c
			}
		},
	},
	{
		contains: []string{"bridge", "communication"},
		assign: func(o *types.HealthCheckOutcome, c *types.ComponentHealth) {
			if o.BridgeCommunication == nil {
				o.BridgeCommunication = c
			}
		},
	},
	{
		contains: []string{"workflow", "endpoint"},
		assign: func(o *types.HealthCheckOutcome, c *types.ComponentHealth) {
			if o.WorkflowEndpoints == nil {
				o.WorkflowEndpoints = c
			}
		},
	},
}

// assignSlots distributes the outcome's components into the named slots.
// Each component lands in at most one slot, and each slot keeps the first
// component that matched it.
func assignSlots(outcome *types.HealthCheckOutcome) {
	for i := range outcome.Components {
		comp := &outcome.Components[i]
		name := normalizeName(comp.Name)
		for _, p := range slotPatterns {
			if p.matches(name) {
				p.assign(outcome, comp)
				break
			}
		}
	}
}

func (p slotPattern) matches(normalized string) bool {
	for _, token := range p.contains {
		if !strings.Contains(normalized, token) {
			return false
		}
	}
	if len(p.anyOf) > 0 {
		found := false
		for _, token := range p.anyOf {
			if strings.Contains(normalized, token) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, token := range p.excludes {
		if strings.Contains(normalized, token) {
			return false
		}
	}
	return true
}

func normalizeName(name string) string {
	repl := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(repl.Replace(name))
}
