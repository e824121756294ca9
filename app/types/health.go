// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package types

// ComponentStatus is the health class of a single self-reported component.
type ComponentStatus string

const (
	ComponentHealthy   ComponentStatus = "Healthy"
	ComponentUnhealthy ComponentStatus = "Unhealthy"
)

// ComponentMessage is one message attached to a component in the health
// payload.
type ComponentMessage struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

// ComponentHealth is the normalized view of one component from an
// instance's health-check payload, regardless of wire format.
type ComponentHealth struct {
	Name     string             `json:"name"`
	Version  *string            `json:"version"`
	Status   ComponentStatus    `json:"status"`
	Messages []ComponentMessage `json:"messages,omitempty"`
}

// Healthy reports whether the component declared itself successful.
func (c ComponentHealth) Healthy() bool {
	return c.Status == ComponentHealthy
}

// OverallStatus is the semantic interpretation of the health endpoint's
// HTTP status combined with the payload's own success flag.
type OverallStatus string

const (
	OverallHealthy            OverallStatus = "Healthy"
	OverallUnhealthy          OverallStatus = "Unhealthy"
	OverallPartiallyUnhealthy OverallStatus = "Partially Unhealthy"
	OverallUnknown            OverallStatus = "Unknown"
)

// HealthSummary holds component counts for one outcome.
type HealthSummary struct {
	TotalComponents     int `json:"total_components"`
	HealthyComponents   int `json:"healthy_components"`
	UnhealthyComponents int `json:"unhealthy_components"`
}

// HealthCheckOutcome aggregates everything learned from probing one
// instance's health endpoint. The seven named slots are populated by
// ordered name-pattern matching; a slot stays nil when no component name
// matched its pattern. Component names are not contractually stable
// upstream, so the matching is deliberately fuzzy.
type HealthCheckOutcome struct {
	Endpoint   string        `json:"endpoint"`
	HTTPStatus int           `json:"http_status"`
	Meaning    string        `json:"meaning"`
	Overall    OverallStatus `json:"overall"`
	Successful bool          `json:"successful"`
	Attempts   int           `json:"attempts"`
	Error      *string       `json:"error,omitempty"`

	Components []ComponentHealth `json:"components"`
	Summary    HealthSummary     `json:"summary"`

	PayGlobalDatabase   *ComponentHealth `json:"payglobal_database,omitempty"`
	SelfServiceSoftware *ComponentHealth `json:"self_service_software,omitempty"`
	SelfServiceDatabase *ComponentHealth `json:"self_service_database,omitempty"`
	Bridge              *ComponentHealth `json:"bridge,omitempty"`
	WFEDatabase         *ComponentHealth `json:"wfe_database,omitempty"`
	BridgeCommunication *ComponentHealth `json:"bridge_communication,omitempty"`
	WorkflowEndpoints   *ComponentHealth `json:"workflow_endpoints,omitempty"`
}
