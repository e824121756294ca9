// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package types contains the typed records shared by the discovery,
// validation, and health-check components. Every optional value is an
// explicit pointer field rather than a key that may or may not be present.
package types

import "time"

// CheckStatus is the outcome class of a single validation check.
type CheckStatus string

const (
	StatusPass    CheckStatus = "PASS"
	StatusFail    CheckStatus = "FAIL"
	StatusWarning CheckStatus = "WARNING"
	StatusInfo    CheckStatus = "INFO"
)

// CheckResult is one typed outcome produced by a validation rule or by the
// health-check client. Results are immutable once created and are never
// deduplicated; the same Category+Check pair may legitimately repeat once
// per discovered instance.
type CheckResult struct {
	Category  string      `json:"category"`
	Check     string      `json:"check"`
	Status    CheckStatus `json:"status"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

// Summary holds counts by status over an ordered CheckResult sequence.
type Summary struct {
	Total   int `json:"total"`
	Pass    int `json:"pass"`
	Fail    int `json:"fail"`
	Warning int `json:"warning"`
	Info    int `json:"info"`
}
