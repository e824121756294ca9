// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package results implements the shared result collector: an append-only,
// thread-safe sink of CheckResult records with derived summary statistics.
//
// Exactly one collector exists per validation run. It is created before any
// rule executes and is handed by reference to every rule and to the
// health-check client; nothing in this repository reaches for it through
// package-level state.
package results

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/payglobal/ess-validator/app/types"
)

// Collector accumulates CheckResults in insertion order. Appends are safe
// for concurrent use; reads return copies so callers can never mutate the
// underlying sequence.
type Collector struct {
	mu      sync.Mutex
	results []types.CheckResult

	runID     uuid.UUID
	startedAt time.Time

	// now is replaceable in tests
	now func() time.Time
}

// NewCollector creates an empty collector stamped with a fresh run ID.
func NewCollector() *Collector {
	return &Collector{
		runID:     uuid.New(),
		startedAt: time.Now().UTC(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// RunID identifies this validation run in reports and logs.
func (c *Collector) RunID() uuid.UUID { return c.runID }

// StartedAt is the UTC time the collector was created.
func (c *Collector) StartedAt() time.Time { return c.startedAt }

// Add appends one result and returns immediately.
func (c *Collector) Add(category, check string, status types.CheckStatus, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, types.CheckResult{
		Category:  category,
		Check:     check,
		Status:    status,
		Message:   message,
		Timestamp: c.now(),
	})
}

// List returns the results in insertion order.
func (c *Collector) List() []types.CheckResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.CheckResult, len(c.results))
	copy(out, c.results)
	return out
}

// Len reports the number of collected results.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

// Summary recomputes the status counts over the full sequence on every
// call. Run sizes are tens to low hundreds of results, so correctness
// beats caching here.
func (c *Collector) Summary() types.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	var s types.Summary
	for _, r := range c.results {
		s.Total++
		switch r.Status {
		case types.StatusPass:
			s.Pass++
		case types.StatusFail:
			s.Fail++
		case types.StatusWarning:
			s.Warning++
		case types.StatusInfo:
			s.Info++
		}
	}
	return s
}

// ByCategory returns the results recorded under the given category, in
// insertion order.
func (c *Collector) ByCategory(category string) []types.CheckResult {
	return c.filter(func(r types.CheckResult) bool { return r.Category == category })
}

// ByStatus returns the results with the given status, in insertion order.
func (c *Collector) ByStatus(status types.CheckStatus) []types.CheckResult {
	return c.filter(func(r types.CheckResult) bool { return r.Status == status })
}

func (c *Collector) filter(keep func(types.CheckResult) bool) []types.CheckResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []types.CheckResult
	for _, r := range c.results {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
