// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package build carries version metadata stamped at link time.
package build

import "fmt"

const (
	AuthorName  = "PayGlobal"
	AuthorEmail = "support@payglobal.example.com"
	Copyright   = "(c) 2024-2026 PayGlobal, Inc."
)

// Overridden via -ldflags at release time.
var (
	Rev  = "unknown"
	Tag  = "dev"
	Time = "unknown"
)

// GetVersion formats the stamped version for CLI output.
func GetVersion() string {
	return fmt.Sprintf("%s.%s-%s", Tag, Rev, Time)
}
