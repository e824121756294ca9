// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package version compares dotted product version strings. Product and
// companion versions carry up to four numeric components
// (major.minor.patch.build); shorter strings compare as if padded with
// zeros.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is a parsed dotted version.
type Version struct {
	Major int
	Minor int
	Patch int
	Build int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

var versionRegex = regexp.MustCompile(`v?(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:\.(\d+))?`)

// Parse parses a version string. The string must consist solely of the
// version (surrounding whitespace allowed).
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil || matches[0] != s {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}

	return fromMatches(matches), nil
}

func fromMatches(matches []string) Version {
	var v Version
	v.Major, _ = strconv.Atoi(matches[1])
	if matches[2] != "" {
		v.Minor, _ = strconv.Atoi(matches[2])
	}
	if matches[3] != "" {
		v.Patch, _ = strconv.Atoi(matches[3])
	}
	if matches[4] != "" {
		v.Build, _ = strconv.Atoi(matches[4])
	}
	return v
}

// Compare parses both strings and returns -1, 0, or 1 as a is less than,
// equal to, or greater than b.
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	for _, d := range [][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
		{v.Build, other.Build},
	} {
		if d[0] < d[1] {
			return -1
		}
		if d[0] > d[1] {
			return 1
		}
	}
	return 0
}

// AtLeast reports whether the version string s parses and is >= min.
// Unparsable input reports false with the error.
func AtLeast(s, min string) (bool, error) {
	cmp, err := Compare(s, min)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}
