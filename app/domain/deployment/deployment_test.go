// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package deployment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/payglobal/ess-validator/app/domain/deployment"
	"github.com/payglobal/ess-validator/app/types"
)

func TestClassify(t *testing.T) {
	tcases := []struct {
		name         string
		essCount     int
		wfeCount     int
		hasWebServer bool
		expected     types.DeploymentType
	}{
		{
			name:         "no web server trumps discovered instances",
			essCount:     3,
			wfeCount:     2,
			hasWebServer: false,
			expected:     types.DeploymentNone,
		},
		{
			name:         "web server but nothing installed",
			essCount:     0,
			wfeCount:     0,
			hasWebServer: true,
			expected:     types.DeploymentNone,
		},
		{
			name:         "ess only",
			essCount:     1,
			wfeCount:     0,
			hasWebServer: true,
			expected:     types.DeploymentESSOnly,
		},
		{
			name:         "wfe only",
			essCount:     0,
			wfeCount:     1,
			hasWebServer: true,
			expected:     types.DeploymentWFEOnly,
		},
		{
			name:         "combined",
			essCount:     1,
			wfeCount:     1,
			hasWebServer: true,
			expected:     types.DeploymentCombined,
		},
		{
			name:         "combined with many instances",
			essCount:     4,
			wfeCount:     2,
			hasWebServer: true,
			expected:     types.DeploymentCombined,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			got := deployment.Classify(tc.essCount, tc.wfeCount, tc.hasWebServer)
			assert.Equal(t, tc.expected, got)
		})
	}
}
