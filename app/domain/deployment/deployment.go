// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package deployment derives the deployment-type label from the discovered
// instance counts.
package deployment

import "github.com/payglobal/ess-validator/app/types"

// Classify is a pure function over the instance counts and web-server
// presence. A host without a web server is always None, regardless of any
// leftover install directories that discovery may have been handed.
func Classify(essCount, wfeCount int, hostHasWebServer bool) types.DeploymentType {
	if !hostHasWebServer {
		return types.DeploymentNone
	}

	switch {
	case essCount > 0 && wfeCount > 0:
		return types.DeploymentCombined
	case essCount > 0:
		return types.DeploymentESSOnly
	case wfeCount > 0:
		return types.DeploymentWFEOnly
	default:
		return types.DeploymentNone
	}
}
