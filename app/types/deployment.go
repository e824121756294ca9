// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package types

// DeploymentType labels the ESS/WFE combination present on a host.
type DeploymentType string

const (
	DeploymentNone     DeploymentType = "None"
	DeploymentESSOnly  DeploymentType = "ESS Only"
	DeploymentWFEOnly  DeploymentType = "WFE Only"
	DeploymentCombined DeploymentType = "Combined"
)

// DeploymentResult is the output of one discovery pass.
//
// Invariants: DeploymentType is Combined iff both instance lists are
// non-empty, and None iff both are empty or the host has no web server.
type DeploymentResult struct {
	HostHasWebServer bool           `json:"host_has_web_server"`
	ESSInstances     []ESSInstance  `json:"ess_instances"`
	WFEInstances     []WFEInstance  `json:"wfe_instances"`
	DeploymentType   DeploymentType `json:"deployment_type"`
}
