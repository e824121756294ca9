// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package healthcheck

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/payglobal/ess-validator/app/types"
)

// payload is the format-independent view of a health response body.
type payload struct {
	Successful *bool
	Components []types.ComponentHealth
}

// parsePayload sniffs the body as JSON or XML and normalizes either into
// the shared component model. The Content-Type header is a hint only;
// instances are known to mislabel it, so the first non-space byte decides
// when the two disagree.
func parsePayload(body []byte, contentType string) (*payload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("empty health response body")
	}

	switch trimmed[0] {
	case '{':
		return parseJSON(trimmed)
	case '<':
		return parseXML(trimmed)
	}

	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "json"):
		return parseJSON(trimmed)
	case strings.Contains(ct, "xml"):
		return parseXML(trimmed)
	}
	return nil, fmt.Errorf("unrecognized health response body (content type %q)", contentType)
}

// jsonResponse mirrors the instance's JSON health document.
type jsonResponse struct {
	Successful *bool           `json:"Successful"`
	Components []jsonComponent `json:"Components"`
}

type jsonComponent struct {
	ComponentName     string        `json:"ComponentName"`
	ComponentVersion  *string       `json:"ComponentVersion"`
	Successful        bool          `json:"Successful"`
	ComponentMessages []jsonMessage `json:"ComponentMessages"`
}

type jsonMessage struct {
	Type    string `json:"Type"`
	Message string `json:"Message"`
}

func parseJSON(body []byte) (*payload, error) {
	var doc jsonResponse
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding JSON health response")
	}

	out := &payload{Successful: doc.Successful}
	for _, c := range doc.Components {
		comp := types.ComponentHealth{
			Name:    c.ComponentName,
			Version: c.ComponentVersion,
			Status:  componentStatus(c.Successful),
		}
		for _, m := range c.ComponentMessages {
			comp.Messages = append(comp.Messages, types.ComponentMessage{Type: m.Type, Detail: m.Message})
		}
		out.Components = append(out.Components, comp)
	}
	return out, nil
}

// xmlResponse mirrors the instance's XML health document. Boolean fields
// arrive as the strings "true"/"false".
type xmlResponse struct {
	XMLName    xml.Name       `xml:"HealthCheckResponse"`
	Successful string         `xml:"Successful"`
	Components []xmlComponent `xml:"Components>Component"`
}

type xmlComponent struct {
	ComponentName    string       `xml:"ComponentName"`
	ComponentVersion string       `xml:"ComponentVersion"`
	Successful       string       `xml:"Successful"`
	Messages         []xmlMessage `xml:"ComponentMessages>ComponentMessage"`
}

type xmlMessage struct {
	Type    string `xml:"Type"`
	Message string `xml:"Message"`
}

func parseXML(body []byte) (*payload, error) {
	var doc xmlResponse
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding XML health response")
	}

	out := &payload{Successful: xmlBool(doc.Successful)}
	for _, c := range doc.Components {
		comp := types.ComponentHealth{
			Name:   c.ComponentName,
			Status: componentStatus(strings.EqualFold(c.Successful, "true")),
		}
		if c.ComponentVersion != "" {
			v := c.ComponentVersion
			comp.Version = &v
		}
		for _, m := range c.Messages {
			comp.Messages = append(comp.Messages, types.ComponentMessage{Type: m.Type, Detail: m.Message})
		}
		out.Components = append(out.Components, comp)
	}
	return out, nil
}

func componentStatus(successful bool) types.ComponentStatus {
	if successful {
		return types.ComponentHealthy
	}
	return types.ComponentUnhealthy
}

// xmlBool maps the wire strings onto an optional bool; anything else
// means the element was absent or unusable.
func xmlBool(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		b := true
		return &b
	case "false":
		b := false
		return &b
	}
	return nil
}
