// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package healthcheck queries an instance's own health endpoint and
// normalizes its JSON or XML payload into the uniform component-status
// model.
package healthcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/payglobal/ess-validator/app/types"
)

// EndpointPath is the instance's health API, relative to the application
// root.
const EndpointPath = "api/v1/healthcheck"

// Options bound one probe. All values are caller-supplied; the documented
// defaults live in the config package, not here, so tests can set them
// arbitrarily low.
type Options struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration

	// Transport is replaceable in tests. nil means http.DefaultTransport.
	Transport http.RoundTripper
}

// Client probes health endpoints with bounded retries.
type Client struct {
	opts   Options
	logger zerolog.Logger
}

func New(opts Options) *Client {
	return &Client{opts: opts, logger: log.Logger.With().Str("component", "healthcheck").Logger()}
}

// BuildEndpoint joins a base URL and application path into the health
// endpoint URI.
func BuildEndpoint(base, applicationPath string) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q", base)
	}
	parts := []string{strings.Trim(u.Path, "/"), strings.Trim(applicationPath, "/"), EndpointPath}
	joined := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			joined = append(joined, p)
		}
	}
	u.Path = "/" + strings.Join(joined, "/")
	return u.String(), nil
}

// EndpointForInstance derives the health endpoint from a discovered ESS
// instance's own configuration, falling back to the site's first binding
// when the config carried no host.
func EndpointForInstance(inst types.ESSInstance, site types.Site) (string, error) {
	scheme := "http"
	if inst.Protocol != nil && strings.EqualFold(*inst.Protocol, "https") {
		scheme = "https"
	}

	host := ""
	if inst.Host != nil {
		host = *inst.Host
	}
	if host == "" {
		if b, ok := bindingForScheme(site.Bindings, scheme); ok {
			host = hostFromBinding(b)
		}
	}
	if host == "" {
		return "", fmt.Errorf("instance %s%s has no resolvable host", inst.SiteName, inst.ApplicationPath)
	}

	appPath := inst.ApplicationPath
	if inst.VirtualRoot != nil {
		appPath = *inst.VirtualRoot
	}
	return BuildEndpoint(scheme+"://"+host, appPath)
}

// bindingForScheme prefers a binding whose protocol matches the derived
// scheme; only when none matches does any binding serve as the fallback.
func bindingForScheme(bindings []types.Binding, scheme string) (types.Binding, bool) {
	for _, b := range bindings {
		if strings.EqualFold(b.Protocol, scheme) {
			return b, true
		}
	}
	if len(bindings) > 0 {
		return bindings[0], true
	}
	return types.Binding{}, false
}

func hostFromBinding(b types.Binding) string {
	host := b.HostHeader
	if host == "" {
		host = "localhost"
	}
	if b.Port != 0 && b.Port != 80 && b.Port != 443 {
		host = fmt.Sprintf("%s:%d", host, b.Port)
	}
	return host
}

// Check GETs the given health endpoint, retrying transient failures up to
// MaxRetries times with a fixed inter-attempt delay. A 404 is
// non-retryable and fails on the first attempt. The returned outcome is
// never nil; exhausted retries and malformed payloads surface as an Error
// outcome, not a Go error.
func (c *Client) Check(ctx context.Context, endpoint string) *types.HealthCheckOutcome {
	outcome := &types.HealthCheckOutcome{
		Endpoint: endpoint,
		Overall:  types.OverallUnknown,
	}

	// a fresh retryable client per probe keeps the attempt counter and
	// hooks free of cross-instance state
	attempts := 0
	rc := retryablehttp.NewClient()
	rc.RetryMax = c.opts.MaxRetries
	rc.RetryWaitMin = c.opts.RetryDelay
	rc.RetryWaitMax = c.opts.RetryDelay
	rc.HTTPClient = &http.Client{Timeout: c.opts.Timeout, Transport: c.opts.Transport}
	rc.Logger = newRetryableLogAdapter(&c.logger)
	rc.CheckRetry = checkRetry
	rc.RequestLogHook = func(_ retryablehttp.Logger, _ *http.Request, _ int) {
		attempts++
	}
	// return the last response/error as-is; classification happens below
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return c.fail(outcome, attempts, fmt.Errorf("building health check URI: %w", err))
	}

	resp, err := rc.Do(req)
	outcome.Attempts = attempts
	if err != nil {
		return c.fail(outcome, attempts, fmt.Errorf("health endpoint unreachable after %d attempt(s): %w", attempts, err))
	}
	defer resp.Body.Close()

	outcome.HTTPStatus = resp.StatusCode
	c.interpretStatus(outcome)

	if !parseableStatus(resp.StatusCode) {
		return outcome
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(outcome, attempts, fmt.Errorf("reading health response: %w", err))
	}

	payload, err := parsePayload(body, resp.Header.Get("Content-Type"))
	if err != nil {
		if resp.StatusCode == http.StatusInternalServerError {
			// a 500 already told us the site is down; a broken error
			// page is no extra signal
			return outcome
		}
		outcome.Meaning = "malformed health payload"
		return c.fail(outcome, attempts, fmt.Errorf("parsing health response: %w", err))
	}

	c.apply(outcome, payload)
	return outcome
}

// interpretStatus maps the HTTP status onto the semantic overall status.
func (c *Client) interpretStatus(outcome *types.HealthCheckOutcome) {
	switch outcome.HTTPStatus {
	case http.StatusOK:
		outcome.Overall = types.OverallHealthy
		outcome.Successful = true
		outcome.Meaning = "healthy"
	case http.StatusInternalServerError:
		outcome.Overall = types.OverallUnhealthy
		outcome.Meaning = "site is down"
	case http.StatusServiceUnavailable:
		outcome.Overall = types.OverallPartiallyUnhealthy
		outcome.Meaning = "partially unhealthy, see component status"
	case http.StatusNotFound:
		outcome.Meaning = "health endpoint not found"
		msg := fmt.Sprintf("health endpoint returned 404 (%s)", outcome.Endpoint)
		outcome.Error = &msg
	default:
		outcome.Meaning = "unexpected status"
		msg := fmt.Sprintf("health endpoint returned unexpected status %d", outcome.HTTPStatus)
		outcome.Error = &msg
	}
}

// apply folds the parsed payload into the outcome: components, summary,
// named slots, and the payload's own success flag, which overrides the
// HTTP-derived overall status where present.
func (c *Client) apply(outcome *types.HealthCheckOutcome, payload *payload) {
	outcome.Components = payload.Components
	assignSlots(outcome)

	for _, comp := range payload.Components {
		outcome.Summary.TotalComponents++
		if comp.Healthy() {
			outcome.Summary.HealthyComponents++
		} else {
			outcome.Summary.UnhealthyComponents++
		}
	}

	if payload.Successful != nil {
		outcome.Successful = *payload.Successful
		switch {
		case *payload.Successful:
			outcome.Overall = types.OverallHealthy
		case outcome.HTTPStatus == http.StatusServiceUnavailable:
			// 503 already signalled a partial outage; the payload flag
			// confirms rather than overrides it
			outcome.Overall = types.OverallPartiallyUnhealthy
		default:
			outcome.Overall = types.OverallUnhealthy
		}
	}
}

func (c *Client) fail(outcome *types.HealthCheckOutcome, attempts int, err error) *types.HealthCheckOutcome {
	c.logger.Warn().Err(err).Str("endpoint", outcome.Endpoint).Msg("health check failed")
	outcome.Attempts = attempts
	outcome.Overall = types.OverallUnknown
	outcome.Successful = false
	msg := err.Error()
	outcome.Error = &msg
	if outcome.Meaning == "" {
		outcome.Meaning = "error"
	}
	return outcome
}

// parseableStatus reports whether a payload is expected for the status.
// 200 and 503 carry a component document; 500 sometimes does.
func parseableStatus(status int) bool {
	switch status {
	case http.StatusOK, http.StatusInternalServerError, http.StatusServiceUnavailable:
		return true
	}
	return false
}

// checkRetry retries transient transport failures and gateway-adjacent
// statuses. Meaningful statuses (200/500/503) and a 404 are terminal:
// their classification happens after the retry loop, and a missing
// endpoint will not appear by asking again.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return transientError(err), err
	}
	switch resp.StatusCode {
	case http.StatusBadGateway, http.StatusGatewayTimeout:
		return true, nil
	}
	return false, nil
}

// transientError matches the failure modes worth a second attempt.
func transientError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"timeout",
		"timed out",
		"deadline exceeded",
		"connection refused",
		"connection reset",
		"no such host",
		"temporarily unavailable",
		"eof",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
