// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package healthcheck

import (
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// retryableLogAdapter adapts zerolog to retryablehttp's leveled logger so
// retry attempts land in the validator's structured log stream.
type retryableLogAdapter struct {
	logger *zerolog.Logger
}

func newRetryableLogAdapter(logger *zerolog.Logger) *retryableLogAdapter {
	return &retryableLogAdapter{logger: logger}
}

func (a *retryableLogAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.logger.Error().Fields(kvsToMap(keysAndValues...)).Msg(msg)
}

func (a *retryableLogAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Info().Fields(kvsToMap(keysAndValues...)).Msg(msg)
}

func (a *retryableLogAdapter) Debug(msg string, keysAndValues ...interface{}) {
	a.logger.Debug().Fields(kvsToMap(keysAndValues...)).Msg(msg)
}

func (a *retryableLogAdapter) Warn(msg string, keysAndValues ...interface{}) {
	a.logger.Warn().Fields(kvsToMap(keysAndValues...)).Msg(msg)
}

func kvsToMap(keysAndValues ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			if key, ok := keysAndValues[i].(string); ok {
				m[key] = keysAndValues[i+1]
			}
		}
	}
	return m
}

var _ retryablehttp.LeveledLogger = (*retryableLogAdapter)(nil)
