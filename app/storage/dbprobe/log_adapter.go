// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dbprobe

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"
)

// zerologAdapter routes gorm's logger interface onto zerolog. Probe
// traffic is a single ping, so SQL tracing is only emitted at debug.
type zerologAdapter struct{}

func (a *zerologAdapter) LogMode(gormlogger.LogLevel) gormlogger.Interface { return a }

func (a *zerologAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	log.Ctx(ctx).Info().Msg(fmt.Sprintf(msg, args...))
}

func (a *zerologAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	log.Ctx(ctx).Warn().Msg(fmt.Sprintf(msg, args...))
}

func (a *zerologAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	log.Ctx(ctx).Error().Msg(fmt.Sprintf(msg, args...))
}

func (a *zerologAdapter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()
	ev := log.Ctx(ctx).Debug().
		Dur("elapsed", time.Since(begin)).
		Int64("rows", rows).
		Str("sql", sql)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("gorm trace")
}
