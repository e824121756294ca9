// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package logging configures logrus for the validator binary and hands out
// operation-scoped log entries.
package logging

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

const (
	// OpField tags every entry with the component that produced it.
	OpField = "op"

	// LogSequence is a monotonically increasing per-process sequence number
	// attached to every entry, used to order interleaved log files.
	LogSequence = "seq"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

var sequence atomic.Uint64

type sequenceHook struct{}

func (sequenceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (sequenceHook) Fire(e *logrus.Entry) error {
	e.Data[LogSequence] = sequence.Add(1)
	return nil
}

// NewLogger returns the shared logger for the validator components.
func NewLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

// SetUpLogging configures the level, format, and sequence hook on the
// standard logger. Unknown levels fall back to info.
func SetUpLogging(level, format string) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	switch format {
	case LogFormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logger := logrus.StandardLogger()
	logger.ReplaceHooks(make(logrus.LevelHooks))
	logger.AddHook(sequenceHook{})
}

// LogToFile redirects the standard logger output to the given file,
// creating it if needed. The previous output is replaced, not teed.
func LogToFile(location string) error {
	f, err := os.OpenFile(location, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	logrus.SetOutput(f)
	return nil
}
