// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/payglobal/ess-validator/app/build"
	"github.com/payglobal/ess-validator/app/functions/ess-validator/validate"
	logging "github.com/payglobal/ess-validator/app/logging/validator"
)

const flagLogLevel = "log-level"

func main() {
	ctx := ctrlCHandler()

	app := &cli.App{
		Name:     "ess-validator",
		Version:  fmt.Sprintf("%s/%s-%s", build.GetVersion(), runtime.GOOS, runtime.GOARCH),
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{Name: build.AuthorName, Email: build.AuthorEmail},
		},
		Copyright:            build.Copyright,
		Usage:                "validates a host's readiness for an ESS/WFE upgrade",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagLogLevel, Usage: "the log level", Required: false, Value: "info"},
		},
		Before: func(c *cli.Context) error {
			logging.SetUpLogging(c.String(flagLogLevel), logging.LogFormatText)
			return nil
		},
	}

	app.Commands = append(
		app.Commands,
		validate.NewCommand(),
	)

	// cli handles ExitCoder errors itself; anything else is unexpected
	if err := app.RunContext(ctx, os.Args); err != nil {
		logrus.WithError(err).Fatal("failed to run the validator")
	}
}

func ctrlCHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt)
	go func() {
		<-stopCh
		cancel()
	}()
	return ctx
}
