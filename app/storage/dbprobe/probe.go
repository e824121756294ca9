// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package dbprobe opens a short-lived connection to an instance's database
// to prove reachability. A probe opens, pings, and closes; no connection
// is ever held across rules.
package dbprobe

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Prober checks that a database accepts connections.
type Prober interface {
	Probe(ctx context.Context, server, database string) error
}

// DialectorFunc builds the gorm dialector for a server/database pair.
// Production uses SQL Server; tests substitute an in-memory engine.
type DialectorFunc func(server, database string) gorm.Dialector

type prober struct {
	dialector DialectorFunc
	timeout   time.Duration
}

// New returns a SQL Server prober using the given credentials. Empty
// credentials defer to the driver's integrated authentication, matching
// how the instances themselves connect.
func New(user, password string, timeout time.Duration) Prober {
	return &prober{
		timeout: timeout,
		dialector: func(server, database string) gorm.Dialector {
			return sqlserver.Open(DSN(server, database, user, password))
		},
	}
}

// NewWithDialector returns a prober over a custom dialector.
func NewWithDialector(fn DialectorFunc, timeout time.Duration) Prober {
	return &prober{dialector: fn, timeout: timeout}
}

// DSN builds a SQL Server connection string.
func DSN(server, database, user, password string) string {
	u := &url.URL{
		Scheme:   "sqlserver",
		Host:     server,
		RawQuery: url.Values{"database": []string{database}}.Encode(),
	}
	if user != "" {
		u.User = url.UserPassword(user, password)
	}
	return u.String()
}

// Probe opens a connection, pings it within the configured timeout, and
// closes it. The underlying driver error is returned for the caller to
// surface in the check message.
func (p *prober) Probe(ctx context.Context, server, database string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	db, err := gorm.Open(p.dialector(server, database), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		NowFunc:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		Logger:         &zerologAdapter{},
		TranslateError: true,
	})
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("open %s/%s", server, database))
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "access connection pool")
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, fmt.Sprintf("ping %s/%s", server, database))
	}
	return nil
}
