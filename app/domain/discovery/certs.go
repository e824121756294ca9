// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"github.com/payglobal/ess-validator/app/types"
)

// CertInspector reads the serving certificate of one HTTPS binding.
type CertInspector interface {
	Inspect(binding types.Binding) types.CertificateExpiry
}

type tlsInspector struct {
	timeout time.Duration
}

// NewTLSInspector returns an inspector that dials the binding and records
// the peer certificate's expiry. Verification is disabled on purpose: the
// question is when the certificate expires, not whether its chain is
// trusted by this host.
func NewTLSInspector(timeout time.Duration) CertInspector {
	return tlsInspector{timeout: timeout}
}

func (t tlsInspector) Inspect(binding types.Binding) types.CertificateExpiry {
	host := binding.HostHeader
	if host == "" {
		host = "localhost"
	}
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", binding.Port))

	out := types.CertificateExpiry{Binding: addr}

	dialer := &net.Dialer{Timeout: t.timeout}
	// #nosec G402: chain validation is not the point of this probe
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         host,
	})
	if err != nil {
		msg := err.Error()
		out.Error = &msg
		return out
	}
	defer conn.Close()

	certs := conn.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		msg := "no peer certificate presented"
		out.Error = &msg
		return out
	}

	notAfter := certs[0].NotAfter
	out.NotAfter = &notAfter
	out.Subject = certs[0].Subject.CommonName
	return out
}
