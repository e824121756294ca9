// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package configparse_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payglobal/ess-validator/app/domain/configparse"
)

const essConfig = `<?xml version="1.0"?>
<configuration>
  <appSettings>
    <add key="TenantId" value="acme" />
    <add key="Host" value="ess.acme.example" />
    <add key="VirtualRoot" value="/ess" />
    <add key="Protocol" value="https" />
    <add key="AuthenticationMode" value="SingleSignOn" />
  </appSettings>
  <connectionStrings>
    <add name="payglobal" connectionString="Data Source=sql01.acme.example;Initial Catalog=PayGlobal;Integrated Security=True" />
  </connectionStrings>
</configuration>`

const wfeConfig = `<?xml version="1.0"?>
<configuration>
  <appSettings>
    <add key="ClientUrl" value="https://ess.acme.example/ess" />
    <add key="TenantId" value="acme" />
    <add key="FromAddress" value="noreply@acme.example" />
  </appSettings>
  <connectionStrings>
    <add name="wfe" connectionString="Data Source=sql02;Initial Catalog=Workflow" />
  </connectionStrings>
</configuration>`

func strval(t *testing.T, p *string) string {
	t.Helper()
	require.NotNil(t, p)
	return *p
}

func TestParseESS(t *testing.T) {
	cfg := configparse.ParseESS([]byte(essConfig))

	assert.Equal(t, "sql01.acme.example", strval(t, cfg.DatabaseServer))
	assert.Equal(t, "PayGlobal", strval(t, cfg.DatabaseName))
	assert.Equal(t, "acme", strval(t, cfg.TenantID))
	assert.Equal(t, "ess.acme.example", strval(t, cfg.Host))
	assert.Equal(t, "/ess", strval(t, cfg.VirtualRoot))
	assert.Equal(t, "https", strval(t, cfg.Protocol))
	assert.Equal(t, "SingleSignOn", strval(t, cfg.AuthenticationMode))
}

func TestParseESS_FieldsAreIndependent(t *testing.T) {
	// a config with a corrupt connection string still yields the settings
	content := `<configuration>
  <add key="TenantId" value="acme" />
  <add key="Host" value="" />
</configuration>`

	cfg := configparse.ParseESS([]byte(content))
	assert.Equal(t, "acme", strval(t, cfg.TenantID))
	assert.Nil(t, cfg.Host, "empty values normalize to nil")
	assert.Nil(t, cfg.DatabaseServer)
	assert.Nil(t, cfg.DatabaseName)
}

func TestParseESS_KeysAreCaseInsensitive(t *testing.T) {
	content := `<add key="TENANTID" value="acme" />`
	cfg := configparse.ParseESS([]byte(content))
	assert.Equal(t, "acme", strval(t, cfg.TenantID))
}

func TestParseWFE(t *testing.T) {
	cfg := configparse.ParseWFE([]byte(wfeConfig))

	assert.Equal(t, "sql02", strval(t, cfg.DatabaseServer))
	assert.Equal(t, "Workflow", strval(t, cfg.DatabaseName))
	assert.Equal(t, "https://ess.acme.example/ess", strval(t, cfg.ClientURL))
	assert.Equal(t, "acme", strval(t, cfg.TenantID))
	assert.Equal(t, "noreply@acme.example", strval(t, cfg.FromAddress))
}

func TestESSFromFile_UnreadableYieldsZeroValue(t *testing.T) {
	p := configparse.New()
	cfg := p.ESSFromFile(filepath.Join(t.TempDir(), "missing", "payglobal.config"))
	assert.Equal(t, configparse.ESSConfig{}, cfg)
}

func TestParseEncryption(t *testing.T) {
	tcases := []struct {
		name      string
		content   string
		encrypted bool
	}{
		{
			name: "plain sections",
			content: `<configuration>
  <appSettings><add key="a" value="1"/></appSettings>
  <mailSettings><smtp from="x@y"/></mailSettings>
</configuration>`,
			encrypted: false,
		},
		{
			name: "protection provider attribute",
			content: `<configuration>
  <appSettings configProtectionProvider="RsaProtectedConfigurationProvider">
    <EncryptedData></EncryptedData>
  </appSettings>
</configuration>`,
			encrypted: true,
		},
		{
			name: "encrypted data element without attribute",
			content: `<configuration>
  <mailSettings>
    <EncryptedData Type="http://www.w3.org/2001/04/xmlenc#Element"/>
  </mailSettings>
</configuration>`,
			encrypted: true,
		},
		{
			name:      "unrelated encrypted section is ignored",
			content:   `<configuration><custom configProtectionProvider="x"/></configuration>`,
			encrypted: false,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			info := configparse.ParseEncryption([]byte(tc.content))
			assert.Equal(t, tc.encrypted, info.Encrypted)
		})
	}
}
