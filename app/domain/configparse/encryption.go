// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package configparse

import (
	"os"
	"regexp"

	"github.com/payglobal/ess-validator/app/types"
)

// Sections of a web.config inspected for protection markers. The product
// only ever encrypts its application settings and the mail credentials.
var encryptionSections = []string{"appSettings", "mailSettings"}

// Encryption inspects the paired web.config for configuration-protection
// markers on the application-settings and mail-authentication sections. A
// section counts as encrypted when its opening tag carries a
// configProtectionProvider attribute or the section body contains an
// EncryptedData element. Missing or unreadable files report as not
// encrypted.
func (p *Parser) Encryption(webConfigPath string) types.EncryptionInfo {
	content, err := os.ReadFile(webConfigPath)
	if err != nil {
		p.logger.WithError(err).Warnf("unable to read web config %s", webConfigPath)
		return types.EncryptionInfo{}
	}
	return ParseEncryption(content)
}

// ParseEncryption evaluates protection markers in raw web.config content.
func ParseEncryption(content []byte) types.EncryptionInfo {
	info := types.EncryptionInfo{Sections: map[string]bool{}}
	for _, section := range encryptionSections {
		encrypted := sectionEncrypted(content, section)
		info.Sections[section] = encrypted
		if encrypted {
			info.Encrypted = true
		}
	}
	return info
}

func sectionEncrypted(content []byte, section string) bool {
	// opening tag with a protection-provider attribute
	openTag := regexp.MustCompile(`(?i)<` + section + `\b[^>]*configProtectionProvider\s*=`)
	if openTag.Match(content) {
		return true
	}

	// EncryptedData element anywhere inside the section body
	body := regexp.MustCompile(`(?is)<` + section + `\b[^>]*>(.*?)</` + section + `>`)
	if m := body.FindSubmatch(content); m != nil {
		encData := regexp.MustCompile(`(?i)<EncryptedData\b`)
		return encData.Match(m[1])
	}
	return false
}
