// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// VersionReader resolves the product version carried by an instance
// binary. Implementations must tolerate missing files by returning nil.
type VersionReader interface {
	Read(path string) *string
}

// vsFixedFileInfoSignature marks the VS_FIXEDFILEINFO block inside a PE
// version resource. Scanning for it directly avoids parsing the resource
// directory tree; the block layout is stable across every toolchain that
// produced these binaries.
var vsFixedFileInfoSignature = []byte{0xBD, 0x04, 0xEF, 0xFE}

type fileVersionReader struct{}

// NewFileVersionReader returns a reader that extracts the file version
// from a PE binary's version resource.
func NewFileVersionReader() VersionReader {
	return fileVersionReader{}
}

func (fileVersionReader) Read(path string) *string {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	idx := bytes.Index(content, vsFixedFileInfoSignature)
	// signature + strucVersion + FileVersionMS + FileVersionLS
	if idx < 0 || idx+16 > len(content) {
		return nil
	}

	ms := binary.LittleEndian.Uint32(content[idx+8 : idx+12])
	ls := binary.LittleEndian.Uint32(content[idx+12 : idx+16])

	v := fmt.Sprintf("%d.%d.%d.%d", ms>>16, ms&0xFFFF, ls>>16, ls&0xFFFF)
	return &v
}
