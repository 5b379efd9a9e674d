// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"bytes"
	"encoding/binary"
)

const (
	byteOrderBigEndian    = 0x4d4d
	byteOrderLittleEndian = 0x4949
)

// TIFF magic variants seen in RAW containers. The byte order mark is
// followed by a 2-byte magic that differs per dialect; the 4-byte first
// directory offset follows in all of them.
const (
	tiffMagicClassic   = 42     // TIFF, CR2, NEF, ARW, DNG
	tiffMagicOlympusRO = 0x4f52 // "OR", ORF
	tiffMagicOlympusRS = 0x5253 // "SR", some ORF revisions
	tiffMagicRW2       = 85     // Panasonic RW2/RWL
)

// Proprietary container signatures handled by the vendor structural path.
var (
	sigHEAPCCDR = []byte("HEAPCCDR") // Canon CRW, at offset 6
	sigRAF      = []byte("FUJIFILMCCD-RAW")
)

// tiffHeader is a parsed TIFF-family header: byte order mark, dialect
// magic, and the offset of the first directory relative to the header.
type tiffHeader struct {
	byteOrder binary.ByteOrder
	magic     uint16
	dirOffset uint32
}

// parseTIFFHeader reads a TIFF-family header at base. The header is 8
// bytes: byte order mark, magic, first-IFD offset.
func parseTIFFHeader(buf []byte, base int) (tiffHeader, error) {
	var h tiffHeader
	if base < 0 || base+8 > len(buf) {
		return h, newBoundsErrorf(base, 8, len(buf))
	}

	switch binary.BigEndian.Uint16(buf[base : base+2]) {
	case byteOrderBigEndian:
		h.byteOrder = binary.BigEndian
	case byteOrderLittleEndian:
		h.byteOrder = binary.LittleEndian
	default:
		return h, newInvalidFormatErrorf("no byte order mark at %#x", base)
	}

	h.magic = h.byteOrder.Uint16(buf[base+2 : base+4])
	switch h.magic {
	case tiffMagicClassic, tiffMagicOlympusRO, tiffMagicOlympusRS, tiffMagicRW2:
	default:
		return h, newInvalidFormatErrorf("unknown tiff magic %#x", h.magic)
	}

	h.dirOffset = h.byteOrder.Uint32(buf[base+4 : base+8])
	if h.dirOffset < 8 && h.magic == tiffMagicClassic {
		return h, newInvalidFormatErrorf("first directory offset %d", h.dirOffset)
	}

	return h, nil
}

func isCRW(buf []byte) bool {
	return len(buf) >= 14 &&
		(bytes.HasPrefix(buf, []byte("II")) || bytes.HasPrefix(buf, []byte("MM"))) &&
		bytes.Equal(buf[6:14], sigHEAPCCDR)
}

func isRAF(buf []byte) bool {
	return bytes.HasPrefix(buf, sigRAF)
}

// rafJPEGOffsetPos is the fixed position of the big-endian offset to the
// embedded JPEG in a RAF header.
const rafJPEGOffsetPos = 0x54
