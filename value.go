// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"encoding/binary"
	"math"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// tiffType represents the basic tiff tag data types.
type tiffType uint16

const (
	typeUnsignedByte  tiffType = 1
	typeASCII         tiffType = 2
	typeUnsignedShort tiffType = 3
	typeUnsignedLong  tiffType = 4
	typeUnsignedRat   tiffType = 5
	typeSignedByte    tiffType = 6
	typeUndef         tiffType = 7
	typeSignedShort   tiffType = 8
	typeSignedLong    tiffType = 9
	typeSignedRat     tiffType = 10
	typeFloat         tiffType = 11
	typeDouble        tiffType = 12
)

// Size in bytes of each type.
var tiffTypeSize = map[tiffType]uint32{
	typeUnsignedByte:  1,
	typeASCII:         1,
	typeUnsignedShort: 2,
	typeUnsignedLong:  4,
	typeUnsignedRat:   8,
	typeSignedByte:    1,
	typeUndef:         1,
	typeSignedShort:   2,
	typeSignedLong:    4,
	typeSignedRat:     8,
	typeFloat:         4,
	typeDouble:        8,
}

func (t tiffType) valid() bool {
	_, ok := tiffTypeSize[t]
	return ok
}

// Unparsed is the value stored for entries whose type code is unknown.
// The raw bytes are left alone; only the shape of the entry is recorded.
type Unparsed struct {
	Type  uint16
	Count uint32
}

// decodeValue decodes count elements of typ starting at offset. The region
// read never exceeds count × type-width bytes. Multi-value results come
// back as []any in entry order; Byte and Undef sequences come back as
// []byte.
func decodeValue(r *reader, typ tiffType, count uint32, offset int) (any, error) {
	if count == 0 {
		return nil, nil
	}

	size, ok := tiffTypeSize[typ]
	if !ok {
		return Unparsed{Type: uint16(typ), Count: count}, nil
	}
	total := int(size) * int(count)
	if !r.in(offset, total) {
		return nil, newBoundsErrorf(offset, total, r.len())
	}

	if typ == typeASCII {
		b, err := r.bytes(offset, total)
		if err != nil {
			return nil, err
		}
		return decodeASCII(b), nil
	}

	if typ == typeUnsignedByte || typ == typeSignedByte || typ == typeUndef {
		b, err := r.bytes(offset, total)
		if err != nil {
			return nil, err
		}
		// Copy, the reader's slice aliases the parse buffer.
		bs := make([]byte, total)
		copy(bs, b)
		if count == 1 {
			return bs[0], nil
		}
		return bs, nil
	}

	if count == 1 {
		return decodeOne(r, typ, offset)
	}

	values := make([]any, count)
	for i := 0; i < int(count); i++ {
		v, err := decodeOne(r, typ, offset+i*int(size))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func decodeOne(r *reader, typ tiffType, offset int) (any, error) {
	switch typ {
	case typeUnsignedShort:
		return r.u16(offset)
	case typeSignedShort:
		v, err := r.u16(offset)
		return int16(v), err
	case typeUnsignedLong:
		return r.u32(offset)
	case typeSignedLong:
		v, err := r.u32(offset)
		return int32(v), err
	case typeUnsignedRat:
		n, d, err := r.rational(offset)
		if err != nil {
			return nil, err
		}
		if d == 0 {
			// Degenerate rational, keep the bare numerator.
			return n, nil
		}
		return NewRat[uint32](n, d), nil
	case typeSignedRat:
		n, d, err := r.rational(offset)
		if err != nil {
			return nil, err
		}
		if d == 0 {
			return int32(n), nil
		}
		return NewRat[int32](int32(n), int32(d)), nil
	case typeFloat:
		v, err := r.u32(offset)
		if err != nil {
			return nil, err
		}
		return float64(math.Float32frombits(v)), nil
	case typeDouble:
		const n = 8
		if !r.in(offset, n) {
			return nil, newBoundsErrorf(offset, n, r.len())
		}
		return math.Float64frombits(r.byteOrder.Uint64(r.buf[offset : offset+n])), nil
	default:
		return nil, newInvalidFormatErrorf("unknown tiff type %d", typ)
	}
}

// decodeASCII truncates at the first NUL, decodes as UTF-8 with lossy
// replacement and trims trailing NULs and whitespace.
func decodeASCII(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	s := strings.ToValidUTF8(string(b), "�")
	return strings.TrimRight(s, "\x00 \t\r\n")
}

// userCommentPrefixLen is the length of the character code prefix on the
// EXIF UserComment tag.
const userCommentPrefixLen = 8

// decodeUserComment strips the 8-byte character code prefix and decodes
// the remainder. UNICODE payloads are UCS-2 in the directory's byte order.
func decodeUserComment(b []byte, byteOrder binary.ByteOrder) string {
	if len(b) < userCommentPrefixLen {
		return printableString(string(b))
	}
	prefix := string(trimBytesNulls(b[:userCommentPrefixLen]))
	rest := b[userCommentPrefixLen:]
	switch prefix {
	case "UNICODE":
		endian := unicode.BigEndian
		if byteOrder == binary.LittleEndian {
			endian = unicode.LittleEndian
		}
		dec := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
		s, err := dec.String(string(rest))
		if err != nil {
			return printableString(string(rest))
		}
		return printableString(s)
	default:
		// ASCII, JIS and undefined prefixes all degrade to printable bytes.
		return printableString(string(trimBytesNulls(rest)))
	}
}
