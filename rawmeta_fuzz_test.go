// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"encoding/binary"
	"errors"
	"testing"
	"time"
)

func FuzzParse(f *testing.F) {
	seeds := [][]byte{
		fuzzSeedTIFF(binary.LittleEndian),
		fuzzSeedTIFF(binary.BigEndian),
		fuzzSeedCRW(),
		fuzzSeedRAF(),
		[]byte("II*\x00\xff\xff\xff\xff"),
		[]byte("not a raw file at all"),
		{0x00},
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, buf []byte) {
		rec, err := Parse(buf, Options{MaxParseTime: 200 * time.Millisecond})
		if rec == nil {
			t.Fatal("nil record from Parse")
		}
		if err != nil && !errors.Is(err, ErrInvalidFormat) && !errors.Is(err, ErrBufferBounds) {
			t.Fatalf("unknown error in Parse: %v %T", err, err)
		}
	})
}

func fuzzSeedTIFF(bo testByteOrder) []byte {
	w := newBufWriter(bo)
	w.tiffHeader()
	w.u16(2)
	w.entryShort(0x0100, 4000)
	w.entryShort(0x0112, 1)
	w.u32(0)
	return w.b
}

func fuzzSeedCRW() []byte {
	w := newBufWriter(binary.LittleEndian)
	w.raw([]byte("II")).u32(26).raw([]byte("HEAPCCDR"))
	for i := 0; i < 4; i++ {
		w.u16(uint16(0x0800 + i)).u16(uint16(typeUnsignedShort)).u32(1)
		w.u16(uint16(i)).u16(0)
	}
	return w.b
}

func fuzzSeedRAF() []byte {
	w := newBufWriter(binary.BigEndian)
	w.raw([]byte("FUJIFILMCCD-RAW ")).fill(0, rafJPEGOffsetPos-w.pos())
	w.u32(0x60) // embedded JPEG position
	w.fill(0, 0x60-w.pos())
	w.raw([]byte{0xff, 0xd8, 0xff, 0xe1}).u16(0x100).raw([]byte("Exif\x00\x00"))
	inner := newBufWriter(binary.LittleEndian)
	inner.tiffHeader()
	inner.u16(1)
	inner.entryShort(0x0112, 6)
	inner.u32(0)
	return append(w.b, inner.b...)
}
