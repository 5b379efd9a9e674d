// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"bytes"
	"encoding/binary"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestResolverPicksUniquePlausibleBase(t *testing.T) {
	c := qt.New(t)

	// A buffer where raw offset 4 is plausible ASCII under exactly one
	// base interpretation.
	w := newBufWriter(binary.LittleEndian)
	w.fill(0x01, 64) // header region: unprintable under absolute
	headerBase := 32
	w.fill(0x01, 64)

	// Target: headerBase + 4 must hold printable text.
	copy(w.b[headerBase+4:], []byte("LENS 24-70\x00"))

	r := newReader(w.b, binary.LittleEndian)
	res := offsetResolver{bases: []offsetBase{baseAbsolute, baseHeader}}
	ctx := offsetContext{header: headerBase}

	abs, err := res.resolve(r, 4, 11, ctx, plausibleString)
	c.Assert(err, qt.IsNil)
	// Absolute (offset 4) is unprintable, header-relative passes.
	c.Assert(abs, qt.Equals, headerBase+4)
}

func TestResolverOrderWinsWhenBothPlausible(t *testing.T) {
	c := qt.New(t)

	w := newBufWriter(binary.LittleEndian)
	w.raw([]byte("AAAAAAAA"))
	w.raw([]byte("BBBBBBBB"))

	r := newReader(w.b, binary.LittleEndian)
	ctx := offsetContext{header: 8}

	res := offsetResolver{bases: []offsetBase{baseHeader, baseAbsolute}}
	abs, err := res.resolve(r, 0, 8, ctx, plausibleString)
	c.Assert(err, qt.IsNil)
	c.Assert(abs, qt.Equals, 8)

	res = offsetResolver{bases: []offsetBase{baseAbsolute, baseHeader}}
	abs, err = res.resolve(r, 0, 8, ctx, plausibleString)
	c.Assert(err, qt.IsNil)
	c.Assert(abs, qt.Equals, 0)
}

func TestResolverDirectoryAndEntryBases(t *testing.T) {
	c := qt.New(t)

	buf := make([]byte, 128)
	copy(buf[100:], []byte("value"))

	r := newReader(buf, binary.LittleEndian)
	ctx := offsetContext{header: 0, dir: 90, entry: 96}

	res := offsetResolver{bases: []offsetBase{baseDirectory}}
	abs, err := res.resolve(r, 10, 5, ctx, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(abs, qt.Equals, 100)

	res = offsetResolver{bases: []offsetBase{baseEntry}}
	abs, err = res.resolve(r, 4, 5, ctx, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(abs, qt.Equals, 100)
}

func TestResolverAdjustments(t *testing.T) {
	c := qt.New(t)

	buf := bytes.Repeat([]byte{0x01}, 64)
	copy(buf[20:], []byte("shifted"))

	r := newReader(buf, binary.LittleEndian)
	res := offsetResolver{
		bases:       []offsetBase{baseAbsolute},
		adjustments: []int{0, -8, 8},
	}

	// Raw offset 12 only lands on the text with the +8 adjustment.
	abs, err := res.resolve(r, 12, 7, offsetContext{}, plausibleString)
	c.Assert(err, qt.IsNil)
	c.Assert(abs, qt.Equals, 20)
}

func TestResolverAllCandidatesOutOfBounds(t *testing.T) {
	c := qt.New(t)

	r := newReader(make([]byte, 16), binary.LittleEndian)
	res := defaultResolver

	_, err := res.resolve(r, 1000, 8, offsetContext{}, nil)
	c.Assert(err, qt.ErrorIs, ErrBufferBounds)
}

func TestPlausibleString(t *testing.T) {
	c := qt.New(t)

	c.Assert(plausibleString([]byte("Canon EOS\x00"), binary.LittleEndian), qt.IsTrue)
	c.Assert(plausibleString([]byte{0x01, 0x02, 0x03, 0x04}, binary.LittleEndian), qt.IsFalse)
	c.Assert(plausibleString([]byte{0, 0, 0}, binary.LittleEndian), qt.IsTrue)
	c.Assert(plausibleString(nil, binary.LittleEndian), qt.IsTrue)
}

func TestPlausibleDirectory(t *testing.T) {
	c := qt.New(t)

	w := newBufWriter(binary.LittleEndian)
	w.u16(2)
	w.entryShort(0x0100, 1)
	w.entryShort(0x0101, 2)
	w.u32(0)

	r := newReader(w.b, binary.LittleEndian)
	c.Assert(plausibleDirectory(r, 0, 12), qt.IsTrue)

	noise := newReader([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, binary.LittleEndian)
	c.Assert(plausibleDirectory(noise, 0, 12), qt.IsFalse)

	empty := newBufWriter(binary.LittleEndian)
	empty.u16(0)
	c.Assert(plausibleDirectory(newReader(empty.b, binary.LittleEndian), 0, 12), qt.IsFalse)
}
