// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"encoding/binary"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestWalkerDirectoryBudget(t *testing.T) {
	c := qt.New(t)

	// A long next-pointer chain; the budget stops the walk early.
	const numDirs = 10
	w := newBufWriter(binary.LittleEndian)
	w.tiffHeader()
	for i := 0; i < numDirs; i++ {
		next := uint32(8 + (i+1)*18)
		if i == numDirs-1 {
			next = 0
		}
		w.u16(1).entryShort(0xe000+uint16(i), uint16(i)).u32(next)
	}

	rec, err := Parse(w.b, Options{MaxDirectories: 3})
	c.Assert(err, qt.IsNil)
	c.Assert(rec.Len(), qt.Equals, 3)
}

func TestWalkerSubIFDArray(t *testing.T) {
	c := qt.New(t)

	w := newBufWriter(binary.LittleEndian)
	w.tiffHeader()

	// IFD0: one SubIFDs entry with two offsets stored out of line.
	arrayOffset := 8 + 2 + 12 + 4
	sub0 := arrayOffset + 8
	sub1 := sub0 + 18

	w.u16(1)
	w.entryOffset(tagSubIFDs, typeUnsignedLong, 2, uint32(arrayOffset))
	w.u32(0)
	w.u32(uint32(sub0)).u32(uint32(sub1))
	w.u16(1).entryShort(0x0100, 320).u32(0)
	w.u16(1).entryShort(0x0101, 240).u32(0)

	rec, err := Parse(w.b, Options{})
	c.Assert(err, qt.IsNil)

	v, _ := rec.Get("EXIF:ImageWidth")
	c.Assert(v, qt.Equals, uint16(320))
	v, _ = rec.Get("EXIF:ImageHeight")
	c.Assert(v, qt.Equals, uint16(240))
}

func TestWalkerSkipsCorruptEntryKeepsRest(t *testing.T) {
	c := qt.New(t)

	w := newBufWriter(binary.LittleEndian)
	w.tiffHeader()
	w.u16(3)
	w.entryShort(0x0100, 4000)
	// Value offset far beyond the buffer; the entry is skipped.
	w.entryOffset(0x010f, typeASCII, 64, 0xfffffff0)
	w.entryShort(0x0112, 1)
	w.u32(0)

	rec, err := Parse(w.b, Options{})
	c.Assert(err, qt.IsNil)
	c.Assert(rec.Len(), qt.Equals, 2)
	c.Assert(rec.Has("EXIF:ImageWidth"), qt.IsTrue)
	c.Assert(rec.Has("EXIF:Orientation"), qt.IsTrue)
	c.Assert(rec.Has("EXIF:Make"), qt.IsFalse)
}

func TestWalkerUnknownTypeUnparsed(t *testing.T) {
	c := qt.New(t)

	w := newBufWriter(binary.LittleEndian)
	w.tiffHeader()
	w.u16(1)
	w.u16(0x0100).u16(99).u32(3).u32(0) // type code 99 does not exist
	w.u32(0)

	rec, err := Parse(w.b, Options{})
	c.Assert(err, qt.IsNil)
	v, ok := rec.Get("EXIF:ImageWidth")
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, Unparsed{Type: 99, Count: 3})
}

func TestWalkerTruncatedDirectory(t *testing.T) {
	c := qt.New(t)

	// Directory declares 4 entries but the buffer ends after the first.
	w := newBufWriter(binary.LittleEndian)
	w.tiffHeader()
	w.u16(4)
	w.entryShort(0x0100, 4000)

	rec, err := Parse(w.b, Options{})
	c.Assert(err, qt.IsNil)
	// The first entry decoded before the walk ran out of buffer.
	c.Assert(rec.Has("EXIF:ImageWidth"), qt.IsTrue)
}

func TestWalkerDeadlineReturnsPartial(t *testing.T) {
	c := qt.New(t)

	w := newBufWriter(binary.LittleEndian)
	w.tiffHeader()
	w.u16(1).entryShort(0x0100, 4000).u32(0)

	r := newReader(w.b, binary.LittleEndian)
	rec := newRecord()
	wk := newWalker(r, 0, rec, Options{}.withDefaults(), time.Now().Add(-time.Second))
	err := wk.walk(walkItem{offset: 8, namespace: "EXIF", fields: exifFields, routeSubIFDs: true})
	c.Assert(err, qt.ErrorIs, ErrDeadlineExceeded)
	c.Assert(rec.Len(), qt.Equals, 0)
}

func TestEntryLayouts(t *testing.T) {
	c := qt.New(t)

	c.Assert(layoutForEntrySize(12), qt.Equals, entryLayout{size: 12, countWidth: 4, valueOff: 8})
	c.Assert(layoutForEntrySize(10), qt.Equals, entryLayout{size: 10, countWidth: 2, valueOff: 6})
	c.Assert(layoutForEntrySize(14), qt.Equals, entryLayout{size: 14, countWidth: 4, valueOff: 8})
	c.Assert(layoutForEntrySize(16), qt.Equals, entryLayout{size: 16, countWidth: 4, valueOff: 8})
	// Unknown widths fall back to the standard record.
	c.Assert(layoutForEntrySize(0).size, qt.Equals, 12)
}
