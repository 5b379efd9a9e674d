// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import "encoding/binary"

// testByteOrder is satisfied by binary.LittleEndian and binary.BigEndian.
type testByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// bufWriter builds synthetic container buffers for tests.
type bufWriter struct {
	b  []byte
	bo testByteOrder
}

func newBufWriter(bo testByteOrder) *bufWriter {
	return &bufWriter{bo: bo}
}

func (w *bufWriter) pos() int {
	return len(w.b)
}

func (w *bufWriter) u16(v uint16) *bufWriter {
	w.b = w.bo.AppendUint16(w.b, v)
	return w
}

func (w *bufWriter) u32(v uint32) *bufWriter {
	w.b = w.bo.AppendUint32(w.b, v)
	return w
}

func (w *bufWriter) raw(p []byte) *bufWriter {
	w.b = append(w.b, p...)
	return w
}

func (w *bufWriter) fill(c byte, n int) *bufWriter {
	for i := 0; i < n; i++ {
		w.b = append(w.b, c)
	}
	return w
}

// tiffHeader writes a TIFF header pointing at the directory that follows
// immediately (offset 8).
func (w *bufWriter) tiffHeader() *bufWriter {
	if w.bo == binary.LittleEndian {
		w.raw([]byte("II"))
	} else {
		w.raw([]byte("MM"))
	}
	w.u16(42)
	w.u32(8)
	return w
}

// entryShort writes a 12-byte entry with one inline SHORT value.
func (w *bufWriter) entryShort(tag uint16, v uint16) *bufWriter {
	w.u16(tag).u16(uint16(typeUnsignedShort)).u32(1)
	w.u16(v).u16(0)
	return w
}

// entryLong writes a 12-byte entry with one inline LONG value.
func (w *bufWriter) entryLong(tag uint16, v uint32) *bufWriter {
	w.u16(tag).u16(uint16(typeUnsignedLong)).u32(1).u32(v)
	return w
}

// entryOffset writes a 12-byte entry whose value field is an offset.
func (w *bufWriter) entryOffset(tag uint16, typ tiffType, count, offset uint32) *bufWriter {
	w.u16(tag).u16(uint16(typ)).u32(count).u32(offset)
	return w
}
