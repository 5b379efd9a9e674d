// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"encoding/binary"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestReaderBounds(t *testing.T) {
	c := qt.New(t)

	r := newReader([]byte{0x01, 0x02, 0x03}, binary.LittleEndian)

	v8, err := r.u8(2)
	c.Assert(err, qt.IsNil)
	c.Assert(v8, qt.Equals, uint8(0x03))

	_, err = r.u8(3)
	c.Assert(err, qt.ErrorIs, ErrBufferBounds)
	_, err = r.u8(-1)
	c.Assert(err, qt.ErrorIs, ErrBufferBounds)

	v16, err := r.u16(0)
	c.Assert(err, qt.IsNil)
	c.Assert(v16, qt.Equals, uint16(0x0201))

	_, err = r.u16(2)
	c.Assert(err, qt.ErrorIs, ErrBufferBounds)
	_, err = r.u32(0)
	c.Assert(err, qt.ErrorIs, ErrBufferBounds)
	_, _, err = r.rational(0)
	c.Assert(err, qt.ErrorIs, ErrBufferBounds)
	_, err = r.bytes(1, 3)
	c.Assert(err, qt.ErrorIs, ErrBufferBounds)

	// Overflow-shaped inputs must fail the check, not wrap around.
	c.Assert(r.in(2, -1), qt.IsFalse)
	c.Assert(r.in(1<<62, 8), qt.IsFalse)
}

func TestReaderByteOrder(t *testing.T) {
	c := qt.New(t)

	r := newReader([]byte{0x12, 0x34, 0x56, 0x78}, binary.BigEndian)

	v, err := r.u32(0)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint32(0x12345678))

	c.Assert(r.otherByteOrder(), qt.Equals, binary.ByteOrder(binary.LittleEndian))

	rl := r.withByteOrder(binary.LittleEndian)
	v, err = rl.u32(0)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint32(0x78563412))

	// Same order returns the receiver unchanged.
	c.Assert(r.withByteOrder(binary.BigEndian), qt.Equals, r)
}

func TestDetectByteOrder(t *testing.T) {
	c := qt.New(t)

	// 0x000b: big-endian reading (11) is smaller than little-endian (0x0b00).
	c.Assert(detectByteOrder([]byte{0x00, 0x0b}, 0), qt.Equals, binary.ByteOrder(binary.BigEndian))
	c.Assert(detectByteOrder([]byte{0x0b, 0x00}, 0), qt.Equals, binary.ByteOrder(binary.LittleEndian))
	c.Assert(detectByteOrder([]byte{0x0b}, 0), qt.Equals, binary.ByteOrder(binary.BigEndian))
}
