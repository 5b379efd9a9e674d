// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import "encoding/binary"

// reader provides endian-aware, bounds-checked reads from an in-memory
// buffer. Every read validates offset and length against the buffer before
// dereferencing; a failed check returns ErrBufferBounds and never panics.
// Note that this is not thread safe.
type reader struct {
	buf       []byte
	byteOrder binary.ByteOrder
}

func newReader(buf []byte, byteOrder binary.ByteOrder) *reader {
	return &reader{buf: buf, byteOrder: byteOrder}
}

func (r *reader) len() int {
	return len(r.buf)
}

// in reports whether [offset, offset+n) lies within the buffer.
func (r *reader) in(offset, n int) bool {
	return offset >= 0 && n >= 0 && offset+n <= len(r.buf)
}

func (r *reader) u8(offset int) (uint8, error) {
	if !r.in(offset, 1) {
		return 0, newBoundsErrorf(offset, 1, len(r.buf))
	}
	return r.buf[offset], nil
}

func (r *reader) u16(offset int) (uint16, error) {
	const n = 2
	if !r.in(offset, n) {
		return 0, newBoundsErrorf(offset, n, len(r.buf))
	}
	return r.byteOrder.Uint16(r.buf[offset : offset+n]), nil
}

func (r *reader) u32(offset int) (uint32, error) {
	const n = 4
	if !r.in(offset, n) {
		return 0, newBoundsErrorf(offset, n, len(r.buf))
	}
	return r.byteOrder.Uint32(r.buf[offset : offset+n]), nil
}

// rational reads a numerator/denominator pair of unsigned longs.
func (r *reader) rational(offset int) (num, den uint32, err error) {
	const n = 8
	if !r.in(offset, n) {
		return 0, 0, newBoundsErrorf(offset, n, len(r.buf))
	}
	num = r.byteOrder.Uint32(r.buf[offset : offset+4])
	den = r.byteOrder.Uint32(r.buf[offset+4 : offset+8])
	return num, den, nil
}

// bytes returns a view into the buffer. The slice aliases the underlying
// buffer and must not be modified.
func (r *reader) bytes(offset, n int) ([]byte, error) {
	if !r.in(offset, n) {
		return nil, newBoundsErrorf(offset, n, len(r.buf))
	}
	return r.buf[offset : offset+n], nil
}

func (r *reader) otherByteOrder() binary.ByteOrder {
	if r.byteOrder == binary.BigEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// withByteOrder returns a reader over the same buffer with the given byte
// order. The buffer is shared, not copied.
func (r *reader) withByteOrder(byteOrder binary.ByteOrder) *reader {
	if byteOrder == nil || byteOrder == r.byteOrder {
		return r
	}
	return &reader{buf: r.buf, byteOrder: byteOrder}
}

// detectByteOrder guesses the byte order of a directory entry count at
// offset. The number of entries is usually small, usually less than 256,
// so the interpretation yielding the smaller count wins.
func detectByteOrder(buf []byte, offset int) binary.ByteOrder {
	if offset < 0 || offset+2 > len(buf) {
		return binary.BigEndian
	}
	big := binary.BigEndian.Uint16(buf[offset : offset+2])
	little := binary.LittleEndian.Uint16(buf[offset : offset+2])
	if little < big {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
