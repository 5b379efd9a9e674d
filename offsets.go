// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import "encoding/binary"

// The base of a directory entry's 4-byte offset field is ambiguous across
// containers and sometimes across tags within one container. offsetBase
// names the interpretations seen in the wild.
type offsetBase int

const (
	// baseHeader: relative to the enclosing format header (classic TIFF).
	baseHeader offsetBase = iota
	// baseAbsolute: relative to the start of the buffer.
	baseAbsolute
	// baseDirectory: relative to the directory that owns the entry.
	baseDirectory
	// baseEntry: relative to the entry itself.
	baseEntry
)

// offsetContext carries the absolute positions an offsetBase can be
// anchored to.
type offsetContext struct {
	header int
	dir    int
	entry  int
}

// offsetResolver turns a raw offset field into candidate absolute offsets,
// most-likely-correct first. The candidate list is per-vendor configuration
// data, not code.
type offsetResolver struct {
	bases []offsetBase
	// adjustments are small fixed deltas applied after each base, 0 first.
	adjustments []int
}

var defaultResolver = offsetResolver{
	bases: []offsetBase{baseHeader, baseAbsolute},
}

func (o offsetResolver) anchor(base offsetBase, ctx offsetContext) int {
	switch base {
	case baseAbsolute:
		return 0
	case baseDirectory:
		return ctx.dir
	case baseEntry:
		return ctx.entry
	default:
		return ctx.header
	}
}

// candidates returns the ordered absolute offsets to try for raw.
func (o offsetResolver) candidates(raw uint32, ctx offsetContext) []int {
	adjustments := o.adjustments
	if len(adjustments) == 0 {
		adjustments = []int{0}
	}
	out := make([]int, 0, len(o.bases)*len(adjustments))
	for _, base := range o.bases {
		a := o.anchor(base, ctx)
		for _, adj := range adjustments {
			out = append(out, a+int(raw)+adj)
		}
	}
	return out
}

// resolve returns the first candidate that is in-bounds for n bytes and
// whose bytes pass check. Later candidates are tried only on failure.
func (o offsetResolver) resolve(r *reader, raw uint32, n int, ctx offsetContext, check plausibleFunc) (int, error) {
	for _, abs := range o.candidates(raw, ctx) {
		if !r.in(abs, n) {
			continue
		}
		if check != nil {
			b, err := r.bytes(abs, n)
			if err != nil || !check(b, r.byteOrder) {
				continue
			}
		}
		return abs, nil
	}
	return 0, newBoundsErrorf(int(raw), n, r.len())
}

// plausibleFunc checks whether bytes at a candidate offset look like a
// value of the expected type.
type plausibleFunc func(b []byte, byteOrder binary.ByteOrder) bool

// plausibleFor returns the per-type plausibility check used to pick among
// candidate offsets.
func plausibleFor(typ tiffType) plausibleFunc {
	switch typ {
	case typeASCII:
		return plausibleString
	case typeUnsignedRat, typeSignedRat:
		return plausibleRational
	default:
		return plausibleAnything
	}
}

func plausibleAnything(b []byte, byteOrder binary.ByteOrder) bool {
	return true
}

// plausibleString accepts mostly printable bytes up to the first NUL.
func plausibleString(b []byte, byteOrder binary.ByteOrder) bool {
	if len(b) == 0 {
		return true
	}
	printable := 0
	n := 0
	for _, c := range b {
		if c == 0 {
			break
		}
		n++
		if c >= 0x20 && c < 0x7f {
			printable++
		}
	}
	if n == 0 {
		// All NULs, an empty string is fine.
		return true
	}
	return printable*10 >= n*7
}

// plausibleRational rejects the all-ones pattern that erased flash blocks
// and garbage offsets commonly produce.
func plausibleRational(b []byte, byteOrder binary.ByteOrder) bool {
	if len(b) < 8 {
		return false
	}
	num := byteOrder.Uint32(b[:4])
	den := byteOrder.Uint32(b[4:8])
	return !(num == 0xffffffff && den == 0xffffffff)
}

// maxPlausibleDirEntries is the entry count ceiling for a byte region to
// be accepted as a nested directory.
const maxPlausibleDirEntries = 500

// plausibleDirectory reports whether offset points at something shaped like
// a directory: an entry count in 1..500 followed by entries with valid type
// codes and sane counts.
func plausibleDirectory(r *reader, offset, entrySize int) bool {
	count, err := r.u16(offset)
	if err != nil {
		return false
	}
	if count == 0 || count > maxPlausibleDirEntries {
		return false
	}
	// Sample up to the first four entries.
	sample := int(count)
	if sample > 4 {
		sample = 4
	}
	for i := 0; i < sample; i++ {
		entry := offset + 2 + i*entrySize
		typ, err := r.u16(entry + 2)
		if err != nil {
			return false
		}
		if !tiffType(typ).valid() {
			return false
		}
		n, err := r.u32(entry + 4)
		if err != nil {
			return false
		}
		if n > 0x10000 {
			return false
		}
	}
	return true
}
