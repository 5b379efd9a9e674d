// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

// Package rawmeta extracts metadata from photographic RAW container files.
// It decodes TIFF/EXIF-style directory structures from an in-memory buffer,
// including vendor-private MakerNote blocks whose offset conventions are
// inconsistent or undocumented, and returns a flat record of namespaced
// key/value pairs.
//
// The package performs no I/O and keeps no mutable state between calls;
// independent buffers may be parsed in parallel without coordination.
package rawmeta

import (
	"encoding/binary"
	"time"
)

const (
	defaultMaxDirectories         = 64
	defaultMaxEntriesPerDirectory = 512
	defaultScanWindow             = 256 * 1024
	defaultScanStep               = 2
	defaultLimitTagSize           = 10000
)

// Options contains the options for the Parse function.
type Options struct {
	// MaxParseTime is the maximum time spent parsing. Checked
	// cooperatively at loop boundaries; on expiry the metadata accumulated
	// so far is returned. Zero means no deadline.
	MaxParseTime time.Duration

	// MaxDirectories is the maximum number of directories visited across
	// the whole walk. Default 64.
	MaxDirectories int

	// MaxEntriesPerDirectory rejects directories declaring more entries
	// than this; such directories are treated as empty. Default 512.
	MaxEntriesPerDirectory int

	// ScanWindow is the number of bytes the structural recovery scanner
	// searches. Default 256 KiB.
	ScanWindow int

	// ScanStep is the scanner's position increment. Default 2.
	ScanStep int

	// LimitTagSize is the maximum size in bytes of a tag value to decode.
	// Larger values are stored as a binary-length indicator.
	// Default 10000.
	LimitTagSize int

	// Warnf will be called for each warning.
	Warnf func(string, ...any)
}

func (opts Options) withDefaults() Options {
	if opts.MaxDirectories == 0 {
		opts.MaxDirectories = defaultMaxDirectories
	}
	if opts.MaxEntriesPerDirectory == 0 {
		opts.MaxEntriesPerDirectory = defaultMaxEntriesPerDirectory
	}
	if opts.ScanWindow == 0 {
		opts.ScanWindow = defaultScanWindow
	}
	if opts.ScanStep == 0 {
		opts.ScanStep = defaultScanStep
	}
	if opts.LimitTagSize == 0 {
		opts.LimitTagSize = defaultLimitTagSize
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}
	return opts
}

// Parse decodes the metadata directories in buf and returns the record.
//
// Malformed input never fails the file: corrupt entries, directories and
// vendor blocks are skipped and whatever decoded cleanly is returned. Only
// an empty buffer or an unrecognizable signature returns an error, together
// with an empty record.
func Parse(buf []byte, opts Options) (*Record, error) {
	rec := newRecord()
	if len(buf) == 0 {
		return rec, newInvalidFormatErrorf("empty buffer")
	}

	opts = opts.withDefaults()

	var deadline time.Time
	if opts.MaxParseTime > 0 {
		deadline = time.Now().Add(opts.MaxParseTime)
	}

	var err error
	switch {
	case isCRW(buf):
		err = parseCRW(buf, rec, opts, deadline)
	case isRAF(buf):
		err = parseRAF(buf, rec, opts, deadline)
	default:
		err = parseTIFFFamily(buf, 0, rec, opts, deadline)
	}

	if err == ErrDeadlineExceeded {
		opts.Warnf("rawmeta: deadline exceeded, returning partial metadata")
		return rec, nil
	}
	return rec, err
}

// parseTIFFFamily runs the generic pipeline: header, directory walk from
// the root, then the vendor MakerNote pass. The generic pass runs first so
// its values win the first-writer-wins merge.
func parseTIFFFamily(buf []byte, base int, rec *Record, opts Options, deadline time.Time) error {
	h, err := parseTIFFHeader(buf, base)
	if err != nil {
		return err
	}

	r := newReader(buf, h.byteOrder)
	w := newWalker(r, base, rec, opts, deadline)

	if err := w.walk(walkItem{
		offset:       base + int(h.dirOffset),
		namespace:    "EXIF",
		fields:       exifFields,
		routeSubIFDs: true,
	}); err != nil {
		return err
	}

	if w.makerNote != nil {
		return dispatchMakerNote(r, rec, w.makerNote, base, opts, deadline)
	}
	return nil
}

// parseCRW handles the Canon CRW "HEAPCCDR" container. Its heap carries no
// TIFF directory pointer, so the vendor block is located structurally.
func parseCRW(buf []byte, rec *Record, opts Options, deadline time.Time) error {
	byteOrder := binary.ByteOrder(binary.LittleEndian)
	if buf[0] == 'M' {
		byteOrder = binary.BigEndian
	}
	r := newReader(buf, byteOrder)

	profile := &vendorProfile{
		name: "Canon", namespace: "MakerNotes",
		fields: canonFields,
		tagMax: 0x4fff,
	}
	params := scanParams{
		start:      14, // past the HEAPCCDR header
		window:     opts.ScanWindow,
		step:       opts.ScanStep,
		entrySizes: []int{10, 12},
		tagMax:     profile.tagMax,
	}
	cand, err := scanForDirectory(r, params, deadline)
	if err != nil {
		if skippable(err) {
			opts.Warnf("rawmeta: CRW: %v", err)
			return nil
		}
		return err
	}
	return walkRecovered(r, rec, profile, cand, opts, deadline)
}

// parseRAF handles the Fujifilm RAF container: a proprietary header with a
// fixed-position pointer to an embedded JPEG whose APP1 segment carries the
// TIFF structure.
func parseRAF(buf []byte, rec *Record, opts Options, deadline time.Time) error {
	r := newReader(buf, binary.BigEndian)
	jpegOffset, err := r.u32(rafJPEGOffsetPos)
	if err != nil {
		return newInvalidFormatErrorf("short RAF header")
	}

	// SOI, APP1 marker, segment length, "Exif\0\0", then the TIFF header.
	tiffBase := int(jpegOffset) + 12
	if err := parseTIFFFamily(buf, tiffBase, rec, opts, deadline); err == nil {
		return nil
	} else if err == ErrDeadlineExceeded {
		return err
	}

	// The header did not point at a parseable structure; recover the
	// vendor directory structurally.
	profile := &vendorProfile{
		name: "Fujifilm", namespace: "MakerNotes",
		byteOrder: binary.LittleEndian,
		fields:    fujiFields,
		tagMax:    0x4fff,
	}
	vr := newReader(buf, binary.LittleEndian)
	params := scanParams{
		start:  int(jpegOffset),
		window: opts.ScanWindow,
		step:   opts.ScanStep,
		tagMax: profile.tagMax,
	}
	cand, err := scanForDirectory(vr, params, deadline)
	if err != nil {
		if skippable(err) {
			opts.Warnf("rawmeta: RAF: %v", err)
			return nil
		}
		return err
	}
	return walkRecovered(vr, rec, profile, cand, opts, deadline)
}
