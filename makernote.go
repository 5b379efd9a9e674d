// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"bytes"
	"encoding/binary"
	"strings"
	"time"
)

// vendorProfile is the per-manufacturer MakerNote configuration: signature,
// header shape, byte order, entry width, tag catalog and the ordered offset
// interpretations to try. Profiles are immutable, process-wide data.
type vendorProfile struct {
	name      string
	namespace string

	// signatures are the byte prefixes probed at the MakerNote start.
	signatures [][]byte
	// makePrefix matches the lowercased EXIF Make when no signature hits.
	makePrefix string

	// headerLen is the distance from the MakerNote start to the directory.
	headerLen int
	// embeddedTIFF marks vendors (Nikon type 3) whose header is followed
	// by a complete nested TIFF header that re-anchors all offsets.
	embeddedTIFF bool
	// relativeToNote re-anchors value offsets at the MakerNote start.
	relativeToNote bool
	// detectOrder guesses the directory byte order from the entry count
	// instead of inheriting the container's.
	detectOrder bool

	byteOrder binary.ByteOrder
	entrySize int
	fields    map[uint16]string

	// tagMin/tagMax bound the vendor's known tag id range, used by the
	// structural scanner and candidate scoring.
	tagMin, tagMax uint16

	// bases is the ordered list of offset-base interpretations for values
	// that do not fit inline. Empty means the default ordering.
	bases []offsetBase

	// scan forces structural recovery: the vendor block embeds a
	// directory with no header pointing at it.
	scan bool
}

var vendorProfiles = []vendorProfile{
	{
		name: "Nikon", namespace: "MakerNotes",
		signatures:   [][]byte{[]byte("Nikon\x00\x02")},
		makePrefix:   "nikon",
		headerLen:    10,
		embeddedTIFF: true,
		fields:       nikonFields,
		tagMax:       0x0fff,
	},
	{
		name: "NikonOld", namespace: "MakerNotes",
		signatures: [][]byte{[]byte("Nikon\x00\x01")},
		headerLen:  8,
		fields:     nikonFields,
		tagMax:     0x0fff,
		bases:      []offsetBase{baseAbsolute, baseHeader},
	},
	{
		name: "Olympus", namespace: "MakerNotes",
		signatures: [][]byte{[]byte("OLYMPUS\x00")},
		headerLen:  12,
		fields:     olympusFields,
		tagMax:     0x4fff,
		// Newer Olympus notes anchor values at the note start.
		relativeToNote: true,
	},
	{
		name: "OlympusOld", namespace: "MakerNotes",
		signatures: [][]byte{[]byte("OLYMP\x00")},
		makePrefix: "olympus",
		headerLen:  8,
		fields:     olympusFields,
		tagMax:     0x4fff,
	},
	{
		name: "Fujifilm", namespace: "MakerNotes",
		signatures:     [][]byte{[]byte("FUJIFILM"), []byte("GENERALE")},
		makePrefix:     "fujifilm",
		headerLen:      12,
		relativeToNote: true,
		byteOrder:      binary.LittleEndian,
		fields:         fujiFields,
		tagMax:         0x4fff,
	},
	{
		name: "Panasonic", namespace: "MakerNotes",
		signatures: [][]byte{[]byte("Panasonic\x00\x00\x00")},
		makePrefix: "panasonic",
		headerLen:  12,
		fields:     panasonicFields,
		tagMax:     0x0fff,
	},
	{
		name: "Sony", namespace: "MakerNotes",
		signatures: [][]byte{[]byte("SONY DSC \x00\x00\x00"), []byte("SONY CAM \x00\x00\x00")},
		makePrefix: "sony",
		headerLen:  12,
		fields:     sonyFields,
		tagMax:     0xefff,
	},
	{
		name: "Pentax", namespace: "MakerNotes",
		signatures:  [][]byte{[]byte("AOC\x00")},
		headerLen:   6,
		detectOrder: true,
		fields:      pentaxFields,
		tagMax:      0x0fff,
	},
	{
		name: "PentaxNew", namespace: "MakerNotes",
		signatures:     [][]byte{[]byte("PENTAX \x00")},
		makePrefix:     "pentax",
		headerLen:      10,
		detectOrder:    true,
		relativeToNote: true,
		fields:         pentaxFields,
		tagMax:         0x0fff,
	},
	{
		name: "Canon", namespace: "MakerNotes",
		makePrefix: "canon",
		fields:     canonFields,
		tagMax:     0x4fff,
	},
	{
		name: "Minolta", namespace: "MakerNotes",
		makePrefix: "minolta",
		fields:     minoltaFields,
		tagMax:     0x0fff,
	},
	{
		name: "Kodak", namespace: "Kodak",
		makePrefix: "kodak",
		byteOrder:  binary.BigEndian,
		entrySize:  10,
		fields:     kodakFields,
		tagMin:     0xfa00, tagMax: 0xfbff,
		scan: true,
	},
	{
		name: "Leaf", namespace: "Leaf",
		makePrefix: "leaf",
		fields:     leafFields,
		tagMin:     0x8000, tagMax: 0x8070,
		bases: []offsetBase{baseHeader, baseAbsolute, baseDirectory, baseEntry},
		scan:  true,
	},
}

// identifyVendor picks the profile for a MakerNote at pos. Signature
// probes win; the camera make is the fallback for headerless notes.
func identifyVendor(buf []byte, pos int, make string) *vendorProfile {
	if pos < 0 || pos >= len(buf) {
		return nil
	}
	rest := buf[pos:]
	for i := range vendorProfiles {
		for _, sig := range vendorProfiles[i].signatures {
			if bytes.HasPrefix(rest, sig) {
				return &vendorProfiles[i]
			}
		}
	}
	lcMake := strings.ToLower(make)
	for i := range vendorProfiles {
		p := &vendorProfiles[i]
		if p.makePrefix != "" && strings.HasPrefix(lcMake, p.makePrefix) {
			return p
		}
	}
	return nil
}

// dispatchMakerNote interprets the MakerNote block captured during the
// generic pass and merges the vendor's tags into rec. Nothing here is
// fatal: a vendor block that resists every strategy is simply omitted.
func dispatchMakerNote(r *reader, rec *Record, ref *makerNoteRef, headerBase int, opts Options, deadline time.Time) error {
	makeVal := ""
	if v, ok := rec.Get("EXIF:Make"); ok {
		makeVal, _ = v.(string)
	}
	profile := identifyVendor(r.buf, ref.offset, makeVal)
	if profile == nil {
		opts.Warnf("rawmeta: unrecognized MakerNote at %#x (make %q)", ref.offset, makeVal)
		return nil
	}

	vr := r
	if profile.byteOrder != nil {
		vr = r.withByteOrder(profile.byteOrder)
	}

	dirOffset := ref.offset + profile.headerLen
	vendorBase := headerBase

	if profile.embeddedTIFF {
		h, err := parseTIFFHeader(vr.buf, ref.offset+profile.headerLen)
		if err != nil {
			opts.Warnf("rawmeta: %s MakerNote: bad embedded header: %v", profile.name, err)
			return scanMakerNote(vr, rec, profile, ref, opts, deadline)
		}
		vendorBase = ref.offset + profile.headerLen
		vr = vr.withByteOrder(h.byteOrder)
		dirOffset = vendorBase + int(h.dirOffset)
	} else if profile.relativeToNote {
		vendorBase = ref.offset
		if profile.name == "Fujifilm" {
			// The directory offset is stored little-endian at note+8.
			if off, err := vr.withByteOrder(binary.LittleEndian).u32(ref.offset + 8); err == nil {
				dirOffset = ref.offset + int(off)
			}
		}
	}

	if profile.detectOrder {
		vr = vr.withByteOrder(detectByteOrder(vr.buf, dirOffset))
	}

	entrySize := profile.entrySize
	if entrySize == 0 {
		entrySize = 12
	}

	if !profile.scan && plausibleDirectory(vr, dirOffset, entrySize) {
		w := newWalker(vr, vendorBase, rec, opts, deadline)
		w.layout = layoutForEntrySize(entrySize)
		if len(profile.bases) > 0 {
			w.resolver = offsetResolver{bases: profile.bases}
		}
		return w.walk(walkItem{
			offset:    dirOffset,
			namespace: profile.namespace,
			fields:    profile.fields,
		})
	}

	return scanMakerNote(vr, rec, profile, ref, opts, deadline)
}

// scanMakerNote falls back to structural recovery around the MakerNote
// payload.
func scanMakerNote(r *reader, rec *Record, profile *vendorProfile, ref *makerNoteRef, opts Options, deadline time.Time) error {
	start := ref.offset
	window := opts.ScanWindow
	if ref.length > 0 && ref.length < window {
		// Bias the search to the declared payload, with slack for vendor
		// blocks whose declared bounds are wrong.
		window = ref.length + 4096
	}

	params := scanParams{
		start:  start,
		window: window,
		step:   opts.ScanStep,
		tagMin: profile.tagMin,
		tagMax: profile.tagMax,
	}
	if profile.entrySize != 0 {
		params.entrySizes = []int{profile.entrySize, 12}
	}

	cand, err := scanForDirectory(r, params, deadline)
	if err != nil {
		if skippable(err) {
			opts.Warnf("rawmeta: %s MakerNote: %v", profile.name, err)
			return nil
		}
		return err
	}

	return walkRecovered(r, rec, profile, cand, opts, deadline)
}

// walkRecovered decodes the entries of a directory located by the scanner.
// With a count-word alignment the generic walker takes over; a bare run of
// entries is decoded until the first implausible one.
func walkRecovered(r *reader, rec *Record, profile *vendorProfile, cand candidate, opts Options, deadline time.Time) error {
	layout := layoutForEntrySize(cand.entrySize)

	if cand.align == 2 {
		w := newWalker(r, cand.offset, rec, opts, deadline)
		w.layout = layout
		if len(profile.bases) > 0 {
			w.resolver = offsetResolver{bases: profile.bases}
		}
		return w.walk(walkItem{
			offset:    cand.offset,
			namespace: profile.namespace,
			fields:    profile.fields,
		})
	}

	w := newWalker(r, cand.offset, rec, opts, deadline)
	w.layout = layout
	if len(profile.bases) > 0 {
		w.resolver = offsetResolver{bases: profile.bases}
	}
	it := walkItem{
		offset:    cand.offset,
		namespace: profile.namespace,
		fields:    profile.fields,
	}
	for i := 0; i < opts.MaxEntriesPerDirectory; i++ {
		if w.deadlinePassed() {
			return ErrDeadlineExceeded
		}
		entry := cand.offset + i*cand.entrySize
		if !r.in(entry, cand.entrySize) {
			break
		}
		if !entryLooksValid(r, entry, layout, profile.tagMin, profile.tagMax) {
			break
		}
		if err := w.decodeEntry(it, entry); err != nil {
			if skippable(err) {
				continue
			}
			return err
		}
	}
	return nil
}
