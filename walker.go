// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"encoding/binary"
	"fmt"
	"time"
)

// maxWalkDepth is the ceiling on nested directory depth.
const maxWalkDepth = 8

// A directory entry is tag id (2 bytes), type (2 bytes), count, and a
// value-or-offset field. The record width is a per-container-dialect
// parameter: 12 bytes standard, with 10/14/16 byte variants observed in
// vendor directories. Narrow variants carry a 2-byte count.
type entryLayout struct {
	size       int
	countWidth int
	valueOff   int
}

func layoutForEntrySize(size int) entryLayout {
	switch size {
	case 10:
		return entryLayout{size: 10, countWidth: 2, valueOff: 6}
	case 14:
		return entryLayout{size: 14, countWidth: 4, valueOff: 8}
	case 16:
		return entryLayout{size: 16, countWidth: 4, valueOff: 8}
	default:
		return entryLayout{size: 12, countWidth: 4, valueOff: 8}
	}
}

// walkItem is one directory pending traversal.
type walkItem struct {
	offset    int
	namespace string
	fields    map[uint16]string
	// routeSubIFDs enables the EXIF tag-routing table (ExifIFD/GPS/SubIFDs/
	// MakerNote pointers). Vendor directories route nothing.
	routeSubIFDs bool
	depth        int
}

// makerNoteRef records where a MakerNote tag's payload lives, captured
// during the generic pass for the vendor dispatcher.
type makerNoteRef struct {
	// offset is the resolved absolute offset of the payload.
	offset int
	length int
	// raw is the unresolved value field, kept for vendors whose offsets
	// must be re-anchored.
	raw uint32
}

// walker is the generic IFD traversal. It uses a worklist rather than
// recursion so the directory budget and deadline apply to the whole walk.
type walker struct {
	r          *reader
	headerBase int
	layout     entryLayout
	resolver   offsetResolver
	rec        *Record
	opts       Options
	deadline   time.Time

	visited       map[int]struct{}
	queue         []walkItem
	dirsWalked    int
	entriesWalked int

	makerNote *makerNoteRef
}

func newWalker(r *reader, headerBase int, rec *Record, opts Options, deadline time.Time) *walker {
	return &walker{
		r:          r,
		headerBase: headerBase,
		layout:     layoutForEntrySize(12),
		resolver:   defaultResolver,
		rec:        rec,
		opts:       opts,
		deadline:   deadline,
		visited:    make(map[int]struct{}),
	}
}

func (w *walker) warnf(format string, args ...any) {
	w.opts.Warnf(format, args...)
}

func (w *walker) deadlinePassed() bool {
	return !w.deadline.IsZero() && time.Now().After(w.deadline)
}

// walk drains the worklist breadth-first. Only ErrDeadlineExceeded
// propagates; malformed directories and out-of-bounds entries are skipped.
func (w *walker) walk(items ...walkItem) error {
	w.queue = append(w.queue, items...)

	for len(w.queue) > 0 {
		if w.deadlinePassed() {
			return ErrDeadlineExceeded
		}

		it := w.queue[0]
		w.queue = w.queue[1:]

		if _, seen := w.visited[it.offset]; seen {
			continue
		}
		w.visited[it.offset] = struct{}{}

		if w.dirsWalked >= w.opts.MaxDirectories {
			w.warnf("rawmeta: directory budget %d reached", w.opts.MaxDirectories)
			return nil
		}
		w.dirsWalked++

		if err := w.parseDirectory(it); err != nil {
			if skippable(err) {
				w.warnf("rawmeta: skipping directory at %#x: %v", it.offset, err)
				continue
			}
			return err
		}
	}

	return nil
}

func (w *walker) enqueue(it walkItem) {
	if it.depth > maxWalkDepth {
		return
	}
	if _, seen := w.visited[it.offset]; seen {
		return
	}
	if !w.r.in(it.offset, 2) {
		return
	}
	w.queue = append(w.queue, it)
}

func (w *walker) parseDirectory(it walkItem) error {
	entryCount, err := w.r.u16(it.offset)
	if err != nil {
		return err
	}
	// A garbage offset produces a garbage count more often than not.
	// Rejecting it here is cheaper than bounds-failing on every entry.
	if entryCount == 0 || int(entryCount) > w.opts.MaxEntriesPerDirectory {
		return fmt.Errorf("%w: entry count %d at %#x", ErrMalformedDirectory, entryCount, it.offset)
	}

	for i := 0; i < int(entryCount); i++ {
		entryOffset := it.offset + 2 + i*w.layout.size
		if !w.r.in(entryOffset, w.layout.size) {
			return newBoundsErrorf(entryOffset, w.layout.size, w.r.len())
		}
		w.entriesWalked++
		if err := w.decodeEntry(it, entryOffset); err != nil {
			if skippable(err) {
				continue
			}
			return err
		}
	}

	// The 4-byte next-directory pointer follows the last entry.
	nextField := it.offset + 2 + int(entryCount)*w.layout.size
	next, err := w.r.u32(nextField)
	if err != nil || next == 0 {
		return nil
	}
	w.enqueue(walkItem{
		offset:       w.headerBase + int(next),
		namespace:    it.namespace,
		fields:       it.fields,
		routeSubIFDs: it.routeSubIFDs,
		depth:        it.depth,
	})

	return nil
}

func (w *walker) decodeEntry(it walkItem, entryOffset int) error {
	tagID, err := w.r.u16(entryOffset)
	if err != nil {
		return err
	}
	typRaw, err := w.r.u16(entryOffset + 2)
	if err != nil {
		return err
	}
	var count uint32
	if w.layout.countWidth == 2 {
		c, err := w.r.u16(entryOffset + 4)
		if err != nil {
			return err
		}
		count = uint32(c)
	} else {
		count, err = w.r.u32(entryOffset + 4)
		if err != nil {
			return err
		}
	}
	valueField := entryOffset + w.layout.valueOff
	raw, err := w.r.u32(valueField)
	if err != nil {
		return err
	}

	if count > 0x10000 {
		return fmt.Errorf("%w: count %d for tag %#x", ErrMalformedDirectory, count, tagID)
	}

	if it.routeSubIFDs {
		if handled, err := w.routeEntry(it, tagID, tiffType(typRaw), count, raw, entryOffset); handled {
			return err
		}
	}

	typ := tiffType(typRaw)
	tagName := it.fields[tagID]
	if tagName == "" {
		tagName = fmt.Sprintf("%s0x%x", UnknownPrefix, tagID)
	}
	key := nsKey(it.namespace, tagName)

	if !typ.valid() {
		w.rec.add(key, Unparsed{Type: typRaw, Count: count})
		return nil
	}

	total := int(tiffTypeSize[typ]) * int(count)
	valueOffset := valueField
	if total > 4 {
		ctx := offsetContext{header: w.headerBase, dir: it.offset, entry: entryOffset}
		valueOffset, err = w.resolver.resolve(w.r, raw, total, ctx, plausibleFor(typ))
		if err != nil {
			return err
		}
	}

	if total > int(w.opts.LimitTagSize) {
		w.rec.add(key, binaryDataIndicator(total))
		return nil
	}

	val, err := decodeValue(w.r, typ, count, valueOffset)
	if err != nil {
		return err
	}
	if convert, found := valueConverters[key]; found {
		val = convert(val, w.r.byteOrder)
	} else {
		val = toPrintableValue(val)
	}
	if val == nil {
		val = ""
	}

	w.rec.add(key, val)
	return nil
}

// routeEntry classifies EXIF entries whose tag id is known to point at a
// nested directory. It reports whether the entry was consumed.
func (w *walker) routeEntry(it walkItem, tagID uint16, typ tiffType, count, raw uint32, entryOffset int) (bool, error) {
	switch tagID {
	case tagExifIFDPointer:
		w.enqueue(walkItem{
			offset: w.headerBase + int(raw), namespace: "EXIF", fields: exifFields,
			routeSubIFDs: true, depth: it.depth + 1,
		})
		return true, nil
	case tagGPSInfoIFDPointer:
		w.enqueue(walkItem{
			offset: w.headerBase + int(raw), namespace: "GPS", fields: gpsFields,
			depth: it.depth + 1,
		})
		return true, nil
	case tagInteropIFDPointer:
		w.enqueue(walkItem{
			offset: w.headerBase + int(raw), namespace: "EXIF", fields: interopFields,
			depth: it.depth + 1,
		})
		return true, nil
	case tagSubIFDs:
		return true, w.routeSubIFDArray(it, count, raw, entryOffset)
	case tagMakerNote, tagMakerNoteLeaf:
		if w.makerNote != nil {
			return true, nil
		}
		total := int(count)
		ctx := offsetContext{header: w.headerBase, dir: it.offset, entry: entryOffset}
		abs, err := w.resolver.resolve(w.r, raw, total, ctx, nil)
		if err != nil {
			return true, err
		}
		w.makerNote = &makerNoteRef{offset: abs, length: total, raw: raw}
		return true, nil
	}
	return false, nil
}

// routeSubIFDArray enqueues each SubIFD offset. A single offset is inline;
// more than one means the value field points at an offset array.
func (w *walker) routeSubIFDArray(it walkItem, count, raw uint32, entryOffset int) error {
	if count == 0 || count > 32 {
		return nil
	}
	if count == 1 {
		w.enqueue(walkItem{
			offset: w.headerBase + int(raw), namespace: "EXIF", fields: exifFields,
			routeSubIFDs: true, depth: it.depth + 1,
		})
		return nil
	}
	ctx := offsetContext{header: w.headerBase, dir: it.offset, entry: entryOffset}
	arrayOffset, err := w.resolver.resolve(w.r, raw, int(count)*4, ctx, nil)
	if err != nil {
		return err
	}
	for i := 0; i < int(count); i++ {
		off, err := w.r.u32(arrayOffset + i*4)
		if err != nil {
			return err
		}
		w.enqueue(walkItem{
			offset: w.headerBase + int(off), namespace: "EXIF", fields: exifFields,
			routeSubIFDs: true, depth: it.depth + 1,
		})
	}
	return nil
}

// valueConverters maps record keys to presentation conversions applied
// before the value is stored.
var valueConverters = map[string]func(v any, byteOrder binary.ByteOrder) any{
	"EXIF:UserComment": func(v any, byteOrder binary.ByteOrder) any {
		b, ok := v.([]byte)
		if !ok {
			return toPrintableValue(v)
		}
		return decodeUserComment(b, byteOrder)
	},
	"GPS:Latitude":  convertDegrees,
	"GPS:Longitude": convertDegrees,
	"GPS:VersionID": func(v any, byteOrder binary.ByteOrder) any {
		if b, ok := v.([]byte); ok {
			return bytesToSpaceDelim(b)
		}
		return toPrintableValue(v)
	},
}

func convertDegrees(v any, byteOrder binary.ByteOrder) any {
	if d, ok := degreesToDecimal(v); ok {
		return d
	}
	return toPrintableValue(v)
}
