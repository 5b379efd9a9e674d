// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"fmt"
	"time"
)

// Structural recovery locates a directory's start, entry size and
// alignment in containers that carry no reliable pointer to it. Candidate
// positions are scored against plausibility heuristics; true directories
// cluster runs of consecutive valid entries, random bytes do not.

// scanParams bound one recovery search. The window and step cap the
// worst-case cost; everything else is per-container-family configuration.
type scanParams struct {
	start  int
	window int
	step   int

	// entrySizes are the candidate record widths for this container family.
	entrySizes []int
	// alignments are entry-start adjustments tried at each position:
	// 0 samples entries directly at the position, 2 assumes a count word
	// precedes them.
	alignments []int

	// sampleEntries is how many leading entries are scored per candidate.
	sampleEntries int
	// minRun is the minimum consecutive-valid-entry run for acceptance.
	minRun int
	// minScore is the plausibility threshold for acceptance.
	minScore int

	// tagMin/tagMax is the vendor's known tag id range.
	tagMin, tagMax uint16
}

func (p scanParams) withDefaults() scanParams {
	if p.window <= 0 {
		p.window = defaultScanWindow
	}
	if p.step <= 0 {
		p.step = defaultScanStep
	}
	if len(p.entrySizes) == 0 {
		p.entrySizes = []int{12, 10, 14, 16}
	}
	if len(p.alignments) == 0 {
		p.alignments = []int{0, 2}
	}
	if p.sampleEntries <= 0 {
		p.sampleEntries = 8
	}
	if p.minRun <= 0 {
		p.minRun = 3
	}
	if p.minScore <= 0 {
		// A run of exactly minRun valid entries scores minRun plus the
		// run bonus of the same size, so 2*minRun is the lowest threshold
		// that still accepts a minimum-length run.
		p.minScore = 2 * p.minRun
	}
	if p.tagMax == 0 {
		p.tagMax = 0xffff
	}
	return p
}

// candidate is a scored (position, entry size, alignment) triple. It lives
// only inside a scan.
type candidate struct {
	offset    int
	entrySize int
	align     int
	score     int
	run       int
}

// deadlineCheckInterval is how many positions are scanned between
// cooperative deadline checks.
const deadlineCheckInterval = 256

// scanForDirectory searches the window for the best-scoring directory
// candidate. It returns ErrRecoveryExhausted if nothing clears the
// threshold; the caller keeps whatever partial metadata it already has.
func scanForDirectory(r *reader, p scanParams, deadline time.Time) (candidate, error) {
	p = p.withDefaults()

	end := p.start + p.window
	if end > r.len() {
		end = r.len()
	}

	var best candidate
	checked := 0
	for pos := p.start; pos < end; pos += p.step {
		checked++
		if checked%deadlineCheckInterval == 0 && !deadline.IsZero() && time.Now().After(deadline) {
			if best.score >= p.minScore && best.run >= p.minRun {
				return best, nil
			}
			return candidate{}, ErrDeadlineExceeded
		}
		for _, size := range p.entrySizes {
			for _, align := range p.alignments {
				c := scoreCandidate(r, pos, size, align, p)
				if c.score > best.score || (c.score == best.score && best.run < c.run) {
					best = c
				}
			}
		}
	}

	if best.score < p.minScore || best.run < p.minRun {
		return candidate{}, fmt.Errorf("%w: best score %d run %d in window [%d,%d)",
			ErrRecoveryExhausted, best.score, best.run, p.start, end)
	}
	return best, nil
}

// scoreCandidate samples the first sampleEntries entries at pos+align and
// scores one point per entry whose tag id is in the vendor range and whose
// type code is valid, with extra weight for the longest run of consecutive
// valid entries.
func scoreCandidate(r *reader, pos, size, align int, p scanParams) candidate {
	layout := layoutForEntrySize(size)
	c := candidate{offset: pos, entrySize: size, align: align}

	// A count-prefixed candidate must carry a plausible count word.
	if align == 2 {
		count, err := r.u16(pos)
		if err != nil || count == 0 || count > maxPlausibleDirEntries {
			return c
		}
	}

	// A real directory starts with a valid entry. Without this check a
	// candidate one step before the true start wins on score but decodes
	// nothing.
	if !entryLooksValid(r, pos+align, layout, p.tagMin, p.tagMax) {
		return c
	}

	run := 0
	for i := 0; i < p.sampleEntries; i++ {
		entry := pos + align + i*size
		if !r.in(entry, size) {
			break
		}
		if entryLooksValid(r, entry, layout, p.tagMin, p.tagMax) {
			c.score++
			run++
			if run > c.run {
				c.run = run
			}
		} else {
			run = 0
		}
	}

	if c.run >= p.minRun {
		c.score += c.run
	}
	return c
}

func entryLooksValid(r *reader, entry int, layout entryLayout, tagMin, tagMax uint16) bool {
	tag, err := r.u16(entry)
	if err != nil {
		return false
	}
	if tag < tagMin || tag > tagMax {
		return false
	}
	typ, err := r.u16(entry + 2)
	if err != nil {
		return false
	}
	if !tiffType(typ).valid() {
		return false
	}
	var count uint32
	if layout.countWidth == 2 {
		c16, err := r.u16(entry + 4)
		if err != nil {
			return false
		}
		count = uint32(c16)
	} else {
		count, err = r.u32(entry + 4)
		if err != nil {
			return false
		}
	}
	return count > 0 && count <= 0x10000
}
