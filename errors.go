// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned when the buffer does not start with a
	// recognizable container signature.
	ErrInvalidFormat = fmt.Errorf("rawmeta: invalid format")

	// ErrBufferBounds signals a read beyond the end of the buffer.
	// It is always recovered locally by skipping the entry or directory.
	ErrBufferBounds = errors.New("rawmeta: read beyond buffer")

	// ErrMalformedDirectory signals a directory with a self-evidently
	// invalid entry count or entry fields. The directory is treated as empty.
	ErrMalformedDirectory = errors.New("rawmeta: malformed directory")

	// ErrRecoveryExhausted signals that the structural scanner found no
	// plausible directory within its search budget.
	ErrRecoveryExhausted = errors.New("rawmeta: no directory found")

	// ErrDeadlineExceeded signals that the configured parse deadline was
	// reached. The record accumulated so far is still returned.
	ErrDeadlineExceeded = errors.New("rawmeta: parse deadline exceeded")
)

func newInvalidFormatErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidFormat}, args...)...)
}

func newBoundsErrorf(offset, length, size int) error {
	return fmt.Errorf("%w: offset %d length %d in buffer of %d", ErrBufferBounds, offset, length, size)
}

// skippable reports whether err is one of the locally recoverable parse
// conditions. The walker converts these into a skipped entry or directory;
// they never fail the file.
func skippable(err error) bool {
	return errors.Is(err, ErrBufferBounds) ||
		errors.Is(err, ErrMalformedDirectory) ||
		errors.Is(err, ErrRecoveryExhausted)
}
