// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

import (
	"bytes"
	"encoding"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Rat is a rational number.
type Rat[T int32 | uint32] interface {
	Num() T
	Den() T
	Float64() float64

	// String returns the string representation of the rational number.
	// If the denominator is 1, the string will be the numerator only.
	String() string
}

var (
	_ encoding.TextUnmarshaler = (*rat[int32])(nil)
	_ encoding.TextMarshaler   = rat[int32]{}
)

// rat is a rational number.
// It's a lightweight version of math/big.rat.
type rat[T int32 | uint32] struct {
	num T
	den T
}

// Num returns the numerator of the rational number.
func (r rat[T]) Num() T {
	return r.num
}

// Den returns the denominator of the rational number.
func (r rat[T]) Den() T {
	return r.den
}

// Float64 returns the float64 representation of the rational number.
func (r rat[T]) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

// String returns the string representation of the rational number.
// If the denominator is 1, the string will be the numerator only.
func (r rat[T]) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

func (r *rat[T]) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.Contains(s, "/") {
		num, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
		}
		r.num = T(num)
		r.den = 1
		return nil
	}
	if _, err := fmt.Sscanf(s, "%d/%d", &r.num, &r.den); err != nil {
		return fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
	}
	return nil
}

func (r rat[T]) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}

// NewRat returns a new Rat with the given numerator and denominator,
// reduced to its lowest terms.
func NewRat[T int32 | uint32](num, den T) Rat[T] {
	// Remove the greatest common divisor.
	gcd := func(a, b T) T {
		for b != 0 {
			a, b = b, a%b
		}
		return a
	}
	d := gcd(num, den)
	if d != 0 && d != 1 {
		num, den = num/d, den/d
	}

	// Denominator must be positive.
	if den < 0 {
		num, den = -num, -den
	}

	return &rat[T]{num: num, den: den}
}

func printableString(s string) string {
	ss := strings.Map(func(r rune) rune {
		if unicode.IsGraphic(r) {
			return r
		}
		return -1
	}, s)

	return strings.TrimSpace(ss)
}

func toPrintableValue(v any) any {
	switch vv := v.(type) {
	case string:
		return printableString(vv)
	case []byte:
		return printableString(string(trimBytesNulls(vv)))
	default:
		return v
	}
}

func trimBytesNulls(b []byte) []byte {
	var lo, hi int
	for lo = 0; lo < len(b) && b[lo] == 0; lo++ {
	}
	for hi = len(b) - 1; hi >= 0 && b[hi] == 0; hi-- {
	}
	if lo > hi {
		return nil
	}
	return b[lo : hi+1]
}

// binaryDataIndicator is the value stored for blobs larger than the
// configured tag size limit.
func binaryDataIndicator(n int) string {
	return fmt.Sprintf("(Binary data %d bytes)", n)
}

func bytesToSpaceDelim(bb []byte) string {
	var buff bytes.Buffer
	for i, b := range bb {
		if i > 0 {
			buff.WriteString(" ")
		}
		buff.WriteString(strconv.Itoa(int(b)))
	}
	return buff.String()
}

// degreesToDecimal converts a [deg, min, sec] rational triple to decimal
// degrees. Used for the GPS latitude/longitude tags.
func degreesToDecimal(v any) (float64, bool) {
	vals, ok := v.([]any)
	if !ok || len(vals) != 3 {
		return 0, false
	}
	deg := toFloat64(vals[0])
	min := toFloat64(vals[1])
	sec := toFloat64(vals[2])
	return deg + min/60 + sec/3600, true
}

type float64Provider interface {
	Float64() float64
}

func toFloat64(v any) float64 {
	switch vv := v.(type) {
	case float64Provider:
		return vv.Float64()
	case float64:
		return vv
	case uint32:
		return float64(vv)
	case int32:
		return float64(vv)
	case uint16:
		return float64(vv)
	default:
		return 0
	}
}
