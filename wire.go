// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respcodec

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	maxStr2Len = math.MaxUint16
	maxStr4Len = math.MaxUint32
)

// appendStr2 appends a 2-byte big-endian length prefix followed by b.
func appendStr2(buf []byte, b []byte) ([]byte, error) {
	if len(b) > maxStr2Len {
		return buf, fmt.Errorf("%w: %d bytes exceeds str2 prefix width", ErrPrefixOverflow, len(b))
	}
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(b)))
	return append(buf, b...), nil
}

// appendStr4 appends a 4-byte big-endian length prefix followed by b.
func appendStr4(buf []byte, b []byte) ([]byte, error) {
	if uint64(len(b)) > maxStr4Len {
		return buf, fmt.Errorf("%w: %d bytes exceeds str4 prefix width", ErrPrefixOverflow, len(b))
	}
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(b)))
	return append(buf, b...), nil
}

func appendI64(buf []byte, v int64) []byte {
	return binary.BigEndian.AppendUint64(buf, uint64(v))
}

func appendF64(buf []byte, v float64) []byte {
	return binary.BigEndian.AppendUint64(buf, math.Float64bits(v))
}

func appendU16(buf []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(buf, v)
}

func appendU32(buf []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(buf, v)
}

// parseInt64 parses an optional leading '-' followed by one or more
// ASCII digits. Anything else, or a magnitude outside int64, is a
// numeric parse failure.
func parseInt64(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, fmt.Errorf("%w: empty integer field", ErrNumericParse)
	}
	neg := false
	i := 0
	if b[0] == '-' {
		neg = true
		i = 1
	}
	if i >= len(b) {
		return 0, fmt.Errorf("%w: %q has no digits", ErrNumericParse, b)
	}
	var v uint64
	for ; i < len(b); i++ {
		c := b[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q is not a valid integer", ErrNumericParse, b)
		}
		d := uint64(c - '0')
		if v > (math.MaxUint64-d)/10 {
			return 0, fmt.Errorf("%w: %q overflows int64", ErrNumericParse, b)
		}
		v = v*10 + d
	}
	if neg {
		if v > uint64(math.MaxInt64)+1 {
			return 0, fmt.Errorf("%w: %q overflows int64", ErrNumericParse, b)
		}
		return -int64(v), nil
	}
	if v > uint64(math.MaxInt64) {
		return 0, fmt.Errorf("%w: %q overflows int64", ErrNumericParse, b)
	}
	return int64(v), nil
}

// parseUint16 parses one or more ASCII digits into a u16 field.
func parseUint16(b []byte) (uint16, error) {
	if len(b) == 0 {
		return 0, fmt.Errorf("%w: empty integer field", ErrNumericParse)
	}
	var v uint32
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q is not a valid integer", ErrNumericParse, b)
		}
		v = v*10 + uint32(c-'0')
		if v > math.MaxUint16 {
			return 0, fmt.Errorf("%w: %q overflows u16", ErrNumericParse, b)
		}
	}
	return uint16(v), nil
}

// parseFloat64 parses the canonical decimal forms plus the tokens inf,
// +inf, -inf, nan (case-insensitive).
func parseFloat64(b []byte) (float64, error) {
	switch strings.ToLower(string(b)) {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid float", ErrNumericParse, b)
	}
	return v, nil
}

// equalsKeyword reports whether b is an ASCII case-insensitive match for
// the (already-uppercase) keyword kw. Arguments are byte strings, not
// text, so the comparison normalizes a copy rather than mutating Args
// (spec.md §9).
func equalsKeyword(b []byte, kw string) bool {
	if len(b) != len(kw) {
		return false
	}
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c != kw[i] {
			return false
		}
	}
	return true
}

func arityError(verb string, want, got int) error {
	return fmt.Errorf("%w: %s requires at least %d argument(s), got %d", ErrArityMismatch, verb, want, got)
}
