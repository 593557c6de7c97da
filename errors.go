// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respcodec

import "errors"

var (
	// ErrInvalidArgument reports an invalid configuration or nil input.
	ErrInvalidArgument = errors.New("respcodec: invalid argument")

	// ErrNoVerb reports a frame with zero elements (no verb present).
	ErrNoVerb = errors.New("respcodec: frame has no verb")

	// ErrArityMismatch reports that a verb's family required more
	// arguments than were present.
	ErrArityMismatch = errors.New("respcodec: arity mismatch")

	// ErrNumericParse reports an integer or float field that failed to
	// parse.
	ErrNumericParse = errors.New("respcodec: numeric parse failure")

	// ErrPrefixOverflow reports a field whose byte length exceeds the
	// wire prefix width reserved for its slot.
	ErrPrefixOverflow = errors.New("respcodec: field exceeds prefix width")
)
