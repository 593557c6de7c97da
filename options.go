// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respcodec

// FailurePolicy selects what the Streaming Converter does with a frame
// whose Serialize call failed with an arity mismatch or numeric parse
// failure (spec.md §7 item 2/3). Prefix overflow is always fatal for
// that frame regardless of policy.
type FailurePolicy uint8

const (
	// PolicyDrop drops the frame and counts it as malformed. This is
	// the default (spec.md §7: "default: drop and count").
	PolicyDrop FailurePolicy = iota

	// PolicyPassthrough re-encodes the frame through the passthrough
	// envelope instead of dropping it.
	PolicyPassthrough
)

// Options configures a Converter.
type Options struct {
	// HighWaterMark bounds the rolling input buffer (spec.md §4.7: "a
	// fixed high-water mark, implementation choice, >= 1 MiB").
	HighWaterMark int

	// MuxID is the caller-supplied stream-correlation tag stamped into
	// every BP frame this Converter produces.
	MuxID uint16

	// OnFailure selects the per-frame failure policy.
	OnFailure FailurePolicy
}

var defaultOptions = Options{
	HighWaterMark: 1 << 20,
	MuxID:         0,
	OnFailure:     PolicyDrop,
}

// Option configures a Converter at construction time.
type Option func(*Options)

// WithHighWaterMark sets the rolling input buffer's soft cap.
func WithHighWaterMark(n int) Option {
	return func(o *Options) { o.HighWaterMark = n }
}

// WithMuxID sets the mux_id stamped into every produced BP frame.
func WithMuxID(id uint16) Option {
	return func(o *Options) { o.MuxID = id }
}

// WithFailurePolicy sets the arity/numeric-parse failure policy.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(o *Options) { o.OnFailure = p }
}
