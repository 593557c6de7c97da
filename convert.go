// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respcodec

import (
	"errors"
	"io"
	"time"
)

// Tally is the final report a Converter produces for one Convert call
// (spec.md §4.7).
type Tally struct {
	FramesIn        int
	FramesOut       int
	Malformed       int
	IncompleteAtEOF int
	TPBytes         int64
	BPBytes         int64
	Elapsed         time.Duration
}

// Converter drives the TP Parser and BP Serializer over a stream,
// tolerating and counting malformed input (spec.md §4.7). A Converter
// holds only its own configuration; all per-run state lives on the
// stack of Convert, so one Converter may be reused across runs or
// shared across goroutines as long as no single run is itself shared.
type Converter struct {
	opts Options
}

// NewConverter builds a Converter with the given options applied over
// the defaults.
func NewConverter(opts ...Option) *Converter {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return &Converter{opts: o}
}

const readChunk = 32 * 1024

// Convert reads TP frames from r, serializes each to BP, and writes the
// BP frames to w in the exact order they were read. It returns the
// final Tally even when it also returns a non-nil error (the error is
// an I/O failure from r or w; malformed/arity/overflow conditions are
// never returned as errors here, only counted).
func (c *Converter) Convert(r io.Reader, w io.Writer) (Tally, error) {
	var tally Tally
	start := time.Now()

	buf := make([]byte, 0, c.opts.HighWaterMark)
	chunk := make([]byte, readChunk)
	eof := false

	for {
		if !eof {
			n, rerr := r.Read(chunk)
			if n > 0 {
				buf = append(buf, chunk[:n]...)
			}
			if rerr != nil {
				if errors.Is(rerr, io.EOF) {
					eof = true
				} else {
					tally.Elapsed = time.Since(start)
					return tally, rerr
				}
			}
		}

		for {
			outcome := Parse(buf)
			switch outcome.Kind {
			case Ready:
				tally.FramesIn++
				tp := buf[:outcome.Consumed]
				tally.TPBytes += int64(len(tp))

				bp, serr := Serialize(outcome.Command, c.opts.MuxID)
				if serr != nil && c.opts.OnFailure == PolicyPassthrough && recoverableSerializeError(serr) {
					bp, serr = EncodePassthrough(outcome.Command, c.opts.MuxID)
				}
				if serr != nil {
					tally.Malformed++
				} else {
					if _, werr := w.Write(bp); werr != nil {
						tally.Elapsed = time.Since(start)
						return tally, werr
					}
					tally.FramesOut++
					tally.BPBytes += int64(len(bp))
				}

				buf = buf[outcome.Consumed:]
				continue

			case Malformed:
				tally.Malformed++
				buf = resync(buf, 0)
				continue

			default: // NeedMore
				if !eof && c.opts.HighWaterMark > 0 && len(buf) > c.opts.HighWaterMark {
					// The declared frame length exceeds what we're
					// willing to buffer; treat it the same as a
					// malformed frame at the start of buf and
					// resynchronize forward.
					tally.Malformed++
					buf = resync(buf, 0)
					continue
				}
			}
			break
		}

		if eof {
			if len(buf) > 0 {
				tally.IncompleteAtEOF++
			}
			break
		}
	}

	tally.Elapsed = time.Since(start)
	return tally, nil
}

// resync implements the Streaming Converter's recovery policy
// (spec.md §4.7): advance the buffer to the earliest '*' strictly after
// offset, or drop the whole buffer if there is none.
func resync(buf []byte, offset int) []byte {
	for i := offset + 1; i < len(buf); i++ {
		if buf[i] == '*' {
			return buf[i:]
		}
	}
	return buf[:0]
}

// recoverableSerializeError reports whether a Serialize failure is an
// arity mismatch or numeric parse failure — the two categories
// spec.md §7 leaves to a documented converter policy. Prefix overflow
// is always fatal for its frame regardless of policy.
func recoverableSerializeError(err error) bool {
	return errors.Is(err, ErrArityMismatch) || errors.Is(err, ErrNumericParse)
}
