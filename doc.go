// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package respcodec re-encodes a text-framed request/response protocol
// ("TP") into a compact binary wire format ("BP") carrying the same
// semantic commands.
//
// Semantics and design:
//   - Forward path only: the TP Parser turns a byte stream into Command
//     Records, and the BP Serializer turns a Command Record into a
//     structured binary frame whose layout depends on the verb's family.
//     Unrecognized verbs fall back to a length-prefixed passthrough
//     envelope carrying the canonical TP re-encoding.
//   - Reverse path: only the passthrough/module/core framing envelope is
//     specified for decoding; there is no general BP→Command Record
//     decoder for every per-verb schema (spec.md §1 Non-goals).
//   - Single-threaded cooperative use per stream: the parser and
//     serializer hold no external resources and perform no I/O of their
//     own; a driver (respcodec.Converter) owns the buffer and feeds
//     bytes in.
//   - The Opcode Registry is built once at init from a static schedule
//     (internal/schedule) and never mutated; it is safe to read
//     concurrently from any number of goroutines.
package respcodec
