// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respcodec

import "strconv"

// EncodePassthrough wraps the canonical TP re-encoding of cmd in a
// length-prefixed envelope:
//
//	u16(0xFFFF) u16(mux_id) u32(resp_len) <resp_bytes>
//
// It never fails: byte strings are length-prefixed on the TP side, not
// escaped, so there is no shape of Command that cannot be re-encoded
// (spec.md §7).
func EncodePassthrough(cmd Command, muxID uint16) ([]byte, error) {
	tp := EncodeTP(cmd)
	out := make([]byte, 0, 8+len(tp))
	out = appendU16(out, OpcodePassthrough)
	out = appendU16(out, muxID)
	out = appendU32(out, uint32(len(tp)))
	return append(out, tp...), nil
}

// EncodeTP renders cmd back into its canonical TP wire form: the
// uppercased verb followed by its original args, as a multi-bulk array.
func EncodeTP(cmd Command) []byte {
	n := 1 + len(cmd.Args)
	out := make([]byte, 0, 16+len(cmd.Verb)+16*len(cmd.Args))
	out = append(out, '*')
	out = strconv.AppendInt(out, int64(n), 10)
	out = append(out, '\r', '\n')
	out = appendBulk(out, []byte(cmd.Verb))
	for _, a := range cmd.Args {
		out = appendBulk(out, a)
	}
	return out
}

func appendBulk(buf []byte, b []byte) []byte {
	buf = append(buf, '$')
	buf = strconv.AppendInt(buf, int64(len(b)), 10)
	buf = append(buf, '\r', '\n')
	buf = append(buf, b...)
	return append(buf, '\r', '\n')
}
