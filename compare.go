// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respcodec

import (
	"encoding/hex"
)

// previewLen is the number of leading bytes shown in a Measurement's hex
// preview fields.
const previewLen = 16

// Measurement is the structured per-frame record the Comparator
// produces (spec.md §4.6). A negative Delta (BP larger than TP) is a
// legitimate measurement, not an error — it happens, for example, for a
// passthrough frame, whose 8-byte envelope header is added on top of the
// whole TP encoding.
type Measurement struct {
	Verb      string
	TPSize    int
	BPSize    int
	Delta     int
	DeltaPct  float64
	TPPreview string
	BPPreview string
}

// Compare measures the wire-size difference between a TP frame and its
// BP re-encoding for the same Command.
func Compare(cmd Command, tp, bp []byte) Measurement {
	delta := len(tp) - len(bp)
	var pct float64
	if len(tp) != 0 {
		pct = float64(delta) / float64(len(tp)) * 100
	}
	return Measurement{
		Verb:      cmd.Verb,
		TPSize:    len(tp),
		BPSize:    len(bp),
		Delta:     delta,
		DeltaPct:  pct,
		TPPreview: hexPreview(tp),
		BPPreview: hexPreview(bp),
	}
}

func hexPreview(b []byte) string {
	if len(b) <= previewLen {
		return hex.EncodeToString(b)
	}
	return hex.EncodeToString(b[:previewLen]) + "..."
}
