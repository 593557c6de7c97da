// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respcodec_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"code.hybscloud.com/respcodec"
)

func b(s string) []byte { return []byte(s) }

// S1: GET mykey
func TestSerialize_S1_Get(t *testing.T) {
	cmd := respcodec.NewCommand("GET", [][]byte{b("mykey")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := append([]byte{0x00, 0x00, 0x00, 0x00}, encodeStr2(t, "mykey")...)
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}
}

// S2: SET foo hello
func TestSerialize_S2_Set(t *testing.T) {
	cmd := respcodec.NewCommand("SET", [][]byte{b("foo"), b("hello")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	var want []byte
	want = append(want, 0x00, 0x01, 0x00, 0x00)
	want = append(want, encodeStr2(t, "foo")...)
	want = append(want, encodeStr4(t, "hello")...)
	want = append(want, 0x00)                           // flags
	want = append(want, 0, 0, 0, 0, 0, 0, 0, 0)          // expiry = 0
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}
}

// S3: SET k v EX 60
func TestSerialize_S3_SetWithEx(t *testing.T) {
	cmd := respcodec.NewCommand("SET", [][]byte{b("k"), b("v"), b("EX"), b("60")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	var want []byte
	want = append(want, 0x00, 0x01, 0x00, 0x00)
	want = append(want, encodeStr2(t, "k")...)
	want = append(want, encodeStr4(t, "v")...)
	want = append(want, 0x04)
	want = binary.BigEndian.AppendUint64(want, 60)
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}
}

// S4: MGET k1 k2 k3
func TestSerialize_S4_Mget(t *testing.T) {
	cmd := respcodec.NewCommand("MGET", [][]byte{b("k1"), b("k2"), b("k3")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	var want []byte
	want = append(want, 0x00, 0x0C, 0x00, 0x00)
	want = append(want, 0x00, 0x03)
	want = append(want, encodeStr2(t, "k1")...)
	want = append(want, encodeStr2(t, "k2")...)
	want = append(want, encodeStr2(t, "k3")...)
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}
}

// S5: PUBLISH news hello
func TestSerialize_S5_Publish(t *testing.T) {
	cmd := respcodec.NewCommand("PUBLISH", [][]byte{b("news"), b("hello")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	var want []byte
	want = append(want, 0x02, 0x00, 0x00, 0x00)
	want = append(want, encodeStr2(t, "news")...)
	want = append(want, encodeStr4(t, "hello")...)
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}
}

// S6: JSON.SET k1 $.foo "x" — decode the header fields and the payload
// component-wise (see DESIGN.md: the spec's literal total byte count
// for this scenario does not match its own schema arithmetic).
func TestSerialize_S6_JSONSet(t *testing.T) {
	cmd := respcodec.NewCommand("JSON.SET", [][]byte{b("k1"), b("$.foo"), b(`"x"`)})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) < 8 {
		t.Fatalf("frame too short: %d", len(out))
	}
	opcode := binary.BigEndian.Uint16(out[0:2])
	mux := binary.BigEndian.Uint16(out[2:4])
	subOpcode := binary.BigEndian.Uint32(out[4:8])
	if opcode != respcodec.OpcodeModule {
		t.Fatalf("opcode = %#x, want %#x", opcode, respcodec.OpcodeModule)
	}
	if mux != 0 {
		t.Fatalf("mux = %d, want 0", mux)
	}
	if subOpcode != 0 {
		t.Fatalf("sub_opcode = %#x, want 0 (JSON module id 0, SET command id 0)", subOpcode)
	}
	payload := out[8:]
	var want []byte
	want = append(want, encodeStr2(t, "k1")...)
	want = append(want, encodeStr2(t, "$.foo")...)
	want = append(want, encodeStr4(t, `"x"`)...)
	want = append(want, 0x00) // flags: neither NX nor XX given
	if !bytes.Equal(payload, want) {
		t.Fatalf("payload = % x, want % x", payload, want)
	}
}

// S7: an unknown verb falls through to passthrough, and re-parsing its
// embedded TP bytes yields the same Command Record.
func TestSerialize_S7_PassthroughRoundTrip(t *testing.T) {
	cmd := respcodec.NewCommand("UNKNOWN", [][]byte{b("arg")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	opcode := binary.BigEndian.Uint16(out[0:2])
	if opcode != respcodec.OpcodePassthrough {
		t.Fatalf("opcode = %#x, want %#x", opcode, respcodec.OpcodePassthrough)
	}
	respLen := binary.BigEndian.Uint32(out[4:8])
	embedded := out[8:]
	if int(respLen) != len(embedded) {
		t.Fatalf("resp_len = %d, want %d", respLen, len(embedded))
	}
	reparsed := respcodec.Parse(embedded)
	if reparsed.Kind != respcodec.Ready {
		t.Fatalf("embedded TP bytes did not parse: %+v", reparsed)
	}
	if reparsed.Command.Verb != "UNKNOWN" {
		t.Fatalf("verb = %q, want UNKNOWN", reparsed.Command.Verb)
	}
	if len(reparsed.Command.Args) != 1 || string(reparsed.Command.Args[0]) != "arg" {
		t.Fatalf("args = %v", reparsed.Command.Args)
	}
}

func TestSerialize_SetFlagCombinations(t *testing.T) {
	cases := []struct {
		name       string
		args       []string
		wantFlags  byte
		wantExpiry int64
	}{
		{"plain", []string{"key", "value"}, 0x00, 0},
		{"nx-ex", []string{"key", "value", "NX", "EX", "60"}, 0x05, 60},
		{"ex-then-px-px-wins", []string{"key", "value", "EX", "10", "PX", "500"}, 0x08, 500},
		{"px-then-ex-ex-wins", []string{"key", "value", "PX", "500", "EX", "10"}, 0x04, 10},
		{"xx-px", []string{"key", "value", "XX", "PX", "1000"}, 0x0A, 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := make([][]byte, len(tc.args))
			for i, a := range tc.args {
				args[i] = b(a)
			}
			cmd := respcodec.NewCommand("SET", args)
			out, err := respcodec.Serialize(cmd, 0)
			if err != nil {
				t.Fatal(err)
			}
			flags := out[len(out)-9]
			expiry := int64(binary.BigEndian.Uint64(out[len(out)-8:]))
			if flags != tc.wantFlags {
				t.Errorf("flags = %#x, want %#x", flags, tc.wantFlags)
			}
			if expiry != tc.wantExpiry {
				t.Errorf("expiry = %d, want %d", expiry, tc.wantExpiry)
			}
		})
	}
}

func TestSerialize_ArityMismatch(t *testing.T) {
	cmd := respcodec.NewCommand("SET", [][]byte{b("onlykey")})
	_, err := respcodec.Serialize(cmd, 0)
	if !errors.Is(err, respcodec.ErrArityMismatch) {
		t.Fatalf("err = %v, want ErrArityMismatch", err)
	}
}

func TestSerialize_NumericParseFailure(t *testing.T) {
	cmd := respcodec.NewCommand("INCRBY", [][]byte{b("k"), b("notanumber")})
	_, err := respcodec.Serialize(cmd, 0)
	if !errors.Is(err, respcodec.ErrNumericParse) {
		t.Fatalf("err = %v, want ErrNumericParse", err)
	}
}

func TestSerialize_PrefixOverflow_Str2(t *testing.T) {
	big := bytes.Repeat([]byte("a"), math.MaxUint16+1)
	cmd := respcodec.NewCommand("GET", [][]byte{big})
	_, err := respcodec.Serialize(cmd, 0)
	if !errors.Is(err, respcodec.ErrPrefixOverflow) {
		t.Fatalf("err = %v, want ErrPrefixOverflow", err)
	}
}

func TestSerialize_Str2MaxLenIsValid(t *testing.T) {
	max := bytes.Repeat([]byte("a"), math.MaxUint16)
	cmd := respcodec.NewCommand("GET", [][]byte{max})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 4+2+math.MaxUint16 {
		t.Fatalf("len = %d", len(out))
	}
}

func TestSerialize_IntegerExtremes(t *testing.T) {
	cases := []struct {
		lit  string
		want int64
	}{
		{"-9223372036854775808", math.MinInt64},
		{"9223372036854775807", math.MaxInt64},
	}
	for _, tc := range cases {
		cmd := respcodec.NewCommand("INCRBY", [][]byte{b("k"), b(tc.lit)})
		out, err := respcodec.Serialize(cmd, 0)
		if err != nil {
			t.Fatalf("%s: %v", tc.lit, err)
		}
		got := int64(binary.BigEndian.Uint64(out[len(out)-8:]))
		if got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.lit, got, tc.want)
		}
	}
}

func TestSerialize_Deterministic(t *testing.T) {
	cmd := respcodec.NewCommand("SET", [][]byte{b("k"), b("v")})
	a, err := respcodec.Serialize(cmd, 42)
	if err != nil {
		t.Fatal(err)
	}
	bb, err := respcodec.Serialize(cmd, 42)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, bb) {
		t.Fatalf("serialize is not deterministic: % x vs % x", a, bb)
	}
}

func TestSerialize_MuxIDRoundTrip(t *testing.T) {
	cmd := respcodec.NewCommand("GET", [][]byte{b("k")})
	out, err := respcodec.Serialize(cmd, 0xBEEF)
	if err != nil {
		t.Fatal(err)
	}
	if got := binary.BigEndian.Uint16(out[2:4]); got != 0xBEEF {
		t.Fatalf("mux = %#x, want 0xBEEF", got)
	}
}

func TestSerialize_ZRangeWithScores(t *testing.T) {
	cmd := respcodec.NewCommand("ZRANGE", [][]byte{b("k"), b("0"), b("-1"), b("WITHSCORES")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	if out[len(out)-1] != 0x01 {
		t.Fatalf("flags = %#x, want 0x01", out[len(out)-1])
	}
}

func TestSerialize_ZAdd(t *testing.T) {
	cmd := respcodec.NewCommand("ZADD", [][]byte{b("k"), b("1.5"), b("member1"), b("2"), b("member2")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	// header(4) + str2(key) + u8(flags) + u16(n)
	payload := out[4:]
	keyLen := int(binary.BigEndian.Uint16(payload[0:2]))
	rest := payload[2+keyLen:]
	flags := rest[0]
	n := binary.BigEndian.Uint16(rest[1:3])
	if flags != 0 {
		t.Fatalf("flags = %#x, want 0 (reserved)", flags)
	}
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
}

func encodeStr2(t *testing.T, s string) []byte {
	t.Helper()
	out := make([]byte, 2+len(s))
	binary.BigEndian.PutUint16(out, uint16(len(s)))
	copy(out[2:], s)
	return out
}

func encodeStr4(t *testing.T, s string) []byte {
	t.Helper()
	out := make([]byte, 4+len(s))
	binary.BigEndian.PutUint32(out, uint32(len(s)))
	copy(out[4:], s)
	return out
}
