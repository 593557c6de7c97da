// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respcodec_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"code.hybscloud.com/respcodec"
)

func TestSerialize_JSONGet_MultiplePaths(t *testing.T) {
	cmd := respcodec.NewCommand("JSON.GET", [][]byte{[]byte("k1"), []byte("$.a"), []byte("$.b")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	payload := out[8:]
	keyLen := int(binary.BigEndian.Uint16(payload[0:2]))
	rest := payload[2+keyLen:]
	n := binary.BigEndian.Uint16(rest[0:2])
	if n != 2 {
		t.Fatalf("path count = %d, want 2", n)
	}
}

func TestSerialize_JSONGet_NoPathsIsValid(t *testing.T) {
	cmd := respcodec.NewCommand("JSON.GET", [][]byte{[]byte("k1")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	payload := out[8:]
	keyLen := int(binary.BigEndian.Uint16(payload[0:2]))
	rest := payload[2+keyLen:]
	n := binary.BigEndian.Uint16(rest[0:2])
	if n != 0 {
		t.Fatalf("path count = %d, want 0", n)
	}
}

func TestSerialize_JSONSet_NXFlag(t *testing.T) {
	cmd := respcodec.NewCommand("JSON.SET", [][]byte{[]byte("k"), []byte("$"), []byte(`1`), []byte("NX")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	if out[len(out)-1] != 0x01 {
		t.Fatalf("flags = %#x, want 0x01 (NX)", out[len(out)-1])
	}
}

func TestSerialize_JSONSet_BadModifierIsArityMismatch(t *testing.T) {
	cmd := respcodec.NewCommand("JSON.SET", [][]byte{[]byte("k"), []byte("$"), []byte(`1`), []byte("BOGUS")})
	_, err := respcodec.Serialize(cmd, 0)
	if !errors.Is(err, respcodec.ErrArityMismatch) {
		t.Fatalf("err = %v, want ErrArityMismatch", err)
	}
}

func TestSerialize_JSONDel_OptionalPath(t *testing.T) {
	withPath := respcodec.NewCommand("JSON.DEL", [][]byte{[]byte("k"), []byte("$.a")})
	out, err := respcodec.Serialize(withPath, 0)
	if err != nil {
		t.Fatal(err)
	}
	payload := out[8:]
	keyLen := int(binary.BigEndian.Uint16(payload[0:2]))
	if len(payload) <= 2+keyLen {
		t.Fatalf("expected a trailing path, payload = % x", payload)
	}

	withoutPath := respcodec.NewCommand("JSON.DEL", [][]byte{[]byte("k")})
	out2, err := respcodec.Serialize(withoutPath, 0)
	if err != nil {
		t.Fatal(err)
	}
	payload2 := out2[8:]
	keyLen2 := int(binary.BigEndian.Uint16(payload2[0:2]))
	if len(payload2) != 2+keyLen2 {
		t.Fatalf("expected no trailing path, payload = % x", payload2)
	}
}

func TestSerialize_BFAdd_KeyMemberShape(t *testing.T) {
	cmd := respcodec.NewCommand("BF.ADD", [][]byte{[]byte("filter"), []byte("item")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) < 8 {
		t.Fatalf("frame too short")
	}
	subOpcode := binary.BigEndian.Uint32(out[4:8])
	other := respcodec.Lookup("BF.EXISTS")
	if subOpcode == other.SubOpcode {
		t.Fatalf("BF.ADD and BF.EXISTS must not share a sub_opcode")
	}
}

func TestSerialize_FTInfo_SingleKeyShape(t *testing.T) {
	cmd := respcodec.NewCommand("FT.INFO", [][]byte{[]byte("idx")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	payload := out[8:]
	keyLen := int(binary.BigEndian.Uint16(payload[0:2]))
	if len(payload) != 2+keyLen {
		t.Fatalf("FT.INFO payload has unexpected trailing bytes: % x", payload)
	}
}

func TestSerialize_UnknownCommandInKnownNamespaceUsesGenericSchema(t *testing.T) {
	cmd := respcodec.NewCommand("JSON.STRLEN", [][]byte{[]byte("k"), []byte("$.a")})
	out, err := respcodec.Serialize(cmd, 0)
	if err != nil {
		t.Fatal(err)
	}
	payload := out[8:]
	l0 := int(binary.BigEndian.Uint16(payload[0:2]))
	rest := payload[2+l0:]
	l1 := int(binary.BigEndian.Uint16(rest[0:2]))
	if 2+l1 != len(rest) {
		t.Fatalf("generic module payload shape mismatch: % x", payload)
	}
}
