// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respcodec

// serializeModule builds the 8-byte extended header
// (u16(0xF000) u16(mux_id) u32(sub_opcode)) followed by the
// module-specific payload (spec.md §4.5).
func serializeModule(cmd Command, muxID uint16, subOpcode uint32) ([]byte, error) {
	payload, err := encodeModulePayload(cmd.Verb, cmd.Args)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 8+len(payload))
	out = appendU16(out, OpcodeModule)
	out = appendU16(out, muxID)
	out = appendU32(out, subOpcode)
	return append(out, payload...), nil
}

func encodeModulePayload(verb string, args [][]byte) ([]byte, error) {
	ns, cmd, ok := splitModuleVerb(verb)
	if !ok {
		return nil, ErrInvalidArgument
	}
	switch ns {
	case "JSON":
		switch cmd {
		case "SET":
			return encodeJSONSet(verb, args)
		case "GET":
			return encodeJSONGet(verb, args)
		case "DEL":
			return encodeJSONDel(verb, args)
		}
	case "BF":
		switch cmd {
		case "ADD", "EXISTS":
			return encodeKeyMember(verb, args)
		case "MADD":
			return encodeKeyElements(verb, args)
		}
	case "FT":
		switch cmd {
		case "SEARCH":
			return encodeKeyMember(verb, args)
		case "INFO":
			return encodeSingleKey(verb, args)
		}
	}
	return encodeGenericModule(verb, args)
}

const (
	jsonFlagNX byte = 0x01
	jsonFlagXX byte = 0x02
)

// encodeJSONSet: str2(key), str2(path), str4(json), u8(flags).
func encodeJSONSet(verb string, args [][]byte) ([]byte, error) {
	if len(args) < 3 || len(args) > 4 {
		return nil, arityError(verb, 3, len(args))
	}
	var flags byte
	if len(args) == 4 {
		switch {
		case equalsKeyword(args[3], "NX"):
			flags = jsonFlagNX
		case equalsKeyword(args[3], "XX"):
			flags = jsonFlagXX
		default:
			return nil, arityError(verb, 3, len(args))
		}
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	out, err = appendStr2(out, args[1])
	if err != nil {
		return nil, err
	}
	out, err = appendStr4(out, args[2])
	if err != nil {
		return nil, err
	}
	return append(out, flags), nil
}

// encodeJSONGet: str2(key), u16(n), str2(path) × n.
func encodeJSONGet(verb string, args [][]byte) ([]byte, error) {
	if len(args) < 1 {
		return nil, arityError(verb, 1, len(args))
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	paths, err := encodeKeyList(args[1:])
	if err != nil {
		return nil, err
	}
	return append(out, paths...), nil
}

// encodeJSONDel: str2(key) and an optional str2(path) if present.
func encodeJSONDel(verb string, args [][]byte) ([]byte, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, arityError(verb, 1, len(args))
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 2 {
		out, err = appendStr2(out, args[1])
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// encodeGenericModule is the fallback for a module command in a known
// namespace whose specific verb has no dedicated schema: the
// concatenation of str2(arg) for every argument.
func encodeGenericModule(verb string, args [][]byte) ([]byte, error) {
	var out []byte
	var err error
	for _, a := range args {
		out, err = appendStr2(out, a)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
