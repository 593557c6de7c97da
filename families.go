// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respcodec

// This file holds the per-family BP payload encoders (spec.md §4.3).
// Each encoder validates arity against its family's fixed shape and
// returns the payload bytes that follow the 4-byte core header.

func encodeSingleKey(verb string, args [][]byte) ([]byte, error) {
	if len(args) != 1 {
		return nil, arityError(verb, 1, len(args))
	}
	return appendStr2(nil, args[0])
}

func encodeKeyValue(verb string, args [][]byte) ([]byte, error) {
	if len(args) != 2 {
		return nil, arityError(verb, 2, len(args))
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	return appendStr4(out, args[1])
}

func encodeKeyInt(verb string, args [][]byte) ([]byte, error) {
	if len(args) != 2 {
		return nil, arityError(verb, 2, len(args))
	}
	n, err := parseInt64(args[1])
	if err != nil {
		return nil, err
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	return appendI64(out, n), nil
}

func encodeMultiKey(verb string, args [][]byte) ([]byte, error) {
	if len(args) == 0 {
		return nil, arityError(verb, 1, len(args))
	}
	return encodeKeyList(args)
}

// encodeKeyList appends u16(n) followed by str2(each) for every element
// of keys. Shared by multi-key and by the JSON module's path list, which
// has the identical shape.
func encodeKeyList(keys [][]byte) ([]byte, error) {
	if len(keys) > 0xFFFF {
		return nil, ErrPrefixOverflow
	}
	out := appendU16(nil, uint16(len(keys)))
	var err error
	for _, k := range keys {
		out, err = appendStr2(out, k)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func encodeKVPairs(verb string, args [][]byte) ([]byte, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, arityError(verb, 2, len(args))
	}
	n := len(args) / 2
	if n > 0xFFFF {
		return nil, ErrPrefixOverflow
	}
	out := appendU16(nil, uint16(n))
	var err error
	for i := 0; i < len(args); i += 2 {
		out, err = appendStr2(out, args[i])
		if err != nil {
			return nil, err
		}
		out, err = appendStr4(out, args[i+1])
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func encodeKeyElements(verb string, args [][]byte) ([]byte, error) {
	if len(args) < 2 {
		return nil, arityError(verb, 2, len(args))
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	elems, err := encodeKeyList(args[1:])
	if err != nil {
		return nil, err
	}
	return append(out, elems...), nil
}

func encodeKeyCountOpt(verb string, args [][]byte) ([]byte, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, arityError(verb, 1, len(args))
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 2 {
		n, err := parseUint16(args[1])
		if err != nil {
			return nil, err
		}
		out = appendU16(out, n)
	}
	return out, nil
}

func encodeKeyRange(verb string, args [][]byte) ([]byte, error) {
	if len(args) != 3 {
		return nil, arityError(verb, 3, len(args))
	}
	start, err := parseInt64(args[1])
	if err != nil {
		return nil, err
	}
	stop, err := parseInt64(args[2])
	if err != nil {
		return nil, err
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	out = appendI64(out, start)
	out = appendI64(out, stop)
	return out, nil
}

const flagWithScores byte = 0x01

func encodeKeyRangeFlags(verb string, args [][]byte) ([]byte, error) {
	if len(args) < 3 || len(args) > 4 {
		return nil, arityError(verb, 3, len(args))
	}
	start, err := parseInt64(args[1])
	if err != nil {
		return nil, err
	}
	stop, err := parseInt64(args[2])
	if err != nil {
		return nil, err
	}
	var flags byte
	if len(args) == 4 {
		if !equalsKeyword(args[3], "WITHSCORES") {
			return nil, arityError(verb, 3, len(args))
		}
		flags = flagWithScores
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	out = appendI64(out, start)
	out = appendI64(out, stop)
	out = append(out, flags)
	return out, nil
}

func encodeSortedSetAdd(verb string, args [][]byte) ([]byte, error) {
	if len(args) < 3 || (len(args)-1)%2 != 0 {
		return nil, arityError(verb, 3, len(args))
	}
	n := (len(args) - 1) / 2
	if n > 0xFFFF {
		return nil, ErrPrefixOverflow
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	// ZADD's optional NX/XX/GT/LT/CH/INCR modifiers are not yet defined
	// on the wire (spec.md §9 open question); the flags byte is
	// reserved zero until a companion spec assigns its bits.
	out = append(out, 0)
	out = appendU16(out, uint16(n))
	for i := 1; i < len(args); i += 2 {
		score, err := parseFloat64(args[i])
		if err != nil {
			return nil, err
		}
		out = appendF64(out, score)
		out, err = appendStr2(out, args[i+1])
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func encodeKeyMember(verb string, args [][]byte) ([]byte, error) {
	if len(args) != 2 {
		return nil, arityError(verb, 2, len(args))
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	return appendStr2(out, args[1])
}

func encodeKeyMemberFlag(verb string, args [][]byte) ([]byte, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, arityError(verb, 2, len(args))
	}
	var flag byte
	if len(args) == 3 {
		if !equalsKeyword(args[2], "WITHSCORE") {
			return nil, arityError(verb, 2, len(args))
		}
		flag = 1
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	out, err = appendStr2(out, args[1])
	if err != nil {
		return nil, err
	}
	return append(out, flag), nil
}

func encodeHashSet(verb string, args [][]byte) ([]byte, error) {
	if len(args) < 3 || (len(args)-1)%2 != 0 {
		return nil, arityError(verb, 3, len(args))
	}
	n := (len(args) - 1) / 2
	if n > 0xFFFF {
		return nil, ErrPrefixOverflow
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	out = appendU16(out, uint16(n))
	for i := 1; i < len(args); i += 2 {
		out, err = appendStr2(out, args[i])
		if err != nil {
			return nil, err
		}
		out, err = appendStr4(out, args[i+1])
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func encodePublish(verb string, args [][]byte) ([]byte, error) {
	if len(args) != 2 {
		return nil, arityError(verb, 2, len(args))
	}
	out, err := appendStr2(nil, args[0])
	if err != nil {
		return nil, err
	}
	return appendStr4(out, args[1])
}

func encodeSubscribe(verb string, args [][]byte) ([]byte, error) {
	return encodeKeyList(args)
}

func encodePingLike(verb string, args [][]byte) ([]byte, error) {
	if len(args) > 1 {
		return nil, arityError(verb, 0, len(args))
	}
	if len(args) == 0 {
		return nil, nil
	}
	return appendStr2(nil, args[0])
}

func encodeSelect(verb string, args [][]byte) ([]byte, error) {
	if len(args) != 1 {
		return nil, arityError(verb, 1, len(args))
	}
	n, err := parseUint16(args[0])
	if err != nil {
		return nil, err
	}
	return appendU16(nil, n), nil
}

const (
	flagNX byte = 0x01
	flagXX byte = 0x02
	flagEX byte = 0x04
	flagPX byte = 0x08
)

// encodeSetCommand implements the SET family: key, value, optional
// NX|XX, optional EX seconds|PX milliseconds. When both EX and PX are
// present the later one wins: its flag is set and the earlier one's is
// cleared (spec.md §4.3).
func encodeSetCommand(verb string, args [][]byte) ([]byte, error) {
	if len(args) < 2 {
		return nil, arityError(verb, 2, len(args))
	}
	key, value := args[0], args[1]
	var flags byte
	var expiry int64
	i := 2
	for i < len(args) {
		switch {
		case equalsKeyword(args[i], "NX"):
			flags |= flagNX
			i++
		case equalsKeyword(args[i], "XX"):
			flags |= flagXX
			i++
		case equalsKeyword(args[i], "EX"):
			if i+1 >= len(args) {
				return nil, arityError(verb, i+2, len(args))
			}
			v, err := parseInt64(args[i+1])
			if err != nil {
				return nil, err
			}
			expiry = v
			flags = flags&^flagPX | flagEX
			i += 2
		case equalsKeyword(args[i], "PX"):
			if i+1 >= len(args) {
				return nil, arityError(verb, i+2, len(args))
			}
			v, err := parseInt64(args[i+1])
			if err != nil {
				return nil, err
			}
			expiry = v
			flags = flags&^flagEX | flagPX
			i += 2
		default:
			return nil, arityError(verb, i, len(args))
		}
	}
	out, err := appendStr2(nil, key)
	if err != nil {
		return nil, err
	}
	out, err = appendStr4(out, value)
	if err != nil {
		return nil, err
	}
	out = append(out, flags)
	out = appendI64(out, expiry)
	return out, nil
}
