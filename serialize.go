// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respcodec

import "fmt"

// Serialize turns a Command Record into a BP frame tagged with muxID.
//
// Dispatch (spec.md §4.3):
//  1. module verb → 8-byte extended header, module schema.
//  2. core verb → 4-byte header, family schema.
//  3. otherwise → passthrough envelope.
//
// Serialize fails only on arity mismatch, numeric parse failure, or a
// field exceeding its wire prefix width; every other condition (an
// unrecognized verb) routes to passthrough rather than erroring.
func Serialize(cmd Command, muxID uint16) ([]byte, error) {
	entry := Lookup(cmd.Verb)
	switch entry.Kind {
	case KindModule:
		return serializeModule(cmd, muxID, entry.SubOpcode)
	case KindCore:
		return serializeCore(cmd, muxID, entry.Opcode, entry.Family)
	default:
		return EncodePassthrough(cmd, muxID)
	}
}

func serializeCore(cmd Command, muxID uint16, opcode uint16, family Family) ([]byte, error) {
	payload, err := encodeFamily(family, cmd.Verb, cmd.Args)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 4+len(payload))
	out = appendU16(out, opcode)
	out = appendU16(out, muxID)
	return append(out, payload...), nil
}

func encodeFamily(family Family, verb string, args [][]byte) ([]byte, error) {
	switch family {
	case FamilySingleKey:
		return encodeSingleKey(verb, args)
	case FamilyKeyValue:
		return encodeKeyValue(verb, args)
	case FamilyKeyInt:
		return encodeKeyInt(verb, args)
	case FamilyMultiKey:
		return encodeMultiKey(verb, args)
	case FamilyKVPairs:
		return encodeKVPairs(verb, args)
	case FamilyKeyElements:
		return encodeKeyElements(verb, args)
	case FamilyKeyCountOpt:
		return encodeKeyCountOpt(verb, args)
	case FamilyKeyRange:
		return encodeKeyRange(verb, args)
	case FamilyKeyRangeFlags:
		return encodeKeyRangeFlags(verb, args)
	case FamilySortedSetAdd:
		return encodeSortedSetAdd(verb, args)
	case FamilyKeyMember:
		return encodeKeyMember(verb, args)
	case FamilyKeyMemberFlag:
		return encodeKeyMemberFlag(verb, args)
	case FamilyHashSet:
		return encodeHashSet(verb, args)
	case FamilyPublish:
		return encodePublish(verb, args)
	case FamilySubscribe:
		return encodeSubscribe(verb, args)
	case FamilyPingLike:
		return encodePingLike(verb, args)
	case FamilySelect:
		return encodeSelect(verb, args)
	case FamilySetCommand:
		return encodeSetCommand(verb, args)
	default:
		return nil, fmt.Errorf("respcodec: unhandled family %s for verb %s", family, verb)
	}
}
