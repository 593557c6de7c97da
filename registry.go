// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respcodec

import "code.hybscloud.com/respcodec/internal/schedule"

// Family identifies which BP payload schema a core verb uses.
type Family = schedule.Family

const (
	FamilySingleKey     = schedule.FamilySingleKey
	FamilyKeyValue      = schedule.FamilyKeyValue
	FamilyKeyInt        = schedule.FamilyKeyInt
	FamilyMultiKey      = schedule.FamilyMultiKey
	FamilyKVPairs       = schedule.FamilyKVPairs
	FamilyKeyElements   = schedule.FamilyKeyElements
	FamilyKeyCountOpt   = schedule.FamilyKeyCountOpt
	FamilyKeyRange      = schedule.FamilyKeyRange
	FamilyKeyRangeFlags = schedule.FamilyKeyRangeFlags
	FamilySortedSetAdd  = schedule.FamilySortedSetAdd
	FamilyKeyMember     = schedule.FamilyKeyMember
	FamilyKeyMemberFlag = schedule.FamilyKeyMemberFlag
	FamilyHashSet       = schedule.FamilyHashSet
	FamilyPublish       = schedule.FamilyPublish
	FamilySubscribe     = schedule.FamilySubscribe
	FamilyPingLike      = schedule.FamilyPingLike
	FamilySelect        = schedule.FamilySelect
	FamilySetCommand    = schedule.FamilySetCommand
)

// Reserved opcodes (spec.md §3).
const (
	OpcodeModule      uint16 = schedule.OpcodeModule
	OpcodePassthrough uint16 = schedule.OpcodePassthrough
)

// Kind classifies how the Opcode Registry resolved a verb.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindCore
	KindModule
)

func (k Kind) String() string {
	switch k {
	case KindCore:
		return "core"
	case KindModule:
		return "module"
	default:
		return "unknown"
	}
}

// RegistryEntry is the result of resolving a verb against the Opcode
// Registry.
type RegistryEntry struct {
	Kind      Kind
	Opcode    uint16
	SubOpcode uint32
	Family    Family
}

// Lookup resolves a canonicalized (uppercase) verb to its registry
// entry. It never errors: an unrecognized verb simply returns
// KindUnknown, routing the caller to the passthrough path.
func Lookup(verb string) RegistryEntry {
	if ns, cmd, ok := splitModuleVerb(verb); ok {
		if namespace, known := schedule.LookupNamespace(ns); known {
			cmdID, hasCmd := namespace.Commands[cmd]
			if !hasCmd {
				cmdID = schedule.GenericCommandID
			}
			return RegistryEntry{
				Kind:      KindModule,
				Opcode:    OpcodeModule,
				SubOpcode: schedule.SubOpcode(namespace.ID, cmdID),
			}
		}
		// Namespaced shape, but the namespace itself is unknown: not a
		// module verb at all (spec.md §4.5).
		return RegistryEntry{Kind: KindUnknown}
	}
	if e, ok := schedule.LookupCore(verb); ok {
		return RegistryEntry{Kind: KindCore, Opcode: e.Opcode, Family: e.Family}
	}
	return RegistryEntry{Kind: KindUnknown}
}
