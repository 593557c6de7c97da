// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package schedule holds the static, process-wide verb→opcode and
// module-verb→sub-opcode tables that back the Opcode Registry. It is
// pure data plus lookup: nothing here parses a frame or serializes a
// payload.
package schedule

import "fmt"

// Family identifies the BP payload schema a core verb uses.
type Family uint8

const (
	FamilySingleKey Family = iota
	FamilyKeyValue
	FamilyKeyInt
	FamilyMultiKey
	FamilyKVPairs
	FamilyKeyElements
	FamilyKeyCountOpt
	FamilyKeyRange
	FamilyKeyRangeFlags
	FamilySortedSetAdd
	FamilyKeyMember
	FamilyKeyMemberFlag
	FamilyHashSet
	FamilyPublish
	FamilySubscribe
	FamilyPingLike
	FamilySelect
	FamilySetCommand
)

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", f)
}

var familyNames = [...]string{
	"single-key", "key+value", "key+i64", "multi-key", "k/v-pairs",
	"key+elements", "key+count?", "key+range", "key+range+flags",
	"sortedset-add", "key+member", "key+member+flag", "hash-set",
	"publish", "subscribe", "ping-like", "select", "set-command",
}

// Reserved opcodes. No core verb may be assigned either value.
const (
	OpcodeModule      uint16 = 0xF000
	OpcodePassthrough uint16 = 0xFFFF
)

// GenericCommandID is the sub-opcode command component used for a module
// command whose namespace is known but whose specific verb is not listed
// in the module's command table.
const GenericCommandID uint16 = 0xFFFF

// CoreEntry is one row of the core opcode table.
type CoreEntry struct {
	Verb   string
	Opcode uint16
	Family Family
}

// coreTable is the static schedule. Numeric opcode values must never be
// renumbered once assigned: decoders on the other end of the wire depend
// on them (spec §6).
var coreTable = []CoreEntry{
	// string ops: 0x0000-0x003F
	{"GET", 0x0000, FamilySingleKey},
	{"SET", 0x0001, FamilySetCommand},
	{"APPEND", 0x0002, FamilyKeyValue},
	{"STRLEN", 0x0003, FamilySingleKey},
	{"SETNX", 0x0004, FamilyKeyValue},
	{"GETSET", 0x0005, FamilyKeyValue},
	{"INCR", 0x0006, FamilySingleKey},
	{"DECR", 0x0007, FamilySingleKey},
	{"INCRBY", 0x0008, FamilyKeyInt},
	{"DECRBY", 0x0009, FamilyKeyInt},
	{"GETRANGE", 0x000A, FamilyKeyRange},
	{"SUBSTR", 0x000B, FamilyKeyRange},
	{"MGET", 0x000C, FamilyMultiKey},
	{"MSET", 0x000D, FamilyKVPairs},
	{"MSETNX", 0x000E, FamilyKVPairs},

	// list ops: 0x0040-0x007F
	{"LPUSH", 0x0040, FamilyKeyElements},
	{"RPUSH", 0x0041, FamilyKeyElements},
	{"LPOP", 0x0042, FamilyKeyCountOpt},
	{"RPOP", 0x0043, FamilyKeyCountOpt},
	{"LLEN", 0x0044, FamilySingleKey},
	{"LRANGE", 0x0045, FamilyKeyRange},
	{"LINDEX", 0x0046, FamilyKeyInt},
	{"LTRIM", 0x0047, FamilyKeyRange},
	{"RPOPLPUSH", 0x0048, FamilyKeyMember},

	// set ops: 0x0080-0x00BF
	{"SADD", 0x0080, FamilyKeyElements},
	{"SREM", 0x0081, FamilyKeyElements},
	{"SMEMBERS", 0x0082, FamilySingleKey},
	{"SISMEMBER", 0x0083, FamilyKeyMember},
	{"SCARD", 0x0084, FamilySingleKey},
	{"SPOP", 0x0085, FamilyKeyCountOpt},
	{"SRANDMEMBER", 0x0086, FamilyKeyCountOpt},

	// sorted-set ops: 0x00C0-0x00FF
	{"ZADD", 0x00C0, FamilySortedSetAdd},
	{"ZREM", 0x00C1, FamilyKeyElements},
	{"ZSCORE", 0x00C2, FamilyKeyMember},
	{"ZRANK", 0x00C3, FamilyKeyMemberFlag},
	{"ZREVRANK", 0x00C4, FamilyKeyMemberFlag},
	{"ZCARD", 0x00C5, FamilySingleKey},
	{"ZRANGE", 0x00C6, FamilyKeyRangeFlags},
	{"ZREVRANGE", 0x00C7, FamilyKeyRangeFlags},

	// hash ops: 0x0100-0x013F
	{"HSET", 0x0100, FamilyHashSet},
	{"HMSET", 0x0101, FamilyHashSet},
	{"HGET", 0x0102, FamilyKeyMember},
	{"HDEL", 0x0103, FamilyKeyElements},
	{"HGETALL", 0x0104, FamilySingleKey},
	{"HLEN", 0x0105, FamilySingleKey},
	{"HEXISTS", 0x0106, FamilyKeyMember},
	{"HKEYS", 0x0107, FamilySingleKey},
	{"HVALS", 0x0108, FamilySingleKey},
	{"HMGET", 0x0109, FamilyKeyElements},

	// bitmap ops: 0x0140-0x015F
	{"GETBIT", 0x0140, FamilyKeyInt},
	{"BITCOUNT", 0x0141, FamilyKeyRange},
	{"BITPOS", 0x0142, FamilyKeyInt},

	// hyperloglog ops: 0x0160-0x017F
	{"PFADD", 0x0160, FamilyKeyElements},
	{"PFCOUNT", 0x0161, FamilyMultiKey},
	{"PFMERGE", 0x0162, FamilyMultiKey},

	// pub/sub: 0x0200-0x023F
	{"PUBLISH", 0x0200, FamilyPublish},
	{"SUBSCRIBE", 0x0201, FamilySubscribe},
	{"UNSUBSCRIBE", 0x0202, FamilySubscribe},
	{"PSUBSCRIBE", 0x0203, FamilySubscribe},
	{"PUNSUBSCRIBE", 0x0204, FamilySubscribe},

	// transaction: 0x0240-0x025F
	{"MULTI", 0x0240, FamilyPingLike},
	{"EXEC", 0x0241, FamilyPingLike},
	{"DISCARD", 0x0242, FamilyPingLike},
	{"WATCH", 0x0243, FamilyMultiKey},
	{"UNWATCH", 0x0244, FamilyPingLike},

	// generic-key: 0x02C0-0x02FF
	{"DEL", 0x02C0, FamilyMultiKey},
	{"EXISTS", 0x02C1, FamilyMultiKey},
	{"EXPIRE", 0x02C2, FamilyKeyInt},
	{"TTL", 0x02C3, FamilySingleKey},
	{"PERSIST", 0x02C4, FamilySingleKey},
	{"RENAME", 0x02C5, FamilyKeyMember},
	{"TYPE", 0x02C6, FamilySingleKey},
	{"PTTL", 0x02C7, FamilySingleKey},
	{"PEXPIRE", 0x02C8, FamilyKeyInt},
	{"RANDOMKEY", 0x02C9, FamilyPingLike},

	// connection: 0x0300-0x033F
	{"PING", 0x0300, FamilyPingLike},
	{"ECHO", 0x0301, FamilySingleKey},
	{"SELECT", 0x0302, FamilySelect},
	{"AUTH", 0x0303, FamilySingleKey},
	{"QUIT", 0x0304, FamilyPingLike},
	{"HELLO", 0x0305, FamilyPingLike},

	// server: 0x03C0-0x04FF
	{"DBSIZE", 0x03C0, FamilyPingLike},
	{"FLUSHDB", 0x03C1, FamilyPingLike},
	{"FLUSHALL", 0x03C2, FamilyPingLike},
	{"LASTSAVE", 0x03C3, FamilyPingLike},
	{"SAVE", 0x03C4, FamilyPingLike},
	{"BGSAVE", 0x03C5, FamilyPingLike},
	{"SHUTDOWN", 0x03C6, FamilyPingLike},
}

var coreIndex map[string]CoreEntry

// Namespace describes one module command namespace: its 16-bit module id
// and the command-name→command-id table for the commands it documents
// explicit schemas for. A command not present in Commands still belongs
// to the namespace; callers use GenericCommandID for its sub-opcode.
type Namespace struct {
	Name     string
	ID       uint16
	Commands map[string]uint16
}

var namespaces = map[string]Namespace{
	"JSON": {Name: "JSON", ID: 0x0000, Commands: map[string]uint16{
		"SET": 0,
		"GET": 1,
		"DEL": 2,
	}},
	"BF": {Name: "BF", ID: 0x0001, Commands: map[string]uint16{
		"ADD":    0,
		"EXISTS": 1,
		"MADD":   2,
	}},
	"FT": {Name: "FT", ID: 0x0002, Commands: map[string]uint16{
		"SEARCH": 0,
		"INFO":   1,
	}},
}

func init() {
	coreIndex = make(map[string]CoreEntry, len(coreTable))
	seenOpcode := make(map[uint16]string, len(coreTable))
	for _, e := range coreTable {
		if e.Opcode == OpcodeModule || e.Opcode == OpcodePassthrough {
			panic(fmt.Sprintf("schedule: verb %s collides with a reserved opcode", e.Verb))
		}
		if prev, ok := seenOpcode[e.Opcode]; ok {
			panic(fmt.Sprintf("schedule: opcode 0x%04X assigned to both %s and %s", e.Opcode, prev, e.Verb))
		}
		seenOpcode[e.Opcode] = e.Verb
		if _, ok := coreIndex[e.Verb]; ok {
			panic(fmt.Sprintf("schedule: duplicate verb %s", e.Verb))
		}
		coreIndex[e.Verb] = e
	}
}

// LookupCore returns the core table entry for verb, if any.
func LookupCore(verb string) (CoreEntry, bool) {
	e, ok := coreIndex[verb]
	return e, ok
}

// LookupNamespace returns the module namespace registered under ns, if any.
func LookupNamespace(ns string) (Namespace, bool) {
	n, ok := namespaces[ns]
	return n, ok
}

// SubOpcode packs a module id and command id the way the wire format
// requires: (module_id << 16) | command_id.
func SubOpcode(moduleID, commandID uint16) uint32 {
	return uint32(moduleID)<<16 | uint32(commandID)
}
