// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respcodec

import "strings"

// Command is the abstract in-memory representation of one TP frame: a
// verb plus its ordered argument byte strings. It is immutable once
// built — callers must not mutate the byte slices in Args or hold onto
// a Command beyond the conversion step that produced it (the backing
// arrays are not guaranteed to be copies of caller-owned memory).
type Command struct {
	Verb string
	Args [][]byte
}

// NewCommand builds a Command Record, canonicalizing verb to uppercase.
// Canonicalization is the only mutation of TP content the codec ever
// performs (spec.md §3 invariants).
func NewCommand(verb string, args [][]byte) Command {
	return Command{Verb: strings.ToUpper(verb), Args: args}
}

// IsModuleVerb reports whether verb has the NS.VERB shape: exactly one
// dot, with a non-empty alphanumeric token on each side.
func IsModuleVerb(verb string) bool {
	_, _, ok := splitModuleVerb(verb)
	return ok
}

func splitModuleVerb(verb string) (ns, cmd string, ok bool) {
	i := strings.IndexByte(verb, '.')
	if i < 0 || i == 0 || i == len(verb)-1 {
		return "", "", false
	}
	if strings.IndexByte(verb[i+1:], '.') >= 0 {
		return "", "", false
	}
	ns, cmd = verb[:i], verb[i+1:]
	if !isAlnum(ns) || !isAlnum(cmd) {
		return "", "", false
	}
	return ns, cmd, true
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		default:
			return false
		}
	}
	return true
}
