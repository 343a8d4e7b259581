// Copyright 2026 The KeyMagic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package keymagic

import "fmt"

// RuntimeErrorKind enumerates the faults process_key/process_key_test can
// report. Runtime errors are confined to the key that triggered them; the
// engine's composing buffer and active states are left unchanged (§7).
type RuntimeErrorKind int

const (
	// InvalidVariableIndex means a rule's RHS referenced a variable index
	// outside the keyboard's strings table.
	InvalidVariableIndex RuntimeErrorKind = iota
	// InvalidReferenceIndex means a rule's RHS referenced a backreference
	// ($n) that was never bound during matching.
	InvalidReferenceIndex
	// InvalidStateIndex is part of the closed runtime-error set but is
	// never constructed: the wire format declares no state count to bound
	// a Switch index against, so every state index is valid by
	// construction. Kept for API completeness with the error taxonomy.
	InvalidStateIndex
)

func (k RuntimeErrorKind) String() string {
	switch k {
	case InvalidVariableIndex:
		return "invalid variable index"
	case InvalidReferenceIndex:
		return "invalid reference index"
	case InvalidStateIndex:
		return "invalid state index"
	default:
		return "unknown runtime error"
	}
}

// RuntimeError is returned from process_key/process_key_test when applying
// a matched rule's right-hand side fails. The caller decides whether to
// treat it as fatal to the session or merely to the key (§7).
type RuntimeError struct {
	Kind  RuntimeErrorKind
	Index int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %d", e.Kind, e.Index)
}
