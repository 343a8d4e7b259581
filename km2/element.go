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

package km2

// Opcode is a token in a rule's LHS/RHS opcode stream (§4.1). There is no
// inheritance or runtime polymorphism here: a closed set of opcodes decoded
// into a closed set of Element kinds, exhaustively handled wherever they're
// consumed.
type Opcode uint16

const (
	OpString     Opcode = 0x00F0
	OpVariable   Opcode = 0x00F1
	OpReference  Opcode = 0x00F2
	OpPredefined Opcode = 0x00F3
	OpModifier   Opcode = 0x00F4
	OpAnd        Opcode = 0x00F6
	OpAny        Opcode = 0x00F8
	OpSwitch     Opcode = 0x00F9
)

// Modifier payload flags. These never appear as opcodes in the stream by
// themselves; they only show up as the u16 payload that follows an
// OpModifier token, immediately after a Variable, to select AnyOf/NotAnyOf
// matching (§3).
const (
	FlagAnyOf    uint16 = 0x00F5
	FlagNotAnyOf uint16 = 0x00F7
)

// ElementKind identifies the tagged variant an Element holds.
type ElementKind int

const (
	ElemString ElementKind = iota
	ElemVariable
	ElemReference
	ElemPredefined
	ElemModifier
	ElemAnd
	ElemAny
	ElemSwitch
)

// Element is a BinaryFormatElement (§3): a tagged variant decoded directly
// from the opcode stream. Only the fields relevant to Kind are populated.
type Element struct {
	Kind ElementKind

	Text string // ElemString

	// Index is: 1-based string-table index for ElemVariable, 1-based
	// back-reference number for ElemReference, 0-based state index for
	// ElemSwitch.
	Index int

	// VKCode is the virtual-key code for ElemPredefined.
	VKCode uint16

	// ModifierValue is the raw u16 payload for ElemModifier: either
	// FlagAnyOf/FlagNotAnyOf (when it immediately follows a Variable in
	// an LHS, or denotes Variable[$k] in an RHS), or a bitmask/index used
	// with And/virtual-key encoding otherwise (§3).
	ModifierValue uint16
}
