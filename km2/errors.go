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

import "fmt"

// ErrorKind enumerates the load-time faults a KM2 file can fail with (§7).
// Every one of them fails the entire load; there is no partial keyboard.
type ErrorKind int

const (
	FileTooSmall ErrorKind = iota
	InvalidMagicCode
	UnsupportedVersion
	InvalidUTF16
	InvalidOpcode
	TruncatedFile
	InvalidRule
)

func (k ErrorKind) String() string {
	switch k {
	case FileTooSmall:
		return "file too small"
	case InvalidMagicCode:
		return "invalid magic code"
	case UnsupportedVersion:
		return "unsupported version"
	case InvalidUTF16:
		return "invalid UTF-16 string"
	case InvalidOpcode:
		return "invalid opcode"
	case TruncatedFile:
		return "truncated file"
	case InvalidRule:
		return "invalid rule"
	default:
		return "unknown load error"
	}
}

// LoadError is returned by Decode when a KM2 file fails to parse or
// validate. It carries enough detail to let a caller render a useful
// diagnostic (§7), and supports errors.Is/errors.As via Kind.
type LoadError struct {
	Kind ErrorKind

	// Offset is the byte offset associated with the fault, when
	// applicable (InvalidUTF16).
	Offset int
	// Code is the raw opcode value, when applicable (InvalidOpcode).
	Code uint16
	// Index is the rule index, when applicable (InvalidRule).
	Index int
	// Major/Minor are the rejected version numbers, when applicable
	// (UnsupportedVersion).
	Major, Minor uint8
	// Expected/Actual are byte counts, when applicable (TruncatedFile).
	Expected, Actual int
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case InvalidUTF16:
		return fmt.Sprintf("km2: invalid UTF-16 string at offset %d", e.Offset)
	case InvalidOpcode:
		return fmt.Sprintf("km2: invalid opcode 0x%04X", e.Code)
	case InvalidRule:
		return fmt.Sprintf("km2: invalid rule structure at index %d", e.Index)
	case UnsupportedVersion:
		return fmt.Sprintf("km2: unsupported version %d.%d", e.Major, e.Minor)
	case TruncatedFile:
		return fmt.Sprintf("km2: truncated file: expected %d bytes, got %d", e.Expected, e.Actual)
	default:
		return fmt.Sprintf("km2: %s", e.Kind)
	}
}

// Is supports errors.Is comparisons against another *LoadError: it reports
// true when the target has the same Kind. ErrorKind itself is not an error
// value, so a bare ErrorKind cannot be used as an errors.Is target.
func (e *LoadError) Is(target error) bool {
	if other, ok := target.(*LoadError); ok {
		return e.Kind == other.Kind
	}
	return false
}
