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

import (
	"encoding/binary"
	"errors"
	"testing"
)

// fixtureBuilder assembles a minimal well-formed KM2 byte stream for tests.
type fixtureBuilder struct {
	buf []byte
}

func newFixture(stringCount, infoCount, ruleCount uint16, opts LayoutOptions) *fixtureBuilder {
	b := &fixtureBuilder{}
	b.buf = append(b.buf, Magic...)
	b.buf = append(b.buf, 1, 5) // version 1.5
	b.u16(stringCount)
	b.u16(infoCount)
	b.u16(ruleCount)
	b.bool(opts.TrackCaps)
	b.bool(opts.AutoBksp)
	b.bool(opts.Eat)
	b.bool(opts.PosBased)
	b.bool(opts.RightAlt)
	b.buf = append(b.buf, 0) // pad
	return b
}

func (b *fixtureBuilder) u16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

func (b *fixtureBuilder) bool(v bool) {
	if v {
		b.buf = append(b.buf, 1)
	} else {
		b.buf = append(b.buf, 0)
	}
}

func (b *fixtureBuilder) utf16String(s string) {
	units := utf16Encode(s)
	b.u16(uint16(len(units)))
	for _, u := range units {
		b.u16(u)
	}
}

func (b *fixtureBuilder) infoEntry(tag [4]byte, data []byte) {
	b.buf = append(b.buf, tag[:]...)
	b.u16(uint16(len(data)))
	b.buf = append(b.buf, data...)
}

// opcodeBlock appends a length-prefixed opcode block built by fn.
func (b *fixtureBuilder) opcodeBlock(fn func(*fixtureBuilder)) {
	inner := &fixtureBuilder{}
	fn(inner)
	b.u16(uint16(len(inner.buf)))
	b.buf = append(b.buf, inner.buf...)
}

func (b *fixtureBuilder) opString(s string) {
	b.u16(uint16(OpString))
	b.utf16String(s)
}

func (b *fixtureBuilder) opPredefined(vk uint16) {
	b.u16(uint16(OpPredefined))
	b.u16(vk)
}

func (b *fixtureBuilder) opAnd() {
	b.u16(uint16(OpAnd))
}

func (b *fixtureBuilder) opVariable(idx uint16) {
	b.u16(uint16(OpVariable))
	b.u16(idx)
}

// utf16Encode is a tiny surrogate-aware encoder used only to build test
// fixtures; it is the mirror of the decoder under test.
func utf16Encode(s string) []uint16 {
	var out []uint16
	for _, r := range s {
		if r <= 0xFFFF {
			out = append(out, uint16(r))
			continue
		}
		r -= 0x10000
		hi := uint16(0xD800 + (r >> 10))
		lo := uint16(0xDC00 + (r & 0x3FF))
		out = append(out, hi, lo)
	}
	return out
}

func TestDecode_MinimalKeyboard(t *testing.T) {
	b := newFixture(1, 1, 1, LayoutOptions{TrackCaps: true, RightAlt: true})
	b.utf16String("hello")
	b.infoEntry(TagName, []byte("Test Keyboard"))
	b.opcodeBlock(func(lhs *fixtureBuilder) {
		lhs.opAnd()
		lhs.opPredefined(0x41)
	})
	b.opcodeBlock(func(rhs *fixtureBuilder) {
		rhs.opString("A")
	})

	kb, err := Decode(b.buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if kb.Header.MajorVersion != 1 || kb.Header.MinorVersion != 5 {
		t.Fatalf("unexpected version: %d.%d", kb.Header.MajorVersion, kb.Header.MinorVersion)
	}
	if !kb.Header.Options.TrackCaps || !kb.Header.Options.RightAlt {
		t.Fatalf("layout options not decoded: %+v", kb.Header.Options)
	}
	if got, ok := kb.String(0); !ok || got != "hello" {
		t.Fatalf("String(0) = %q, %v", got, ok)
	}
	name, ok := kb.Metadata().Name()
	if !ok || name != "Test Keyboard" {
		t.Fatalf("Metadata().Name() = %q, %v", name, ok)
	}
	if len(kb.Rules) != 1 {
		t.Fatalf("len(Rules) = %d, want 1", len(kb.Rules))
	}
	rule := kb.Rules[0]
	if len(rule.LHS) != 2 || rule.LHS[0].Kind != ElemAnd || rule.LHS[1].Kind != ElemPredefined {
		t.Fatalf("unexpected LHS: %+v", rule.LHS)
	}
	if len(rule.RHS) != 1 || rule.RHS[0].Text != "A" {
		t.Fatalf("unexpected RHS: %+v", rule.RHS)
	}
}

func TestDecode_FileTooSmall(t *testing.T) {
	_, err := Decode([]byte{'K', 'M'})
	assertKind(t, err, FileTooSmall)
}

func TestDecode_InvalidMagicCode(t *testing.T) {
	b := newFixture(0, 0, 0, LayoutOptions{})
	b.buf[0] = 'X'
	_, err := Decode(b.buf)
	assertKind(t, err, InvalidMagicCode)
}

func TestDecode_UnsupportedVersion(t *testing.T) {
	b := newFixture(0, 0, 0, LayoutOptions{})
	b.buf[4] = 2 // major version 2
	_, err := Decode(b.buf)
	assertKind(t, err, UnsupportedVersion)
}

func TestDecode_TruncatedFile(t *testing.T) {
	b := newFixture(1, 0, 0, LayoutOptions{})
	b.u16(5) // claim a 5-unit string but supply none
	_, err := Decode(b.buf)
	assertKind(t, err, TruncatedFile)
}

func TestDecode_InvalidUTF16UnpairedSurrogate(t *testing.T) {
	b := newFixture(1, 0, 0, LayoutOptions{})
	b.u16(1)
	b.u16(0xD800) // high surrogate with no partner
	_, err := Decode(b.buf)
	assertKind(t, err, InvalidUTF16)
}

func TestDecode_InvalidOpcode(t *testing.T) {
	b := newFixture(0, 0, 1, LayoutOptions{})
	b.opcodeBlock(func(lhs *fixtureBuilder) {
		lhs.u16(0xBEEF)
	})
	b.opcodeBlock(func(rhs *fixtureBuilder) {})
	_, err := Decode(b.buf)
	assertKind(t, err, InvalidOpcode)
}

func TestDecode_ModifierFlagNotAStandaloneOpcode(t *testing.T) {
	b := newFixture(0, 0, 1, LayoutOptions{})
	b.opcodeBlock(func(lhs *fixtureBuilder) {
		lhs.u16(uint16(FlagAnyOf))
	})
	b.opcodeBlock(func(rhs *fixtureBuilder) {})
	_, err := Decode(b.buf)
	assertKind(t, err, InvalidOpcode)
}

func TestDecode_BarePredefinedRejected(t *testing.T) {
	b := newFixture(0, 0, 1, LayoutOptions{})
	b.opcodeBlock(func(lhs *fixtureBuilder) {
		lhs.opPredefined(0x41) // no preceding And
	})
	b.opcodeBlock(func(rhs *fixtureBuilder) {})
	_, err := Decode(b.buf)
	assertKind(t, err, InvalidRule)
}

func TestDecode_ChainedAndPredefinedAccepted(t *testing.T) {
	b := newFixture(0, 0, 1, LayoutOptions{})
	b.opcodeBlock(func(lhs *fixtureBuilder) {
		lhs.opAnd()
		lhs.opPredefined(0x41)
		lhs.opAnd()
		lhs.opPredefined(0x42)
	})
	b.opcodeBlock(func(rhs *fixtureBuilder) {})
	kb, err := Decode(b.buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(kb.Rules[0].LHS) != 4 {
		t.Fatalf("len(LHS) = %d, want 4", len(kb.Rules[0].LHS))
	}
}

func assertKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("want error kind %v, got nil", want)
	}
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("error %v is not a *LoadError", err)
	}
	if le.Kind != want {
		t.Fatalf("error kind = %v, want %v", le.Kind, want)
	}
}
