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

	"golang.org/x/text/encoding/unicode"
)

// reader walks a KM2 byte slice left to right, tracking the absolute offset
// so errors can report exactly where they occurred.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) remaining() int { return len(r.data) - r.pos }

func (r *reader) readU8() (uint8, bool) {
	if r.remaining() < 1 {
		return 0, false
	}
	v := r.data[r.pos]
	r.pos++
	return v, true
}

func (r *reader) readU16() (uint16, bool) {
	if r.remaining() < 2 {
		return 0, false
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, true
}

func (r *reader) readBytes(n int) ([]byte, bool) {
	if r.remaining() < n {
		return nil, false
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, true
}

// Decode parses raw KM2 bytes into a validated Keyboard (§4.1).
func Decode(data []byte) (*Keyboard, error) {
	r := &reader{data: data}

	if len(data) < headerSize {
		return nil, &LoadError{Kind: FileTooSmall}
	}

	magic, _ := r.readBytes(4)
	if string(magic) != Magic {
		return nil, &LoadError{Kind: InvalidMagicCode}
	}

	major, _ := r.readU8()
	minor, _ := r.readU8()
	if major != 1 || minor > 5 {
		return nil, &LoadError{Kind: UnsupportedVersion, Major: major, Minor: minor}
	}

	stringCount, _ := r.readU16()
	infoCount, _ := r.readU16()
	ruleCount, _ := r.readU16()

	trackCaps, _ := r.readU8()
	autoBksp, _ := r.readU8()
	eat, _ := r.readU8()
	posBased, _ := r.readU8()
	rightAlt, _ := r.readU8()
	_, _ = r.readU8() // pad

	header := Header{
		MajorVersion: major,
		MinorVersion: minor,
		StringCount:  stringCount,
		InfoCount:    infoCount,
		RuleCount:    ruleCount,
		Options: LayoutOptions{
			TrackCaps: trackCaps != 0,
			AutoBksp:  autoBksp != 0,
			Eat:       eat != 0,
			PosBased:  posBased != 0,
			RightAlt:  rightAlt != 0,
		},
	}

	strs := make([]string, 0, stringCount)
	for i := 0; i < int(stringCount); i++ {
		s, err := decodeString(r)
		if err != nil {
			return nil, err
		}
		strs = append(strs, s)
	}

	info := make([]InfoEntry, 0, infoCount)
	for i := 0; i < int(infoCount); i++ {
		idBytes, ok := r.readBytes(4)
		if !ok {
			return nil, truncated(r, 4)
		}
		var tag [4]byte
		copy(tag[:], idBytes)
		n, ok := r.readU16()
		if !ok {
			return nil, truncated(r, 2)
		}
		payload, ok := r.readBytes(int(n))
		if !ok {
			return nil, truncated(r, int(n))
		}
		dup := make([]byte, len(payload))
		copy(dup, payload)
		info = append(info, InfoEntry{Tag: tag, Data: dup})
	}

	rules := make([]Rule, 0, ruleCount)
	for i := 0; i < int(ruleCount); i++ {
		lhs, err := decodeBlock(r)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeBlock(r)
		if err != nil {
			return nil, err
		}
		if err := validateLHS(lhs); err != nil {
			return nil, &LoadError{Kind: InvalidRule, Index: i}
		}
		rules = append(rules, Rule{LHS: lhs, RHS: rhs})
	}

	return &Keyboard{Header: header, Strings: strs, Info: info, Rules: rules}, nil
}

func truncated(r *reader, need int) error {
	return &LoadError{Kind: TruncatedFile, Expected: need, Actual: r.remaining()}
}

// decodeString reads one strings-table entry: a u16 length followed by that
// many little-endian UTF-16 code units (§4.1 step 5).
func decodeString(r *reader) (string, error) {
	offset := r.pos
	n, ok := r.readU16()
	if !ok {
		return "", truncated(r, 2)
	}
	if r.remaining() < int(n)*2 {
		return "", truncated(r, int(n)*2)
	}
	units := make([]uint16, n)
	for i := range units {
		units[i], _ = r.readU16()
	}
	return decodeUTF16LE(units, offset)
}

// decodeUTF16LE validates surrogate pairing by hand (so a bad pair fails
// with InvalidUTF16 at offset, the start of the string's record, instead of
// being silently replaced) and then transcodes through golang.org/x/text's
// UTF-16 decoder to build the final Go string.
func decodeUTF16LE(units []uint16, offset int) (string, error) {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u <= 0xDBFF: // high surrogate
			if i+1 >= len(units) {
				return "", &LoadError{Kind: InvalidUTF16, Offset: offset}
			}
			lo := units[i+1]
			if lo < 0xDC00 || lo > 0xDFFF {
				return "", &LoadError{Kind: InvalidUTF16, Offset: offset}
			}
			i++
		case u >= 0xDC00 && u <= 0xDFFF: // unpaired low surrogate
			return "", &LoadError{Kind: InvalidUTF16, Offset: offset}
		}
	}

	buf := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], u)
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(buf)
	if err != nil {
		return "", &LoadError{Kind: InvalidUTF16, Offset: offset}
	}
	return string(out), nil
}

// decodeBlock reads one {byte_length, tokens...} opcode block (§4.1 step
// 7) and returns its decoded elements.
func decodeBlock(r *reader) ([]Element, error) {
	length, ok := r.readU16()
	if !ok {
		return nil, truncated(r, 2)
	}
	if r.remaining() < int(length) {
		return nil, truncated(r, int(length))
	}
	end := r.pos + int(length)
	var elems []Element
	for r.pos < end {
		opVal, ok := r.readU16()
		if !ok {
			return nil, truncated(r, 2)
		}
		elem, err := decodeOpcode(r, Opcode(opVal))
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

func decodeOpcode(r *reader, op Opcode) (Element, error) {
	switch op {
	case OpString:
		offset := r.pos - 2
		n, ok := r.readU16()
		if !ok {
			return Element{}, truncated(r, 2)
		}
		if r.remaining() < int(n)*2 {
			return Element{}, truncated(r, int(n)*2)
		}
		units := make([]uint16, n)
		for i := range units {
			units[i], _ = r.readU16()
		}
		s, err := decodeUTF16LE(units, offset)
		if err != nil {
			return Element{}, err
		}
		return Element{Kind: ElemString, Text: s}, nil
	case OpVariable:
		idx, ok := r.readU16()
		if !ok {
			return Element{}, truncated(r, 2)
		}
		return Element{Kind: ElemVariable, Index: int(idx)}, nil
	case OpReference:
		idx, ok := r.readU16()
		if !ok {
			return Element{}, truncated(r, 2)
		}
		return Element{Kind: ElemReference, Index: int(idx)}, nil
	case OpPredefined:
		vk, ok := r.readU16()
		if !ok {
			return Element{}, truncated(r, 2)
		}
		return Element{Kind: ElemPredefined, VKCode: vk}, nil
	case OpModifier:
		v, ok := r.readU16()
		if !ok {
			return Element{}, truncated(r, 2)
		}
		return Element{Kind: ElemModifier, ModifierValue: v}, nil
	case OpAnd:
		return Element{Kind: ElemAnd}, nil
	case OpAny:
		return Element{Kind: ElemAny}, nil
	case OpSwitch:
		idx, ok := r.readU16()
		if !ok {
			return Element{}, truncated(r, 2)
		}
		return Element{Kind: ElemSwitch, Index: int(idx)}, nil
	default:
		return Element{}, &LoadError{Kind: InvalidOpcode, Code: uint16(op)}
	}
}
