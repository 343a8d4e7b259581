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

// Package rules implements the keyboard rewrite-rule pipeline: turning a
// decoded km2.Rule's left-hand side into a matchable Pattern, ranking
// patterns by specificity, matching them against a composing buffer plus
// an incoming key event, applying the winning rule's right-hand side, and
// driving the bounded re-match loop that follows.
package rules

import (
	"unicode/utf8"

	"github.com/thantthet/keymagic-3-sub001/km2"
)

// VarKind distinguishes the three ways a Pattern can reference a variable.
type VarKind int

const (
	// Exact requires the full variable string at this position.
	Exact VarKind = iota
	// AnyOf requires a single code point found in the variable string.
	AnyOf
	// NotAnyOf requires a single code point absent from the variable string.
	NotAnyOf
)

// ElementKind identifies the tagged variant a PatternElement holds.
type ElementKind int

const (
	Literal ElementKind = iota
	Var
	Vk
	Mods
	State
	Any
)

// ModSet is the {shift, ctrl, alt} triple a Mods pattern element requires.
type ModSet struct {
	Shift, Ctrl, Alt bool
}

// PatternElement is one flattened matching step, produced from a rule's
// BinaryFormatElement stream by Preprocess (§4.2).
type PatternElement struct {
	Kind ElementKind

	Literal string  // Literal
	VarIdx  int     // Var: 0-based strings-table index
	VarKind VarKind // Var

	VKCode uint16 // Vk

	ModSet ModSet // Mods

	StateIdx int // State
}

// Pattern is the C2 output for one rule's LHS: a flat element sequence
// plus the metrics the priority sorter and matcher both need.
type Pattern struct {
	Elements []PatternElement

	CharLength int // sum of fixed-width text contributions
	VKCount    int
	StateCount int
}

// endsInText reports whether the pattern's last element consumes text,
// the condition under which a key event's character is folded into the
// buffer tail before matching (§4.4 step 4).
func (p Pattern) endsInText() bool {
	if len(p.Elements) == 0 {
		return false
	}
	switch p.Elements[len(p.Elements)-1].Kind {
	case Literal, Var, Any:
		return true
	default:
		return false
	}
}

// Preprocess converts a decoded LHS into a Pattern (§4.2). km2 element
// indices are 1-based; Pattern.Var indices are normalized to 0-based here
// so the rest of the package never has to re-derive the offset.
func Preprocess(lhs []km2.Element) Pattern {
	var p Pattern

	for i := 0; i < len(lhs); i++ {
		e := lhs[i]
		switch e.Kind {
		case km2.ElemString:
			p.Elements = append(p.Elements, PatternElement{Kind: Literal, Literal: e.Text})
			p.CharLength += utf8.RuneCountInString(e.Text)

		case km2.ElemVariable:
			kind := Exact
			consumed := false
			if i+1 < len(lhs) && lhs[i+1].Kind == km2.ElemModifier {
				switch lhs[i+1].ModifierValue {
				case km2.FlagAnyOf:
					kind = AnyOf
					consumed = true
				case km2.FlagNotAnyOf:
					kind = NotAnyOf
					consumed = true
				}
			}
			p.Elements = append(p.Elements, PatternElement{Kind: Var, VarIdx: e.Index - 1, VarKind: kind})
			if kind != Exact {
				p.CharLength++
				i++ // consume the modifier token
			}
			_ = consumed

		case km2.ElemAny:
			p.Elements = append(p.Elements, PatternElement{Kind: Any})
			p.CharLength++

		case km2.ElemSwitch:
			p.Elements = append(p.Elements, PatternElement{Kind: State, StateIdx: e.Index})
			p.StateCount++

		case km2.ElemPredefined:
			p.Elements = append(p.Elements, PatternElement{Kind: Vk, VKCode: e.VKCode})
			p.VKCount++

		case km2.ElemModifier:
			v := e.ModifierValue
			p.Elements = append(p.Elements, PatternElement{Kind: Mods, ModSet: ModSet{
				Shift: v&1 != 0,
				Ctrl:  v&2 != 0,
				Alt:   v&4 != 0,
			}})

		case km2.ElemAnd, km2.ElemReference:
			// grouping token / not meaningful on an LHS (§4.2).

		default:
			// unrecognized elements are discarded, same as And/Reference.
		}
	}

	return p
}

// CalculateMatchLength resolves a pattern's exact code-point match length
// against the strings table: the sum of literal lengths, the code-point
// length of each Exact variable reference, and 1 per AnyOf/NotAnyOf/Any
// element. Exported standalone per the original implementation's
// calculate_match_length, which callers may need independently of a full
// match attempt (e.g. to size a buffer before replay).
func CalculateMatchLength(p Pattern, strings []string) int {
	total := 0
	for _, el := range p.Elements {
		switch el.Kind {
		case Literal:
			total += utf8.RuneCountInString(el.Literal)
		case Var:
			if el.VarKind == Exact {
				if el.VarIdx >= 0 && el.VarIdx < len(strings) {
					total += utf8.RuneCountInString(strings[el.VarIdx])
				}
			} else {
				total++
			}
		case Any:
			total++
		}
	}
	return total
}
