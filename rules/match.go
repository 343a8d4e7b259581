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

package rules

import (
	"strings"
	"unicode/utf8"
)

// KeyEvent is the matcher's own view of a key press, decoupled from the
// root package's KeyInput so this package never imports it (engine.go does
// the conversion). Mirrors original_source's InputKey/Modifiers pair.
type KeyEvent struct {
	VKCode                            uint16
	Shift, Ctrl, Alt, AltGr, CapsLock bool
	Char                              rune
	HasChar                           bool
}

// MatchContext is everything the matcher needs for one match attempt
// (§4.4). KeyEvent is nil for a recursive (no-key) attempt.
type MatchContext struct {
	ComposingText string
	KeyEvent      *KeyEvent
	ActiveStates  map[int]struct{}
	IsRecursive   bool
	// RightAltOption mirrors the keyboard's right_alt layout flag: when
	// set, a native AltGr press is treated as the Ctrl+Alt combination a
	// pattern would encode, since the wire format has no separate AltGr
	// opcode (§4.4).
	RightAltOption bool
}

// Capture is a value bound while matching an LHS, referenced from the RHS
// as $k (§3, §9). Index is only meaningful for AnyOf captures.
type Capture struct {
	Content  rune
	Index    int
	HasIndex bool
}

// MatchResult is what a successful match produces: the rule that fired,
// its resolved text length, the exact buffer it matched against (which
// may include a folded-in key character — §4.4 step 4), and the captures
// bound along the way.
type MatchResult struct {
	Rule          CompiledRule
	Length        int
	MatchedBuffer string
	Captures      map[int]Capture
}

// Match scans sorted in priority order and returns the first pattern
// satisfying every predicate against ctx (§4.4). ok is false if nothing
// matched.
func Match(sorted []CompiledRule, strTable []string, ctx MatchContext) (MatchResult, bool) {
	for _, cr := range sorted {
		captures, matchedBuffer, ok := tryMatch(cr.Pattern, strTable, ctx)
		if !ok {
			continue
		}
		return MatchResult{
			Rule:          cr,
			Length:        CalculateMatchLength(cr.Pattern, strTable),
			MatchedBuffer: matchedBuffer,
			Captures:      captures,
		}, true
	}
	return MatchResult{}, false
}

func tryMatch(p Pattern, strTable []string, ctx MatchContext) (map[int]Capture, string, bool) {
	if !statePredicate(p, ctx) {
		return nil, "", false
	}
	if !modifierPredicate(p, ctx) {
		return nil, "", false
	}
	if !vkPredicate(p, ctx) {
		return nil, "", false
	}
	return textPredicate(p, strTable, ctx)
}

// statePredicate implements §4.4 step 1.
func statePredicate(p Pattern, ctx MatchContext) bool {
	if p.StateCount == 0 {
		return true
	}
	if ctx.IsRecursive {
		return false
	}
	for _, el := range p.Elements {
		if el.Kind != State {
			continue
		}
		if _, ok := ctx.ActiveStates[el.StateIdx]; !ok {
			return false
		}
	}
	return true
}

// modifierPredicate implements §4.4 step 2.
func modifierPredicate(p Pattern, ctx MatchContext) bool {
	var required *ModSet
	for _, el := range p.Elements {
		if el.Kind == Mods {
			ms := el.ModSet
			required = &ms
			break
		}
	}

	hasVkOrMods := p.VKCount > 0 || required != nil
	if ctx.IsRecursive {
		return !hasVkOrMods
	}

	if ctx.KeyEvent == nil {
		// no key event and no VK/Mods requirement: predicate is vacuous.
		return !hasVkOrMods
	}

	ctrl, alt := ctx.KeyEvent.Ctrl, ctx.KeyEvent.Alt
	if ctx.RightAltOption && ctx.KeyEvent.AltGr {
		ctrl, alt = true, true
	}

	want := ModSet{}
	if required != nil {
		want = *required
	}
	return ctx.KeyEvent.Shift == want.Shift && ctrl == want.Ctrl && alt == want.Alt
}

// vkPredicate implements §4.4 step 3.
func vkPredicate(p Pattern, ctx MatchContext) bool {
	if p.VKCount == 0 {
		return true
	}
	if ctx.IsRecursive || ctx.KeyEvent == nil {
		return false
	}
	for _, el := range p.Elements {
		if el.Kind != Vk {
			continue
		}
		if el.VKCode != ctx.KeyEvent.VKCode {
			return false
		}
	}
	return true
}

// textPredicate implements §4.4 step 4: align the pattern's text-producing
// elements against the tail of the composing buffer. When the key event
// carries a character and the pattern ends in a text element, that
// character is appended to the buffer before aligning.
func textPredicate(p Pattern, strTable []string, ctx MatchContext) (map[int]Capture, string, bool) {
	buf := []rune(ctx.ComposingText)

	candidate := buf
	if ctx.KeyEvent != nil && ctx.KeyEvent.HasChar && p.endsInText() {
		extended := make([]rune, len(buf)+1)
		copy(extended, buf)
		extended[len(buf)] = ctx.KeyEvent.Char
		candidate = extended
	}

	length := CalculateMatchLength(p, strTable)
	if length > len(candidate) {
		return nil, "", false
	}
	start := len(candidate) - length

	captures := make(map[int]Capture)
	captureNum := 0
	pos := start

	for _, el := range p.Elements {
		switch el.Kind {
		case Literal:
			want := []rune(el.Literal)
			if pos+len(want) > len(candidate) {
				return nil, "", false
			}
			for i, r := range want {
				if candidate[pos+i] != r {
					return nil, "", false
				}
			}
			pos += len(want)

		case Var:
			switch el.VarKind {
			case Exact:
				if el.VarIdx < 0 || el.VarIdx >= len(strTable) {
					return nil, "", false
				}
				want := []rune(strTable[el.VarIdx])
				if pos+len(want) > len(candidate) {
					return nil, "", false
				}
				for i, r := range want {
					if candidate[pos+i] != r {
						return nil, "", false
					}
				}
				pos += len(want)
			case AnyOf:
				if pos >= len(candidate) {
					return nil, "", false
				}
				ch := candidate[pos]
				idx := indexIn(strTable, el.VarIdx, ch)
				if idx < 0 {
					return nil, "", false
				}
				captureNum++
				captures[captureNum] = Capture{Content: ch, Index: idx, HasIndex: true}
				pos++
			case NotAnyOf:
				if pos >= len(candidate) {
					return nil, "", false
				}
				ch := candidate[pos]
				if indexIn(strTable, el.VarIdx, ch) >= 0 {
					return nil, "", false
				}
				captureNum++
				captures[captureNum] = Capture{Content: ch}
				pos++
			}

		case Any:
			if pos >= len(candidate) {
				return nil, "", false
			}
			captureNum++
			captures[captureNum] = Capture{Content: candidate[pos]}
			pos++

		case Vk, Mods, State:
			// non-text; already checked by earlier predicates.
		}
	}

	if pos != len(candidate) {
		return nil, "", false
	}
	return captures, string(candidate), true
}

// indexIn returns the code-point position of ch within the variable's
// string, or -1 if absent. Variable[$k] (rules/apply.go) indexes by code
// point, not byte, so a byte offset would misplace any match after a
// multi-byte code point (e.g. a Myanmar-script variable).
func indexIn(strTable []string, varIdx int, ch rune) int {
	if varIdx < 0 || varIdx >= len(strTable) {
		return -1
	}
	s := strTable[varIdx]
	byteOff := strings.IndexRune(s, ch)
	if byteOff < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:byteOff])
}
