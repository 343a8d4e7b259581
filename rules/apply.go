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
	"strconv"

	"github.com/thantthet/keymagic-3-sub001/km2"
)

// ApplyErrorKind enumerates the faults Apply can fail with (§4.5, §7).
type ApplyErrorKind int

const (
	InvalidVariableIndex ApplyErrorKind = iota
	InvalidReferenceIndex
)

// ApplyError reports a failure evaluating a rule's RHS. Index is the
// offending variable or capture number.
type ApplyError struct {
	Kind  ApplyErrorKind
	Index int
}

func (e *ApplyError) Error() string {
	switch e.Kind {
	case InvalidVariableIndex:
		return "rules: invalid variable index " + strconv.Itoa(e.Index)
	case InvalidReferenceIndex:
		return "rules: invalid reference index " + strconv.Itoa(e.Index)
	default:
		return "rules: apply error"
	}
}

// Apply evaluates a matched rule's RHS left to right against strTable and
// captures, returning the produced text and the set of newly-activated
// state indices (§4.5). States already active are harmless to re-activate
// (idempotent), so callers can simply union the result into active_states.
func Apply(rhs []km2.Element, strTable []string, captures map[int]Capture) (string, []int, error) {
	var out []rune
	var activated []int

	for i := 0; i < len(rhs); i++ {
		e := rhs[i]
		switch e.Kind {
		case km2.ElemString:
			out = append(out, []rune(e.Text)...)

		case km2.ElemVariable:
			varIdx := e.Index - 1
			if i+1 < len(rhs) && rhs[i+1].Kind == km2.ElemModifier {
				idx, ok, err := resolveVariableIndex(rhs[i+1].ModifierValue, captures)
				if err != nil {
					return "", nil, err
				}
				i++
				if !ok {
					continue
				}
				if varIdx < 0 || varIdx >= len(strTable) {
					return "", nil, &ApplyError{Kind: InvalidVariableIndex, Index: varIdx}
				}
				chars := []rune(strTable[varIdx])
				if idx < 0 || idx >= len(chars) {
					continue // out-of-range index: skip, per §4.5
				}
				out = append(out, chars[idx])
				continue
			}
			if varIdx < 0 || varIdx >= len(strTable) {
				return "", nil, &ApplyError{Kind: InvalidVariableIndex, Index: varIdx}
			}
			out = append(out, []rune(strTable[varIdx])...)

		case km2.ElemReference:
			c, ok := captures[e.Index]
			if !ok {
				return "", nil, &ApplyError{Kind: InvalidReferenceIndex, Index: e.Index}
			}
			out = append(out, c.Content)

		case km2.ElemSwitch:
			activated = append(activated, e.Index)

		default:
			// Any, And, unresolved Modifier, bare Predefined: ignored (§4.5).
		}
	}

	return string(out), activated, nil
}

// resolveVariableIndex interprets the Modifier(k) payload that follows a
// Variable in an RHS as Variable[$k] (§4.5): k names a capture; its stored
// AnyOf index wins if present, otherwise its content is parsed as a
// non-negative integer, otherwise the pair is skipped (not an error).
func resolveVariableIndex(capNum uint16, captures map[int]Capture) (int, bool, error) {
	c, ok := captures[int(capNum)]
	if !ok {
		return 0, false, nil
	}
	if c.HasIndex {
		return c.Index, true, nil
	}
	n, err := strconv.Atoi(string(c.Content))
	if err != nil || n < 0 {
		return 0, false, nil
	}
	return n, true, nil
}
