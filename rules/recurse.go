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

// MaxRecursionDepth bounds the re-match loop after an initial rule fires
// (§4.6). Implemented as an explicit counter, not host call-stack
// recursion, so a pathological keyboard cannot blow the stack.
const MaxRecursionDepth = 10

// Recur repeatedly re-matches rules against buf with no key input, each
// time replacing the matched suffix, until the stop predicate fires or
// MaxRecursionDepth is reached (§4.6). It returns the final buffer text
// and the set of state indices newly activated along the way.
func Recur(sorted []CompiledRule, strTable []string, buf string, active map[int]struct{}) (string, []int, error) {
	var allActivated []int

	for depth := 0; depth < MaxRecursionDepth; depth++ {
		ctx := MatchContext{
			ComposingText: buf,
			KeyEvent:      nil,
			ActiveStates:  active,
			IsRecursive:   true,
		}
		result, ok := Match(sorted, strTable, ctx)
		if !ok {
			break
		}

		output, activated, err := Apply(result.Rule.Rule.RHS, strTable, result.Captures)
		if err != nil {
			return buf, allActivated, err
		}
		for _, s := range activated {
			active[s] = struct{}{}
		}
		allActivated = append(allActivated, activated...)

		runes := []rune(result.MatchedBuffer)
		prefix := runes[:len(runes)-result.Length]
		buf = string(prefix) + output

		if stopPredicate(output) {
			break
		}
	}

	return buf, allActivated, nil
}

// stopPredicate implements §4.6 step e: recursion halts on an empty
// output, or on a single code point in the printable ASCII range
// U+0021..U+007E. Space (U+0020) is deliberately excluded so a
// space-triggered cascade can continue.
func stopPredicate(output string) bool {
	runes := []rune(output)
	if len(runes) == 0 {
		return true
	}
	if len(runes) == 1 && runes[0] >= 0x21 && runes[0] <= 0x7E {
		return true
	}
	return false
}
