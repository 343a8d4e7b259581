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
	"sort"

	"github.com/thantthet/keymagic-3-sub001/km2"
)

// CompiledRule pairs a decoded rule with its preprocessed pattern, plus
// its original file position for tie-breaking (§4.3).
type CompiledRule struct {
	Rule    km2.Rule
	Pattern Pattern
	Index   int // position in the keyboard's rule table
}

// Compile runs C2 over every rule and returns them in file order,
// unsorted; call Sort to produce the matching order.
func Compile(rulesList []km2.Rule) []CompiledRule {
	out := make([]CompiledRule, len(rulesList))
	for i, r := range rulesList {
		out[i] = CompiledRule{Rule: r, Pattern: Preprocess(r.LHS), Index: i}
	}
	return out
}

// Sort orders compiled rules by descending (state_count, vk_count,
// char_length), breaking ties by file order (§4.3). The sort is stable so
// equal-priority rules never change relative order across calls.
func Sort(compiled []CompiledRule) {
	sort.SliceStable(compiled, func(i, j int) bool {
		a, b := compiled[i].Pattern, compiled[j].Pattern
		if a.StateCount != b.StateCount {
			return a.StateCount > b.StateCount
		}
		if a.VKCount != b.VKCount {
			return a.VKCount > b.VKCount
		}
		if a.CharLength != b.CharLength {
			return a.CharLength > b.CharLength
		}
		return compiled[i].Index < compiled[j].Index
	})
}
