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

import "sort"

// engineState is the engine's only mutable data: the composing buffer and
// the set of active (latched) states (§3). Create one with newEngineState,
// which allocates the active set; a zero value has a nil set.
type engineState struct {
	composing string
	// active is a small dense set of state indices. Grounded on the
	// teacher's KeyboardState.pressed map (vt/layout.go) for "small set of
	// small integers with idempotent insertion".
	active map[int]struct{}
}

func newEngineState() *engineState {
	return &engineState{active: make(map[int]struct{})}
}

// clone makes a cheap, independent copy for process_key_test's preview
// path (§4.8, §9) — a string and a small integer set, not a deep object
// graph.
func (s *engineState) clone() *engineState {
	cp := &engineState{
		composing: s.composing,
		active:    make(map[int]struct{}, len(s.active)),
	}
	for k := range s.active {
		cp.active[k] = struct{}{}
	}
	return cp
}

func (s *engineState) reset() {
	s.composing = ""
	s.active = make(map[int]struct{})
}

func (s *engineState) setComposing(text string) {
	s.composing = text
	s.active = make(map[int]struct{})
}

func (s *engineState) activateState(idx int) {
	s.active[idx] = struct{}{}
}

// activeStates returns a snapshot slice of active state indices, sorted for
// deterministic display. Used by Engine.ActiveStates (§11.4 supplement).
func (s *engineState) activeStates() []int {
	out := make([]int, 0, len(s.active))
	for k := range s.active {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
