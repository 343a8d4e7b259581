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

import (
	"github.com/thantthet/keymagic-3-sub001/km2"
	"github.com/thantthet/keymagic-3-sub001/rules"
)

// Engine is the façade (C8): it holds an immutable loaded Keyboard plus
// the one piece of mutable state, and exposes the key-processing
// operations an IME shell drives. Not safe for concurrent use.
type Engine struct {
	keyboard *km2.Keyboard
	sorted   []rules.CompiledRule
	state    *engineState
}

// Load decodes kb2Bytes and builds a ready-to-use Engine: it runs C2 once
// per rule to build patterns, then C3 to establish matching order, and
// stores the sorted table alongside the keyboard (§4.8 new).
func Load(kb2Bytes []byte) (*Engine, error) {
	kb, err := km2.Decode(kb2Bytes)
	if err != nil {
		return nil, err
	}
	return New(kb), nil
}

// New builds an Engine from an already-decoded Keyboard.
func New(kb *km2.Keyboard) *Engine {
	compiled := rules.Compile(kb.Rules)
	rules.Sort(compiled)
	return &Engine{
		keyboard: kb,
		sorted:   compiled,
		state:    newEngineState(),
	}
}

// Keyboard returns the engine's loaded keyboard.
func (e *Engine) Keyboard() *km2.Keyboard { return e.keyboard }

// Reset clears the composing buffer and active states.
func (e *Engine) Reset() { e.state.reset() }

// ComposingText returns the current composing buffer.
func (e *Engine) ComposingText() string { return e.state.composing }

// SetComposingText forcibly replaces the composing buffer and clears
// active states, for hosts that need to resynchronize after external
// context changes (§4.8).
func (e *Engine) SetComposingText(s string) { e.state.setComposing(s) }

// ActiveStates returns a sorted snapshot of the active (latched) state
// indices (§11.4 supplement).
func (e *Engine) ActiveStates() []int { return e.state.activeStates() }

// ProcessKey is the authoritative path (§4.8): it mutates the engine's
// composing buffer and active states and returns the resulting edit. The
// work happens against a scratch clone of the current state, which is
// committed to the engine only on success — a runtime error raised partway
// through rule application or recursion (§4.6) must leave the engine's
// state exactly as it was (§7, §8 property 2).
func (e *Engine) ProcessKey(input KeyInput) (EngineOutput, error) {
	scratch := e.state.clone()
	out, err := e.processKey(scratch, input)
	if err != nil {
		return EngineOutput{}, err
	}
	e.state = scratch
	return out, nil
}

// ProcessKeyTest performs the same computation as ProcessKey against a
// clone of the current state, returning the action without mutating the
// engine — the preview path IME hosts need (§4.8, §9).
func (e *Engine) ProcessKeyTest(input KeyInput) (EngineOutput, error) {
	preview := e.state.clone()
	return e.processKey(preview, input)
}

func (e *Engine) processKey(s *engineState, input KeyInput) (EngineOutput, error) {
	before := s.composing
	processed := false

	ev := toKeyEvent(input)
	ctx := rules.MatchContext{
		ComposingText:  s.composing,
		KeyEvent:       &ev,
		ActiveStates:   s.active,
		IsRecursive:    false,
		RightAltOption: e.keyboard.Header.Options.RightAlt,
	}

	if result, ok := rules.Match(e.sorted, e.keyboard.Strings, ctx); ok {
		output, activated, err := rules.Apply(result.Rule.Rule.RHS, e.keyboard.Strings, result.Captures)
		if err != nil {
			return EngineOutput{}, adaptApplyError(err)
		}
		for _, idx := range activated {
			s.activateState(idx)
		}
		runes := []rune(result.MatchedBuffer)
		prefix := runes[:len(runes)-result.Length]
		s.composing = string(prefix) + output
		processed = true

		final, _, err := rules.Recur(e.sorted, e.keyboard.Strings, s.composing, s.active)
		if err != nil {
			return EngineOutput{}, adaptApplyError(err)
		}
		s.composing = final
	} else if input.HasChar && input.printableOnlyShift() {
		s.composing += string(input.CharValue)
		processed = true

		final, _, err := rules.Recur(e.sorted, e.keyboard.Strings, s.composing, s.active)
		if err != nil {
			return EngineOutput{}, adaptApplyError(err)
		}
		s.composing = final
	} else if e.keyboard.Header.Options.Eat {
		processed = true
	}

	action := diffAction(before, s.composing)
	return EngineOutput{
		Action:        action,
		ComposingText: s.composing,
		IsProcessed:   processed,
	}, nil
}

func toKeyEvent(k KeyInput) rules.KeyEvent {
	return rules.KeyEvent{
		VKCode:   k.VirtualKeyCode,
		Shift:    k.Modifiers.Shift(),
		Ctrl:     k.Modifiers.Ctrl(),
		Alt:      k.Modifiers.Alt(),
		AltGr:    k.Modifiers.AltGr(),
		CapsLock: k.Modifiers.CapsLock(),
		Char:     k.CharValue,
		HasChar:  k.HasChar,
	}
}

func adaptApplyError(err error) error {
	ae, ok := err.(*rules.ApplyError)
	if !ok {
		return err
	}
	switch ae.Kind {
	case rules.InvalidVariableIndex:
		return &RuntimeError{Kind: InvalidVariableIndex, Index: ae.Index}
	case rules.InvalidReferenceIndex:
		return &RuntimeError{Kind: InvalidReferenceIndex, Index: ae.Index}
	default:
		return err
	}
}
