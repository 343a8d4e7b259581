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
	"testing"

	"github.com/thantthet/keymagic-3-sub001/km2"
)

func TestPreprocess_LiteralAndVar(t *testing.T) {
	lhs := []km2.Element{
		{Kind: km2.ElemString, Text: "ab"},
		{Kind: km2.ElemVariable, Index: 1},
	}
	p := Preprocess(lhs)
	if len(p.Elements) != 2 {
		t.Fatalf("len(Elements) = %d, want 2", len(p.Elements))
	}
	if p.Elements[0].Kind != Literal || p.Elements[0].Literal != "ab" {
		t.Fatalf("Elements[0] = %+v", p.Elements[0])
	}
	if p.Elements[1].Kind != Var || p.Elements[1].VarIdx != 0 || p.Elements[1].VarKind != Exact {
		t.Fatalf("Elements[1] = %+v", p.Elements[1])
	}
	if p.CharLength != 2 {
		t.Fatalf("CharLength = %d, want 2 (Exact var not counted until resolved)", p.CharLength)
	}
}

func TestPreprocess_VariableAnyOfConsumesModifier(t *testing.T) {
	lhs := []km2.Element{
		{Kind: km2.ElemVariable, Index: 1},
		{Kind: km2.ElemModifier, ModifierValue: km2.FlagAnyOf},
	}
	p := Preprocess(lhs)
	if len(p.Elements) != 1 {
		t.Fatalf("len(Elements) = %d, want 1 (modifier consumed)", len(p.Elements))
	}
	if p.Elements[0].VarKind != AnyOf {
		t.Fatalf("VarKind = %v, want AnyOf", p.Elements[0].VarKind)
	}
	if p.CharLength != 1 {
		t.Fatalf("CharLength = %d, want 1", p.CharLength)
	}
}

func TestPreprocess_AndDiscarded(t *testing.T) {
	lhs := []km2.Element{
		{Kind: km2.ElemAnd},
		{Kind: km2.ElemPredefined, VKCode: 0x41},
	}
	p := Preprocess(lhs)
	if len(p.Elements) != 1 || p.Elements[0].Kind != Vk {
		t.Fatalf("Elements = %+v, want single Vk", p.Elements)
	}
	if p.VKCount != 1 {
		t.Fatalf("VKCount = %d, want 1", p.VKCount)
	}
}

func TestPreprocess_SwitchIncrementsStateCount(t *testing.T) {
	lhs := []km2.Element{{Kind: km2.ElemSwitch, Index: 3}}
	p := Preprocess(lhs)
	if p.StateCount != 1 || p.Elements[0].StateIdx != 3 {
		t.Fatalf("p = %+v", p)
	}
}

func TestCalculateMatchLength(t *testing.T) {
	strTable := []string{"hello"}
	p := Pattern{Elements: []PatternElement{
		{Kind: Literal, Literal: "x"},
		{Kind: Var, VarIdx: 0, VarKind: Exact},
		{Kind: Any},
	}}
	got := CalculateMatchLength(p, strTable)
	want := 1 + 5 + 1
	if got != want {
		t.Fatalf("CalculateMatchLength = %d, want %d", got, want)
	}
}
