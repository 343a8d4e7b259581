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

func TestApply_StringAndVariable(t *testing.T) {
	strTable := []string{"hello"}
	rhs := []km2.Element{
		{Kind: km2.ElemString, Text: "x"},
		{Kind: km2.ElemVariable, Index: 1},
	}
	out, activated, err := Apply(rhs, strTable, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out != "xhello" {
		t.Fatalf("out = %q, want %q", out, "xhello")
	}
	if len(activated) != 0 {
		t.Fatalf("activated = %v, want none", activated)
	}
}

func TestApply_IndexedVariableAccess(t *testing.T) {
	strTable := []string{"ကဂ"}
	rhs := []km2.Element{
		{Kind: km2.ElemVariable, Index: 1},
		{Kind: km2.ElemModifier, ModifierValue: 1},
	}
	captures := map[int]Capture{1: {Content: 'k', Index: 0, HasIndex: true}}
	out, _, err := Apply(rhs, strTable, captures)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out != "က" {
		t.Fatalf("out = %q, want %q", out, "က")
	}
}

func TestApply_Reference(t *testing.T) {
	rhs := []km2.Element{{Kind: km2.ElemReference, Index: 1}}
	captures := map[int]Capture{1: {Content: 'z'}}
	out, _, err := Apply(rhs, nil, captures)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out != "z" {
		t.Fatalf("out = %q, want %q", out, "z")
	}
}

func TestApply_SwitchActivatesState(t *testing.T) {
	rhs := []km2.Element{{Kind: km2.ElemSwitch, Index: 4}}
	_, activated, err := Apply(rhs, nil, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(activated) != 1 || activated[0] != 4 {
		t.Fatalf("activated = %v, want [4]", activated)
	}
}

func TestApply_InvalidVariableIndex(t *testing.T) {
	rhs := []km2.Element{{Kind: km2.ElemVariable, Index: 9}}
	_, _, err := Apply(rhs, []string{"a"}, nil)
	ae, ok := err.(*ApplyError)
	if !ok || ae.Kind != InvalidVariableIndex {
		t.Fatalf("err = %v, want InvalidVariableIndex", err)
	}
}

func TestApply_InvalidReferenceIndex(t *testing.T) {
	rhs := []km2.Element{{Kind: km2.ElemReference, Index: 3}}
	_, _, err := Apply(rhs, nil, map[int]Capture{})
	ae, ok := err.(*ApplyError)
	if !ok || ae.Kind != InvalidReferenceIndex {
		t.Fatalf("err = %v, want InvalidReferenceIndex", err)
	}
}

func TestApply_BarePredefinedIgnored(t *testing.T) {
	rhs := []km2.Element{{Kind: km2.ElemPredefined, VKCode: 0x20}}
	out, _, err := Apply(rhs, nil, nil)
	if err != nil || out != "" {
		t.Fatalf("out = %q, err = %v, want empty/nil", out, err)
	}
}
