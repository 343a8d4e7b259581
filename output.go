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

import "fmt"

// ActionKind identifies the shape of the minimal edit an Action carries
// (§4.7).
type ActionKind int

const (
	// ActionNone means the key was handled but produced no visible change.
	ActionNone ActionKind = iota
	// ActionInsert means text should be inserted with no preceding delete.
	ActionInsert
	// ActionBackspaceDelete means characters should be deleted with no
	// following insert.
	ActionBackspaceDelete
	// ActionBackspaceDeleteAndInsert means characters should be deleted
	// and then text inserted in their place.
	ActionBackspaceDeleteAndInsert
)

// Action is the minimal edit C7 computes between the composing buffer
// before and after a key event: delete DeleteCount code points from the
// end of the preedit, then insert InsertText.
type Action struct {
	Kind        ActionKind
	DeleteCount int
	InsertText  string
}

func (a Action) String() string {
	switch a.Kind {
	case ActionInsert:
		return fmt.Sprintf("Insert(%q)", a.InsertText)
	case ActionBackspaceDelete:
		return fmt.Sprintf("BackspaceDelete(%d)", a.DeleteCount)
	case ActionBackspaceDeleteAndInsert:
		return fmt.Sprintf("BackspaceDeleteAndInsert(%d, %q)", a.DeleteCount, a.InsertText)
	default:
		return "None"
	}
}

// EngineOutput is the result of processing one key event (§6).
type EngineOutput struct {
	Action        Action
	ComposingText string
	IsProcessed   bool
}
