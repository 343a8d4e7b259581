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

// diffAction computes the minimal (delete-count, insert-text) edit between
// before and after, measured in code points, not bytes or graphemes (§4.7,
// §9). This is a two-pointer longest-common-prefix scan; no library in the
// reference pack fits this (rsc.io/diff operates on whole lines via Myers
// diff, the wrong granularity for a single-suffix rewrite), so it is
// hand-written.
func diffAction(before, after string) Action {
	if before == after {
		return Action{Kind: ActionNone}
	}

	b := []rune(before)
	a := []rune(after)

	prefix := 0
	for prefix < len(b) && prefix < len(a) && b[prefix] == a[prefix] {
		prefix++
	}

	deleteCount := len(b) - prefix
	insertText := string(a[prefix:])

	switch {
	case deleteCount == 0 && insertText == "":
		return Action{Kind: ActionNone}
	case deleteCount == 0:
		return Action{Kind: ActionInsert, InsertText: insertText}
	case insertText == "":
		return Action{Kind: ActionBackspaceDelete, DeleteCount: deleteCount}
	default:
		return Action{Kind: ActionBackspaceDeleteAndInsert, DeleteCount: deleteCount, InsertText: insertText}
	}
}
