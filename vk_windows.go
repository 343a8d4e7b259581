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

//go:build windows

package keymagic

import "golang.org/x/sys/windows"

// vkNames maps the Windows VK numbering to a friendly name, sourced from
// the canonical constants in golang.org/x/sys/windows rather than a
// hand-maintained table, so this module and the OS agree on what each code
// means. Used by cmd/kmdump for display only; the matching
// engine itself only ever compares raw codes (§4.4).
var vkNames = map[uint16]string{
	uint16(windows.VK_BACK):    "Backspace",
	uint16(windows.VK_TAB):     "Tab",
	uint16(windows.VK_RETURN):  "Enter",
	uint16(windows.VK_SHIFT):   "Shift",
	uint16(windows.VK_CONTROL): "Ctrl",
	uint16(windows.VK_MENU):    "Alt",
	uint16(windows.VK_CAPITAL): "CapsLock",
	uint16(windows.VK_ESCAPE):  "Esc",
	uint16(windows.VK_SPACE):   "Space",
	uint16(windows.VK_PRIOR):   "PageUp",
	uint16(windows.VK_NEXT):    "PageDown",
	uint16(windows.VK_END):     "End",
	uint16(windows.VK_HOME):    "Home",
	uint16(windows.VK_LEFT):    "Left",
	uint16(windows.VK_UP):      "Up",
	uint16(windows.VK_RIGHT):   "Right",
	uint16(windows.VK_DOWN):    "Down",
	uint16(windows.VK_INSERT):  "Insert",
	uint16(windows.VK_DELETE):  "Delete",
	uint16(windows.VK_F1):      "F1",
	uint16(windows.VK_F2):      "F2",
	uint16(windows.VK_F3):      "F3",
	uint16(windows.VK_F4):      "F4",
	uint16(windows.VK_F5):      "F5",
	uint16(windows.VK_F6):      "F6",
	uint16(windows.VK_F7):      "F7",
	uint16(windows.VK_F8):      "F8",
	uint16(windows.VK_F9):      "F9",
	uint16(windows.VK_F10):     "F10",
	uint16(windows.VK_F11):     "F11",
	uint16(windows.VK_F12):     "F12",
}

// VKName returns a friendly name for a virtual-key code, or "" if unknown.
// Letters and digits are not present in the table since their VK code
// already equals their ASCII rune.
func VKName(vk uint16) string {
	if vk >= 'A' && vk <= 'Z' {
		return string(rune(vk))
	}
	if vk >= '0' && vk <= '9' {
		return string(rune(vk))
	}
	return vkNames[vk]
}
