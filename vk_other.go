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

//go:build !windows

package keymagic

// vkNames mirrors the table in vk_windows.go using the literal Windows VK
// numbers (GLOSSARY): on non-Windows platforms golang.org/x/sys/windows is
// unavailable, so the same constants this module defines in key.go are used
// directly instead of importing the OS package.
var vkNames = map[uint16]string{
	VKBack:    "Backspace",
	VKTab:     "Tab",
	VKReturn:  "Enter",
	VKShift:   "Shift",
	VKControl: "Ctrl",
	VKMenu:    "Alt",
	VKCapital: "CapsLock",
	VKEscape:  "Esc",
	VKSpace:   "Space",
	VKPrior:   "PageUp",
	VKNext:    "PageDown",
	VKEnd:     "End",
	VKHome:    "Home",
	VKLeft:    "Left",
	VKUp:      "Up",
	VKRight:   "Right",
	VKDown:    "Down",
	VKInsert:  "Insert",
	VKDelete:  "Delete",
	VKF1:      "F1",
	VKF2:      "F2",
	VKF3:      "F3",
	VKF4:      "F4",
	VKF5:      "F5",
	VKF6:      "F6",
	VKF7:      "F7",
	VKF8:      "F8",
	VKF9:      "F9",
	VKF10:     "F10",
	VKF11:     "F11",
	VKF12:     "F12",
}

// VKName returns a friendly name for a virtual-key code, or "" if unknown.
func VKName(vk uint16) string {
	if vk >= 'A' && vk <= 'Z' {
		return string(rune(vk))
	}
	if vk >= '0' && vk <= '9' {
		return string(rune(vk))
	}
	return vkNames[vk]
}
