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

// usLayoutUnshifted and usLayoutShifted map a VK code to the character a US
// keyboard produces for it, unshifted and shifted. Only the rows a positional remap needs are
// populated; codes outside this table pass through untouched.
var usLayoutUnshifted = map[uint16]rune{
	0x30: '0', 0x31: '1', 0x32: '2', 0x33: '3', 0x34: '4',
	0x35: '5', 0x36: '6', 0x37: '7', 0x38: '8', 0x39: '9',
	0x41: 'a', 0x42: 'b', 0x43: 'c', 0x44: 'd', 0x45: 'e',
	0x46: 'f', 0x47: 'g', 0x48: 'h', 0x49: 'i', 0x4A: 'j',
	0x4B: 'k', 0x4C: 'l', 0x4D: 'm', 0x4E: 'n', 0x4F: 'o',
	0x50: 'p', 0x51: 'q', 0x52: 'r', 0x53: 's', 0x54: 't',
	0x55: 'u', 0x56: 'v', 0x57: 'w', 0x58: 'x', 0x59: 'y',
	0x5A: 'z', 0x20: ' ',
}

var usLayoutShifted = map[uint16]rune{
	0x30: ')', 0x31: '!', 0x32: '@', 0x33: '#', 0x34: '$',
	0x35: '%', 0x36: '^', 0x37: '&', 0x38: '*', 0x39: '(',
	0x41: 'A', 0x42: 'B', 0x43: 'C', 0x44: 'D', 0x45: 'E',
	0x46: 'F', 0x47: 'G', 0x48: 'H', 0x49: 'I', 0x4A: 'J',
	0x4B: 'K', 0x4C: 'L', 0x4D: 'M', 0x4E: 'N', 0x4F: 'O',
	0x50: 'P', 0x51: 'Q', 0x52: 'R', 0x53: 'S', 0x54: 'T',
	0x55: 'U', 0x56: 'V', 0x57: 'W', 0x58: 'X', 0x59: 'Y',
	0x5A: 'Z', 0x20: ' ',
}

// PositionalRemap rewrites ev.Char to the character a US-layout keyboard
// would produce for ev.VKCode, leaving VKCode and every modifier
// untouched. This is the seam spec.md's Open Questions name but does not
// mandate: no matching logic consumes pos_based, so the engine never
// calls this by default; a caller whose keyboard sets pos_based can layer
// it in front of process_key itself.
func PositionalRemap(ev KeyEvent) KeyEvent {
	table := usLayoutUnshifted
	if ev.Shift {
		table = usLayoutShifted
	}
	if ch, ok := table[ev.VKCode]; ok {
		ev.Char = ch
		ev.HasChar = true
	}
	return ev
}
