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

package km2

// Magic is the fixed 4-byte signature every KM2 file starts with.
const Magic = "KMKL"

// headerSize is the byte length of the fixed header, field-by-field as
// specified in §6: magic(4) + major(1) + minor(1) + string_count(2) +
// info_count(2) + rule_count(2) + 5 one-byte layout flags + 1 pad byte.
// This totals 18 bytes; §4.1 step 4's parenthetical "(total header 16
// bytes)" undercounts against its own field list and is not followed here
// — see DESIGN.md.
const headerSize = 18

// LayoutOptions are the keyboard-wide behavior flags carried in the header
// (§3).
type LayoutOptions struct {
	TrackCaps bool // track_caps
	AutoBksp  bool // auto_bksp: smart backspace
	Eat       bool // eat: consume unused keys
	PosBased  bool // pos_based: US-layout positional matching
	RightAlt  bool // right_alt: treat Ctrl+Alt as AltGr
}

// Header is the fixed-size KM2 file header.
type Header struct {
	MajorVersion uint8
	MinorVersion uint8
	StringCount  uint16
	InfoCount    uint16
	RuleCount    uint16
	Options      LayoutOptions
}
