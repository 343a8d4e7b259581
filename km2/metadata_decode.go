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

import (
	"fmt"
	"strings"
)

// DecodeInfoString decodes an info entry's payload as UTF-8, replacing any
// invalid sequences rather than failing — info records are free-form
// metadata, not structural data, so a malformed byte here is not a load
// error the way a malformed strings-table entry is (§7). Grounded on the
// original implementation's from_utf8_lossy behavior for the same field.
func DecodeInfoString(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}

// wellKnownTags lists the tags DecodeInfo recognizes, in the display order
// a dump tool should use. Grounded on read_km2_info.rs's pretty-printer.
var wellKnownTags = []struct {
	tag   [4]byte
	label string
}{
	{TagName, "Name"},
	{TagDescription, "Description"},
	{TagFontFamily, "Font Family"},
	{TagHotkey, "Hotkey"},
	{TagIcon, "Icon"},
}

// DecodeInfo renders a keyboard's well-known metadata tags as label/value
// pairs, in a fixed display order, skipping tags that are absent. Icon is
// reported by byte length rather than decoded as text.
func DecodeInfo(m Metadata) []struct{ Label, Value string } {
	var out []struct{ Label, Value string }
	for _, wk := range wellKnownTags {
		data, ok := m.Get(wk.tag)
		if !ok {
			continue
		}
		value := DecodeInfoString(data)
		if wk.tag == TagIcon {
			value = fmt.Sprintf("<%d bytes>", len(data))
		}
		out = append(out, struct{ Label, Value string }{wk.label, value})
	}
	return out
}
