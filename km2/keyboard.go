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

// Rule is one (lhs, rhs) rewrite rule, in file order.
type Rule struct {
	LHS []Element
	RHS []Element
}

// InfoEntry is one metadata record, preserved verbatim (§3).
type InfoEntry struct {
	Tag  [4]byte
	Data []byte
}

// Well-known info tags, stored as the little-endian bytes of the ASCII word
// they name (§3): e.g. "name" is stored as the bytes 'e','m','a','n'.
var (
	TagName        = [4]byte{'e', 'm', 'a', 'n'}
	TagDescription = [4]byte{'c', 's', 'e', 'd'}
	TagFontFamily  = [4]byte{'t', 'n', 'o', 'f'}
	TagIcon        = [4]byte{'n', 'o', 'c', 'i'}
	TagHotkey      = [4]byte{'y', 'k', 't', 'h'}
)

// Metadata is a convenience wrapper over a keyboard's info records (§6).
type Metadata struct {
	order []InfoEntry
	byTag map[[4]byte][]byte
}

func newMetadata(entries []InfoEntry) Metadata {
	m := Metadata{
		order: entries,
		byTag: make(map[[4]byte][]byte, len(entries)),
	}
	for _, e := range entries {
		m.byTag[e.Tag] = e.Data
	}
	return m
}

// Has reports whether the given tag is present.
func (m Metadata) Has(tag [4]byte) bool {
	_, ok := m.byTag[tag]
	return ok
}

// Get returns the raw bytes for a tag, and whether it was present.
func (m Metadata) Get(tag [4]byte) ([]byte, bool) {
	v, ok := m.byTag[tag]
	return v, ok
}

// Iter calls fn for every info entry in file order, including unrecognized
// tags, until fn returns false.
func (m Metadata) Iter(fn func(tag [4]byte, data []byte) bool) {
	for _, e := range m.order {
		if !fn(e.Tag, e.Data) {
			return
		}
	}
}

// Len returns the number of info entries.
func (m Metadata) Len() int { return len(m.order) }

func (m Metadata) getString(tag [4]byte) (string, bool) {
	v, ok := m.byTag[tag]
	if !ok {
		return "", false
	}
	return DecodeInfoString(v), true
}

// Name returns the keyboard's display name, if present.
func (m Metadata) Name() (string, bool) { return m.getString(TagName) }

// Description returns the keyboard's description, if present.
func (m Metadata) Description() (string, bool) { return m.getString(TagDescription) }

// FontFamily returns the keyboard's suggested font family, if present.
func (m Metadata) FontFamily() (string, bool) { return m.getString(TagFontFamily) }

// Hotkey returns the keyboard's activation hotkey string, if present.
func (m Metadata) Hotkey() (string, bool) { return m.getString(TagHotkey) }

// Icon returns the keyboard's icon payload, if present.
func (m Metadata) Icon() ([]byte, bool) { return m.Get(TagIcon) }

// Keyboard is the fully decoded, validated, immutable result of loading a
// KM2 file (§3). It is safe to share across engines.
type Keyboard struct {
	Header  Header
	Strings []string
	Info    []InfoEntry
	Rules   []Rule
}

// Metadata returns a convenience wrapper over the keyboard's info records.
func (k *Keyboard) Metadata() Metadata {
	return newMetadata(k.Info)
}

// String returns the 0-based string-table entry, or ("", false) if idx is
// out of range.
func (k *Keyboard) String(idx int) (string, bool) {
	if idx < 0 || idx >= len(k.Strings) {
		return "", false
	}
	return k.Strings[idx], true
}
