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

// kmdump prints a KM2 keyboard's header, metadata and strings table, and
// with --rules its rule list, in human-readable form. It is a thin demonstrator around
// the keymagic module, grounded on read_km2_info.rs's pretty-printer.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	keymagic "github.com/thantthet/keymagic-3-sub001"
	"github.com/thantthet/keymagic-3-sub001/km2"
)

func main() {
	var showRules bool

	rootCmd := &cobra.Command{
		Use:   "kmdump [keyboard.km2]",
		Short: "Dump a KM2 keyboard's metadata and rule table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			kb, err := km2.Decode(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			printHeader(kb)
			printMetadata(kb)
			printStrings(kb)
			if showRules {
				printRules(kb)
			}
			return nil
		},
	}
	rootCmd.Flags().BoolVar(&showRules, "rules", false, "also print the rule table")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printHeader(kb *km2.Keyboard) {
	fmt.Printf("Version:    %d.%d\n", kb.Header.MajorVersion, kb.Header.MinorVersion)
	fmt.Printf("Strings:    %d\n", len(kb.Strings))
	fmt.Printf("Info:       %d\n", len(kb.Info))
	fmt.Printf("Rules:      %d\n", len(kb.Rules))
	o := kb.Header.Options
	fmt.Printf("Options:    track_caps=%v auto_bksp=%v eat=%v pos_based=%v right_alt=%v\n",
		o.TrackCaps, o.AutoBksp, o.Eat, o.PosBased, o.RightAlt)
}

func printMetadata(kb *km2.Keyboard) {
	pairs := km2.DecodeInfo(kb.Metadata())
	if len(pairs) == 0 {
		return
	}
	fmt.Println()
	width := 0
	for _, p := range pairs {
		if w := runewidth.StringWidth(p.Label); w > width {
			width = w
		}
	}
	for _, p := range pairs {
		pad := width - runewidth.StringWidth(p.Label)
		fmt.Printf("%s%*s : %s\n", p.Label, pad, "", p.Value)
	}
}

func printStrings(kb *km2.Keyboard) {
	if len(kb.Strings) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Strings:")
	for i, s := range kb.Strings {
		fmt.Printf("  $%-4d %q\n", i+1, s)
	}
}

func printRules(kb *km2.Keyboard) {
	fmt.Println()
	fmt.Println("Rules:")
	for i, r := range kb.Rules {
		fmt.Printf("  [%3d] %s => %s\n", i, describeElements(r.LHS), describeElements(r.RHS))
	}
}

func describeElements(elems []km2.Element) string {
	s := ""
	for i, e := range elems {
		if i > 0 {
			s += " "
		}
		switch e.Kind {
		case km2.ElemString:
			s += fmt.Sprintf("%q", e.Text)
		case km2.ElemVariable:
			s += fmt.Sprintf("$%d", e.Index)
		case km2.ElemReference:
			s += fmt.Sprintf("$%d", e.Index)
		case km2.ElemPredefined:
			if name := keymagic.VKName(e.VKCode); name != "" {
				s += fmt.Sprintf("VK(%s)", name)
			} else {
				s += fmt.Sprintf("VK(0x%02X)", e.VKCode)
			}
		case km2.ElemModifier:
			s += fmt.Sprintf("Mod(0x%02X)", e.ModifierValue)
		case km2.ElemAnd:
			s += "&"
		case km2.ElemAny:
			s += "*"
		case km2.ElemSwitch:
			s += fmt.Sprintf("Switch(%d)", e.Index)
		}
	}
	return s
}
