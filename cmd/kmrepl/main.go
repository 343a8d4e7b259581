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

// kmrepl is an interactive REPL that feeds raw keystrokes through a loaded
// keyboard and prints the resulting composing buffer after every key. It
// owns the tty directly (raw mode, no line discipline) so a held Shift or
// a bare punctuation key reaches the engine exactly as typed.
package main

import (
	"fmt"
	"os"
	"unicode"

	"github.com/pkg/term"
	"github.com/spf13/cobra"

	keymagic "github.com/thantthet/keymagic-3-sub001"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kmrepl [keyboard.km2]",
		Short: "Interactively type through a loaded KM2 keyboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			eng, err := keymagic.Load(data)
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			return repl(eng)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func repl(eng *keymagic.Engine) error {
	t, err := term.Open("/dev/tty")
	if err != nil {
		return fmt.Errorf("open tty: %w", err)
	}
	defer t.Close()

	if err := term.RawMode(t); err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer t.Restore()

	fmt.Println("kmrepl: type to compose, Esc or Ctrl+C to quit")
	fmt.Printf("> %s\n", eng.ComposingText())

	buf := make([]byte, 8)
	for {
		n, err := t.Read(buf)
		if err != nil {
			return err
		}
		for _, b := range buf[:n] {
			if b == 0x1B || b == 0x03 { // Esc or Ctrl+C
				fmt.Println()
				return nil
			}
			if b == 0x12 { // Ctrl+R: reset
				eng.Reset()
				fmt.Printf("\r> %s\033[K\n", eng.ComposingText())
				continue
			}
			input := byteToKeyInput(b)
			out, err := eng.ProcessKey(input)
			if err != nil {
				fmt.Printf("\nruntime error: %v\n", err)
				continue
			}
			fmt.Printf("\r> %s\033[K\n", out.ComposingText)
		}
	}
}

// byteToKeyInput maps one raw terminal byte to the KeyInput the engine
// expects: letters/digits/space carry both a VK code and a char value,
// uppercase letters are reported as Shift+<letter VK> with the uppercase
// char, matching how a real keyboard driver reports a shifted key.
func byteToKeyInput(b byte) keymagic.KeyInput {
	r := rune(b)
	switch {
	case r >= 'a' && r <= 'z':
		return keymagic.NewKeyInput(keymagic.VKA+uint16(r-'a'), 0).WithChar(r)
	case r >= 'A' && r <= 'Z':
		return keymagic.NewKeyInput(keymagic.VKA+uint16(r-'A'), keymagic.ModShift).WithChar(r)
	case r >= '0' && r <= '9':
		return keymagic.NewKeyInput(keymagic.VK0+uint16(r-'0'), 0).WithChar(r)
	case r == ' ':
		return keymagic.NewKeyInput(keymagic.VKSpace, 0).WithChar(r)
	case r == 0x08 || r == 0x7F:
		return keymagic.NewKeyInput(keymagic.VKBack, 0)
	case r == '\r' || r == '\n':
		return keymagic.NewKeyInput(keymagic.VKReturn, 0)
	case unicode.IsPrint(r):
		return keymagic.NewKeyInput(0, 0).WithChar(r)
	default:
		return keymagic.NewKeyInput(0, 0)
	}
}
