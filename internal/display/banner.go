// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package display renders the engine's position for humans: a colorized
// board and status banner for any terminal, and a richer interactive
// view when stdout is a real tty.
package display

import (
	"os"

	"github.com/mitchellh/colorstring"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

// TermWidth returns the current terminal width, falling back to 80
// columns when stdout isn't a tty (a GUI pipe, a log file, ...).
func TermWidth() int {
	if !IsTTY() {
		return 80
	}

	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}

	return w
}

// IsTTY reports whether stdout is attached to a terminal. The UCI
// protocol is line-oriented over stdio, so any fancy rendering must be
// skipped when the engine is driven by a GUI pipe instead of a human.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Banner returns the engine's startup banner, colorized and wrapped to
// the terminal width.
func Banner(name, version string) string {
	text := colorstring.Color(
		"[bold][green]" + name + "[reset] [white]" + version + "[reset]",
	)
	return wordwrap.WrapString(text, uint(TermWidth()))
}

// StatusLine returns a colorized one-line summary of a position's
// side-to-move, check, and result state, used in the summary line under
// the colorized board view (the interactive view uses its own plain text).
func StatusLine(sideToMove string, inCheck, checkmate, stalemate bool) string {
	switch {
	case checkmate:
		return colorstring.Color("[bold][red]checkmate[reset]")
	case stalemate:
		return colorstring.Color("[bold][yellow]stalemate[reset]")
	case inCheck:
		return colorstring.Color("[bold][red]" + sideToMove + " to move, in check[reset]")
	default:
		return colorstring.Color("[bold][white]" + sideToMove + " to move[reset]")
	}
}
