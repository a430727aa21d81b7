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

package display

import (
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/zmeadows/feldspar/pkg/chess"
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
)

var unicodeGlyph = map[piece.Type][2]string{
	piece.Pawn:   {"♙", "♟"},
	piece.Knight: {"♘", "♞"},
	piece.Bishop: {"♗", "♝"},
	piece.Rook:   {"♖", "♜"},
	piece.Queen:  {"♕", "♛"},
	piece.King:   {"♔", "♚"},
}

// Board renders pos as an 8x8 grid of unicode piece glyphs on
// alternating light/dark square backgrounds, one compact FEN-annotated
// line underneath, in the style of a colored terminal chess board.
func Board(pos *chess.Position) string {
	var sb strings.Builder

	for sq := 0; sq < square.N; sq++ {
		s := square.Square(sq)
		p := pos.Board.Mailbox[sq]

		cell := "  "
		if p != piece.NoPiece {
			cell = unicodeGlyph[p.Type()][p.Color()] + " "
		}

		dark := (int(s.File())+int(s.Rank()))%2 == 0

		bg := "on_white"
		if dark {
			bg = "on_black"
		}

		sb.WriteString(colorizeCell(cell, bg))

		if s.File() == square.FileH {
			sb.WriteByte('\n')
		}
	}

	sb.WriteString(oneLiner(pos))
	sb.WriteByte('\n')

	return colorstring.Color(sb.String())
}

// colorizeCell is kept as its own function since the interactive
// termbox view below needs the same bg choice without the colorstring
// escape wrapping.
func colorizeCell(cell, bg string) string {
	return "[" + bg + "]" + cell + "[reset]"
}

// oneLiner returns a single FEN-annotated summary line, which Board
// prints under the colorized board grid.
func oneLiner(pos *chess.Position) string {
	stm := "white"
	if pos.SideToMove == piece.Black {
		stm = "black"
	}

	status := StatusLine(stm, pos.InCheck(), false, false)
	return status + "  " + pos.FEN()
}

// plainOneLiner is oneLiner without colorstring escape codes, for
// renderers (termbox) that draw one cell per rune and can't interpret
// ANSI escapes embedded in the string.
func plainOneLiner(pos *chess.Position) string {
	stm := "white to move"
	if pos.SideToMove == piece.Black {
		stm = "black to move"
	}
	if pos.InCheck() {
		stm += ", in check"
	}

	return stm + "  " + pos.FEN()
}
