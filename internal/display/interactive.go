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
	termbox "github.com/nsf/termbox-go"
	"github.com/zmeadows/feldspar/pkg/chess"
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
)

// ShowInteractive draws pos as a colored cell grid and blocks until the
// user presses any key, in the style of the original engine's colored
// board dump but redrawn as a real termbox screen instead of raw ANSI
// escapes over a pipe. Callers should check IsTTY first; termbox.Init
// fails outright when stdout isn't a terminal.
func ShowInteractive(pos *chess.Position) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	drawBoard(pos)
	termbox.Flush()

	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventKey {
			return nil
		}
	}
}

func drawBoard(pos *chess.Position) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	const originX, originY = 2, 1

	for sq := 0; sq < square.N; sq++ {
		s := square.Square(sq)
		p := pos.Board.Mailbox[sq]

		bg := termbox.ColorWhite
		if (int(s.File())+int(s.Rank()))%2 == 0 {
			bg = termbox.ColorBlack
		}

		ch := ' '
		if p != piece.NoPiece {
			ch = []rune(unicodeGlyph[p.Type()][p.Color()])[0]
		}

		x := originX + int(s.File())*2
		y := originY + (7 - int(s.Rank()))

		termbox.SetCell(x, y, ch, termbox.ColorBlack|termbox.AttrBold, bg)
		termbox.SetCell(x+1, y, ' ', termbox.ColorBlack, bg)
	}

	for i, ch := range []rune(plainOneLiner(pos)) {
		termbox.SetCell(originX+i, originY+9, ch, termbox.ColorDefault, termbox.ColorDefault)
	}
}
