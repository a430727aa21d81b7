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
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/zmeadows/feldspar/pkg/chess"
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
)

// ShowDashboard renders pos as a termui table widget for the given
// duration and returns. Unlike ShowInteractive it doesn't block on
// input, which suits cmd/bench's between-game progress view: draw,
// pause briefly, move on to the next game.
func ShowDashboard(pos *chess.Position, d time.Duration) error {
	if err := ui.Init(); err != nil {
		return err
	}
	defer ui.Close()

	table := widgets.NewTable()
	table.Title = "feldspar"
	table.Rows = boardRows(pos)
	table.TextStyle = ui.NewStyle(ui.ColorWhite)
	table.RowSeparator = false
	table.SetRect(0, 0, 24, 11)

	status := widgets.NewParagraph()
	status.Title = "status"
	status.Text = plainOneLiner(pos)
	status.SetRect(0, 11, 60, 14)

	ui.Render(table, status)
	time.Sleep(d)

	return nil
}

func boardRows(pos *chess.Position) [][]string {
	rows := make([][]string, 8)

	for rank := 7; rank >= 0; rank-- {
		row := make([]string, 8)
		for file := 0; file < 8; file++ {
			s := square.New(square.File(file), square.Rank(rank))
			p := pos.Board.Mailbox[s]

			cell := "."
			if p != piece.NoPiece {
				cell = p.String()
			}
			row[file] = cell
		}
		rows[7-rank] = row
	}

	return rows
}
