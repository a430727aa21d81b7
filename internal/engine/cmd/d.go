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

package cmd

import (
	"github.com/zmeadows/feldspar/internal/display"
	"github.com/zmeadows/feldspar/internal/engine/context"
	"github.com/zmeadows/feldspar/pkg/uci/cmd"
	"github.com/zmeadows/feldspar/pkg/uci/flag"
)

// Custom command d [interactive]
//
// This command prints out the current position using ascii art, along with
// its fen string, and zobrist key. With the interactive flag, and only when
// stdout is a real terminal (never under a GUI pipe), it instead opens a
// colored termbox board that waits for a keypress.
func NewD(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Button("interactive")

	return cmd.Command{
		Name: "d",
		Run: func(interaction cmd.Interaction) error {
			if interaction.Values["interactive"].Set && display.IsTTY() {
				return display.ShowInteractive(engine.Search.Position)
			}

			// print the current board with ascii art
			interaction.Reply(engine.Search.String())
			interaction.Reply(display.Board(engine.Search.Position))
			return nil
		},
		Flags: schema,
	}
}
