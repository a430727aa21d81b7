// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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
	"errors"
	"strings"

	"github.com/zmeadows/feldspar/internal/engine/context"
	"github.com/zmeadows/feldspar/pkg/chess"
	"github.com/zmeadows/feldspar/pkg/uci/cmd"
	"github.com/zmeadows/feldspar/pkg/uci/flag"
)

// UCI command position [ fen <fenstring> | startpos ] moves <move>...
//
// Set up the position described in fenstring on the internal board and
// play the moves on the internal chess board.
//
// If the game was played from the start position the string startpos will
// be sent
//
// Note: no "new" command is needed. However, if this position is from a
// different game than the last position sent to the engine, the GUI should
// have sent a ucinewgame in-between.
func NewPosition(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()

	// base position: a fen string is made up of 6 whitespace-separated
	// fields (piece placement, side to move, castling rights, en-passant
	// target, halfmove clock, fullmove number)
	schema.Array("fen", 6)
	schema.Button("startpos")

	// moves played on base position
	schema.Variadic("moves")

	return cmd.Command{
		Name: "position",
		Run: func(interaction cmd.Interaction) error {
			fen, moves, err := parsePositionFlags(interaction.Values)
			if err != nil {
				return err
			}

			return engine.Search.SetPosition(fen, moves)
		},
		Flags: schema,
	}
}

// parsePositionFlags parses the fen and moves data from the given flags.
func parsePositionFlags(values flag.Values) (string, []string, error) {
	var fen string

	switch {
	// only one of the base position descriptors should be set
	case values["startpos"].Set && values["fen"].Set:
		return "", nil, errors.New("position: both startpos and fen flags found")

	case values["startpos"].Set:
		fen = chess.StartFEN

	case values["fen"].Set:
		fen = strings.Join(values["fen"].Value.([]string), " ")

	default:
		// one of fen or startpos have to be there
		return "", nil, errors.New("position: no startpos or fen option")
	}

	var moves []string
	if values["moves"].Set {
		moves = values["moves"].Value.([]string)
	}

	return fen, moves, nil
}
