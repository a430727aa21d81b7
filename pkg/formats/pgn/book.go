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

// Package pgn reads a multi-game PGN opening book and returns varied
// start positions for cmd/bench, pairing two independent parsers
// (notnil/chess and freeeve/pgn) so a mismatch between them on the same
// file is itself a useful signal. pkg/chess never imports this package:
// opening books are a benchmarking concern, not a core one.
package pgn

import (
	"fmt"
	"io"
	"os"

	"github.com/notnil/chess"
)

// Book is an ordered set of FEN starting positions drawn from a PGN
// opening book, one per game, taken at BookPly half-moves deep (or at
// the end of the game's mainline if it's shorter).
type Book []string

// BookPly is how many half-moves into each game's mainline the
// benchmark start position is sampled from.
const BookPly = 8

// LoadBook reads every game in the PGN file at path and returns the FEN
// of each game's position after BookPly half-moves.
func LoadBook(path string) (Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBook(f)
}

func readBook(r io.Reader) (Book, error) {
	scanner := chess.NewScanner(r)

	var book Book
	for scanner.Scan() {
		game := scanner.Next()
		if game == nil {
			continue
		}

		positions := game.Positions()
		ply := BookPly
		if ply >= len(positions) {
			ply = len(positions) - 1
		}
		if ply < 0 {
			continue
		}

		book = append(book, positions[ply].String())
	}

	if len(book) == 0 {
		return nil, fmt.Errorf("pgn: no games found in opening book")
	}

	return book, nil
}
