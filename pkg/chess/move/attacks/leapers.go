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

package attacks

import (
	"github.com/zmeadows/feldspar/pkg/chess/bitboard"
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
)

// Knight holds the precomputed knight attack bitboard for every square.
var Knight [square.N]bitboard.Board

// King holds the precomputed king attack bitboard for every square.
var King [square.N]bitboard.Board

// Pawn holds the precomputed pawn attack (capture) bitboard for every
// square, indexed by the color of the pawn doing the attacking.
var Pawn [piece.ColorN][square.N]bitboard.Board

// knightDeltas and kingDeltas are (file, rank) offsets from a square.
var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for s := 0; s < square.N; s++ {
		sq := square.Square(s)
		f, r := int(sq.File()), int(sq.Rank())

		for _, d := range knightDeltas {
			Knight[s] |= squareFromDelta(f, r, d[0], d[1])
		}

		for _, d := range kingDeltas {
			King[s] |= squareFromDelta(f, r, d[0], d[1])
		}

		Pawn[piece.White][s] = squareFromDelta(f, r, -1, 1) | squareFromDelta(f, r, 1, 1)
		Pawn[piece.Black][s] = squareFromDelta(f, r, -1, -1) | squareFromDelta(f, r, 1, -1)
	}
}

// squareFromDelta returns the single-bit bitboard for (f+df, r+dr), or an
// empty bitboard if that square is off the board.
func squareFromDelta(f, r, df, dr int) bitboard.Board {
	nf, nr := f+df, r+dr
	if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
		return bitboard.Empty
	}
	return bitboard.Squares[square.New(square.File(nf), square.Rank(nr))]
}
