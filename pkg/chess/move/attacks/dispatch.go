// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// Of returns the squares attacked by the given piece sitting on sq, given
// the occupancy occ. It dispatches to the leaper/slider tables above, and
// is used by evaluation code which only knows the moving piece.
func Of(p piece.Piece, sq square.Square, occ bitboard.Board) bitboard.Board {
	switch p.Type() {
	case piece.Pawn:
		return Pawn[p.Color()][sq]
	case piece.Knight:
		return Knight[sq]
	case piece.Bishop:
		return Bishop(sq, occ)
	case piece.Rook:
		return Rook(sq, occ)
	case piece.Queen:
		return Queen(sq, occ)
	case piece.King:
		return King[sq]
	default:
		return bitboard.Empty
	}
}

// PawnPush returns the squares in front of the given pawns, from the
// perspective of color us.
func PawnPush(pawns bitboard.Board, us piece.Color) bitboard.Board {
	if us == piece.White {
		return pawns.North()
	}
	return pawns.South()
}

// Pawns returns the squares attacked by the given pawns, from the
// perspective of color us.
func Pawns(pawns bitboard.Board, us piece.Color) bitboard.Board {
	advanced := PawnPush(pawns, us)
	return advanced.East() | advanced.West()
}
