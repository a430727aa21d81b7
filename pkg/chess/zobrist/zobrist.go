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

// Package zobrist provides the pseudo-random keys used to incrementally
// maintain a Zobrist hash fingerprint of a chess position.
package zobrist

import (
	"github.com/zmeadows/feldspar/internal/util"
	"github.com/zmeadows/feldspar/pkg/chess/move/castling"
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
)

// PieceSquare holds a random key for every (piece, square) combination.
// Pieces are indexed by piece.Piece so the array has some unused slots
// corresponding to piece.NoPiece and the gap between white and black
// piece values.
var PieceSquare [piece.N][square.N]uint64

// Castling holds a random key for every possible castling.Rights value.
var Castling [castling.N]uint64

// EnPassantFile holds a random key for every file an en-passant target
// square can lie on.
var EnPassantFile [square.FileN]uint64

// SideToMove is XORed in whenever it is Black's turn to move.
var SideToMove uint64

// seed is used to deterministically generate the key tables so that
// compiled binaries always hash the same position identically; the
// value is arbitrary, taken from Stockfish's own table generator.
const seed = 1070372

func init() {
	var prng util.PRNG
	prng.Seed(seed)

	for p := 0; p < piece.N; p++ {
		for s := 0; s < square.N; s++ {
			PieceSquare[p][s] = prng.Uint64()
		}
	}

	for c := 0; c < castling.N; c++ {
		Castling[c] = prng.Uint64()
	}

	for f := 0; f < square.FileN; f++ {
		EnPassantFile[f] = prng.Uint64()
	}

	SideToMove = prng.Uint64()
}
