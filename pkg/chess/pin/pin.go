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

// Package pin implements absolute pin detection via x-ray sliding
// attacks: a piece is pinned if removing it would expose its own king to
// a slider attack along the same ray.
package pin

import (
	"github.com/zmeadows/feldspar/pkg/chess/bitboard"
	"github.com/zmeadows/feldspar/pkg/chess/move/attacks"
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
)

// board is the subset of chess.Board's interface the pin finder needs;
// declared locally so this package has no dependency on the chess
// package (which itself depends on pin).
type board interface {
	PieceBB(c piece.Color, t piece.Type) bitboard.Board
	OccupiedBy(c piece.Color) bitboard.Board
	Occupied() bitboard.Board
	KingSquare(c piece.Color) square.Square
}

// Finder holds, for the side to move, every absolutely pinned piece and
// the ray each is constrained to move along.
type Finder struct {
	diagonalConstraint    [square.N]bitboard.Board
	nondiagonalConstraint [square.N]bitboard.Board

	diagonally    bitboard.Board
	nondiagonally bitboard.Board
}

// Update recomputes the pin sets for moving, given the current board.
// It must be called once per node before the pin finder is queried.
func (f *Finder) Update(moving piece.Color, b board) {
	f.diagonally = 0
	f.nondiagonally = 0

	opponent := moving.Other()
	occ := b.Occupied()
	friendly := b.OccupiedBy(moving)
	king := b.KingSquare(moving)

	opRQ := b.PieceBB(opponent, piece.Rook) | b.PieceBB(opponent, piece.Queen)
	for pinners := attacks.XrayRook(occ, friendly, king) & opRQ; pinners != 0; {
		pinner := pinners.Pop()
		ray := attacks.RayBetween(king, pinner)
		pinned := ray & friendly
		sq := pinned.FirstOne()

		f.nondiagonalConstraint[sq] = ray | bitboard.Squares[pinner]
		f.nondiagonally |= pinned
	}

	opBQ := b.PieceBB(opponent, piece.Bishop) | b.PieceBB(opponent, piece.Queen)
	for pinners := attacks.XrayBishop(occ, friendly, king) & opBQ; pinners != 0; {
		pinner := pinners.Pop()
		ray := attacks.RayBetween(king, pinner)
		pinned := ray & friendly
		sq := pinned.FirstOne()

		f.diagonalConstraint[sq] = ray | bitboard.Squares[pinner]
		f.diagonally |= pinned
	}
}

// PinnedDiagonally returns every piece absolutely pinned along a
// diagonal (by a bishop or queen).
func (f *Finder) PinnedDiagonally() bitboard.Board {
	return f.diagonally
}

// PinnedNonDiagonally returns every piece absolutely pinned along a
// rank or file (by a rook or queen).
func (f *Finder) PinnedNonDiagonally() bitboard.Board {
	return f.nondiagonally
}

// Pinned returns every absolutely pinned piece.
func (f *Finder) Pinned() bitboard.Board {
	return f.diagonally | f.nondiagonally
}

// DiagonalConstraint returns the squares a diagonally-pinned piece on sq
// may legally move to (the pin ray, including the pinner's square).
func (f *Finder) DiagonalConstraint(sq square.Square) bitboard.Board {
	return f.diagonalConstraint[sq]
}

// NonDiagonalConstraint is DiagonalConstraint's rank/file counterpart.
func (f *Finder) NonDiagonalConstraint(sq square.Square) bitboard.Board {
	return f.nondiagonalConstraint[sq]
}
