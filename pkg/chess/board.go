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

// Package chess implements a bitboard chess position: the board itself,
// move make/unmake with incremental Zobrist hashing, legal move
// generation, FEN parsing, and perft counting.
package chess

import (
	"strings"

	"github.com/zmeadows/feldspar/pkg/chess/move/attacks"
	"github.com/zmeadows/feldspar/pkg/chess/bitboard"
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
)

// Board holds the raw piece placement of a position: twelve piece
// bitboards (indexed by type and color), two occupancy bitboards, and a
// mailbox for constant-time piece_at queries. Board carries no state
// beyond placement; side to move, castling rights, etc. live on Position.
type Board struct {
	// Piece holds one bitboard per (PieceType, Color) pair. Index 0
	// (piece.NoType) is unused.
	Piece [piece.TypeN][piece.ColorN]bitboard.Board

	// Color holds the aggregate occupancy of each color.
	Color [piece.ColorN]bitboard.Board

	// Mailbox maps each square to the piece occupying it (or NoPiece).
	Mailbox [square.N]piece.Piece
}

// PieceBB returns the bitboard of color c's pieces of type t.
func (b *Board) PieceBB(c piece.Color, t piece.Type) bitboard.Board {
	return b.Piece[t][c]
}

// OccupiedBy returns the aggregate occupancy of color c.
func (b *Board) OccupiedBy(c piece.Color) bitboard.Board {
	return b.Color[c]
}

// Occupied returns the aggregate occupancy of both colors.
func (b *Board) Occupied() bitboard.Board {
	return b.Color[piece.White] | b.Color[piece.Black]
}

// Unoccupied returns the complement of Occupied.
func (b *Board) Unoccupied() bitboard.Board {
	return ^b.Occupied()
}

// PieceAt returns the piece occupying sq, or piece.NoPiece if empty.
func (b *Board) PieceAt(sq square.Square) piece.Piece {
	return b.Mailbox[sq]
}

// KingSquare returns the square of color c's king.
func (b *Board) KingSquare(c piece.Color) square.Square {
	return b.Piece[piece.King][c].FirstOne()
}

// FillSquare places p on sq, updating the piece bitboards, the
// occupancy bitboards, and the mailbox. sq must be empty.
func (b *Board) FillSquare(sq square.Square, p piece.Piece) {
	b.Piece[p.Type()][p.Color()].Set(sq)
	b.Color[p.Color()].Set(sq)
	b.Mailbox[sq] = p
}

// ClearSquare empties sq, which must currently hold p.
func (b *Board) ClearSquare(sq square.Square, p piece.Piece) {
	b.Piece[p.Type()][p.Color()].Unset(sq)
	b.Color[p.Color()].Unset(sq)
	b.Mailbox[sq] = piece.NoPiece
}

// MoveSquare relocates p from one square to another.
func (b *Board) MoveSquare(from, to square.Square, p piece.Piece) {
	b.ClearSquare(from, p)
	b.FillSquare(to, p)
}

// Attackers returns the set of byColor's pieces attacking sq, given the
// real board occupancy.
func (b *Board) Attackers(sq square.Square, byColor piece.Color) bitboard.Board {
	occ := b.Occupied()

	pawns := b.Piece[piece.Pawn][byColor] & attacks.Pawn[byColor.Other()][sq]
	knights := b.Piece[piece.Knight][byColor] & attacks.Knight[sq]
	king := b.Piece[piece.King][byColor] & attacks.King[sq]

	bishopsQueens := b.Piece[piece.Bishop][byColor] | b.Piece[piece.Queen][byColor]
	rooksQueens := b.Piece[piece.Rook][byColor] | b.Piece[piece.Queen][byColor]

	diagonal := attacks.Bishop(sq, occ) & bishopsQueens
	straight := attacks.Rook(sq, occ) & rooksQueens

	return pawns | knights | king | diagonal | straight
}

// Attacked returns the union of every attack pattern of byColor's
// pieces. When removeDefenderKing is true, the opposing king (i.e. the
// color not equal to byColor) is removed from occupancy first, so that
// squares "behind" the defending king along a check ray are correctly
// reported as attacked - the king may not step backward out of a check.
func (b *Board) Attacked(byColor piece.Color, removeDefenderKing bool) bitboard.Board {
	occ := b.Occupied()
	if removeDefenderKing {
		occ &^= b.Piece[piece.King][byColor.Other()]
	}

	var attacked bitboard.Board

	pawns := b.Piece[piece.Pawn][byColor]
	for p := pawns; p != 0; {
		attacked |= attacks.Pawn[byColor][p.Pop()]
	}

	for n := b.Piece[piece.Knight][byColor]; n != 0; {
		attacked |= attacks.Knight[n.Pop()]
	}

	for k := b.Piece[piece.King][byColor]; k != 0; {
		attacked |= attacks.King[k.Pop()]
	}

	bishopsQueens := b.Piece[piece.Bishop][byColor] | b.Piece[piece.Queen][byColor]
	for s := bishopsQueens; s != 0; {
		attacked |= attacks.Bishop(s.Pop(), occ)
	}

	rooksQueens := b.Piece[piece.Rook][byColor] | b.Piece[piece.Queen][byColor]
	for s := rooksQueens; s != 0; {
		attacked |= attacks.Rook(s.Pop(), occ)
	}

	return attacked
}

// String renders the board as an 8x8 ASCII diagram, one rank per line,
// rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for sq := 0; sq < square.N; sq++ {
		p := b.Mailbox[sq]
		if p == piece.NoPiece {
			sb.WriteByte('.')
		} else {
			sb.WriteString(p.String())
		}

		if square.Square(sq).File() == square.FileH {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}
