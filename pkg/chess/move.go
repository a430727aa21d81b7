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

package chess

import (
	"github.com/zmeadows/feldspar/pkg/chess/bitboard"
	"github.com/zmeadows/feldspar/pkg/chess/move"
	"github.com/zmeadows/feldspar/pkg/chess/move/attacks"
	"github.com/zmeadows/feldspar/pkg/chess/move/castling"
	"github.com/zmeadows/feldspar/pkg/chess/pin"
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
)

// Generator produces legal moves for a Position. It owns a pin.Finder so
// that consecutive calls in a search tree don't re-allocate one; a
// single Generator must not be shared between goroutines.
type Generator struct {
	pins pin.Finder
}

// Generate fills list with every legal move available to the side to
// move. When capturesOnly is true, only captures are generated (including
// en-passant captures and capturing promotions; non-capturing promotions
// are left out), as used by quiescence search.
func (g *Generator) Generate(p *Position, capturesOnly bool, list *move.List) {
	list.Clear()

	us := p.SideToMove
	them := us.Other()

	occ := p.Occupied()
	friendly := p.OccupiedBy(us)
	enemy := p.OccupiedBy(them)

	kingSq := p.KingSquare(us)
	checkers := p.Attackers(kingSq, them)
	checkCount := checkers.Count()

	seenByEnemy := p.Attacked(them, true)

	g.pins.Update(us, p)

	var captureMask, quietMask bitboard.Board
	switch checkCount {
	case 0:
		captureMask = enemy
		quietMask = ^occ
	case 1:
		checkerSq := checkers.FirstOne()
		captureMask = checkers
		quietMask = attacks.RayBetween(kingSq, checkerSq)
	}

	g.generateKingMoves(p, list, kingSq, friendly, enemy, seenByEnemy, capturesOnly)

	if checkCount == 2 {
		return
	}

	if checkCount == 0 && !capturesOnly {
		g.generateCastling(p, list, occ, seenByEnemy)
	}

	g.generatePieceMoves(p, list, piece.Knight, friendly, captureMask, quietMask, occ, enemy, capturesOnly)
	g.generatePieceMoves(p, list, piece.Bishop, friendly, captureMask, quietMask, occ, enemy, capturesOnly)
	g.generatePieceMoves(p, list, piece.Rook, friendly, captureMask, quietMask, occ, enemy, capturesOnly)
	g.generatePieceMoves(p, list, piece.Queen, friendly, captureMask, quietMask, occ, enemy, capturesOnly)

	g.generatePawnMoves(p, list, captureMask, quietMask, occ, enemy, capturesOnly)
}

func (g *Generator) generateKingMoves(
	p *Position, list *move.List,
	kingSq square.Square, friendly, enemy, seenByEnemy bitboard.Board,
	capturesOnly bool,
) {
	targets := attacks.King[kingSq] &^ friendly &^ seenByEnemy
	if capturesOnly {
		targets &= enemy
	}

	for targets != bitboard.Empty {
		to := targets.Pop()
		if enemy.IsSet(to) {
			captured := p.PieceAt(to).Type()
			list.Add(move.NewCapture(kingSq, to, move.Capture, piece.King, captured), captureScore(piece.King, captured))
		} else {
			list.Add(move.New(kingSq, to, move.Quiet, piece.King), quietScore)
		}
	}
}

func (g *Generator) generateCastling(p *Position, list *move.List, occ, seenByEnemy bitboard.Board) {
	us := p.SideToMove

	switch us {
	case piece.White:
		if p.CastlingRights&castling.WhiteK != 0 &&
			occ&bitboard.CastlingPathWhiteKingside == bitboard.Empty &&
			seenByEnemy&bitboard.CastlingSafeWhiteKingside == bitboard.Empty {
			list.Add(move.New(square.E1, square.G1, move.CastleKingside, piece.King), quietScore)
		}
		if p.CastlingRights&castling.WhiteQ != 0 &&
			occ&bitboard.CastlingPathWhiteQueenside == bitboard.Empty &&
			seenByEnemy&bitboard.CastlingSafeWhiteQueenside == bitboard.Empty {
			list.Add(move.New(square.E1, square.C1, move.CastleQueenside, piece.King), quietScore)
		}
	case piece.Black:
		if p.CastlingRights&castling.BlackK != 0 &&
			occ&bitboard.CastlingPathBlackKingside == bitboard.Empty &&
			seenByEnemy&bitboard.CastlingSafeBlackKingside == bitboard.Empty {
			list.Add(move.New(square.E8, square.G8, move.CastleKingside, piece.King), quietScore)
		}
		if p.CastlingRights&castling.BlackQ != 0 &&
			occ&bitboard.CastlingPathBlackQueenside == bitboard.Empty &&
			seenByEnemy&bitboard.CastlingSafeBlackQueenside == bitboard.Empty {
			list.Add(move.New(square.E8, square.C8, move.CastleQueenside, piece.King), quietScore)
		}
	}
}

func (g *Generator) generatePieceMoves(
	p *Position, list *move.List,
	t piece.Type,
	friendly, captureMask, quietMask, occ, enemy bitboard.Board,
	capturesOnly bool,
) {
	us := p.SideToMove

	legalMask := captureMask | quietMask
	if capturesOnly {
		legalMask = captureMask
	}

	for fromBB := p.PieceBB(us, t) & friendly; fromBB != bitboard.Empty; {
		from := fromBB.Pop()

		pinnedDiag := g.pins.PinnedDiagonally().IsSet(from)
		pinnedNondiag := g.pins.PinnedNonDiagonally().IsSet(from)

		if t == piece.Knight && (pinnedDiag || pinnedNondiag) {
			continue
		}

		var targets bitboard.Board
		switch t {
		case piece.Knight:
			targets = attacks.Knight[from]
		case piece.Bishop:
			targets = attacks.Bishop(from, occ)
		case piece.Rook:
			targets = attacks.Rook(from, occ)
		case piece.Queen:
			targets = attacks.Queen(from, occ)
		}

		if pinnedDiag {
			if t != piece.Bishop && t != piece.Queen {
				continue
			}
			targets &= g.pins.DiagonalConstraint(from)
		}
		if pinnedNondiag {
			if t != piece.Rook && t != piece.Queen {
				continue
			}
			targets &= g.pins.NonDiagonalConstraint(from)
		}

		targets &= legalMask

		for targets != bitboard.Empty {
			to := targets.Pop()
			if enemy.IsSet(to) {
				captured := p.PieceAt(to).Type()
				list.Add(move.NewCapture(from, to, move.Capture, t, captured), captureScore(t, captured))
			} else {
				list.Add(move.New(from, to, move.Quiet, t), quietScore)
			}
		}
	}
}

func (g *Generator) generatePawnMoves(
	p *Position, list *move.List,
	captureMask, quietMask, occ, enemy bitboard.Board,
	capturesOnly bool,
) {
	us := p.SideToMove
	them := us.Other()

	var forward square.Square = -8
	var startRank, promotionRank square.Rank = square.Rank2, square.Rank8
	if us == piece.Black {
		forward = 8
		startRank, promotionRank = square.Rank7, square.Rank1
	}

	for fromBB := p.PieceBB(us, piece.Pawn); fromBB != bitboard.Empty; {
		from := fromBB.Pop()

		pinnedDiag := g.pins.PinnedDiagonally().IsSet(from)
		pinnedNondiag := g.pins.PinnedNonDiagonally().IsSet(from)

		if !pinnedDiag && !capturesOnly {
			to := from + forward
			if to >= 0 && to < square.N && !occ.IsSet(to) &&
				(!pinnedNondiag || g.pins.NonDiagonalConstraint(from).IsSet(to)) {

				if quietMask.IsSet(to) {
					addPawnMove(list, from, to, move.Quiet, to.Rank() == promotionRank, false, piece.NoType)
				}

				if from.Rank() == startRank {
					to2 := to + forward
					if !occ.IsSet(to2) && quietMask.IsSet(to2) &&
						(!pinnedNondiag || g.pins.NonDiagonalConstraint(from).IsSet(to2)) {
						list.Add(move.New(from, to2, move.DoublePawnPush, piece.Pawn), quietScore)
					}
				}
			}
		}

		if !pinnedNondiag {
			for captures := attacks.Pawn[us][from]; captures != bitboard.Empty; {
				to := captures.Pop()
				if pinnedDiag && !g.pins.DiagonalConstraint(from).IsSet(to) {
					continue
				}

				if enemy.IsSet(to) && captureMask.IsSet(to) {
					addPawnMove(list, from, to, move.Capture, to.Rank() == promotionRank, true, p.PieceAt(to).Type())
					continue
				}

				if to == p.EnPassantTarget && p.EnPassantTarget != square.None {
					capturedSq := to + 8
					if us == piece.Black {
						capturedSq = to - 8
					}

					if captureMask.IsSet(capturedSq) && g.enPassantIsLegal(p, from, to, us, them) {
						list.Add(move.NewCapture(from, to, move.EnPassant, piece.Pawn, piece.Pawn), captureScore(piece.Pawn, piece.Pawn))
					}
				}
			}
		}
	}
}

// enPassantIsLegal handles the rare case where capturing en passant
// would expose the king to a rank attack once both pawns are removed
// from the fourth/fifth rank, which ordinary pin detection misses since
// neither pawn sits on the pinned piece's own square.
func (g *Generator) enPassantIsLegal(p *Position, from, to square.Square, us, them piece.Color) bool {
	capturedSq := to + 8
	if us == piece.Black {
		capturedSq = to - 8
	}

	kingSq := p.KingSquare(us)
	occAfter := p.Occupied() &^ bitboard.Squares[from] &^ bitboard.Squares[capturedSq] | bitboard.Squares[to]

	enemyRooksQueens := p.PieceBB(them, piece.Rook) | p.PieceBB(them, piece.Queen)
	return attacks.Rook(kingSq, occAfter)&enemyRooksQueens == bitboard.Empty
}

func addPawnMove(list *move.List, from, to square.Square, flag move.Flag, promotes, capture bool, captured piece.Type) {
	if !promotes {
		if capture {
			list.Add(move.NewCapture(from, to, flag, piece.Pawn, captured), captureScore(piece.Pawn, captured))
		} else {
			list.Add(move.New(from, to, flag, piece.Pawn), quietScore)
		}
		return
	}

	for _, promoted := range [4]piece.Type{piece.Queen, piece.Rook, piece.Bishop, piece.Knight} {
		list.Add(move.NewPromotion(from, to, piece.Pawn, promoted, captured), promotionScore(promoted))
	}
}

// Move-ordering scores: captures are ranked by victim piece type first
// and then by the cheaper attacker, using piece.Type indices rather than
// centipawn piece values; quiets get a flat constant; queen promotions
// are hoisted above all captures and underpromotions sit below them.
const quietScore int32 = 0

func captureScore(attacker, victim piece.Type) int32 {
	return 10_000 + int32(victim)*10 - int32(attacker)
}

func promotionScore(promoted piece.Type) int32 {
	if promoted == piece.Queen {
		return 20_000
	}
	return 1_000 + int32(promoted)
}
