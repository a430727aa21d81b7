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
	"github.com/zmeadows/feldspar/pkg/chess/move/castling"
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
	"github.com/zmeadows/feldspar/pkg/chess/zobrist"
)

// Position is a Board together with everything else needed to make and
// unmake moves and to adjudicate a game: side to move, castling rights,
// the en-passant target square, the fifty-move clock, the full-move
// number, and an incrementally maintained Zobrist hash.
type Position struct {
	Board

	SideToMove      piece.Color
	CastlingRights  castling.Rights
	EnPassantTarget square.Square
	DrawClock       int
	FullMoves       int
	Hash            uint64

	history [move.MaxN]undoState
	ply     int
}

// undoState is everything Make mutates beyond the move itself, snapshot
// whole before every move and restored whole on Unmake.
type undoState struct {
	board           Board
	castlingRights  castling.Rights
	enPassantTarget square.Square
	drawClock       int
	fullMoves       int
	hash            uint64
}

// NewGame returns the Position at the start of a standard game.
func NewGame() *Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic("chess: invalid start fen: " + err.Error())
	}
	return p
}

func (p *Position) place(sq square.Square, pc piece.Piece) {
	p.FillSquare(sq, pc)
	p.Hash ^= zobrist.PieceSquare[pc][sq]
}

func (p *Position) remove(sq square.Square, pc piece.Piece) {
	p.ClearSquare(sq, pc)
	p.Hash ^= zobrist.PieceSquare[pc][sq]
}

func (p *Position) relocate(from, to square.Square, pc piece.Piece) {
	p.remove(from, pc)
	p.place(to, pc)
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.Checkers() != bitboard.Empty
}

// Checkers returns the set of enemy pieces currently attacking the side
// to move's king. This is computed on demand rather than cached on the
// Position: Board.Attackers is already a handful of bitboard ANDs, so a
// separate invalidation scheme would cost more than it saves.
func (p *Position) Checkers() bitboard.Board {
	us := p.SideToMove
	return p.Attackers(p.KingSquare(us), us.Other())
}

// IsFiftyMoveDraw reports whether the fifty-move rule entitles the side
// to move to claim a draw.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.DrawClock >= 100
}

// IsRepetition reports whether the current position has already
// occurred at least once earlier in the game, searching back only as
// far as the draw clock allows (a capture, pawn move, or loss of
// castling/en-passant rights makes the position unreachable again).
func (p *Position) IsRepetition() bool {
	limit := p.ply - p.DrawClock
	if limit < 0 {
		limit = 0
	}

	for i := p.ply - 2; i >= limit; i -= 2 {
		if p.history[i].hash == p.Hash {
			return true
		}
	}

	return false
}

// Make plays m, which must be legal in the current position.
func (p *Position) Make(m move.Move) {
	p.history[p.ply] = undoState{
		board:           p.Board,
		castlingRights:  p.CastlingRights,
		enPassantTarget: p.EnPassantTarget,
		drawClock:       p.DrawClock,
		fullMoves:       p.FullMoves,
		hash:            p.Hash,
	}
	p.ply++

	us := p.SideToMove
	them := us.Other()

	from, to := m.From(), m.To()
	movedType := m.MovedType()
	movedPiece := piece.New(movedType, us)

	if ep := p.EnPassantTarget; ep != square.None {
		p.Hash ^= zobrist.EnPassantFile[ep.File()]
	}
	p.EnPassantTarget = square.None

	switch {
	case m.IsEnPassant():
		capturedSq := to + 8
		if us == piece.Black {
			capturedSq = to - 8
		}
		p.remove(capturedSq, piece.New(piece.Pawn, them))
		p.relocate(from, to, movedPiece)

	case m.IsCastle():
		p.relocate(from, to, movedPiece)
		rook := castling.Rooks[to]
		p.relocate(rook.From, rook.To, rook.RookType)

	case m.IsPromotion():
		if m.IsCapture() {
			p.remove(to, piece.New(m.CapturedType(), them))
		}
		p.remove(from, movedPiece)
		p.place(to, piece.New(m.PromotedType(), us))

	case m.IsCapture():
		p.remove(to, piece.New(m.CapturedType(), them))
		p.relocate(from, to, movedPiece)

	default:
		p.relocate(from, to, movedPiece)
	}

	if m.IsDoublePawnPush() {
		var epSquare square.Square
		if us == piece.White {
			epSquare = to + 8
		} else {
			epSquare = to - 8
		}
		p.EnPassantTarget = epSquare
		p.Hash ^= zobrist.EnPassantFile[epSquare.File()]
	}

	if oldRights := p.CastlingRights; oldRights != castling.NoCasl {
		newRights := oldRights &^ (castling.RightUpdates[from] | castling.RightUpdates[to])
		if newRights != oldRights {
			p.Hash ^= zobrist.Castling[oldRights]
			p.CastlingRights = newRights
			p.Hash ^= zobrist.Castling[newRights]
		}
	}

	if movedType == piece.Pawn || m.IsCapture() {
		p.DrawClock = 0
	} else {
		p.DrawClock++
	}

	if us == piece.Black {
		p.FullMoves++
	}

	p.SideToMove = them
	p.Hash ^= zobrist.SideToMove
}

// MakeNull plays a null move: the side to move passes without moving a
// piece, used by null-move reduction to test whether a position is good
// even when the opponent is given a free tempo.
func (p *Position) MakeNull() {
	p.history[p.ply] = undoState{
		board:           p.Board,
		castlingRights:  p.CastlingRights,
		enPassantTarget: p.EnPassantTarget,
		drawClock:       p.DrawClock,
		fullMoves:       p.FullMoves,
		hash:            p.Hash,
	}
	p.ply++

	if ep := p.EnPassantTarget; ep != square.None {
		p.Hash ^= zobrist.EnPassantFile[ep.File()]
	}
	p.EnPassantTarget = square.None

	p.SideToMove = p.SideToMove.Other()
	p.Hash ^= zobrist.SideToMove
}

// UnmakeNull reverts the effect of the most recent call to MakeNull.
func (p *Position) UnmakeNull() {
	p.ply--
	s := p.history[p.ply]

	p.Board = s.board
	p.CastlingRights = s.castlingRights
	p.EnPassantTarget = s.enPassantTarget
	p.DrawClock = s.drawClock
	p.FullMoves = s.fullMoves
	p.Hash = s.hash

	p.SideToMove = p.SideToMove.Other()
}

// Unmake reverts the effect of the most recent call to Make. m is
// accepted for symmetry with Make but the restore itself is a full
// snapshot replay and does not need to inspect it.
func (p *Position) Unmake(move.Move) {
	p.ply--
	s := p.history[p.ply]

	p.Board = s.board
	p.CastlingRights = s.castlingRights
	p.EnPassantTarget = s.enPassantTarget
	p.DrawClock = s.drawClock
	p.FullMoves = s.fullMoves
	p.Hash = s.hash

	p.SideToMove = p.SideToMove.Other()
}
