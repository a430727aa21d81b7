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

// Package move declares types and constants pertaining to chess moves.
package move

import (
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
)

// Move represents a chess move packed into a single integer.
//
// Format: MSB -> LSB
// [21..19 captured piece.Type][18..16 moved piece.Type] \
// [15..12 Flag][11..6 from square.Square][5..0 to square.Square]
type Move uint32

// MaxN is a safe upper bound on the number of plies in a chess game, used
// to size per-game history buffers.
const MaxN = 1024

// Null is the "do nothing" sentinel move, the all-zero value. It is
// distinguishable from every real move because every real move has a
// non-zero moved piece type.
const Null Move = 0

const (
	toOffset       = 0
	fromOffset     = 6
	flagOffset     = 12
	movedOffset    = 16
	capturedOffset = 19

	toMask       = 0x3f << toOffset
	fromMask     = 0x3f << fromOffset
	flagMask     = 0xf << flagOffset
	movedMask    = 0x7 << movedOffset
	capturedMask = 0x7 << capturedOffset
)

// Flag distinguishes the sixteen kinds of move.
type Flag uint32

// The sixteen move flags. Bit 2 (value 4) set means the move is a
// capture; bit 3 (value 8) set means the move is a promotion.
const (
	Quiet Flag = iota
	DoublePawnPush
	CastleKingside
	CastleQueenside
	Capture
	EnPassant
	_
	_
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
	PromoteCaptureKnight
	PromoteCaptureBishop
	PromoteCaptureRook
	PromoteCaptureQueen
)

// promotionType maps a promotion flag to the resulting piece type.
var promotionType = [16]piece.Type{
	PromoteKnight:        piece.Knight,
	PromoteBishop:        piece.Bishop,
	PromoteRook:          piece.Rook,
	PromoteQueen:         piece.Queen,
	PromoteCaptureKnight: piece.Knight,
	PromoteCaptureBishop: piece.Bishop,
	PromoteCaptureRook:   piece.Rook,
	PromoteCaptureQueen:  piece.Queen,
}

// promotionFlag maps a promotion piece type to its quiet promotion flag;
// capturing variants are 4 higher.
func promotionFlag(t piece.Type, capture bool) Flag {
	var f Flag
	switch t {
	case piece.Knight:
		f = PromoteKnight
	case piece.Bishop:
		f = PromoteBishop
	case piece.Rook:
		f = PromoteRook
	case piece.Queen:
		f = PromoteQueen
	default:
		panic("move: invalid promotion piece type")
	}

	if capture {
		f += 4
	}

	return f
}

// New constructs a quiet move: no piece is captured.
func New(from, to square.Square, flag Flag, moved piece.Type) Move {
	return pack(from, to, flag, moved, piece.NoType)
}

// NewCapture constructs a capturing move.
func NewCapture(from, to square.Square, flag Flag, moved, captured piece.Type) Move {
	return pack(from, to, flag, moved, captured)
}

// NewPromotion constructs a (possibly capturing) promotion move.
func NewPromotion(from, to square.Square, moved, promoted, captured piece.Type) Move {
	flag := promotionFlag(promoted, captured != piece.NoType)
	return pack(from, to, flag, moved, captured)
}

func pack(from, to square.Square, flag Flag, moved, captured piece.Type) Move {
	return Move(to)<<toOffset |
		Move(from)<<fromOffset |
		Move(flag)<<flagOffset |
		Move(moved)<<movedOffset |
		Move(captured)<<capturedOffset
}

// From returns the move's source square.
func (m Move) From() square.Square {
	return square.Square((m & fromMask) >> fromOffset)
}

// To returns the move's target square.
func (m Move) To() square.Square {
	return square.Square((m & toMask) >> toOffset)
}

// FlagBits returns the move's raw flag bits.
func (m Move) FlagBits() Flag {
	return Flag((m & flagMask) >> flagOffset)
}

// MovedType returns the type of the piece being moved.
func (m Move) MovedType() piece.Type {
	return piece.Type((m & movedMask) >> movedOffset)
}

// CapturedType returns the type of the captured piece, or piece.NoType
// if the move is not a capture.
func (m Move) CapturedType() piece.Type {
	return piece.Type((m & capturedMask) >> capturedOffset)
}

// PromotedType returns the promoted-to piece type, or piece.NoType if
// the move is not a promotion.
func (m Move) PromotedType() piece.Type {
	return promotionType[m.FlagBits()]
}

// IsCapture reports whether the move captures a piece, including
// en-passant captures.
func (m Move) IsCapture() bool {
	return m.FlagBits()&Capture != 0
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.FlagBits()&PromoteKnight != 0
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.FlagBits() == EnPassant
}

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.FlagBits() == DoublePawnPush
}

// IsCastle reports whether the move castles, in either direction.
func (m Move) IsCastle() bool {
	f := m.FlagBits()
	return f == CastleKingside || f == CastleQueenside
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
// A quiet pawn move still resets the fifty-move clock.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// String converts a move to its long algebraic notation, e.g. "e2e4",
// "e1g1" (castling is encoded as a king move), "d7d8q" (promotion),
// "0000" (null move).
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.PromotedType().String()
	}

	return s
}
