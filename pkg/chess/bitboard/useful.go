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

package bitboard

import "github.com/zmeadows/feldspar/pkg/chess/square"

// Empty is the bitboard with no squares set.
const Empty Board = 0

// Universe is the bitboard with every square set.
const Universe Board = 0xffffffffffffffff

// File masks, one bit set per square on that file.
const (
	FileA Board = 0x0101010101010101 << iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank masks, one bit set per square on that rank. RankN is an octet
// starting from rank 8 (the lowest-indexed rank).
var (
	Rank8 Board = 0x00000000000000ff
	Rank7 Board = Rank8 << 8
	Rank6 Board = Rank7 << 8
	Rank5 Board = Rank6 << 8
	Rank4 Board = Rank5 << 8
	Rank3 Board = Rank4 << 8
	Rank2 Board = Rank3 << 8
	Rank1 Board = Rank2 << 8
)

// NotFileA and NotFileH guard against horizontal wraparound when shifting
// a bitboard east or west.
const (
	NotFileA = ^FileA
	NotFileH = ^FileH
)

// Squares holds a single-bit bitboard for every square, indexed by square.
var Squares = func() (squares [square.N]Board) {
	for s := 0; s < square.N; s++ {
		squares[s] = Board(1) << uint(s)
	}
	return squares
}()

// CastlingPathWhiteKingside/... are the occupancy-must-be-empty masks for
// each castling direction.
var (
	CastlingPathWhiteKingside  = Squares[square.F1] | Squares[square.G1]
	CastlingPathWhiteQueenside = Squares[square.B1] | Squares[square.C1] | Squares[square.D1]
	CastlingPathBlackKingside  = Squares[square.F8] | Squares[square.G8]
	CastlingPathBlackQueenside = Squares[square.B8] | Squares[square.C8] | Squares[square.D8]
)

// CastlingSafeWhiteKingside/... are the squares that must not be attacked
// for the corresponding castle to be legal (king start square included).
var (
	CastlingSafeWhiteKingside  = Squares[square.E1] | Squares[square.F1] | Squares[square.G1]
	CastlingSafeWhiteQueenside = Squares[square.E1] | Squares[square.D1] | Squares[square.C1]
	CastlingSafeBlackKingside  = Squares[square.E8] | Squares[square.F8] | Squares[square.G8]
	CastlingSafeBlackQueenside = Squares[square.E8] | Squares[square.D8] | Squares[square.C8]
)
