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
	"math/bits"

	"github.com/zmeadows/feldspar/pkg/chess/bitboard"
	"github.com/zmeadows/feldspar/pkg/chess/square"
)

// Direction identifies one of the eight compass rays a sliding piece can
// move along.
type Direction int

// The eight ray directions. The positive directions are those along
// which square index increases (Rook/Queen unmake uses the lowest set
// bit as the nearest blocker); the negative directions decrease it.
const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// indexIncreasing reports whether square index increases as a slider
// moves away from the origin along dir, given this package's a8=0/h1=63
// numbering (North decreases index). Along such a ray the nearest
// blocker is the lowest set bit; along the opposite rays it is the
// highest set bit.
func (d Direction) indexIncreasing() bool {
	switch d {
	case South, East, SouthEast, SouthWest:
		return true
	default:
		return false
	}
}

// Ray holds, for every square, every square reachable in that direction
// on an empty board.
var Ray [8][square.N]bitboard.Board

// rayBetween[a][b] holds the open squares strictly between a and b when
// they are collinear (file, rank, or diagonal); otherwise empty.
var rayBetween [square.N][square.N]bitboard.Board

var directionDeltas = map[Direction][2]int{
	North:     {0, 1},
	South:     {0, -1},
	East:      {1, 0},
	West:      {-1, 0},
	NorthEast: {1, 1},
	NorthWest: {-1, 1},
	SouthEast: {1, -1},
	SouthWest: {-1, -1},
}

func init() {
	for s := 0; s < square.N; s++ {
		sq := square.Square(s)
		for dir, delta := range directionDeltas {
			f, r := int(sq.File()), int(sq.Rank())
			var ray bitboard.Board
			for {
				f += delta[0]
				r += delta[1]
				if f < 0 || f > 7 || r < 0 || r > 7 {
					break
				}
				ray |= bitboard.Squares[square.New(square.File(f), square.Rank(r))]
			}
			Ray[dir][s] = ray
		}
	}

	for a := 0; a < square.N; a++ {
		for dir := range directionDeltas {
			ray := Ray[dir][a]
			for ray != 0 {
				b := ray.FirstOne()
				ray &= ray - 1

				// the squares strictly between a and b along dir are the
				// ray from a up to (excluding) b, XOR the ray from b
				// onwards (which includes b and beyond).
				rayBetween[a][int(b)] = Ray[dir][a] &^ Ray[dir][int(b)] &^ bitboard.Squares[b]
			}
		}
	}
}

// RayBetween returns the open squares strictly between a and b when they
// are collinear (empty otherwise, including when a == b).
func RayBetween(a, b square.Square) bitboard.Board {
	return rayBetween[a][b]
}

// slide computes the attack set of a slider on sq along the rays in dirs,
// given the occupancy occ, using the classical ray technique: intersect
// the empty-board ray with occ, find the nearest blocker, and XOR away
// the ray continuing past it.
func slide(sq square.Square, occ bitboard.Board, dirs []Direction) bitboard.Board {
	var attacks bitboard.Board
	for _, dir := range dirs {
		ray := Ray[dir][sq]
		attacks |= ray

		blockers := ray & occ
		if blockers == 0 {
			continue
		}

		var blocker square.Square
		if dir.indexIncreasing() {
			blocker = blockers.FirstOne()
		} else {
			blocker = square.Square(63 - bits.LeadingZeros64(uint64(blockers)))
		}

		attacks &^= Ray[dir][blocker]
	}
	return attacks
}

var bishopDirs = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
var rookDirs = []Direction{North, South, East, West}

// Bishop returns the attack bitboard of a bishop on sq given blockers.
func Bishop(sq square.Square, blockers bitboard.Board) bitboard.Board {
	return slide(sq, blockers, bishopDirs)
}

// Rook returns the attack bitboard of a rook on sq given blockers.
func Rook(sq square.Square, blockers bitboard.Board) bitboard.Board {
	return slide(sq, blockers, rookDirs)
}

// Queen returns the attack bitboard of a queen on sq given blockers.
func Queen(sq square.Square, blockers bitboard.Board) bitboard.Board {
	return Rook(sq, blockers) | Bishop(sq, blockers)
}

// XrayRook returns the squares a rook on sq would see through the first
// friendly blocker, given the real occupancy and the friendly occupancy.
// Used by the pin finder to find pinners behind a single friendly piece.
func XrayRook(occ, friendly bitboard.Board, sq square.Square) bitboard.Board {
	attacks := Rook(sq, occ)
	blockers := attacks & friendly
	return attacks ^ Rook(sq, occ^blockers)
}

// XrayBishop is XrayRook's diagonal counterpart.
func XrayBishop(occ, friendly bitboard.Board, sq square.Square) bitboard.Board {
	attacks := Bishop(sq, occ)
	blockers := attacks & friendly
	return attacks ^ Bishop(sq, occ^blockers)
}
