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

package square

import "fmt"

// Square identifies one of the 64 squares of a chessboard. Index 0 is a8
// and index 63 is h1: squares increase left to right, then top to bottom,
// so that North is a decrease in index and South is an increase.
type Square int

// None is the sentinel value representing the absence of a square.
const None Square = -1

// N is the number of squares on a board.
const N = 64

// Square constants for the first square of each rank, a8 through a1.
const (
	A8 Square = 8 * iota
	A7
	A6
	A5
	A4
	A3
	A2
	A1
)

// Corner and castling-relevant square constants referenced by name
// elsewhere (castling rook squares, king start squares).
const (
	B8 = A8 + 1
	H8 = A8 + 7
	E8 = A8 + 4
	C8 = A8 + 2
	F8 = A8 + 5
	G8 = A8 + 6
	D8 = A8 + 3

	B1 = A1 + 1
	H1 = A1 + 7
	E1 = A1 + 4
	C1 = A1 + 2
	F1 = A1 + 5
	G1 = A1 + 6
	D1 = A1 + 3
)

// New creates a Square from a file and rank (rank 0 = rank 1, file 0 = a).
func New(f File, r Rank) Square {
	return Square((7-int(r))*8 + int(f))
}

// NewFromString parses a Square from its algebraic notation, e.g. "e4".
func NewFromString(s string) Square {
	if s == "-" {
		return None
	}
	if len(s) != 2 {
		panic("square: invalid square string " + s)
	}
	return New(fileFrom(string(s[0])), Rank(s[1]-'1'))
}

// File returns the file the square lies on.
func (s Square) File() File {
	return File(int(s) % 8)
}

// Rank returns the rank the square lies on (0 = rank 1).
func (s Square) Rank() Rank {
	return Rank(7 - int(s)/8)
}

// String converts the Square into its algebraic notation.
func (s Square) String() string {
	if s == None {
		return "-"
	}
	return fmt.Sprintf("%s%d", s.File(), s.Rank()+1)
}
