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

import (
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
)

// Files holds the file mask for every square.File, indexed by file.
var Files = [square.FileN]Board{
	square.FileA: FileA,
	square.FileB: FileB,
	square.FileC: FileC,
	square.FileD: FileD,
	square.FileE: FileE,
	square.FileF: FileF,
	square.FileG: FileG,
	square.FileH: FileH,
}

// Ranks holds the rank mask for every square.Rank, indexed by rank.
var Ranks = [square.RankN]Board{
	square.Rank1: Rank1,
	square.Rank2: Rank2,
	square.Rank3: Rank3,
	square.Rank4: Rank4,
	square.Rank5: Rank5,
	square.Rank6: Rank6,
	square.Rank7: Rank7,
	square.Rank8: Rank8,
}

// KingAreas holds the squares considered part of the king's safety zone
// for every color and king square: the king's own attack set plus its
// own square, extended towards the back rank when the king sits on the
// back two ranks so the zone stays nine-plus squares wide.
var KingAreas [piece.ColorN][square.N]Board

func init() {
	for s := 0; s < square.N; s++ {
		sq := square.Square(s)
		zone := Squares[sq]
		zone |= zone.East() | zone.West()
		zone |= zone.North() | zone.South()
		zone |= zone

		KingAreas[piece.White][sq] = zone
		KingAreas[piece.Black][sq] = zone

		switch sq.Rank() {
		case square.Rank1:
			KingAreas[piece.White][sq] |= zone.North()
		case square.Rank2:
			KingAreas[piece.White][sq] |= zone.North().North() &^ zone
		case square.Rank8:
			KingAreas[piece.Black][sq] |= zone.South()
		case square.Rank7:
			KingAreas[piece.Black][sq] |= zone.South().South() &^ zone
		}
	}
}
