// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package search_test

import (
	"testing"

	"github.com/zmeadows/feldspar/pkg/chess"
	"github.com/zmeadows/feldspar/pkg/chess/move"
	"github.com/zmeadows/feldspar/pkg/search"
	"github.com/zmeadows/feldspar/pkg/search/eval"
	"github.com/zmeadows/feldspar/pkg/search/eval/classical"
)

// minimaxStatic returns the classical evaluator's score of pos from the
// perspective of the side to move, used as the leaf score for both
// brute-force minimax below and (indirectly, via the same evaluator) the
// real negamax search.
func minimaxStatic(pos *chess.Position) eval.Eval {
	e := classical.EfficientlyUpdatable{Board: &pos.Board}
	return e.Accumulate(pos.SideToMove)
}

// minimax is a plain, unpruned negamax-shaped minimax search kept purely
// as a test oracle: at shallow depth it must agree exactly with the
// alpha-beta-pruned, TT-accelerated search in Context.Search.
func minimax(pos *chess.Position, depth int) eval.Eval {
	if depth == 0 {
		return minimaxStatic(pos)
	}

	var gen chess.Generator
	var list move.List
	gen.Generate(pos, false, &list)

	if list.Len() == 0 {
		if pos.InCheck() {
			return -eval.Mate
		}
		return eval.Draw
	}

	best := -eval.Inf
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		pos.Make(m)
		score := -minimax(pos, depth-1)
		pos.Unmake(m)

		if score > best {
			best = score
		}
	}

	return best
}

func TestNegamaxMatchesMinimax(t *testing.T) {
	positions := []string{
		chess.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r1bq1rk1/ppp2ppp/2n2n2/2b1p3/2B1P3/2NP1N2/PPP2PPP/R1BQ1RK1 w - - 4 8",
	}

	const depth = 3

	for _, fen := range positions {
		pos, err := chess.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		want := minimax(pos, depth)

		ctx := search.NewContext(func(search.Report) {}, 1)
		if err := ctx.SetPosition(fen, nil); err != nil {
			t.Fatalf("SetPosition(%q): %v", fen, err)
		}

		_, got, err := ctx.Search(search.Limits{Depth: depth, Nodes: 1 << 30, Infinite: true})
		if err != nil {
			t.Fatalf("Search(%q): %v", fen, err)
		}

		if got != want {
			t.Errorf("%q: negamax = %d, minimax = %d", fen, got, want)
		}
	}
}
