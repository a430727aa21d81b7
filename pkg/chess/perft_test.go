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

package chess_test

import (
	"testing"

	"github.com/zmeadows/feldspar/pkg/chess"
)

func perft(t *testing.T, fen string, depth, nodes int) {
	t.Helper()

	pos, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}

	if n := chess.Perft(pos, depth); n != nodes {
		t.Errorf("perft(%q, %d) = %d, want %d", fen, depth, n, nodes)
	}
}

func TestPerftShallow(t *testing.T) {
	// cheap enough to run on every invocation: the starting position
	// at low depth, and the opening line from scenario 3.
	perft(t, chess.StartFEN, 1, 20)
	perft(t, chess.StartFEN, 2, 400)
	perft(t, chess.StartFEN, 3, 8902)
	perft(t, chess.StartFEN, 4, 197281)

	pos, err := chess.ParseFEN(chess.StartFEN)
	if err != nil {
		t.Fatal(err)
	}

	for _, uci := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5"} {
		m, err := pos.ParseMove(uci)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", uci, err)
		}
		pos.Make(m)
	}

	if n := chess.Perft(pos, 3); n != 9345 {
		t.Errorf("perft after e2e4 e7e5 g1f3 b8c6 f1b5, depth 3 = %d, want 9345", n)
	}
}

// TestPerftDeep reproduces the reference node counts at the full depths
// used to validate move generators; it takes tens of seconds to minutes
// and is skipped under -short.
func TestPerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in -short mode")
	}

	perft(t, chess.StartFEN, 6, 119060324)
	perft(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 5, 193690690)
}
