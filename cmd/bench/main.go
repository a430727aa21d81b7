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

// Command bench runs a fixed search/perft benchmark suite, an optional
// self-play hash-consistency stress test, and an optional opening-book
// variation pass. It is peripheral tooling, kept entirely separate from
// the UCI engine binary.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/zmeadows/feldspar/internal/display"
	"github.com/zmeadows/feldspar/pkg/chess"
	"github.com/zmeadows/feldspar/pkg/chess/move"
	"github.com/zmeadows/feldspar/pkg/formats/pgn"
	"github.com/zmeadows/feldspar/pkg/search"
)

func main() {
	var (
		configPath = flag.String("config", "", "yaml file describing the benchmark suite (default: built-in suite)")
		bookPath   = flag.String("book", "", "PGN opening book to vary start positions from")
		verifyPGN  = flag.Bool("verify-pgn", false, "cross-check the opening book against a second PGN parser")
		perftDepth = flag.Int("perft", 0, "run perft to this depth on every suite position instead of searching")
		selfplay   = flag.Int("selfplay", 0, "play N random-legal-move games, asserting the maintained hash every ply")
		hashMB     = flag.Int("hash", 16, "transposition table size in megabytes")
	)
	flag.Parse()

	if *selfplay > 0 {
		runSelfplay(*selfplay)
		return
	}

	cfg := defaultSuite
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bench:", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if *bookPath != "" {
		book, err := pgn.LoadBook(*bookPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bench:", err)
			os.Exit(1)
		}

		if *verifyPGN {
			if err := pgn.VerifyCount(*bookPath, len(book)); err != nil {
				fmt.Fprintln(os.Stderr, "bench:", err)
				os.Exit(1)
			}
			fmt.Println("bench: pgn parsers agree on game count")
		}

		cfg.Positions = book
	}

	if *perftDepth > 0 {
		runPerft(cfg.Positions, *perftDepth)
		return
	}

	runSearch(cfg.Positions, cfg.Depth, *hashMB)
}

func runPerft(positions []string, depth int) {
	bar := progressbar.NewOptions(len(positions),
		progressbar.OptionSetDescription("perft"),
		progressbar.OptionShowCount(),
	)

	var total int
	start := time.Now()

	for _, fen := range positions {
		pos, err := chess.ParseFEN(fen)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bench:", err)
			os.Exit(1)
		}

		total += chess.Perft(pos, depth)
		_ = bar.Add(1)
	}

	elapsed := time.Since(start)
	fmt.Printf("\nbench: %d nodes in %s (%.0f nps)\n", total, elapsed, float64(total)/elapsed.Seconds())
}

func runSearch(positions []string, depth, hashMB int) {
	bar := progressbar.NewOptions(len(positions),
		progressbar.OptionSetDescription("search"),
		progressbar.OptionShowCount(),
	)

	var totalNodes int
	start := time.Now()

	for _, fen := range positions {
		var lastReport search.Report
		ctx := search.NewContext(func(r search.Report) { lastReport = r }, hashMB)
		if err := ctx.SetPosition(fen, nil); err != nil {
			fmt.Fprintln(os.Stderr, "bench:", err)
			os.Exit(1)
		}

		pv, score, err := ctx.Search(search.Limits{Depth: depth, Nodes: math.MaxInt, Infinite: true})
		if err != nil {
			fmt.Fprintln(os.Stderr, "bench:", err)
			os.Exit(1)
		}

		totalNodes += lastReport.Nodes
		fmt.Printf("\n%s\nbestmove %s score %d\n", display.Board(mustParseFEN(fen)), pv.Move(0), score)
		_ = bar.Add(1)
	}

	elapsed := time.Since(start)
	fmt.Printf("\nbench: search done in %s, %d nodes\n", elapsed, totalNodes)
}

func mustParseFEN(fen string) *chess.Position {
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// runSelfplay implements spec scenario 5: play n random-legal-move
// games of at most 400 plies each (a game ends earlier on checkmate or
// stalemate; other draws are not detected), asserting at every ply that the incrementally
// maintained Zobrist hash matches a hash freshly recomputed from the
// position's own FEN.
func runSelfplay(n int) {
	rng := rand.New(rand.NewSource(1))

	bar := progressbar.NewOptions(n,
		progressbar.OptionSetDescription("selfplay"),
		progressbar.OptionShowCount(),
	)

	var totalPlies int

	for game := 0; game < n; game++ {
		pos, err := chess.ParseFEN(chess.StartFEN)
		if err != nil {
			panic(err)
		}

		for ply := 0; ply < 400; ply++ {
			if !playRandomMove(pos, rng) {
				break // game over: checkmate or stalemate
			}

			fresh, err := chess.ParseFEN(pos.FEN())
			if err != nil {
				fmt.Fprintf(os.Stderr, "selfplay: re-parsing own FEN failed: %v\n", err)
				os.Exit(1)
			}

			if fresh.Hash != pos.Hash {
				fmt.Fprintf(os.Stderr,
					"selfplay: hash mismatch at game %d ply %d: maintained %#x, recomputed %#x\nfen: %s\n",
					game, ply, pos.Hash, fresh.Hash, pos.FEN())
				os.Exit(1)
			}

			totalPlies++
		}

		_ = bar.Add(1)
	}

	fmt.Printf("\nselfplay: %d games, %d plies, no hash mismatch\n", n, totalPlies)
}

// playRandomMove makes a uniformly random legal move on pos and reports
// whether a move was available; false means the game has ended in
// checkmate or stalemate.
func playRandomMove(pos *chess.Position, rng *rand.Rand) bool {
	var gen chess.Generator
	var list move.List
	gen.Generate(pos, false, &list)

	if list.Len() == 0 {
		return false
	}

	m := list.At(rng.Intn(list.Len()))
	pos.Make(m)
	return true
}
