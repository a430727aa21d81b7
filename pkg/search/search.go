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

// Package search implements various functions used to search a
// position for the best move.
package search

import (
	"errors"
	stdtime "time"

	"github.com/zmeadows/feldspar/internal/util"
	"github.com/zmeadows/feldspar/pkg/chess"
	"github.com/zmeadows/feldspar/pkg/chess/move"
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
	"github.com/zmeadows/feldspar/pkg/search/eval"
	"github.com/zmeadows/feldspar/pkg/search/eval/classical"
	"github.com/zmeadows/feldspar/pkg/search/time"
	"github.com/zmeadows/feldspar/pkg/search/tt"
)

// MaxDepth is the maximum depth the search will ever be asked to reach,
// used to size per-ply buffers (killers, move lists) up front.
const MaxDepth = move.MaxDepth

// NewContext creates a new Context for a fresh game. report is called
// with a Report after every completed iterative-deepening iteration;
// hashMB sizes the transposition table in megabytes.
func NewContext(report func(Report), hashMB int) Context {
	return Context{
		Position: chess.NewGame(),
		tt:       tt.NewTable(hashMB),
		report:   report,
		stopped:  true,
	}
}

// Context stores various options, state, and debug variables regarding a
// particular search. During multiple searches on the same game, the
// internal Position should be switched out (see Context.Position), while
// a brand new Context should be used for different games so that the
// transposition table and history heuristics don't leak across them.
type Context struct {
	// search state
	Position *chess.Position
	tt       *tt.Table
	gen      chess.Generator
	lists    [MaxDepth]move.List

	depth   int
	stopped bool

	// move-ordering heuristics
	killers [MaxDepth][2]move.Move
	history [piece.ColorN][square.N][square.N]int32

	// stats and reporting
	stats  Stats
	report func(Report)

	// principal variation of the most recently completed iteration
	pv      move.Variation
	pvScore eval.Eval

	// search limits
	limits Limits
	time   time.Manager
}

// Search initializes the context for a new search and calls the main
// iterative deepening function. It checks if the position is illegal
// and cleans up the context after the search finishes.
func (search *Context) Search(limits Limits) (move.Variation, eval.Eval, error) {
	search.start(limits)
	defer search.Stop()

	// illegal position check: if the side that just moved is still in
	// check, its king could be captured, which should never happen
	pos := search.Position
	them := pos.SideToMove.Other()
	if pos.Attackers(pos.KingSquare(them), pos.SideToMove) != 0 {
		return move.Variation{}, eval.Inf, errors.New("search: position is illegal, side not to move is in check")
	}

	pv, score := search.iterativeDeepening()
	return pv, score, nil
}

// InProgress reports whether a search is in progress on the given context.
func (search *Context) InProgress() bool {
	return !search.stopped
}

// Stop stops any ongoing search on the given context. The main search
// function will immediately return after this function is called.
func (search *Context) Stop() {
	search.stopped = true
}

// ResizeTT resizes the context's transposition table to the given size
// in megabytes.
func (search *Context) ResizeTT(mbs int) {
	search.tt.Resize(mbs)
}

// start initializes search variables during the start of a search.
func (search *Context) start(limits Limits) {
	limits.Depth = util.Min(limits.Depth, MaxDepth)
	search.limits = limits

	search.stats = Stats{SearchStart: stdtime.Now()}
	search.tt.NewAge()

	search.time = newTimeManager(limits, search.Position.SideToMove)
	search.stopped = false
	search.time.GetDeadline()
}

// newTimeManager builds the time.Manager appropriate for the given
// limits: a MoveManager for a fixed move-time (or an effectively
// unbounded one for an infinite search), or a NormalManager that derives
// a budget from the clocks otherwise.
func newTimeManager(limits Limits, us piece.Color) time.Manager {
	switch {
	case limits.Infinite:
		return &time.MoveManager{Duration: 1 << 30}
	case limits.MoveTime != 0:
		return &time.MoveManager{Duration: limits.MoveTime}
	default:
		return &time.NormalManager{
			Us:        us,
			Time:      limits.Time,
			Increment: limits.Increment,
			MovesToGo: limits.MovesToGo,
		}
	}
}

// shouldStop checks the various limits provided for the search and
// reports if the search should be stopped at that moment.
func (search *Context) shouldStop() bool {
	switch {
	case search.stopped:
		// search already stopped, no checking necessary
		return true

	case search.stats.Nodes&2047 != 0, search.limits.Infinite:
		// only check once every 2048 nodes to prevent spending too
		// much time here; if search is infinite never stop early
		return false

	case search.stats.Nodes > search.limits.Nodes, search.time.Expired():
		search.Stop()
		return true

	default:
		return false
	}
}

// score returns the static evaluation of the current context's
// position, from the perspective of the side to move. The classical
// evaluator is used over the cheaper eval.PeSTO since its extra terms
// (pawn structure, mobility, king safety, threats) are worth the cost
// at typical search depths.
func (search *Context) score() eval.Eval {
	evaluator := classical.EfficientlyUpdatable{Board: &search.Position.Board}
	return evaluator.Accumulate(search.Position.SideToMove)
}

// draw returns a randomized draw score to prevent threefold-repetition
// blindness while searching.
func (search *Context) draw() eval.Eval {
	return eval.RandDraw(search.stats.Nodes)
}
