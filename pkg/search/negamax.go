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

package search

import (
	"github.com/zmeadows/feldspar/internal/util"
	"github.com/zmeadows/feldspar/pkg/chess/move"
	"github.com/zmeadows/feldspar/pkg/search/eval"
	"github.com/zmeadows/feldspar/pkg/search/tt"
)

// nullMoveMinDepth is the shallowest depth at which null-move reduction
// is attempted; below it the savings don't outweigh the risk of missing
// zugzwang-only wins.
const nullMoveMinDepth = 3

// negamax is a simplified version of the minmax searching algorithm, which
// uses a single function for both the maximizing and minimizing players.
// This can be achieved because chess is a zero-sum game and one player's
// advantage is the other's disadvantage.
// https://www.chessprogramming.org/Negamax
//
// This function also implements alpha-beta pruning to reduce the amount of
// nodes that need to be searched, due to the fact that a single refutation
// is enough to mark a position as worse compared to an already found one.
// https://www.chessprogramming.org/Alpha-Beta
func (search *Context) negamax(plys, depth int, alpha, beta eval.Eval, pv *move.Variation) eval.Eval {
	search.stats.Nodes++

	pos := search.Position

	switch {
	case search.shouldStop():
		// some search limit has been breached
		// the return value doesn't matter since this search's result
		// will be trashed and the previous iteration's pv will be used
		return 0

	case plys > 0 && (pos.IsFiftyMoveDraw() || pos.IsRepetition()):
		// position is scored as drawn under the 50-move rule, or as soon
		// as it repeats an earlier position of the current line: a single
		// repetition is enough, a third occurrence is not awaited
		return search.draw()

	case depth <= 0, plys >= MaxDepth:
		// depth 0 reached, drop to quiescence search to prevent
		// the horizon effect from making the evaluation bad
		return search.quiescence(plys, alpha, beta)
	}

	// node properties
	isPVNode := beta-alpha != 1 // beta = alpha + 1 during PVS
	inCheck := pos.InCheck()

	// null-move reduction: skip our own move and search with a reduced
	// depth and a zero window at beta; if the position is
	// still good enough for the opponent even with a free move, this
	// node almost certainly fails high and can be pruned. Disabled
	// in check and at pv nodes, and below nullMoveMinDepth.
	if !isPVNode && !inCheck && depth >= nullMoveMinDepth && plys > 0 && beta < eval.WinInMaxPly {
		r := 3
		if depth > 6 {
			r = 4
		}

		pos.MakeNull()
		var childPV move.Variation
		nullEval := -search.negamax(plys+1, depth-1-r, -beta, -beta+1, &childPV)
		pos.UnmakeNull()

		if search.stopped {
			return 0
		}

		if nullEval >= beta {
			return beta
		}
	}

	// generate all moves
	list := &search.lists[plys]
	search.gen.Generate(pos, false, list)

	if list.Len() == 0 {
		// no legal moves, so some type of mate
		if inCheck {
			return eval.MatedIn(plys) // checkmate
		}
		return eval.Draw // stalemate
	}

	// keep track of the original value of alpha for determining whether
	// the score will act as an upper bound entry in the transposition table
	originalAlpha := alpha

	// keep track of best move and score
	bestMove := move.Null
	bestEval := -eval.Inf

	// check for transposition table hits
	if entry, hit := search.tt.Probe(pos.Hash); hit {
		// use pv move for move ordering in any case
		bestMove = entry.Move

		// only use entry if current node is not a pv node and
		// entry depth is >= current depth (not worse quality)
		if !isPVNode && int(entry.Depth) >= depth {
			search.stats.TTHits++
			value := entry.Value.Eval(plys)

			switch entry.Type {
			case tt.ExactEntry:
				return value
			case tt.LowerBound:
				alpha = util.Max(alpha, value)
			case tt.UpperBound:
				beta = util.Min(beta, value)
			}

			if alpha >= beta {
				return value // fail high
			}
		}
	}

	// move ordering: boost killers and history scores for the quiet
	// moves, then hint the tt move so that it is searched first
	search.orderMoves(plys, list)
	if bestMove != move.Null {
		list.HintFirst(bestMove)
	}

	for i := 0; i < list.Len(); i++ {
		var childPV move.Variation

		m := list.Pick(i)

		pos.Make(m)

		// Principal Variation Search, combined with late move reductions:
		// quiet moves searched late in a node are searched at a reduced
		// depth first since move ordering makes them unlikely to beat
		// alpha, with a full-depth re-search if they surprise us.

		var score eval.Eval

		reduction := 0
		if depth >= 3 && i >= 3 && !inCheck && !m.IsCapture() && !m.IsPromotion() {
			reduction = reductions[util.Min(depth, MaxDepth)][util.Min(i, 127)]
		}

		if !isPVNode || i > 0 {
			// null window, possibly reduced-depth search for non-pv nodes
			score = -search.negamax(plys+1, depth-1-reduction, -alpha-1, -alpha, &childPV)

			if reduction > 0 && score > alpha {
				// move beat alpha despite the reduction, re-search at
				// full depth to get an accurate score
				score = -search.negamax(plys+1, depth-1, -alpha-1, -alpha, &childPV)
			}
		}

		if isPVNode && ((score > alpha && score < beta) || i == 0) {
			// full window search for pv nodes
			score = -search.negamax(plys+1, depth-1, -beta, -alpha, &childPV)
		}

		pos.Unmake(m)

		// update score and bounds
		if score > bestEval {
			// better move found
			bestMove = m
			bestEval = score

			// check if move is new pv move
			if score > alpha {
				// new pv so alpha increases
				alpha = score

				// update parent pv
				pv.Update(m, childPV)

				if alpha >= beta {
					if !m.IsCapture() {
						search.storeKiller(plys, m)
						search.updateHistory(m, depthBonus(depth))
					}
					break // fail high
				}
			}
		}
	}

	// if search is stopped, score may be of a bad quality and
	// thus can pollute the transposition table for future searches
	if !search.stopped {
		var entryType tt.EntryType
		switch {
		case bestEval <= originalAlpha:
			// if score <= alpha, it is a worse position for the max player than
			// a previously explored line, since the move's exact score is at
			// most score. Therefore, it is an upperbound on the exact score.
			entryType = tt.UpperBound
		case bestEval >= beta:
			// if score >= beta, it is a worse position for the min player than
			// a previously explored line, singe the move's exact score is at
			// least score. Therefore, it is a lowerbound on the exact score.
			entryType = tt.LowerBound
		default:
			// if score is inside the bounds of alpha and beta, both the players
			// have been able to improve their position and it is an exact score.
			entryType = tt.ExactEntry
		}

		// update transposition table
		search.tt.Store(pos.Hash, tt.Entry{
			Value: tt.EvalFrom(bestEval, plys),
			Move:  bestMove,
			Depth: uint8(depth),
			Type:  entryType,
		})
	}

	return bestEval
}

// orderMoves boosts the ordering score of killer moves and history-quiet
// moves beyond the base MVV-LVA/promotion scores assigned at generation.
func (search *Context) orderMoves(plys int, list *move.List) {
	k1, k2 := search.killers[plys][0], search.killers[plys][1]

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.IsCapture() || m.IsPromotion() {
			continue
		}

		switch m {
		case k1:
			list.SetScoreAt(i, 900_000)
		case k2:
			list.SetScoreAt(i, 800_000)
		default:
			history := search.history[search.Position.SideToMove][m.From()][m.To()]
			list.SetScoreAt(i, list.ScoreAt(i)+history)
		}
	}
}
