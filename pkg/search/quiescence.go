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
	"github.com/zmeadows/feldspar/pkg/search/eval"
)

// quiescence search is a type of limited search which only evaluates
// 'quiet' positions, i.e. positions with no tactical moves like captures
// or promotions left to make. It is needed to avoid the horizon effect
// that a hard depth cutoff in negamax would otherwise cause.
// https://www.chessprogramming.org/Quiescence_Search
func (search *Context) quiescence(plys int, alpha, beta eval.Eval) eval.Eval {
	search.stats.Nodes++

	if search.shouldStop() {
		return 0
	}

	pos := search.Position

	standPat := search.score()
	if standPat >= beta {
		return standPat
	}
	alpha = util.Max(alpha, standPat)

	best := standPat

	list := &search.lists[plys]
	search.gen.Generate(pos, true, list)

	_, noisyMargin := seeMargins(1)

	for i := 0; i < list.Len(); i++ {
		m := list.Pick(i)

		// prune captures that lose material badly even by a generous
		// margin; this is much cheaper than making the move
		if !eval.SEE(pos, m, noisyMargin) {
			continue
		}

		pos.Make(m)
		score := -search.quiescence(plys+1, -beta, -alpha)
		pos.Unmake(m)

		if score > best {
			best = score

			if score > alpha {
				alpha = score

				if alpha >= beta {
					break
				}
			}
		}
	}

	return best
}
