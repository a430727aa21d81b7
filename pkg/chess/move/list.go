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

package move

// MaxMoves is a safe upper bound on the number of legal moves in any
// reachable chess position.
const MaxMoves = 110

// List is a fixed-capacity, allocation-free sequence of moves alongside
// a per-move ordering score, populated by the move generator and sorted
// in place before being consumed by search.
type List struct {
	moves  [MaxMoves]Move
	scores [MaxMoves]int32
	len    int
}

// Clear empties the list for reuse.
func (l *List) Clear() {
	l.len = 0
}

// Len reports the number of moves currently in the list.
func (l *List) Len() int {
	return l.len
}

// Add appends a move with the given ordering score.
func (l *List) Add(m Move, score int32) {
	l.moves[l.len] = m
	l.scores[l.len] = score
	l.len++
}

// At returns the move at index i.
func (l *List) At(i int) Move {
	return l.moves[i]
}

// ScoreAt returns the ordering score at index i.
func (l *List) ScoreAt(i int) int32 {
	return l.scores[i]
}

// SetScoreAt overwrites the ordering score at index i, used by search to
// fold killer-move and history bonuses into the ordering.
func (l *List) SetScoreAt(i int, score int32) {
	l.scores[i] = score
}

// Pick performs one step of a lazy selection sort: it finds the
// highest-scoring move at or after index i, swaps it into position i,
// and returns it. Calling this for i = 0, 1, 2, ... yields moves in
// descending score order without sorting moves that are never consumed
// (e.g. a beta cutoff on the first move).
func (l *List) Pick(i int) Move {
	best := i
	for j := i + 1; j < l.len; j++ {
		if l.scores[j] > l.scores[best] {
			best = j
		}
	}

	l.moves[i], l.moves[best] = l.moves[best], l.moves[i]
	l.scores[i], l.scores[best] = l.scores[best], l.scores[i]

	return l.moves[i]
}

// HintFirst gives m a maximal ordering score so that Pick returns it
// before any other move, used to search a transposition-table move
// first. The move itself stays at its index until Pick swaps it.
func (l *List) HintFirst(m Move) {
	for i := 0; i < l.len; i++ {
		if l.moves[i] == m {
			l.scores[i] = 1 << 30
			return
		}
	}
}
