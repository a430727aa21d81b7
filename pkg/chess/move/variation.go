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

import "strings"

// MaxDepth bounds the length of a principal variation.
const MaxDepth = 128

// Variation is the principal variation discovered by a completed search:
// the sequence of best moves from the root to the point negamax stopped
// improving alpha.
type Variation struct {
	moves [MaxDepth]Move
	len   int
}

// Move returns the i-th move of the variation, or Null if the variation
// is shorter than i+1 moves.
func (v Variation) Move(i int) Move {
	if i >= v.len {
		return Null
	}
	return v.moves[i]
}

// Len reports the number of moves in the variation.
func (v Variation) Len() int {
	return v.len
}

// Update sets this variation to m followed by child, used when negamax
// found a new best move m at this node with child as the continuation.
func (v *Variation) Update(m Move, child Variation) {
	v.moves[0] = m
	copy(v.moves[1:], child.moves[:child.len])
	v.len = child.len + 1
}

// String renders the variation as space-separated long algebraic moves.
func (v Variation) String() string {
	strs := make([]string, v.len)
	for i := 0; i < v.len; i++ {
		strs[i] = v.moves[i].String()
	}
	return strings.Join(strs, " ")
}
