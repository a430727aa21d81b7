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

package search

import (
	"github.com/zmeadows/feldspar/pkg/chess/piece"
)

// Limits contains the various limits which decide how long a search can
// run for. It should be passed to the main search function when starting
// a new search.
type Limits struct {
	// search tree limits
	Nodes int
	Depth int

	// TODO: implement searching selected moves
	// Moves []move.Move

	// search time limits
	Infinite        bool
	MoveTime        int
	Time, Increment [piece.ColorN]int
	MovesToGo       int
}

// UpdateLimits swaps in new search limits and recomputes the time
// manager's deadline, used when a ponder search turns into a normal
// search on "ponderhit". The caller must make sure a search is indeed
// in progress before calling UpdateLimits.
func (search *Context) UpdateLimits(limits Limits) {
	search.limits = limits
	search.time = newTimeManager(limits, search.Position.SideToMove)
	search.time.GetDeadline()
}
