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

package chess

import (
	"fmt"

	"github.com/zmeadows/feldspar/pkg/chess/move"
)

// Perft counts leaf nodes at the given depth and prints a per-root-move
// breakdown, in the style used to verify a move generator against known
// reference counts ("perft divide").
func Perft(p *Position, depth int) int {
	if depth == 0 {
		return 1
	}

	var gen Generator
	var list move.List
	gen.Generate(p, false, &list)

	var nodes int
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		p.Make(m)
		n := perft(p, depth-1)
		fmt.Printf("%s: %d\n", m, n)
		nodes += n
		p.Unmake(m)
	}

	return nodes
}

func perft(p *Position, depth int) int {
	if depth == 0 {
		return 1
	}

	var gen Generator
	var list move.List
	gen.Generate(p, false, &list)

	if depth == 1 {
		return list.Len()
	}

	var nodes int
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		p.Make(m)
		nodes += perft(p, depth-1)
		p.Unmake(m)
	}

	return nodes
}
