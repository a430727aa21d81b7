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
	"strings"

	"github.com/zmeadows/feldspar/pkg/chess/move"
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
)

// ParseMove parses m, a move in UCI long algebraic notation (e.g.
// "e2e4", "e7e8q"), into the fully-flagged Move legal in this position.
// Parsing works by generating every legal move and matching on source,
// target, and promoted piece, which guarantees the result carries
// correct capture/castle/en-passant flags without having to re-derive
// them from board state.
func (p *Position) ParseMove(m string) (move.Move, error) {
	if len(m) < 4 || len(m) > 5 {
		return move.Null, fmt.Errorf("chess: malformed move %q", m)
	}

	from := square.NewFromString(m[0:2])
	to := square.NewFromString(m[2:4])

	promoted := piece.NoType
	if len(m) == 5 {
		promoted = piece.NewFromString(strings.ToUpper(m[4:5])).Type()
	}

	var gen Generator
	var list move.List
	gen.Generate(p, false, &list)

	for i := 0; i < list.Len(); i++ {
		candidate := list.At(i)
		if candidate.From() != from || candidate.To() != to {
			continue
		}

		if !candidate.IsPromotion() || candidate.PromotedType() == promoted {
			return candidate, nil
		}
	}

	return move.Null, fmt.Errorf("chess: %q is not a legal move in this position", m)
}
