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
	"fmt"

	"github.com/zmeadows/feldspar/pkg/chess"
)

// String returns a human-readable ascii art representation of the
// search's current position, along with its fen string and zobrist hash.
func (search *Context) String() string {
	return fmt.Sprintf("%s\nfen: %s\nhash: %#x", search.Position.Board.String(), search.Position.FEN(), search.Position.Hash)
}

// SetPosition replaces the search's current position with the one
// described by fen, with moves applied on top of it in order.
func (search *Context) SetPosition(fen string, moves []string) error {
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		return err
	}

	for _, s := range moves {
		m, err := pos.ParseMove(s)
		if err != nil {
			return err
		}
		pos.Make(m)
	}

	search.Position = pos
	return nil
}
