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

package pgn

import (
	"fmt"
	"os"

	freeeve "gopkg.in/freeeve/pgn.v1"
)

// VerifyCount cross-checks notnil/chess's game count against a second,
// independent parser (freeeve/pgn). It exists purely so cmd/bench
// -verify-pgn can catch a malformed opening book that one parser
// silently tolerates and the other rejects or truncates.
func VerifyCount(path string, wantGames int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := freeeve.NewPGNScanner(f)

	var n int
	for scanner.Next() {
		if _, err := scanner.Scan(); err != nil {
			return fmt.Errorf("pgn: freeeve parser: %w", err)
		}
		n++
	}

	if n != wantGames {
		return fmt.Errorf("pgn: parser disagreement: notnil/chess saw %d games, freeeve/pgn saw %d", wantGames, n)
	}

	return nil
}
