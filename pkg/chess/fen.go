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
	"errors"
	"strconv"
	"strings"

	"github.com/zmeadows/feldspar/pkg/chess/move/castling"
	"github.com/zmeadows/feldspar/pkg/chess/piece"
	"github.com/zmeadows/feldspar/pkg/chess/square"
	"github.com/zmeadows/feldspar/pkg/chess/zobrist"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a Position from Forsyth-Edwards Notation.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("chess: fen needs at least 4 fields: " + fen)
	}

	// the half-move clock and full-move number are sometimes omitted
	for len(fields) < 6 {
		fields = append(fields, "0")
	}
	if fields[5] == "0" {
		fields[5] = "1"
	}

	p := new(Position)

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != square.RankN {
		return nil, errors.New("chess: fen needs 8 ranks of placement data: " + fen)
	}

	for rankID, rankData := range ranks {
		file := square.FileA
		for _, id := range rankData {
			switch {
			case id >= '1' && id <= '8':
				file += square.File(id - '0')
			default:
				if file >= square.FileN {
					return nil, errors.New("chess: rank overflows board: " + fen)
				}
				sq := square.New(file, square.Rank(square.RankN-1-rankID))
				p.place(sq, piece.NewFromString(string(id)))
				file++
			}
		}
	}

	p.SideToMove = piece.NewColor(fields[1])
	if p.SideToMove == piece.Black {
		p.Hash ^= zobrist.SideToMove
	}

	p.CastlingRights = castling.NewRights(fields[2])
	p.Hash ^= zobrist.Castling[p.CastlingRights]

	p.EnPassantTarget = square.NewFromString(fields[3])
	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassantFile[p.EnPassantTarget.File()]
	}

	var err error
	if p.DrawClock, err = strconv.Atoi(fields[4]); err != nil {
		return nil, errors.New("chess: invalid half-move clock: " + fen)
	}
	if p.FullMoves, err = strconv.Atoi(fields[5]); err != nil {
		return nil, errors.New("chess: invalid full-move number: " + fen)
	}

	return p, nil
}

// FEN renders the position in Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := square.RankN - 1; rank >= 0; rank-- {
		empty := 0
		for file := square.FileA; file < square.FileN; file++ {
			sq := square.New(file, square.Rank(rank))
			pc := p.PieceAt(sq)

			if pc == piece.NoPiece {
				empty++
				continue
			}

			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}

		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}

		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassantTarget.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.DrawClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoves))

	return sb.String()
}
