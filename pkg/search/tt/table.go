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

// Package tt implements a lockless transposition table which is used to
// cache results from previous searches of a position to make search more
// efficient. It stores things like the score and pv move.
package tt

import (
	"math/bits"
	"unsafe"

	"github.com/zmeadows/feldspar/pkg/chess/move"
	"github.com/zmeadows/feldspar/pkg/search/eval"
)

// EntrySize stores the size in bytes of a tt slot.
var EntrySize = int(unsafe.Sizeof(slot{}))

// NewTable creates a new transposition table with a size equal to or
// less than the given number of megabytes.
func NewTable(mbs int) *Table {
	size := (mbs * 1024 * 1024) / EntrySize

	return &Table{
		table: make([]slot, size),
		size:  size,
	}
}

// Table represents a lockless transposition table. Every slot stores
// keyXorData alongside entryData, so a probe can verify the entry
// belongs to the queried hash without a lock, even if a concurrent
// writer tore the slot mid-update: a torn slot will simply fail the
// XOR check and be treated as a miss.
type Table struct {
	table []slot // hash table
	size  int    // table size
	age   uint8  // current age, advanced by NewAge at the start of every search (not taken from the fullmove counter)
}

// slot is a single lockless transposition table slot.
type slot struct {
	keyXorData uint64 // hash ^ data, used to validate entries without a lock
	entryData  uint64 // packed Entry
}

func (tt *Table) Clear() {
	for i := range tt.table {
		tt.table[i] = slot{}
	}
}

// NewAge moves the table onto the next age/generation, so that entries
// from the previous generation are preferred for replacement.
func (tt *Table) NewAge() {
	tt.age++
}

// Resize resizes the given transposition table to the new size. Old
// entries are discarded, since the lockless slot layout is not a
// simple copy target (the index function depends on table size).
func (tt *Table) Resize(mbs int) {
	size := (mbs * 1024 * 1024) / EntrySize

	*tt = Table{
		table: make([]slot, size),
		size:  size,
		age:   tt.age,
	}
}

// Store puts the given data into the transposition table.
func (tt *Table) Store(hash uint64, entry Entry) {
	entry.Age = tt.age
	data := entry.pack()

	target := &tt.table[tt.indexOf(hash)]

	// an occupant from another generation is always replaced; within
	// the same generation, replace only if the incoming entry is of an
	// equal or higher quality than the occupant, whether or not that
	// occupant belongs to this position.
	occupant := unpack(target.entryData)
	if occupant.Age != entry.Age || entry.quality() >= occupant.quality() {
		target.entryData = data
		target.keyXorData = hash ^ data
	}
}

// Probe fetches the data associated with the given zobrist key from the
// transposition table. It returns the fetched entry and whether it is
// usable. The XOR self-check guards against hash collisions as well as
// torn reads from a concurrent writer.
func (tt *Table) Probe(hash uint64) (Entry, bool) {
	s := tt.table[tt.indexOf(hash)]

	if s.keyXorData^s.entryData != hash {
		return Entry{}, false
	}

	entry := unpack(s.entryData)
	return entry, entry.Type != NoEntry
}

// indexOf is the hash function used by the transposition table.
func (tt *Table) indexOf(hash uint64) uint {
	// fast indexing function from Daniel Lemire's blog post
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
	index, _ := bits.Mul(uint(hash), uint(tt.size))
	return index
}

// Entry represents a transposition table entry: the best move found at
// a node, the bound on its value, and bookkeeping used to decide
// whether it should be kept or overwritten.
type Entry struct {
	Move  move.Move // best move in the position
	Value Eval      // value of this position
	Type  EntryType // bound type of the value
	Depth uint8     // depth the position was searched to, clamped to [0, 63]
	Age   uint8     // generation the entry was written in
}

// quality returns a measure of how valuable a tt entry is, used to
// decide whether an incoming entry should replace it. Entries from an
// older generation or with a shallower search are replaced first.
func (entry Entry) quality() int {
	return int(entry.Depth) - int(entry.Age)*64
}

// scoreBias shifts a signed 16-bit-range score into an unsigned 16-bit
// field and back, so a biased score survives a uint16 round-trip.
const scoreBias = 1 << 15

// pack squeezes an Entry into the 64-bit word stored in a slot:
// bits 0-31 move, bits 32-47 biased score, bits 48-53 depth,
// bits 54-55 node type, bits 56-63 age.
func (entry Entry) pack() uint64 {
	depth := entry.Depth
	if depth > 63 {
		depth = 63
	}

	biased := uint64(int64(entry.Value) + scoreBias)

	return uint64(entry.Move) |
		(biased&0xffff)<<32 |
		uint64(depth&0x3f)<<48 |
		uint64(entry.Type&0x3)<<54 |
		uint64(entry.Age)<<56
}

// unpack reconstructs an Entry from the packed word stored in a slot.
func unpack(data uint64) Entry {
	return Entry{
		Move:  move.Move(uint32(data)),
		Value: Eval(int64((data>>32)&0xffff) - scoreBias),
		Depth: uint8((data >> 48) & 0x3f),
		Type:  EntryType((data >> 54) & 0x3),
		Age:   uint8(data >> 56),
	}
}

// EntryType represents the type of a transposition table entry's
// value, whether it exists, it is upper bound, lower bound, or exact.
type EntryType uint8

// constants representing various transposition table entry types
const (
	NoEntry EntryType = iota // no entry exists

	ExactEntry // the value is an exact score (PV node)
	LowerBound // the value is a lower bound on the exact score (Cut node)
	UpperBound // the value is an upper bound on the exact score (All node)
)

// EvalFrom converts a given mate score from "n plys till mate from root"
// to "n plys till mate from current position" so that it is reusable in
// other positions with greater or lesser depth.
func EvalFrom(score eval.Eval, plys int) Eval {
	switch {
	case score > eval.WinInMaxPly:
		score += eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score -= eval.Eval(plys)
	}

	return Eval(score)
}

// Eval represents the evaluation of a transposition table entry. For mate
// scores, it stores "n plys till mate from current position" instead of the
// standard "n plys till mate from root" used in search.
type Eval eval.Eval

// Eval converts transposition table entry scores from "n plys to mate
// from current position" to "n plys till mate from root" which is the
// format used during search.
func (e Eval) Eval(plys int) eval.Eval {
	score := eval.Eval(e)

	// checkmate scores need to be changed from
	switch {
	case score > eval.WinInMaxPly:
		score -= eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score += eval.Eval(plys)
	}

	return score
}
