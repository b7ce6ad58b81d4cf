//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package tt implements a fixed-size transposition table keyed by
// Zobrist hash, caching alpha-beta search results across branches that
// transpose into the same position (§4.5). The table is not safe for
// concurrent use; the engine only ever runs one search at a time
// (enforced by search's semaphore guard), so this has never needed
// locking.
package tt

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/UeMaBel/bukochess/internal/xlog"
	"github.com/UeMaBel/bukochess/internal/zobrist"
)

var out = message.NewPrinter(language.German)

var log *logging.Logger

func getLog() *logging.Logger {
	if log == nil {
		log = xlog.Get("tt")
	}
	return log
}

// Bound classifies how a stored score relates to the true minimax value
// at the node it was computed for (§4.5).
type Bound uint8

// Bound kinds.
const (
	BoundNone Bound = iota
	Exact
	Lower // fail-high: true value >= stored score
	Upper // fail-low: true value <= stored score
)

// entrySize is the size in bytes of one Entry, used to size the table
// to a requested memory budget the way the teacher's transposition
// table does.
const entrySize = int(unsafe.Sizeof(Entry{}))

// Entry is one transposition-table slot.
type Entry struct {
	Key      zobrist.Key
	Depth    int8
	Score    int32
	Bound    Bound
	BestMove uint32 // stored as the raw packed Move value
	occupied bool
}

// Table is a fixed-size, power-of-two-addressed transposition table.
type Table struct {
	data    []Entry
	mask    uint64
	entries uint64
	Stats   Stats
}

// Stats mirrors the teacher's usage counters, reported at the end of a
// search via String.
type Stats struct {
	Puts       uint64
	Hits       uint64
	Misses     uint64
	Collisions uint64
	Overwrites uint64
}

// New creates a Table sized to the largest power-of-two entry count
// that fits within sizeMB megabytes (§5 "Resource policy").
func New(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize reallocates the table to fit within sizeMB, discarding all
// entries.
func (t *Table) Resize(sizeMB int) {
	if sizeMB <= 0 {
		t.data = nil
		t.mask = 0
		t.entries = 0
		return
	}
	sizeBytes := uint64(sizeMB) * 1024 * 1024
	count := uint64(1) << uint64(math.Floor(math.Log2(float64(sizeBytes)/float64(entrySize))))
	if count == 0 {
		count = 1
	}
	t.data = make([]Entry, count)
	t.mask = count - 1
	t.entries = 0
	t.Stats = Stats{}
	getLog().Info(out.Sprintf("TT sized to %d MB, %d entries of %d bytes", sizeMB, count, entrySize))
}

// Clear discards every stored entry without changing the table's size.
func (t *Table) Clear() {
	for i := range t.data {
		t.data[i] = Entry{}
	}
	t.entries = 0
	t.Stats = Stats{}
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.mask
}

// Probe looks up key and returns the stored entry and whether it was
// present. A key collision (same slot, different Zobrist key) is
// reported as a miss.
func (t *Table) Probe(key zobrist.Key) (Entry, bool) {
	if len(t.data) == 0 {
		return Entry{}, false
	}
	e := &t.data[t.index(key)]
	if e.occupied && e.Key == key {
		t.Stats.Hits++
		return *e, true
	}
	t.Stats.Misses++
	return Entry{}, false
}

// Store writes an entry for key, replacing the current occupant of its
// slot only if depth is at least as great (§6 Open Question: strict
// depth-based replacement, no generation aging — the simplest policy
// that never throws away deeper, more expensive analysis for shallower,
// cheaper analysis).
func (t *Table) Store(key zobrist.Key, depth int8, score int32, bound Bound, bestMove uint32) {
	if len(t.data) == 0 {
		return
	}
	t.Stats.Puts++
	e := &t.data[t.index(key)]
	if !e.occupied {
		t.entries++
		*e = Entry{Key: key, Depth: depth, Score: score, Bound: bound, BestMove: bestMove, occupied: true}
		return
	}
	if e.Key != key {
		t.Stats.Collisions++
	}
	if depth >= e.Depth {
		if e.Key != key {
			t.Stats.Overwrites++
		}
		*e = Entry{Key: key, Depth: depth, Score: score, Bound: bound, BestMove: bestMove, occupied: true}
	}
}

// Len returns the number of occupied slots.
func (t *Table) Len() uint64 {
	return t.entries
}

// Hashfull reports table occupancy in permille, as UCI's "hashfull"
// info field expects.
func (t *Table) Hashfull() int {
	if len(t.data) == 0 {
		return 0
	}
	return int((1000 * t.entries) / uint64(len(t.data)))
}

// String renders a German-locale usage summary, in the style of the
// engine's other benchmark reporting.
func (t *Table) String() string {
	return out.Sprintf("TT: entries %d/%d (%d%%) puts %d hits %d misses %d collisions %d overwrites %d",
		t.entries, len(t.data), t.Hashfull()/10, t.Stats.Puts, t.Stats.Hits, t.Stats.Misses,
		t.Stats.Collisions, t.Stats.Overwrites)
}
