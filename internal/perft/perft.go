//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package perft counts leaf nodes of the legal-move tree to a fixed
// depth, the standard correctness test for a move generator (§4.7): any
// divergence from the known node counts for a reference position
// pinpoints a move-generation bug.
package perft

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/UeMaBel/bukochess/internal/board"
	"github.com/UeMaBel/bukochess/internal/movegen"
	. "github.com/UeMaBel/bukochess/internal/types"
)

var out = message.NewPrinter(language.German)

// Result accumulates the node and event counts of one perft run (§4.7).
type Result struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	CheckMates uint64
}

// Run counts leaf nodes of the legal-move tree rooted at b to the given
// depth, without mutating b past the call (every Apply is paired with
// an Undo). depth <= 0 is treated as 0 and returns a single counted node.
func Run(b *board.Board, depth int) Result {
	var r Result
	if depth <= 0 {
		r.Nodes = 1
		return r
	}
	walk(b, depth, &r)
	return r
}

func walk(b *board.Board, depth int, r *Result) {
	moves := movegen.LegalMoves(b)
	for _, m := range moves {
		if depth > 1 {
			b.Apply(m)
			walk(b, depth-1, r)
			b.Undo()
			continue
		}
		flags := m.Flags()
		b.Apply(m)
		r.Nodes++
		if flags.IsEnPassant() {
			r.EnPassant++
			r.Captures++
		} else if flags.IsCapture() {
			r.Captures++
		}
		if flags.IsCastle() {
			r.Castles++
		}
		if flags.IsPromotion() {
			r.Promotions++
		}
		if b.IsKingInCheck() {
			r.Checks++
			if movegen.IsCheckmate(b) {
				r.CheckMates++
			}
		}
		b.Undo()
	}
}

// Nodes is a thin convenience wrapper over Run for callers that only
// need the leaf count, e.g. the node-count assertions in §8.
func Nodes(b *board.Board, depth int) uint64 {
	return Run(b, depth).Nodes
}

// Divide computes, for each legal move at the root, the perft node
// count of the subtree beneath it — the standard technique for
// isolating which branch a move-generator bug lives in (§4.7).
func Divide(b *board.Board, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range movegen.LegalMoves(b) {
		b.Apply(m)
		out[m] = Nodes(b, depth-1)
		b.Undo()
	}
	return out
}

// Report runs perft at depth and prints a German-locale formatted
// summary in the style of the engine's benchmark tooling.
func Report(b *board.Board, depth int) Result {
	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", b.ToFEN())
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	r := Run(b, depth)
	elapsed := time.Since(start)

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", r.Nodes)
	out.Printf("   Captures  : %d\n", r.Captures)
	out.Printf("   EnPassant : %d\n", r.EnPassant)
	out.Printf("   Checks    : %d\n", r.Checks)
	out.Printf("   CheckMates: %d\n", r.CheckMates)
	out.Printf("   Castles   : %d\n", r.Castles)
	out.Printf("   Promotions: %d\n", r.Promotions)
	out.Printf("-----------------------------------------\n")
	return r
}
