//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	"sort"

	"github.com/UeMaBel/bukochess/internal/board"
	. "github.com/UeMaBel/bukochess/internal/types"
)

// priority weights, per §4.6 point 5 ("Order moves").
const (
	ttPriority      = 10_000
	capturePriority = 1_000
	killer0Priority = 900
	killer1Priority = 800
)

// orderMoves sorts moves by descending search priority: the TT move
// first, then captures by MVV-LVA, then killer moves for this ply, then
// quiet moves in generation order. A capture made by the king scores
// below zero under the MVV-LVA formula (the king is valued at 20,000),
// so king captures sort after killer and quiet moves.
func orderMoves(b *board.Board, moves []Move, ttMove Move, killers [2]Move) []Move {
	ordered := append([]Move(nil), moves...)
	priorities := make(map[Move]int, len(ordered))
	for _, m := range ordered {
		priorities[m] = priority(b, m, ttMove, killers)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return priorities[ordered[i]] > priorities[ordered[j]]
	})
	return ordered
}

// orderCaptures sorts capture-only moves by MVV-LVA for the quiescence
// search.
func orderCaptures(b *board.Board, moves []Move) []Move {
	ordered := append([]Move(nil), moves...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return capturePriorityOf(b, ordered[i]) > capturePriorityOf(b, ordered[j])
	})
	return ordered
}

func priority(b *board.Board, m, ttMove Move, killers [2]Move) int {
	switch {
	case m == ttMove:
		return ttPriority
	case m.Flags().IsCapture():
		return capturePriorityOf(b, m)
	case m == killers[0]:
		return killer0Priority
	case m == killers[1]:
		return killer1Priority
	default:
		return 0
	}
}

// capturePriorityOf implements MVV-LVA: 1000 + 10*value(captured) -
// value(mover) (§3 "Move ordering weights").
func capturePriorityOf(b *board.Board, m Move) int {
	mover := b.PieceAt(m.From()).TypeOf()
	var captured PieceType
	if m.Flags().IsEnPassant() {
		captured = Pawn
	} else {
		captured = b.PieceAt(m.To()).TypeOf()
	}
	return capturePriority + 10*int(captured.ValueOf()) - int(mover.ValueOf())
}
