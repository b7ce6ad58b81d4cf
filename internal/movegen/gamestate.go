//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package movegen

import (
	"github.com/UeMaBel/bukochess/internal/board"
)

// GameState enumerates the classification of a position: ongoing, check,
// or one of the four terminal states.
type GameState int

// Game states, per §4.4.
const (
	Ongoing GameState = iota
	Check
	Checkmate
	Stalemate
	DrawByRepetition
	DrawByInsufficientMaterial
)

// String renders the state for logging and UCI info lines.
func (s GameState) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawByRepetition:
		return "draw (repetition)"
	case DrawByInsufficientMaterial:
		return "draw (insufficient material)"
	default:
		return "ongoing"
	}
}

// IsStalemate reports whether the side to move has no legal move and is
// not in check. Requires the legal-move generator, which is why this
// lives in movegen rather than on board.Board (§4.4).
func IsStalemate(b *board.Board) bool {
	return !b.IsKingInCheck() && !HasLegalMove(b)
}

// IsCheckmate reports whether the side to move has no legal move and is
// currently in check (§4.4).
func IsCheckmate(b *board.Board) bool {
	return b.IsKingInCheck() && !HasLegalMove(b)
}

// HasLegalMove reports whether the side to move has at least one legal
// move, stopping at the first one found rather than generating the full
// list (§4.4 "Legal move existence").
func HasLegalMove(b *board.Board) bool {
	pseudo := pseudoLegalMovesInto(b, make([]Move, 0, 96))
	mover := b.SideToMove()
	for _, m := range pseudo {
		b.Apply(m)
		inCheck := b.IsKingInCheck(mover)
		b.Undo()
		if !inCheck {
			return true
		}
	}
	return false
}

// GameStateOf classifies the position fully: checkmate and stalemate
// take priority over the board-local draw conditions, matching the
// order a UCI engine reports them in (§4.4). A side in check with a
// legal reply is reported as Check rather than Ongoing (§4.3).
func GameStateOf(b *board.Board) GameState {
	inCheck := b.IsKingInCheck()
	if !HasLegalMove(b) {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if b.IsThreefoldRepetition() {
		return DrawByRepetition
	}
	if b.IsInsufficientMaterial() {
		return DrawByInsufficientMaterial
	}
	if inCheck {
		return Check
	}
	return Ongoing
}

// IsDraw reports whether the position is drawn by any rule this engine
// recognizes: repetition, insufficient material, or stalemate (§4.4).
func IsDraw(b *board.Board) bool {
	return b.IsDraw() || IsStalemate(b)
}
