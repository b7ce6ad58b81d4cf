//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package board represents a chess position: piece placement, side to
// move, castling rights, en-passant target, halfmove/fullmove counters,
// king squares, and the incrementally maintained material-plus-PST
// score and Zobrist hash (§4.3). A Board is created empty, initialized
// from a FEN string, and afterwards mutated exclusively through Apply
// and Undo.
package board

import (
	"github.com/op/go-logging"

	. "github.com/UeMaBel/bukochess/internal/types"
	"github.com/UeMaBel/bukochess/internal/xlog"
	"github.com/UeMaBel/bukochess/internal/zobrist"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxPly is the undo stack's preallocated capacity; Apply's append grows
// the stack past it when a game runs longer.
const maxPly = 1024

var log *logging.Logger

func getLog() *logging.Logger {
	if log == nil {
		log = xlog.Get("board")
	}
	return log
}

// UndoRecord carries everything needed to reverse exactly one Apply call
// (§3). Captured-piece-and-square is recorded separately from the
// destination square because an en-passant capture removes a piece that
// is not on the move's destination square.
type UndoRecord struct {
	Move             Move
	MovedPiece       Piece // the piece as it was before any promotion
	CapturedPiece    Piece
	CapturedSquare   Square
	RookFrom         Square // SqNone unless this was a castling move
	RookTo           Square
	PriorCastling    CastlingRights
	PriorEnPassant   Square
	PriorHalfmove    int
	PriorSideToMove  Color
	PriorHash        zobrist.Key
	PriorScore       Value
}

// Board is the authoritative mutable chess position.
type Board struct {
	squares        [SqLength]Piece
	sideToMove     Color
	castling       CastlingRights
	enPassant      Square // SqNone if unavailable
	halfmoveClock  int
	fullmoveNumber int

	kingSquare [ColorLength]Square

	hash  zobrist.Key
	score Value

	repetitionCounts map[zobrist.Key]int

	undoStack []UndoRecord
}

// New creates an empty board with no pieces placed. Use FromFEN to get
// a playable position.
func New() *Board {
	b := &Board{
		enPassant:        SqNone,
		kingSquare:       [ColorLength]Square{SqNone, SqNone},
		repetitionCounts: make(map[zobrist.Key]int, 64),
		undoStack:        make([]UndoRecord, 0, maxPly),
	}
	for i := range b.squares {
		b.squares[i] = PieceNone
	}
	return b
}

// NewStart creates a board in the standard starting position.
func NewStart() *Board {
	b, err := FromFEN(StartFEN)
	if err != nil {
		panic("board: start FEN failed to parse: " + err.Error())
	}
	return b
}

// PieceAt returns the piece on sq, or PieceNone if sq is empty.
func (b *Board) PieceAt(sq Square) Piece {
	return b.squares[sq]
}

// SideToMove returns the color to move next.
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// CastlingRights returns the current castling rights mask.
func (b *Board) CastlingRights() CastlingRights {
	return b.castling
}

// EnPassantSquare returns the en-passant target square, or SqNone.
func (b *Board) EnPassantSquare() Square {
	return b.enPassant
}

// HalfmoveClock returns the count of halfmoves since the last pawn move
// or capture.
func (b *Board) HalfmoveClock() int {
	return b.halfmoveClock
}

// FullmoveNumber returns the current fullmove number.
func (b *Board) FullmoveNumber() int {
	return b.fullmoveNumber
}

// KingSquare returns the square of the king of the given color.
func (b *Board) KingSquare(c Color) Square {
	return b.kingSquare[c]
}

// Hash returns the incrementally maintained Zobrist hash of the position.
func (b *Board) Hash() zobrist.Key {
	return b.hash
}

// Score returns the incrementally maintained material-plus-PST score,
// positive favoring White (§4.3, §4.6).
func (b *Board) Score() Value {
	return b.score
}

// UndoDepth returns the number of moves applied since the position was
// loaded (§3 "undo_stack depth").
func (b *Board) UndoDepth() int {
	return len(b.undoStack)
}

// RepetitionCount returns the number of times the given hash has been
// produced in the game history so far, including the current position
// if key == b.Hash().
func (b *Board) RepetitionCount(key zobrist.Key) int {
	return b.repetitionCounts[key]
}

// recomputeHash rebuilds the Zobrist hash from scratch. Used only by
// FromFEN (where there is no incremental prior state) and by tests that
// verify the incremental hash never drifts (§8).
func (b *Board) recomputeHash() zobrist.Key {
	var h zobrist.Key
	for sq := Square(0); int(sq) < SqLength; sq++ {
		if p := b.squares[sq]; p != PieceNone {
			h ^= zobrist.PieceKey(p, sq)
		}
	}
	if b.sideToMove == Black {
		h ^= zobrist.SideToMoveKey()
	}
	h ^= zobrist.CastlingKey(b.castling)
	if b.enPassant != SqNone {
		h ^= zobrist.EpFileKey(b.enPassant.FileOf())
	}
	return h
}

// recomputeScore rebuilds the material-plus-PST score from scratch.
// Used only by FromFEN and by invariant tests (§8).
func (b *Board) recomputeScore() Value {
	var s Value
	for sq := Square(0); int(sq) < SqLength; sq++ {
		if p := b.squares[sq]; p != PieceNone {
			s += CombinedValue(p, sq)
		}
	}
	return s
}

// place puts piece p on sq without touching hash/score — used only
// during FromFEN setup, before the incremental invariants are seeded.
func (b *Board) place(p Piece, sq Square) {
	b.squares[sq] = p
	if p.TypeOf() == King {
		b.kingSquare[p.ColorOf()] = sq
	}
}
