//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package board

import (
	. "github.com/UeMaBel/bukochess/internal/types"
	"github.com/UeMaBel/bukochess/internal/zobrist"
)

// Apply commits m to the board, updating every incremental field in
// lock-step (§4.3) and pushing an UndoRecord sufficient to reverse the
// mutation bit-for-bit. The caller is responsible for ensuring m is at
// least pseudo-legal; Apply does not itself check legality (that is the
// move generator's job, §4.4).
func (b *Board) Apply(m Move) {
	fromSq, toSq, flags := m.From(), m.To(), m.Flags()
	movingPiece := b.squares[fromSq]
	myColor := movingPiece.ColorOf()

	rec := UndoRecord{
		Move:            m,
		MovedPiece:      movingPiece,
		CapturedSquare:  SqNone,
		RookFrom:        SqNone,
		RookTo:          SqNone,
		PriorCastling:   b.castling,
		PriorEnPassant:  b.enPassant,
		PriorHalfmove:   b.halfmoveClock,
		PriorSideToMove: b.sideToMove,
		PriorHash:       b.hash,
		PriorScore:      b.score,
	}

	// 1. en-passant file contribution: out with the old, in with the new.
	if b.enPassant != SqNone {
		b.hash ^= zobrist.EpFileKey(b.enPassant.FileOf())
	}
	newEnPassant := SqNone
	if movingPiece.TypeOf() == Pawn {
		diff := toSq.RankOf() - fromSq.RankOf()
		if diff == 2 || diff == -2 {
			newEnPassant = MakeSquare((fromSq.RankOf()+toSq.RankOf())/2, fromSq.FileOf())
		}
	}
	b.enPassant = newEnPassant
	if b.enPassant != SqNone {
		b.hash ^= zobrist.EpFileKey(b.enPassant.FileOf())
	}

	// 2. capture: en passant lands the captured pawn off the destination
	// square; ordinary captures remove whatever occupies the destination.
	if flags.IsEnPassant() {
		rec.CapturedSquare = MakeSquare(fromSq.RankOf(), toSq.FileOf())
		rec.CapturedPiece = b.squares[rec.CapturedSquare]
		b.removePiece(rec.CapturedPiece, rec.CapturedSquare)
	} else if flags.IsCapture() {
		rec.CapturedSquare = toSq
		rec.CapturedPiece = b.squares[toSq]
		b.removePiece(rec.CapturedPiece, toSq)
	}

	b.removePiece(movingPiece, fromSq)

	finalPiece := movingPiece
	if flags.IsPromotion() {
		// 3. promotion replaces the pawn with the chosen piece at to-square.
		finalPiece = MakePiece(myColor, flags.PromotionPiece())
	}
	b.placeMoved(finalPiece, toSq)

	// 4. castling: the rook makes an equivalent, simultaneous move.
	if flags.IsCastle() {
		rank := fromSq.RankOf()
		if flags&CastleKing != 0 {
			rec.RookFrom, rec.RookTo = MakeSquare(rank, 7), MakeSquare(rank, 5)
		} else {
			rec.RookFrom, rec.RookTo = MakeSquare(rank, 0), MakeSquare(rank, 3)
		}
		rook := b.squares[rec.RookFrom]
		b.removePiece(rook, rec.RookFrom)
		b.placeMoved(rook, rec.RookTo)
	}

	// 5. castling-rights keep mask: any piece entering or leaving a
	// rights-relevant square revokes the corresponding bits.
	newCastling := b.castling & CastlingKeepMask(fromSq) & CastlingKeepMask(toSq)
	if rec.RookFrom != SqNone {
		newCastling &= CastlingKeepMask(rec.RookFrom)
	}
	if newCastling != b.castling {
		b.hash ^= zobrist.CastlingKey(b.castling)
		b.castling = newCastling
		b.hash ^= zobrist.CastlingKey(b.castling)
	}

	if movingPiece.TypeOf() == Pawn || flags.IsCapture() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if myColor == Black {
		b.fullmoveNumber++
	}

	// 6. side to move.
	b.sideToMove = b.sideToMove.Flip()
	b.hash ^= zobrist.SideToMoveKey()

	b.undoStack = append(b.undoStack, rec)
	b.repetitionCounts[b.hash]++
}

// Undo reverses the most recently applied move, restoring every Board
// field — including hash, score, and undo-stack depth — bit-identically
// to its state before that Apply call (§4.3, §4.4, §8).
func (b *Board) Undo() {
	n := len(b.undoStack)
	rec := b.undoStack[n-1]
	b.undoStack = b.undoStack[:n-1]

	b.repetitionCounts[b.hash]--
	if b.repetitionCounts[b.hash] == 0 {
		delete(b.repetitionCounts, b.hash)
	}

	m := rec.Move
	fromSq, toSq, flags := m.From(), m.To(), m.Flags()

	if flags.IsCastle() {
		rook := b.squares[rec.RookTo]
		b.squares[rec.RookTo] = PieceNone
		b.squares[rec.RookFrom] = rook
	}

	b.squares[toSq] = PieceNone
	if rec.CapturedPiece != PieceNone {
		b.squares[rec.CapturedSquare] = rec.CapturedPiece
	}
	b.squares[fromSq] = rec.MovedPiece
	if rec.MovedPiece.TypeOf() == King {
		b.kingSquare[rec.MovedPiece.ColorOf()] = fromSq
	}

	if rec.MovedPiece.ColorOf() == Black {
		b.fullmoveNumber--
	}

	b.castling = rec.PriorCastling
	b.enPassant = rec.PriorEnPassant
	b.halfmoveClock = rec.PriorHalfmove
	b.sideToMove = rec.PriorSideToMove
	b.hash = rec.PriorHash
	b.score = rec.PriorScore
}

// removePiece clears sq (assumed occupied by p) and folds its hash and
// score contributions out of the incremental totals.
func (b *Board) removePiece(p Piece, sq Square) {
	b.hash ^= zobrist.PieceKey(p, sq)
	b.score -= CombinedValue(p, sq)
	b.squares[sq] = PieceNone
}

// placeMoved places p on sq (assumed empty after removePiece calls),
// folding its score and hash contribution into the incremental totals,
// and updates the king-square cache when p is a king.
func (b *Board) placeMoved(p Piece, sq Square) {
	b.squares[sq] = p
	b.hash ^= zobrist.PieceKey(p, sq)
	b.score += CombinedValue(p, sq)
	if p.TypeOf() == King {
		b.kingSquare[p.ColorOf()] = sq
	}
}
