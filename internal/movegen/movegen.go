//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package movegen enumerates legal chess moves for a board.Board and
// filters pseudo-legal candidates into the legal set (§4.4). It never
// copies the board: legality is checked by applying a candidate move,
// probing for check, and undoing it again.
package movegen

import (
	"github.com/op/go-logging"

	"github.com/UeMaBel/bukochess/internal/board"
	. "github.com/UeMaBel/bukochess/internal/types"
	"github.com/UeMaBel/bukochess/internal/xlog"
)

var log *logging.Logger

func getLog() *logging.Logger {
	if log == nil {
		log = xlog.Get("movegen")
	}
	return log
}

// LegalMoves returns every legal move for the side to move on b. Per
// the Open Question decision recorded in DESIGN.md, this is recomputed
// on every call rather than cached: a hash-keyed cache would have to
// exclude the halfmove/fullmove counters from its key to stay correct,
// and generation is already fast enough incrementally that the extra
// invalidation surface isn't worth it.
func LegalMoves(b *board.Board) []Move {
	return LegalMovesInto(b, make([]Move, 0, 64))
}

// LegalMovesInto behaves like LegalMoves but appends into (and may grow)
// the caller-supplied buffer, letting hot callers such as search reuse a
// pooled slice per ply instead of allocating one per node.
func LegalMovesInto(b *board.Board, buf []Move) []Move {
	pseudo := pseudoLegalMovesInto(b, make([]Move, 0, 96))
	mover := b.SideToMove()
	for _, m := range pseudo {
		b.Apply(m)
		if !b.IsKingInCheck(mover) {
			buf = append(buf, m)
		}
		b.Undo()
	}
	return buf
}

// CaptureMoves returns the legal capture-only subset, used to seed the
// quiescence search (§4.6).
func CaptureMoves(b *board.Board) []Move {
	all := LegalMoves(b)
	out := all[:0]
	for _, m := range all {
		if m.Flags().IsCapture() {
			out = append(out, m)
		}
	}
	return out
}

// GivesCheck reports whether applying m to b would leave the opponent in
// check.
func GivesCheck(b *board.Board, m Move) bool {
	mover := b.SideToMove()
	b.Apply(m)
	check := b.IsKingInCheck(mover.Flip())
	b.Undo()
	return check
}

var knightOffsets = [8][2]int{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}
var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func onBoard(rank, file int) bool {
	return rank >= 0 && rank < 8 && file >= 0 && file < 8
}

// pseudoLegalMovesInto dispatches on the piece occupying each occupied
// square of the side to move (§4.4 point 1).
func pseudoLegalMovesInto(b *board.Board, buf []Move) []Move {
	us := b.SideToMove()
	for sq := Square(0); int(sq) < SqLength; sq++ {
		p := b.PieceAt(sq)
		if p == PieceNone || p.ColorOf() != us {
			continue
		}
		switch p.TypeOf() {
		case Pawn:
			buf = genPawnMoves(b, sq, us, buf)
		case Knight:
			buf = genOffsetMoves(b, sq, us, knightOffsets, buf)
		case King:
			buf = genOffsetMoves(b, sq, us, kingOffsets, buf)
			buf = genCastlingMoves(b, sq, us, buf)
		case Bishop:
			buf = genSlideMoves(b, sq, us, bishopDirs, buf)
		case Rook:
			buf = genSlideMoves(b, sq, us, rookDirs, buf)
		case Queen:
			buf = genSlideMoves(b, sq, us, rookDirs, buf)
			buf = genSlideMoves(b, sq, us, bishopDirs, buf)
		}
	}
	return buf
}

func genOffsetMoves(b *board.Board, from Square, us Color, offsets [8][2]int, buf []Move) []Move {
	rank, file := from.RankOf(), from.FileOf()
	for _, o := range offsets {
		r, f := rank+o[0], file+o[1]
		if !onBoard(r, f) {
			continue
		}
		to := MakeSquare(r, f)
		target := b.PieceAt(to)
		if target != PieceNone && target.ColorOf() == us {
			continue
		}
		flags := FlagNone
		if target != PieceNone {
			flags |= Capture
		}
		buf = append(buf, MakeMove(from, to, flags))
	}
	return buf
}

func genSlideMoves(b *board.Board, from Square, us Color, dirs [4][2]int, buf []Move) []Move {
	rank, file := from.RankOf(), from.FileOf()
	for _, d := range dirs {
		r, f := rank+d[0], file+d[1]
		for onBoard(r, f) {
			to := MakeSquare(r, f)
			target := b.PieceAt(to)
			if target == PieceNone {
				buf = append(buf, MakeMove(from, to, FlagNone))
			} else {
				if target.ColorOf() != us {
					buf = append(buf, MakeMove(from, to, Capture))
				}
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return buf
}

var promoFlags = [4]MoveFlag{PromoQ, PromoR, PromoB, PromoN}

func genPawnMoves(b *board.Board, from Square, us Color, buf []Move) []Move {
	rank, file := from.RankOf(), from.FileOf()
	dir := 1
	startRank, promoRank := 1, 7
	if us == Black {
		dir = -1
		startRank, promoRank = 6, 0
	}

	// Single push, and a double push from the starting rank when both
	// the intermediate and destination squares are empty.
	oneRank := rank + dir
	if onBoard(oneRank, file) {
		to := MakeSquare(oneRank, file)
		if b.PieceAt(to) == PieceNone {
			buf = appendPawnMove(from, to, FlagNone, oneRank == promoRank, buf)
			if rank == startRank {
				twoRank := rank + 2*dir
				to2 := MakeSquare(twoRank, file)
				if b.PieceAt(to2) == PieceNone {
					buf = append(buf, MakeMove(from, to2, FlagNone))
				}
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, df := range [2]int{-1, 1} {
		f := file + df
		if !onBoard(oneRank, f) {
			continue
		}
		to := MakeSquare(oneRank, f)
		target := b.PieceAt(to)
		switch {
		case target != PieceNone && target.ColorOf() != us:
			buf = appendPawnMove(from, to, Capture, oneRank == promoRank, buf)
		case to == b.EnPassantSquare() && target == PieceNone:
			buf = append(buf, MakeMove(from, to, Capture|EnPassant))
		}
	}
	return buf
}

func appendPawnMove(from, to Square, base MoveFlag, promotes bool, buf []Move) []Move {
	if !promotes {
		return append(buf, MakeMove(from, to, base))
	}
	for _, pf := range promoFlags {
		buf = append(buf, MakeMove(from, to, base|pf))
	}
	return buf
}

// genCastlingMoves generates castling candidates from the king's home
// square only, requiring the right, empty intermediate squares, and
// that the king is not currently in check, does not pass through check,
// and does not land in check (§4.4 point 1).
func genCastlingMoves(b *board.Board, from Square, us Color, buf []Move) []Move {
	homeRank := 0
	oo, ooo := WhiteOO, WhiteOOO
	if us == Black {
		homeRank = 7
		oo, ooo = BlackOO, BlackOOO
	}
	if from != MakeSquare(homeRank, 4) {
		return buf
	}
	rights := b.CastlingRights()
	enemy := us.Flip()
	if b.IsSquareAttacked(from, enemy) {
		return buf
	}

	if rights.Has(oo) &&
		b.PieceAt(MakeSquare(homeRank, 5)) == PieceNone &&
		b.PieceAt(MakeSquare(homeRank, 6)) == PieceNone &&
		!b.IsSquareAttacked(MakeSquare(homeRank, 5), enemy) &&
		!b.IsSquareAttacked(MakeSquare(homeRank, 6), enemy) {
		buf = append(buf, MakeMove(from, MakeSquare(homeRank, 6), CastleKing))
	}
	if rights.Has(ooo) &&
		b.PieceAt(MakeSquare(homeRank, 3)) == PieceNone &&
		b.PieceAt(MakeSquare(homeRank, 2)) == PieceNone &&
		b.PieceAt(MakeSquare(homeRank, 1)) == PieceNone &&
		!b.IsSquareAttacked(MakeSquare(homeRank, 3), enemy) &&
		!b.IsSquareAttacked(MakeSquare(homeRank, 2), enemy) {
		buf = append(buf, MakeMove(from, MakeSquare(homeRank, 2), CastleQueen))
	}
	return buf
}
