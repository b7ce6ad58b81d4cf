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
)

// IsThreefoldRepetition reports whether the current position's hash has
// occurred at least three times in the game history (§4.3). Castling
// rights and en-passant availability are encoded in the hash, so a
// repeated hash implies a truly repeated position, not just repeated
// piece placement.
func (b *Board) IsThreefoldRepetition() bool {
	return b.repetitionCounts[b.hash] >= 3
}

// IsInsufficientMaterial reports whether neither side has enough
// material to force checkmate (§4.3): only kings; kings plus one minor
// piece; or kings plus two same-colored bishops. Any pawn, rook, or
// queen on the board disqualifies.
func (b *Board) IsInsufficientMaterial() bool {
	var bishopSquares []Square
	var knightCount int
	pieceCount := 0

	for sq := Square(0); int(sq) < SqLength; sq++ {
		p := b.squares[sq]
		if p == PieceNone {
			continue
		}
		switch p.TypeOf() {
		case Pawn, Rook, Queen:
			return false
		case King:
			pieceCount++
		case Bishop:
			pieceCount++
			bishopSquares = append(bishopSquares, sq)
		case Knight:
			pieceCount++
			knightCount++
		}
	}

	switch {
	case pieceCount == 2:
		return true // king vs king
	case pieceCount == 3:
		return true // king+minor vs king
	case pieceCount == 4 && len(bishopSquares) == 2:
		return squareColor(bishopSquares[0]) == squareColor(bishopSquares[1])
	default:
		return false
	}
}

func squareColor(sq Square) int {
	return (sq.RankOf() + sq.FileOf()) % 2
}

// IsDraw reports whether the position is drawn by threefold repetition
// or insufficient material (§4.3). Stalemate is a separate condition,
// surfaced by movegen.IsStalemate since it requires the legal-move
// generator.
func (b *Board) IsDraw() bool {
	return b.IsThreefoldRepetition() || b.IsInsufficientMaterial()
}
