//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package movegen

import (
	"fmt"

	"github.com/UeMaBel/bukochess/internal/board"
	. "github.com/UeMaBel/bukochess/internal/types"
)

// ResolveUci parses a UCI move string and matches it against the legal
// moves of b, filling in the board-dependent flags (capture, en
// passant, castling) that UciToSquares cannot determine on its own
// (§4.1, §6). Returns ErrIllegalMove if the string is well-formed but
// names no legal move.
func ResolveUci(b *board.Board, uci string) (Move, error) {
	from, to, promo, err := UciToSquares(uci)
	if err != nil {
		return NoMove, err
	}
	for _, m := range LegalMoves(b) {
		if m.From() == from && m.To() == to && (m.Flags()&PromoMask) == promo {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("%w: %q", ErrIllegalMove, uci)
}
