//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

// CastlingRights encodes, as a 4-bit mask, which sides still retain the
// right to castle on which wing.
type CastlingRights uint8

// Constants for castling, matching FEN's KQkq field order.
const (
	CastlingNone CastlingRights = 0

	WhiteOO  CastlingRights = 1 << 0 // "K"
	WhiteOOO CastlingRights = 1 << 1 // "Q"
	BlackOO  CastlingRights = 1 << 2 // "k"
	BlackOOO CastlingRights = 1 << 3 // "q"

	CastlingAny    CastlingRights = WhiteOO | WhiteOOO | BlackOO | BlackOOO
	CastlingLength int            = 16
)

// Has reports whether the named right is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r != 0
}

// Remove clears the named right(s) and returns the result.
func (c CastlingRights) Remove(r CastlingRights) CastlingRights {
	return c &^ r
}

// String renders the rights in FEN order, or "-" if none remain.
func (c CastlingRights) String() string {
	if c == CastlingNone {
		return "-"
	}
	s := ""
	if c.Has(WhiteOO) {
		s += "K"
	}
	if c.Has(WhiteOOO) {
		s += "Q"
	}
	if c.Has(BlackOO) {
		s += "k"
	}
	if c.Has(BlackOOO) {
		s += "q"
	}
	return s
}

// castlingKeepMask[sq] is the AND-mask that survives when a piece enters
// or leaves sq. Precomputed once so that a king or rook move/capture on
// a1/e1/h1/a8/e8/h8 revokes the right rights without string manipulation
// (§4.3 point 5, §9).
var castlingKeepMask = func() [SqLength]CastlingRights {
	var m [SqLength]CastlingRights
	for i := range m {
		m[i] = CastlingAny
	}
	m[MakeSquare(0, 4)] = CastlingAny &^ (WhiteOO | WhiteOOO) // e1
	m[MakeSquare(0, 0)] = CastlingAny &^ WhiteOOO             // a1
	m[MakeSquare(0, 7)] = CastlingAny &^ WhiteOO              // h1
	m[MakeSquare(7, 4)] = CastlingAny &^ (BlackOO | BlackOOO) // e8
	m[MakeSquare(7, 0)] = CastlingAny &^ BlackOOO             // a8
	m[MakeSquare(7, 7)] = CastlingAny &^ BlackOO              // h8
	return m
}()

// CastlingKeepMask returns the AND-mask to apply to castling rights
// whenever a piece enters or leaves sq (as a move origin or destination).
func CastlingKeepMask(sq Square) CastlingRights {
	return castlingKeepMask[sq]
}
