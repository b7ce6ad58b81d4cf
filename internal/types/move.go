//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

import (
	"fmt"
	"strings"
)

// MoveFlag is a bitfield of independent flags carried by a Move.
// EnPassant implies Capture. Castling flags are mutually exclusive with
// capture/promotion flags. Exactly one promotion bit is set on a
// promoting move.
type MoveFlag uint16

// Flag bits, per spec.md §3.
const (
	FlagNone MoveFlag = 0

	Capture    MoveFlag = 1 << 0
	EnPassant  MoveFlag = 1 << 1
	CastleKing MoveFlag = 1 << 2
	CastleQueen MoveFlag = 1 << 3
	PromoQ     MoveFlag = 1 << 4
	PromoR     MoveFlag = 1 << 5
	PromoB     MoveFlag = 1 << 6
	PromoN     MoveFlag = 1 << 7

	PromoMask   MoveFlag = PromoQ | PromoR | PromoB | PromoN
	CastleMask  MoveFlag = CastleKing | CastleQueen
)

// IsCapture reports whether the move captures a piece (including en passant).
func (f MoveFlag) IsCapture() bool {
	return f&Capture != 0
}

// IsEnPassant reports whether the move is an en-passant capture.
func (f MoveFlag) IsEnPassant() bool {
	return f&EnPassant != 0
}

// IsPromotion reports whether any promotion bit is set.
func (f MoveFlag) IsPromotion() bool {
	return f&PromoMask != 0
}

// IsCastle reports whether the move is a castling move, either side.
func (f MoveFlag) IsCastle() bool {
	return f&CastleMask != 0
}

// Move packs (from, to, flags) into a 32-bit word, a single value copied
// on the stack rather than a heap-allocated record; the search's inner
// loop creates and discards millions of these (§9).
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 8
	moveFlagsShift = 16
)

// NoMove is the zero value, never produced by the generator.
const NoMove Move = 0

// MakeMove packs a move from its three components.
func MakeMove(from, to Square, flags MoveFlag) Move {
	return Move(uint32(uint8(from))<<moveFromShift |
		uint32(uint8(to))<<moveToShift |
		uint32(flags)<<moveFlagsShift)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(uint8(m >> moveFromShift))
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(uint8(m >> moveToShift))
}

// Flags returns the move's flag bitfield.
func (m Move) Flags() MoveFlag {
	return MoveFlag(m >> moveFlagsShift)
}

// IsValid reports whether m is a non-zero move with distinct from/to squares.
func (m Move) IsValid() bool {
	return m != NoMove && m.From() != m.To()
}

var promoUciChar = map[MoveFlag]byte{
	PromoQ: 'q',
	PromoR: 'r',
	PromoB: 'b',
	PromoN: 'n',
}

// StringUci renders the move in 4- or 5-character UCI notation, e.g.
// "e2e4" or "a7a8q". Castling is rendered as the king's two-square move.
func (m Move) StringUci() string {
	if !m.IsValid() {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if promo := m.Flags() & PromoMask; promo != 0 {
		b.WriteByte(promoUciChar[promo])
	}
	return b.String()
}

// promoFlagFromChar maps a UCI promotion letter to its flag.
func promoFlagFromChar(c byte) (MoveFlag, bool) {
	switch c {
	case 'q':
		return PromoQ, true
	case 'r':
		return PromoR, true
	case 'b':
		return PromoB, true
	case 'n':
		return PromoN, true
	default:
		return FlagNone, false
	}
}

// UciToSquares parses the "<from><to>[promo]" shape of a UCI move string
// without knowledge of board state, returning the from/to squares and an
// optional promotion flag. Flags that depend on board context (capture,
// en passant, castling) are not set here — movegen.ResolveUci fills those
// in by matching against the legal-move set (§4.1, §6).
func UciToSquares(s string) (from, to Square, promo MoveFlag, err error) {
	if len(s) != 4 && len(s) != 5 {
		return SqNone, SqNone, FlagNone, fmt.Errorf("%w: %q", ErrInvalidMoveNotation, s)
	}
	from, ok := SquareFromString(s[0:2])
	if !ok {
		return SqNone, SqNone, FlagNone, fmt.Errorf("%w: bad from-square in %q", ErrInvalidMoveNotation, s)
	}
	to, ok = SquareFromString(s[2:4])
	if !ok {
		return SqNone, SqNone, FlagNone, fmt.Errorf("%w: bad to-square in %q", ErrInvalidMoveNotation, s)
	}
	if len(s) == 5 {
		promo, ok = promoFlagFromChar(s[4])
		if !ok {
			return SqNone, SqNone, FlagNone, fmt.Errorf("%w: bad promotion letter in %q", ErrInvalidMoveNotation, s)
		}
	}
	return from, to, promo, nil
}
