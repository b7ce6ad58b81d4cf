//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

import "fmt"

// PieceType identifies a kind of chess piece independent of color.
type PieceType uint8

// Constants for each piece type. PtNone is the absence of a piece type
// and is never a valid occupant of PieceType-indexed tables beyond PtLength.
const (
	PtNone PieceType = 0
	Pawn   PieceType = 1
	Knight PieceType = 2
	Bishop PieceType = 3
	Rook   PieceType = 4
	Queen  PieceType = 5
	King   PieceType = 6

	PtLength PieceType = 7
)

// IsValid reports whether pt is one of the six piece types.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// Piece packs a color and a piece type into a single byte: bit 3 carries
// color, bits 0-2 carry the piece type. PieceNone (0) is distinct from
// every real piece and is returned for empty squares.
type Piece uint8

// Piece constants. Values are not contiguous across colors by design:
// White pieces occupy [1,6], Black pieces occupy [9,14].
const (
	PieceNone Piece = 0

	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	blackBit = Piece(1 << 3)

	BlackPawn   Piece = blackBit | Piece(Pawn)
	BlackKnight Piece = blackBit | Piece(Knight)
	BlackBishop Piece = blackBit | Piece(Bishop)
	BlackRook   Piece = blackBit | Piece(Rook)
	BlackQueen  Piece = blackBit | Piece(Queen)
	BlackKing   Piece = blackBit | Piece(King)

	PieceLength Piece = 16
)

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(c)<<3 | Piece(pt)
}

// TypeOf extracts the piece type in O(1).
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0b0111)
}

// ColorOf extracts the color in O(1). Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// IsColor reports whether p is a non-empty piece of the given color.
func (p Piece) IsColor(c Color) bool {
	return p != PieceNone && p.ColorOf() == c
}

// Index returns a dense index in [0,11] used for Zobrist and
// material-table lookups: White pieces 0-5 (P,N,B,R,Q,K), Black 6-11.
func (p Piece) Index() int {
	idx := int(p.TypeOf()) - 1
	if p.ColorOf() == Black {
		idx += 6
	}
	return idx
}

var pieceLetters = [PtLength]byte{0, 'P', 'N', 'B', 'R', 'Q', 'K'}

// String renders the piece the way FEN does: uppercase for White,
// lowercase for Black, and " " for PieceNone.
func (p Piece) String() string {
	if p == PieceNone {
		return " "
	}
	c := pieceLetters[p.TypeOf()]
	if p.ColorOf() == Black {
		c += 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar maps a single FEN piece letter to a Piece.
// Returns PieceNone and false for any character not in {PNBRQKpnbrqk}.
func PieceFromChar(c byte) (Piece, bool) {
	switch c {
	case 'P':
		return WhitePawn, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'R':
		return WhiteRook, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'p':
		return BlackPawn, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'r':
		return BlackRook, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	default:
		return PieceNone, false
	}
}

// PromotionPiece maps a Move promotion flag to the resulting PieceType.
// Panics if f carries no promotion bit — a programmer error, not a runtime one.
func (f MoveFlag) PromotionPiece() PieceType {
	switch {
	case f&PromoQ != 0:
		return Queen
	case f&PromoR != 0:
		return Rook
	case f&PromoB != 0:
		return Bishop
	case f&PromoN != 0:
		return Knight
	default:
		panic(fmt.Sprintf("flags %v carry no promotion bit", f))
	}
}
