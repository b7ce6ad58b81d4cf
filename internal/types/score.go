//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

// Value is a centipawn evaluation score.
type Value int32

// Material values, in centipawns (§4.6).
const (
	ValuePawn   Value = 100
	ValueKnight Value = 320
	ValueBishop Value = 330
	ValueRook   Value = 500
	ValueQueen  Value = 900
	ValueKing   Value = 20_000
)

var pieceTypeValue = [PtLength]Value{
	PtNone: 0,
	Pawn:   ValuePawn,
	Knight: ValueKnight,
	Bishop: ValueBishop,
	Rook:   ValueRook,
	Queen:  ValueQueen,
	King:   ValueKing,
}

// ValueOf returns the material value of a piece type. PtNone is worth 0.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// Piece-square tables, one 64-entry array per piece type, indexed
// directly by square number (rank 0 = White's back rank, per §3) with
// no reordering. Values and indexing are taken verbatim from the
// engine this module replaces (original_source/backend/app/chess/static.py,
// PAWN_PST..KING_PST and init_tables): White reads pst[sq] unflipped,
// Black reads pst[sq^56] negated (§4.3, §4.6).
var pawnPST = [SqLength]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [SqLength]Value{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [SqLength]Value{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [SqLength]Value{
	0, 0, 0, 5, 5, 0, 0, 0,
	10, 10, 10, 10, 10, 10, 10, 10,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [SqLength]Value{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingPST = [SqLength]Value{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// combinedTable[piece][square] is material + PST, already signed for the
// owning color (positive for White, negative for Black), so evaluation
// is a straight summation over occupied squares (§4.3, §4.6).
var combinedTable [PieceLength][SqLength]Value

func pstOf(pt PieceType) *[SqLength]Value {
	switch pt {
	case Pawn:
		return &pawnPST
	case Knight:
		return &knightPST
	case Bishop:
		return &bishopPST
	case Rook:
		return &rookPST
	case Queen:
		return &queenPST
	case King:
		return &kingPST
	default:
		panic("no PST for piece type without a board representation")
	}
}

func init() {
	for _, pt := range []PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		pst := pstOf(pt)
		val := pt.ValueOf()
		for _, c := range []Color{White, Black} {
			p := MakePiece(c, pt)
			sign := Value(c.Sign())
			for sq := Square(0); int(sq) < SqLength; sq++ {
				pstSq := sq
				if c == Black {
					pstSq = sq.FlipVertical()
				}
				combinedTable[p][sq] = sign * (val + pst[pstSq])
			}
		}
	}
}

// CombinedValue returns the signed material-plus-PST contribution of
// placing piece p on square sq.
func CombinedValue(p Piece, sq Square) Value {
	return combinedTable[p][sq]
}
