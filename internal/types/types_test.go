package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePieceRoundTripsTypeAndColor(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			p := MakePiece(c, pt)
			assert.Equal(t, pt, p.TypeOf())
			assert.Equal(t, c, p.ColorOf())
		}
	}
}

func TestPieceFromCharRoundTripsString(t *testing.T) {
	for _, c := range "PNBRQKpnbrqk" {
		p, ok := PieceFromChar(byte(c))
		assert.True(t, ok)
		assert.Equal(t, string(c), p.String())
	}
	_, ok := PieceFromChar('x')
	assert.False(t, ok)
}

func TestPieceIndexIsDenseAndDistinctPerColor(t *testing.T) {
	assert.Equal(t, 0, WhitePawn.Index())
	assert.Equal(t, 5, WhiteKing.Index())
	assert.Equal(t, 6, BlackPawn.Index())
	assert.Equal(t, 11, BlackKing.Index())
}

func TestColorFlipAndSign(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
	assert.Equal(t, 1, White.Sign())
	assert.Equal(t, -1, Black.Sign())
}

func TestSquareStringRoundTrips(t *testing.T) {
	for _, s := range []string{"a1", "e4", "h8", "d5"} {
		sq, ok := SquareFromString(s)
		assert.True(t, ok)
		assert.Equal(t, s, sq.String())
	}
	_, ok := SquareFromString("z9")
	assert.False(t, ok)
	_, ok = SquareFromString("a")
	assert.False(t, ok)
}

func TestMakeMoveRoundTripsFromToFlags(t *testing.T) {
	from, _ := SquareFromString("e2")
	to, _ := SquareFromString("e4")
	m := MakeMove(from, to, Capture|PromoQ)
	assert.Equal(t, from, m.From())
	assert.Equal(t, to, m.To())
	assert.Equal(t, Capture|PromoQ, m.Flags())
	assert.True(t, m.Flags().IsCapture())
	assert.True(t, m.Flags().IsPromotion())
	assert.Equal(t, Queen, m.Flags().PromotionPiece())
}

func TestMoveStringUciRendersPromotion(t *testing.T) {
	from, _ := SquareFromString("a7")
	to, _ := SquareFromString("a8")
	m := MakeMove(from, to, PromoN)
	assert.Equal(t, "a8n", m.StringUci()[2:]) // sanity: suffix carries the promo letter
	assert.Equal(t, "a7a8n", m.StringUci())
}

func TestNoMoveRendersAsZeroZeroes(t *testing.T) {
	assert.Equal(t, "0000", NoMove.StringUci())
	assert.False(t, NoMove.IsValid())
}

func TestUciToSquaresRejectsMalformedInput(t *testing.T) {
	cases := []string{"", "e2", "e2e4q5", "z2e4", "e2z4", "e2e4x"}
	for _, s := range cases {
		_, _, _, err := UciToSquares(s)
		assert.ErrorIs(t, err, ErrInvalidMoveNotation, "input %q", s)
	}
}

func TestUciToSquaresParsesPromotion(t *testing.T) {
	from, to, promo, err := UciToSquares("a7a8q")
	assert.NoError(t, err)
	wantFrom, _ := SquareFromString("a7")
	wantTo, _ := SquareFromString("a8")
	assert.Equal(t, wantFrom, from)
	assert.Equal(t, wantTo, to)
	assert.Equal(t, PromoQ, promo)
}

func TestCastlingRightsHasAndRemove(t *testing.T) {
	c := WhiteOO | BlackOOO
	assert.True(t, c.Has(WhiteOO))
	assert.False(t, c.Has(WhiteOOO))
	c = c.Remove(WhiteOO)
	assert.False(t, c.Has(WhiteOO))
	assert.True(t, c.Has(BlackOOO))
}

func TestCastlingKeepMaskRevokesOnlyTheAffectedSquares(t *testing.T) {
	e1, _ := SquareFromString("e1")
	a1, _ := SquareFromString("a1")
	h8, _ := SquareFromString("h8")

	full := WhiteOO | WhiteOOO | BlackOO | BlackOOO
	assert.Equal(t, WhiteOO|BlackOO|BlackOOO, full&CastlingKeepMask(a1))
	assert.Equal(t, BlackOO|BlackOOO, full&CastlingKeepMask(e1))
	assert.Equal(t, WhiteOO|WhiteOOO|BlackOOO, full&CastlingKeepMask(h8))
}

func TestValueOfMatchesStandardPieceValues(t *testing.T) {
	assert.Equal(t, Value(100), Pawn.ValueOf())
	assert.Equal(t, Value(0), PtNone.ValueOf())
	assert.Greater(t, Rook.ValueOf(), Knight.ValueOf())
	assert.Greater(t, Queen.ValueOf(), Rook.ValueOf())
}

func TestCombinedValueFavorsWhiteSign(t *testing.T) {
	sq, _ := SquareFromString("e4")
	white := CombinedValue(WhitePawn, sq)
	black := CombinedValue(BlackPawn, sq.FlipVertical())
	assert.Positive(t, white)
	assert.Equal(t, white, -black)
}
