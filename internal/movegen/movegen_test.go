package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UeMaBel/bukochess/internal/board"
	. "github.com/UeMaBel/bukochess/internal/types"
)

func TestLegalMovesStartPosition(t *testing.T) {
	b := board.NewStart()
	moves := LegalMoves(b)
	assert.Len(t, moves, 20)
}

func TestLegalMovesLeaveBoardUnchanged(t *testing.T) {
	b := board.NewStart()
	before := b.ToFEN()
	LegalMoves(b)
	assert.Equal(t, before, b.ToFEN())
}

func TestCastlingForbiddenThroughAttackedSquares(t *testing.T) {
	b, err := board.FromFEN("2r1kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	moves := LegalMoves(b)
	assert.Len(t, moves, 22)
	for _, m := range moves {
		assert.False(t, m.Flags().IsCastle(), "castling must not be legal through the attacked f1 or c1 square")
	}
}

func TestPromotionGeneratesFourMoves(t *testing.T) {
	b, err := board.FromFEN("8/P7/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)
	moves := LegalMoves(b)
	count := 0
	for _, m := range moves {
		if m.From() == squareFromString(t, "a7") && m.To() == squareFromString(t, "a8") {
			assert.True(t, m.Flags().IsPromotion())
			count++
		}
	}
	assert.Equal(t, 4, count)
}

func TestEnPassantCaptureIsGenerated(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	found := false
	for _, m := range LegalMoves(b) {
		if m.Flags().IsEnPassant() {
			found = true
			assert.Equal(t, squareFromString(t, "e5"), m.From())
			assert.Equal(t, squareFromString(t, "d6"), m.To())
		}
	}
	assert.True(t, found, "expected an en-passant capture in the legal move list")
}

func TestIsCheckmateFoolsMate(t *testing.T) {
	b, err := board.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	assert.True(t, IsCheckmate(b))
	assert.False(t, IsStalemate(b))
	assert.Equal(t, Checkmate, GameStateOf(b))
}

func TestIsStalemate(t *testing.T) {
	b, err := board.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, IsStalemate(b))
	assert.False(t, b.IsKingInCheck())
	assert.Equal(t, Stalemate, GameStateOf(b))
}

func TestGameStateOfReportsCheckWhenALegalReplyExists(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, b.IsKingInCheck())
	assert.False(t, IsCheckmate(b))
	assert.False(t, IsStalemate(b))
	assert.Equal(t, Check, GameStateOf(b))
}

func TestResolveUciMatchesLegalMove(t *testing.T) {
	b := board.NewStart()
	m, err := ResolveUci(b, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, squareFromString(t, "e2"), m.From())
	assert.Equal(t, squareFromString(t, "e4"), m.To())
}

func TestResolveUciRejectsIllegalMove(t *testing.T) {
	b := board.NewStart()
	_, err := ResolveUci(b, "e2e5")
	assert.ErrorIs(t, err, ErrIllegalMove)
}

// TestApplyUndoInvariantAcrossLegalTree walks the legal-move tree to a
// shallow depth from a tactically dense position and checks, at every
// node, that the board's incrementally maintained hash and score survive
// an Apply/Undo round trip exactly (§8).
func TestApplyUndoInvariantAcrossLegalTree(t *testing.T) {
	b, err := board.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var walk func(depth int)
	walk = func(depth int) {
		if depth == 0 {
			return
		}
		for _, m := range LegalMoves(b) {
			fenBefore := b.ToFEN()
			hashBefore := b.Hash()
			scoreBefore := b.Score()
			depthBefore := b.UndoDepth()

			b.Apply(m)
			walk(depth - 1)
			b.Undo()

			assert.Equal(t, fenBefore, b.ToFEN())
			assert.Equal(t, hashBefore, b.Hash())
			assert.Equal(t, scoreBefore, b.Score())
			assert.Equal(t, depthBefore, b.UndoDepth())
		}
	}
	walk(3)
}

func TestGetBufReturnsAnEmptyReusableSlice(t *testing.T) {
	buf := GetBuf()
	assert.Len(t, buf, 0)
	buf = append(buf, NoMove)
	PutBuf(buf)

	buf2 := GetBuf()
	assert.Len(t, buf2, 0, "a reused buffer must come back truncated to zero length")
}

func squareFromString(t *testing.T, s string) Square {
	t.Helper()
	sq, ok := SquareFromString(s)
	require.True(t, ok)
	return sq
}
