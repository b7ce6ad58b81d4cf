package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/UeMaBel/bukochess/internal/types"
)

func TestPieceKeyIsDeterministicAcrossCalls(t *testing.T) {
	assert.Equal(t, PieceKey(WhitePawn, 0), PieceKey(WhitePawn, 0))
}

func TestPieceKeyVariesByPieceAndSquare(t *testing.T) {
	assert.NotEqual(t, PieceKey(WhitePawn, 0), PieceKey(BlackPawn, 0))
	assert.NotEqual(t, PieceKey(WhitePawn, 0), PieceKey(WhitePawn, 1))
}

func TestCastlingKeyVariesByRights(t *testing.T) {
	assert.NotEqual(t, CastlingKey(0), CastlingKey(WhiteOO))
}

func TestEpFileKeyVariesByFile(t *testing.T) {
	assert.NotEqual(t, EpFileKey(0), EpFileKey(7))
}

func TestSideToMoveKeyIsNonZero(t *testing.T) {
	assert.NotEqual(t, Key(0), SideToMoveKey())
}

func TestRand64NeverRepeatsWithinAShortRun(t *testing.T) {
	r := newRandom(seed)
	seen := make(map[uint64]bool)
	for i := 0; i < 1000; i++ {
		v := r.rand64()
		assert.False(t, seen[v], "xorshift64star produced a repeat within 1000 draws")
		seen[v] = true
	}
}

func TestNewRandomPanicsOnZeroSeed(t *testing.T) {
	assert.Panics(t, func() { newRandom(0) })
}
