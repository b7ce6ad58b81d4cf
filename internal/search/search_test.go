package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UeMaBel/bukochess/internal/board"
	"github.com/UeMaBel/bukochess/internal/config"
	. "github.com/UeMaBel/bukochess/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	m.Run()
}

func TestChooseMoveFindsMateInOne(t *testing.T) {
	b, err := board.FromFEN("rnbqkb1r/ppppp2p/8/5p2/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	s := New()
	move, err := s.ChooseMove(b, 2)
	require.NoError(t, err)
	assert.Equal(t, "d1h5", move)
}

func TestChooseMoveFindsMateInTwo(t *testing.T) {
	b, err := board.FromFEN("r1bq2r1/b4pk1/p1pp1p2/1p2pP2/1P2P1PB/3P4/1PPQ2P1/R3K2R w - - 0 1")
	require.NoError(t, err)
	s := New()
	move, err := s.ChooseMove(b, 2)
	require.NoError(t, err)
	assert.Equal(t, "d2h6", move)
}

func TestChooseMoveReturnsErrNoLegalMovesInATerminalPosition(t *testing.T) {
	b, err := board.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	s := New()
	_, err = s.ChooseMove(b, 3)
	assert.ErrorIs(t, err, ErrNoLegalMoves)
}

func TestChooseMoveLeavesBoardUnchanged(t *testing.T) {
	b := board.NewStart()
	before := b.ToFEN()
	s := New()
	_, err := s.ChooseMove(b, 2)
	require.NoError(t, err)
	assert.Equal(t, before, b.ToFEN())
}

func TestNormalizeMateRoundTrips(t *testing.T) {
	stored := normalizeMate(Mate-3, 2)
	assert.Equal(t, Mate-3+2, stored)
	assert.Equal(t, Mate-3, unnormalizeMate(stored, 2))

	stored = normalizeMate(-Mate+3, 2)
	assert.Equal(t, -Mate+3-2, stored)
	assert.Equal(t, -Mate+3, unnormalizeMate(stored, 2))
}

func TestNormalizeMateLeavesOrdinaryScoresUnchanged(t *testing.T) {
	assert.Equal(t, int32(37), normalizeMate(37, 5))
	assert.Equal(t, int32(37), unnormalizeMate(37, 5))
}

func TestKillerTableTracksTwoMostRecent(t *testing.T) {
	s := New()
	a2, _ := SquareFromString("a2")
	a3, _ := SquareFromString("a3")
	b2, _ := SquareFromString("b2")
	b3, _ := SquareFromString("b3")
	c2, _ := SquareFromString("c2")
	c3, _ := SquareFromString("c3")
	m1 := MakeMove(a2, a3, FlagNone)
	m2 := MakeMove(b2, b3, FlagNone)
	m3 := MakeMove(c2, c3, FlagNone)

	s.storeKiller(4, m1)
	s.storeKiller(4, m2)
	slots := s.killerSlots(4)
	assert.Equal(t, m2, slots[0])
	assert.Equal(t, m1, slots[1])

	s.storeKiller(4, m3)
	slots = s.killerSlots(4)
	assert.Equal(t, m3, slots[0])
	assert.Equal(t, m2, slots[1])
}

func TestKillerSlotsDefaultToNoMoveForUnvisitedPly(t *testing.T) {
	s := New()
	assert.Equal(t, [2]Move{NoMove, NoMove}, s.killerSlots(10))
}

func TestQuiescenceRespectsConfiguredCap(t *testing.T) {
	saved := config.Settings.Search.QuiescenceMax
	defer func() { config.Settings.Search.QuiescenceMax = saved }()
	config.Settings.Search.QuiescenceMax = 0

	b, err := board.FromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	s := New()
	score := s.quiescence(b, -Mate-1, Mate+1, true, 0)
	assert.Equal(t, int32(b.Score()), score, "a zero quiescence cap must return the stand-pat score without exploring exd5")
}

func TestTTRoundTripsThroughSearch(t *testing.T) {
	b := board.NewStart()
	s := New()
	_, err := s.ChooseMove(b, 2)
	require.NoError(t, err)
	assert.Greater(t, s.tt.Len(), uint64(0))
	assert.Greater(t, s.NodesVisited(), uint64(0))
}
