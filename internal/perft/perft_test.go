package perft

import (
	"flag"
	"testing"

	"github.com/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UeMaBel/bukochess/internal/board"
)

var doProfile = flag.Bool("profile", false, "run TestPerftProfile under a CPU profile")

func TestStartPosition(t *testing.T) {
	want := []uint64{1, 20, 400, 8902, 197281, 4865609}
	b := board.NewStart()
	for depth, w := range want {
		assert.Equal(t, w, Nodes(b, depth), "depth %d", depth)
	}
}

func TestKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b, err := board.FromFEN(fen)
	require.NoError(t, err)
	want := []uint64{1, 48, 2039, 97862}
	for depth, w := range want {
		assert.Equal(t, w, Nodes(b, depth), "depth %d", depth)
	}
}

func TestEnPassantPosition(t *testing.T) {
	fen := "rnbqkbnr/pppp1ppp/8/4p3/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 2"
	b, err := board.FromFEN(fen)
	require.NoError(t, err)
	want := []uint64{1, 29, 111}
	for depth, w := range want {
		assert.Equal(t, w, Nodes(b, depth), "depth %d", depth)
	}
}

func TestRunMatchesNodesAndLeavesBoardUnchanged(t *testing.T) {
	b := board.NewStart()
	before := b.ToFEN()
	r := Run(b, 3)
	assert.Equal(t, uint64(8902), r.Nodes)
	assert.Equal(t, before, b.ToFEN())
}

func TestPerftProfile(t *testing.T) {
	if !*doProfile {
		t.Skip("run with -profile to capture a CPU profile of a deep perft")
	}
	defer profile.Start().Stop()
	b := board.NewStart()
	assert.Equal(t, uint64(197281), Nodes(b, 4))
}

func TestDivideSumsToNodes(t *testing.T) {
	b := board.NewStart()
	div := Divide(b, 3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	assert.Equal(t, uint64(20), uint64(len(div)))
	assert.Equal(t, Nodes(b, 3), sum)
}
