//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package search implements fixed-depth alpha-beta search with
// transposition-table probing, MVV-LVA/killer move ordering, and a
// capture-only quiescence search at the horizon (§4.6).
package search

import (
	"context"
	"math/rand"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/UeMaBel/bukochess/internal/board"
	"github.com/UeMaBel/bukochess/internal/config"
	"github.com/UeMaBel/bukochess/internal/movegen"
	"github.com/UeMaBel/bukochess/internal/tt"
	. "github.com/UeMaBel/bukochess/internal/types"
	"github.com/UeMaBel/bukochess/internal/xlog"
)

// Mate is the base magnitude of a checkmate score; MateThreshold
// distinguishes a mate score from an ordinary evaluation (§4.6).
const (
	Mate          int32 = 100_000
	MateThreshold int32 = 90_000
)

var log *logging.Logger

func getLog() *logging.Logger {
	if log == nil {
		log = xlog.Get("search")
	}
	return log
}

// Search holds everything a single fixed-depth alpha-beta search needs:
// the transposition table, per-ply killer slots, node counter, and an
// injected PRNG for breaking ties among equally-scored root moves. Only
// one search may run at a time, enforced by running (§5).
type Search struct {
	tt      *tt.Table
	killers [][2]Move
	nodes   uint64
	rng     *rand.Rand
	running *semaphore.Weighted
}

// New creates a Search with a transposition table sized per config and
// a PRNG seeded from config.Settings.Search.RandomSeed (0 seeds from a
// fixed default, matching the teacher's convention of treating 0 as
// "unseeded" rather than "use current time").
func New() *Search {
	seed := config.Settings.Search.RandomSeed
	if seed == 0 {
		seed = 1
	}
	return &Search{
		tt:      tt.New(config.Settings.TT.SizeMB),
		killers: make([][2]Move, 0, 64),
		rng:     rand.New(rand.NewSource(seed)),
		running: semaphore.NewWeighted(1),
	}
}

// NodesVisited returns the number of alpha-beta and quiescence nodes
// visited by the most recent ChooseMove call.
func (s *Search) NodesVisited() uint64 {
	return s.nodes
}

// ChooseMove runs a fixed-depth alpha-beta search rooted at b and
// returns the chosen move in UCI notation. Returns ErrNoLegalMoves iff
// there are no legal moves (§4.6 "Public entry", §7).
//
// Only one search runs at a time: a concurrent call blocks on the
// internal semaphore until the prior search returns, matching the
// single-search-session ownership described in §5.
func (s *Search) ChooseMove(b *board.Board, depth int) (string, error) {
	if err := s.running.Acquire(context.Background(), 1); err != nil {
		return "", err
	}
	defer s.running.Release(1)

	s.nodes = 0
	s.killers = s.killers[:0]

	moves := movegen.LegalMoves(b)
	if len(moves) == 0 {
		return "", ErrNoLegalMoves
	}

	maximizing := b.SideToMove() == White
	best := worstFor(maximizing)
	var bestMoves []Move

	for _, m := range orderMoves(b, moves, NoMove, s.killerSlots(1)) {
		b.Apply(m)
		value := s.alphabeta(b, depth-1, -Mate-1, Mate+1, !maximizing, 1)
		b.Undo()

		switch {
		case (maximizing && value > best) || (!maximizing && value < best):
			best = value
			bestMoves = bestMoves[:0]
			bestMoves = append(bestMoves, m)
		case value == best:
			bestMoves = append(bestMoves, m)
		}
	}

	chosen := bestMoves[s.rng.Intn(len(bestMoves))]
	getLog().Infof("chose %s with score %d after %d nodes", chosen.StringUci(), best, s.nodes)
	return chosen.StringUci(), nil
}

func worstFor(maximizing bool) int32 {
	if maximizing {
		return -Mate - 1
	}
	return Mate + 1
}

// killerSlots returns the killer pair for ply, or two NoMove slots for a
// ply with nothing stored yet; storeKiller grows the table on demand, so
// callers never need to pre-size it.
func (s *Search) killerSlots(ply int) [2]Move {
	if ply < len(s.killers) {
		return s.killers[ply]
	}
	return [2]Move{NoMove, NoMove}
}

func (s *Search) storeKiller(ply int, m Move) {
	for len(s.killers) <= ply {
		s.killers = append(s.killers, [2]Move{NoMove, NoMove})
	}
	if s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

// alphabeta implements §4.6's numbered algorithm: TT probe, leaf and
// terminal handling, ordered recursion, cutoff/killer update, and TT
// store with mate-score ply normalization.
func (s *Search) alphabeta(b *board.Board, depth int, alpha, beta int32, maximizing bool, ply int) int32 {
	s.nodes++
	alphaOrig, betaOrig := alpha, beta
	key := b.Hash()

	if entry, ok := s.tt.Probe(key); ok && int(entry.Depth) >= depth {
		score := unnormalizeMate(entry.Score, ply)
		switch entry.Bound {
		case tt.Exact:
			return score
		case tt.Lower:
			if score > alpha {
				alpha = score
			}
		case tt.Upper:
			if score < beta {
				beta = score
			}
		}
		if alpha >= beta {
			return score
		}
	}

	if depth == 0 {
		return s.quiescence(b, alpha, beta, maximizing, 0)
	}

	buf := movegen.GetBuf()
	defer movegen.PutBuf(buf)
	moves := movegen.LegalMovesInto(b, buf)
	if len(moves) == 0 {
		if b.IsKingInCheck() {
			if maximizing {
				return -Mate + int32(ply)
			}
			return Mate - int32(ply)
		}
		return 0
	}

	var ttMove Move
	if entry, ok := s.tt.Probe(key); ok {
		ttMove = Move(entry.BestMove)
	}
	ordered := orderMoves(b, moves, ttMove, s.killerSlots(ply))

	var bestMove Move
	var value int32
	if maximizing {
		value = -Mate - 1
		for _, m := range ordered {
			b.Apply(m)
			score := s.alphabeta(b, depth-1, alpha, beta, false, ply+1)
			b.Undo()
			if score > value {
				value = score
				bestMove = m
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				if !m.Flags().IsCapture() {
					s.storeKiller(ply, m)
				}
				break
			}
		}
	} else {
		value = Mate + 1
		for _, m := range ordered {
			b.Apply(m)
			score := s.alphabeta(b, depth-1, alpha, beta, true, ply+1)
			b.Undo()
			if score < value {
				value = score
				bestMove = m
			}
			if value < beta {
				beta = value
			}
			if beta <= alpha {
				if !m.Flags().IsCapture() {
					s.storeKiller(ply, m)
				}
				break
			}
		}
	}

	bound := tt.Exact
	switch {
	case value <= alphaOrig:
		bound = tt.Upper
	case value >= betaOrig:
		bound = tt.Lower
	}
	s.tt.Store(key, int8(depth), normalizeMate(value, ply), bound, uint32(bestMove))
	return value
}

// quiescence extends the search along captures only, using the
// incrementally maintained board score as the stand-pat baseline and
// delta-pruning clearly hopeless captures (§4.6). qply counts descents
// from the horizon and is capped at config.Settings.Search.QuiescenceMax
// (§2/§3), beyond which the stand-pat score is returned outright to
// bound pathological capture chains.
func (s *Search) quiescence(b *board.Board, alpha, beta int32, maximizing bool, qply int) int32 {
	s.nodes++
	standPat := int32(b.Score())

	if maximizing {
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return alpha
		}
		if standPat < beta {
			beta = standPat
		}
	}

	if qply >= config.Settings.Search.QuiescenceMax {
		return standPat
	}

	captures := movegen.CaptureMoves(b)
	ordered := orderCaptures(b, captures)

	for _, m := range ordered {
		capturedValue := capturedPieceValue(b, m)
		if maximizing {
			if standPat+capturedValue < alpha {
				continue
			}
		} else {
			if standPat-capturedValue > beta {
				continue
			}
		}

		b.Apply(m)
		score := s.quiescence(b, alpha, beta, !maximizing, qply+1)
		b.Undo()

		if maximizing {
			if score >= beta {
				return beta
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if score <= alpha {
				return alpha
			}
			if score < beta {
				beta = score
			}
		}
	}

	if maximizing {
		return alpha
	}
	return beta
}

func capturedPieceValue(b *board.Board, m Move) int32 {
	if m.Flags().IsEnPassant() {
		return int32(Pawn.ValueOf())
	}
	return int32(b.PieceAt(m.To()).TypeOf().ValueOf())
}

// normalizeMate and unnormalizeMate implement §4.5's mate-score
// ply-adjustment so a mate found at different depths in the tree
// compares correctly once stored in the shared transposition table.
func normalizeMate(score int32, ply int) int32 {
	switch {
	case score > MateThreshold:
		return score + int32(ply)
	case score < -MateThreshold:
		return score - int32(ply)
	default:
		return score
	}
}

func unnormalizeMate(score int32, ply int) int32 {
	switch {
	case score > MateThreshold:
		return score - int32(ply)
	case score < -MateThreshold:
		return score + int32(ply)
	default:
		return score
	}
}
