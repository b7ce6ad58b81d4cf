//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Command bukochess is a minimal CLI driver over the engine core: it
// loads a position, plays any moves given on the command line, runs a
// fixed-depth search, and prints the chosen move. The real host is an
// HTTP service that embeds internal/board, internal/movegen, and
// internal/search directly; this binary exists to exercise the core
// from a terminal, not to replace that host.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/UeMaBel/bukochess/internal/board"
	"github.com/UeMaBel/bukochess/internal/config"
	"github.com/UeMaBel/bukochess/internal/movegen"
	"github.com/UeMaBel/bukochess/internal/search"
)

func main() {
	fen := flag.String("fen", "", "starting position in FEN (defaults to the standard start position)")
	depth := flag.Int("depth", 0, "search depth (defaults to config.Settings.Search.Depth)")
	flag.Parse()

	config.Setup()

	b := board.NewStart()
	if *fen != "" {
		parsed, err := board.FromFEN(*fen)
		if err != nil {
			fmt.Fprintln(os.Stderr, "invalid FEN:", err)
			os.Exit(1)
		}
		b = parsed
	}

	for _, uci := range flag.Args() {
		m, err := movegen.ResolveUci(b, uci)
		if err != nil {
			fmt.Fprintf(os.Stderr, "illegal move %q: %v\n", uci, err)
			os.Exit(1)
		}
		b.Apply(m)
	}

	fmt.Println(b.ToFEN())

	switch state := movegen.GameStateOf(b); state {
	case movegen.Checkmate, movegen.Stalemate, movegen.DrawByRepetition, movegen.DrawByInsufficientMaterial:
		fmt.Println("game over:", state)
		return
	case movegen.Check:
		fmt.Println(state)
	}

	d := *depth
	if d == 0 {
		d = config.Settings.Search.Depth
	}

	s := search.New()
	move, err := s.ChooseMove(b, d)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("bestmove %s (nodes=%d)\n", move, s.NodesVisited())
}
