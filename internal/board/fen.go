//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package board

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/UeMaBel/bukochess/internal/types"
)

// FromFEN parses a FEN string (§6) into a new Board, including hash,
// score, and king squares. Returns a wrapped ErrInvalidFEN on any field
// violation; nothing is returned partially constructed.
func FromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected 6 space-separated fields, got %d", ErrInvalidFEN, len(fields))
	}

	b := New()

	if err := b.parsePlacement(fields[0]); err != nil {
		return nil, err
	}
	side, ok := ColorFromChar(fields[1])
	if !ok {
		return nil, fmt.Errorf("%w: bad active color %q", ErrInvalidFEN, fields[1])
	}
	b.sideToMove = side

	castling, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	b.castling = castling

	ep, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, err
	}
	b.enPassant = ep

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("%w: bad halfmove clock %q", ErrInvalidFEN, fields[4])
	}
	b.halfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove <= 0 {
		return nil, fmt.Errorf("%w: bad fullmove number %q", ErrInvalidFEN, fields[5])
	}
	b.fullmoveNumber = fullmove

	if b.kingSquare[White] == SqNone || b.kingSquare[Black] == SqNone {
		return nil, fmt.Errorf("%w: missing a king", ErrInvalidFEN)
	}

	b.hash = b.recomputeHash()
	b.score = b.recomputeScore()
	b.repetitionCounts[b.hash] = 1
	return b, nil
}

// parsePlacement fills b.squares from FEN field 1 (ranks 8->1). Pawns on
// rank 1 or 8, or a rank whose digit-plus-letter sum is not 8, are
// rejected (§6).
func (b *Board) parsePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: placement field has %d ranks, want 8", ErrInvalidFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i // FEN ranks are listed 8->1; rank 7 is chess rank 8
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p, ok := PieceFromChar(byte(c))
			if !ok {
				return fmt.Errorf("%w: bad piece letter %q in rank %q", ErrInvalidFEN, c, rankStr)
			}
			if file > 7 {
				return fmt.Errorf("%w: rank %q overflows 8 files", ErrInvalidFEN, rankStr)
			}
			if p.TypeOf() == Pawn && (rank == 0 || rank == 7) {
				return fmt.Errorf("%w: pawn on rank %d", ErrInvalidFEN, rank+1)
			}
			sq := MakeSquare(rank, file)
			if p.TypeOf() == King && b.kingSquare[p.ColorOf()] != SqNone {
				return fmt.Errorf("%w: more than one %s king", ErrInvalidFEN, p.ColorOf())
			}
			b.place(p, sq)
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %q sums to %d files, want 8", ErrInvalidFEN, rankStr, file)
		}
	}
	return nil
}

func parseCastling(field string) (CastlingRights, error) {
	if field == "-" {
		return CastlingNone, nil
	}
	if field == "" {
		return CastlingNone, fmt.Errorf("%w: empty castling field", ErrInvalidFEN)
	}
	var c CastlingRights
	seen := make(map[byte]bool, 4)
	for i := 0; i < len(field); i++ {
		ch := field[i]
		if seen[ch] {
			return 0, fmt.Errorf("%w: duplicate castling letter %q", ErrInvalidFEN, ch)
		}
		seen[ch] = true
		switch ch {
		case 'K':
			c |= WhiteOO
		case 'Q':
			c |= WhiteOOO
		case 'k':
			c |= BlackOO
		case 'q':
			c |= BlackOOO
		default:
			return 0, fmt.Errorf("%w: bad castling letter %q", ErrInvalidFEN, ch)
		}
	}
	return c, nil
}

func parseEnPassant(field string) (Square, error) {
	if field == "-" {
		return SqNone, nil
	}
	sq, ok := SquareFromString(field)
	if !ok {
		return SqNone, fmt.Errorf("%w: bad en-passant square %q", ErrInvalidFEN, field)
	}
	if sq.RankOf() != 2 && sq.RankOf() != 5 {
		return SqNone, fmt.Errorf("%w: en-passant square %q not on rank 3 or 6", ErrInvalidFEN, field)
	}
	return sq, nil
}

// ToFEN emits the canonical FEN of the current position. Round-trips
// every valid input (§6, §8): absent castling/en-passant are always
// rendered as "-".
func (b *Board) ToFEN() string {
	var placement strings.Builder
	for i := 0; i < 8; i++ {
		rank := 7 - i
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[MakeSquare(rank, file)]
			if p == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				placement.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			placement.WriteString(p.String())
		}
		if empty > 0 {
			placement.WriteString(strconv.Itoa(empty))
		}
		if i != 7 {
			placement.WriteByte('/')
		}
	}

	ep := "-"
	if b.enPassant != SqNone {
		ep = b.enPassant.String()
	}

	return fmt.Sprintf("%s %s %s %s %d %d",
		placement.String(), b.sideToMove.String(), b.castling.String(), ep,
		b.halfmoveClock, b.fullmoveNumber)
}
