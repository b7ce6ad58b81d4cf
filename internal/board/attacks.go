//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package board

import (
	. "github.com/UeMaBel/bukochess/internal/types"
)

var knightOffsets = [8][2]int{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// IsKingInCheck reports whether the king of the given color is attacked
// by the opposing side. With no argument, checks the side to move.
func (b *Board) IsKingInCheck(color ...Color) bool {
	c := b.sideToMove
	if len(color) > 0 {
		c = color[0]
	}
	return b.IsSquareAttacked(b.kingSquare[c], c.Flip())
}

// IsSquareAttacked reports whether sq is attacked by attackerColor,
// raycasting pawn diagonals, knight jumps, king adjacency, and orthogonal
// / diagonal sliding rays, returning true on the first discovered
// attacker (§4.3).
func (b *Board) IsSquareAttacked(sq Square, attackerColor Color) bool {
	rank, file := sq.RankOf(), sq.FileOf()

	// Pawn attacks: a pawn of attackerColor attacks diagonally forward
	// from its own perspective, so we look one rank *behind* sq (from
	// the attacker's direction) on both adjacent files.
	pawnDir := 1
	if attackerColor == Black {
		pawnDir = -1
	}
	pawn := MakePiece(attackerColor, Pawn)
	for _, df := range [2]int{-1, 1} {
		r, f := rank-pawnDir, file+df
		if onBoard(r, f) && b.squares[MakeSquare(r, f)] == pawn {
			return true
		}
	}

	knight := MakePiece(attackerColor, Knight)
	for _, o := range knightOffsets {
		r, f := rank+o[0], file+o[1]
		if onBoard(r, f) && b.squares[MakeSquare(r, f)] == knight {
			return true
		}
	}

	king := MakePiece(attackerColor, King)
	for _, o := range kingOffsets {
		r, f := rank+o[0], file+o[1]
		if onBoard(r, f) && b.squares[MakeSquare(r, f)] == king {
			return true
		}
	}

	rookLike := []PieceType{Rook, Queen}
	if b.slideAttacks(rank, file, rookDirs, attackerColor, rookLike) {
		return true
	}
	bishopLike := []PieceType{Bishop, Queen}
	if b.slideAttacks(rank, file, bishopDirs, attackerColor, bishopLike) {
		return true
	}

	return false
}

func (b *Board) slideAttacks(rank, file int, dirs [4][2]int, attackerColor Color, types []PieceType) bool {
	for _, d := range dirs {
		r, f := rank+d[0], file+d[1]
		for onBoard(r, f) {
			p := b.squares[MakeSquare(r, f)]
			if p != PieceNone {
				if p.ColorOf() == attackerColor {
					pt := p.TypeOf()
					for _, t := range types {
						if pt == t {
							return true
						}
					}
				}
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return false
}

func onBoard(rank, file int) bool {
	return rank >= 0 && rank < 8 && file >= 0 && file < 8
}
