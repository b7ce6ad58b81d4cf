//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package movegen

import (
	"sync"

	. "github.com/UeMaBel/bukochess/internal/types"
)

// bufPool recycles the []Move buffers search hands to LegalMovesInto,
// one per ply of the alpha-beta recursion, avoiding an allocation at
// every node of the tree.
var bufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]Move, 0, 64)
		return &buf
	},
}

// GetBuf returns a zero-length []Move buffer from the pool.
func GetBuf() []Move {
	p := bufPool.Get().(*[]Move)
	return (*p)[:0]
}

// PutBuf returns buf to the pool for reuse. Callers must not use buf
// after calling PutBuf.
func PutBuf(buf []Move) {
	bufPool.Put(&buf)
}
