// Copyright 2014 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

package hir

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/pontem-network/e2m-go/evm"
	"github.com/stretchr/testify/require"
)

func selEq(sel uint32, then, els []Statement) If {
	return If{
		Cnd:   BinaryOp{Op: evm.EQ, X: Var{Id: 0}, Y: Val{V: uint256.NewInt(uint64(sel))}},
		True:  then,
		False: els,
	}
}

func TestSplitEntryPointsPeelsChain(t *testing.T) {
	fallback := []Statement{Abort{Code: 0}}
	body2 := []Statement{Stop{}}
	body1 := []Statement{Result{Offset: Val{V: uint256.NewInt(0)}, Len: Val{V: uint256.NewInt(0)}}}

	chain := []Statement{
		selEq(0xaabbccdd, body1, []Statement{selEq(0x11223344, body2, fallback)}),
	}

	entries, rest := SplitEntryPoints(&Hir{Stmts: chain})
	require.Len(t, entries, 2)
	require.Equal(t, body1, entries[[4]byte{0xaa, 0xbb, 0xcc, 0xdd}])
	require.Equal(t, body2, entries[[4]byte{0x11, 0x22, 0x33, 0x44}])
	require.Equal(t, fallback, rest)
}

func TestSplitEntryPointsNoDispatcherReturnsOriginal(t *testing.T) {
	stmts := []Statement{Stop{}, Abort{Code: 1}}
	entries, rest := SplitEntryPoints(&Hir{Stmts: stmts})
	require.Empty(t, entries)
	require.Equal(t, stmts, rest)
}
