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
	"github.com/stretchr/testify/require"
)

func TestOptimizeCollapsesConstantIf(t *testing.T) {
	h := &Hir{
		Stmts: []Statement{
			If{
				Cnd:   Val{V: uint256.NewInt(1)},
				True:  []Statement{Stop{}},
				False: []Statement{Abort{Code: 1}},
			},
		},
	}
	out := Optimize(h)
	require.Equal(t, []Statement{Stop{}}, out.Stmts)
}

func TestOptimizeUnwrapsNonLoopingLoop(t *testing.T) {
	h := &Hir{
		Stmts: []Statement{
			Loop{
				Id:           0,
				CndBlock:     0,
				Cnd:          Val{V: uint256.NewInt(0)},
				IsTrueBrLoop: true, // loops only when Cnd != 0; it's 0, so never
				Body: []Statement{
					Stop{},
					Continue{LoopId: 0},
				},
			},
		},
	}
	out := Optimize(h)
	require.Equal(t, []Statement{Stop{}}, out.Stmts)
}

func TestOptimizeDropsDeadAssign(t *testing.T) {
	h := &Hir{
		Stmts: []Statement{
			Assign{Var: 1, Expr: Val{V: uint256.NewInt(7)}},
			Stop{},
		},
	}
	out := Optimize(h)
	require.Equal(t, []Statement{Stop{}}, out.Stmts)
}

func TestOptimizeKeepsUsedAssign(t *testing.T) {
	h := &Hir{
		Stmts: []Statement{
			Assign{Var: 1, Expr: Val{V: uint256.NewInt(7)}},
			Result{Offset: Var{Id: 1}, Len: Val{V: uint256.NewInt(0)}},
		},
	}
	out := Optimize(h)
	require.Equal(t, h.Stmts, out.Stmts)
}
