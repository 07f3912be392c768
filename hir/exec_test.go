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
	"encoding/hex"
	"testing"

	"github.com/pontem-network/e2m-go/evm"
	"github.com/pontem-network/e2m-go/flow"
	"github.com/stretchr/testify/require"
)

func buildFromHex(t *testing.T, h string) (evm.BlockMap, flow.Flow) {
	t.Helper()
	raw, err := hex.DecodeString(h)
	require.NoError(t, err)
	instrs, err := evm.Decode(raw)
	require.NoError(t, err)
	blocks := evm.Partition(instrs)
	f, err := flow.Build(blocks)
	require.NoError(t, err)
	return blocks, f
}

// PUSH1 2; PUSH1 3; ADD; PUSH1 0; MSTORE; PUSH1 32; PUSH1 0; RETURN.
// Every operand is constant, so ADD folds and the Result carries Val
// operands straight through.
func TestRunFoldsConstantArithmetic(t *testing.T) {
	blocks, f := buildFromHex(t, "6002"+"6003"+"01"+"6000"+"52"+"6020"+"6000"+"f3")
	h, err := NewExecutor(blocks).Run(f)
	require.NoError(t, err)
	require.Len(t, h.Stmts, 2) // MemStore, Result

	ms, ok := h.Stmts[0].(MemStore)
	require.True(t, ok)
	c, ok := AsConst(ms.Val)
	require.True(t, ok)
	require.Equal(t, uint64(5), c.Uint64())

	res, ok := h.Stmts[1].(Result)
	require.True(t, ok)
	off, ok := AsConst(res.Offset)
	require.True(t, ok)
	require.True(t, off.IsZero())
}

// MSTORE at a constant address, then MLOAD the same address: the
// executor's memory log must return the stored value rather than a
// fresh symbolic MLoad node, so no Expr statement for the load appears.
func TestRunMemoryRoundTrips(t *testing.T) {
	// PUSH1 0x2a; PUSH1 0; MSTORE; PUSH1 0; MLOAD; STOP.
	blocks, f := buildFromHex(t, "602a"+"6000"+"52"+"6000"+"51"+"00")
	h, err := NewExecutor(blocks).Run(f)
	require.NoError(t, err)
	require.Len(t, h.Stmts, 2) // MemStore, Stop

	ms, ok := h.Stmts[0].(MemStore)
	require.True(t, ok)
	c, ok := AsConst(ms.Val)
	require.True(t, ok)
	require.Equal(t, uint64(0x2a), c.Uint64())
}

// CALLDATASIZE; PUSH1 5; JUMPI; STOP; JUMPDEST; STOP -- the shape of
// flow.TestBuildIfCoversBothBranches with a condition operand pushed for
// JUMPI. Both branches push nothing extra, so execution must not fail and
// must produce an If statement.
func TestRunStructuresIf(t *testing.T) {
	blocks, f := buildFromHex(t, "36"+"6005"+"57"+"00"+"5b"+"00")
	h, err := NewExecutor(blocks).Run(f)
	require.NoError(t, err)
	require.Len(t, h.Stmts, 1)
	_, ok := h.Stmts[0].(If)
	require.True(t, ok)
}

// Same loop fixture as flow.TestBuildRecoversLoop. The Hir must contain a
// Loop statement whose body's first statement is the guard If.
func TestRunStructuresLoop(t *testing.T) {
	code := "5b" + "6000" + "6000" + "14" + "600c" + "57" + "6000" + "56" + "5b" + "00"
	blocks, f := buildFromHex(t, code)
	h, err := NewExecutor(blocks).Run(f)
	require.NoError(t, err)

	var loopStmt *Loop
	for i := range h.Stmts {
		if l, ok := h.Stmts[i].(Loop); ok {
			loopStmt = &l
		}
	}
	require.NotNil(t, loopStmt)
	require.Equal(t, evm.Offset(0), loopStmt.Id)
	require.NotEmpty(t, loopStmt.Body)
	_, ok := loopStmt.Body[0].(If)
	require.True(t, ok)
}

// PUSH1 4; CALLDATALOAD; PUSH1 0; MSTORE; STOP. CALLDATALOAD must push
// an Args node (not a generic UnaryOp) so the MIR translator can map it
// straight to a parameter slot.
func TestRunCalldataloadPushesArgsNode(t *testing.T) {
	blocks, f := buildFromHex(t, "6004"+"35"+"6000"+"52"+"00")
	h, err := NewExecutor(blocks).Run(f)
	require.NoError(t, err)

	ms, ok := h.Stmts[0].(MemStore)
	require.True(t, ok)
	args, ok := ms.Val.(Args)
	require.True(t, ok)
	c, ok := AsConst(args.Offset)
	require.True(t, ok)
	require.Equal(t, uint64(4), c.Uint64())
}

// POP; STOP: a bare POP on an empty stack must fail with StackUnderflow.
func TestRunStackUnderflow(t *testing.T) {
	blocks, f := buildFromHex(t, "50"+"00")
	_, err := NewExecutor(blocks).Run(f)
	require.Error(t, err)
	var herr *Error
	require.ErrorAs(t, err, &herr)
	require.Equal(t, StackUnderflow, herr.Kind)
}

// CALL is an explicit non-goal: the executor must reject it rather than
// silently modeling it. execInstr rejects CALL before touching the
// stack, so no operands need to be pushed first.
func TestRunRejectsCall(t *testing.T) {
	blocks, f := buildFromHex(t, "f1"+"00")
	_, err := NewExecutor(blocks).Run(f)
	require.Error(t, err)
	var herr *Error
	require.ErrorAs(t, err, &herr)
	require.Equal(t, UnsupportedOp, herr.Kind)
}
