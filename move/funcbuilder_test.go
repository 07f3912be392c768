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

package move

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontem-network/e2m-go/evm"
	"github.com/pontem-network/e2m-go/mir"
)

func newBuilder() *funcBuilder {
	return &funcBuilder{emitter: NewEmitter(U128Math{}, false), loopStarts: map[evm.Offset]uint16{}}
}

func numTE(n uint64) mir.TypedExpr {
	return mir.TypedExpr{Expr: mir.Const{Val: mir.NumValue(uint256.NewInt(n))}, Type: mir.Number}
}

func TestIfWithoutElsePatchesBrFalseToPostBlockOffset(t *testing.T) {
	fb := newBuilder()
	fb.genStmt(mir.If{
		Cnd:  boolTE(true),
		True: []mir.Statement{mir.Abort{Code: 1}},
	})

	// LdTrue, BrFalse, LdU128, Abort
	require.Len(t, fb.code, 4)
	assert.Equal(t, OpBrFalse, fb.code[1].Op)
	assert.EqualValues(t, 4, fb.code[1].Index)
}

func TestIfWithElsePatchesBothBranchesPastEachArm(t *testing.T) {
	fb := newBuilder()
	fb.genStmt(mir.If{
		Cnd:   boolTE(true),
		True:  []mir.Statement{mir.Abort{Code: 1}},
		False: []mir.Statement{mir.Abort{Code: 2}},
	})

	// LdTrue, BrFalse(->5, past the Branch below), LdU128,Abort,
	// Branch(->7, past the False arm), LdU128,Abort
	require.Len(t, fb.code, 7)
	assert.Equal(t, OpBrFalse, fb.code[1].Op)
	assert.EqualValues(t, 5, fb.code[1].Index)
	assert.Equal(t, OpBranch, fb.code[4].Op)
	assert.EqualValues(t, 7, fb.code[4].Index)
}

func TestLoopBranchesBackToItsOwnStartAndContinueTargetsSameOffset(t *testing.T) {
	fb := newBuilder()
	fb.genStmt(mir.Loop{
		Id:   1,
		Cnd:  boolTE(true),
		Body: []mir.Statement{mir.Continue{LoopId: 1}},
	})

	// loop start = 0: LdTrue(0), BrFalse(1), Continue->Branch(2), Branch(3, repeat)
	assert.EqualValues(t, 0, fb.loopStarts[1])
	require.Len(t, fb.code, 4)
	assert.Equal(t, OpBranch, fb.code[2].Op)
	assert.EqualValues(t, 0, fb.code[2].Index)
	assert.Equal(t, OpBranch, fb.code[3].Op)
	assert.EqualValues(t, 0, fb.code[3].Index)
	// BrFalse must skip past the loop entirely, to after the repeat branch.
	assert.EqualValues(t, 4, fb.code[1].Index)
}

func TestGenBinaryUsesNativeBoolOpcodesForLogicalConnectives(t *testing.T) {
	fb := newBuilder()
	fb.genBinary(mir.And, mir.Bool)
	fb.genBinary(mir.Or, mir.Bool)
	fb.genBinary(mir.Eq, mir.Bool)

	require.Len(t, fb.code, 3)
	assert.Equal(t, OpAnd, fb.code[0].Op)
	assert.Equal(t, OpOr, fb.code[1].Op)
	assert.Equal(t, OpEq, fb.code[2].Op)
}

func TestGenBinaryXorOnBoolsSynthesizesEqThenNot(t *testing.T) {
	fb := newBuilder()
	fb.genBinary(mir.Xor, mir.Bool)

	require.Len(t, fb.code, 2)
	assert.Equal(t, OpEq, fb.code[0].Op)
	assert.Equal(t, OpNot, fb.code[1].Op)
}

func TestGenCastDispatchesToBoolNumberIntrinsics(t *testing.T) {
	fb := newBuilder()
	fb.genCast(mir.Bool, mir.Number)
	fb.genCast(mir.Number, mir.Bool)
	fb.genCast(mir.Number, mir.Number)

	require.Len(t, fb.code, 2)
	assert.Equal(t, OpCall, fb.code[0].Op)
	assert.Equal(t, OpCall, fb.code[1].Op)
	assert.Contains(t, fb.emitter.intrinsics, "bool_to_num")
	assert.Contains(t, fb.emitter.intrinsics, "num_to_bool")
}

func TestResultEmitsValuesInOrderThenRet(t *testing.T) {
	fb := newBuilder()
	fb.genStmt(mir.Result{Values: []mir.TypedExpr{numTE(1), numTE(2)}})

	require.Len(t, fb.code, 3)
	assert.Equal(t, OpLdU128, fb.code[0].Op)
	assert.Equal(t, OpLdU128, fb.code[1].Op)
	assert.Equal(t, OpRet, fb.code[2].Op)
}
