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

package mir

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontem-network/e2m-go/abi"
	"github.com/pontem-network/e2m-go/evm"
	"github.com/pontem-network/e2m-go/hir"
)

func u256(n uint64) *uint256.Int { return uint256.NewInt(n) }

func TestFunctionAllocatesSignerStorageMemoryAndParams(t *testing.T) {
	method := &abi.Method{Inputs: []abi.Argument{{Name: "a", Type: abi.Uint256}}}
	h := &hir.Hir{Stmts: []hir.Statement{hir.Stop{}}}

	m, err := Function(h, method)
	require.NoError(t, err)

	// signer, storage, memory, and one Number param = 4 locals.
	assert.Equal(t, []SType{Signer, Storage, Memory, Number}, m.Locals)
	assert.IsType(t, InitStorage{}, m.Stmts[0])
	assert.IsType(t, Assign{}, m.Stmts[1])
	assert.IsType(t, Result{}, m.Stmts[2])
}

func TestTranslateBinaryComparisonProducesBool(t *testing.T) {
	method := &abi.Method{}
	h := &hir.Hir{Stmts: []hir.Statement{
		hir.Assign{Var: 0, Expr: hir.BinaryOp{Op: evm.LT, X: hir.Val{V: u256(1)}, Y: hir.Val{V: u256(2)}}},
		hir.Stop{},
	}}

	m, err := Function(h, method)
	require.NoError(t, err)

	assign := m.Stmts[2].(Assign)
	assert.Equal(t, Bool, assign.Expr.Type)
	bin := assign.Expr.Expr.(Binary)
	assert.Equal(t, Lt, bin.Op)
}

func TestTranslateCalldataloadMapsToParam(t *testing.T) {
	method := &abi.Method{Inputs: []abi.Argument{{Name: "x", Type: abi.Uint256}}}
	h := &hir.Hir{Stmts: []hir.Statement{
		hir.Assign{Var: 0, Expr: hir.Args{Offset: hir.Val{V: u256(4)}}},
		hir.Stop{},
	}}

	m, err := Function(h, method)
	require.NoError(t, err)

	assign := m.Stmts[2].(Assign)
	read := assign.Expr.Expr.(Read)
	assert.Equal(t, Number, read.Var.Type)
}

func TestTranslateRejectsCallOpcodeEquivalents(t *testing.T) {
	method := &abi.Method{}
	h := &hir.Hir{Stmts: []hir.Statement{
		hir.Assign{Var: 0, Expr: hir.UnaryOp{Op: evm.BALANCE, X: hir.Val{V: u256(0)}}},
		hir.Stop{},
	}}

	_, err := Function(h, method)
	require.Error(t, err)
	assert.Equal(t, UnsupportedOp, err.(*Error).Kind)
}

func TestDecodeResultProducesOneTypedExprPerOutput(t *testing.T) {
	method := &abi.Method{Outputs: []abi.Argument{{Name: "ok", Type: abi.Bool}}}
	h := &hir.Hir{Stmts: []hir.Statement{
		hir.Result{Offset: hir.Val{V: u256(0)}, Len: hir.Val{V: u256(32)}},
	}}

	m, err := Function(h, method)
	require.NoError(t, err)

	res := m.Stmts[len(m.Stmts)-1].(Result)
	require.Len(t, res.Values, 1)
	assert.Equal(t, Bool, res.Values[0].Type)
}

func TestDecodeResultRejectsNonConstantLength(t *testing.T) {
	method := &abi.Method{Outputs: []abi.Argument{{Name: "ok", Type: abi.Uint256}}}
	h := &hir.Hir{Stmts: []hir.Statement{
		hir.Result{Offset: hir.Val{V: u256(0)}, Len: hir.Var{Id: 0}},
	}}

	_, err := Function(h, method)
	require.Error(t, err)
	assert.Equal(t, UnsupportedOp, err.(*Error).Kind)
}

func TestTranslateIfCastsConditionToBool(t *testing.T) {
	method := &abi.Method{}
	h := &hir.Hir{Stmts: []hir.Statement{
		hir.If{
			Cnd:   hir.Val{V: u256(1)},
			True:  []hir.Statement{hir.Stop{}},
			False: []hir.Statement{hir.Abort{Code: 1}},
		},
	}}

	m, err := Function(h, method)
	require.NoError(t, err)

	ifStmt := m.Stmts[len(m.Stmts)-1].(If)
	assert.Equal(t, Bool, ifStmt.Cnd.Type)
	assert.IsType(t, Cast{}, ifStmt.Cnd.Expr)
}
