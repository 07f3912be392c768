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

// Package hir is the high-level IR produced by symbolically executing a
// function's flow.Flow tree (spec §4.5): an expression DAG of stack/
// memory/storage reads plus an ordered statement list.
package hir

import (
	"github.com/holiman/uint256"
	"github.com/pontem-network/e2m-go/evm"
)

// Expr is the HIR expression sum type (spec §3's Expr variant). Nodes are
// shared by pointer: ExprCache interns structurally-equal nodes so
// identical subexpressions are not duplicated during optimization, the
// "reference-counted" sharing the spec calls for.
type Expr interface {
	isExpr()
	// key returns a string uniquely identifying this node's structure,
	// used by ExprCache to intern it.
	key() string
}

// Val is a compile-time-known 256-bit constant.
type Val struct{ V *uint256.Int }

// Var references a previously assigned VarId.
type Var struct{ Id VarId }

// MLoad reads the memory word at Addr (spec §4.5: matched by structural
// equality against a live MSTORE, else a fresh symbolic read).
type MLoad struct{ Addr Expr }

// SLoad reads the storage slot at Addr. No constant folding crosses
// storage (spec §4.5).
type SLoad struct{ Addr Expr }

// MSize is the EVM MSIZE opcode: current memory size in bytes.
type MSize struct{}

// Signer is the caller account, supplied as the Move function's &signer
// parameter; stands in for EVM's implicit caller/this duality at the
// points where the original bytecode reads CALLER/ADDRESS.
type Signer struct{}

// ArgsSize is the byte length of the calldata arguments region (calldata
// minus the 4-byte selector).
type ArgsSize struct{}

// Args reads one calldata argument word: Offset is the raw byte offset
// into calldata (including the 4-byte selector prefix CALLDATALOAD
// itself sees), not an arguments-region-relative index.
type Args struct{ Offset Expr }

// UnaryOp applies a single-operand EVM opcode (ISZERO, NOT, ...).
type UnaryOp struct {
	Op OpKind
	X  Expr
}

// BinaryOp applies a two-operand EVM opcode (ADD, EQ, LT, ...).
type BinaryOp struct {
	Op   OpKind
	X, Y Expr
}

// TernaryOp applies a three-operand EVM opcode (ADDMOD, MULMOD).
type TernaryOp struct {
	Op      OpKind
	X, Y, Z Expr
}

// Hash is KECCAK256 over the memory region [Offset, Offset+Len).
type Hash struct{ Offset, Len Expr }

func (Val) isExpr()       {}
func (Var) isExpr()       {}
func (MLoad) isExpr()     {}
func (SLoad) isExpr()     {}
func (MSize) isExpr()     {}
func (Signer) isExpr()    {}
func (ArgsSize) isExpr()  {}
func (Args) isExpr()      {}
func (UnaryOp) isExpr()   {}
func (BinaryOp) isExpr()  {}
func (TernaryOp) isExpr() {}
func (Hash) isExpr()      {}

// OpKind names the EVM opcode backing a Unary/Binary/TernaryOp node. It is
// a thin alias over evm.OpCode rather than a fresh enum: the executor
// never needs to reinterpret these beyond dispatch and printing, and
// reusing evm.OpCode keeps one source of truth for opcode names.
type OpKind = evm.OpCode

// AsConst reports whether e is a Val and returns its constant.
func AsConst(e Expr) (*uint256.Int, bool) {
	v, ok := e.(Val)
	if !ok {
		return nil, false
	}
	return v.V, true
}
