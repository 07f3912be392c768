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

import "github.com/pontem-network/e2m-go/evm"

// Statement is the HIR statement sum type (spec §3).
type Statement interface {
	isStatement()
}

// Assign binds Var's one defining expression. Every persistent VarId has
// exactly one Assign dominating its uses (spec §3's SSA-dominance
// invariant, tested at spec §8 property 4).
type Assign struct {
	Var  VarId
	Expr Expr
}

// MemStore is EVM MSTORE: write a full word.
type MemStore struct{ Addr, Val Expr }

// MemStore8 is EVM MSTORE8: write the low byte only.
type MemStore8 struct{ Addr, Val Expr }

// SStore is EVM SSTORE: write a storage slot.
type SStore struct{ Addr, Val Expr }

// Log is an EVM LOGn: emits Len bytes from memory at Offset plus up to
// four indexed Topics.
type Log struct {
	Offset, Len Expr
	Topics      []Expr
}

// If is a structured two-way branch recovered from flow.If.
type If struct {
	Cnd         Expr
	True, False []Statement
}

// Loop mirrors flow.Loop with its condition materialized: CndBlock names
// the block whose JUMPI supplied Cnd, and IsTrueBrLoop records which
// branch of that JUMPI contains the back-edge (so the MIR translator
// knows whether to negate Cnd when emitting the loop guard).
type Loop struct {
	Id           evm.Offset
	CndBlock     evm.Offset
	Cnd          Expr
	IsTrueBrLoop bool
	Body         []Statement
}

// Continue is a back-edge to the Loop named by LoopId.
type Continue struct{ LoopId evm.Offset }

// Stop is EVM STOP: successful return with no output.
type Stop struct{}

// Abort is EVM REVERT with a constant low byte, or INVALID.
type Abort struct{ Code uint8 }

// Result is EVM RETURN: return the Len bytes of memory starting at
// Offset, later decoded against the function's ABI outputs by the MIR
// translator.
type Result struct{ Offset, Len Expr }

func (Assign) isStatement()    {}
func (MemStore) isStatement()  {}
func (MemStore8) isStatement() {}
func (SStore) isStatement()    {}
func (Log) isStatement()       {}
func (If) isStatement()        {}
func (Loop) isStatement()      {}
func (Continue) isStatement()  {}
func (Stop) isStatement()      {}
func (Abort) isStatement()     {}
func (Result) isStatement()    {}
