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

import "github.com/pontem-network/e2m-go/evm"

// Statement is the MIR statement sum type (spec §3, lowered from hir).
type Statement interface {
	isStatement()
}

// InitStorage binds Storage to GetStore(Signer), emitted once per
// function before any SStore/SLoad.
type InitStorage struct {
	Storage Variable
	Signer  Variable
}

// Assign binds Var's one defining expression.
type Assign struct {
	Var  Variable
	Expr TypedExpr
}

// MemStore writes a full word.
type MemStore struct {
	Memory      Variable
	Offset, Val TypedExpr
}

// MemStore8 writes the low byte only.
type MemStore8 struct {
	Memory      Variable
	Offset, Val TypedExpr
}

// SStore writes a storage slot.
type SStore struct {
	Storage  Variable
	Key, Val TypedExpr
}

// If is MIR's structured branch.
type If struct {
	Cnd         TypedExpr
	True, False []Statement
}

// Loop mirrors spec §4.7 step 4: the emitter places CndCalc once at the
// loop head, and each repeat jumps back to just before it, so it is
// re-evaluated on every iteration. Cnd is already negated by the MIR
// translator when the originating HIR branch's back-edge was the false arm.
type Loop struct {
	Id      evm.Offset
	CndCalc []Statement
	Cnd     TypedExpr
	Body    []Statement
}

// Continue is a back-edge to the Loop named by LoopId.
type Continue struct{ LoopId evm.Offset }

// Abort ends the function with a nonzero Move abort code.
type Abort struct{ Code uint8 }

// Result is the function's return values, already decoded against the
// ABI's output types (spec §4.7 step 5); empty for Len=0.
type Result struct{ Values []TypedExpr }

// Log emits one EVM LOGn as a Move event (no direct Move analogue;
// lowered to a best-effort struct emit by the emitter).
type Log struct {
	Storage, Memory Variable
	Offset, Len     TypedExpr
	Topics          []TypedExpr
}

func (InitStorage) isStatement() {}
func (Assign) isStatement()      {}
func (MemStore) isStatement()    {}
func (MemStore8) isStatement()   {}
func (SStore) isStatement()      {}
func (If) isStatement()          {}
func (Loop) isStatement()        {}
func (Continue) isStatement()    {}
func (Abort) isStatement()       {}
func (Result) isStatement()      {}
func (Log) isStatement()         {}
