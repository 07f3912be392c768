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

import "math/big"

// Opcode is one Move bytecode instruction tag — the subset this
// emitter's MIR walk and MathModel strategies actually produce.
type Opcode uint8

const (
	OpPop Opcode = iota
	OpRet
	OpBrTrue
	OpBrFalse
	OpBranch
	OpLdU128
	OpLdU256
	OpLdTrue
	OpLdFalse
	OpLdConst
	OpCopyLoc
	OpMoveLoc
	OpStLoc
	OpCall
	OpAdd
	OpSub
	OpMul
	OpMod
	OpDiv
	OpBitOr
	OpBitAnd
	OpXor
	OpShl
	OpShr
	OpOr
	OpAnd
	OpNot
	OpEq
	OpNeq
	OpLt
	OpGt
	OpAbort
	OpCastU128
	OpCastU256
)

// Instruction is one bytecode instruction plus whichever operand its
// opcode needs. LocalIndex/CodeOffset/pool indices fit in Index;
// Literal carries a u128/u256 LdU immediate too wide for a machine word.
type Instruction struct {
	Op      Opcode
	Index   uint16
	Literal *big.Int
}

func Pop() Instruction                { return Instruction{Op: OpPop} }
func Ret() Instruction                { return Instruction{Op: OpRet} }
func BrTrue(target uint16) Instruction  { return Instruction{Op: OpBrTrue, Index: target} }
func BrFalse(target uint16) Instruction { return Instruction{Op: OpBrFalse, Index: target} }
func Branch(target uint16) Instruction  { return Instruction{Op: OpBranch, Index: target} }
func LdU128(v *big.Int) Instruction   { return Instruction{Op: OpLdU128, Literal: v} }
func LdU256(v *big.Int) Instruction   { return Instruction{Op: OpLdU256, Literal: v} }
func LdTrue() Instruction             { return Instruction{Op: OpLdTrue} }
func LdFalse() Instruction            { return Instruction{Op: OpLdFalse} }
func LdConst(idx uint16) Instruction  { return Instruction{Op: OpLdConst, Index: idx} }
func CopyLoc(idx uint16) Instruction  { return Instruction{Op: OpCopyLoc, Index: idx} }
func MoveLoc(idx uint16) Instruction  { return Instruction{Op: OpMoveLoc, Index: idx} }
func StLoc(idx uint16) Instruction    { return Instruction{Op: OpStLoc, Index: idx} }
func Call(handle uint16) Instruction  { return Instruction{Op: OpCall, Index: handle} }
func Abort() Instruction              { return Instruction{Op: OpAbort} }
