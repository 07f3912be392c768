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

// Operation names an arithmetic/logical op in MIR's own closed enum —
// deliberately not reused from hir.OpKind (spec §9: "each stage has its
// own Expr/Statement universe; reuse via a common parent is
// discouraged").
type Operation int

const (
	Add Operation = iota
	Sub
	Mul
	Div
	SDiv
	Mod
	SMod
	AddMod
	MulMod
	Exp
	SignExtend
	Eq
	Lt
	Gt
	SLt
	SGt
	And
	Or
	Xor
	Byte
	Shl
	Shr
	Sar
	IsZero
	Not
)

var operationNames = [...]string{
	Add: "add", Sub: "sub", Mul: "mul", Div: "div", SDiv: "sdiv",
	Mod: "mod", SMod: "smod", AddMod: "addmod", MulMod: "mulmod",
	Exp: "exp", SignExtend: "signextend", Eq: "eq", Lt: "lt", Gt: "gt",
	SLt: "slt", SGt: "sgt", And: "and", Or: "or", Xor: "xor",
	Byte: "byte", Shl: "shl", Shr: "shr", Sar: "sar", IsZero: "iszero",
	Not: "not",
}

// String names the operation, used by the emitter to name generated
// intrinsic helper functions.
func (op Operation) String() string {
	if int(op) < 0 || int(op) >= len(operationNames) {
		return "op"
	}
	return operationNames[op]
}

// Expr is the MIR expression sum type: a typed, already-cast tree ready
// for direct bytecode emission.
type Expr interface {
	isExpr()
}

// TypedExpr pairs an Expr with its SType so the translator never needs
// to re-derive a type by walking the tree again.
type TypedExpr struct {
	Expr Expr
	Type SType
}

// Const is a compile-time-known value.
type Const struct{ Val Value }

// Read references a local variable.
type Read struct{ Var Variable }

// SignerAddress converts &signer to its numeric account address — the
// `std::signer::address_of` pattern every Move port of CALLER/ADDRESS/
// ORIGIN uses to get back a comparable Number from hir.Signer.
type SignerAddress struct{ Signer Variable }

// KeccakCall computes KECCAK256 over a Memory region via the runtime
// helper module (spec §4.7's one precompile exception: "precompiled
// hashes other than KECCAK256 which is delegated to a runtime helper").
type KeccakCall struct {
	Memory      Variable
	Offset, Len TypedExpr
}

// InitMemory materializes the function's scratch Memory handle.
type InitMemory struct{}

// MLoad reads one Number word from Memory at Offset.
type MLoad struct {
	Memory Variable
	Offset TypedExpr
}

// SLoad reads one Number word from Storage at Key.
type SLoad struct {
	Storage Variable
	Key     TypedExpr
}

// Unary applies a single-operand Operation.
type Unary struct {
	Op Operation
	X  TypedExpr
}

// Binary applies a two-operand Operation.
type Binary struct {
	Op   Operation
	X, Y TypedExpr
}

// Ternary applies ADDMOD/MULMOD.
type Ternary struct {
	Op      Operation
	X, Y, Z TypedExpr
}

// Cast converts X (Bool<->Number) to the enclosing TypedExpr's Type.
type Cast struct{ X TypedExpr }

func (Const) isExpr()         {}
func (Read) isExpr()          {}
func (SignerAddress) isExpr() {}
func (KeccakCall) isExpr()    {}
func (InitMemory) isExpr()    {}
func (MLoad) isExpr()         {}
func (SLoad) isExpr()         {}
func (Unary) isExpr()         {}
func (Binary) isExpr()        {}
func (Ternary) isExpr()       {}
func (Cast) isExpr()          {}
