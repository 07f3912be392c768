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
	"math/big"

	"github.com/holiman/uint256"

	"github.com/pontem-network/e2m-go/mir"
)

// u128Max is the largest u128 value; U128Math.PushConst clamps a literal
// wider than 128 bits to it (the math/big usage SPEC_FULL.md's data-model
// section describes).
var u128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// CodeSink is the narrow surface MathModel needs from the function
// builder: append one instruction, or intern a call to a private helper
// function taking arity Num operands and returning one.
type CodeSink interface {
	Emit(Instruction)
	Intrinsic(name string, arity int) uint16
}

// MathModel emits the bytecode for one Num operation under a fixed
// numeric representation (spec §4.9); the two concrete strategies below
// differ only in which operations are native Move bytecodes versus
// calls into a generated helper.
type MathModel interface {
	NumberType() SignatureToken
	PushConst(sink CodeSink, v *uint256.Int)
	Unary(sink CodeSink, op mir.Operation)
	Binary(sink CodeSink, op mir.Operation)
	Ternary(sink CodeSink, op mir.Operation)
}

// nativeBinary is the set of BinaryOp opcodes Move has a direct
// bytecode for under either math model (Shl/Shr take a native u8 shift
// amount and need no helper).
var nativeBinary = map[mir.Operation]Opcode{
	mir.Add: OpAdd, mir.Sub: OpSub, mir.Mul: OpMul, mir.Div: OpDiv,
	mir.Mod: OpMod, mir.And: OpBitAnd, mir.Or: OpBitOr, mir.Xor: OpXor,
	mir.Eq: OpEq, mir.Lt: OpLt, mir.Gt: OpGt, mir.Shl: OpShl, mir.Shr: OpShr,
}

// U128Math is a native 128-bit math model: operations Move has a direct
// bytecode for use it; the rest (signed ops, EXP, ADDMOD/MULMOD, BYTE,
// arithmetic shift) call into a helper this package's emitter generates
// into the same module, since the original's "modular wrapping
// delegated to helpers" already concedes some ops are never native
// (math.rs's `Math` trait, u128_model/{binary_ops,unary_ops,cast}.rs).
type U128Math struct{}

func (U128Math) NumberType() SignatureToken { return TokU128 }

func (U128Math) PushConst(sink CodeSink, v *uint256.Int) {
	b := v.ToBig()
	if b.Cmp(u128Max) > 0 {
		b = new(big.Int).Set(u128Max)
	}
	sink.Emit(LdU128(b))
}

func (U128Math) Unary(sink CodeSink, op mir.Operation) {
	if op == mir.IsZero {
		sink.Emit(LdU128(big.NewInt(0)))
		sink.Emit(Instruction{Op: OpEq})
		return
	}
	// Not: bitwise complement has no native Move opcode.
	sink.Emit(Call(sink.Intrinsic("u128_"+op.String(), 1)))
}

func (U128Math) Binary(sink CodeSink, op mir.Operation) {
	if code, ok := nativeBinary[op]; ok {
		sink.Emit(Instruction{Op: code})
		return
	}
	// SDiv, SMod, Exp, SignExtend, Byte, SLt, SGt, Sar: no native
	// unsigned-only Move opcode covers these; delegate to a generated
	// helper taking both operands.
	sink.Emit(Call(sink.Intrinsic("u128_"+op.String(), 2)))
}

func (U128Math) Ternary(sink CodeSink, op mir.Operation) {
	sink.Emit(Call(sink.Intrinsic("u128_"+op.String(), 3)))
}

// U256Math represents Num as a linked Struct{U256} value: Move has no
// native 256-bit integer, so every operation — including ones U128Math
// gets natively — is a call into the intrinsic module (spec §4.9).
type U256Math struct{}

func (U256Math) NumberType() SignatureToken { return TokU256 }

func (U256Math) PushConst(sink CodeSink, v *uint256.Int) {
	sink.Emit(LdU256(v.ToBig()))
}

func (U256Math) Unary(sink CodeSink, op mir.Operation) {
	sink.Emit(Call(sink.Intrinsic("u256_"+op.String(), 1)))
}

func (U256Math) Binary(sink CodeSink, op mir.Operation) {
	sink.Emit(Call(sink.Intrinsic("u256_"+op.String(), 2)))
}

func (U256Math) Ternary(sink CodeSink, op mir.Operation) {
	sink.Emit(Call(sink.Intrinsic("u256_"+op.String(), 3)))
}
