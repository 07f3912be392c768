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
	"github.com/holiman/uint256"
	"github.com/pontem-network/e2m-go/evm"
)

// foldOrBinary applies op to x and y, collapsing to a Val when both are
// constant and building the symbolic node otherwise. The arithmetic here
// mirrors the stack-machine opcode handlers of a reference interpreter:
// *uint256.Int already implements EVM's wrapping, Euclidean-division and
// div-by-zero-is-zero semantics, so the constant-folded path is just a
// straight method call per opcode.
func foldOrBinary(op OpKind, x, y Expr) Expr {
	xc, xOk := AsConst(x)
	yc, yOk := AsConst(y)
	if !xOk || !yOk {
		return BinaryOp{Op: op, X: x, Y: y}
	}

	z := new(uint256.Int)
	switch op {
	case evm.ADD:
		z.Add(xc, yc)
	case evm.MUL:
		z.Mul(xc, yc)
	case evm.SUB:
		z.Sub(xc, yc)
	case evm.DIV:
		z.Div(xc, yc)
	case evm.SDIV:
		z.SDiv(xc, yc)
	case evm.MOD:
		z.Mod(xc, yc)
	case evm.SMOD:
		z.SMod(xc, yc)
	case evm.EXP:
		z.Exp(xc, yc)
	case evm.SIGNEXTEND:
		z.ExtendSign(yc, xc)
	case evm.LT:
		return boolVal(xc.Lt(yc))
	case evm.GT:
		return boolVal(xc.Gt(yc))
	case evm.SLT:
		return boolVal(xc.Slt(yc))
	case evm.SGT:
		return boolVal(xc.Sgt(yc))
	case evm.EQ:
		return boolVal(xc.Eq(yc))
	case evm.AND:
		z.And(xc, yc)
	case evm.OR:
		z.Or(xc, yc)
	case evm.XOR:
		z.Xor(xc, yc)
	case evm.BYTE:
		z.Set(yc)
		z.Byte(xc)
	case evm.SHL:
		if xc.LtUint64(256) {
			z.Lsh(yc, uint(xc.Uint64()))
		}
	case evm.SHR:
		if xc.LtUint64(256) {
			z.Rsh(yc, uint(xc.Uint64()))
		}
	case evm.SAR:
		if xc.GtUint64(256) {
			if yc.Sign() >= 0 {
				return Val{V: uint256.NewInt(0)}
			}
			return Val{V: new(uint256.Int).SetAllOne()}
		}
		z.SRsh(yc, uint(xc.Uint64()))
	default:
		return BinaryOp{Op: op, X: x, Y: y}
	}
	return Val{V: z}
}

// foldOrUnary applies op to x.
func foldOrUnary(op OpKind, x Expr) Expr {
	xc, ok := AsConst(x)
	if !ok {
		return UnaryOp{Op: op, X: x}
	}
	switch op {
	case evm.ISZERO:
		return boolVal(xc.IsZero())
	case evm.NOT:
		return Val{V: new(uint256.Int).Not(xc)}
	default:
		return UnaryOp{Op: op, X: x}
	}
}

// foldOrTernary applies op (ADDMOD/MULMOD) to x, y under modulus z.
func foldOrTernary(op OpKind, x, y, z Expr) Expr {
	xc, xOk := AsConst(x)
	yc, yOk := AsConst(y)
	zc, zOk := AsConst(z)
	if !xOk || !yOk || !zOk {
		return TernaryOp{Op: op, X: x, Y: y, Z: z}
	}

	r := new(uint256.Int)
	switch op {
	case evm.ADDMOD:
		if !zc.IsZero() {
			r.AddMod(xc, yc, zc)
		}
	case evm.MULMOD:
		r.MulMod(xc, yc, zc)
	default:
		return TernaryOp{Op: op, X: x, Y: y, Z: z}
	}
	return Val{V: r}
}

func boolVal(b bool) Expr {
	if b {
		return Val{V: uint256.NewInt(1)}
	}
	return Val{V: uint256.NewInt(0)}
}
