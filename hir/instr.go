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

// execInstr applies one instruction to st, returning any Statement it
// produces directly (Assign nodes are emitted lazily by the optimizer,
// not here — the executor just grows the expression stack). isLast tells
// it whether in is the block's terminator, which is where JUMP/JUMPI/
// STOP/RETURN/REVERT/INVALID/SELFDESTRUCT get their HIR-level meaning;
// everywhere else those opcodes cannot occur (package evm's partitioner
// only allows them as a block's final instruction).
func (e *Executor) execInstr(in evm.Instruction, st *state, isLast bool) ([]Statement, error) {
	op := in.Op

	switch {
	case op.IsPush():
		st.push(e.intern(Val{V: new(uint256.Int).SetBytes(in.Arg)}))
		return nil, nil
	case op.IsDup():
		v, ok := st.dup(op.DupN())
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		st.push(v)
		return nil, nil
	case op.IsSwap():
		if !st.swap(op.SwapN()) {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		return nil, nil
	case op.IsLog():
		return e.execLog(in, st, op.LogN())
	}

	switch op {
	case evm.JUMPDEST:
		return nil, nil
	case evm.POP:
		if _, ok := st.pop(); !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		return nil, nil

	case evm.ADD, evm.MUL, evm.SUB, evm.DIV, evm.SDIV, evm.MOD, evm.SMOD,
		evm.EXP, evm.SIGNEXTEND, evm.LT, evm.GT, evm.SLT, evm.SGT, evm.EQ,
		evm.AND, evm.OR, evm.XOR, evm.BYTE, evm.SHL, evm.SHR, evm.SAR:
		x, y, ok := e.pop2(st)
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		st.push(e.intern(foldOrBinary(op, x, y)))
		return nil, nil

	case evm.ISZERO, evm.NOT:
		x, ok := st.pop()
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		st.push(e.intern(foldOrUnary(op, x)))
		return nil, nil

	case evm.ADDMOD, evm.MULMOD:
		x, y, z, ok := e.pop3(st)
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		st.push(e.intern(foldOrTernary(op, x, y, z)))
		return nil, nil

	case evm.KECCAK256:
		off, ln, ok := e.pop2(st)
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		st.push(e.intern(Hash{Offset: off, Len: ln}))
		return nil, nil

	case evm.ADDRESS, evm.ORIGIN, evm.CALLER, evm.CALLVALUE:
		st.push(Signer{})
		return nil, nil

	case evm.CALLDATASIZE:
		st.push(ArgsSize{})
		return nil, nil

	case evm.CALLDATALOAD:
		addr, ok := st.pop()
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		st.push(e.intern(Args{Offset: addr}))
		return nil, nil

	case evm.CODESIZE, evm.GASPRICE, evm.RETURNDATASIZE, evm.COINBASE,
		evm.TIMESTAMP, evm.NUMBER, evm.DIFFICULTY, evm.GASLIMIT, evm.CHAINID,
		evm.SELFBALANCE, evm.BASEFEE, evm.PC, evm.GAS:
		// No Move equivalent; carried through as an opaque environment read
		// so the HIR executor never fails on it. The MIR translator rejects
		// these with UnsupportedOp (spec §4.7) rather than the executor,
		// since whether a read is ever used in a result is only knowable
		// after optimization.
		st.push(e.intern(UnaryOp{Op: op, X: Val{V: uint256.NewInt(0)}}))
		return nil, nil

	case evm.BALANCE, evm.EXTCODESIZE, evm.EXTCODEHASH, evm.BLOCKHASH:
		addr, ok := st.pop()
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		st.push(e.intern(UnaryOp{Op: op, X: addr}))
		return nil, nil

	case evm.MLOAD:
		addr, ok := st.pop()
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		if v, ok := st.mload(addr); ok {
			st.push(v)
		} else {
			st.push(e.intern(MLoad{Addr: addr}))
		}
		return nil, nil

	case evm.MSTORE:
		addr, val, ok := e.pop2(st)
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		st.mstore(addr, val)
		return []Statement{MemStore{Addr: addr, Val: val}}, nil

	case evm.MSTORE8:
		addr, val, ok := e.pop2(st)
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		return []Statement{MemStore8{Addr: addr, Val: val}}, nil

	case evm.SLOAD:
		addr, ok := st.pop()
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		st.push(e.intern(SLoad{Addr: addr}))
		return nil, nil

	case evm.SSTORE:
		addr, val, ok := e.pop2(st)
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		return []Statement{SStore{Addr: addr, Val: val}}, nil

	case evm.MSIZE:
		st.push(MSize{})
		return nil, nil

	case evm.CALLDATACOPY, evm.CODECOPY, evm.RETURNDATACOPY:
		dest, src, _, ok := e.pop3(st)
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		val := e.intern(UnaryOp{Op: op, X: src})
		st.mstore(dest, val)
		return []Statement{MemStore{Addr: dest, Val: val}}, nil

	case evm.EXTCODECOPY:
		addr, dest, src, ok := e.pop3(st)
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		if _, ok := st.pop(); !ok { // len
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: op}
		}
		val := e.intern(BinaryOp{Op: op, X: addr, Y: src})
		st.mstore(dest, val)
		return []Statement{MemStore{Addr: dest, Val: val}}, nil

	case evm.CALL, evm.CALLCODE, evm.DELEGATECALL, evm.STATICCALL,
		evm.CREATE, evm.CREATE2:
		return nil, &Error{Kind: UnsupportedOp, Offset: in.Offset, Op: op,
			Detail: "external calls and contract creation are out of scope"}

	default:
		if isLast {
			return e.execTerminator(in, st)
		}
		return nil, &Error{Kind: UnknownOpcode, Offset: in.Offset, Op: op}
	}
}

// execTerminator handles the instructions package evm only ever places as
// a block's final one.
func (e *Executor) execTerminator(in evm.Instruction, st *state) ([]Statement, error) {
	switch in.Op {
	case evm.STOP:
		return []Statement{Stop{}}, nil

	case evm.JUMP:
		if _, ok := st.pop(); !ok { // target; already resolved by flow.BuildGraph
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: in.Op}
		}
		return nil, nil

	case evm.JUMPI:
		_, cond, ok := e.pop2(st)
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: in.Op}
		}
		st.pendingCond = cond
		return nil, nil

	case evm.RETURN:
		off, ln, ok := e.pop2(st)
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: in.Op}
		}
		return []Statement{Result{Offset: off, Len: ln}}, nil

	case evm.REVERT:
		off, ln, ok := e.pop2(st)
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: in.Op}
		}
		return []Statement{Abort{Code: revertCode(st, off, ln)}}, nil

	case evm.INVALID:
		return []Statement{Abort{Code: 0xff}}, nil

	case evm.SELFDESTRUCT:
		return nil, &Error{Kind: UnsupportedOp, Offset: in.Offset, Op: in.Op,
			Detail: "contract self-destruction is out of scope"}

	default:
		return nil, &Error{Kind: UnknownOpcode, Offset: in.Offset, Op: in.Op}
	}
}

// revertCode implements spec §4.5's REVERT-to-Abort mapping: (0,0) is
// Abort(0); otherwise the low byte of the first memory word if constant,
// else the generic code 1.
func revertCode(st *state, off, ln Expr) uint8 {
	offC, offOk := AsConst(off)
	lnC, lnOk := AsConst(ln)
	if offOk && lnOk && offC.IsZero() && lnC.IsZero() {
		return 0
	}
	if v, ok := st.mload(off); ok {
		if c, ok := AsConst(v); ok {
			return uint8(c.Uint64() & 0xff)
		}
	}
	return 1
}

// pop2 pops the top two stack slots, returning (top, second) — i.e. top
// is the operand EVM calls μs[0], second is μs[1]. Each opcode below
// names its operands the same way the yellow paper does so the mapping
// to (top, second) stays legible at the call site.
func (e *Executor) pop2(st *state) (top, second Expr, ok bool) {
	top, ok = st.pop()
	if !ok {
		return nil, nil, false
	}
	second, ok = st.pop()
	if !ok {
		return nil, nil, false
	}
	return top, second, true
}

// pop3 pops the top three stack slots, returning (top, second, third) —
// μs[0], μs[1], μs[2].
func (e *Executor) pop3(st *state) (top, second, third Expr, ok bool) {
	top, ok = st.pop()
	if !ok {
		return nil, nil, nil, false
	}
	second, ok = st.pop()
	if !ok {
		return nil, nil, nil, false
	}
	third, ok = st.pop()
	if !ok {
		return nil, nil, nil, false
	}
	return top, second, third, true
}

func (e *Executor) intern(x Expr) Expr { return e.cache.Intern(x) }
