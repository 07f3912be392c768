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
	"github.com/holiman/uint256"

	"github.com/pontem-network/e2m-go/abi"
	"github.com/pontem-network/e2m-go/evm"
	"github.com/pontem-network/e2m-go/hir"
)

// binaryOps maps the EVM opcodes behind hir.BinaryOp to their MIR
// Operation, grounded on translator/eth/src/bytecode/mir/translation/
// binary.rs's exhaustive opcode match.
var binaryOps = map[evm.OpCode]Operation{
	evm.ADD: Add, evm.SUB: Sub, evm.MUL: Mul, evm.DIV: Div, evm.SDIV: SDiv,
	evm.MOD: Mod, evm.SMOD: SMod, evm.EXP: Exp, evm.SIGNEXTEND: SignExtend,
	evm.LT: Lt, evm.GT: Gt, evm.SLT: SLt, evm.SGT: SGt, evm.EQ: Eq,
	evm.AND: And, evm.OR: Or, evm.XOR: Xor, evm.BYTE: Byte,
	evm.SHL: Shl, evm.SHR: Shr, evm.SAR: Sar,
}

// comparisonOps always yield Bool regardless of operand type.
var comparisonOps = map[Operation]bool{
	Lt: true, Gt: true, SLt: true, SGt: true,
}

// logicalOps stay Bool when both operands are already Bool (spec §4.7
// step 3's "equality on two Bool operands stays Bool" extended to the
// other bitwise connectives Solidity compiles logical &&/|| into).
var logicalOps = map[Operation]bool{
	Eq: true, And: true, Or: true, Xor: true,
}

// noMoveEquivalent lists opcodes the translator rejects outright: the
// CALL/CREATE family is already stopped at HIR, so only the environment
// and external-code reads reach here (spec §4.7).
var noMoveEquivalent = map[evm.OpCode]bool{
	evm.CODESIZE: true, evm.GASPRICE: true, evm.RETURNDATASIZE: true,
	evm.COINBASE: true, evm.TIMESTAMP: true, evm.NUMBER: true,
	evm.DIFFICULTY: true, evm.GASLIMIT: true, evm.CHAINID: true,
	evm.SELFBALANCE: true, evm.BASEFEE: true, evm.PC: true, evm.GAS: true,
	evm.BALANCE: true, evm.EXTCODESIZE: true, evm.EXTCODEHASH: true,
	evm.BLOCKHASH: true, evm.CALLDATACOPY: true, evm.CODECOPY: true,
	evm.RETURNDATACOPY: true, evm.EXTCODECOPY: true,
}

// Translator lowers one function's hir.Hir into Mir against a fixed ABI
// method (spec §4.7).
type Translator struct {
	method  *abi.Method
	locals  *Locals
	signer  Variable
	storage Variable
	memory  Variable
	params  []Variable
	vars    map[hir.VarId]Variable
}

// Function runs the full lowering: parameter/Signer/Storage/Memory
// allocation (step 1-2), statement-by-statement translation with Cast
// insertion (step 3), Loop conversion (step 4), and Result decoding
// against method's outputs (step 5), using a per-type free list for the
// local plan (step 6).
func Function(h *hir.Hir, method *abi.Method) (*Mir, error) {
	t := &Translator{
		method: method,
		locals: NewLocals(),
		vars:   map[hir.VarId]Variable{},
	}
	t.signer = t.locals.Borrow(Signer)
	t.storage = t.locals.Borrow(Storage)
	t.memory = t.locals.Borrow(Memory)
	t.params = make([]Variable, len(method.Inputs))
	for i := range method.Inputs {
		t.params[i] = t.locals.Borrow(Number)
	}

	prelude := []Statement{
		InitStorage{Storage: t.storage, Signer: t.signer},
		Assign{Var: t.memory, Expr: TypedExpr{Expr: InitMemory{}, Type: Memory}},
	}

	body, err := t.translateStmts(h.Stmts)
	if err != nil {
		return nil, err
	}

	return &Mir{Stmts: append(prelude, body...), Locals: t.locals.Plan()}, nil
}

func (t *Translator) translateStmts(stmts []hir.Statement) ([]Statement, error) {
	out := make([]Statement, 0, len(stmts))
	for _, s := range stmts {
		translated, err := t.translateStmt(s)
		if err != nil {
			return nil, err
		}
		out = append(out, translated...)
	}
	return out, nil
}

func (t *Translator) translateStmt(s hir.Statement) ([]Statement, error) {
	switch s := s.(type) {
	case hir.Assign:
		te, err := t.translateExpr(s.Expr)
		if err != nil {
			return nil, err
		}
		v, exists := t.vars[s.Var]
		if !exists {
			v = t.locals.Borrow(te.Type)
			t.vars[s.Var] = v
		} else if v.Type != te.Type {
			te = t.cast(te, v.Type)
		}
		return []Statement{Assign{Var: v, Expr: te}}, nil

	case hir.MemStore:
		addr, val, err := t.translatePair(s.Addr, s.Val, Number, Number)
		if err != nil {
			return nil, err
		}
		return []Statement{MemStore{Memory: t.memory, Offset: addr, Val: val}}, nil

	case hir.MemStore8:
		addr, val, err := t.translatePair(s.Addr, s.Val, Number, Number)
		if err != nil {
			return nil, err
		}
		return []Statement{MemStore8{Memory: t.memory, Offset: addr, Val: val}}, nil

	case hir.SStore:
		key, val, err := t.translatePair(s.Addr, s.Val, Number, Number)
		if err != nil {
			return nil, err
		}
		return []Statement{SStore{Storage: t.storage, Key: key, Val: val}}, nil

	case hir.Log:
		offset, length, err := t.translatePair(s.Offset, s.Len, Number, Number)
		if err != nil {
			return nil, err
		}
		topics := make([]TypedExpr, len(s.Topics))
		for i, top := range s.Topics {
			te, err := t.translateExpr(top)
			if err != nil {
				return nil, err
			}
			topics[i] = t.cast(te, Number)
		}
		return []Statement{Log{Storage: t.storage, Memory: t.memory, Offset: offset, Len: length, Topics: topics}}, nil

	case hir.If:
		cnd, err := t.translateExpr(s.Cnd)
		if err != nil {
			return nil, err
		}
		trueBody, err := t.translateStmts(s.True)
		if err != nil {
			return nil, err
		}
		falseBody, err := t.translateStmts(s.False)
		if err != nil {
			return nil, err
		}
		return []Statement{If{Cnd: t.cast(cnd, Bool), True: trueBody, False: falseBody}}, nil

	case hir.Loop:
		cnd, err := t.translateExpr(s.Cnd)
		if err != nil {
			return nil, err
		}
		cnd = t.cast(cnd, Bool)
		if !s.IsTrueBrLoop {
			cnd = TypedExpr{Expr: Unary{Op: IsZero, X: t.cast(cnd, Number)}, Type: Bool}
		}
		body, err := t.translateStmts(s.Body)
		if err != nil {
			return nil, err
		}
		return []Statement{Loop{Id: s.Id, Cnd: cnd, Body: body}}, nil

	case hir.Continue:
		return []Statement{Continue{LoopId: s.LoopId}}, nil

	case hir.Stop:
		// STOP has no dedicated MIR node: a successful return with no
		// output is just an empty Result (mirrors the original ir's
		// Statement enum, which has no Stop variant of its own).
		return []Statement{Result{}}, nil

	case hir.Abort:
		return []Statement{Abort{Code: s.Code}}, nil

	case hir.Result:
		values, err := t.decodeResult(s.Offset, s.Len)
		if err != nil {
			return nil, err
		}
		return []Statement{Result{Values: values}}, nil

	default:
		return nil, &Error{Kind: UnsupportedOp, Detail: "unknown hir statement"}
	}
}

// decodeResult turns a RETURN's (offset, len) memory region into one
// TypedExpr per ABI output word (spec §4.7 step 5). Both must be
// compile-time constants: a dynamically sized return has no fixed ABI
// shape to decode against.
func (t *Translator) decodeResult(offsetExpr, lenExpr hir.Expr) ([]TypedExpr, error) {
	lenC, ok := hir.AsConst(lenExpr)
	if !ok {
		return nil, &Error{Kind: UnsupportedOp, Detail: "non-constant return length"}
	}
	if lenC.IsZero() {
		return nil, nil
	}
	offsetC, ok := hir.AsConst(offsetExpr)
	if !ok {
		return nil, &Error{Kind: UnsupportedOp, Detail: "non-constant return offset"}
	}
	words := lenC.Uint64() / 32
	if words*32 != lenC.Uint64() || int(words) != len(t.method.Outputs) {
		return nil, &Error{Kind: TypeMismatch, Detail: "return length does not match ABI outputs"}
	}
	values := make([]TypedExpr, words)
	for i := uint64(0); i < words; i++ {
		slot := new(uint256.Int).Add(offsetC, uint256.NewInt(i*32))
		mload := TypedExpr{
			Expr: MLoad{Memory: t.memory, Offset: TypedExpr{Expr: Const{Val: NumValue(slot)}, Type: Number}},
			Type: Number,
		}
		if t.method.Outputs[i].Type == abi.Bool {
			mload = t.cast(mload, Bool)
		}
		values[i] = mload
	}
	return values, nil
}

func (t *Translator) translatePair(xe, ye hir.Expr, xt, yt SType) (TypedExpr, TypedExpr, error) {
	x, err := t.translateExpr(xe)
	if err != nil {
		return TypedExpr{}, TypedExpr{}, err
	}
	y, err := t.translateExpr(ye)
	if err != nil {
		return TypedExpr{}, TypedExpr{}, err
	}
	return t.cast(x, xt), t.cast(y, yt), nil
}

func (t *Translator) cast(te TypedExpr, target SType) TypedExpr {
	if te.Type == target {
		return te
	}
	return TypedExpr{Expr: Cast{X: te}, Type: target}
}

func (t *Translator) translateExpr(e hir.Expr) (TypedExpr, error) {
	switch e := e.(type) {
	case hir.Val:
		return TypedExpr{Expr: Const{Val: NumValue(e.V)}, Type: Number}, nil

	case hir.Var:
		v, ok := t.vars[e.Id]
		if !ok {
			return TypedExpr{}, &Error{Kind: TypeMismatch, Detail: "use before assignment"}
		}
		return TypedExpr{Expr: Read{Var: v}, Type: v.Type}, nil

	case hir.MLoad:
		addr, err := t.translateExpr(e.Addr)
		if err != nil {
			return TypedExpr{}, err
		}
		return TypedExpr{Expr: MLoad{Memory: t.memory, Offset: t.cast(addr, Number)}, Type: Number}, nil

	case hir.SLoad:
		addr, err := t.translateExpr(e.Addr)
		if err != nil {
			return TypedExpr{}, err
		}
		return TypedExpr{Expr: SLoad{Storage: t.storage, Key: t.cast(addr, Number)}, Type: Number}, nil

	case hir.Signer:
		return TypedExpr{Expr: SignerAddress{Signer: t.signer}, Type: Number}, nil

	case hir.ArgsSize:
		return TypedExpr{Expr: Const{Val: NumValue(uint256.NewInt(uint64(len(t.method.Inputs)) * 32))}, Type: Number}, nil

	case hir.Args:
		idx, err := constIndex(e.Offset, 32, 4)
		if err != nil {
			return TypedExpr{}, err
		}
		return t.param(idx)

	case hir.Hash:
		off, length, err := t.translatePair(e.Offset, e.Len, Number, Number)
		if err != nil {
			return TypedExpr{}, err
		}
		return TypedExpr{Expr: KeccakCall{Memory: t.memory, Offset: off, Len: length}, Type: Number}, nil

	case hir.MSize:
		return TypedExpr{}, &Error{Kind: UnsupportedOp, Detail: "MSIZE has no Move equivalent"}

	case hir.UnaryOp:
		return t.translateUnary(e)

	case hir.BinaryOp:
		return t.translateBinary(e)

	case hir.TernaryOp:
		return t.translateTernary(e)

	default:
		return TypedExpr{}, &Error{Kind: UnsupportedOp, Detail: "unknown hir expression"}
	}
}

// param returns the idx-th calldata argument variable as a Read.
func (t *Translator) param(idx int) (TypedExpr, error) {
	if idx < 0 || idx >= len(t.params) {
		return TypedExpr{}, &Error{Kind: UnsupportedOp, Detail: "calldata offset out of range"}
	}
	v := t.params[idx]
	return TypedExpr{Expr: Read{Var: v}, Type: v.Type}, nil
}

// constIndex requires e to be a compile-time constant, subtracts bias,
// and divides by width, failing UnsupportedOp on any non-constant or
// misaligned offset (no fixed calldata layout to decode otherwise).
func constIndex(e hir.Expr, width, bias uint64) (int, error) {
	c, ok := hir.AsConst(e)
	if !ok {
		return 0, &Error{Kind: UnsupportedOp, Detail: "non-constant calldata offset"}
	}
	off := c.Uint64()
	if off < bias || (off-bias)%width != 0 {
		return 0, &Error{Kind: UnsupportedOp, Detail: "misaligned calldata offset"}
	}
	return int(off-bias) / int(width), nil
}

func (t *Translator) translateUnary(e hir.UnaryOp) (TypedExpr, error) {
	if noMoveEquivalent[e.Op] {
		return TypedExpr{}, &Error{Kind: UnsupportedOp, Detail: e.Op.String()}
	}
	x, err := t.translateExpr(e.X)
	if err != nil {
		return TypedExpr{}, err
	}
	switch e.Op {
	case evm.ISZERO:
		return TypedExpr{Expr: Unary{Op: IsZero, X: t.cast(x, Number)}, Type: Bool}, nil
	case evm.NOT:
		return TypedExpr{Expr: Unary{Op: Not, X: t.cast(x, Number)}, Type: Number}, nil
	default:
		return TypedExpr{}, &Error{Kind: UnsupportedOp, Detail: e.Op.String()}
	}
}

func (t *Translator) translateBinary(e hir.BinaryOp) (TypedExpr, error) {
	op, ok := binaryOps[e.Op]
	if !ok {
		return TypedExpr{}, &Error{Kind: UnsupportedOp, Detail: e.Op.String()}
	}
	x, err := t.translateExpr(e.X)
	if err != nil {
		return TypedExpr{}, err
	}
	y, err := t.translateExpr(e.Y)
	if err != nil {
		return TypedExpr{}, err
	}
	if logicalOps[op] && x.Type == Bool && y.Type == Bool {
		return TypedExpr{Expr: Binary{Op: op, X: x, Y: y}, Type: Bool}, nil
	}
	x, y = t.cast(x, Number), t.cast(y, Number)
	if comparisonOps[op] || op == Eq {
		return TypedExpr{Expr: Binary{Op: op, X: x, Y: y}, Type: Bool}, nil
	}
	return TypedExpr{Expr: Binary{Op: op, X: x, Y: y}, Type: Number}, nil
}

func (t *Translator) translateTernary(e hir.TernaryOp) (TypedExpr, error) {
	var op Operation
	switch e.Op {
	case evm.ADDMOD:
		op = AddMod
	case evm.MULMOD:
		op = MulMod
	default:
		return TypedExpr{}, &Error{Kind: UnsupportedOp, Detail: e.Op.String()}
	}
	x, y, err := t.translatePair(e.X, e.Y, Number, Number)
	if err != nil {
		return TypedExpr{}, err
	}
	z, err := t.translateExpr(e.Z)
	if err != nil {
		return TypedExpr{}, err
	}
	return TypedExpr{Expr: Ternary{Op: op, X: x, Y: y, Z: t.cast(z, Number)}, Type: Number}, nil
}
