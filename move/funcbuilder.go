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

	"github.com/pontem-network/e2m-go/evm"
	"github.com/pontem-network/e2m-go/mir"
)

// funcBuilder walks one function's mir.Statement list into Move
// bytecode. Forward branches (If's BrFalse/Branch) are patched in place
// as soon as their target offset is known; loop back-edges (Continue,
// and the loop's own repeat jump) are known immediately since they
// always target an already-emitted offset — together this realizes
// spec §4.9's "two-pass: first pass records label offsets, second pass
// resolves targets" without needing a deferred fixup list, since MIR's
// control flow is already structured (no arbitrary cross-block jumps).
type funcBuilder struct {
	emitter    *Emitter
	code       []Instruction
	loopStarts map[evm.Offset]uint16
}

func (f *funcBuilder) Emit(i Instruction) { f.code = append(f.code, i) }

func (f *funcBuilder) Intrinsic(name string, arity int) uint16 {
	return f.emitter.Intrinsic(name, arity)
}

func (f *funcBuilder) offset() uint16 { return uint16(len(f.code)) }

func (f *funcBuilder) patch(instrIdx int, target uint16) {
	f.code[instrIdx].Index = target
}

func (f *funcBuilder) genStmts(stmts []mir.Statement) {
	for _, s := range stmts {
		f.genStmt(s)
	}
}

func (f *funcBuilder) genStmt(s mir.Statement) {
	switch s := s.(type) {
	case mir.InitStorage:
		f.Emit(MoveLoc(uint16(s.Signer.Index)))
		f.Emit(Call(f.Intrinsic("get_storage", 1)))
		f.Emit(StLoc(uint16(s.Storage.Index)))

	case mir.Assign:
		f.genExpr(s.Expr)
		f.Emit(StLoc(uint16(s.Var.Index)))

	case mir.MemStore:
		f.Emit(CopyLoc(uint16(s.Memory.Index)))
		f.genExpr(s.Offset)
		f.genExpr(s.Val)
		f.Emit(Call(f.Intrinsic("mem_store", 3)))

	case mir.MemStore8:
		f.Emit(CopyLoc(uint16(s.Memory.Index)))
		f.genExpr(s.Offset)
		f.genExpr(s.Val)
		f.Emit(Call(f.Intrinsic("mem_store8", 3)))

	case mir.SStore:
		f.Emit(CopyLoc(uint16(s.Storage.Index)))
		f.genExpr(s.Key)
		f.genExpr(s.Val)
		f.Emit(Call(f.Intrinsic("storage_store", 3)))

	case mir.Log:
		f.Emit(CopyLoc(uint16(s.Memory.Index)))
		f.genExpr(s.Offset)
		f.genExpr(s.Len)
		for _, top := range s.Topics {
			f.genExpr(top)
		}
		f.Emit(Call(f.Intrinsic("emit_log", 3+len(s.Topics))))

	case mir.If:
		f.genExpr(s.Cnd)
		brFalseIdx := len(f.code)
		f.Emit(BrFalse(0))
		f.genStmts(s.True)
		if len(s.False) == 0 {
			f.patch(brFalseIdx, f.offset())
			return
		}
		branchIdx := len(f.code)
		f.Emit(Branch(0))
		f.patch(brFalseIdx, f.offset())
		f.genStmts(s.False)
		f.patch(branchIdx, f.offset())

	case mir.Loop:
		loopStart := f.offset()
		f.loopStarts[s.Id] = loopStart
		f.genStmts(s.CndCalc)
		f.genExpr(s.Cnd)
		brFalseIdx := len(f.code)
		f.Emit(BrFalse(0))
		f.genStmts(s.Body)
		f.Emit(Branch(loopStart))
		f.patch(brFalseIdx, f.offset())

	case mir.Continue:
		f.Emit(Branch(f.loopStarts[s.LoopId]))

	case mir.Abort:
		f.Emit(LdU128(big.NewInt(int64(s.Code))))
		f.Emit(Abort())

	case mir.Result:
		if !f.emitter.hiddenOutput {
			for _, v := range s.Values {
				f.genExpr(v)
			}
		}
		f.Emit(Ret())
	}
}

func (f *funcBuilder) genExpr(te mir.TypedExpr) {
	switch e := te.Expr.(type) {
	case mir.Const:
		if e.Val.IsBool {
			if e.Val.Bool {
				f.Emit(LdTrue())
			} else {
				f.Emit(LdFalse())
			}
			return
		}
		f.emitter.math.PushConst(f, e.Val.Num)

	case mir.Read:
		f.Emit(CopyLoc(uint16(e.Var.Index)))

	case mir.SignerAddress:
		f.Emit(CopyLoc(uint16(e.Signer.Index)))
		f.Emit(Call(f.Intrinsic("signer_address_of", 1)))

	case mir.KeccakCall:
		f.Emit(CopyLoc(uint16(e.Memory.Index)))
		f.genExpr(e.Offset)
		f.genExpr(e.Len)
		f.Emit(Call(f.Intrinsic("keccak256", 3)))

	case mir.InitMemory:
		f.Emit(Call(f.Intrinsic("init_memory", 0)))

	case mir.MLoad:
		f.Emit(CopyLoc(uint16(e.Memory.Index)))
		f.genExpr(e.Offset)
		f.Emit(Call(f.Intrinsic("mem_load", 2)))

	case mir.SLoad:
		f.Emit(CopyLoc(uint16(e.Storage.Index)))
		f.genExpr(e.Key)
		f.Emit(Call(f.Intrinsic("storage_load", 2)))

	case mir.Unary:
		f.genExpr(e.X)
		f.emitter.math.Unary(f, e.Op)

	case mir.Binary:
		f.genExpr(e.X)
		f.genExpr(e.Y)
		f.genBinary(e.Op, e.X.Type)

	case mir.Ternary:
		f.genExpr(e.X)
		f.genExpr(e.Y)
		f.genExpr(e.Z)
		f.emitter.math.Ternary(f, e.Op)

	case mir.Cast:
		f.genExpr(e.X)
		f.genCast(e.X.Type, te.Type)
	}
}

// genBinary dispatches a just-pushed pair of operands: boolean logical
// connectives use Move's native Bool-typed opcodes, everything else goes
// through the fixed MathModel.
func (f *funcBuilder) genBinary(op mir.Operation, operandType mir.SType) {
	if operandType == mir.Bool {
		switch op {
		case mir.Eq:
			f.Emit(Instruction{Op: OpEq})
		case mir.And:
			f.Emit(Instruction{Op: OpAnd})
		case mir.Or:
			f.Emit(Instruction{Op: OpOr})
		case mir.Xor:
			// No native bool Xor: A xor B == not (A == B).
			f.Emit(Instruction{Op: OpEq})
			f.Emit(Instruction{Op: OpNot})
		default:
			f.emitter.math.Binary(f, op)
		}
		return
	}
	f.emitter.math.Binary(f, op)
}

func (f *funcBuilder) genCast(from, to mir.SType) {
	switch {
	case from == to:
		// no-op
	case from == mir.Bool && to == mir.Number:
		f.Emit(Call(f.Intrinsic("bool_to_num", 1)))
	case from == mir.Number && to == mir.Bool:
		f.Emit(Call(f.Intrinsic("num_to_bool", 1)))
	}
}
