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

// Optimize runs the two HIR passes spec §4.6 describes: constant-driven
// control-flow collapsing, then unused-variable elimination. Both are
// idempotent; running Optimize twice on its own output is a no-op.
func Optimize(h *Hir) *Hir {
	stmts := collapseConstantControlFlow(h.Stmts)
	stmts = eliminateDeadAssigns(stmts)
	return &Hir{Stmts: stmts, Vars: h.Vars}
}

// collapseConstantControlFlow folds If(Val(c), a, b) down to whichever
// branch c selects, and unwraps a Loop whose condition is already known
// not to re-enter the body (the single symbolic pass the executor ran is
// then the loop's only pass, so the Loop wrapper is just structure with
// nothing left to repeat).
func collapseConstantControlFlow(stmts []Statement) []Statement {
	out := make([]Statement, 0, len(stmts))
	for _, s := range stmts {
		switch v := s.(type) {
		case If:
			true_ := collapseConstantControlFlow(v.True)
			false_ := collapseConstantControlFlow(v.False)
			if c, ok := AsConst(v.Cnd); ok {
				if !c.IsZero() {
					out = append(out, true_...)
				} else {
					out = append(out, false_...)
				}
				continue
			}
			out = append(out, If{Cnd: v.Cnd, True: true_, False: false_})

		case Loop:
			body := collapseConstantControlFlow(v.Body)
			if c, ok := AsConst(v.Cnd); ok {
				loops := !c.IsZero() == v.IsTrueBrLoop
				if !loops {
					out = append(out, stripLoopEdges(body, v.Id)...)
					continue
				}
			}
			out = append(out, Loop{Id: v.Id, CndBlock: v.CndBlock, Cnd: v.Cnd, IsTrueBrLoop: v.IsTrueBrLoop, Body: body})

		default:
			out = append(out, s)
		}
	}
	return out
}

// stripLoopEdges drops Continue statements targeting loopId once the
// Loop wrapper holding them is unwrapped — with no loop left to re-enter,
// a Continue is just "fall off the end of this path", a no-op. Break has
// no Statement of its own to strip (exec.go never emits one).
func stripLoopEdges(stmts []Statement, loopId evm.Offset) []Statement {
	out := make([]Statement, 0, len(stmts))
	for _, s := range stmts {
		switch v := s.(type) {
		case Continue:
			if v.LoopId == loopId {
				continue
			}
			out = append(out, s)
		case If:
			out = append(out, If{Cnd: v.Cnd, True: stripLoopEdges(v.True, loopId), False: stripLoopEdges(v.False, loopId)})
		default:
			out = append(out, s)
		}
	}
	return out
}

// eliminateDeadAssigns repeatedly drops Assign statements whose VarId is
// never read, recursing until a fixed point: removing one dead Assign can
// make the variables its own expression referenced dead in turn.
func eliminateDeadAssigns(stmts []Statement) []Statement {
	for {
		uses := map[VarId]bool{}
		collectUses(stmts, uses)
		next, changed := dropDeadAssigns(stmts, uses)
		if !changed {
			return next
		}
		stmts = next
	}
}

func dropDeadAssigns(stmts []Statement, uses map[VarId]bool) ([]Statement, bool) {
	out := make([]Statement, 0, len(stmts))
	changed := false
	for _, s := range stmts {
		switch v := s.(type) {
		case Assign:
			if !uses[v.Var] {
				changed = true
				continue
			}
			out = append(out, s)
		case If:
			true_, c1 := dropDeadAssigns(v.True, uses)
			false_, c2 := dropDeadAssigns(v.False, uses)
			if c1 || c2 {
				changed = true
			}
			out = append(out, If{Cnd: v.Cnd, True: true_, False: false_})
		case Loop:
			body, c := dropDeadAssigns(v.Body, uses)
			if c {
				changed = true
			}
			out = append(out, Loop{Id: v.Id, CndBlock: v.CndBlock, Cnd: v.Cnd, IsTrueBrLoop: v.IsTrueBrLoop, Body: body})
		default:
			out = append(out, s)
		}
	}
	return out, changed
}

func collectUses(stmts []Statement, uses map[VarId]bool) {
	for _, s := range stmts {
		switch v := s.(type) {
		case Assign:
			collectExprUses(v.Expr, uses)
		case MemStore:
			collectExprUses(v.Addr, uses)
			collectExprUses(v.Val, uses)
		case MemStore8:
			collectExprUses(v.Addr, uses)
			collectExprUses(v.Val, uses)
		case SStore:
			collectExprUses(v.Addr, uses)
			collectExprUses(v.Val, uses)
		case Log:
			collectExprUses(v.Offset, uses)
			collectExprUses(v.Len, uses)
			for _, t := range v.Topics {
				collectExprUses(t, uses)
			}
		case If:
			collectExprUses(v.Cnd, uses)
			collectUses(v.True, uses)
			collectUses(v.False, uses)
		case Loop:
			collectExprUses(v.Cnd, uses)
			collectUses(v.Body, uses)
		case Result:
			collectExprUses(v.Offset, uses)
			collectExprUses(v.Len, uses)
		case Continue, Stop, Abort:
			// no Expr operands
		}
	}
}

func collectExprUses(e Expr, uses map[VarId]bool) {
	switch v := e.(type) {
	case Val, MSize, Signer, ArgsSize:
		// leaves
	case Var:
		uses[v.Id] = true
	case MLoad:
		collectExprUses(v.Addr, uses)
	case SLoad:
		collectExprUses(v.Addr, uses)
	case Args:
		collectExprUses(v.Offset, uses)
	case UnaryOp:
		collectExprUses(v.X, uses)
	case BinaryOp:
		collectExprUses(v.X, uses)
		collectExprUses(v.Y, uses)
	case TernaryOp:
		collectExprUses(v.X, uses)
		collectExprUses(v.Y, uses)
		collectExprUses(v.Z, uses)
	case Hash:
		collectExprUses(v.Offset, uses)
		collectExprUses(v.Len, uses)
	}
}
