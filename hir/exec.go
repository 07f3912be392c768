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
	"github.com/pontem-network/e2m-go/flow"
)

// Executor symbolically executes a function's Flow tree over its
// underlying block map, producing an Hir (spec §4.5). One Executor
// builds exactly one function's Hir: the VarId generator and Vars
// environment it owns must never be shared across functions (spec §5).
type Executor struct {
	blocks evm.BlockMap
	cache  *ExprCache
	gen    Gen
	vars   Vars
}

// NewExecutor returns an executor over the given block map (the runtime
// or constructor section's blocks, already partitioned by package evm).
func NewExecutor(blocks evm.BlockMap) *Executor {
	return &Executor{blocks: blocks, cache: NewExprCache(), vars: Vars{}}
}

// Run symbolically executes f and returns the resulting Hir.
func (e *Executor) Run(f flow.Flow) (*Hir, error) {
	st := newState()
	stmts, _, err := e.execNode(f, st)
	if err != nil {
		return nil, err
	}
	return &Hir{Stmts: stmts, Vars: e.vars}, nil
}

// execNode executes one Flow node against st, returning the statements it
// produced and the state afterward (for the caller to keep threading
// through a Sequence).
func (e *Executor) execNode(f flow.Flow, st *state) ([]Statement, *state, error) {
	switch n := f.(type) {
	case nil:
		return nil, st, nil
	case flow.Sequence:
		var stmts []Statement
		cur := st
		for _, item := range n.Items {
			s, next, err := e.execNode(item, cur)
			if err != nil {
				return nil, nil, err
			}
			stmts = append(stmts, s...)
			cur = next
		}
		return stmts, cur, nil
	case flow.Block:
		return e.execBlock(n.Id, st)
	case flow.If:
		return e.execIf(n, st)
	case flow.Loop:
		return e.execLoop(n, st)
	case flow.Continue:
		return []Statement{Continue{LoopId: n.Id}}, st, nil
	case flow.Break:
		// Break carries no HIR statement of its own: it is represented by
		// the enclosing If/Loop shape the MIR translator reconstructs from
		// which branch exits the loop body. Nothing to emit here.
		return nil, st, nil
	case flow.Stop:
		// The preceding Block already emitted its terminator's statement
		// (Stop/Abort/Result) while processing that block's own
		// instructions; Stop itself is just the flow tree's marker that no
		// further control transfer follows.
		return nil, st, nil
	default:
		return nil, st, nil
	}
}

// execBlock executes one basic block's instructions against st, including
// its terminator, returning the statements it produced.
func (e *Executor) execBlock(id flow.BlockId, st *state) ([]Statement, *state, error) {
	b, ok := e.blocks[id]
	if !ok {
		return nil, st, &Error{Kind: UnknownOpcode, Offset: evm.Offset(id), Detail: "no such block"}
	}
	var stmts []Statement
	for i, in := range b.Instructions {
		last := i == len(b.Instructions)-1
		s, err := e.execInstr(in, st, last)
		if err != nil {
			return nil, nil, err
		}
		stmts = append(stmts, s...)
	}
	return stmts, st, nil
}

// execIf executes an If region: the condition was captured into
// st.pendingCond by execInstr while processing the preceding block's
// JUMPI terminator (builder.go always emits Block{Cnd} immediately before
// If{Cnd: ...} in the same Sequence). Each branch runs over its own clone
// of st (spec §5: fork over merge); where the branches disagree on a
// stack slot or on memory contents, a fresh VarId reconciles them.
func (e *Executor) execIf(n flow.If, st *state) ([]Statement, *state, error) {
	cnd := st.pendingCond
	if cnd == nil {
		cnd = Val{V: uint256.NewInt(0)}
	}
	st.pendingCond = nil

	trueSt := st.clone()
	falseSt := st.clone()
	trueStmts, trueSt, err := e.execNode(n.TrueBr, trueSt)
	if err != nil {
		return nil, nil, err
	}
	falseStmts, falseSt, err := e.execNode(n.FalseBr, falseSt)
	if err != nil {
		return nil, nil, err
	}

	merged := e.mergeStates(trueSt, falseSt, &trueStmts, &falseStmts)
	return []Statement{If{Cnd: cnd, True: trueStmts, False: falseStmts}}, merged, nil
}

// mergeStates reconciles two branch-end states into one, generalizing any
// stack slot the branches disagree on into a fresh VarId bound per-branch
// (a φ-like merge, spec §4.5). Memory is only carried forward if both
// branches agree on it exactly; otherwise it is conservatively dropped so
// a later MLOAD materializes a fresh symbolic read rather than risking a
// stale value from only one path.
func (e *Executor) mergeStates(trueSt, falseSt *state, trueStmts, falseStmts *[]Statement) *state {
	merged := newState()
	n := len(trueSt.stack)
	if len(falseSt.stack) < n {
		n = len(falseSt.stack)
	}
	for i := 0; i < n; i++ {
		tv, fv := trueSt.stack[i], falseSt.stack[i]
		if tv.key() == fv.key() {
			merged.push(tv)
			continue
		}
		id := e.gen.Next()
		e.vars[id] = tv
		*trueStmts = append(*trueStmts, Assign{Var: id, Expr: tv})
		*falseStmts = append(*falseStmts, Assign{Var: id, Expr: fv})
		merged.push(Var{Id: id})
	}

	if sameMemLog(trueSt.mem, falseSt.mem) {
		merged.mem = trueSt.mem
	}
	return merged
}

func sameMemLog(a, b []memCell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].addr.key() != b[i].addr.key() || a[i].val.key() != b[i].val.key() {
			return false
		}
	}
	return true
}

// execLoop executes a natural loop's body once symbolically (this
// executor does not iterate to a fixed point across multiple passes — an
// acceptable simplification for an illustrative, never-re-entered
// translation pipeline, since the structured body statements already
// capture the Continue/Break edges the MIR translator needs). The
// resulting Hir Loop statement hoists the loop's guard condition and
// which branch re-enters the body, matching the MIR translator's
// expected shape (spec §4.7 step 4).
func (e *Executor) execLoop(n flow.Loop, st *state) ([]Statement, *state, error) {
	bodyStmts, after, err := e.execNode(n.Body, st.clone())
	if err != nil {
		return nil, nil, err
	}

	cndBlock := n.Id
	var cnd Expr = Val{V: uint256.NewInt(0)}
	isTrueBrLoop := false
	if len(bodyStmts) > 0 {
		if ifStmt, ok := bodyStmts[0].(If); ok {
			cnd = ifStmt.Cnd
			isTrueBrLoop = containsContinue(ifStmt.True, n.Id) || !containsContinue(ifStmt.False, n.Id)
		}
	}

	loopStmt := Loop{
		Id:           n.Id,
		CndBlock:     cndBlock,
		Cnd:          cnd,
		IsTrueBrLoop: isTrueBrLoop,
		Body:         bodyStmts,
	}
	return []Statement{loopStmt}, after, nil
}

// containsContinue reports whether stmts, searched shallowly (not
// descending into a nested Loop's own body, which has its own enclosing
// loop), contains a Continue targeting loopId.
func containsContinue(stmts []Statement, loopId evm.Offset) bool {
	for _, s := range stmts {
		switch v := s.(type) {
		case Continue:
			if v.LoopId == loopId {
				return true
			}
		case If:
			if containsContinue(v.True, loopId) || containsContinue(v.False, loopId) {
				return true
			}
		}
	}
	return false
}
