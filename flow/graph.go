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

package flow

import (
	"fmt"
	"sort"

	"github.com/pontem-network/e2m-go/evm"
)

// Kind classifies how control leaves a block.
type Kind int

const (
	KindNone  Kind = iota // STOP/RETURN/REVERT/INVALID/SELFDESTRUCT: no successors
	KindJump              // unconditional JUMP: one successor
	KindJumpI             // conditional JUMPI: two successors (true target, fall-through)
	KindFall              // falls through into the next block with no explicit jump
)

// ErrorKind distinguishes the flow builder's two failure modes (spec §7).
type ErrorKind int

const (
	UnresolvedJump ErrorKind = iota
	IrreducibleCFG
)

// Error is the FlowError of spec §7's taxonomy.
type Error struct {
	Kind   ErrorKind
	Offset evm.Offset
	Detail string
}

func (e *Error) Error() string {
	name := "unresolved-jump"
	if e.Kind == IrreducibleCFG {
		name = "irreducible-cfg"
	}
	return fmt.Sprintf("flow: %s: offset %d: %s", name, e.Offset, e.Detail)
}

// Graph is the resolved block successor graph that the structurer
// operates over.
type Graph struct {
	Blocks evm.BlockMap
	Entry  BlockId

	Kind      map[BlockId]Kind
	Succs     map[BlockId][]BlockId
	Preds     map[BlockId][]BlockId
	CondTrue  map[BlockId]BlockId // JUMPI's jump target
	CondFalse map[BlockId]BlockId // JUMPI's fall-through target
}

// BuildGraph resolves every block's successors from its terminator,
// failing with UnresolvedJump if a JUMP/JUMPI target is not a
// statically-resolvable constant (spec §9's open question: this module
// resolves constant PUSH-then-JUMP(I) pairs via evm.ConstStack and fails
// everything else, rather than attempting path-sensitive resolution).
func BuildGraph(blocks evm.BlockMap) (*Graph, error) {
	g := &Graph{
		Blocks:    blocks,
		Kind:      make(map[BlockId]Kind),
		Succs:     make(map[BlockId][]BlockId),
		Preds:     make(map[BlockId][]BlockId),
		CondTrue:  make(map[BlockId]BlockId),
		CondFalse: make(map[BlockId]BlockId),
	}
	ids := blocks.SortedIds()
	if len(ids) == 0 {
		return g, nil
	}
	g.Entry = ids[0]

	for _, id := range ids {
		b := blocks[id]
		term := b.Terminator()
		stack := evm.NewConstStack()
		for _, in := range b.Instructions[:len(b.Instructions)-1] {
			stack.Step(in)
		}
		switch term.Op {
		case evm.JUMP:
			target := stack.Pop()
			if target == nil {
				return nil, &Error{Kind: UnresolvedJump, Offset: term.Offset, Detail: "JUMP target is not a compile-time constant"}
			}
			t := target.Uint64()
			g.Kind[id] = KindJump
			g.Succs[id] = []BlockId{t}
		case evm.JUMPI:
			target := stack.Pop()
			stack.Pop() // condition, irrelevant to structure here
			if target == nil {
				return nil, &Error{Kind: UnresolvedJump, Offset: term.Offset, Detail: "JUMPI target is not a compile-time constant"}
			}
			t := target.Uint64()
			f := b.End()
			g.Kind[id] = KindJumpI
			g.CondTrue[id] = t
			g.CondFalse[id] = f
			g.Succs[id] = []BlockId{t, f}
		case evm.STOP, evm.RETURN, evm.REVERT, evm.INVALID, evm.SELFDESTRUCT:
			g.Kind[id] = KindNone
		default:
			// Falls through to whatever block starts at End(), if any.
			next := b.End()
			if _, ok := blocks[next]; ok {
				g.Kind[id] = KindFall
				g.Succs[id] = []BlockId{next}
			} else {
				g.Kind[id] = KindNone
			}
		}
	}

	for _, id := range ids {
		for _, s := range g.Succs[id] {
			g.Preds[s] = append(g.Preds[s], id)
		}
	}
	for id := range g.Preds {
		sort.Slice(g.Preds[id], func(i, j int) bool { return g.Preds[id][i] < g.Preds[id][j] })
	}
	return g, nil
}

// Exits returns every block with no successors, in ascending order.
func (g *Graph) Exits() []BlockId {
	var out []BlockId
	for _, id := range g.Blocks.SortedIds() {
		if g.Kind[id] == KindNone {
			out = append(out, id)
		}
	}
	return out
}
