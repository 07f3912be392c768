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

import "github.com/pontem-network/e2m-go/evm"

// noStop is a sentinel BlockId no real offset can collide with in
// practice (EVM contract code is nowhere near 2^64 bytes); it marks "no
// merge point in scope" when building a loop's body.
const noStop = ^BlockId(0)

// Build reconstructs the structured Flow tree for the blocks in
// evm.BlockMap (spec §4.4). Builder is the recognizer for natural loops
// (single-entry, detected via dominance) and for If regions whose merge
// point is the branch condition's immediate post-dominator; anything
// that doesn't fit — multi-entry loops, jump targets BuildGraph could
// not resolve — surfaces as IrreducibleCFG/UnresolvedJump rather than
// being silently mis-structured.
func Build(blocks evm.BlockMap) (Flow, error) {
	g, err := BuildGraph(blocks)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return Sequence{}, nil
	}

	b := &builder{g: g}
	b.idom = dominators(g.Entry, g.predsOf, g.succsOf)
	b.ipdom = postDominators(g)
	b.headers, b.loopBody, b.loopExit = naturalLoops(g, b.idom)
	b.visited = map[BlockId]bool{}

	f := b.buildSeq(g.Entry, noStop, 0, false)
	if b.hasConflict {
		return nil, &Error{Kind: IrreducibleCFG, Offset: b.conflict, Detail: "block reached by more than one structuring path; this builder only recovers single-entry regions"}
	}

	// Blocks never reached from the entry block are genuinely dead code
	// (e.g. a selector-dispatch fallback solc proves unreachable but still
	// emits). They still must appear exactly once as a Flow leaf (spec §3),
	// so they're appended as trailing unreachable sequences rather than
	// dropped.
	seq, ok := f.(Sequence)
	if !ok {
		seq = Sequence{Items: []Flow{f}}
	}
	for _, id := range blocks.SortedIds() {
		if !b.visited[id] {
			b.visited[id] = true
			seq.Items = append(seq.Items, Block{Id: id}, Stop{})
		}
	}
	return seq, nil
}

func (g *Graph) predsOf(id BlockId) []BlockId { return g.Preds[id] }
func (g *Graph) succsOf(id BlockId) []BlockId { return g.Succs[id] }

type builder struct {
	g           *Graph
	idom        map[BlockId]BlockId
	ipdom       map[BlockId]BlockId
	headers     map[BlockId]bool
	loopBody    map[BlockId]map[BlockId]bool
	loopExit    map[BlockId]BlockId
	visited     map[BlockId]bool
	hasConflict bool
	conflict    BlockId
}

// buildSeq builds a Sequence of Flow nodes starting at start, stopping
// (exclusive) at stop. When inLoop is true, loopHeader names the
// innermost enclosing loop: reaching loopHeader again emits Continue,
// and reaching any block outside that loop's body emits Break.
func (b *builder) buildSeq(start, stop, loopHeader BlockId, inLoop bool) Flow {
	return b.buildSeqIn(start, stop, loopHeader, inLoop, false)
}

// buildSeqIn is buildSeq generalized with isLoopEntry: true only for the
// single recursive call that builds a newly-discovered loop header's own
// body (start == loopHeader == cur on the first iteration). That one node
// must be processed as ordinary block content — not re-wrapped in
// another Loop, not treated as a Continue, and not flagged as an
// already-visited conflict even though the caller marked it visited
// before recursing.
func (b *builder) buildSeqIn(start, stop, loopHeader BlockId, inLoop, isLoopEntry bool) Flow {
	var items []Flow
	cur := start
	entry := isLoopEntry
	for {
		if cur == stop {
			break
		}
		if inLoop && !entry {
			if cur == loopHeader {
				items = append(items, Continue{Id: loopHeader})
				break
			}
			if !b.loopBody[loopHeader][cur] {
				items = append(items, Break{Id: loopHeader})
				break
			}
		}

		if !entry {
			if b.visited[cur] {
				// A previously-structured block reached by a second path:
				// this region isn't a simple nested tree. Flag it — Build
				// turns this into an IrreducibleCFG error — rather than
				// duplicating the leaf, which the spec's single-occurrence
				// invariant forbids.
				if !b.hasConflict {
					b.hasConflict = true
					b.conflict = cur
				}
				break
			}

			if b.headers[cur] {
				b.visited[cur] = true
				exit := b.loopExit[cur]
				body := b.buildSeqIn(cur, noStop, cur, true, true)
				items = append(items, Loop{Id: cur, Body: body})
				cur = exit
				continue
			}
		}
		entry = false

		b.visited[cur] = true
		items = append(items, Block{Id: cur})

		switch b.g.Kind[cur] {
		case KindNone:
			items = append(items, Stop{})
			return Sequence{Items: items}
		case KindJump, KindFall:
			cur = b.g.Succs[cur][0]
		case KindJumpI:
			t, f := b.g.CondTrue[cur], b.g.CondFalse[cur]
			merge := b.mergePoint(cur, stop)
			tb := b.buildSeq(t, merge, loopHeader, inLoop)
			fb := b.buildSeq(f, merge, loopHeader, inLoop)
			items = append(items, If{Cnd: cur, TrueBr: tb, FalseBr: fb})
			if merge == noStop {
				return Sequence{Items: items}
			}
			cur = merge
		}
	}
	return Sequence{Items: items}
}

// mergePoint picks where control reconverges after the If rooted at
// condBlock: its immediate post-dominator, if one exists; otherwise
// falls back to the enclosing stop so a branch that exits the current
// region (e.g. both sides break out of a loop) doesn't force a merge
// that was never going to be visited here.
func (b *builder) mergePoint(condBlock, stop BlockId) BlockId {
	if m, ok := b.ipdom[condBlock]; ok {
		return m
	}
	return stop
}
