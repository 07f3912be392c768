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

import "sort"

// dominators computes the immediate-dominator map for a graph described
// abstractly by a predecessor function and a successor function, rooted
// at entry. It is the
// Cooper/Harvey/Kennedy "engineer's algorithm": iterate to a fixed point
// over a reverse-postorder numbering, intersecting predecessors' idoms.
// Run twice — once forward for real dominators (natural-loop detection),
// once over the graph with edges reversed for post-dominators (If merge
// points) — by Build in builder.go and by the post-dominator computation
// in postdom.go.
func dominators(entry BlockId, preds, succs func(BlockId) []BlockId) map[BlockId]BlockId {
	order, index := reversePostorder(entry, succs)
	// Nodes unreachable from entry get no dominator entry.
	idom := map[BlockId]int{}
	idom[index[entry]] = index[entry]

	changed := true
	for changed {
		changed = false
		for _, n := range order {
			if n == entry {
				continue
			}
			ni, ok := index[n]
			if !ok {
				continue
			}
			var newIdom = -1
			for _, p := range preds(n) {
				pi, ok := index[p]
				if !ok {
					continue
				}
				if _, done := idomByIndex(idom, pi); !done {
					continue
				}
				if newIdom == -1 {
					newIdom = pi
				} else {
					newIdom = intersect(idom, newIdom, pi)
				}
			}
			if newIdom == -1 {
				continue
			}
			if cur, ok := idom[ni]; !ok || cur != newIdom {
				idom[ni] = newIdom
				changed = true
			}
		}
	}

	out := make(map[BlockId]BlockId, len(idom))
	for ni, di := range idom {
		out[order[ni]] = order[di]
	}
	return out
}

func idomByIndex(idom map[int]int, i int) (int, bool) {
	v, ok := idom[i]
	return v, ok
}

func intersect(idom map[int]int, a, b int) int {
	for a != b {
		for a > b {
			v, ok := idom[a]
			if !ok {
				return b
			}
			a = v
		}
		for b > a {
			v, ok := idom[b]
			if !ok {
				return a
			}
			b = v
		}
	}
	return a
}

// reversePostorder returns a DFS-postorder-reversed node ordering from
// entry (order[0] == entry) along with an id->index map. The ordering is
// exactly what the Cooper/Harvey/Kennedy algorithm needs: every node's
// dominator-computation predecessors that are processed earlier have a
// lower index.
func reversePostorder(entry BlockId, succs func(BlockId) []BlockId) ([]BlockId, map[BlockId]int) {
	var post []BlockId
	visited := map[BlockId]bool{}
	var visit func(BlockId)
	visit = func(n BlockId) {
		if visited[n] {
			return
		}
		visited[n] = true
		s := append([]BlockId(nil), succs(n)...)
		sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
		for _, m := range s {
			visit(m)
		}
		post = append(post, n)
	}
	visit(entry)

	order := make([]BlockId, len(post))
	for i, n := range post {
		order[len(post)-1-i] = n
	}
	index := make(map[BlockId]int, len(order))
	for i, n := range order {
		index[n] = i
	}
	return order, index
}
