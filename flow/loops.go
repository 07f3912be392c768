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

// naturalLoops finds every back-edge u->v (v dominates u, per spec §4.4
// step 2) and grows v's natural-loop body by walking predecessors
// backward from u until reaching v, the standard construction. exit[v]
// is the smallest block reachable from the loop body but outside it —
// where control resumes once the Loop node is done.
func naturalLoops(g *Graph, idom map[BlockId]BlockId) (headers map[BlockId]bool, body map[BlockId]map[BlockId]bool, exit map[BlockId]BlockId) {
	headers = map[BlockId]bool{}
	body = map[BlockId]map[BlockId]bool{}

	for _, u := range g.Blocks.SortedIds() {
		for _, v := range g.Succs[u] {
			if !dominatesChain(idom, v, u) {
				continue
			}
			headers[v] = true
			set := body[v]
			if set == nil {
				set = map[BlockId]bool{v: true}
				body[v] = set
			}
			if set[u] {
				continue
			}
			worklist := []BlockId{u}
			set[u] = true
			for len(worklist) > 0 {
				n := worklist[len(worklist)-1]
				worklist = worklist[:len(worklist)-1]
				for _, p := range g.Preds[n] {
					if !set[p] {
						set[p] = true
						worklist = append(worklist, p)
					}
				}
			}
		}
	}

	exit = map[BlockId]BlockId{}
	for h, set := range body {
		var candidates []BlockId
		for n := range set {
			for _, s := range g.Succs[n] {
				if !set[s] {
					candidates = append(candidates, s)
				}
			}
		}
		if len(candidates) == 0 {
			exit[h] = noStop
			continue
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
		exit[h] = candidates[0]
	}
	return headers, body, exit
}

// dominatesChain reports whether v dominates u, by walking u's
// immediate-dominator chain looking for v.
func dominatesChain(idom map[BlockId]BlockId, v, u BlockId) bool {
	if v == u {
		return true
	}
	cur := u
	for {
		d, ok := idom[cur]
		if !ok {
			return false
		}
		if d == v {
			return true
		}
		if d == cur {
			return false
		}
		cur = d
	}
}
