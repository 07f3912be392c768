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

// postDominators computes the immediate post-dominator of every block,
// used to pick each If's merge point. It runs the same dominators()
// fixed-point over the graph with edges reversed and a virtual exit node
// (noStop) wired to every real exit block (spec §4.4 step 3's "merge
// point").
func postDominators(g *Graph) map[BlockId]BlockId {
	exits := g.Exits()
	if len(exits) == 0 {
		return map[BlockId]BlockId{}
	}
	exitSet := map[BlockId]bool{}
	for _, e := range exits {
		exitSet[e] = true
	}

	revSuccs := func(id BlockId) []BlockId {
		if id == noStop {
			return exits
		}
		return g.Preds[id]
	}
	revPreds := func(id BlockId) []BlockId {
		if id == noStop {
			return nil
		}
		ps := append([]BlockId(nil), g.Succs[id]...)
		if exitSet[id] {
			ps = append(ps, noStop)
		}
		return ps
	}

	idom := dominators(noStop, revPreds, revSuccs)
	delete(idom, noStop)
	return idom
}
