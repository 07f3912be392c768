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

// Locals tracks live function-local slots via a per-type free list
// (spec §4.7 step 6): Borrow returns the lowest free slot of a type or
// creates a new one; Release returns a slot to the pool for reuse by a
// later Borrow of the same type. The final slot→type vector is Plan().
type Locals struct {
	types []SType
	free  map[SType][]LocalIndex
}

// NewLocals returns an empty allocator.
func NewLocals() *Locals {
	return &Locals{free: map[SType][]LocalIndex{}}
}

// Borrow returns a Variable of type t: the lowest-indexed free slot of
// that type if one is free, otherwise a freshly appended one.
func (l *Locals) Borrow(t SType) Variable {
	if free := l.free[t]; len(free) > 0 {
		min := 0
		for i, idx := range free {
			if idx < free[min] {
				min = i
			}
		}
		idx := free[min]
		l.free[t] = append(free[:min], free[min+1:]...)
		return Variable{Type: t, Index: idx}
	}
	idx := LocalIndex(len(l.types))
	l.types = append(l.types, t)
	return Variable{Type: t, Index: idx}
}

// Release returns v's slot to the free list for its type.
func (l *Locals) Release(v Variable) {
	l.free[v.Type] = append(l.free[v.Type], v.Index)
}

// Plan returns the compacted slot→type vector, the function's final
// Locals signature.
func (l *Locals) Plan() []SType {
	return append([]SType(nil), l.types...)
}
