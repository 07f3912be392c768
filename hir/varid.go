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

// VarId opaquely names one HIR variable. Two flavours exist, distinguished
// only by how the executor uses them, not by representation: persistent
// variables hold assignments visible across branches (materialized at an
// If-merge or loop-carried), temporaries are single-use scratch introduced
// while lowering one expression. Both share one generator per function so
// ids stay unique regardless of flavour.
type VarId uint32

// Gen is a per-function monotonic VarId generator. It must never be shared
// across functions (spec §5): each function HIR owns one.
type Gen struct{ next VarId }

// Next returns a fresh, never-before-issued VarId.
func (g *Gen) Next() VarId {
	id := g.next
	g.next++
	return id
}
