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

import "sort"

// Vars binds each VarId to its defining Expr, the environment half of Hir.
type Vars map[VarId]Expr

// SortedIds returns the bound VarIds in ascending order, for deterministic
// iteration when walking or printing (spec §5).
func (v Vars) SortedIds() []VarId {
	ids := make([]VarId, 0, len(v))
	for id := range v {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Hir is one function's symbolically-executed body: an ordered statement
// list plus the environment binding every VarId it references.
type Hir struct {
	Stmts []Statement
	Vars  Vars
}
