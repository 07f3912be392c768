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

// execLog handles LOGn: μs[0]=offset, μs[1]=length, then n topics,
// topics[0] being the shallowest (popped first).
func (e *Executor) execLog(in evm.Instruction, st *state, n int) ([]Statement, error) {
	off, ln, ok := e.pop2(st)
	if !ok {
		return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: in.Op}
	}
	topics := make([]Expr, n)
	for i := 0; i < n; i++ {
		t, ok := st.pop()
		if !ok {
			return nil, &Error{Kind: StackUnderflow, Offset: in.Offset, Op: in.Op}
		}
		topics[i] = t
	}
	return []Statement{Log{Offset: off, Len: ln, Topics: topics}}, nil
}
