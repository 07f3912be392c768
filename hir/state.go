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

// memCell is one live MSTORE binding, kept in write order so the most
// recent write to a structurally-equal address shadows earlier ones.
type memCell struct {
	addr Expr
	val  Expr
}

// state is the executor's per-path symbolic machine: an expression stack
// plus the memory map described in spec §4.5. It is cloned at every If
// fork and discarded at the merge (spec §5: "forking over merging").
type state struct {
	stack []Expr
	mem   []memCell
	// pendingCond holds the condition operand captured while processing a
	// JUMPI terminator, consumed by the If node the flow builder always
	// places immediately afterward in the same Sequence.
	pendingCond Expr
}

func newState() *state {
	return &state{}
}

// clone deep-copies the slices (not the Expr values themselves, which are
// immutable once built) so forked branches cannot observe each other's
// writes.
func (s *state) clone() *state {
	c := &state{
		stack: append([]Expr(nil), s.stack...),
		mem:   append([]memCell(nil), s.mem...),
	}
	return c
}

func (s *state) push(e Expr) { s.stack = append(s.stack, e) }

// pop removes and returns the top stack expression, or (nil, false) on
// underflow — the executor maps every underflow to an Error of kind
// StackUnderflow; values below the stack bottom are not modeled as
// implicit function parameters.
func (s *state) pop() (Expr, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	e := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return e, true
}

func (s *state) peek(n int) (Expr, bool) {
	i := len(s.stack) - 1 - n
	if i < 0 {
		return nil, false
	}
	return s.stack[i], true
}

func (s *state) dup(n int) (Expr, bool) { return s.peek(n - 1) }

func (s *state) swap(n int) bool {
	i, j := len(s.stack)-1, len(s.stack)-1-n
	if i < 0 || j < 0 {
		return false
	}
	s.stack[i], s.stack[j] = s.stack[j], s.stack[i]
	return true
}

// mstore records a write, shadowing (not removing) any earlier cell with
// a structurally-equal address — later lookups scan newest-first.
func (s *state) mstore(addr, val Expr) {
	s.mem = append(s.mem, memCell{addr: addr, val: val})
}

// mload returns the value most recently stored at a structurally-equal
// address, or (nil, false) if no matching write is live.
func (s *state) mload(addr Expr) (Expr, bool) {
	key := addr.key()
	for i := len(s.mem) - 1; i >= 0; i-- {
		if s.mem[i].addr.key() == key {
			return s.mem[i].val, true
		}
	}
	return nil, false
}
