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

import "fmt"

func (v Val) key() string { return "val:" + v.V.Hex() }
func (v Var) key() string { return fmt.Sprintf("var:%d", v.Id) }
func (m MLoad) key() string { return "mload:" + m.Addr.key() }
func (s SLoad) key() string { return "sload:" + s.Addr.key() }
func (MSize) key() string   { return "msize" }
func (Signer) key() string  { return "signer" }
func (ArgsSize) key() string { return "argssize" }
func (a Args) key() string  { return "args:" + a.Offset.key() }
func (u UnaryOp) key() string {
	return fmt.Sprintf("u(%s):%s", u.Op, u.X.key())
}
func (b BinaryOp) key() string {
	return fmt.Sprintf("b(%s):%s,%s", b.Op, b.X.key(), b.Y.key())
}
func (t TernaryOp) key() string {
	return fmt.Sprintf("t(%s):%s,%s,%s", t.Op, t.X.key(), t.Y.key(), t.Z.key())
}
func (h Hash) key() string { return "hash:" + h.Offset.key() + "," + h.Len.key() }

// ExprCache interns structurally-equal Expr nodes so repeated
// subexpressions share one node, the sharing the spec's Expr data model
// calls for ("Expr values are shared ... so identical subexpressions are
// not duplicated during optimization").
type ExprCache struct {
	nodes map[string]Expr
}

// NewExprCache returns an empty cache.
func NewExprCache() *ExprCache {
	return &ExprCache{nodes: map[string]Expr{}}
}

// Intern returns e, or a previously interned node structurally equal to
// it.
func (c *ExprCache) Intern(e Expr) Expr {
	k := e.key()
	if existing, ok := c.nodes[k]; ok {
		return existing
	}
	c.nodes[k] = e
	return e
}
