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

import (
	"github.com/holiman/uint256"
	"github.com/pontem-network/e2m-go/evm"
)

// SplitEntryPoints recognizes the Solidity dispatcher pattern (spec
// §4.5.1): a chain of If(Eq(selector, const)) nodes, each guarding one
// ABI entry, ending in a fallback. It walks h.Stmts peeling off one
// If per selector match and returns the per-selector bodies plus
// whatever remains once the chain runs out — the fallback/abort body,
// or the original statements unchanged if no dispatcher was found (a
// function translated standalone, outside the constructor/runtime
// split, never goes through this).
func SplitEntryPoints(h *Hir) (map[[4]byte][]Statement, []Statement) {
	entries := map[[4]byte][]Statement{}
	fallback := splitChain(h.Stmts, entries)
	return entries, fallback
}

func splitChain(stmts []Statement, entries map[[4]byte][]Statement) []Statement {
	if len(stmts) != 1 {
		return stmts
	}
	ifStmt, ok := stmts[0].(If)
	if !ok {
		return stmts
	}
	sel, ok := selectorConst(ifStmt.Cnd)
	if !ok {
		return stmts
	}
	entries[sel] = ifStmt.True
	return splitChain(ifStmt.False, entries)
}

// selectorConst reports whether cnd is an Eq comparison against a
// constant and, if so, the constant's low 4 bytes — the selector
// compiled code compares via `shr(224, calldataload(0)) == <selector>`
// always has the constant hold the selector itself, never padded past
// 4 significant bytes.
func selectorConst(cnd Expr) ([4]byte, bool) {
	bin, ok := cnd.(BinaryOp)
	if !ok || bin.Op != evm.EQ {
		return [4]byte{}, false
	}
	if c, ok := AsConst(bin.X); ok {
		return constToSelector(c), true
	}
	if c, ok := AsConst(bin.Y); ok {
		return constToSelector(c), true
	}
	return [4]byte{}, false
}

func constToSelector(v *uint256.Int) [4]byte {
	u := v.Uint64() & 0xffffffff
	return [4]byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}
}
