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

import (
	"github.com/holiman/uint256"

	"github.com/pontem-network/e2m-go/abi"
	"github.com/pontem-network/e2m-go/hir"
)

// Constructor lowers the constructor-side hir.Hir (run by the caller with
// empty initial storage) into the module's init function (spec §4.8).
// Storage writes whose key and value are both compile-time constants are
// collapsed into a deduplicated image and re-emitted as a flat sequence
// of SStores; every other write stays a runtime SStore parameterized
// over the constructor's own ABI inputs, grounded on constructor.rs's
// make_constructor walking the ctor body's SSTOREs in program order.
func Constructor(h *hir.Hir, ctorArgs []abi.Argument) (*Mir, error) {
	method := &abi.Method{Name: "constructor", Inputs: ctorArgs}
	m, err := Function(h, method)
	if err != nil {
		return nil, err
	}
	m.Stmts = collapseConstantStores(m.Stmts)
	return m, nil
}

// collapseConstantStores scans a flat statement list for runs of SStores
// whose Key and Val are both Const, folding each run into one write per
// distinct key (last value wins, first-seen order preserved) while
// leaving every other statement — including non-constant SStores — in
// its original position.
func collapseConstantStores(stmts []Statement) []Statement {
	out := make([]Statement, 0, len(stmts))
	image := map[uint256.Int]*uint256.Int{}
	var order []uint256.Int
	var storageVar Variable

	flush := func() {
		for _, k := range order {
			key := k
			out = append(out, SStore{
				Storage: storageVar,
				Key:     TypedExpr{Expr: Const{Val: NumValue(&key)}, Type: Number},
				Val:     TypedExpr{Expr: Const{Val: NumValue(image[k])}, Type: Number},
			})
		}
		image = map[uint256.Int]*uint256.Int{}
		order = order[:0]
	}

	for _, s := range stmts {
		if st, ok := s.(SStore); ok {
			if key, kok := constOf(st.Key); kok {
				if val, vok := constOf(st.Val); vok {
					storageVar = st.Storage
					if _, seen := image[*key]; !seen {
						order = append(order, *key)
					}
					image[*key] = val
					continue
				}
			}
		}
		flush()
		out = append(out, s)
	}
	flush()
	return out
}

func constOf(te TypedExpr) (*uint256.Int, bool) {
	c, ok := te.Expr.(Const)
	if !ok || c.Val.IsBool {
		return nil, false
	}
	return c.Val.Num, true
}
