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

// Package flow reconstructs a structured nested control-flow tree —
// sequences, ifs, loops — from the unstructured block graph recovered by
// package evm's block partitioner (spec §4.4).
package flow

import "github.com/pontem-network/e2m-go/evm"

// BlockId aliases evm.BlockId so callers need not import both packages
// just to name a node.
type BlockId = evm.BlockId

// Flow is the recursive structured control-flow tree described in
// spec.md §3. Each variant below implements it via an unexported marker
// method — the Go idiom for a closed sum type — rather than sharing a
// single struct with optional fields, keeping each case's invariants
// explicit.
type Flow interface {
	isFlow()
}

// Block is a leaf referencing one basic block. Every BlockId in the
// function's block map appears as exactly one Block leaf in the tree
// (spec §3's Flow invariant).
type Block struct{ Id BlockId }

// Sequence is a linear chain of sub-flows executed in order.
type Sequence struct{ Items []Flow }

// If is a structured conditional recovered from a JUMPI whose target
// is not a back-edge. Cnd names the block whose terminator is the
// JUMPI being structured.
type If struct {
	Cnd            BlockId
	TrueBr, FalseBr Flow
}

// Loop wraps the structured body of a natural loop. Id is the loop
// header's block id; Continue/Break nodes within Body refer back to it.
type Loop struct {
	Id   BlockId
	Body Flow
}

// Continue marks a back-edge to the enclosing Loop with the given Id.
type Continue struct{ Id BlockId }

// Break marks an edge that leaves the enclosing Loop with the given Id.
type Break struct{ Id BlockId }

// Stop marks a path that ends without further control transfer (the
// block's terminator is STOP/RETURN/REVERT/INVALID/SELFDESTRUCT).
type Stop struct{}

func (Block) isFlow()    {}
func (Sequence) isFlow() {}
func (If) isFlow()       {}
func (Loop) isFlow()     {}
func (Continue) isFlow() {}
func (Break) isFlow()    {}
func (Stop) isFlow()     {}

// Walk calls visit for every node in the tree, pre-order.
func Walk(f Flow, visit func(Flow)) {
	if f == nil {
		return
	}
	visit(f)
	switch n := f.(type) {
	case Sequence:
		for _, it := range n.Items {
			Walk(it, visit)
		}
	case If:
		Walk(n.TrueBr, visit)
		Walk(n.FalseBr, visit)
	case Loop:
		Walk(n.Body, visit)
	}
}

// Blocks collects every Block leaf's id in tree order. Used by the
// flow-coverage property test (spec §8, property 3).
func Blocks(f Flow) []BlockId {
	var ids []BlockId
	Walk(f, func(n Flow) {
		if b, ok := n.(Block); ok {
			ids = append(ids, b.Id)
		}
	})
	return ids
}
