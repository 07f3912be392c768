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

package abi

import (
	"strings"

	"github.com/pontem-network/e2m-go/crypto"
)

// Mutability is Solidity's stateMutability field.
type Mutability int

const (
	NonPayable Mutability = iota
	View
	Pure
	Payable
)

func parseMutability(s string) Mutability {
	switch s {
	case "view", "constant":
		return View
	case "pure":
		return Pure
	case "payable":
		return Payable
	default:
		return NonPayable
	}
}

// Method is one externally callable ABI entry (a "function" JSON type).
type Method struct {
	Name       string
	Inputs     []Argument
	Outputs    []Argument
	Mutability Mutability
}

// Signature is the canonical `name(type,type,...)` string keccak256 is
// taken over to derive the selector.
func (m Method) Signature() string {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, in := range m.Inputs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(in.Type.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Selector is the 4-byte dispatch selector for this method.
func (m Method) Selector() [4]byte {
	return crypto.Selector4(m.Signature())
}
