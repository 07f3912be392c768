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

package move

import "bytes"

// SignaturePool interns []SignatureToken by exact equality: a linear
// scan for a match, else append — the same strategy signature.rs's
// SignatureWriter uses, just without the move_binary_format wrapper
// types.
type SignaturePool struct {
	sigs []Signature
}

func (p *SignaturePool) Intern(sig Signature) uint16 {
	for i, s := range p.sigs {
		if signatureEqual(s, sig) {
			return uint16(i)
		}
	}
	p.sigs = append(p.sigs, sig)
	return uint16(len(p.sigs) - 1)
}

func (p *SignaturePool) Freeze() []Signature { return p.sigs }

func signatureEqual(a, b Signature) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IdentifierPool interns names by exact string match (identifier.rs).
type IdentifierPool struct {
	names []string
}

func (p *IdentifierPool) Intern(name string) uint16 {
	for i, n := range p.names {
		if n == name {
			return uint16(i)
		}
	}
	p.names = append(p.names, name)
	return uint16(len(p.names) - 1)
}

func (p *IdentifierPool) Freeze() []string { return p.names }

// ConstantPool interns typed byte blobs by exact (type, data) match
// (constants.rs's ConstantPool::make_vec_constant).
type ConstantPool struct {
	consts []Constant
}

func (p *ConstantPool) Intern(c Constant) uint16 {
	for i, existing := range p.consts {
		if existing.Type == c.Type && bytes.Equal(existing.Data, c.Data) {
			return uint16(i)
		}
	}
	p.consts = append(p.consts, c)
	return uint16(len(p.consts) - 1)
}

func (p *ConstantPool) Freeze() []Constant { return p.consts }

// FunctionHandlePool interns handles by (name, parameters, return):
// every private runtime-support or intrinsic-math helper this emitter
// generates a Call to is registered here exactly once.
type FunctionHandlePool struct {
	handles []FunctionHandle
}

func (p *FunctionHandlePool) Intern(h FunctionHandle) uint16 {
	for i, existing := range p.handles {
		if existing == h {
			return uint16(i)
		}
	}
	p.handles = append(p.handles, h)
	return uint16(len(p.handles) - 1)
}

func (p *FunctionHandlePool) Freeze() []FunctionHandle { return p.handles }
