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

// Package crypto provides the hashing primitives the transpiler needs:
// ABI selector hashing and the EVM KECCAK256 opcode's runtime-helper
// delegation. It does not carry account/key material — this module never
// signs or derives addresses from a private key.
package crypto

import (
	"hash"

	"github.com/pontem-network/e2m-go/common"
	"golang.org/x/crypto/sha3"
)

// DigestLength is the length in bytes of a Keccak256 digest.
const DigestLength = 32

// KeccakState wraps sha3.state. In addition to the usual hash methods, it
// also supports Read to get a variable amount of data from the hash state.
// Read is faster than Sum because it doesn't copy the internal state, but
// also modifies the internal state.
type KeccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

// NewKeccakState creates a new KeccakState.
func NewKeccakState() KeccakState {
	return sha3.NewLegacyKeccak256().(KeccakState)
}

// HashData hashes the provided data using the KeccakState and returns a
// 32 byte hash.
func HashData(kh KeccakState, data []byte) (h common.Hash) {
	kh.Reset()
	kh.Write(data)
	kh.Read(h[:])
	return h
}

// Keccak256 calculates and returns the Keccak256 hash of the input data.
func Keccak256(data ...[]byte) []byte {
	b := make([]byte, DigestLength)
	d := NewKeccakState()
	for _, chunk := range data {
		d.Write(chunk)
	}
	d.Read(b)
	return b
}

// Keccak256Hash calculates and returns the Keccak256 hash of the input
// data, converting it to an internal Hash data structure.
func Keccak256Hash(data ...[]byte) (h common.Hash) {
	d := NewKeccakState()
	for _, chunk := range data {
		d.Write(chunk)
	}
	d.Read(h[:])
	return h
}

// Keccak512 calculates and returns the Keccak512 hash of the input data.
func Keccak512(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak512()
	for _, chunk := range data {
		d.Write(chunk)
	}
	return d.Sum(nil)
}

// Selector4 returns the first 4 bytes of Keccak256(signature), the EVM
// function selector used both for ABI dispatch recognition in the HIR
// executor and for the Move module's public-API ordering.
func Selector4(canonicalSignature string) [4]byte {
	h := Keccak256([]byte(canonicalSignature))
	var sel [4]byte
	copy(sel[:], h[:4])
	return sel
}
