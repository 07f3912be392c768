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

package common

import (
	"encoding/hex"
	"fmt"
)

// ShortAddressLength is the alternate, compact Move account address
// size some modules are deployed under instead of the full 32 bytes.
const ShortAddressLength = 16

// HashLength is the expected length of a Keccak256 hash.
const HashLength = 32

// AddressLength is the expected length of a Move/EVM-style account address
// used as the emitted module's deployment address.
const AddressLength = 32

// Hash represents the 32 byte output of Keccak256.
type Hash [HashLength]byte

// BytesToHash converts b to a Hash, right-aligning if it is too short and
// truncating from the left if it is too long.
func BytesToHash(b []byte) (h Hash) {
	if len(b) > len(h) {
		b = b[len(b)-len(h):]
	}
	copy(h[len(h)-len(b):], b)
	return h
}

// Bytes returns the raw bytes of the hash.
func (h Hash) Bytes() []byte { return h[:] }

// Hex returns a 0x-prefixed hex string.
func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// String implements fmt.Stringer.
func (h Hash) String() string { return h.Hex() }

// Address represents a Move account address (16 or 32 bytes, right-aligned,
// zero-padded on the left, in the fixed-size representation used internally).
type Address [AddressLength]byte

// BytesToAddress converts b to an Address, right-aligning if it is too
// short and truncating from the left if it is too long.
func BytesToAddress(b []byte) (a Address) {
	if len(b) > len(a) {
		b = b[len(b)-len(a):]
	}
	copy(a[len(a)-len(b):], b)
	return a
}

// HexToAddress parses a 0x-prefixed (or bare) hex string into an Address.
func HexToAddress(s string) (Address, error) {
	s = trim0x(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", s, err)
	}
	if len(b) > AddressLength {
		return Address{}, fmt.Errorf("address %q exceeds %d bytes: %w", s, AddressLength, ErrAddressTooLong)
	}
	return BytesToAddress(b), nil
}

// Bytes returns the raw bytes of the address.
func (a Address) Bytes() []byte { return a[:] }

// ShortBytes returns the low-order ShortAddressLength bytes, the form
// used when the emitted module targets a 16-byte account address
// space rather than the full 32 bytes.
func (a Address) ShortBytes() []byte { return a[AddressLength-ShortAddressLength:] }

// TrimmedBytes returns the address's raw bytes trimmed to length, which
// must be ShortAddressLength or AddressLength.
func (a Address) TrimmedBytes(length int) ([]byte, error) {
	switch length {
	case ShortAddressLength:
		return a.ShortBytes(), nil
	case AddressLength:
		return a.Bytes(), nil
	default:
		return nil, ErrInvalidAddressLength
	}
}

// Hex returns a 0x-prefixed hex string, with leading zero bytes kept.
func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

// String implements fmt.Stringer.
func (a Address) String() string { return a.Hex() }

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// TrimHexPrefix strips a leading "0x"/"0X" from s, if present. Shared by the
// .bin decoder and address/constant parsing.
func TrimHexPrefix(s string) string { return trim0x(s) }
