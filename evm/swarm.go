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

package evm

// swarmTrailerLen is the size in bytes of the solc-appended metadata
// trailer: 0xa1 0x65 <39 bytes of CBOR metadata> 0x00 0x29.
const swarmTrailerLen = 43

// StripSwarmTrailer removes the solc metadata trailer from code, if
// present. The trailer layout is 0xa1 0x65 followed by 39 bytes of CBOR
// metadata, terminated by the 2-byte length marker 0x00 0x29 (the CBOR
// blob's own length, big-endian, which solc always emits as exactly 0x29
// for this 43-byte trailer shape). Code shorter than the trailer, or not
// matching the marker bytes, is returned unchanged.
func StripSwarmTrailer(code []byte) []byte {
	if len(code) < swarmTrailerLen {
		return code
	}
	trailer := code[len(code)-swarmTrailerLen:]
	if trailer[0] != 0xa1 || trailer[1] != 0x65 {
		return code
	}
	if trailer[swarmTrailerLen-2] != 0x00 || trailer[swarmTrailerLen-1] != 0x29 {
		return code
	}
	return code[:len(code)-swarmTrailerLen]
}
