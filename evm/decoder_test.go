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

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTrip(t *testing.T) {
	raw, err := hex.DecodeString("6001600201600055")
	require.NoError(t, err)

	instrs, err := Decode(raw)
	require.NoError(t, err)
	require.Equal(t, raw, Encode(instrs))
}

func TestDecodeCountsPushInstructionAsOne(t *testing.T) {
	script, err := hex.DecodeString("61000000")
	require.NoError(t, err)

	var cnt int
	err = ForEachInstruction(script, func(Instruction) { cnt++ })
	require.NoError(t, err)
	require.Equal(t, 2, cnt)
}

func TestDecodeTruncatedPushFails(t *testing.T) {
	script, err := hex.DecodeString("6100")
	require.NoError(t, err)

	var cnt int
	err = ForEachInstruction(script, func(Instruction) { cnt++ })
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
}

func TestParseHexAcceptsPrefixAndWhitespace(t *testing.T) {
	b, err := ParseHex(" 0x6001 \n")
	require.NoError(t, err)
	require.Equal(t, []byte{0x60, 0x01}, b)
}

func TestStripSwarmTrailer(t *testing.T) {
	trailer := append([]byte{0xa1, 0x65}, make([]byte, 41)...)
	trailer[len(trailer)-2] = 0x00
	trailer[len(trailer)-1] = 0x29
	code := append([]byte{0x60, 0x01, 0x00}, trailer...)

	stripped := StripSwarmTrailer(code)
	require.Equal(t, []byte{0x60, 0x01, 0x00}, stripped)
}

func TestStripSwarmTrailerLeavesNonMatchingTailAlone(t *testing.T) {
	code := make([]byte, 50)
	stripped := StripSwarmTrailer(code)
	require.Equal(t, code, stripped)
}
