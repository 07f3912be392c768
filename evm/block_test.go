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

// PUSH1 0x04; JUMP; JUMPDEST; STOP  -> two blocks: [0,3) and [3,5)
func TestPartitionBlockTotality(t *testing.T) {
	raw, err := hex.DecodeString("6004565b00")
	require.NoError(t, err)
	instrs, err := Decode(raw)
	require.NoError(t, err)

	blocks := Partition(instrs)
	require.Len(t, blocks, 2)

	var total int
	for _, id := range blocks.SortedIds() {
		b := blocks[id]
		for _, in := range b.Instructions {
			total += in.Size()
		}
	}
	require.Equal(t, len(raw), total)
}

func TestPartitionStartsNewBlockAtJumpdest(t *testing.T) {
	raw, err := hex.DecodeString("005b00")
	require.NoError(t, err)
	instrs, err := Decode(raw)
	require.NoError(t, err)

	blocks := Partition(instrs)
	require.Contains(t, blocks, Offset(0))
	require.Contains(t, blocks, Offset(1))
}

func TestSplitConstructorNoCodeCopyIsAllRuntime(t *testing.T) {
	raw, err := hex.DecodeString("6001600201600055")
	require.NoError(t, err)
	split, err := SplitConstructor(raw)
	require.NoError(t, err)
	require.False(t, split.HasCtor)
	require.NotEmpty(t, split.Main)
}

func TestSplitConstructorFindsCodeCopyEntry(t *testing.T) {
	// PUSH1 0x0a (len); PUSH1 0x09 (src=E=9); PUSH1 0x00 (dest); CODECOPY;
	// PUSH1 0x0a; PUSH1 0x00; RETURN; STOP padding; JUMPDEST; STOP.
	full, err := hex.DecodeString("600a6009600039600a6000f300000000" + "5b00")
	require.NoError(t, err)
	split, err := SplitConstructor(full)
	require.NoError(t, err)
	require.True(t, split.HasCtor)
	require.Equal(t, Offset(9), split.Entry)
}
