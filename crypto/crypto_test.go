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

package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeccak256Empty(t *testing.T) {
	got := hex.EncodeToString(Keccak256())
	require.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", got)
}

func TestKeccak256HashMatchesKeccak256(t *testing.T) {
	data := []byte("transfer(address,uint256)")
	h := Keccak256Hash(data)
	b := Keccak256(data)
	require.Equal(t, b, h.Bytes())
}

func TestSelector4IsFirstFourBytes(t *testing.T) {
	sig := "balanceOf(address)"
	full := Keccak256([]byte(sig))
	sel := Selector4(sig)
	require.Equal(t, full[:4], sel[:])
}
