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
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {"type":"constructor","inputs":[{"name":"owner","type":"address"}],"stateMutability":"nonpayable"},
  {"type":"function","name":"is_owner","inputs":[{"name":"who","type":"address"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"view"},
  {"type":"function","name":"balance","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
  {"type":"event","name":"Transfer","inputs":[],"anonymous":false}
]`

func TestLoadParsesMethodsAndConstructor(t *testing.T) {
	a, err := Load([]byte(sampleJSON))
	require.NoError(t, err)
	require.Len(t, a.Methods, 2)
	require.Len(t, a.Constructor, 1)
	require.Equal(t, Address, a.Constructor[0].Type)

	m, ok := a.Methods["is_owner"]
	require.True(t, ok)
	require.Equal(t, "is_owner(address)", m.Signature())
}

func TestOrderedSortsBySelector(t *testing.T) {
	a, err := Load([]byte(sampleJSON))
	require.NoError(t, err)
	ordered := a.Ordered()
	require.Len(t, ordered, 2)
	s0, s1 := ordered[0].Selector(), ordered[1].Selector()
	require.True(t, string(s0[:]) < string(s1[:]) || string(s0[:]) == string(s1[:]))
}

func TestLoadRejectsUnsupportedType(t *testing.T) {
	_, err := Load([]byte(`[{"type":"function","name":"f","inputs":[{"name":"x","type":"bytes"}],"outputs":[],"stateMutability":"pure"}]`))
	require.Error(t, err)
	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, UnsupportedType, aerr.Kind)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load([]byte(`not json`))
	require.Error(t, err)
	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, Malformed, aerr.Kind)
}
