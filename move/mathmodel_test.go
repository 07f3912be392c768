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

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontem-network/e2m-go/mir"
)

// fakeSink records emitted instructions and hands back a distinct
// handle per intrinsic name, mimicking funcBuilder/Emitter.Intrinsic
// without needing a whole Emitter.
type fakeSink struct {
	code       []Instruction
	intrinsics map[string]uint16
}

func newFakeSink() *fakeSink { return &fakeSink{intrinsics: map[string]uint16{}} }

func (s *fakeSink) Emit(i Instruction) { s.code = append(s.code, i) }

func (s *fakeSink) Intrinsic(name string, arity int) uint16 {
	if idx, ok := s.intrinsics[name]; ok {
		return idx
	}
	idx := uint16(len(s.intrinsics))
	s.intrinsics[name] = idx
	return idx
}

func TestU128MathPushConstClampsToU128Max(t *testing.T) {
	huge := new(uint256.Int).Lsh(uint256.NewInt(1), 200)
	sink := newFakeSink()

	U128Math{}.PushConst(sink, huge)

	require.Len(t, sink.code, 1)
	assert.Equal(t, OpLdU128, sink.code[0].Op)
	assert.Equal(t, 0, sink.code[0].Literal.Cmp(u128Max))
}

func TestU128MathIsZeroUsesNativeLdU128AndEq(t *testing.T) {
	sink := newFakeSink()

	U128Math{}.Unary(sink, mir.IsZero)

	require.Len(t, sink.code, 2)
	assert.Equal(t, OpLdU128, sink.code[0].Op)
	assert.Equal(t, big.NewInt(0), sink.code[0].Literal)
	assert.Equal(t, OpEq, sink.code[1].Op)
}

func TestU128MathBinaryPrefersNativeOpcode(t *testing.T) {
	sink := newFakeSink()

	U128Math{}.Binary(sink, mir.Add)

	require.Len(t, sink.code, 1)
	assert.Equal(t, OpAdd, sink.code[0].Op)
}

func TestU128MathBinaryFallsBackToIntrinsicForSignedOps(t *testing.T) {
	sink := newFakeSink()

	U128Math{}.Binary(sink, mir.SDiv)

	require.Len(t, sink.code, 1)
	assert.Equal(t, OpCall, sink.code[0].Op)
	assert.Contains(t, sink.intrinsics, "u128_sdiv")
}

func TestU256MathEveryOpIsAnIntrinsicCall(t *testing.T) {
	sink := newFakeSink()

	U256Math{}.Binary(sink, mir.Add)

	require.Len(t, sink.code, 1)
	assert.Equal(t, OpCall, sink.code[0].Op)
	assert.Contains(t, sink.intrinsics, "u256_add")
}

func TestU256MathPushConstUsesLdU256WithoutClamping(t *testing.T) {
	huge := new(uint256.Int).Lsh(uint256.NewInt(1), 200)
	sink := newFakeSink()

	U256Math{}.PushConst(sink, huge)

	require.Len(t, sink.code, 1)
	assert.Equal(t, OpLdU256, sink.code[0].Op)
	assert.Equal(t, huge.ToBig(), sink.code[0].Literal)
}
