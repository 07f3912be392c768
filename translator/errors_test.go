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

package translator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontem-network/e2m-go/abi"
	"github.com/pontem-network/e2m-go/evm"
	"github.com/pontem-network/e2m-go/flow"
	"github.com/pontem-network/e2m-go/hir"
	"github.com/pontem-network/e2m-go/mir"
)

func TestWrapStageReturnsNilForNilError(t *testing.T) {
	assert.Nil(t, wrapStage("f", nil))
}

func TestWrapStageMapsDecodeError(t *testing.T) {
	src := &evm.DecodeError{Offset: 3, Op: evm.PUSH1, Want: 1, Got: 0}
	err := wrapStage("f", src)

	assert.Equal(t, KindDecode, err.Kind)
	assert.Equal(t, evm.Offset(3), err.Offset)
	assert.Equal(t, evm.PUSH1, err.Op)
	assert.Same(t, src, errors.Unwrap(err))
}

func TestWrapStageMapsFlowError(t *testing.T) {
	src := &flow.Error{Kind: flow.UnresolvedJump, Offset: 7, Detail: "bad jump"}
	err := wrapStage("f", src)

	assert.Equal(t, KindFlow, err.Kind)
	assert.Equal(t, UnresolvedJump, err.Reason)
	assert.Equal(t, evm.Offset(7), err.Offset)
}

func TestWrapStageMapsHirError(t *testing.T) {
	src := &hir.Error{Kind: hir.UnknownOpcode, Offset: 1, Op: evm.INVALID, Detail: "nope"}
	err := wrapStage("f", src)

	assert.Equal(t, KindExecution, err.Kind)
	assert.Equal(t, UnknownOpcode, err.Reason)
	assert.Equal(t, evm.INVALID, err.Op)
}

func TestWrapStageMapsMirError(t *testing.T) {
	src := &mir.Error{Kind: mir.TypeMismatch, Detail: "want Number"}
	err := wrapStage("f", src)

	assert.Equal(t, KindType, err.Kind)
	assert.Contains(t, err.Detail, "want Number")
}

func TestWrapStageMapsAbiError(t *testing.T) {
	src := &abi.Error{Kind: abi.UnsupportedType, Detail: "tuple"}
	err := wrapStage("f", src)

	assert.Equal(t, KindAbi, err.Kind)
	assert.Equal(t, UnsupportedType, err.Reason)
}

func TestWrapStageFallsBackToKindDecodeForUnknownError(t *testing.T) {
	src := errors.New("boom")
	err := wrapStage("f", src)

	assert.Equal(t, KindDecode, err.Kind)
	assert.Equal(t, "boom", err.Detail)
}

func TestErrorStringIncludesFunctionDetailAndReason(t *testing.T) {
	err := &Error{Kind: KindFlow, Reason: UnresolvedJump, Function: "transfer", Detail: "no const target"}
	msg := err.Error()

	require.Contains(t, msg, "flow")
	require.Contains(t, msg, "transfer")
	require.Contains(t, msg, "no const target")
	require.Contains(t, msg, "UnresolvedJump")
}

func TestErrorStringWithOnlyKind(t *testing.T) {
	err := &Error{Kind: KindConfig}
	assert.Equal(t, "config", err.Error())
}
