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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignaturePoolDedupsByExactShape(t *testing.T) {
	var pool SignaturePool
	a := pool.Intern(Signature{TokU128, TokBool})
	b := pool.Intern(Signature{TokU128, TokBool})
	c := pool.Intern(Signature{TokU128})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, pool.Freeze(), 2)
}

func TestIdentifierPoolDedupsByName(t *testing.T) {
	var pool IdentifierPool
	a := pool.Intern("transfer")
	b := pool.Intern("transfer")
	c := pool.Intern("balanceOf")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, []string{"transfer", "balanceOf"}, pool.Freeze())
}

func TestConstantPoolDedupsByTypeAndData(t *testing.T) {
	var pool ConstantPool
	a := pool.Intern(Constant{Type: TokU128, Data: []byte{1, 2, 3}})
	b := pool.Intern(Constant{Type: TokU128, Data: []byte{1, 2, 3}})
	c := pool.Intern(Constant{Type: TokU256, Data: []byte{1, 2, 3}})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestFunctionHandlePoolDedupsByFields(t *testing.T) {
	var pool FunctionHandlePool
	h := FunctionHandle{Name: 1, Parameters: 2, Return: 3}
	a := pool.Intern(h)
	b := pool.Intern(h)
	c := pool.Intern(FunctionHandle{Name: 1, Parameters: 2, Return: 4})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
