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

	"github.com/pontem-network/e2m-go/abi"
	"github.com/pontem-network/e2m-go/evm"
	"github.com/pontem-network/e2m-go/mir"
)

// CompiledMethod pairs one lowered function with the ABI entry naming
// its Move signature; the constructor is just another entry whose
// Method has no Outputs.
type CompiledMethod struct {
	Method *abi.Method
	Mir    *mir.Mir
}

// Emitter walks a set of CompiledMethods into one CompiledModule (spec
// §4.9). One Emitter is used for a whole compilation: its pools and
// intrinsic registry are shared across every function so identical
// signatures/constants/helpers are interned once module-wide.
type Emitter struct {
	math         MathModel
	hiddenOutput bool
	Identifiers  IdentifierPool
	Signatures   SignaturePool
	Constants    ConstantPool
	Handles      FunctionHandlePool
	intrinsics   map[string]uint16
	functions    []FunctionDefinition
}

// NewEmitter returns an Emitter fixed to one MathModel for the whole
// compilation (spec §4.9: "the chosen model is fixed for the whole
// compilation"). hiddenOutput mirrors the front-end's hidden_output flag
// (spec §6): every emitted function is given an empty Return signature
// and its Result statements are lowered to a bare Ret, discarding the
// values rather than pushing them onto the stack first.
func NewEmitter(math MathModel, hiddenOutput bool) *Emitter {
	return &Emitter{math: math, hiddenOutput: hiddenOutput, intrinsics: map[string]uint16{}}
}

// EmitModule assembles contractName's entries into a CompiledModule,
// ordered selector-then-constructor per spec §4.10 — the caller is
// expected to have already run abi.ABI.Ordered() and append the
// constructor entry last.
func (e *Emitter) EmitModule(contractName string, address []byte, entries []CompiledMethod) *CompiledModule {
	self := e.Identifiers.Intern(contractName)
	for _, entry := range entries {
		e.emitFunction(entry)
	}
	return &CompiledModule{
		Address:     address,
		SelfName:    self,
		Identifiers: e.Identifiers.Freeze(),
		Signatures:  e.Signatures.Freeze(),
		Constants:   e.Constants.Freeze(),
		Handles:     e.Handles.Freeze(),
		Functions:   e.functions,
	}
}

func (e *Emitter) emitFunction(entry CompiledMethod) {
	params := Signature{TokSignerRef}
	for range entry.Method.Inputs {
		params = append(params, e.math.NumberType())
	}
	var returns Signature
	if !e.hiddenOutput {
		for _, out := range entry.Method.Outputs {
			if out.Type == abi.Bool {
				returns = append(returns, TokBool)
			} else {
				returns = append(returns, e.math.NumberType())
			}
		}
	}

	paramsIdx := e.Signatures.Intern(params)
	returnIdx := e.Signatures.Intern(returns)
	localsSig := make(Signature, len(entry.Mir.Locals))
	for i, t := range entry.Mir.Locals {
		localsSig[i] = e.tokenFor(t)
	}
	localsIdx := e.Signatures.Intern(localsSig)

	fb := &funcBuilder{emitter: e, loopStarts: map[evm.Offset]uint16{}}
	fb.genStmts(entry.Mir.Stmts)

	handle := e.Handles.Intern(FunctionHandle{
		Name:       e.Identifiers.Intern(entry.Method.Name),
		Parameters: paramsIdx,
		Return:     returnIdx,
	})
	e.functions = append(e.functions, FunctionDefinition{
		Handle:     handle,
		Visibility: Public,
		Locals:     localsIdx,
		Code:       fb.code,
	})
}

func (e *Emitter) tokenFor(t mir.SType) SignatureToken {
	switch t {
	case mir.Bool:
		return TokBool
	case mir.Storage:
		return TokStorageRef
	case mir.Memory:
		return TokMemoryRef
	case mir.Signer:
		return TokSignerRef
	default:
		return e.math.NumberType()
	}
}

// Intrinsic lazily registers a private helper function named name with
// arity Num-typed parameters and one Num-typed return, generating a
// structural stand-in body (spec's "linked intrinsic module" realized
// as a locally generated helper — see DESIGN.md). Repeated calls with
// the same name return the same handle.
func (e *Emitter) Intrinsic(name string, arity int) uint16 {
	if idx, ok := e.intrinsics[name]; ok {
		return idx
	}
	params := make(Signature, arity)
	for i := range params {
		params[i] = e.math.NumberType()
	}
	returns := Signature{e.math.NumberType()}
	paramsIdx := e.Signatures.Intern(params)
	returnIdx := e.Signatures.Intern(returns)
	localsIdx := e.Signatures.Intern(params)

	handle := e.Handles.Intern(FunctionHandle{
		Name:       e.Identifiers.Intern(name),
		Parameters: paramsIdx,
		Return:     returnIdx,
	})
	e.intrinsics[name] = handle
	e.functions = append(e.functions, FunctionDefinition{
		Handle:     handle,
		Visibility: Private,
		Locals:     localsIdx,
		Code:       intrinsicStubBody(arity),
	})
	return handle
}

// intrinsicStubBody returns a structurally valid, arithmetically
// best-effort body: it folds every parameter together with the native
// Add opcode and returns the result. It is not a verified implementation
// of the named operation — every helper this emitter generates is a
// placeholder for a real runtime support module this project does not
// ship (see DESIGN.md's Open Questions).
func intrinsicStubBody(arity int) []Instruction {
	if arity == 0 {
		return []Instruction{LdU128(big.NewInt(0)), Ret()}
	}
	code := []Instruction{MoveLoc(0)}
	for i := 1; i < arity; i++ {
		code = append(code, MoveLoc(uint16(i)), Instruction{Op: OpAdd})
	}
	return append(code, Ret())
}
