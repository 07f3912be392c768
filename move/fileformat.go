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

// Package move assembles a MIR program into a Move binary file_format
// module (spec §4.9) and serializes it to bytes. The table layout and
// magic number are the public Move/Diem binary spec, not corpus-private;
// no published Go encoder for it exists in the example pack, so the
// tables and LEB128 writer here are hand-rolled against that public
// format rather than against any one corpus library.
package move

// MagicNumber opens every Move compiled-module blob.
const MagicNumber uint32 = 0xA11CEB0B

// Version is the file_format version this emitter targets.
const Version uint32 = 6

// SignatureToken is the subset of Move's type tags this emitter needs:
// the two numeric widths its MathModel strategies choose between, Bool,
// and three emulated resource handles backed by a linked runtime support
// module (spec has no native memory/storage primitive in Move, so EVM's
// Memory/Storage/Signer are carried as opaque references resolved by
// that module rather than as inline struct definitions here).
type SignatureToken int

const (
	TokU128 SignatureToken = iota
	TokU256
	TokBool
	TokSignerRef
	TokStorageRef
	TokMemoryRef
)

// Signature is an interned parameter/return/locals type list.
type Signature []SignatureToken

// Constant is a typed, already-BCS-encoded byte blob (spec §4.9's
// Constants table), following constants.rs's `(type, data)` shape.
type Constant struct {
	Type SignatureToken
	Data []byte
}

// Visibility is a function definition's Move visibility modifier.
type Visibility int

const (
	Private Visibility = iota
	Public
)

// FunctionHandle names a callable function by its interned identifier
// and interned parameter/return signatures — self-module only, since
// this emitter never generates cross-module FunctionHandles for a
// genuinely external dependency (spec's "linked intrinsic module" is
// realized as private functions generated into the same module; see
// DESIGN.md).
type FunctionHandle struct {
	Name       uint16 // IdentifierIndex
	Parameters uint16 // SignatureIndex
	Return     uint16 // SignatureIndex
}

// FunctionDefinition is one function's full body (spec §4.9's Code
// unit): its handle, locals signature, and resolved bytecode.
type FunctionDefinition struct {
	Handle     uint16 // index into CompiledModule.Handles
	Visibility Visibility
	Locals     uint16 // SignatureIndex
	Code       []Instruction
}

// CompiledModule is the fully-assembled, not-yet-serialized module
// (spec §4.9's "Module: address, self-identifier, empty friends,
// ordered function handles ..., final serialized blob").
type CompiledModule struct {
	// Address holds either 16 or 32 bytes (spec §6's "16- or 32-byte
	// Move account address"); Serialize writes whichever length was
	// produced here, length-prefixed.
	Address     []byte
	SelfName    uint16 // IdentifierIndex
	Identifiers []string
	Signatures  []Signature
	Constants   []Constant
	Handles     []FunctionHandle
	Functions   []FunctionDefinition
}
