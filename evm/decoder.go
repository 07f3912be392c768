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
	"fmt"
	"strings"
)

// DecodeError reports a malformed byte stream: a PUSH opcode whose
// immediate runs past the end of the code.
type DecodeError struct {
	Offset Offset
	Op     OpCode
	Want   int
	Got    int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: offset %d: %s wants %d immediate bytes, only %d remain", e.Offset, e.Op, e.Want, e.Got)
}

// ParseHex accepts a hex string, with or without a 0x prefix, tolerating
// surrounding whitespace, and returns the raw bytes.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = trimHex0x(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode: invalid hex input: %w", err)
	}
	return b, nil
}

func trimHex0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// Decode strips the swarm trailer from code and decodes the remainder
// into an ordered instruction stream.
func Decode(code []byte) ([]Instruction, error) {
	code = StripSwarmTrailer(code)
	var out []Instruction
	err := ForEachInstruction(code, func(in Instruction) {
		out = append(out, in)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ForEachInstruction walks code (already trailer-stripped) and invokes fn
// for each decoded Instruction in offset order. It mirrors the shape of
// core/asm's ForEachDisassembledInstruction: a callback-driven walk rather
// than building an intermediate slice, so callers that only need a
// one-pass scan avoid the allocation; Decode builds its slice on top of it.
func ForEachInstruction(code []byte, fn func(Instruction)) error {
	pc := Offset(0)
	for int(pc) < len(code) {
		op := OpCode(code[pc])
		n := op.PushSize()
		if n == 0 {
			fn(Instruction{Offset: pc, Op: op})
			pc++
			continue
		}
		avail := len(code) - int(pc) - 1
		if avail < n {
			arg := append([]byte(nil), code[pc+1:]...)
			fn(Instruction{Offset: pc, Op: op, Arg: arg})
			return &DecodeError{Offset: pc, Op: op, Want: n, Got: avail}
		}
		arg := append([]byte(nil), code[pc+1:pc+1+Offset(n)]...)
		fn(Instruction{Offset: pc, Op: op, Arg: arg})
		pc += Offset(1 + n)
	}
	return nil
}

// Encode re-serializes an instruction stream to bytes. Used by the
// decode round-trip property test (spec §8, property 1).
func Encode(instrs []Instruction) []byte {
	var out []byte
	for _, in := range instrs {
		out = append(out, byte(in.Op))
		out = append(out, in.Arg...)
	}
	return out
}
