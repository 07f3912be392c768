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
	"bytes"
	"encoding/binary"
)

// tableKind tags one of CompiledModule's logical tables in the
// serialized header, mirroring the Move/Diem binary format's table
// directory (kind, offset, length) — no corpus crate covers this
// format, so the layout here follows the public Move binary spec
// rather than a retrieved reference implementation.
type tableKind uint8

const (
	tableIdentifiers tableKind = iota
	tableSignatures
	tableConstants
	tableFunctionHandles
	tableFunctionDefs
)

// Serialize encodes m into the Move compiled-module binary format:
// magic, version, then a table directory followed by the table bodies
// themselves. Integers narrower than a full word use ULEB128, matching
// the real format's preference for compact varints over fixed widths.
func Serialize(m *CompiledModule) []byte {
	var identifiers, signatures, constants, handles, defs bytes.Buffer

	writeIdentifierTable(&identifiers, m.Identifiers)
	writeSignatureTable(&signatures, m.Signatures)
	writeConstantTable(&constants, m.Constants)
	writeHandleTable(&handles, m.Handles)
	writeFunctionDefTable(&defs, m.Functions)

	tables := []struct {
		kind tableKind
		body []byte
	}{
		{tableIdentifiers, identifiers.Bytes()},
		{tableSignatures, signatures.Bytes()},
		{tableConstants, constants.Bytes()},
		{tableFunctionHandles, handles.Bytes()},
		{tableFunctionDefs, defs.Bytes()},
	}

	var out bytes.Buffer
	var magic [4]byte
	binary.BigEndian.PutUint32(magic[:], MagicNumber)
	out.Write(magic[:])
	writeU32(&out, Version)
	writeAddress(&out, m.Address)
	writeULEB128(&out, uint64(m.SelfName))

	writeULEB128(&out, uint64(len(tables)))
	offset := uint32(0)
	for _, t := range tables {
		out.WriteByte(byte(t.kind))
		writeU32(&out, offset)
		writeU32(&out, uint32(len(t.body)))
		offset += uint32(len(t.body))
	}
	for _, t := range tables {
		out.Write(t.body)
	}
	return out.Bytes()
}

// writeAddress writes addr length-prefixed (a single byte, 16 or 32)
// so a reader can tell a short-address module from a full one without
// consulting any out-of-band config.
func writeAddress(out *bytes.Buffer, addr []byte) {
	out.WriteByte(byte(len(addr)))
	out.Write(addr)
}

func writeU32(out *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	out.Write(b[:])
}

// writeULEB128 encodes v as an unsigned LEB128 varint, the Move binary
// format's table-length and pool-index encoding.
func writeULEB128(out *bytes.Buffer, v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out.WriteByte(b | 0x80)
			continue
		}
		out.WriteByte(b)
		return
	}
}

func writeIdentifierTable(out *bytes.Buffer, names []string) {
	writeULEB128(out, uint64(len(names)))
	for _, n := range names {
		writeULEB128(out, uint64(len(n)))
		out.WriteString(n)
	}
}

func writeSignatureTable(out *bytes.Buffer, sigs []Signature) {
	writeULEB128(out, uint64(len(sigs)))
	for _, sig := range sigs {
		writeULEB128(out, uint64(len(sig)))
		for _, tok := range sig {
			out.WriteByte(byte(tok))
		}
	}
}

func writeConstantTable(out *bytes.Buffer, consts []Constant) {
	writeULEB128(out, uint64(len(consts)))
	for _, c := range consts {
		out.WriteByte(byte(c.Type))
		writeULEB128(out, uint64(len(c.Data)))
		out.Write(c.Data)
	}
}

func writeHandleTable(out *bytes.Buffer, handles []FunctionHandle) {
	writeULEB128(out, uint64(len(handles)))
	for _, h := range handles {
		writeULEB128(out, uint64(h.Name))
		writeULEB128(out, uint64(h.Parameters))
		writeULEB128(out, uint64(h.Return))
	}
}

func writeFunctionDefTable(out *bytes.Buffer, defs []FunctionDefinition) {
	writeULEB128(out, uint64(len(defs)))
	for _, d := range defs {
		writeULEB128(out, uint64(d.Handle))
		out.WriteByte(byte(d.Visibility))
		writeULEB128(out, uint64(d.Locals))
		writeCode(out, d.Code)
	}
}

func writeCode(out *bytes.Buffer, code []Instruction) {
	writeULEB128(out, uint64(len(code)))
	for _, ins := range code {
		out.WriteByte(byte(ins.Op))
		switch ins.Op {
		case OpBrTrue, OpBrFalse, OpBranch, OpLdConst, OpCopyLoc, OpMoveLoc, OpStLoc, OpCall:
			writeULEB128(out, uint64(ins.Index))
		case OpLdU128, OpLdU256:
			b := ins.Literal.Bytes()
			writeULEB128(out, uint64(len(b)))
			out.Write(b)
		}
	}
}
