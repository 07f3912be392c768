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
	"fmt"

	"github.com/pontem-network/e2m-go/abi"
	"github.com/pontem-network/e2m-go/evm"
	"github.com/pontem-network/e2m-go/flow"
	"github.com/pontem-network/e2m-go/hir"
	"github.com/pontem-network/e2m-go/mir"
)

// Kind classifies which pipeline stage produced an Error (spec §7's
// taxonomy table, flattened onto one enum so a single errors.As(&Kind)
// recovers it regardless of the underlying stage package).
type Kind int

const (
	KindDecode Kind = iota
	KindFlow
	KindExecution
	KindType
	KindAbi
	KindEmit
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindFlow:
		return "flow"
	case KindExecution:
		return "execution"
	case KindType:
		return "type"
	case KindAbi:
		return "abi"
	case KindEmit:
		return "emit"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Reason carries the stage-specific sub-code (spec §7's "sub-reasons"):
// flow.ErrorKind's UnresolvedJump/IrreducibleCFG, hir.ErrorKind's
// StackUnderflow/UnknownOpcode/UnsupportedOp, abi.ErrorKind's
// Malformed/UnsupportedType, and this package's own PoolOverflow/
// UnboundLabel/InvalidFlags.
type Reason int

const (
	ReasonNone Reason = iota
	PoolOverflow
	UnboundLabel
	InvalidFlags
	UnresolvedJump
	IrreducibleCFG
	StackUnderflow
	UnknownOpcode
	UnsupportedOp
	Malformed
	UnsupportedType
)

func (r Reason) String() string {
	switch r {
	case PoolOverflow:
		return "PoolOverflow"
	case UnboundLabel:
		return "UnboundLabel"
	case InvalidFlags:
		return "InvalidFlags"
	case UnresolvedJump:
		return "UnresolvedJump"
	case IrreducibleCFG:
		return "IrreducibleCFG"
	case StackUnderflow:
		return "StackUnderflow"
	case UnknownOpcode:
		return "UnknownOpcode"
	case UnsupportedOp:
		return "UnsupportedOp"
	case Malformed:
		return "Malformed"
	case UnsupportedType:
		return "UnsupportedType"
	default:
		return ""
	}
}

var flowReasons = map[flow.ErrorKind]Reason{
	flow.UnresolvedJump: UnresolvedJump,
	flow.IrreducibleCFG: IrreducibleCFG,
}

var hirReasons = map[hir.ErrorKind]Reason{
	hir.StackUnderflow: StackUnderflow,
	hir.UnknownOpcode:  UnknownOpcode,
	hir.UnsupportedOp:  UnsupportedOp,
}

var abiReasons = map[abi.ErrorKind]Reason{
	abi.Malformed:       Malformed,
	abi.UnsupportedType: UnsupportedType,
}

// Error is translator's single error type: every stage's failure is
// wrapped into one of these, keeping Kind/Reason/Function/Offset/Opcode
// available to a caller via errors.As without needing to know which
// stage package raised it.
type Error struct {
	Kind     Kind
	Reason   Reason
	Function string
	Offset   evm.Offset
	Op       evm.OpCode
	Detail   string
	cause    error
}

func (e *Error) Error() string {
	var loc string
	switch {
	case e.Function != "" && e.Detail != "":
		loc = fmt.Sprintf("%s: %s: %s", e.Kind, e.Function, e.Detail)
	case e.Function != "":
		loc = fmt.Sprintf("%s: %s", e.Kind, e.Function)
	case e.Detail != "":
		loc = fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	default:
		loc = e.Kind.String()
	}
	if e.Reason != ReasonNone {
		loc = fmt.Sprintf("%s (%s)", loc, e.Reason)
	}
	return loc
}

func (e *Error) Unwrap() error { return e.cause }

// wrapStage translates a stage package's own error type into one Error,
// preserving its Kind/Reason and any offset/opcode context it carried.
func wrapStage(fn string, err error) *Error {
	if err == nil {
		return nil
	}
	var (
		decodeErr *evm.DecodeError
		flowErr   *flow.Error
		hirErr    *hir.Error
		mirErr    *mir.Error
		abiErr    *abi.Error
	)
	switch {
	case errors.As(err, &decodeErr):
		return &Error{Kind: KindDecode, Function: fn, Offset: decodeErr.Offset, Op: decodeErr.Op, Detail: decodeErr.Error(), cause: err}
	case errors.As(err, &flowErr):
		return &Error{Kind: KindFlow, Reason: flowReasons[flowErr.Kind], Function: fn, Offset: flowErr.Offset, Detail: flowErr.Detail, cause: err}
	case errors.As(err, &hirErr):
		return &Error{Kind: KindExecution, Reason: hirReasons[hirErr.Kind], Function: fn, Offset: hirErr.Offset, Op: hirErr.Op, Detail: hirErr.Detail, cause: err}
	case errors.As(err, &mirErr):
		return &Error{Kind: KindType, Function: fn, Detail: mirErr.Error(), cause: err}
	case errors.As(err, &abiErr):
		return &Error{Kind: KindAbi, Reason: abiReasons[abiErr.Kind], Function: fn, Detail: abiErr.Error(), cause: err}
	default:
		return &Error{Kind: KindDecode, Function: fn, Detail: err.Error(), cause: err}
	}
}
