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
	"github.com/pontem-network/e2m-go/abi"
	"github.com/pontem-network/e2m-go/evm"
	"github.com/pontem-network/e2m-go/flow"
	"github.com/pontem-network/e2m-go/hir"
	"github.com/pontem-network/e2m-go/mir"
	"github.com/pontem-network/e2m-go/move"
	"github.com/pontem-network/e2m-go/xlog"
)

var log = xlog.New("pkg", "translator")

// Translate runs the full pipeline over bin (the contract's runtime+ctor
// bytecode, hex-encoded, with or without the "0x" prefix) and abiJSON
// (the Solidity ABI JSON array), returning the serialized Move module
// (spec §1/§6).
func Translate(bin, abiJSON []byte, cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Trace {
		log.Debug("translate: start", "module", cfg.ModuleName, "math", cfg.MathBackend)
	}

	contractABI, err := abi.Load(abiJSON)
	if err != nil {
		return nil, wrapStage(cfg.ModuleName, err)
	}

	code, decErr := evm.ParseHex(string(bin))
	if decErr != nil {
		return nil, wrapStage(cfg.ModuleName, decErr)
	}

	split, err := evm.SplitConstructor(code)
	if err != nil {
		return nil, wrapStage(cfg.ModuleName, err)
	}

	entries, fallback, err := dispatchTable(split.Main)
	if err != nil {
		return nil, err
	}
	_ = fallback // the fallback/abort body has no ABI entry to attach to (spec §4.5.1)

	emitter := move.NewEmitter(cfg.mathModel(), cfg.Flags.HiddenOutput)
	var compiled []move.CompiledMethod

	for _, method := range contractABI.Ordered() {
		sel := method.Selector()
		stmts, ok := entries[sel]
		if !ok {
			return nil, &Error{Kind: KindAbi, Reason: Malformed, Function: method.Name,
				Detail: "no dispatcher entry matches this method's selector"}
		}
		if cfg.Trace {
			log.Debug("translate: lowering method", "name", method.Name, "selector", sel)
		}
		m := method
		body, err := mir.Function(&hir.Hir{Stmts: stmts}, &m)
		if err != nil {
			return nil, wrapStage(method.Name, err)
		}
		compiled = append(compiled, move.CompiledMethod{Method: &m, Mir: body})
	}

	ctorMir, err := buildConstructor(split, contractABI.Constructor)
	if err != nil {
		return nil, err
	}
	compiled = append(compiled, move.CompiledMethod{
		Method: &abi.Method{Name: "constructor", Inputs: contractABI.Constructor},
		Mir:    ctorMir,
	})

	addrBytes, err := cfg.Address.TrimmedBytes(cfg.addressLength())
	if err != nil {
		return nil, wrapStage(cfg.ModuleName, err)
	}
	module := emitter.EmitModule(cfg.ModuleName, addrBytes, compiled)
	out := move.Serialize(module)
	if cfg.Trace {
		log.Debug("translate: done", "bytes", len(out))
	}
	return out, nil
}

// dispatchTable builds runtime code's Flow/Hir and splits it into the
// per-selector bodies the Solidity dispatcher compiles to (spec
// §4.5.1), running the two-pass HIR executor-then-optimizer first.
func dispatchTable(blocks evm.BlockMap) (map[[4]byte][]hir.Statement, []hir.Statement, error) {
	f, err := flow.Build(blocks)
	if err != nil {
		return nil, nil, wrapStage("", err)
	}
	h, err := hir.NewExecutor(blocks).Run(f)
	if err != nil {
		return nil, nil, wrapStage("", err)
	}
	h = hir.Optimize(h)
	entries, fallback := hir.SplitEntryPoints(h)
	return entries, fallback, nil
}

// buildConstructor lowers the constructor section, if present, into its
// own Mir; a contract with no declared constructor gets a constructor
// that only runs the prelude (binds Storage/Memory/Signer) and
// immediately returns, matching Solidity's implicit empty constructor.
func buildConstructor(split *evm.Split, ctorArgs []abi.Argument) (*mir.Mir, error) {
	if !split.HasCtor {
		return mir.Constructor(&hir.Hir{Stmts: []hir.Statement{hir.Stop{}}}, ctorArgs)
	}
	f, err := flow.Build(split.Ctor)
	if err != nil {
		return nil, wrapStage("constructor", err)
	}
	h, err := hir.NewExecutor(split.Ctor).Run(f)
	if err != nil {
		return nil, wrapStage("constructor", err)
	}
	h = hir.Optimize(h)
	return mir.Constructor(h, ctorArgs)
}
