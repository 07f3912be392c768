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
	"bytes"
	"encoding/json"
	"sort"
)

// ABI is a loaded contract descriptor: its external methods, keyed by
// name, plus the constructor's input list if one was declared.
type ABI struct {
	Methods     map[string]Method
	Constructor []Argument
}

type rawEntry struct {
	Type            string        `json:"type"`
	Name            string        `json:"name"`
	Inputs          []rawArgument `json:"inputs"`
	Outputs         []rawArgument `json:"outputs"`
	StateMutability string        `json:"stateMutability"`
}

// Load parses a Solidity ABI JSON document (spec §6): an array of
// entries with type in {function, constructor, event, fallback,
// receive}. Only function and constructor entries carry data this
// translator needs; the rest are recognized and skipped.
func Load(data []byte) (*ABI, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var raw []rawEntry
	if err := dec.Decode(&raw); err != nil {
		return &ABI{}, &Error{Kind: Malformed, Detail: err.Error()}
	}

	out := &ABI{Methods: map[string]Method{}}
	for _, e := range raw {
		switch e.Type {
		case "function", "":
			m, err := parseMethod(e)
			if err != nil {
				return nil, err
			}
			out.Methods[m.Name] = m
		case "constructor":
			args, err := parseArguments(e.Inputs)
			if err != nil {
				return nil, err
			}
			out.Constructor = args
		case "event", "fallback", "receive":
			// Recognized, carries nothing this translator emits.
		default:
			return nil, &Error{Kind: Malformed, Detail: "unknown entry type " + e.Type}
		}
	}
	return out, nil
}

func parseMethod(e rawEntry) (Method, error) {
	inputs, err := parseArguments(e.Inputs)
	if err != nil {
		return Method{}, err
	}
	outputs, err := parseArguments(e.Outputs)
	if err != nil {
		return Method{}, err
	}
	return Method{
		Name:       e.Name,
		Inputs:     inputs,
		Outputs:    outputs,
		Mutability: parseMutability(e.StateMutability),
	}, nil
}

func parseArguments(raw []rawArgument) ([]Argument, error) {
	args := make([]Argument, len(raw))
	for i, r := range raw {
		a, err := r.parse()
		if err != nil {
			return nil, err
		}
		args[i] = a
	}
	return args, nil
}

// Ordered returns every external method sorted ascending by 4-byte
// selector (spec §4.10: "Orders them deterministically by selector
// value"), the order in which translator.Translate lowers the methods
// and hands them to the emitter.
func (a *ABI) Ordered() []Method {
	methods := make([]Method, 0, len(a.Methods))
	for _, m := range a.Methods {
		methods = append(methods, m)
	}
	sort.Slice(methods, func(i, j int) bool {
		si, sj := methods[i].Selector(), methods[j].Selector()
		return bytes.Compare(si[:], sj[:]) < 0
	})
	return methods
}
