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

// Argument is one named, typed input or output slot of an ABI entry.
type Argument struct {
	Name string
	Type Type
}

// rawArgument mirrors the JSON shape of one ABI "inputs"/"outputs" entry.
type rawArgument struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (a rawArgument) parse() (Argument, error) {
	t, err := parseType(a.Type)
	if err != nil {
		return Argument{}, err
	}
	return Argument{Name: a.Name, Type: t}, nil
}
