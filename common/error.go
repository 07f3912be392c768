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

package common

import (
	"errors"
)

var (
	//ErrAddressTooLong is returned if a decoded address exceeds AddressLength bytes
	ErrAddressTooLong = errors.New("address exceeds maximum length")

	//ErrInvalidAddressLength is returned if an address is neither 16 nor 32 bytes
	ErrInvalidAddressLength = errors.New("address must be 16 or 32 bytes")
)