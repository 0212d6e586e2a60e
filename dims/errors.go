// seehuhn.de/go/pitch - draw football pitches and match events
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dims

import (
	"fmt"
	"strconv"
	"strings"
)

// UnknownPitchTypeError is returned by [Get] if the name of a standard is
// not recognised.
type UnknownPitchTypeError struct {
	Name  string
	Valid []string
}

func (err *UnknownPitchTypeError) Error() string {
	return "unknown pitch type " + strconv.Quote(err.Name) +
		" (valid types: " + strings.Join(err.Valid, ", ") + ")"
}

// InvalidSizeError is returned by [Get] if the requested pitch size is not
// positive and finite.
type InvalidSizeError struct {
	Length, Width float64
}

func (err *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid pitch size %gx%g", err.Length, err.Width)
}
