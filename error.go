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

package pitch

import (
	"strconv"
	"strings"
)

// InvalidPlacementError is returned by [Pitch.ArcAroundGoal] if the
// placement is not valid for the orientation of the pitch.
type InvalidPlacementError struct {
	Placement string
	Valid     []string
}

func (err *InvalidPlacementError) Error() string {
	quoted := make([]string, len(err.Valid))
	for i, v := range err.Valid {
		quoted[i] = strconv.Quote(v)
	}
	return "placement " + strconv.Quote(err.Placement) +
		" should be " + strings.Join(quoted, " or ")
}

// InvalidRadiusError is returned by [Pitch.ArcAroundGoal] if the radius is
// negative or not finite.
type InvalidRadiusError struct {
	Radius float64
}

func (err *InvalidRadiusError) Error() string {
	return "invalid arc radius " + strconv.FormatFloat(err.Radius, 'g', -1, 64)
}

// InvalidOrientationError is returned by [ParseOrientation] for unknown
// orientation names.
type InvalidOrientationError struct {
	Value string
}

func (err *InvalidOrientationError) Error() string {
	return "unknown orientation " + strconv.Quote(err.Value) +
		` (valid orientations: "horizontal", "vertical")`
}

// InvalidGoalTypeError is returned by [ParseGoalType] for unknown goal
// types.
type InvalidGoalTypeError struct {
	Value string
}

func (err *InvalidGoalTypeError) Error() string {
	return "unknown goal type " + strconv.Quote(err.Value) +
		` (valid goal types: "box", "line", "none")`
}

// LengthMismatchError indicates that coordinate slices passed to one of the
// overlay functions have different lengths.
type LengthMismatchError struct {
	Field    string
	Len, Exp int
}

func (err *LengthMismatchError) Error() string {
	return err.Field + " has " + strconv.Itoa(err.Len) +
		" elements, expected " + strconv.Itoa(err.Exp)
}
