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
	"slices"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pitch/graphics"
)

// Orientation selects how the pitch is laid out in drawing space.
type Orientation int

// These are the supported orientations.
const (
	// Horizontal pitches have the goals on the left and on the right.
	Horizontal Orientation = iota

	// Vertical pitches have the goals at the top and at the bottom.
	// Pitch-space x-coordinates run along the vertical axis of the drawing.
	Vertical
)

// ParseOrientation converts "horizontal" or "vertical" to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return 0, &InvalidOrientationError{Value: s}
	}
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "orientation?"
	}
}

// Tuples indexed by side use this order.  For the bounds of a dimension
// these are sides of the pitch, for padding they are sides of the drawing.
const (
	sideLeft = iota
	sideRight
	sideBottom
	sideTop
)

// axisTable describes one orientation as data.  All orientation-dependent
// steps of the extent computation are driven by this table.
type axisTable struct {
	// order lists, for each entry of a drawing-space tuple, the side of the
	// pitch it is taken from.
	order [4]int

	// sign is the sign applied to the padding of each side of the
	// drawing, so that positive padding always enlarges the drawing.
	sign [4]float64

	// scaled lists the sides of the drawing whose padding is multiplied by
	// the aspect ratio of the dimension.
	scaled [2]int

	// start is the drawing-space index of the boundary replaced by the
	// halfway line in half-pitch mode.
	start int

	// width lists the drawing-space indices which run across the pitch.
	// These are negated for standards where the y-axis points down.
	width [2]int

	// invertAspect is set if the aspect ratio applies to the first
	// drawing axis instead of the second one.
	invertAspect bool

	// Stripe computation: the drawing-space index of the reference
	// boundary, and the sides of the drawing whose negative padding
	// shortens the stripes.
	stripeRef                int
	stripeTopPad, stripeBPad int
	stripeFlip               bool

	hexbinGridSize [2]int

	// placements are the names of the goals at the two ends of the
	// pitch-space x-axis.
	placements [2]string

	// stripeAxis is the drawing axis along which stripe locations are
	// measured.
	stripeAxis graphics.Axis
}

var tables = [...]axisTable{
	Horizontal: {
		order:          [4]int{sideLeft, sideRight, sideBottom, sideTop},
		sign:           [4]float64{-1, 1, -1, 1},
		scaled:         [2]int{sideLeft, sideRight},
		start:          0,
		width:          [2]int{2, 3},
		stripeRef:      2,
		stripeTopPad:   sideTop,
		stripeBPad:     sideBottom,
		stripeFlip:     true,
		hexbinGridSize: [2]int{17, 8},
		placements:     [2]string{"left", "right"},
		stripeAxis:     graphics.AxisX,
	},
	Vertical: {
		order:          [4]int{sideTop, sideBottom, sideLeft, sideRight},
		sign:           [4]float64{1, -1, -1, 1},
		scaled:         [2]int{sideBottom, sideTop},
		start:          2,
		width:          [2]int{0, 1},
		invertAspect:   true,
		stripeRef:      0,
		stripeTopPad:   sideLeft,
		stripeBPad:     sideRight,
		hexbinGridSize: [2]int{17, 17},
		placements:     [2]string{"bottom", "top"},
		stripeAxis:     graphics.AxisY,
	},
}

func (o Orientation) table() *axisTable {
	if o == Vertical {
		return &tables[Vertical]
	}
	return &tables[Horizontal]
}

// ReversePoint converts a point between pitch space and drawing space.
// For vertical pitches the coordinates are swapped, for horizontal pitches
// the point is returned unchanged.  The function is its own inverse.
func (o Orientation) ReversePoint(x, y float64) (float64, float64) {
	if o == Vertical {
		return y, x
	}
	return x, y
}

// ReverseVertices applies [Orientation.ReversePoint] to every vertex.
// The result is a new slice.
func (o Orientation) ReverseVertices(pts []vec.Vec2) []vec.Vec2 {
	res := slices.Clone(pts)
	if o == Vertical {
		for i, p := range res {
			res[i] = vec.Vec2{X: p.Y, Y: p.X}
		}
	}
	return res
}

// ReverseOffsets converts a tuple of annotation offsets between pitch
// order and drawing order.  For vertical pitches the order of the entries
// is reversed.  The result is a new slice.
func (o Orientation) ReverseOffsets(offsets []float64) []float64 {
	res := slices.Clone(offsets)
	if o == Vertical {
		slices.Reverse(res)
	}
	return res
}
