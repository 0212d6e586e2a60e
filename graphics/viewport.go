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

package graphics

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Viewport maps drawing coordinates to device coordinates.
//
// Device coordinates are measured in pixels, with the origin in the top
// left corner and the y-axis pointing down.
type Viewport struct {
	// Extent gives the drawing coordinates shown at the left, right, bottom
	// and top edge of the device.  The limits may be given in decreasing
	// order, to flip an axis.
	Extent [4]float64

	Width, Height float64
}

// NewViewport returns a viewport for the given extent.  The device height
// is chosen so that the ratio width/height equals axAspect.
func NewViewport(extent [4]float64, axAspect, width float64) *Viewport {
	height := width
	if axAspect > 0 && !math.IsInf(axAspect, 0) {
		height = width / axAspect
	}
	return &Viewport{
		Extent: extent,
		Width:  width,
		Height: height,
	}
}

// Matrix returns the transformation from drawing coordinates to device
// coordinates.
func (v *Viewport) Matrix() matrix.Matrix {
	x0, x1, y0, y1 := v.Extent[0], v.Extent[1], v.Extent[2], v.Extent[3]
	sx := v.Width / (x1 - x0)
	sy := -v.Height / (y1 - y0)
	return matrix.Matrix{sx, 0, 0, sy, -x0 * sx, v.Height - y0*sy}
}

// Apply maps a point from drawing coordinates to device coordinates.
func (v *Viewport) Apply(x, y float64) vec.Vec2 {
	return apply(v.Matrix(), vec.Vec2{X: x, Y: y})
}

// Scale returns the number of device pixels per drawing unit along the
// two axes.  Both values are positive.
func (v *Viewport) Scale() (float64, float64) {
	M := v.Matrix()
	return math.Abs(M[0]), math.Abs(M[3])
}

// Rect returns the device rectangle covered by the drawing coordinate
// rectangle with corner (x, y) and the given width and height.
func (v *Viewport) Rect(x, y, width, height float64) rect.Rect {
	M := v.Matrix()
	a := apply(M, vec.Vec2{X: x, Y: y})
	b := apply(M, vec.Vec2{X: x + width, Y: y + height})
	return normalize(a, b)
}

// SpanRect returns the device rectangle covered by a span object.
func (v *Viewport) SpanRect(obj *Object) rect.Rect {
	M := v.Matrix()
	switch obj.Axis {
	case AxisX:
		a := apply(M, vec.Vec2{X: obj.Lo, Y: v.Extent[2]})
		b := apply(M, vec.Vec2{X: obj.Hi, Y: v.Extent[2]})
		a.Y = v.Height * (1 - obj.FracLo)
		b.Y = v.Height * (1 - obj.FracHi)
		return normalize(a, b)
	default:
		a := apply(M, vec.Vec2{X: v.Extent[0], Y: obj.Lo})
		b := apply(M, vec.Vec2{X: v.Extent[0], Y: obj.Hi})
		a.X = v.Width * obj.FracLo
		b.X = v.Width * obj.FracHi
		return normalize(a, b)
	}
}

// Bounds returns the device rectangle of the whole viewport.
func (v *Viewport) Bounds() rect.Rect {
	return rect.Rect{URx: v.Width, URy: v.Height}
}

// apply maps p through M.
func apply(M matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := M.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

func normalize(a, b vec.Vec2) rect.Rect {
	return rect.Rect{
		LLx: min(a.X, b.X),
		LLy: min(a.Y, b.Y),
		URx: max(a.X, b.X),
		URy: max(a.Y, b.Y),
	}
}
