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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pitch/graphics"
)

// The methods in this file take pitch-space coordinates and emit the
// corresponding drawing-space primitives.

// DrawRectangle adds a rectangle with corner (x, y).  For standards where
// the y-axis points down, the height is negated, so that a positive height
// always extends towards the top of the pitch.
func (p *Pitch) DrawRectangle(s graphics.Surface, x, y, width, height float64, style graphics.Style) *graphics.Object {
	if p.Dim.InvertY {
		height = -height
	}
	if p.State.Vertical {
		return s.Rectangle(y, x, height, width, style)
	}
	return s.Rectangle(x, y, width, height, style)
}

// DrawLine adds a polyline through the given points.
func (p *Pitch) DrawLine(s graphics.Surface, pts []vec.Vec2, style graphics.Style) *graphics.Object {
	return s.Line(p.State.Orientation.ReverseVertices(pts), style)
}

// DrawEllipse adds an ellipse centred at (x, y).  The width is measured
// along the length of the pitch.
func (p *Pitch) DrawEllipse(s graphics.Surface, x, y, width, height float64, style graphics.Style) *graphics.Object {
	if p.State.Vertical {
		return s.Ellipse(y, x, height, width, style)
	}
	return s.Ellipse(x, y, width, height, style)
}

// DrawArc adds an elliptical arc centred at (x, y).  Angles are in degrees,
// measured in pitch space from the direction of increasing x towards the
// direction of increasing y.
func (p *Pitch) DrawArc(s graphics.Surface, x, y, width, height, theta1, theta2 float64, style graphics.Style) *graphics.Object {
	if p.State.Vertical {
		// Swapping the axes mirrors all angles at 45 degrees.  Arcs which
		// are symmetric about the length of the pitch are rotated by 90.
		return s.Arc(y, x, height, width, 90-theta2, 90-theta1, style)
	}
	return s.Arc(x, y, width, height, theta1, theta2, style)
}

// DrawStripeBand adds the grass stripe between stripe locations i and i+1.
func (p *Pitch) DrawStripeBand(s graphics.Surface, i int, style graphics.Style) *graphics.Object {
	loc := p.Dim.StripeLocations
	st := p.State
	axis := st.Orientation.table().stripeAxis
	return s.Span(axis, loc[i], loc[i+1], st.StripeStart, st.StripeEnd, style)
}

// DrawPolygon adds a closed polygon.
func (p *Pitch) DrawPolygon(s graphics.Surface, pts []vec.Vec2, style graphics.Style) *graphics.Object {
	return s.Polygon(p.State.Orientation.ReverseVertices(pts), style)
}

// DrawMarkers adds circular markers of the given diameter, in device
// pixels.
func (p *Pitch) DrawMarkers(s graphics.Surface, pts []vec.Vec2, size float64, style graphics.Style) *graphics.Object {
	return s.Markers(p.State.Orientation.ReverseVertices(pts), size, style)
}
