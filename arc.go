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
	"math"

	"seehuhn.de/go/pitch/dims"
	"seehuhn.de/go/pitch/graphics"
)

// Placements returns the valid placement names for [Pitch.ArcAroundGoal].
// The first entry refers to the goal at the lower end of the pitch-space
// x-axis.
func (o Orientation) Placements() []string {
	valid := o.table().placements
	return valid[:]
}

// ArcAroundGoal adds an arc with the given radius, in metres, centred on
// one of the goals.  For horizontal pitches the placement must be "left" or
// "right", for vertical pitches it must be "bottom" or "top".
//
// The radius is converted to drawing units using the span of the drawing
// extent, so the padding and the half-pitch setting change the size of the
// arc.  If no stroke colour is set in style, the line colour of the pitch is
// used.
func (p *Pitch) ArcAroundGoal(s graphics.Surface, radius float64, placement string, style graphics.Style) (*graphics.Object, error) {
	d := p.Dim
	valid := p.State.Orientation.Placements()

	var x, theta1, theta2 float64
	switch placement {
	case valid[0]:
		x, theta1, theta2 = d.Left, -90, 90
	case valid[1]:
		x, theta1, theta2 = d.Right, 90, 270
	default:
		return nil, &InvalidPlacementError{
			Placement: placement,
			Valid:     valid,
		}
	}
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, &InvalidRadiusError{Radius: radius}
	}

	width, height := arcSize(d, p.State, radius)

	y := d.CenterWidth
	if d.OriginCenter {
		y = 0
	}

	if style.Stroke == nil {
		style.Stroke = p.opt.LineColor
		if style.LineWidth == 0 {
			style.LineWidth = p.opt.LineWidth
		}
	}
	return p.DrawArc(s, x, y, width, height, theta1, theta2, style), nil
}

// arcSize converts a radius in metres into the diameters of the
// corresponding ellipse, along the length and the width of the pitch.
func arcSize(d *dims.Spec, st *State, radius float64) (float64, float64) {
	tab := st.Orientation.table()
	e := st.Extent
	spanLength := math.Abs(e[tab.start+1] - e[tab.start])
	spanWidth := math.Abs(e[tab.width[1]] - e[tab.width[0]])

	switch d.ArcScale {
	case dims.ArcScalePitchSize:
		return 2 * spanLength * radius / d.PitchLength,
			2 * spanWidth * radius / d.PitchWidth
	default:
		return 2 * spanLength * radius * d.UnitScale / d.Length,
			2 * spanWidth * radius * d.UnitScale / (d.Width * d.Aspect)
	}
}
