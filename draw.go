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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pitch/graphics"
)

// Draw adds the pitch to the surface: the background, the optional stripes,
// and all pitch markings.
func (p *Pitch) Draw(s graphics.Surface) {
	p.drawBackground(s)
	if p.opt.Stripe {
		style := graphics.Style{Fill: p.opt.StripeColor, ZOrder: zStripes}
		for i := 0; i+1 < len(p.Dim.StripeLocations); i += 2 {
			p.DrawStripeBand(s, i, style)
		}
	}
	p.drawMarkings(s)
	p.drawGoals(s)
	if p.opt.CornerArcs {
		p.drawCornerArcs(s)
	}
}

// lineStyle returns the style used for the pitch markings.
func (p *Pitch) lineStyle() graphics.Style {
	return graphics.Style{
		Stroke:    p.opt.LineColor,
		LineWidth: p.opt.LineWidth,
		Alpha:     p.opt.LineAlpha,
		ZOrder:    zLines,
	}
}

func (p *Pitch) drawBackground(s graphics.Surface) {
	st := p.State
	e := st.Extent
	if st.Half {
		e[st.Orientation.table().start] = st.HalfStart
	}

	if p.opt.Grass {
		s.Image(p.grassImage(), st.Extent, graphics.Style{ZOrder: zBackground})
		return
	}
	s.Rectangle(e[0], e[2], e[1]-e[0], e[3]-e[2],
		graphics.Style{Fill: p.opt.PitchColor, ZOrder: zBackground})
}

func (p *Pitch) drawMarkings(s graphics.Surface) {
	d := p.Dim
	line := p.lineStyle()
	height := math.Abs(d.Top - d.Bottom)

	// outline and halfway line
	p.DrawRectangle(s, d.Left, d.Bottom, d.Right-d.Left, height, line)
	p.DrawLine(s, []vec.Vec2{
		{X: d.CenterLength, Y: d.Bottom},
		{X: d.CenterLength, Y: d.Top},
	}, line)

	// centre circle
	circleHeight := d.CircleDiameter / d.Aspect
	p.DrawEllipse(s, d.CenterLength, d.CenterWidth, d.CircleDiameter, circleHeight, line)

	// penalty areas and six-yard boxes
	paWidth := math.Abs(d.PenaltyAreaTop - d.PenaltyAreaBottom)
	syWidth := math.Abs(d.SixYardTop - d.SixYardBottom)
	p.DrawRectangle(s, d.Left, d.PenaltyAreaBottom, d.PenaltyAreaLength, paWidth, line)
	p.DrawRectangle(s, d.PenaltyAreaRight, d.PenaltyAreaBottom, d.PenaltyAreaLength, paWidth, line)
	p.DrawRectangle(s, d.Left, d.SixYardBottom, d.SixYardLength, syWidth, line)
	p.DrawRectangle(s, d.SixYardRight, d.SixYardBottom, d.SixYardLength, syWidth, line)

	// penalty arcs
	p.DrawArc(s, d.PenaltyLeft, d.CenterWidth, d.CircleDiameter, circleHeight,
		-d.ArcAngle, d.ArcAngle, line)
	p.DrawArc(s, d.PenaltyRight, d.CenterWidth, d.CircleDiameter, circleHeight,
		180-d.ArcAngle, 180+d.ArcAngle, line)

	// spots
	spot := graphics.Style{
		Fill:   p.opt.LineColor,
		Alpha:  p.opt.LineAlpha,
		ZOrder: zLines,
	}
	p.DrawMarkers(s, []vec.Vec2{
		{X: d.CenterLength, Y: d.CenterWidth},
		{X: d.PenaltyLeft, Y: d.CenterWidth},
		{X: d.PenaltyRight, Y: d.CenterWidth},
	}, 3*p.opt.LineWidth, spot)
}

func (p *Pitch) drawGoals(s graphics.Surface) {
	d := p.Dim
	goalWidth := math.Abs(d.GoalTop - d.GoalBottom)

	switch p.opt.GoalType {
	case GoalBox:
		line := p.lineStyle()
		p.DrawRectangle(s, d.Left-d.GoalLength, d.GoalBottom, d.GoalLength, goalWidth, line)
		p.DrawRectangle(s, d.Right, d.GoalBottom, d.GoalLength, goalWidth, line)
	case GoalLine:
		line := p.lineStyle()
		line.LineWidth *= 3
		for _, x := range []float64{d.Left, d.Right} {
			p.DrawLine(s, []vec.Vec2{{X: x, Y: d.GoalBottom}, {X: x, Y: d.GoalTop}}, line)
		}
	}
}

// drawCornerArcs draws a quarter circle at each corner, curving into the
// pitch.
func (p *Pitch) drawCornerArcs(s graphics.Surface) {
	d := p.Dim
	line := p.lineStyle()
	w := d.CornerDiameter
	h := d.CornerDiameter / d.Aspect
	for _, x := range []float64{d.Left, d.Right} {
		for _, y := range []float64{d.Bottom, d.Top} {
			theta := quadrantAngle(d.CenterLength-x, d.CenterWidth-y)
			p.DrawArc(s, x, y, w, h, theta, theta+90, line)
		}
	}
}

// quadrantAngle returns the start angle, in degrees, of the quarter circle
// pointing in direction (dx, dy).
func quadrantAngle(dx, dy float64) float64 {
	switch {
	case dx >= 0 && dy >= 0:
		return 0
	case dx < 0 && dy >= 0:
		return 90
	case dx < 0:
		return 180
	default:
		return 270
	}
}
