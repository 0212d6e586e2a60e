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

// checkLengths verifies that all coordinate slices have the length of the
// first one.
func checkLengths(names []string, cols ...[]float64) error {
	n := len(cols[0])
	for i, col := range cols[1:] {
		if len(col) != n {
			return &LengthMismatchError{Field: names[i+1], Len: len(col), Exp: n}
		}
	}
	return nil
}

func points(x, y []float64) []vec.Vec2 {
	res := make([]vec.Vec2, len(x))
	for i := range x {
		res[i] = vec.Vec2{X: x[i], Y: y[i]}
	}
	return res
}

// LineOptions control the appearance of lines drawn by [Pitch.Lines].
// A nil *LineOptions draws plain lines.
type LineOptions struct {
	// Comet draws each line with a width growing from the start point to
	// the line width of the style at the end point.
	Comet bool

	// Transparent fades each line from AlphaStart at the start point to
	// AlphaEnd at the end point.  Zero values select 0.01 and 1.
	Transparent bool
	AlphaStart  float64
	AlphaEnd    float64

	// Cmap, if not nil, colours each line from Cmap.Low at the start point
	// to Cmap.High at the end point.
	Cmap *Colormap

	// Pieces is the number of pieces each line is split into for comet,
	// transparent and colour-mapped lines.  The default is 100.
	Pieces int
}

func (opt *LineOptions) ramped() bool {
	return opt != nil && (opt.Comet || opt.Transparent || opt.Cmap != nil)
}

func (opt *LineOptions) alphaRange() (float64, float64) {
	start, end := opt.AlphaStart, opt.AlphaEnd
	if start <= 0 {
		start = 0.01
	}
	if end <= 0 {
		end = 1
	}
	return start, end
}

// Lines adds straight lines from (x[i], y[i]) to (endX[i], endY[i]), for
// example to show passes.  All slices must have the same length.
//
// Plain lines are returned as a single object.  For comet, transparent and
// colour-mapped lines, one object is returned for each piece, ordered from
// the start points to the end points.  On pitches with [State.ReverseCmap]
// set, the colour and transparency ramps run from the end points to the
// start points.
func (p *Pitch) Lines(s graphics.Surface, x, y, endX, endY []float64, style graphics.Style, opt *LineOptions) ([]*graphics.Object, error) {
	err := checkLengths([]string{"x", "y", "endX", "endY"}, x, y, endX, endY)
	if err != nil {
		return nil, err
	}

	o := p.State.Orientation
	starts := make([]vec.Vec2, len(x))
	ends := make([]vec.Vec2, len(x))
	for i := range x {
		starts[i].X, starts[i].Y = o.ReversePoint(x[i], y[i])
		ends[i].X, ends[i].Y = o.ReversePoint(endX[i], endY[i])
	}

	if !opt.ramped() {
		segs := make([]graphics.Segment, len(x))
		for i := range x {
			segs[i] = graphics.Segment{starts[i], ends[i]}
		}
		return []*graphics.Object{s.Segments(segs, style)}, nil
	}

	n := opt.Pieces
	if n <= 0 {
		n = 100
	}
	n = max(n, 2)
	width := style.LineWidth
	if width <= 0 {
		width = 1
	}
	alphaStart, alphaEnd := opt.alphaRange()
	opacity := style.Opacity()

	res := make([]*graphics.Object, 0, n)
	for k := range n {
		t0 := float64(k) / float64(n)
		t1 := float64(k+1) / float64(n)
		segs := make([]graphics.Segment, len(x))
		for i := range x {
			d := ends[i].Sub(starts[i])
			segs[i] = graphics.Segment{starts[i].Add(d.Mul(t0)), starts[i].Add(d.Mul(t1))}
		}

		ramp := float64(k) / float64(n-1)
		if p.State.ReverseCmap {
			ramp = 1 - ramp
		}
		pieceStyle := style
		if opt.Comet {
			pieceStyle.LineWidth = width * t1
		}
		if opt.Transparent {
			pieceStyle.Alpha = opacity * (alphaStart + (alphaEnd-alphaStart)*ramp)
		}
		if opt.Cmap != nil {
			pieceStyle.Stroke = opt.Cmap.At(ramp)
		}
		res = append(res, s.Segments(segs, pieceStyle))
	}
	return res, nil
}

// Scatter adds circular markers at the points (x[i], y[i]), for example to
// show shots.  The marker size is the diameter in device pixels.
func (p *Pitch) Scatter(s graphics.Surface, x, y []float64, size float64, style graphics.Style) (*graphics.Object, error) {
	err := checkLengths([]string{"x", "y"}, x, y)
	if err != nil {
		return nil, err
	}
	return p.DrawMarkers(s, points(x, y), size, style), nil
}

// Annotate adds a text label at (x, y), moved by the offset (dx, dy).
// Both the position and the offset are given in pitch space.
func (p *Pitch) Annotate(s graphics.Surface, text string, x, y, dx, dy float64, style graphics.Style) *graphics.Object {
	o := p.State.Orientation
	px, py := o.ReversePoint(x, y)
	off := o.ReverseOffsets([]float64{dx, dy})
	return s.Text(px+off[0], py+off[1], text, style)
}
