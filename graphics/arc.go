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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ArcPath approximates an elliptical arc by cubic Bézier curves.
//
// The ellipse is centred at (x, y) and has diameters width and height.
// The angles are given in degrees and the arc runs counter-clockwise from
// theta1 to theta2.  If theta2 < theta1, 360 is added to theta2.
//
// The path starts with a MoveTo to the start point of the arc, followed
// by one CubeTo for every curve.  Every curve covers at most 90 degrees.
func ArcPath(x, y, width, height, theta1, theta2 float64) *path.Data {
	rx, ry := width/2, height/2
	for theta2 < theta1 {
		theta2 += 360
	}
	startAngle := theta1 * math.Pi / 180
	endAngle := theta2 * math.Pi / 180

	// also see https://www.tinaja.com/glib/bezcirc2.pdf
	nSegment := max(1, int(math.Ceil(math.Abs(endAngle-startAngle)/(0.5*math.Pi)-1e-9)))
	dPhi := (endAngle - startAngle) / float64(nSegment)
	k := 4.0 / 3.0 * math.Tan(dPhi/4)

	phi := startAngle
	x0 := x + rx*math.Cos(phi)
	y0 := y + ry*math.Sin(phi)

	res := &path.Data{
		Cmds:   make([]path.Command, 0, 1+nSegment),
		Coords: make([]vec.Vec2, 0, 1+3*nSegment),
	}
	res.MoveTo(vec.Vec2{X: x0, Y: y0})
	for range nSegment {
		x1 := x0 - k*rx*math.Sin(phi)
		y1 := y0 + k*ry*math.Cos(phi)
		phi += dPhi
		x3 := x + rx*math.Cos(phi)
		y3 := y + ry*math.Sin(phi)
		x2 := x3 + k*rx*math.Sin(phi)
		y2 := y3 - k*ry*math.Cos(phi)
		res.CubeTo(
			vec.Vec2{X: x1, Y: y1},
			vec.Vec2{X: x2, Y: y2},
			vec.Vec2{X: x3, Y: y3})
		x0, y0 = x3, y3
	}
	return res
}

// EllipsePath returns a closed path for a full ellipse.
func EllipsePath(x, y, width, height float64) *path.Data {
	return ArcPath(x, y, width, height, 0, 360).Close()
}

// Flatten converts a path into polylines, one for every sub-path.
// Each curve is replaced by n straight segments.  Closed sub-paths end
// with a copy of their start point.
func Flatten(p path.Path, n int) [][]vec.Vec2 {
	n = max(n, 1)

	var res [][]vec.Vec2
	var cur []vec.Vec2
	var start, last vec.Vec2
	flush := func() {
		if len(cur) > 1 {
			res = append(res, cur)
		}
		cur = nil
	}
	for cmd, pts := range p {
		if cur == nil && cmd != path.CmdMoveTo && cmd != path.CmdClose {
			cur = []vec.Vec2{last}
		}
		switch cmd {
		case path.CmdMoveTo:
			flush()
			start, last = pts[0], pts[0]
			cur = []vec.Vec2{last}
		case path.CmdLineTo:
			last = pts[0]
			cur = append(cur, last)
		case path.CmdQuadTo:
			p0, p1, p2 := last, pts[0], pts[1]
			for j := 1; j <= n; j++ {
				t := float64(j) / float64(n)
				s := 1 - t
				cur = append(cur, vec.Vec2{
					X: s*s*p0.X + 2*s*t*p1.X + t*t*p2.X,
					Y: s*s*p0.Y + 2*s*t*p1.Y + t*t*p2.Y,
				})
			}
			last = p2
		case path.CmdCubeTo:
			p0, p1, p2, p3 := last, pts[0], pts[1], pts[2]
			for j := 1; j <= n; j++ {
				t := float64(j) / float64(n)
				s := 1 - t
				a := s * s * s
				b := 3 * s * s * t
				c := 3 * s * t * t
				d := t * t * t
				cur = append(cur, vec.Vec2{
					X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
					Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
				})
			}
			last = p3
		case path.CmdClose:
			if len(cur) > 0 && last != start {
				cur = append(cur, start)
			}
			flush()
			last = start
		}
	}
	flush()
	return res
}
