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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Transform maps a list of points through the viewport.
func (v *Viewport) Transform(pts []vec.Vec2) []vec.Vec2 {
	M := v.Matrix()
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = apply(M, p)
	}
	return res
}

// ObjectPath returns the outline of a rectangle, ellipse, arc, line or
// polygon object as a path in device coordinates.  Rectangles, ellipses and
// polygons are closed.  For other kinds of objects, nil is returned.
func (v *Viewport) ObjectPath(obj *Object) *path.Data {
	var p *path.Data
	switch obj.Kind {
	case KindRectangle:
		x0, y0 := obj.X, obj.Y
		x1, y1 := x0+obj.Width, y0+obj.Height
		p = (&path.Data{}).
			MoveTo(vec.Vec2{X: x0, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y1}).
			LineTo(vec.Vec2{X: x0, Y: y1}).
			Close()
	case KindEllipse:
		p = EllipsePath(obj.X, obj.Y, obj.Width, obj.Height)
	case KindArc:
		p = ArcPath(obj.X, obj.Y, obj.Width, obj.Height, obj.Theta1, obj.Theta2)
	case KindLine:
		p = polyline(obj.Points)
	case KindPolygon:
		if len(obj.Points) == 0 {
			return nil
		}
		p = polyline(obj.Points).Close()
	default:
		return nil
	}
	return path.DataFromPath(p.Iter().Transform(v.Matrix()))
}

func polyline(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	return p
}
