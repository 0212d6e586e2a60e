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

// Package raster renders recorded pitch drawings into raster images.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pitch/graphics"
)

// curveSteps is the number of straight segments used to stroke one Bézier
// curve.
const curveSteps = 12

// Renderer draws graphics objects onto an RGBA image.
type Renderer struct {
	Image    *image.RGBA
	Raster   *vector.Rasterizer
	Viewport *graphics.Viewport
	Width    int
	Height   int
}

// NewRenderer allocates an image for the given viewport and fills it with
// the background colour.  If background is nil, the image is transparent.
func NewRenderer(vp *graphics.Viewport, background color.Color) *Renderer {
	width := max(1, int(math.Ceil(vp.Width)))
	height := max(1, int(math.Ceil(vp.Height)))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}

	return &Renderer{
		Image:    img,
		Raster:   vector.NewRasterizer(width, height),
		Viewport: vp,
		Width:    width,
		Height:   height,
	}
}

// Render draws all objects of the list, in z-order, and returns the
// resulting image.
func Render(list *graphics.List, vp *graphics.Viewport, background color.Color) *image.RGBA {
	r := NewRenderer(vp, background)
	for _, obj := range list.Sorted() {
		r.Draw(obj)
	}
	return r.Image
}

// Draw renders a single object.
func (r *Renderer) Draw(obj *graphics.Object) {
	style := &obj.Style
	fill := style.Apply(obj.Style.Fill)
	stroke := style.Apply(obj.Style.Stroke)

	switch obj.Kind {
	case graphics.KindRectangle, graphics.KindEllipse, graphics.KindPolygon:
		p := r.Viewport.ObjectPath(obj)
		if fill != nil {
			r.fillPath(p)
			r.paint(fill)
		}
		if stroke != nil {
			r.strokePath(p, r.halfWidth(style))
			r.paint(stroke)
		}

	case graphics.KindLine, graphics.KindArc:
		if stroke == nil {
			return
		}
		r.strokePath(r.Viewport.ObjectPath(obj), r.halfWidth(style))
		r.paint(stroke)

	case graphics.KindSpan:
		if fill == nil {
			return
		}
		rect := r.Viewport.SpanRect(obj)
		r.Raster.Reset(r.Width, r.Height)
		r.polygon([]vec.Vec2{
			{X: rect.LLx, Y: rect.LLy},
			{X: rect.URx, Y: rect.LLy},
			{X: rect.URx, Y: rect.URy},
			{X: rect.LLx, Y: rect.URy},
		})
		r.paint(fill)

	case graphics.KindSegments:
		if stroke == nil {
			return
		}
		w := r.halfWidth(style)
		r.Raster.Reset(r.Width, r.Height)
		for _, seg := range obj.Segments {
			pts := r.Viewport.Transform(seg[:])
			r.addStroke(pts, w)
		}
		r.paint(stroke)

	case graphics.KindMarkers:
		radius := max(obj.Size/2, 0.5)
		pts := r.Viewport.Transform(obj.Points)
		if fill != nil {
			r.Raster.Reset(r.Width, r.Height)
			for _, p := range pts {
				r.disc(p, radius)
			}
			r.paint(fill)
		}
		if stroke != nil {
			w := r.halfWidth(style)
			r.Raster.Reset(r.Width, r.Height)
			for _, p := range pts {
				ring := graphics.EllipsePath(p.X, p.Y, 2*radius, 2*radius)
				for _, pts := range graphics.Flatten(ring.Iter(), curveSteps) {
					r.addStroke(pts, w)
				}
			}
			r.paint(stroke)
		}

	case graphics.KindImage:
		r.drawImage(obj)

	case graphics.KindText:
		r.drawText(obj, fill)
	}
}

// halfWidth returns half the stroke width, in device pixels.
func (r *Renderer) halfWidth(style *graphics.Style) float64 {
	w := style.LineWidth
	if w <= 0 {
		w = 1
	}
	return max(w/2, 0.5)
}

func (r *Renderer) paint(col color.Color) {
	r.Raster.Draw(r.Image, r.Image.Bounds(), image.NewUniform(col), image.Point{})
}

func (r *Renderer) fillPath(p *path.Data) {
	r.Raster.Reset(r.Width, r.Height)
	if p == nil {
		return
	}
	open := false
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.Raster.ClosePath()
			}
			r.Raster.MoveTo(float32(pts[0].X), float32(pts[0].Y))
			open = true
		case path.CmdLineTo:
			r.Raster.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			r.Raster.QuadTo(
				float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y))
		case path.CmdCubeTo:
			r.Raster.CubeTo(
				float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			r.Raster.ClosePath()
			open = false
		}
	}
	if open {
		r.Raster.ClosePath()
	}
}

func (r *Renderer) polygon(pts []vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	r.Raster.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.Raster.LineTo(float32(p.X), float32(p.Y))
	}
	r.Raster.ClosePath()
}

func (r *Renderer) strokePath(p *path.Data, w float64) {
	r.Raster.Reset(r.Width, r.Height)
	if p == nil {
		return
	}
	for _, pts := range graphics.Flatten(p.Iter(), curveSteps) {
		r.addStroke(pts, w)
	}
}

// addStroke adds the outline of a stroked polyline to the rasterizer.
// Every segment is drawn as a quadrilateral and every vertex as a disc, so
// that consecutive segments are joined by round joins.  All shapes have the
// same winding direction.
func (r *Renderer) addStroke(pts []vec.Vec2, w float64) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			continue
		}
		n := vec.Vec2{X: -d.Y / l, Y: d.X / l}.Mul(w)
		r.polygon([]vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
	}
	for _, p := range pts {
		r.disc(p, w)
	}
}

// disc adds a filled circle to the rasterizer.  The vertices are generated
// with decreasing angle, to match the orientation of the stroke segments.
func (r *Renderer) disc(c vec.Vec2, radius float64) {
	n := max(8, min(64, int(2*math.Pi*radius/2)))
	pts := make([]vec.Vec2, n)
	for i := range pts {
		phi := -2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec.Vec2{X: c.X + radius*math.Cos(phi), Y: c.Y + radius*math.Sin(phi)}
	}
	r.polygon(pts)
}

// drawImage maps the image pixels onto the object extent.  Row 0 of the
// image is placed at the top of the extent.
func (r *Renderer) drawImage(obj *graphics.Object) {
	src := obj.Image
	if src == nil {
		return
	}
	b := src.Bounds()
	if b.Empty() {
		return
	}
	W, H := float64(b.Dx()), float64(b.Dy())
	left, right, bottom, top := obj.Extent[0], obj.Extent[1], obj.Extent[2], obj.Extent[3]

	// image pixel (sx, sy) -> drawing space -> device space
	M := r.Viewport.Matrix()
	ax := (right - left) / W
	ay := (bottom - top) / H
	dr := f64.Aff3{
		M[0] * ax, 0, M[0]*(left-ax*float64(b.Min.X)) + M[4],
		0, M[3] * ay, M[3]*(top-ay*float64(b.Min.Y)) + M[5],
	}

	var opt *xdraw.Options
	if alpha := obj.Style.Opacity(); alpha < 1 {
		opt = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha{A: uint8(alpha*255 + 0.5)}),
		}
	}
	xdraw.BiLinear.Transform(r.Image, dr, src, b, draw.Over, opt)
}

// drawText draws a text label centred on the anchor point.  The built-in
// fixed-size face is used, so the font size of the style is ignored.
func (r *Renderer) drawText(obj *graphics.Object, col color.Color) {
	if col == nil {
		col = color.Black
	}
	p := r.Viewport.Apply(obj.X, obj.Y)
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  r.Image,
		Src:  image.NewUniform(col),
		Face: face,
	}
	adv := d.MeasureString(obj.Text)
	m := face.Metrics()
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(p.X*64) - adv/2,
		Y: fixed.Int26_6(p.Y*64) + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(obj.Text)
}
