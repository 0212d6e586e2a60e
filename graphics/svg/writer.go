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

// Package svg writes recorded pitch drawings as SVG documents.
package svg

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/pitch/graphics"
)

// Writer writes an SVG document.
//
// The first error encountered while writing is stored in Err.  Once Err is
// set, all further drawing operations are ignored.
type Writer struct {
	Content  io.Writer
	Viewport *graphics.Viewport
	Err      error

	// Title, if set, is written as the <title> element of the document.
	Title string

	// Lang, if not language.Und, is written as the xml:lang attribute of
	// the document.
	Lang language.Tag

	started  bool
	finished bool
}

// Options control the output of [Write].
type Options struct {
	Title      string
	Lang       language.Tag
	Background color.Color
}

// errFinished is stored in Writer.Err if drawing operations are used
// after the document has been closed.
var errFinished = errors.New("svg: document already closed")

// NewWriter allocates a new Writer object.
func NewWriter(out io.Writer, vp *graphics.Viewport) *Writer {
	return &Writer{
		Content:  out,
		Viewport: vp,
	}
}

// Write renders all objects of the list, in z-order, as a complete SVG
// document.
func Write(out io.Writer, list *graphics.List, vp *graphics.Viewport, opt *Options) error {
	w := NewWriter(out, vp)
	var background color.Color
	if opt != nil {
		w.Title = opt.Title
		w.Lang = opt.Lang
		background = opt.Background
	}
	w.Begin(background)
	for _, obj := range list.Sorted() {
		w.Draw(obj)
	}
	return w.End()
}

func (w *Writer) printf(format string, args ...any) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintf(w.Content, format, args...)
}

func (w *Writer) escaped(s string) {
	if w.Err != nil {
		return
	}
	w.Err = xml.EscapeText(w.Content, []byte(s))
}

// Begin writes the document header.  If background is not nil, the whole
// viewport is filled with this colour.
func (w *Writer) Begin(background color.Color) {
	if w.started {
		return
	}
	w.started = true

	vp := w.Viewport
	wd, ht := format(vp.Width), format(vp.Height)
	w.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s"`,
		wd, ht, wd, ht)
	if w.Lang != language.Und {
		w.printf(` xml:lang="%s"`, w.Lang.String())
	}
	w.printf(">\n")
	if w.Title != "" {
		w.printf("<title>")
		w.escaped(w.Title)
		w.printf("</title>\n")
	}
	w.printf("<defs><clipPath id=\"viewport\"><rect width=\"%s\" height=\"%s\"/></clipPath></defs>\n",
		wd, ht)
	if background != nil {
		w.printf("<rect width=\"%s\" height=\"%s\"%s/>\n", wd, ht, paint("fill", background))
	}
	w.printf("<g clip-path=\"url(#viewport)\">\n")
}

// End closes the document and returns the first error which occurred
// while writing.
func (w *Writer) End() error {
	if !w.started {
		w.Begin(nil)
	}
	if w.finished {
		return w.Err
	}
	w.finished = true
	w.printf("</g>\n</svg>\n")
	return w.Err
}

// Draw writes the SVG element for a single object.
func (w *Writer) Draw(obj *graphics.Object) {
	if w.Err != nil {
		return
	}
	if w.finished {
		w.Err = errFinished
		return
	}
	if !w.started {
		w.Begin(nil)
	}

	style := &obj.Style
	fill := style.Apply(style.Fill)
	stroke := style.Apply(style.Stroke)

	if style.Label != "" {
		w.printf("<g><title>")
		w.escaped(style.Label)
		w.printf("</title>\n")
		defer w.printf("</g>\n")
	}

	switch obj.Kind {
	case graphics.KindRectangle, graphics.KindEllipse, graphics.KindPolygon:
		p := w.Viewport.ObjectPath(obj)
		w.printf("<path d=\"%s\"%s%s/>\n",
			pathData(p), paint("fill", fill), strokeAttr(stroke, style))

	case graphics.KindLine, graphics.KindArc:
		if stroke == nil {
			return
		}
		p := w.Viewport.ObjectPath(obj)
		w.printf("<path d=\"%s\" fill=\"none\"%s/>\n", pathData(p), strokeAttr(stroke, style))

	case graphics.KindSpan:
		if fill == nil {
			return
		}
		r := w.Viewport.SpanRect(obj)
		w.printf("<rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\"%s/>\n",
			format(r.LLx), format(r.LLy), format(r.URx-r.LLx), format(r.URy-r.LLy),
			paint("fill", fill))

	case graphics.KindSegments:
		if stroke == nil || len(obj.Segments) == 0 {
			return
		}
		var d strings.Builder
		for i, seg := range obj.Segments {
			pts := w.Viewport.Transform(seg[:])
			if i > 0 {
				d.WriteByte(' ')
			}
			fmt.Fprintf(&d, "M%s %sL%s %s",
				format(pts[0].X), format(pts[0].Y), format(pts[1].X), format(pts[1].Y))
		}
		w.printf("<path d=\"%s\" fill=\"none\"%s/>\n", d.String(), strokeAttr(stroke, style))

	case graphics.KindMarkers:
		r := format(max(obj.Size/2, 0.5))
		for _, p := range w.Viewport.Transform(obj.Points) {
			w.printf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\"%s%s/>\n",
				format(p.X), format(p.Y), r, paint("fill", fill), strokeAttr(stroke, style))
		}

	case graphics.KindImage:
		w.image(obj)

	case graphics.KindText:
		if fill == nil {
			fill = color.Black
		}
		p := w.Viewport.Apply(obj.X, obj.Y)
		size := style.FontSize
		if size <= 0 {
			size = 12
		}
		w.printf("<text x=\"%s\" y=\"%s\" font-size=\"%s\" text-anchor=\"middle\" dominant-baseline=\"middle\"%s>",
			format(p.X), format(p.Y), format(size), paint("fill", fill))
		w.escaped(obj.Text)
		w.printf("</text>\n")
	}
}

// image embeds a raster image as a PNG data URI.  Row 0 of the image is
// placed at the top of the object extent.
func (w *Writer) image(obj *graphics.Object) {
	src := obj.Image
	if src == nil || src.Bounds().Empty() {
		return
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, src); err != nil {
		w.Err = err
		return
	}

	b := src.Bounds()
	W, H := float64(b.Dx()), float64(b.Dy())
	left, right, bottom, top := obj.Extent[0], obj.Extent[1], obj.Extent[2], obj.Extent[3]
	M := w.Viewport.Matrix()
	a := M[0] * (right - left) / W
	d := M[3] * (bottom - top) / H
	e := M[0]*left + M[4]
	f := M[3]*top + M[5]

	w.printf("<image width=\"%d\" height=\"%d\" preserveAspectRatio=\"none\" transform=\"matrix(%s 0 0 %s %s %s)\"",
		b.Dx(), b.Dy(), format(a), format(d), format(e), format(f))
	if alpha := obj.Style.Opacity(); alpha < 1 {
		w.printf(" opacity=\"%s\"", format(alpha))
	}
	w.printf(" href=\"data:image/png;base64,%s\"/>\n", base64.StdEncoding.EncodeToString(buf.Bytes()))
}

func pathData(p *path.Data) string {
	if p == nil {
		return ""
	}
	var d strings.Builder
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			fmt.Fprintf(&d, "M%s %s", format(pts[0].X), format(pts[0].Y))
		case path.CmdLineTo:
			fmt.Fprintf(&d, "L%s %s", format(pts[0].X), format(pts[0].Y))
		case path.CmdQuadTo:
			fmt.Fprintf(&d, "Q%s %s %s %s",
				format(pts[0].X), format(pts[0].Y), format(pts[1].X), format(pts[1].Y))
		case path.CmdCubeTo:
			fmt.Fprintf(&d, "C%s %s %s %s %s %s",
				format(pts[0].X), format(pts[0].Y), format(pts[1].X), format(pts[1].Y),
				format(pts[2].X), format(pts[2].Y))
		case path.CmdClose:
			d.WriteByte('Z')
		}
	}
	return d.String()
}

func paint(attr string, c color.Color) string {
	if c == nil {
		return " " + attr + "=\"none\""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := fmt.Sprintf(" %s=\"#%02x%02x%02x\"", attr, n.R, n.G, n.B)
	if n.A != 255 {
		s += fmt.Sprintf(" %s-opacity=\"%s\"", attr, opacity(n.A))
	}
	return s
}

// opacity formats an 8-bit alpha value, rounded to two decimal places.
func opacity(a uint8) string {
	return strconv.FormatFloat(math.Round(float64(a)/255*100)/100, 'f', -1, 64)
}

func strokeAttr(c color.Color, style *graphics.Style) string {
	if c == nil {
		return ""
	}
	w := style.LineWidth
	if w <= 0 {
		w = 1
	}
	return paint("stroke", c) + fmt.Sprintf(" stroke-width=\"%s\" stroke-linejoin=\"round\"", format(w))
}
