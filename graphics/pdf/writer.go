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

// Package pdf writes recorded pitch drawings as single-page PDF documents.
//
// One device pixel of the viewport corresponds to one PDF point.  Text is
// set in the embedded Go Regular font.
package pdf

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/pitch/graphics"
)

// Writer collects the page content of a PDF document.  The document is
// written to Out by [Writer.End].
//
// The first error encountered is stored in Err.  Once Err is set, all
// further drawing operations are ignored.
type Writer struct {
	Out      io.Writer
	Viewport *graphics.Viewport
	Err      error

	// Title, if set, is stored in the document information dictionary.
	Title string

	// Lang, if not language.Und, is stored as the document language.
	Lang language.Tag

	content  *bytes.Buffer
	alpha    map[[2]float64]string
	alphaSeq [][2]float64
	images   []*image.NRGBA
	useFont  bool
	font     *fontInfo
	started  bool
	finished bool
}

// Options control the output of [Write].
type Options struct {
	Title      string
	Lang       language.Tag
	Background color.Color
}

var errFinished = errors.New("pdf: document already closed")

// NewWriter allocates a new Writer object.
func NewWriter(out io.Writer, vp *graphics.Viewport) *Writer {
	return &Writer{
		Out:      out,
		Viewport: vp,
		content:  &bytes.Buffer{},
		alpha:    make(map[[2]float64]string),
	}
}

// Write renders all objects of the list, in z-order, as a complete PDF
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
	fmt.Fprintf(w.content, format, args...)
}

// Begin starts the page.  Device coordinates are set up with the origin in
// the top left corner.  If background is not nil, the page is filled with
// this colour.
func (w *Writer) Begin(background color.Color) {
	if w.started {
		return
	}
	w.started = true

	vp := w.Viewport
	w.printf("1 0 0 -1 0 %s cm\n1 J 1 j\n", format(vp.Height))
	if background != nil {
		w.printf("q\n")
		w.setColor(background, nil)
		w.printf("0 0 %s %s re f\nQ\n", format(vp.Width), format(vp.Height))
	}
}

// Draw adds a single object to the page.
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

	switch obj.Kind {
	case graphics.KindRectangle, graphics.KindEllipse, graphics.KindPolygon:
		w.paint(w.Viewport.ObjectPath(obj), fill, stroke, style)

	case graphics.KindLine, graphics.KindArc:
		w.paint(w.Viewport.ObjectPath(obj), nil, stroke, style)

	case graphics.KindSpan:
		if fill == nil {
			return
		}
		r := w.Viewport.SpanRect(obj)
		w.printf("q\n")
		w.setColor(fill, nil)
		w.printf("%s %s %s %s re f\nQ\n",
			format(r.LLx), format(r.LLy), format(r.URx-r.LLx), format(r.URy-r.LLy))

	case graphics.KindSegments:
		if stroke == nil || len(obj.Segments) == 0 {
			return
		}
		p := &path.Data{}
		for _, seg := range obj.Segments {
			pts := w.Viewport.Transform(seg[:])
			p.MoveTo(pts[0]).LineTo(pts[1])
		}
		w.paint(p, nil, stroke, style)

	case graphics.KindMarkers:
		radius := max(obj.Size/2, 0.5)
		p := &path.Data{}
		for _, c := range w.Viewport.Transform(obj.Points) {
			circle := graphics.EllipsePath(c.X, c.Y, 2*radius, 2*radius)
			p.Cmds = append(p.Cmds, circle.Cmds...)
			p.Coords = append(p.Coords, circle.Coords...)
		}
		w.paint(p, fill, stroke, style)

	case graphics.KindImage:
		w.image(obj)

	case graphics.KindText:
		if fill == nil {
			fill = color.Black
		}
		w.text(obj, fill)
	}
}

// paint fills and strokes a path.
func (w *Writer) paint(p *path.Data, fill, stroke color.Color, style *graphics.Style) {
	if p == nil || (fill == nil && stroke == nil) {
		return
	}
	w.printf("q\n")
	w.setColor(fill, stroke)
	if stroke != nil {
		lw := style.LineWidth
		if lw <= 0 {
			lw = 1
		}
		w.printf("%s w\n", format(lw))
	}
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			w.printf("%s %s m\n", format(pts[0].X), format(pts[0].Y))
		case path.CmdLineTo:
			w.printf("%s %s l\n", format(pts[0].X), format(pts[0].Y))
		case path.CmdCubeTo:
			w.printf("%s %s %s %s %s %s c\n",
				format(pts[0].X), format(pts[0].Y), format(pts[1].X), format(pts[1].Y),
				format(pts[2].X), format(pts[2].Y))
		case path.CmdClose:
			w.printf("h\n")
		}
	}
	switch {
	case fill != nil && stroke != nil:
		w.printf("B\n")
	case fill != nil:
		w.printf("f\n")
	default:
		w.printf("S\n")
	}
	w.printf("Q\n")
}

// setColor selects the fill and stroke colours, including their opacity.
// Nil colours are left unchanged.
func (w *Writer) setColor(fill, stroke color.Color) {
	alpha := [2]float64{1, 1}
	if fill != nil {
		n := color.NRGBAModel.Convert(fill).(color.NRGBA)
		w.printf("%s %s %s rg\n", channel(n.R), channel(n.G), channel(n.B))
		alpha[0] = float64(n.A) / 255
	}
	if stroke != nil {
		n := color.NRGBAModel.Convert(stroke).(color.NRGBA)
		w.printf("%s %s %s RG\n", channel(n.R), channel(n.G), channel(n.B))
		alpha[1] = float64(n.A) / 255
	}
	if alpha != [2]float64{1, 1} {
		w.printf("/%s gs\n", w.alphaState(alpha))
	}
}

// alphaState returns the resource name of a graphics state with the given
// fill and stroke opacity.
func (w *Writer) alphaState(alpha [2]float64) string {
	name, ok := w.alpha[alpha]
	if !ok {
		name = "GS" + strconv.Itoa(len(w.alphaSeq))
		w.alpha[alpha] = name
		w.alphaSeq = append(w.alphaSeq, alpha)
	}
	return name
}

// image places a raster image.  Row 0 of the image is placed at the top of
// the object extent.
func (w *Writer) image(obj *graphics.Object) {
	src := obj.Image
	if src == nil || src.Bounds().Empty() {
		return
	}
	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x-b.Min.X, y-b.Min.Y, src.At(x, y))
		}
	}
	name := "Im" + strconv.Itoa(len(w.images))
	w.images = append(w.images, img)

	left, right, bottom, top := obj.Extent[0], obj.Extent[1], obj.Extent[2], obj.Extent[3]
	M := w.Viewport.Matrix()
	a := M[0] * (right - left)
	d := M[3] * (bottom - top)
	e := M[0]*left + M[4]
	f := M[3]*top + M[5]

	w.printf("q\n")
	if alpha := obj.Style.Opacity(); alpha < 1 {
		w.printf("/%s gs\n", w.alphaState([2]float64{alpha, alpha}))
	}
	w.printf("%s 0 0 %s %s %s cm\n/%s Do\nQ\n", format(a), format(-d), format(e), format(d+f), name)
}

// text draws a text label centred on the anchor point.
func (w *Writer) text(obj *graphics.Object, fill color.Color) {
	if w.font == nil {
		w.font, w.Err = loadFont()
		if w.Err != nil {
			return
		}
	}
	w.useFont = true

	size := obj.Style.FontSize
	if size <= 0 {
		size = 12
	}
	codes := encodeText(obj.Text)
	p := w.Viewport.Apply(obj.X, obj.Y)
	x := p.X - w.font.width(codes)*size/2000
	y := p.Y + (w.font.ascent+w.font.descent)*size/2000

	w.printf("q\n")
	w.setColor(fill, nil)
	w.printf("BT\n/F1 %s Tf\n1 0 0 -1 %s %s Tm\n<%s> Tj\nET\nQ\n",
		format(size), format(x), format(y), hex.EncodeToString(codes))
}

// End writes the complete document and returns the first error which
// occurred.
func (w *Writer) End() error {
	if !w.started {
		w.Begin(nil)
	}
	if w.finished {
		return w.Err
	}
	w.finished = true
	if w.Err != nil {
		return w.Err
	}

	f := newFile(w.Out)
	catalog := f.alloc()
	pages := f.alloc()
	page := f.alloc()
	content := f.alloc()

	var res []string
	if len(w.alphaSeq) > 0 {
		var gs strings.Builder
		for i, alpha := range w.alphaSeq {
			fmt.Fprintf(&gs, "/GS%d <</ca %s /CA %s>>", i, format(alpha[0]), format(alpha[1]))
		}
		res = append(res, "/ExtGState <<"+gs.String()+">>")
	}
	var imageRefs []int
	if len(w.images) > 0 {
		var xobj strings.Builder
		for i := range w.images {
			ref := f.alloc()
			imageRefs = append(imageRefs, ref)
			fmt.Fprintf(&xobj, "/Im%d %d 0 R", i, ref)
		}
		res = append(res, "/XObject <<"+xobj.String()+">>")
	}
	var fontRef int
	if w.useFont {
		fontRef = f.alloc()
		res = append(res, fmt.Sprintf("/Font <</F1 %d 0 R>>", fontRef))
	}

	f.object(catalog, w.catalog(pages))
	f.object(pages, fmt.Sprintf("<</Type /Pages /Kids [%d 0 R] /Count 1>>", page))
	f.object(page, fmt.Sprintf("<</Type /Page /Parent %d 0 R /MediaBox [0 0 %s %s] /Resources <<%s>> /Contents %d 0 R>>",
		pages, format(w.Viewport.Width), format(w.Viewport.Height), strings.Join(res, " "), content))
	f.stream(content, "", w.content.Bytes())

	for i, img := range w.images {
		writeImage(f, imageRefs[i], img)
	}
	if w.useFont {
		desc := f.alloc()
		fontFile := f.alloc()
		fontDict, descDict := w.font.fontDicts(desc, fontFile)
		f.object(fontRef, fontDict)
		f.object(desc, descDict)
		f.stream(fontFile, fmt.Sprintf(" /Length1 %d", len(goregular.TTF)), goregular.TTF)
	}

	info := 0
	if w.Title != "" {
		info = f.alloc()
		f.object(info, "<</Title "+textString(w.Title)+">>")
	}
	w.Err = f.close(catalog, info)
	return w.Err
}

func (w *Writer) catalog(pages int) string {
	s := fmt.Sprintf("<</Type /Catalog /Pages %d 0 R", pages)
	if w.Lang != language.Und {
		s += " /Lang " + textString(w.Lang.String())
	}
	return s + ">>"
}

// writeImage writes an image XObject, with a soft mask if the image is not
// opaque.
func writeImage(f *file, ref int, img *image.NRGBA) {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	rgb := make([]byte, 0, 3*n)
	mask := make([]byte, 0, n)
	opaque := true
	for i := 0; i < len(img.Pix); i += 4 {
		rgb = append(rgb, img.Pix[i], img.Pix[i+1], img.Pix[i+2])
		mask = append(mask, img.Pix[i+3])
		opaque = opaque && img.Pix[i+3] == 255
	}

	dict := fmt.Sprintf(" /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8",
		b.Dx(), b.Dy())
	if !opaque {
		smask := f.alloc()
		dict += fmt.Sprintf(" /SMask %d 0 R", smask)
		f.stream(smask, fmt.Sprintf(" /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceGray /BitsPerComponent 8",
			b.Dx(), b.Dy()), mask)
	}
	f.stream(ref, dict, rgb)
}

// textString encodes s as a PDF text string.  Non-ASCII text is written in
// UTF-16 with a byte order mark.
func textString(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if !ascii {
		enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
		if b, err := enc.Bytes([]byte(s)); err == nil {
			return "<" + hex.EncodeToString(b) + ">"
		}
	}
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`, "\r", `\r`, "\n", `\n`)
	return "(" + r.Replace(s) + ")"
}

func channel(x uint8) string {
	return format(float64(x) / 255)
}

// format converts a number to the shortest decimal representation with at
// most three digits after the decimal point.
func format(x float64) string {
	s := strconv.FormatFloat(x, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}
