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
	"image"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Surface receives drawing operations in drawing coordinates.
//
// Every method returns the object which was created.  The style of the
// object can be changed by the caller until the surface is rendered.
type Surface interface {
	// Rectangle adds a rectangle with one corner at (x, y).  The width and
	// height may be negative.
	Rectangle(x, y, width, height float64, style Style) *Object

	// Line adds a polyline.
	Line(pts []vec.Vec2, style Style) *Object

	// Ellipse adds an ellipse centred at (x, y).  Width and height are the
	// diameters along the two axes.
	Ellipse(x, y, width, height float64, style Style) *Object

	// Arc adds an elliptical arc centred at (x, y), from angle theta1 to
	// angle theta2 (in degrees, counter-clockwise).
	Arc(x, y, width, height, theta1, theta2 float64, style Style) *Object

	// Span adds a band covering the drawing coordinates lo to hi along the
	// given axis.  Along the other axis, the band covers the fractions
	// fracLo to fracHi of the visible area.
	Span(axis Axis, lo, hi, fracLo, fracHi float64, style Style) *Object

	// Segments adds a collection of independent line segments.
	Segments(segs []Segment, style Style) *Object

	// Polygon adds a closed polygon.
	Polygon(pts []vec.Vec2, style Style) *Object

	// Markers adds circular markers of the given diameter (in device
	// pixels) at the given positions.
	Markers(pts []vec.Vec2, size float64, style Style) *Object

	// Image adds a raster image covering the given extent.  The extent is
	// given as (left, right, bottom, top) and the first row of the image is
	// placed at top.
	Image(img image.Image, extent [4]float64, style Style) *Object

	// Text adds a text label anchored at (x, y).
	Text(x, y float64, text string, style Style) *Object
}

// Axis selects one of the two coordinate axes.
type Axis int

// These are the valid values for Axis.
const (
	AxisX Axis = iota
	AxisY
)

// Kind identifies the type of an [Object].
type Kind int

// These are the object kinds created by the methods of [Surface].
const (
	KindRectangle Kind = iota + 1
	KindLine
	KindEllipse
	KindArc
	KindSpan
	KindSegments
	KindPolygon
	KindMarkers
	KindImage
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindLine:
		return "line"
	case KindEllipse:
		return "ellipse"
	case KindArc:
		return "arc"
	case KindSpan:
		return "span"
	case KindSegments:
		return "segments"
	case KindPolygon:
		return "polygon"
	case KindMarkers:
		return "markers"
	case KindImage:
		return "image"
	case KindText:
		return "text"
	default:
		return "kind?"
	}
}

// Segment is a straight line from the first to the second point.
type Segment [2]vec.Vec2

// Object is one recorded drawing operation.
// Only the fields relevant for the given Kind are set.
type Object struct {
	Kind  Kind
	Style Style

	// X, Y, Width and Height describe rectangles, ellipses and arcs.
	X, Y, Width, Height float64

	// Theta1 and Theta2 are the start and end angles of arcs, in degrees.
	Theta1, Theta2 float64

	// Axis, Lo, Hi, FracLo and FracHi describe spans.
	Axis           Axis
	Lo, Hi         float64
	FracLo, FracHi float64

	// Points holds the vertices of lines and polygons, and the positions of
	// markers.
	Points []vec.Vec2

	Segments []Segment

	// Size is the marker diameter in device pixels.
	Size float64

	Image  image.Image
	Extent [4]float64

	Text string
}

// A List records drawing operations.
// The recorded objects can then be rendered onto an output device.
type List struct {
	Objects []*Object
}

var _ Surface = (*List)(nil)

func (l *List) add(obj *Object) *Object {
	l.Objects = append(l.Objects, obj)
	return obj
}

// Rectangle implements the [Surface] interface.
func (l *List) Rectangle(x, y, width, height float64, style Style) *Object {
	return l.add(&Object{
		Kind:   KindRectangle,
		Style:  style,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	})
}

// Line implements the [Surface] interface.
func (l *List) Line(pts []vec.Vec2, style Style) *Object {
	return l.add(&Object{
		Kind:   KindLine,
		Style:  style,
		Points: slices.Clone(pts),
	})
}

// Ellipse implements the [Surface] interface.
func (l *List) Ellipse(x, y, width, height float64, style Style) *Object {
	return l.add(&Object{
		Kind:   KindEllipse,
		Style:  style,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	})
}

// Arc implements the [Surface] interface.
func (l *List) Arc(x, y, width, height, theta1, theta2 float64, style Style) *Object {
	return l.add(&Object{
		Kind:   KindArc,
		Style:  style,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Theta1: theta1,
		Theta2: theta2,
	})
}

// Span implements the [Surface] interface.
func (l *List) Span(axis Axis, lo, hi, fracLo, fracHi float64, style Style) *Object {
	return l.add(&Object{
		Kind:   KindSpan,
		Style:  style,
		Axis:   axis,
		Lo:     lo,
		Hi:     hi,
		FracLo: fracLo,
		FracHi: fracHi,
	})
}

// Segments implements the [Surface] interface.
func (l *List) Segments(segs []Segment, style Style) *Object {
	return l.add(&Object{
		Kind:     KindSegments,
		Style:    style,
		Segments: slices.Clone(segs),
	})
}

// Polygon implements the [Surface] interface.
func (l *List) Polygon(pts []vec.Vec2, style Style) *Object {
	return l.add(&Object{
		Kind:   KindPolygon,
		Style:  style,
		Points: slices.Clone(pts),
	})
}

// Markers implements the [Surface] interface.
func (l *List) Markers(pts []vec.Vec2, size float64, style Style) *Object {
	return l.add(&Object{
		Kind:   KindMarkers,
		Style:  style,
		Points: slices.Clone(pts),
		Size:   size,
	})
}

// Image implements the [Surface] interface.
func (l *List) Image(img image.Image, extent [4]float64, style Style) *Object {
	return l.add(&Object{
		Kind:   KindImage,
		Style:  style,
		Image:  img,
		Extent: extent,
	})
}

// Text implements the [Surface] interface.
func (l *List) Text(x, y float64, text string, style Style) *Object {
	return l.add(&Object{
		Kind:  KindText,
		Style: style,
		X:     x,
		Y:     y,
		Text:  text,
	})
}

// Sorted returns the recorded objects in drawing order: objects with a
// lower z-order come first, and objects with equal z-order are kept in the
// order in which they were added.
func (l *List) Sorted() []*Object {
	res := slices.Clone(l.Objects)
	slices.SortStableFunc(res, func(a, b *Object) int {
		switch {
		case a.Style.ZOrder < b.Style.ZOrder:
			return -1
		case a.Style.ZOrder > b.Style.ZOrder:
			return 1
		default:
			return 0
		}
	})
	return res
}
