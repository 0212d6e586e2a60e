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

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pitch/dims"
	"seehuhn.de/go/pitch/graphics"
)

// grassResolution is the size of the grass texture raster.
const grassResolution = 1000

// Padding gives the space around the pitch, in pitch-space units.  The
// fields refer to the sides of the drawing, so that for vertical pitches
// Left and Right pad the touchlines.  Negative values cut off part of the
// pitch.
type Padding struct {
	Left, Right, Bottom, Top float64
}

// UniformPadding returns a Padding with the same value on all sides.
func UniformPadding(pad float64) Padding {
	return Padding{Left: pad, Right: pad, Bottom: pad, Top: pad}
}

func (p Padding) sides() [4]float64 {
	return [4]float64{p.Left, p.Right, p.Bottom, p.Top}
}

// State describes the layout of a pitch in drawing space.
//
// All drawing-space tuples are given as (x0, x1, y0, y1).  The limits may be
// in decreasing order, if an axis is drawn reversed.
type State struct {
	Orientation Orientation
	Half        bool

	// Pad is the padding after scaling by the aspect ratio.
	Pad Padding

	// Bounds are the pitch boundaries in drawing order, without padding.
	// In half-pitch mode the start boundary is the halfway line.
	Bounds [4]float64

	// Extent is the area covered by the drawing.
	Extent [4]float64

	// VisiblePitch is the part of the pitch which is not cut off by
	// negative padding.
	VisiblePitch [4]float64

	// Aspect is the aspect ratio of the dimension, inverted for vertical
	// pitches.
	Aspect float64

	// AxAspect is the ratio of the width to the height of the drawing.
	AxAspect float64

	// HexExtent and HexbinGridSize describe the grid for hexagonal binning,
	// in drawing order.
	HexExtent      [4]float64
	HexbinGridSize [2]int

	// KDEClip is the range of the pitch along the two drawing axes, used to
	// clip density plots.
	KDEClip [2][2]float64

	// StripeStart and StripeEnd are the fractions of the drawing, across
	// the pitch, covered by the grass stripes.
	StripeStart, StripeEnd float64

	// GrassStripeStart and GrassStripeEnd give the same range in rows (or
	// columns, for vertical pitches) of the grass texture raster.
	GrassStripeStart, GrassStripeEnd int

	// HalfStart is the start boundary of a half-pitch view, where the
	// padding beyond the halfway line is limited to half the pitch length.
	HalfStart float64

	Vertical bool

	// ReverseCmap is set if colour and transparency ramps along lines run
	// against the direction of the lines.  This is the case for horizontal
	// pitches of standards with a downward y-axis.
	ReverseCmap bool
}

// ComputeExtent determines the layout of a pitch in drawing space.
//
// The function has no side effects and returns a new State.  The padding
// along the length of the pitch is multiplied by the aspect ratio of the
// dimension.
func ComputeExtent(dim *dims.Spec, o Orientation, pad Padding, half bool) *State {
	tab := o.table()

	p := pad.sides()
	for _, side := range tab.scaled {
		p[side] *= dim.Aspect
	}

	bounds := [4]float64{dim.Left, dim.Right, dim.Bottom, dim.Top}

	var base, padding, visiblePad [4]float64
	for i, side := range tab.order {
		base[i] = bounds[side]
		padding[i] = tab.sign[i] * p[i]
		visiblePad[i] = tab.sign[i] * min(p[i], 0)
	}

	if half {
		base[tab.start] = dim.CenterLength
		visiblePad[tab.start] = tab.sign[tab.start] * p[tab.start]
	}
	if dim.InvertY {
		for _, i := range tab.width {
			padding[i] = -padding[i]
			visiblePad[i] = -visiblePad[i]
		}
	}

	aspect := dim.Aspect
	if tab.invertAspect {
		aspect = 1 / aspect
	}

	st := &State{
		Orientation: o,
		Half:        half,
		Pad:         Padding{Left: p[sideLeft], Right: p[sideRight], Bottom: p[sideBottom], Top: p[sideTop]},
		Bounds:      base,
		Aspect:      aspect,
		Vertical:    o == Vertical,
	}
	for i := range base {
		st.Extent[i] = base[i] + padding[i]
		st.VisiblePitch[i] = base[i] + visiblePad[i]
	}
	e := st.Extent
	st.AxAspect = math.Abs(e[1]-e[0]) / (math.Abs(e[3]-e[2]) * aspect)

	st.HalfStart = e[tab.start]
	if half {
		// Limited by half the coordinate length.  Scaling by the real pitch
		// length instead would clip differently for normalised standards.
		st.HalfStart = base[tab.start] - min(p[tab.start], dim.Length/2)
	}

	yMin, yMax := dim.YLimits()
	st.HexbinGridSize = tab.hexbinGridSize
	if o == Vertical {
		st.HexExtent = [4]float64{yMin, yMax, dim.Left, dim.Right}
		st.KDEClip = [2][2]float64{{dim.Top, dim.Bottom}, {dim.Left, dim.Right}}
	} else {
		st.HexExtent = [4]float64{dim.Left, dim.Right, yMin, yMax}
		st.KDEClip = [2][2]float64{{dim.Left, dim.Right}, {dim.Bottom, dim.Top}}
		st.ReverseCmap = dim.InvertY
	}

	st.setStripes(dim, tab, p)

	return st
}

// setStripes computes the fractions of the drawing covered by the stripes,
// and the corresponding range of the grass texture raster.
func (st *State) setStripes(dim *dims.Spec, tab *axisTable, p [4]float64) {
	e := st.Extent
	ref := e[tab.stripeRef]
	total := math.Abs(e[tab.stripeRef+1] - ref)

	padTop := -min(p[tab.stripeTopPad], 0)
	padBottom := min(p[tab.stripeBPad], 0)
	if dim.InvertY {
		padTop, padBottom = -padTop, -padBottom
	}
	topSide := math.Abs(ref - dim.Top + padTop)
	bottomSide := math.Abs(ref - dim.Bottom + padBottom)

	var grassStart, grassEnd int
	if tab.stripeFlip {
		st.StripeEnd = topSide / total
		st.StripeStart = bottomSide / total
		grassEnd = int((1 - st.StripeStart) * grassResolution)
		grassStart = int((1 - st.StripeEnd) * grassResolution)
	} else {
		st.StripeStart = topSide / total
		st.StripeEnd = bottomSide / total
		grassEnd = int(st.StripeEnd * grassResolution)
		grassStart = int(st.StripeStart * grassResolution)
	}

	grassStart = clampInt(grassStart, 0, grassResolution)
	grassEnd = clampInt(grassEnd, 0, grassResolution)
	st.GrassStripeStart = min(grassStart, grassEnd)
	st.GrassStripeEnd = max(grassStart, grassEnd)
}

// Viewport returns the mapping from drawing space to an output device of
// the given width.  The height is chosen to match AxAspect.
func (st *State) Viewport(width float64) *graphics.Viewport {
	return graphics.NewViewport(st.Extent, st.AxAspect, width)
}

// ClipRect returns the rectangle, in drawing space, used to clip density
// plots to the pitch.
func (st *State) ClipRect() rect.Rect {
	c := st.KDEClip
	return rect.Rect{
		LLx: min(c[0][0], c[0][1]),
		URx: max(c[0][0], c[0][1]),
		LLy: min(c[1][0], c[1][1]),
		URy: max(c[1][0], c[1][1]),
	}
}

func clampInt(x, lo, hi int) int {
	return max(lo, min(hi, x))
}
