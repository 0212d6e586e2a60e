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
	"cmp"
	"errors"
	"image/color"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pitch/graphics"
)

var errBins = errors.New("number of bins must be positive")

// Statistic selects how the values in a bin are combined.
type Statistic int

// These are the supported statistics.
const (
	Count Statistic = iota
	Sum
	Mean
)

// BinResult holds the result of [Pitch.BinStatistic].
type BinResult struct {
	// XEdges and YEdges are the bin boundaries in pitch space, in increasing
	// order.
	XEdges, YEdges []float64

	// Stat[j][i] is the statistic for the bin between XEdges[i] and
	// XEdges[i+1], and between YEdges[j] and YEdges[j+1].  Empty bins are
	// NaN for the Mean statistic.
	Stat [][]float64

	// Count[j][i] is the number of points in each bin.
	Count [][]int
}

// BinStatistic divides the pitch into nx by ny rectangular bins and
// computes a statistic of the values in each bin.  For the Count
// statistic, values may be nil.  Points outside the pitch are ignored.
func (p *Pitch) BinStatistic(x, y, values []float64, nx, ny int, stat Statistic) (*BinResult, error) {
	if nx < 1 || ny < 1 {
		return nil, errBins
	}
	err := checkLengths([]string{"x", "y"}, x, y)
	if err == nil && (values != nil || stat != Count) {
		err = checkLengths([]string{"x", "values"}, x, values)
	}
	if err != nil {
		return nil, err
	}

	xMin, xMax := p.Dim.XLimits()
	yMin, yMax := p.Dim.YLimits()
	res := &BinResult{
		XEdges: linspace(xMin, xMax, nx+1),
		YEdges: linspace(yMin, yMax, ny+1),
		Stat:   make([][]float64, ny),
		Count:  make([][]int, ny),
	}
	for j := range ny {
		res.Stat[j] = make([]float64, nx)
		res.Count[j] = make([]int, nx)
	}

	for k := range x {
		i := binIndex(x[k], xMin, xMax, nx)
		j := binIndex(y[k], yMin, yMax, ny)
		if i < 0 || j < 0 {
			continue
		}
		res.Count[j][i]++
		if stat != Count {
			res.Stat[j][i] += values[k]
		}
	}

	for j := range ny {
		for i := range nx {
			switch stat {
			case Count:
				res.Stat[j][i] = float64(res.Count[j][i])
			case Mean:
				if c := res.Count[j][i]; c > 0 {
					res.Stat[j][i] /= float64(c)
				} else {
					res.Stat[j][i] = math.NaN()
				}
			}
		}
	}
	return res, nil
}

// binIndex returns the bin containing v, or -1 if v is outside [lo, hi].
// The upper limit belongs to the last bin.
func binIndex(v, lo, hi float64, n int) int {
	if !(v >= lo && v <= hi) {
		return -1
	}
	i := int((v - lo) / (hi - lo) * float64(n))
	return min(i, n-1)
}

func linspace(lo, hi float64, n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return res
}

// Colormap maps numbers in the range [0, 1] to colours, by linear
// interpolation between two colours.
type Colormap struct {
	Low, High color.Color
}

// At returns the colour for t.  Values outside [0, 1] are clamped.
func (c Colormap) At(t float64) color.Color {
	if math.IsNaN(t) {
		t = 0
	}
	t = max(0, min(1, t))
	a := color.NRGBAModel.Convert(c.Low).(color.NRGBA)
	b := color.NRGBAModel.Convert(c.High).(color.NRGBA)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// Heatmap draws one rectangle for each bin which holds a finite value.
// The colours are scaled between the smallest and the largest value.
func (p *Pitch) Heatmap(s graphics.Surface, res *BinResult, cmap Colormap, style graphics.Style) []*graphics.Object {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range res.Stat {
		for _, v := range row {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				lo = min(lo, v)
				hi = max(hi, v)
			}
		}
	}

	var objs []*graphics.Object
	for j, row := range res.Stat {
		y0, y1 := res.YEdges[j], res.YEdges[j+1]
		for i, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			x0, x1 := res.XEdges[i], res.XEdges[i+1]
			t := 0.0
			if hi > lo {
				t = (v - lo) / (hi - lo)
			}
			cell := style
			cell.Fill = cmap.At(t)
			objs = append(objs, p.DrawPolygon(s, []vec.Vec2{
				{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
			}, cell))
		}
	}
	return objs
}

// HexBin is one non-empty cell of a hexagonal binning.
type HexBin struct {
	// Center is the centre of the hexagon, in drawing space.
	Center vec.Vec2
	Count  int
}

// hexVertices are the corners of a hexagon, in units of the grid spacing
// (x) and a third of the grid spacing (y).
var hexVertices = [6]vec.Vec2{
	{X: .5, Y: -.5}, {X: .5, Y: .5}, {X: 0, Y: 1},
	{X: -.5, Y: .5}, {X: -.5, Y: -.5}, {X: 0, Y: -1},
}

// HexbinCounts counts the points in the cells of a hexagonal grid.  The
// grid covers the HexExtent of the pitch state and uses HexbinGridSize
// cells along the two drawing axes.  Points outside the grid are ignored.
// The result is sorted by position.
func (p *Pitch) HexbinCounts(x, y []float64) ([]HexBin, error) {
	err := checkLengths([]string{"x", "y"}, x, y)
	if err != nil {
		return nil, err
	}

	st := p.State
	xMin, xMax, yMin, yMax := st.HexExtent[0], st.HexExtent[1], st.HexExtent[2], st.HexExtent[3]
	nx, ny := st.HexbinGridSize[0], st.HexbinGridSize[1]
	sx := (xMax - xMin) / float64(nx)
	sy := (yMax - yMin) / float64(ny)

	type cell struct {
		ix, iy int
		offset bool
	}
	counts := make(map[cell]int)
	for k := range x {
		px, py := st.Orientation.ReversePoint(x[k], y[k])
		if !(px >= xMin && px <= xMax && py >= yMin && py <= yMax) {
			continue
		}
		xs := (px - xMin) / sx
		ys := (py - yMin) / sy

		ix1, iy1 := math.Round(xs), math.Round(ys)
		ix2, iy2 := math.Floor(xs), math.Floor(ys)
		d1 := (xs-ix1)*(xs-ix1) + 3*(ys-iy1)*(ys-iy1)
		d2 := (xs-ix2-.5)*(xs-ix2-.5) + 3*(ys-iy2-.5)*(ys-iy2-.5)

		var c cell
		if d1 < d2 {
			c = cell{ix: int(ix1), iy: int(iy1)}
		} else {
			c = cell{ix: min(int(ix2), nx-1), iy: min(int(iy2), ny-1), offset: true}
		}
		counts[c]++
	}

	res := make([]HexBin, 0, len(counts))
	for c, n := range counts {
		cx := xMin + float64(c.ix)*sx
		cy := yMin + float64(c.iy)*sy
		if c.offset {
			cx += sx / 2
			cy += sy / 2
		}
		res = append(res, HexBin{Center: vec.Vec2{X: cx, Y: cy}, Count: n})
	}
	slices.SortFunc(res, func(a, b HexBin) int {
		if c := cmp.Compare(a.Center.Y, b.Center.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.Center.X, b.Center.X)
	})
	return res, nil
}

// Hexbin counts the points in the cells of a hexagonal grid, see
// [Pitch.HexbinCounts], and draws one hexagon for each non-empty cell.
func (p *Pitch) Hexbin(s graphics.Surface, x, y []float64, cmap Colormap, style graphics.Style) ([]HexBin, error) {
	bins, err := p.HexbinCounts(x, y)
	if err != nil {
		return nil, err
	}

	maxCount := 0
	for _, b := range bins {
		maxCount = max(maxCount, b.Count)
	}

	st := p.State
	sx := (st.HexExtent[1] - st.HexExtent[0]) / float64(st.HexbinGridSize[0])
	sy := (st.HexExtent[3] - st.HexExtent[2]) / float64(st.HexbinGridSize[1]) / 3
	for _, b := range bins {
		pts := make([]vec.Vec2, len(hexVertices))
		for i, v := range hexVertices {
			pts[i] = vec.Vec2{X: b.Center.X + v.X*sx, Y: b.Center.Y + v.Y*sy}
		}
		cell := style
		cell.Fill = cmap.At(float64(b.Count) / float64(maxCount))
		s.Polygon(pts, cell)
	}
	return bins, nil
}
