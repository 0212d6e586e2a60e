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
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pitch/dims"
	"seehuhn.de/go/pitch/graphics"
)

var testPoints = struct{ x, y, v []float64 }{
	x: []float64{10, 80, 100, 50, -1, 105},
	y: []float64{10, 50, 60, 40, 5, 68},
	v: []float64{1, 2, 4, 8, 16, 6},
}

func TestBinCount(t *testing.T) {
	p, err := New(&Options{Type: dims.UEFA})
	if err != nil {
		t.Fatal(err)
	}
	res, err := p.BinStatistic(testPoints.x, testPoints.y, nil, 3, 2, Count)
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff([]float64{0, 35, 70, 105}, res.XEdges); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]float64{0, 34, 68}, res.YEdges); d != "" {
		t.Error(d)
	}
	// (-1, 5) is outside the pitch, (105, 68) is in the last bin
	want := [][]int{
		{1, 0, 0},
		{0, 1, 3},
	}
	if d := cmp.Diff(want, res.Count); d != "" {
		t.Error(d)
	}
	if res.Stat[1][2] != 3 {
		t.Errorf("count statistic %g, want 3", res.Stat[1][2])
	}
}

func TestBinMean(t *testing.T) {
	p, err := New(&Options{Type: dims.UEFA})
	if err != nil {
		t.Fatal(err)
	}
	res, err := p.BinStatistic(testPoints.x, testPoints.y, testPoints.v, 3, 2, Mean)
	if err != nil {
		t.Fatal(err)
	}
	if res.Stat[1][2] != 4 {
		t.Errorf("mean %g, want 4", res.Stat[1][2])
	}
	if res.Stat[0][0] != 1 {
		t.Errorf("mean %g, want 1", res.Stat[0][0])
	}
	if !math.IsNaN(res.Stat[0][1]) {
		t.Errorf("empty bin has mean %g", res.Stat[0][1])
	}

	list := &graphics.List{}
	cmap := Colormap{Low: color.White, High: color.Black}
	objs := p.Heatmap(list, res, cmap, graphics.Style{})
	if len(objs) != 3 {
		t.Errorf("%d heatmap cells, want 3", len(objs))
	}

	res, err = p.BinStatistic(testPoints.x, testPoints.y, testPoints.v, 3, 2, Sum)
	if err != nil {
		t.Fatal(err)
	}
	if res.Stat[1][2] != 12 || res.Stat[0][1] != 0 {
		t.Errorf("sums %g and %g, want 12 and 0", res.Stat[1][2], res.Stat[0][1])
	}
	objs = p.Heatmap(list, res, cmap, graphics.Style{})
	if len(objs) != 6 {
		t.Errorf("%d heatmap cells, want 6", len(objs))
	}
}

func TestBinErrors(t *testing.T) {
	p, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = p.BinStatistic([]float64{1, 2}, []float64{1}, nil, 2, 2, Count)
	var lenErr *LengthMismatchError
	if !errors.As(err, &lenErr) {
		t.Fatalf("expected LengthMismatchError, got %v", err)
	}
	if lenErr.Field != "y" || lenErr.Len != 1 || lenErr.Exp != 2 {
		t.Errorf("wrong error: %v", lenErr)
	}

	_, err = p.BinStatistic([]float64{1}, []float64{1}, nil, 2, 2, Mean)
	if !errors.As(err, &lenErr) || lenErr.Field != "values" {
		t.Errorf("missing values not detected: %v", err)
	}

	_, err = p.BinStatistic(nil, nil, nil, 0, 2, Count)
	if err != errBins {
		t.Errorf("expected errBins, got %v", err)
	}
}

func TestHexbin(t *testing.T) {
	x := []float64{1, 2, 3, 60, 61, 119, 119.5, 30, 200}
	y := []float64{1, 1, 2, 40, 41, 79, 79.5, 10, 10}
	for _, o := range orientations {
		p, err := New(&Options{Orientation: o})
		if err != nil {
			t.Fatal(err)
		}
		list := &graphics.List{}
		bins, err := p.Hexbin(list, x, y, Colormap{Low: color.White, High: color.Black}, graphics.Style{})
		if err != nil {
			t.Fatal(err)
		}

		total := 0
		for _, b := range bins {
			if b.Count <= 0 {
				t.Errorf("%s: empty bin %v", o, b)
			}
			total += b.Count
		}
		// (200, 10) is outside the grid
		if total != 8 {
			t.Errorf("%s: %d points counted, want 8", o, total)
		}
		if len(list.Objects) != len(bins) {
			t.Errorf("%s: %d hexagons for %d bins", o, len(list.Objects), len(bins))
		}
		for _, obj := range list.Objects {
			if len(obj.Points) != 6 {
				t.Errorf("%s: hexagon with %d vertices", o, len(obj.Points))
			}
		}
	}
}

func TestHexbinSingleCell(t *testing.T) {
	p, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	bins, err := p.HexbinCounts([]float64{0, 0.01}, []float64{0, 0.01})
	if err != nil {
		t.Fatal(err)
	}
	want := []HexBin{{Count: 2}}
	if d := cmp.Diff(want, bins); d != "" {
		t.Error(d)
	}
}

func TestColormap(t *testing.T) {
	cmap := Colormap{
		Low:  color.NRGBA{R: 0, G: 0, B: 255, A: 255},
		High: color.NRGBA{R: 255, G: 0, B: 0, A: 255},
	}
	cases := []struct {
		t    float64
		want color.NRGBA
	}{
		{0, color.NRGBA{B: 255, A: 255}},
		{1, color.NRGBA{R: 255, A: 255}},
		{-3, color.NRGBA{B: 255, A: 255}},
		{7, color.NRGBA{R: 255, A: 255}},
		{math.NaN(), color.NRGBA{B: 255, A: 255}},
		{0.5, color.NRGBA{R: 128, B: 128, A: 255}},
	}
	for _, c := range cases {
		got := cmap.At(c.t)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("At(%g): %s", c.t, d)
		}
	}
}
