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
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pitch/dims"
)

var orientations = []Orientation{Horizontal, Vertical}

func getDim(t *testing.T, name string) *dims.Spec {
	t.Helper()
	d, err := dims.Get(name, nil)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// simpleDim is a 120x80 coordinate system with the origin in the lower left
// corner.
func simpleDim() *dims.Spec {
	return &dims.Spec{
		Left: 0, Right: 120, Bottom: 0, Top: 80,
		Length: 120, Width: 80,
		Aspect:       1,
		UnitScale:    1,
		CenterLength: 60,
		CenterWidth:  40,
	}
}

func TestZeroPadding(t *testing.T) {
	for _, name := range dims.Names() {
		d := getDim(t, name)
		for _, o := range orientations {
			t.Run(fmt.Sprintf("%s-%s", name, o), func(t *testing.T) {
				st := ComputeExtent(d, o, Padding{}, false)

				want := [4]float64{d.Left, d.Right, d.Bottom, d.Top}
				if o == Vertical {
					want = [4]float64{d.Top, d.Bottom, d.Left, d.Right}
				}
				if d := cmp.Diff(want, st.Extent); d != "" {
					t.Errorf("extent: %s", d)
				}
				if d := cmp.Diff(want, st.VisiblePitch); d != "" {
					t.Errorf("visible pitch: %s", d)
				}
			})
		}
	}
}

func TestSimpleHorizontal(t *testing.T) {
	st := ComputeExtent(simpleDim(), Horizontal, Padding{}, false)
	if d := cmp.Diff([4]float64{0, 120, 0, 80}, st.Extent); d != "" {
		t.Error(d)
	}
	if st.AxAspect != 1.5 {
		t.Errorf("ax aspect %g, want 1.5", st.AxAspect)
	}
	if st.Vertical || st.ReverseCmap {
		t.Error("wrong flags for horizontal pitch")
	}
}

func TestSimpleVertical(t *testing.T) {
	st := ComputeExtent(simpleDim(), Vertical, Padding{}, false)
	if d := cmp.Diff([4]float64{80, 0, 0, 120}, st.Extent); d != "" {
		t.Error(d)
	}
	if st.Aspect != 1 {
		t.Errorf("aspect %g, want 1", st.Aspect)
	}
	if d := cmp.Diff(80.0/120.0, st.AxAspect, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
	if !st.Vertical {
		t.Error("Vertical not set")
	}
}

// TestVerticalAspect checks that the aspect ratio of the dimension is
// inverted for vertical pitches, without modifying the dimension.
func TestVerticalAspect(t *testing.T) {
	d := getDim(t, dims.Opta)
	orig := d.Aspect
	st := ComputeExtent(d, Vertical, Padding{}, false)
	if d.Aspect != orig {
		t.Fatal("ComputeExtent modified the dimension")
	}
	if d := cmp.Diff(1/orig, st.Aspect, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
	hor := ComputeExtent(d, Horizontal, Padding{}, false)
	if d := cmp.Diff(1/hor.AxAspect, st.AxAspect, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}

func TestStatsBombPadded(t *testing.T) {
	d := getDim(t, dims.StatsBomb)
	pad := UniformPadding(4)

	hor := ComputeExtent(d, Horizontal, pad, false)
	ver := ComputeExtent(d, Vertical, pad, false)

	type summary struct {
		Extent                 [4]float64
		AxAspect               float64
		StripeStart, StripeEnd float64
		GrassStart, GrassEnd   int
		HexExtent              [4]float64
		GridSize               [2]int
		ReverseCmap            bool
	}
	got := []summary{
		{hor.Extent, hor.AxAspect, hor.StripeStart, hor.StripeEnd,
			hor.GrassStripeStart, hor.GrassStripeEnd, hor.HexExtent, hor.HexbinGridSize, hor.ReverseCmap},
		{ver.Extent, ver.AxAspect, ver.StripeStart, ver.StripeEnd,
			ver.GrassStripeStart, ver.GrassStripeEnd, ver.HexExtent, ver.HexbinGridSize, ver.ReverseCmap},
	}
	want := []summary{
		{
			Extent:      [4]float64{-4, 124, 84, -4},
			AxAspect:    128.0 / 88.0,
			StripeStart: 4.0 / 88.0,
			StripeEnd:   84.0 / 88.0,
			GrassStart:  45,
			GrassEnd:    954,
			HexExtent:   [4]float64{0, 120, 0, 80},
			GridSize:    [2]int{17, 8},
			ReverseCmap: true,
		},
		{
			Extent:      [4]float64{-4, 84, -4, 124},
			AxAspect:    88.0 / 128.0,
			StripeStart: 4.0 / 88.0,
			StripeEnd:   84.0 / 88.0,
			GrassStart:  45,
			GrassEnd:    954,
			HexExtent:   [4]float64{0, 80, 0, 120},
			GridSize:    [2]int{17, 17},
		},
	}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}

// TestMonotonicity checks that increasing the padding on one side moves the
// corresponding boundary of the extent outwards.
func TestMonotonicity(t *testing.T) {
	for _, name := range dims.Names() {
		d := getDim(t, name)
		delta := d.DefaultPad
		for _, o := range orientations {
			for _, half := range []bool{false, true} {
				base := UniformPadding(d.DefaultPad)
				st0 := ComputeExtent(d, o, base, half)
				for i := range 4 {
					p := base.sides()
					p[i] += delta
					pad := Padding{Left: p[0], Right: p[1], Bottom: p[2], Top: p[3]}
					st1 := ComputeExtent(d, o, pad, half)

					mid := (st0.Bounds[i] + st0.Bounds[i^1]) / 2
					d0 := math.Abs(st0.Extent[i] - mid)
					d1 := math.Abs(st1.Extent[i] - mid)
					if !(d1 > d0) {
						t.Errorf("%s/%s/half=%t: side %d moved from %g to %g",
							name, o, half, i, st0.Extent[i], st1.Extent[i])
					}
				}
			}
		}
	}
}

func TestGrassStripeRange(t *testing.T) {
	for _, name := range dims.Names() {
		d := getDim(t, name)
		u := d.DefaultPad
		pads := []Padding{
			{},
			UniformPadding(u),
			UniformPadding(-u),
			{Left: u, Right: -u, Bottom: 2 * u, Top: -2 * u},
			{Left: -3 * u, Right: 5 * u, Bottom: -u, Top: 0},
			UniformPadding(20 * u),
		}
		for _, o := range orientations {
			for _, half := range []bool{false, true} {
				for _, pad := range pads {
					st := ComputeExtent(d, o, pad, half)
					gs, ge := st.GrassStripeStart, st.GrassStripeEnd
					if !(0 <= gs && gs <= ge && ge <= grassResolution) {
						t.Errorf("%s/%s/half=%t/%v: grass stripes %d..%d",
							name, o, half, pad, gs, ge)
					}
				}
			}
		}
	}
}

// TestHalfPitch checks that the start of a half pitch is the halfway line,
// independent of the padding.
func TestHalfPitch(t *testing.T) {
	for _, name := range dims.Names() {
		d := getDim(t, name)
		for _, o := range orientations {
			start := o.table().start
			for _, pad := range []float64{0, d.DefaultPad, -d.DefaultPad, 10 * d.DefaultPad} {
				st := ComputeExtent(d, o, UniformPadding(pad), true)
				if st.Bounds[start] != d.CenterLength {
					t.Errorf("%s/%s/pad=%g: start %g, want %g",
						name, o, pad, st.Bounds[start], d.CenterLength)
				}
			}
		}
	}
}

func TestHalfStart(t *testing.T) {
	d := getDim(t, dims.StatsBomb)

	st := ComputeExtent(d, Horizontal, UniformPadding(4), true)
	if st.Extent[0] != 56 || st.HalfStart != 56 {
		t.Errorf("extent starts at %g, half start %g; want 56", st.Extent[0], st.HalfStart)
	}
	if st.VisiblePitch[0] != 56 {
		t.Errorf("visible pitch starts at %g, want 56", st.VisiblePitch[0])
	}

	// padding beyond the halfway line is limited to half the pitch
	st = ComputeExtent(d, Horizontal, UniformPadding(100), true)
	if st.Extent[0] != -40 || st.HalfStart != 0 {
		t.Errorf("extent starts at %g, half start %g; want -40, 0", st.Extent[0], st.HalfStart)
	}

	st = ComputeExtent(d, Vertical, UniformPadding(100), true)
	if st.Extent[2] != -40 || st.HalfStart != 0 {
		t.Errorf("vertical: extent starts at %g, half start %g; want -40, 0", st.Extent[2], st.HalfStart)
	}
}

func TestVisiblePitch(t *testing.T) {
	d := getDim(t, dims.StatsBomb)
	pad := Padding{Left: -10, Right: 5, Bottom: -8, Top: 2}
	st := ComputeExtent(d, Horizontal, pad, false)

	// negative padding cuts off part of the pitch, positive padding is
	// ignored
	want := [4]float64{10, 120, 72, 0}
	if d := cmp.Diff(want, st.VisiblePitch); d != "" {
		t.Error(d)
	}
	wantExtent := [4]float64{10, 125, 72, -2}
	if d := cmp.Diff(wantExtent, st.Extent); d != "" {
		t.Error(d)
	}
}

// TestPure checks that equal inputs give equal, independent results.
func TestPure(t *testing.T) {
	d := getDim(t, dims.Wyscout)
	a := ComputeExtent(d, Vertical, UniformPadding(3), true)
	b := ComputeExtent(d, Vertical, UniformPadding(3), true)
	if a == b {
		t.Fatal("ComputeExtent returned a shared State")
	}
	if d := cmp.Diff(a, b); d != "" {
		t.Error(d)
	}
}

func TestClipRect(t *testing.T) {
	d := getDim(t, dims.StatsBomb)

	got := []rect.Rect{
		ComputeExtent(d, Horizontal, Padding{}, false).ClipRect(),
		ComputeExtent(d, Vertical, Padding{}, false).ClipRect(),
	}
	want := []rect.Rect{
		{LLx: 0, LLy: 0, URx: 120, URy: 80},
		{LLx: 0, LLy: 0, URx: 80, URy: 120},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestViewport(t *testing.T) {
	st := ComputeExtent(getDim(t, dims.UEFA), Horizontal, UniformPadding(4), false)
	vp := st.Viewport(800)
	if d := cmp.Diff(800/st.AxAspect, vp.Height, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
	p := vp.Apply(st.Extent[0], st.Extent[3])
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("top left corner maps to %v", p)
	}
}
