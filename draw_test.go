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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pitch/dims"
	"seehuhn.de/go/pitch/graphics"
)

func drawPitch(t *testing.T, opt *Options) (*Pitch, *graphics.List) {
	t.Helper()
	p, err := New(opt)
	if err != nil {
		t.Fatal(err)
	}
	list := &graphics.List{}
	p.Draw(list)
	return p, list
}

func objectsOfKind(list *graphics.List, kind graphics.Kind) []*graphics.Object {
	var res []*graphics.Object
	for _, obj := range list.Objects {
		if obj.Kind == kind {
			res = append(res, obj)
		}
	}
	return res
}

func TestOutline(t *testing.T) {
	type box struct{ X, Y, W, H float64 }
	cases := []struct {
		o    Orientation
		want box
	}{
		{Horizontal, box{0, 80, 120, -80}},
		{Vertical, box{80, 0, -80, 120}},
	}
	for _, c := range cases {
		_, list := drawPitch(t, &Options{Orientation: c.o})
		rects := objectsOfKind(list, graphics.KindRectangle)
		if len(rects) < 2 {
			t.Fatalf("%s: only %d rectangles", c.o, len(rects))
		}
		// rects[0] is the background
		r := rects[1]
		got := box{r.X, r.Y, r.Width, r.Height}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%s: %s", c.o, d)
		}
	}
}

func TestStripes(t *testing.T) {
	for _, o := range orientations {
		_, list := drawPitch(t, &Options{Type: dims.UEFA, Orientation: o, Stripe: true})
		spans := objectsOfKind(list, graphics.KindSpan)
		if len(spans) != 8 {
			t.Errorf("%s: %d stripes, want 8", o, len(spans))
		}
		for _, s := range spans {
			if s.Style.ZOrder != zStripes {
				t.Errorf("%s: stripe has z-order %g", o, s.Style.ZOrder)
			}
		}

		_, list = drawPitch(t, &Options{Type: dims.UEFA, Orientation: o})
		if n := len(objectsOfKind(list, graphics.KindSpan)); n != 0 {
			t.Errorf("%s: %d stripes without Stripe option", o, n)
		}
	}
}

func TestCornerArcs(t *testing.T) {
	type arc struct{ X, Y, Theta1, Theta2 float64 }
	cases := []struct {
		o    Orientation
		want []arc
	}{
		{Horizontal, []arc{
			{0, 0, 0, 90},
			{0, 68, 270, 360},
			{105, 0, 90, 180},
			{105, 68, 180, 270},
		}},
		{Vertical, []arc{
			{0, 0, 0, 90},
			{68, 0, -270, -180},
			{0, 105, -90, 0},
			{68, 105, -180, -90},
		}},
	}
	for _, c := range cases {
		_, list := drawPitch(t, &Options{Type: dims.UEFA, Orientation: c.o, CornerArcs: true})
		arcs := objectsOfKind(list, graphics.KindArc)
		if len(arcs) != 6 {
			t.Fatalf("%s: %d arcs, want 6", c.o, len(arcs))
		}
		var got []arc
		for _, a := range arcs[2:] {
			got = append(got, arc{a.X, a.Y, a.Theta1, a.Theta2})
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%s: %s", c.o, d)
		}
	}
}

func TestGoalTypes(t *testing.T) {
	cases := []struct {
		goal      GoalType
		rects     int
		lines     int
		lineWidth float64
	}{
		{GoalBox, 8, 1, 2},
		{GoalLine, 6, 3, 6},
		{GoalNone, 6, 1, 2},
	}
	for _, c := range cases {
		_, list := drawPitch(t, &Options{Type: dims.Opta, GoalType: c.goal})
		rects := objectsOfKind(list, graphics.KindRectangle)
		lines := objectsOfKind(list, graphics.KindLine)
		if len(rects) != c.rects || len(lines) != c.lines {
			t.Errorf("%s: %d rectangles and %d lines, want %d and %d",
				c.goal, len(rects), len(lines), c.rects, c.lines)
			continue
		}
		last := lines[len(lines)-1]
		if last.Style.LineWidth != c.lineWidth {
			t.Errorf("%s: line width %g, want %g", c.goal, last.Style.LineWidth, c.lineWidth)
		}
	}
}

func TestGrassBackground(t *testing.T) {
	for _, o := range orientations {
		p, list := drawPitch(t, &Options{Type: dims.UEFA, Orientation: o, Grass: true})
		first := list.Objects[0]
		if first.Kind != graphics.KindImage {
			t.Fatalf("%s: background is %s", o, first.Kind)
		}
		if first.Extent != p.State.Extent {
			t.Errorf("%s: image covers %v, want %v", o, first.Extent, p.State.Extent)
		}
	}
}

// TestHalfBackground checks that the background of a half pitch does not
// extend beyond the opposite goal line.
func TestHalfBackground(t *testing.T) {
	p, list := drawPitch(t, &Options{Type: dims.StatsBomb, Half: true, Pad: &Padding{Left: 100}})
	bg := list.Objects[0]
	if bg.Kind != graphics.KindRectangle {
		t.Fatalf("background is %s", bg.Kind)
	}
	if bg.X != p.State.HalfStart || bg.X != 0 {
		t.Errorf("background starts at %g, want 0", bg.X)
	}
}

func TestPitchBelowOverlays(t *testing.T) {
	for _, o := range orientations {
		_, list := drawPitch(t, &Options{Orientation: o, Stripe: true, CornerArcs: true})
		for _, obj := range list.Objects {
			if obj.Style.ZOrder >= 0 {
				t.Errorf("%s: %s has z-order %g", o, obj.Kind, obj.Style.ZOrder)
			}
		}
	}
}
