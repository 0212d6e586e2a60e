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
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/pitch/dims"
	"seehuhn.de/go/pitch/graphics"
)

func TestInvalidPlacement(t *testing.T) {
	cases := []struct {
		o         Orientation
		placement string
	}{
		{Horizontal, "top"},
		{Horizontal, "bottom"},
		{Horizontal, "Left"},
		{Horizontal, ""},
		{Vertical, "left"},
		{Vertical, "right"},
		{Vertical, "middle"},
	}
	for _, c := range cases {
		p, err := New(&Options{Orientation: c.o})
		if err != nil {
			t.Fatal(err)
		}
		list := &graphics.List{}
		_, err = p.ArcAroundGoal(list, 10, c.placement, graphics.Style{})
		var placeErr *InvalidPlacementError
		if !errors.As(err, &placeErr) {
			t.Errorf("%s/%q: expected InvalidPlacementError, got %v", c.o, c.placement, err)
			continue
		}
		if d := cmp.Diff(c.o.Placements(), placeErr.Valid); d != "" {
			t.Error(d)
		}
		msg := err.Error()
		for _, v := range c.o.Placements() {
			if !strings.Contains(msg, v) {
				t.Errorf("message %q does not name %q", msg, v)
			}
		}
		if len(list.Objects) != 0 {
			t.Error("invalid placement added an object")
		}
	}
}

func TestInvalidRadius(t *testing.T) {
	p, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := p.ArcAroundGoal(&graphics.List{}, r, "left", graphics.Style{})
		var radErr *InvalidRadiusError
		if !errors.As(err, &radErr) {
			t.Errorf("radius %g: expected InvalidRadiusError, got %v", r, err)
		}
	}
}

func TestArcAroundGoal(t *testing.T) {
	type arc struct {
		X, Y, Width, Height, Theta1, Theta2 float64
	}
	cases := []struct {
		name      string
		o         Orientation
		placement string
		want      arc
	}{
		{dims.StatsBomb, Horizontal, "left", arc{0, 40, 20, 20, -90, 90}},
		{dims.StatsBomb, Horizontal, "right", arc{120, 40, 20, 20, 90, 270}},
		{dims.StatsBomb, Vertical, "bottom", arc{40, 0, 20, 20, 0, 180}},
		{dims.StatsBomb, Vertical, "top", arc{40, 120, 20, 20, -180, 0}},
		{dims.Tracab, Horizontal, "left", arc{-5250, 0, 2000, 2000, -90, 90}},
		{dims.Tracab, Vertical, "top", arc{0, 5250, 2000, 2000, -180, 0}},
		{dims.MetricaSports, Horizontal, "right", arc{1, 0.5, 20.0 / 105, 20.0 / 68, 90, 270}},
		{dims.SkillCorner, Horizontal, "right", arc{52.5, 0, 20, 20, 90, 270}},
	}
	for _, c := range cases {
		p, err := New(&Options{Type: c.name, Orientation: c.o, Pad: &Padding{}})
		if err != nil {
			t.Fatal(err)
		}
		obj, err := p.ArcAroundGoal(&graphics.List{}, 10, c.placement, graphics.Style{})
		if err != nil {
			t.Errorf("%s/%s: %v", c.name, c.placement, err)
			continue
		}
		if obj.Kind != graphics.KindArc {
			t.Errorf("%s/%s: got %s", c.name, c.placement, obj.Kind)
		}
		got := arc{obj.X, obj.Y, obj.Width, obj.Height, obj.Theta1, obj.Theta2}
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("%s/%s/%s: %s", c.name, c.o, c.placement, d)
		}
		if obj.Style.Stroke == nil {
			t.Error("arc has no stroke colour")
		}
	}
}

// TestArcFollowsExtent checks that the arc is scaled by the span of the
// drawing extent, including padding and half-pitch views.
func TestArcFollowsExtent(t *testing.T) {
	type size struct {
		Width, Height float64
	}
	cases := []struct {
		name string
		opt  *Options
		want size
	}{
		// default padding of 4 on all sides: extent 128 by 88
		{"padded", &Options{Type: dims.StatsBomb}, size{2 * 128 * 10 / 120.0, 22}},
		{"padded vertical", &Options{Type: dims.StatsBomb, Orientation: Vertical}, size{22, 2 * 128 * 10 / 120.0}},
		{"uneven", &Options{Type: dims.StatsBomb, Pad: &Padding{Left: 12, Top: 8}}, size{22, 22}},
		{"half", &Options{Type: dims.StatsBomb, Half: true, Pad: &Padding{}}, size{10, 20}},
		{"tracab", &Options{Type: dims.Tracab}, size{2 * 11300 * 10 * 100 / 10500.0, 2 * 7600 * 10 * 100 / 6800.0}},
	}
	for _, c := range cases {
		p, err := New(c.opt)
		if err != nil {
			t.Fatal(err)
		}
		placement := p.State.Orientation.Placements()[0]
		obj, err := p.ArcAroundGoal(&graphics.List{}, 10, placement, graphics.Style{})
		if err != nil {
			t.Fatal(err)
		}
		got := size{obj.Width, obj.Height}
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("%s: %s", c.name, d)
		}
	}
}
