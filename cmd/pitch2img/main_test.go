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

package main

import (
	"bytes"
	"errors"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/pitch"
	"seehuhn.de/go/pitch/config"
)

func TestOutputFormat(t *testing.T) {
	cases := []struct {
		format, fname, want string
	}{
		{"", "out.png", "png"},
		{"", "out.SVG", "svg"},
		{"", "-", "png"},
		{"SVG", "out.png", "svg"},
		{"png", "-", "png"},
		{"", "shots.PDF", "pdf"},
		{"", "out.tiff", "png"},
	}
	for _, c := range cases {
		got := outputFormat(c.format, c.fname)
		if got != c.want {
			t.Errorf("outputFormat(%q, %q) = %q, want %q", c.format, c.fname, got, c.want)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	cfg := &config.File{}
	cfg.Output.Width = 400
	cfg.Output.Arcs = []config.Arc{{Placement: "left", Radius: 10}}

	buf := &bytes.Buffer{}
	err := render(buf, cfg, "png")
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() < 275 || b.Dy() > 276 {
		t.Errorf("image size %dx%d, want 400x275", b.Dx(), b.Dy())
	}
}

func TestRenderSVG(t *testing.T) {
	cfg := &config.File{}
	cfg.Pitch.Type = "uefa"
	cfg.Pitch.Orientation = "vertical"
	cfg.Output.Title = "Corners & free kicks"
	cfg.Output.Lang = "fr"
	cfg.Output.Arcs = []config.Arc{{Placement: "top", Radius: 20}}

	buf := &bytes.Buffer{}
	err := render(buf, cfg, "svg")
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`<svg `, `xml:lang="fr"`, "<title>Corners &amp; free kicks</title>", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestRenderPDF(t *testing.T) {
	cfg := &config.File{}
	cfg.Pitch.Type = "statsbomb"
	cfg.Output.Title = "Passes"
	cfg.Output.Arcs = []config.Arc{{Placement: "right", Radius: 10}}

	buf := &bytes.Buffer{}
	err := render(buf, cfg, "pdf")
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"%PDF-1.4", "/Title (Passes)", "%%EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestRenderInvalidArc(t *testing.T) {
	cfg := &config.File{}
	cfg.Output.Arcs = []config.Arc{{Placement: "top", Radius: 10}}
	err := render(&bytes.Buffer{}, cfg, "png")
	var placeErr *pitch.InvalidPlacementError
	if !errors.As(err, &placeErr) {
		t.Errorf("expected InvalidPlacementError, got %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "pitch.png")
	cfg := &config.File{}
	cfg.Output.Width = 200
	err := writeFile(good, cfg, "png")
	if err != nil {
		t.Fatal(err)
	}
	fd, err := os.Open(good)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	if _, err := png.Decode(fd); err != nil {
		t.Errorf("invalid PNG: %v", err)
	}

	// a failed rendering leaves no partial file behind
	bad := filepath.Join(dir, "bad.svg")
	cfg.Output.Arcs = []config.Arc{{Placement: "top", Radius: 10}}
	err = writeFile(bad, cfg, "svg")
	var placeErr *pitch.InvalidPlacementError
	if !errors.As(err, &placeErr) {
		t.Errorf("expected InvalidPlacementError, got %v", err)
	}
	if _, err := os.Stat(bad); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("output file not removed: %v", err)
	}

	missing := filepath.Join(dir, "no-such-dir", "out.png")
	if err := writeFile(missing, &config.File{}, "png"); err == nil {
		t.Error("writing into a missing directory succeeded")
	}
}

func TestArcList(t *testing.T) {
	var a arcList
	for _, s := range []string{"left:10", "right:9.15"} {
		err := a.Set(s)
		if err != nil {
			t.Fatal(err)
		}
	}
	if got := a.String(); got != "left:10,right:9.15" {
		t.Errorf("got %q", got)
	}
	if err := a.Set("left"); err == nil {
		t.Error("missing radius not detected")
	}
}
