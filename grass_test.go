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
	"bytes"
	"image"
	"testing"

	"seehuhn.de/go/pitch/dims"
)

func TestGrassDeterministic(t *testing.T) {
	a, _ := New(&Options{Type: dims.UEFA, Grass: true, Seed: 1})
	b, _ := New(&Options{Type: dims.UEFA, Grass: true, Seed: 1})
	c, _ := New(&Options{Type: dims.UEFA, Grass: true, Seed: 2})

	texA := a.GrassTexture()
	if !bytes.Equal(texA.Pix, b.GrassTexture().Pix) {
		t.Error("equal seeds give different textures")
	}
	if bytes.Equal(texA.Pix, c.GrassTexture().Pix) {
		t.Error("different seeds give equal textures")
	}
	if texA.Rect != image.Rect(0, 0, grassResolution, grassResolution) {
		t.Errorf("texture size %v", texA.Rect)
	}
}

func TestGrassBands(t *testing.T) {
	for _, o := range orientations {
		p, err := New(&Options{Type: dims.UEFA, Orientation: o, Grass: true})
		if err != nil {
			t.Fatal(err)
		}
		bands := p.grassBands()
		if len(bands) != 8 {
			t.Errorf("%s: %d bands, want 8", o, len(bands))
		}

		tex := p.GrassTexture()
		in := make([]bool, len(tex.Pix))
		for _, b := range bands {
			for row := b.Min.Y; row < b.Max.Y; row++ {
				for col := b.Min.X; col < b.Max.X; col++ {
					in[row*grassResolution+col] = true
				}
			}
		}
		var sum [2]float64
		var n [2]int
		for i, g := range tex.Pix {
			k := 0
			if in[i] {
				k = 1
			}
			sum[k] += float64(g)
			n[k]++
		}
		if n[0] == 0 || n[1] == 0 {
			t.Fatalf("%s: no pixels inside or outside the bands", o)
		}
		outside, inside := sum[0]/float64(n[0]), sum[1]/float64(n[1])
		if inside < outside+40 {
			t.Errorf("%s: mean brightness %.1f inside bands, %.1f outside", o, inside, outside)
		}
	}
}

func TestGrassImageColor(t *testing.T) {
	p, err := New(&Options{Type: dims.UEFA, Grass: true})
	if err != nil {
		t.Fatal(err)
	}
	img := p.grassImage()
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("pixel %d has alpha %d", i/4, img.Pix[i])
		}
	}
	// the texture varies the brightness around the grass colour
	var maxG uint8
	for i := 1; i < len(img.Pix); i += 4 {
		maxG = max(maxG, img.Pix[i])
	}
	if maxG <= 89 {
		t.Errorf("green channel never exceeds %d", maxG)
	}
}
