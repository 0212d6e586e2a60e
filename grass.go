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
	"image"
	"image/color"
	"math"
	"math/rand/v2"
)

// GrassTexture returns the brightness of the grass background, as a square
// raster which covers the extent of the drawing.  Row 0 is at the top of the
// drawing.
//
// The texture consists of smoothed random noise, with every other band
// between the stripe locations of the dimension lightened.  The noise is
// determined by the Seed option, so that equal options give equal textures.
func (p *Pitch) GrassTexture() *image.Gray {
	const n = grassResolution

	field := make([]float64, n*n)
	rng := rand.New(rand.NewPCG(p.opt.Seed, 0x9e3779b97f4a7c15))
	for i := range field {
		field[i] = rng.NormFloat64()
	}
	field = smooth(field, n, 4)

	for _, b := range p.grassBands() {
		for row := b.Min.Y; row < b.Max.Y; row++ {
			for col := b.Min.X; col < b.Max.X; col++ {
				field[row*n+col] += 2
			}
		}
	}

	img := image.NewGray(image.Rect(0, 0, n, n))
	for i, v := range field {
		img.Pix[i] = uint8(max(0, min(255, 96+40*v)))
	}
	return img
}

// grassBands returns the areas of the texture raster which belong to the
// shaded stripes.
func (p *Pitch) grassBands() []image.Rectangle {
	const n = grassResolution
	st := p.State
	e := st.Extent
	loc := p.Dim.StripeLocations

	var res []image.Rectangle
	for i := 0; i+1 < len(loc); i += 2 {
		lo, hi := loc[i], loc[i+1]
		var r image.Rectangle
		if st.Vertical {
			total := e[3] - e[2]
			if !inRange(lo, e[2], e[3]) && !inRange(hi, e[2], e[3]) {
				continue
			}
			r = image.Rect(
				st.GrassStripeStart, n-int((min(hi, e[3])-e[2])/total*n),
				st.GrassStripeEnd, n-int((max(lo, e[2])-e[2])/total*n))
		} else {
			total := e[1] - e[0]
			if !inRange(lo, e[0], e[1]) && !inRange(hi, e[0], e[1]) {
				continue
			}
			r = image.Rect(
				int((max(lo, e[0])-e[0])/total*n), st.GrassStripeStart,
				int((min(hi, e[1])-e[0])/total*n), st.GrassStripeEnd)
		}
		r = r.Intersect(image.Rect(0, 0, n, n))
		if !r.Empty() {
			res = append(res, r)
		}
	}
	return res
}

func inRange(x, lo, hi float64) bool {
	return lo <= x && x <= hi
}

// smooth applies a box blur of the given radius along both axes, three
// times.  This approximates a Gaussian filter.
func smooth(field []float64, n, radius int) []float64 {
	tmp := make([]float64, len(field))
	for range 3 {
		boxBlur(tmp, field, n, radius, 1, n)
		boxBlur(field, tmp, n, radius, n, 1)
	}
	// box blurs reduce the variance, restore it approximately
	scale := math.Sqrt(float64(2*radius + 1))
	for i := range field {
		field[i] *= scale
	}
	return field
}

// boxBlur averages src over windows of 2*radius+1 samples along one axis
// and stores the result in dst.  Along the axis, neighbouring samples are
// step apart; lines of samples are stride apart.
func boxBlur(dst, src []float64, n, radius, step, stride int) {
	w := float64(2*radius + 1)
	for line := range n {
		base := line * stride
		var sum float64
		for k := -radius; k <= radius; k++ {
			sum += src[base+clampInt(k, 0, n-1)*step]
		}
		for i := range n {
			dst[base+i*step] = sum / w
			out := clampInt(i-radius, 0, n-1)
			in := clampInt(i+radius+1, 0, n-1)
			sum += src[base+in*step] - src[base+out*step]
		}
	}
}

// grassImage colours the grass texture using the pitch colour.
func (p *Pitch) grassImage() *image.NRGBA {
	tex := p.GrassTexture()
	base := color.NRGBAModel.Convert(p.opt.PitchColor).(color.NRGBA)

	img := image.NewNRGBA(tex.Rect)
	for i, g := range tex.Pix {
		f := 0.7 + 0.5*float64(g)/255
		img.Pix[4*i+0] = scaleChannel(base.R, f)
		img.Pix[4*i+1] = scaleChannel(base.G, f)
		img.Pix[4*i+2] = scaleChannel(base.B, f)
		img.Pix[4*i+3] = base.A
	}
	return img
}

func scaleChannel(c uint8, f float64) uint8 {
	return uint8(max(0, min(255, float64(c)*f+0.5)))
}
