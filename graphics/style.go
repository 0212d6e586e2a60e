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
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Style describes how an object is painted.
type Style struct {
	Fill   color.Color // nil means no fill
	Stroke color.Color // nil means no outline

	// LineWidth is the width of outlines, in device pixels.
	LineWidth float64

	// Alpha is the opacity of the object.  The zero value is treated as 1,
	// i.e. fully opaque.
	Alpha float64

	// ZOrder controls the drawing order.  Objects with larger values are
	// drawn on top.
	ZOrder float64

	// FontSize is the size of text labels, in device pixels.
	FontSize float64

	// Label, if set, is attached to the object as a tooltip in SVG output.
	Label string
}

// Opacity returns the effective opacity of the style, in the range [0, 1].
func (s *Style) Opacity() float64 {
	if s.Alpha <= 0 {
		return 1
	}
	return min(s.Alpha, 1)
}

// Apply returns c with the opacity of the style applied.
// If c is nil, nil is returned.
func (s *Style) Apply(c color.Color) color.Color {
	if c == nil {
		return nil
	}
	alpha := s.Opacity()
	if alpha == 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}

// ColorError is returned by [ParseColor] if a colour specification cannot
// be parsed.
type ColorError struct {
	Value string
}

func (err *ColorError) Error() string {
	return "invalid colour " + strconv.Quote(err.Value)
}

// extraColors are colour names in addition to the SVG colour keywords.
var extraColors = map[string]color.NRGBA{
	"grass": {25, 89, 5, 255},
}

// ParseColor converts a colour specification to a colour.
// Valid specifications are "#rgb", "#rrggbb", "#rrggbbaa", the SVG colour
// keywords, "grass", and "none".  For "none", nil is returned.
func ParseColor(s string) (color.Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "none" {
		return nil, nil
	}
	if c, ok := extraColors[key]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[key]; ok {
		return color.NRGBAModel.Convert(c), nil
	}

	hex, ok := strings.CutPrefix(key, "#")
	if !ok {
		return nil, &ColorError{Value: s}
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, &ColorError{Value: s}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, &ColorError{Value: s}
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
