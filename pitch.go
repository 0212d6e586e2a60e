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
	"image/color"
	"strings"

	"seehuhn.de/go/pitch/dims"
)

// GoalType selects how the goals are drawn.
type GoalType int

// These are the supported goal types.
const (
	GoalBox GoalType = iota
	GoalLine
	GoalNone
)

// ParseGoalType converts "box", "line" or "none" to a GoalType.
func ParseGoalType(s string) (GoalType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "box", "":
		return GoalBox, nil
	case "line":
		return GoalLine, nil
	case "none":
		return GoalNone, nil
	default:
		return 0, &InvalidGoalTypeError{Value: s}
	}
}

func (g GoalType) String() string {
	switch g {
	case GoalBox:
		return "box"
	case GoalLine:
		return "line"
	case GoalNone:
		return "none"
	default:
		return "goal?"
	}
}

// Options describe a pitch.  The zero value selects a horizontal, full
// StatsBomb pitch with the default colours.
type Options struct {
	// Type is the name of the dimension standard, see [dims.Names].
	// The default is "statsbomb".
	Type string

	// PitchLength and PitchWidth give the size of the pitch in metres, for
	// standards where this affects the coordinate system.
	PitchLength, PitchWidth float64

	Orientation Orientation
	Half        bool

	// Pad is the padding around the pitch, see [Padding].
	// If this is nil, the default padding of the standard is used on all
	// sides.
	Pad *Padding

	PitchColor  color.Color // default white
	LineColor   color.Color // default black
	StripeColor color.Color // default light green

	// Stripe enables alternating bands of colour on the pitch.
	Stripe bool

	// Grass replaces the plain background by a grass texture.
	Grass bool

	// LineWidth is the width of the pitch markings, in device pixels.
	// The default is 2.
	LineWidth float64

	// LineAlpha is the opacity of the pitch markings.  The zero value
	// means fully opaque.
	LineAlpha float64

	GoalType   GoalType
	CornerArcs bool

	// Seed initialises the random noise of the grass texture.
	Seed uint64
}

// Default colours of the pitch.
var (
	DefaultPitchColor  color.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	DefaultLineColor   color.Color = color.NRGBA{A: 255}
	DefaultStripeColor color.Color = color.NRGBA{R: 0xc2, G: 0xd5, B: 0x9d, A: 255}
	DefaultGrassColor  color.Color = color.NRGBA{R: 25, G: 89, B: 5, A: 255}
)

// Z-order of the different layers of a pitch drawing.
const (
	zBackground = -3
	zStripes    = -2
	zLines      = -1
)

// Pitch is a football pitch in a given orientation.
//
// A Pitch is immutable after creation.  Drawing operations are safe to
// call concurrently on different surfaces.
type Pitch struct {
	Dim   *dims.Spec
	State *State

	opt Options
}

// New creates a new pitch.  A nil opt selects the default options.
//
// If the dimension standard is unknown, a [*dims.UnknownPitchTypeError]
// is returned.
func New(opt *Options) (*Pitch, error) {
	var o Options
	if opt != nil {
		o = *opt
	}
	if o.Type == "" {
		o.Type = dims.StatsBomb
	}

	dim, err := dims.Get(o.Type, &dims.Options{
		PitchLength: o.PitchLength,
		PitchWidth:  o.PitchWidth,
	})
	if err != nil {
		return nil, err
	}

	if o.PitchColor == nil {
		o.PitchColor = DefaultPitchColor
		if o.Grass {
			o.PitchColor = DefaultGrassColor
		}
	}
	if o.LineColor == nil {
		o.LineColor = DefaultLineColor
	}
	if o.StripeColor == nil {
		o.StripeColor = DefaultStripeColor
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 2
	}

	pad := UniformPadding(dim.DefaultPad)
	if o.Pad != nil {
		pad = *o.Pad
	}

	p := &Pitch{
		Dim:   dim,
		State: ComputeExtent(dim, o.Orientation, pad, o.Half),
		opt:   o,
	}
	return p, nil
}

// Options returns a copy of the options of the pitch, with defaults
// filled in.
func (p *Pitch) Options() Options {
	return p.opt
}

// Orientation returns the orientation of the pitch.
func (p *Pitch) Orientation() Orientation {
	return p.State.Orientation
}
