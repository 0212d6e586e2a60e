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

// Package dims describes the coordinate conventions used by different
// providers of football event and tracking data.
//
// Every provider uses its own coordinate system for the pitch: StatsBomb
// uses a 120x80 grid with the y-axis pointing down, Opta uses percentages
// in both directions, Tracab measures centimetres from the centre spot, and
// so on.  A [Spec] collects the bounds of such a coordinate system, together
// with the positions of all pitch markings expressed in the same units.
//
// Use [Get] to obtain the Spec for a named standard:
//
//	spec, err := dims.Get("statsbomb", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
package dims

import (
	"maps"
	"math"
	"slices"
)

// ArcScale selects how real-world distances are converted into the
// coordinate units of a standard.
type ArcScale int

const (
	// ArcScaleCoordinates converts distances using the nominal Length and
	// Width of the coordinate system, multiplied by UnitScale.
	ArcScaleCoordinates ArcScale = iota

	// ArcScalePitchSize converts distances using the real-world PitchLength
	// and PitchWidth.  This is used for normalised coordinate systems.
	ArcScalePitchSize
)

// Spec describes one pitch dimension standard.
//
// A Spec is created by [Get] and must not be modified afterwards.
// It is safe to share a Spec between several pitches.
type Spec struct {
	// Left, Right, Bottom and Top are the coordinates of the touchlines and
	// goal lines.  If InvertY is set, Bottom is numerically larger than Top.
	Left, Right, Bottom, Top float64

	// Length and Width give the nominal extent of the coordinate system.
	Length, Width float64

	// PitchLength and PitchWidth give the real-world size of the pitch in
	// metres.
	PitchLength, PitchWidth float64

	// Aspect is the ratio of a y-unit to an x-unit on the real pitch.
	Aspect float64

	InvertY      bool
	OriginCenter bool

	CenterLength float64 // x-coordinate of the halfway line
	CenterWidth  float64 // y-coordinate of the centre spot

	// UnitScale is the number of coordinate units per metre of the nominal
	// size, for example 100 for standards measured in centimetres.
	UnitScale float64
	ArcScale  ArcScale

	// DefaultPad is the padding used around the pitch, if no padding is
	// specified explicitly.
	DefaultPad float64

	GoalWidth           float64
	GoalLength          float64
	SixYardWidth        float64
	SixYardLength       float64
	PenaltyAreaWidth    float64
	PenaltyAreaLength   float64
	PenaltySpotDistance float64
	CircleDiameter      float64
	CornerDiameter      float64

	GoalBottom, GoalTop               float64
	SixYardLeft, SixYardRight         float64
	SixYardBottom, SixYardTop         float64
	PenaltyAreaLeft, PenaltyAreaRight float64
	PenaltyAreaBottom, PenaltyAreaTop float64
	PenaltyLeft, PenaltyRight         float64

	// ArcAngle is the half-angle, in degrees, of the arc at the edge of
	// the penalty area.
	ArcAngle float64

	// StripeLocations lists the x-coordinates where the mown grass stripes
	// change.  The values are strictly increasing.
	StripeLocations []float64
}

// Options can be used to specify the size of pitches for standards where
// the coordinate system depends on the pitch size.
type Options struct {
	PitchLength float64 // in metres, default 105
	PitchWidth  float64 // in metres, default 68
}

const (
	defaultPitchLength = 105.0
	defaultPitchWidth  = 68.0
)

// Get returns the Spec for the standard with the given name.
// The options are only used for standards where the pitch size varies,
// nil selects a 105x68 metre pitch.
//
// If the name is not known, an [*UnknownPitchTypeError] is returned.
func Get(name string, opt *Options) (*Spec, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, &UnknownPitchTypeError{Name: name, Valid: Names()}
	}

	length, width := float64(defaultPitchLength), float64(defaultPitchWidth)
	if opt != nil {
		if opt.PitchLength != 0 {
			length = opt.PitchLength
		}
		if opt.PitchWidth != 0 {
			width = opt.PitchWidth
		}
	}
	if !(length > 0 && width > 0) || math.IsInf(length, 0) || math.IsInf(width, 0) {
		return nil, &InvalidSizeError{Length: length, Width: width}
	}

	s := ctor(length, width)
	s.setup()
	return s, nil
}

// Names returns the names of all supported standards, in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// VariableSize reports whether the coordinate system of the named standard
// depends on the size of the pitch.
func VariableSize(name string) bool {
	return slices.Contains(variableSize, name)
}

// setup fills in the fields which can be derived from the bounds and the
// marking sizes.
func (s *Spec) setup() {
	ySign := 1.0
	if s.InvertY {
		ySign = -1
	}

	s.CenterLength = (s.Left + s.Right) / 2
	s.CenterWidth = (s.Bottom + s.Top) / 2

	s.GoalBottom = s.CenterWidth - ySign*s.GoalWidth/2
	s.GoalTop = s.CenterWidth + ySign*s.GoalWidth/2

	s.SixYardLeft = s.Left + s.SixYardLength
	s.SixYardRight = s.Right - s.SixYardLength
	s.SixYardBottom = s.CenterWidth - ySign*s.SixYardWidth/2
	s.SixYardTop = s.CenterWidth + ySign*s.SixYardWidth/2

	s.PenaltyAreaLeft = s.Left + s.PenaltyAreaLength
	s.PenaltyAreaRight = s.Right - s.PenaltyAreaLength
	s.PenaltyAreaBottom = s.CenterWidth - ySign*s.PenaltyAreaWidth/2
	s.PenaltyAreaTop = s.CenterWidth + ySign*s.PenaltyAreaWidth/2

	s.PenaltyLeft = s.Left + s.PenaltySpotDistance
	s.PenaltyRight = s.Right - s.PenaltySpotDistance

	s.ArcAngle = 0
	if r := s.CircleDiameter / 2; r > 0 {
		c := (s.PenaltyAreaLength - s.PenaltySpotDistance) / r
		c = max(-1, min(1, c))
		s.ArcAngle = math.Acos(c) * 180 / math.Pi
	}

	s.StripeLocations = stripeLocations(s)
}

// stripeLocations splits the pitch into 15 bands: one for each six-yard box,
// one for each part of the penalty areas outside the six-yard boxes, and
// eleven equal bands in between.
func stripeLocations(s *Spec) []float64 {
	const inner = 11

	res := make([]float64, 0, inner+5)
	res = append(res, s.Left, s.SixYardLeft, s.PenaltyAreaLeft)
	step := (s.PenaltyAreaRight - s.PenaltyAreaLeft) / inner
	for i := 1; i < inner; i++ {
		res = append(res, s.PenaltyAreaLeft+float64(i)*step)
	}
	res = append(res, s.PenaltyAreaRight, s.SixYardRight, s.Right)
	return res
}

// XLimits returns the smaller and larger x-coordinate of the pitch.
func (s *Spec) XLimits() (float64, float64) {
	return min(s.Left, s.Right), max(s.Left, s.Right)
}

// YLimits returns the smaller and larger y-coordinate of the pitch.
func (s *Spec) YLimits() (float64, float64) {
	return min(s.Bottom, s.Top), max(s.Bottom, s.Top)
}
