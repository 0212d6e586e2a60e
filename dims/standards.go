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

package dims

// The names of the supported standards.
const (
	StatsBomb      = "statsbomb"
	Tracab         = "tracab"
	Opta           = "opta"
	Wyscout        = "wyscout"
	UEFA           = "uefa"
	MetricaSports  = "metricasports"
	Custom         = "custom"
	SkillCorner    = "skillcorner"
	SecondSpectrum = "secondspectrum"
	Impect         = "impect"
)

var registry = map[string]func(length, width float64) *Spec{
	StatsBomb:      statsbomb,
	Tracab:         tracab,
	Opta:           opta,
	Wyscout:        wyscout,
	UEFA:           uefa,
	MetricaSports:  metricasports,
	Custom:         custom,
	SkillCorner:    centered,
	SecondSpectrum: centered,
	Impect:         impect,
}

var variableSize = []string{Tracab, MetricaSports, Custom, SkillCorner, SecondSpectrum}

// markings gives the sizes of the pitch markings, in metres, as prescribed by
// the laws of the game.
type markings struct {
	goalWidth, goalLength             float64
	sixYardWidth, sixYardLength       float64
	penaltyAreaWidth, penaltyAreaLen  float64
	penaltySpot, circle, cornerCircle float64
}

var lawsOfTheGame = markings{
	goalWidth:        7.32,
	goalLength:       2,
	sixYardWidth:     18.32,
	sixYardLength:    5.5,
	penaltyAreaWidth: 40.32,
	penaltyAreaLen:   16.5,
	penaltySpot:      11,
	circle:           18.3,
	cornerCircle:     2,
}

// apply sets the marking sizes of s, converting lengths with xScale and
// widths with yScale.
func (m *markings) apply(s *Spec, xScale, yScale float64) {
	s.GoalWidth = m.goalWidth * yScale
	s.GoalLength = m.goalLength * xScale
	s.SixYardWidth = m.sixYardWidth * yScale
	s.SixYardLength = m.sixYardLength * xScale
	s.PenaltyAreaWidth = m.penaltyAreaWidth * yScale
	s.PenaltyAreaLength = m.penaltyAreaLen * xScale
	s.PenaltySpotDistance = m.penaltySpot * xScale
	s.CircleDiameter = m.circle * xScale
	s.CornerDiameter = m.cornerCircle * xScale
}

func statsbomb(_, _ float64) *Spec {
	return &Spec{
		Left: 0, Right: 120, Bottom: 80, Top: 0,
		Length: 120, Width: 80,
		PitchLength: defaultPitchLength, PitchWidth: defaultPitchWidth,
		Aspect:     1,
		InvertY:    true,
		UnitScale:  1,
		DefaultPad: 4,

		GoalWidth:           8,
		GoalLength:          2.4,
		SixYardWidth:        20,
		SixYardLength:       6,
		PenaltyAreaWidth:    44,
		PenaltyAreaLength:   18,
		PenaltySpotDistance: 12,
		CircleDiameter:      20,
		CornerDiameter:      2,
	}
}

func opta(_, _ float64) *Spec {
	return &Spec{
		Left: 0, Right: 100, Bottom: 0, Top: 100,
		Length: 100, Width: 100,
		PitchLength: defaultPitchLength, PitchWidth: defaultPitchWidth,
		Aspect:     float64(defaultPitchWidth) / defaultPitchLength,
		UnitScale:  1,
		DefaultPad: 4,

		GoalWidth:           9.6,
		GoalLength:          1.9,
		SixYardWidth:        26.4,
		SixYardLength:       5.8,
		PenaltyAreaWidth:    57.8,
		PenaltyAreaLength:   17,
		PenaltySpotDistance: 11.5,
		CircleDiameter:      17.7,
		CornerDiameter:      1.94,
	}
}

func wyscout(_, _ float64) *Spec {
	return &Spec{
		Left: 0, Right: 100, Bottom: 100, Top: 0,
		Length: 100, Width: 100,
		PitchLength: defaultPitchLength, PitchWidth: defaultPitchWidth,
		Aspect:     float64(defaultPitchWidth) / defaultPitchLength,
		InvertY:    true,
		UnitScale:  1,
		DefaultPad: 4,

		GoalWidth:           12,
		GoalLength:          1.9,
		SixYardWidth:        26,
		SixYardLength:       6,
		PenaltyAreaWidth:    62,
		PenaltyAreaLength:   16,
		PenaltySpotDistance: 10,
		CircleDiameter:      17.7,
		CornerDiameter:      1.94,
	}
}

func uefa(_, _ float64) *Spec {
	s := &Spec{
		Left: 0, Right: defaultPitchLength, Bottom: 0, Top: defaultPitchWidth,
		Length: defaultPitchLength, Width: defaultPitchWidth,
		PitchLength: defaultPitchLength, PitchWidth: defaultPitchWidth,
		Aspect:     1,
		UnitScale:  1,
		DefaultPad: 4,
	}
	lawsOfTheGame.apply(s, 1, 1)
	return s
}

func impect(_, _ float64) *Spec {
	s := &Spec{
		Left: -defaultPitchLength / 2, Right: defaultPitchLength / 2,
		Bottom: -defaultPitchWidth / 2, Top: defaultPitchWidth / 2,
		Length: defaultPitchLength, Width: defaultPitchWidth,
		PitchLength: defaultPitchLength, PitchWidth: defaultPitchWidth,
		Aspect:       1,
		OriginCenter: true,
		UnitScale:    1,
		DefaultPad:   4,
	}
	lawsOfTheGame.apply(s, 1, 1)
	return s
}

// custom uses metres, with the origin in the lower left corner.
func custom(length, width float64) *Spec {
	s := &Spec{
		Left: 0, Right: length, Bottom: 0, Top: width,
		Length: length, Width: width,
		PitchLength: length, PitchWidth: width,
		Aspect:     1,
		UnitScale:  1,
		DefaultPad: 4,
	}
	lawsOfTheGame.apply(s, 1, 1)
	return s
}

// centered uses metres, with the origin at the centre spot.
// This is used by SkillCorner and Second Spectrum.
func centered(length, width float64) *Spec {
	s := &Spec{
		Left: -length / 2, Right: length / 2,
		Bottom: -width / 2, Top: width / 2,
		Length: length, Width: width,
		PitchLength: length, PitchWidth: width,
		Aspect:       1,
		OriginCenter: true,
		UnitScale:    1,
		DefaultPad:   4,
	}
	lawsOfTheGame.apply(s, 1, 1)
	return s
}

// tracab uses centimetres, with the origin at the centre spot.
func tracab(length, width float64) *Spec {
	const cm = 100
	s := &Spec{
		Left: -length * cm / 2, Right: length * cm / 2,
		Bottom: -width * cm / 2, Top: width * cm / 2,
		Length: length * cm, Width: width * cm,
		PitchLength: length, PitchWidth: width,
		Aspect:       1,
		OriginCenter: true,
		UnitScale:    cm,
		DefaultPad:   4 * cm,
	}
	lawsOfTheGame.apply(s, cm, cm)
	return s
}

// metricasports uses coordinates normalised to the unit square, with the
// y-axis pointing down.
func metricasports(length, width float64) *Spec {
	s := &Spec{
		Left: 0, Right: 1, Bottom: 1, Top: 0,
		Length: 1, Width: 1,
		PitchLength: length, PitchWidth: width,
		Aspect:     width / length,
		InvertY:    true,
		UnitScale:  1,
		ArcScale:   ArcScalePitchSize,
		DefaultPad: 0.02,
	}
	lawsOfTheGame.apply(s, 1/length, 1/width)
	return s
}
