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

// Package config reads pitch style files.
//
// A style file is a YAML document with two sections: "pitch" describes the
// pitch itself and "output" describes the rendered image.  Example:
//
//	pitch:
//	  type: uefa
//	  orientation: vertical
//	  stripe: true
//	  line_color: "#ffffff"
//	  pitch_color: grass
//	output:
//	  width: 600
//	  format: svg
//	  arcs:
//	    - placement: bottom
//	      radius: 20
//
// Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/pitch"
	"seehuhn.de/go/pitch/graphics"
)

// File is the contents of a style file.
type File struct {
	Pitch  Pitch  `yaml:"pitch"`
	Output Output `yaml:"output"`
}

// Pitch describes the pitch.  Colours are given in the format accepted by
// [graphics.ParseColor].
type Pitch struct {
	Type        string   `yaml:"type,omitempty"`
	PitchLength float64  `yaml:"pitch_length,omitempty"`
	PitchWidth  float64  `yaml:"pitch_width,omitempty"`
	Orientation string   `yaml:"orientation,omitempty"`
	Half        bool     `yaml:"half,omitempty"`
	Pad         *Padding `yaml:"pad,omitempty"`

	PitchColor  string `yaml:"pitch_color,omitempty"`
	LineColor   string `yaml:"line_color,omitempty"`
	StripeColor string `yaml:"stripe_color,omitempty"`

	Stripe     bool    `yaml:"stripe,omitempty"`
	Grass      bool    `yaml:"grass,omitempty"`
	LineWidth  float64 `yaml:"line_width,omitempty"`
	LineAlpha  float64 `yaml:"line_alpha,omitempty"`
	GoalType   string  `yaml:"goal_type,omitempty"`
	CornerArcs bool    `yaml:"corner_arcs,omitempty"`
	Seed       uint64  `yaml:"seed,omitempty"`
}

// Padding gives the space around the pitch, see [pitch.Padding].
type Padding struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
}

// Output describes the rendered image.
type Output struct {
	// Width is the image width in pixels.  The height follows from the
	// aspect ratio of the pitch.
	Width  float64 `yaml:"width,omitempty"`
	Format string  `yaml:"format,omitempty"`
	Title  string  `yaml:"title,omitempty"`
	Lang   string  `yaml:"lang,omitempty"`
	Arcs   []Arc   `yaml:"arcs,omitempty"`
}

// Arc is an arc around one of the goals, see [pitch.Pitch.ArcAroundGoal].
type Arc struct {
	Placement string  `yaml:"placement"`
	Radius    float64 `yaml:"radius"`
}

// DefaultWidth is the image width used if none is given.
const DefaultWidth = 800

// Error is returned if a style file cannot be read or is invalid.
type Error struct {
	Path string
	Err  error
}

func (err *Error) Error() string {
	path := err.Path
	if path == "" {
		path = "<input>"
	}
	return path + ": " + err.Err.Error()
}

func (err *Error) Unwrap() error {
	return err.Err
}

var errFormat = errors.New(`output format must be "png", "svg" or "pdf"`)

// Decode reads a style file from r.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	f := &File{}
	err := dec.Decode(f)
	if err == io.EOF {
		// an empty file selects all defaults
		err = nil
	}
	if err != nil {
		return nil, &Error{Err: err}
	}
	if err := f.check(); err != nil {
		return nil, &Error{Err: err}
	}
	return f, nil
}

// Load reads the style file with the given name.
func Load(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	defer fd.Close()

	f, err := Decode(fd)
	if e, ok := err.(*Error); ok {
		e.Path = path
	}
	return f, err
}

// Encode writes the style file to w.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(f)
	if err != nil {
		return err
	}
	return enc.Close()
}

func (f *File) check() error {
	opt, err := f.Options()
	if err != nil {
		return err
	}
	_, err = pitch.New(opt)
	if err != nil {
		return err
	}
	_, err = f.Output.Language()
	if err != nil {
		return err
	}
	switch strings.ToLower(f.Output.Format) {
	case "", "png", "svg", "pdf":
	default:
		return errFormat
	}
	if f.Output.Width < 0 || math.IsNaN(f.Output.Width) {
		return fmt.Errorf("invalid output width %g", f.Output.Width)
	}
	return nil
}

// Options converts the pitch section to options for [pitch.New].
func (f *File) Options() (*pitch.Options, error) {
	c := &f.Pitch
	o, err := pitch.ParseOrientation(c.Orientation)
	if err != nil {
		return nil, err
	}
	goal, err := pitch.ParseGoalType(c.GoalType)
	if err != nil {
		return nil, err
	}

	opt := &pitch.Options{
		Type:        c.Type,
		PitchLength: c.PitchLength,
		PitchWidth:  c.PitchWidth,
		Orientation: o,
		Half:        c.Half,
		Stripe:      c.Stripe,
		Grass:       c.Grass,
		LineWidth:   c.LineWidth,
		LineAlpha:   c.LineAlpha,
		GoalType:    goal,
		CornerArcs:  c.CornerArcs,
		Seed:        c.Seed,
	}
	if c.Pad != nil {
		opt.Pad = &pitch.Padding{
			Left:   c.Pad.Left,
			Right:  c.Pad.Right,
			Bottom: c.Pad.Bottom,
			Top:    c.Pad.Top,
		}
	}

	colors := []struct {
		spec string
		dest *color.Color
	}{
		{c.PitchColor, &opt.PitchColor},
		{c.LineColor, &opt.LineColor},
		{c.StripeColor, &opt.StripeColor},
	}
	for _, col := range colors {
		if col.spec == "" {
			continue
		}
		*col.dest, err = graphics.ParseColor(col.spec)
		if err != nil {
			return nil, err
		}
	}

	return opt, nil
}

// Language returns the document language of the output.
// If no language is set, [language.Und] is returned.
func (o *Output) Language() (language.Tag, error) {
	if o.Lang == "" {
		return language.Und, nil
	}
	return language.Parse(o.Lang)
}

// ImageWidth returns the output width, using [DefaultWidth] if none is set.
func (o *Output) ImageWidth() float64 {
	if o.Width > 0 {
		return o.Width
	}
	return DefaultWidth
}

// ParseArc converts an arc specification of the form "placement:radius",
// for example "left:10", to an Arc.
func ParseArc(s string) (Arc, error) {
	placement, radius, ok := strings.Cut(s, ":")
	if !ok {
		return Arc{}, fmt.Errorf("arc %q: expected placement:radius", s)
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(radius), 64)
	if err != nil {
		return Arc{}, fmt.Errorf("arc %q: %w", s, err)
	}
	return Arc{Placement: strings.TrimSpace(placement), Radius: r}, nil
}

func (a Arc) String() string {
	return a.Placement + ":" + strconv.FormatFloat(a.Radius, 'g', -1, 64)
}
