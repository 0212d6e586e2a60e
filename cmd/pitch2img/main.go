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

// Pitch2img draws a football pitch and writes it as a PNG, SVG or PDF file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/pitch"
	"seehuhn.de/go/pitch/config"
	"seehuhn.de/go/pitch/dims"
	"seehuhn.de/go/pitch/graphics"
	"seehuhn.de/go/pitch/graphics/pdf"
	"seehuhn.de/go/pitch/graphics/raster"
	"seehuhn.de/go/pitch/graphics/svg"
)

var errTerminal = errors.New("refusing to write binary data to a terminal")

// arcList collects the values of repeated -arc flags.
type arcList []config.Arc

func (a *arcList) String() string {
	parts := make([]string, len(*a))
	for i, arc := range *a {
		parts[i] = arc.String()
	}
	return strings.Join(parts, ",")
}

func (a *arcList) Set(s string) error {
	arc, err := config.ParseArc(s)
	if err != nil {
		return err
	}
	*a = append(*a, arc)
	return nil
}

func main() {
	configFile := flag.String("config", "", "YAML style file")
	pitchType := flag.String("type", "",
		"dimension standard ("+strings.Join(dims.Names(), ", ")+")")
	vertical := flag.Bool("vertical", false, "draw a vertical pitch")
	half := flag.Bool("half", false, "draw only one half of the pitch")
	width := flag.Float64("width", config.DefaultWidth, "image width in pixels")
	var arcs arcList
	flag.Var(&arcs, "arc", "draw an arc around a goal, as placement:radius (repeatable)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] out.png|out.svg|out.pdf|-\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	outputFile := flag.Arg(0)

	cfg := &config.File{}
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	// command line flags take precedence over the style file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			cfg.Pitch.Type = *pitchType
		case "vertical":
			cfg.Pitch.Orientation = pitch.Horizontal.String()
			if *vertical {
				cfg.Pitch.Orientation = pitch.Vertical.String()
			}
		case "half":
			cfg.Pitch.Half = *half
		case "width":
			cfg.Output.Width = *width
		case "arc":
			cfg.Output.Arcs = arcs
		}
	})

	format := outputFormat(cfg.Output.Format, outputFile)

	if outputFile == "-" {
		if format != "svg" && term.IsTerminal(int(os.Stdout.Fd())) {
			log.Fatal(errTerminal)
		}
		err := render(os.Stdout, cfg, format)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	err := writeFile(outputFile, cfg, format)
	if err != nil {
		log.Fatal(err)
	}
}

// writeFile renders the image into the named file.  If rendering or closing
// the file fails, the file is removed.
func writeFile(fname string, cfg *config.File, format string) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := fd.Close()
		if err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(fname)
		}
	}()

	return render(fd, cfg, format)
}

// outputFormat determines the image format.  An explicit format wins over
// the file name extension, and PNG is used if neither is given.
func outputFormat(format, fname string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".svg", ".pdf":
		return ext[1:]
	}
	return "png"
}

// render draws the pitch described by cfg, and writes the image to w.
func render(w io.Writer, cfg *config.File, format string) error {
	opt, err := cfg.Options()
	if err != nil {
		return err
	}
	p, err := pitch.New(opt)
	if err != nil {
		return err
	}

	list := &graphics.List{}
	p.Draw(list)
	for _, arc := range cfg.Output.Arcs {
		_, err := p.ArcAroundGoal(list, arc.Radius, arc.Placement, graphics.Style{})
		if err != nil {
			return err
		}
	}

	vp := p.State.Viewport(cfg.Output.ImageWidth())
	lang, err := cfg.Output.Language()
	if err != nil {
		return err
	}
	switch format {
	case "svg":
		return svg.Write(w, list, vp, &svg.Options{
			Title:      cfg.Output.Title,
			Lang:       lang,
			Background: color.White,
		})
	case "pdf":
		return pdf.Write(w, list, vp, &pdf.Options{
			Title:      cfg.Output.Title,
			Lang:       lang,
			Background: color.White,
		})
	default:
		img := raster.Render(list, vp, color.White)
		return png.Encode(w, img)
	}
}
