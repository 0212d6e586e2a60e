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

// Package pitch draws football pitches and match events.
//
// A [Pitch] combines the coordinate conventions of a data provider (see
// [seehuhn.de/go/pitch/dims]) with an [Orientation] and a padding.  From
// these, [ComputeExtent] derives a [State], which describes where the pitch
// appears in drawing space: the extent of the drawing, the visible part of
// the pitch, the aspect ratio of the drawing, and the regions used for
// stripes, binned statistics and density plots.
//
// All drawing methods take coordinates in the units of the data provider
// ("pitch space").  For vertical pitches the axes are swapped internally,
// so that callers never need to special-case the orientation:
//
//	p, err := pitch.New(&pitch.Options{Type: "statsbomb", Orientation: pitch.Vertical})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	list := &graphics.List{}
//	p.Draw(list)
//	_, err = p.Scatter(list, shotX, shotY, 8, graphics.Style{Fill: color.Black})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img := raster.Render(list, p.State.Viewport(800), color.White)
//
// The resulting [graphics.List] can be rendered using the packages
// [seehuhn.de/go/pitch/graphics/raster] and [seehuhn.de/go/pitch/graphics/svg].
package pitch
