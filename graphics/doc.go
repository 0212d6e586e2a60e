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

// Package graphics provides the drawing surface used for pitch diagrams.
//
// Drawing operations are expressed in drawing coordinates, i.e. in the
// coordinate system of the pitch after the axes have been arranged for the
// chosen orientation.  A [Surface] receives these operations.  The [List]
// type implements Surface by recording all operations as [Object] values,
// which can later be rendered by the subpackages
// [seehuhn.de/go/pitch/graphics/raster] and [seehuhn.de/go/pitch/graphics/svg].
//
// A [Viewport] describes how drawing coordinates are mapped to the pixels
// of an output device.
package graphics
