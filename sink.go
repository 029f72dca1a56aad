// seehuhn.de/go/raster - a 2D rendering library
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

package raster

// Sink receives rasterized output for presentation.  Plot must not retain
// or modify the pixel slice after it returns.  Nothing is reported back
// to the caller.
type Sink interface {
	Plot(pixels []Pixel, c RGB)
}

// Display sends the pixels of all shapes to the sink, in order.
func Display(sink Sink, shapes ...Shape) {
	for _, s := range shapes {
		sink.Plot(s.Pixels(), s.Color())
	}
}
