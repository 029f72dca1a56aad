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

package display

import (
	"bufio"
	"io"

	"seehuhn.de/go/raster"
)

// ramp maps brightness to characters, from dark to bright.
const ramp = " .:-=+*#%@"

// Text is a [raster.Sink] which renders pixels as characters, for display
// on a terminal.  Brighter colors use denser characters.
type Text struct {
	width, height int
	cells         []byte
}

// NewText returns an empty character grid of the given size.
func NewText(width, height int) *Text {
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = ramp[0]
	}
	return &Text{width: width, height: height, cells: cells}
}

// Plot implements the [raster.Sink] interface.
func (t *Text) Plot(pixels []raster.Pixel, c raster.RGB) {
	ch := ramp[len(ramp)-1]
	if l := luminance(c); l < 1 {
		ch = ramp[1+int(l*float64(len(ramp)-1))]
	}
	for _, p := range pixels {
		if p.X < 0 || p.X >= t.width || p.Y < 0 || p.Y >= t.height {
			continue
		}
		t.cells[p.Y*t.width+p.X] = ch
	}
}

// WriteTo writes the grid to w, top row first.
func (t *Text) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for y := t.height - 1; y >= 0; y-- {
		k, err := bw.Write(t.cells[y*t.width : (y+1)*t.width])
		n += int64(k)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// luminance returns the brightness of c in the range [0, 1].
func luminance(c raster.RGB) float64 {
	l := 0.299*c.R + 0.587*c.G + 0.114*c.B
	return min(max(l, 0), 1)
}
