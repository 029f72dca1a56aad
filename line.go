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

import "math"

// LineBresenham returns the 8-connected pixel path from p0 to p1, including
// both endpoints, computed with integer arithmetic only.  The endpoints are
// first rounded to the nearest pixel.
//
// The path is walked along the major axis in increasing order: in
// increasing x when |Δy| ≤ |Δx|, and in increasing y for steep lines.
// The endpoints are swapped internally when necessary, so the first pixel
// of the result is not always p0.  The endpoints must be finite; [NewLine]
// checks this.
func LineBresenham(p0, p1 Point) []Pixel {
	a, b := p0.Pixel(), p1.Pixel()
	if abs(b.Y-a.Y) > abs(b.X-a.X) {
		pix := bresenham(transpose(a), transpose(b))
		for i, p := range pix {
			pix[i] = transpose(p)
		}
		return pix
	}
	return bresenham(a, b)
}

// bresenham rasterizes a segment with |Δy| ≤ |Δx|, stepping x by one in
// each iteration.
func bresenham(a, b Pixel) []Pixel {
	if a.X > b.X {
		a, b = b, a
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	yStep := 1
	if dy < 0 {
		dy = -dy
		yStep = -1
	}

	d := 2*dy - dx
	const1 := 2 * dy        // increment if y stays
	const2 := 2 * (dy - dx) // increment if y advances

	pix := make([]Pixel, 0, dx+1)
	x, y := a.X, a.Y
	pix = append(pix, Pixel{X: x, Y: y})
	for x < b.X {
		x++
		if d < 0 {
			d += const1
		} else {
			y += yStep
			d += const2
		}
		pix = append(pix, Pixel{X: x, Y: y})
	}
	return pix
}

func transpose(p Pixel) Pixel {
	return Pixel{X: p.Y, Y: p.X}
}

// LineDDA returns the pixels of the segment from p0 to p1 using the
// digital differential analyzer: the segment is divided into
// n = ⌈max(|Δx|, |Δy|)⌉ steps, the coordinates are advanced by Δx/n and
// Δy/n in floating point, and each position is rounded to the nearest
// pixel.  The result starts at p0 and has n+1 elements.
//
// If p0 and p1 coincide, the result is the single pixel nearest to p0.
// The endpoints must be finite.
func LineDDA(p0, p1 Point) []Pixel {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	n := int(math.Ceil(max(math.Abs(dx), math.Abs(dy)) - stepTolerance))
	if n == 0 {
		return []Pixel{p0.Pixel()}
	}

	xInc := dx / float64(n)
	yInc := dy / float64(n)

	pix := make([]Pixel, 0, n+1)
	x, y := p0.X, p0.Y
	pix = append(pix, Pixel{X: round(x), Y: round(y)})
	for range n {
		x += xInc
		y += yInc
		pix = append(pix, Pixel{X: round(x), Y: round(y)})
	}
	return pix
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// stepTolerance keeps rounding noise in the endpoints, for example after a
// full rotation, from adding a DDA step.
const stepTolerance = 1e-9
