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

import "fmt"

// CircleBresenham rasterizes the circle of the given radius around center
// with the midpoint algorithm.  One octant is computed, starting at
// (0, radius) with decision variable d = 1-radius, and every step is
// reflected into all eight octants.  Reflections which coincide (on the
// axes and on the diagonals) are emitted only once.
//
// The center is rounded to the nearest pixel.  For radius 0 the result
// is the center pixel.  A negative radius or a non-finite center gives
// ErrInvalidArgument.
func CircleBresenham(center Point, radius int) ([]Pixel, error) {
	if radius < 0 {
		return nil, fmt.Errorf("circle radius %d: %w", radius, ErrInvalidArgument)
	}
	if err := checkFinite(center); err != nil {
		return nil, fmt.Errorf("circle center: %w", err)
	}

	c := center.Pixel()
	seen := make(map[Pixel]struct{}, 8*radius+1)
	pix := make([]Pixel, 0, 8*radius+1)
	plot := func(x, y int) {
		for _, p := range [8]Pixel{
			{c.X + x, c.Y + y},
			{c.X + y, c.Y + x},
			{c.X + y, c.Y - x},
			{c.X + x, c.Y - y},
			{c.X - x, c.Y - y},
			{c.X - y, c.Y - x},
			{c.X - y, c.Y + x},
			{c.X - x, c.Y + y},
		} {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			pix = append(pix, p)
		}
	}

	x, y := 0, radius
	d := 1 - radius
	plot(x, y)
	for x < y {
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
		if x > y {
			break
		}
		plot(x, y)
	}
	return pix, nil
}
