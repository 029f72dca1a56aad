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

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a vertex in homogeneous coordinates.  For affine points W is 1;
// nothing in this package renormalizes W.
type Point struct {
	X, Y, W float64
}

// Pt returns the affine point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y, W: 1}
}

// FromVec converts a vector to an affine point.
func FromVec(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y, W: 1}
}

// Vec returns the x and y coordinates of p.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Pixel returns the pixel nearest to p.
func (p Point) Pixel() Pixel {
	return Pixel{X: round(p.X), Y: round(p.Y)}
}

// Pixel is a point on the integer grid, as produced by the rasterizers.
type Pixel struct {
	X, Y int
}

// Point converts the pixel back to an affine point.
func (p Pixel) Point() Point {
	return Pt(float64(p.X), float64(p.Y))
}

// RGB is a display color with components in the range [0, 1].
// RGB implements [image/color.Color].
type RGB struct {
	R, G, B float64
}

// White is the default display color.
var White = RGB{R: 1, G: 1, B: 1}

// RGBA implements the [image/color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return channel(c.R), channel(c.G), channel(c.B), 0xffff
}

func channel(v float64) uint32 {
	v = min(max(v, 0), 1)
	return uint32(math.Round(v * 0xffff))
}

// checkFinite returns an error wrapping ErrInvalidArgument if a
// coordinate of one of the points is NaN or infinite.
func checkFinite(pts ...Point) error {
	for i, p := range pts {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("point %d (%g, %g): %w", i, p.X, p.Y, ErrInvalidArgument)
		}
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// round returns the integer nearest to x, rounding half away from zero.
func round(x float64) int {
	return int(math.Round(x))
}
