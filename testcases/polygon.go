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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var polygonCases = []TestCase{
	{
		Name:   "square",
		Width:  16,
		Height: 16,
		Op:     Polygon{Vertices: rectangle(0, 0, 10, 10), Filled: true},
	},
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Op:     Polygon{Vertices: []vec.Vec2{pt(10, 10), pt(54, 10), pt(32, 50)}, Filled: true},
	},
	{
		Name:   "concave",
		Width:  300,
		Height: 220,
		Op:     Polygon{Vertices: concave(), Filled: true},
	},
	{
		Name:   "concave_outline",
		Width:  300,
		Height: 220,
		Op:     Polygon{Vertices: concave()},
	},
	{
		Name:   "star_evenodd",
		Width:  64,
		Height: 64,
		Op:     Polygon{Vertices: fivePointStar(32, 32, 25), Filled: true},
	},
	{
		Name:   "staircase",
		Width:  16,
		Height: 16,
		Op: Polygon{
			Vertices: []vec.Vec2{pt(0, 0), pt(10, 0), pt(10, 10), pt(3, 10), pt(3, 5), pt(0, 5)},
			Filled:   true,
		},
	},
}

// rectangle returns the corners of an axis-aligned rectangle,
// counter-clockwise.
func rectangle(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// concave returns a hexagon with one reflex vertex.
func concave() []vec.Vec2 {
	return []vec.Vec2{
		pt(40, 60),
		pt(140, 20),
		pt(260, 100),
		pt(260, 200),
		pt(140, 140),
		pt(40, 180),
	}
}

// fivePointStar returns a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 + math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	order := []int{0, 2, 4, 1, 3}
	res := make([]vec.Vec2, len(order))
	for i, j := range order {
		res[i] = pts[j]
	}
	return res
}
