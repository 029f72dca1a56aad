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

import "seehuhn.de/go/geom/vec"

var clipCases = []TestCase{
	{
		Name:     "line_inside",
		Width:    128,
		Height:   128,
		Op:       Line{Algorithm: Bresenham, P0: pt(10, 10), P1: pt(50, 50)},
		Viewport: box(0, 0, 100, 100),
	},
	{
		Name:     "line_outside",
		Width:    256,
		Height:   256,
		Op:       Line{Algorithm: Bresenham, P0: pt(150, 150), P1: pt(200, 200)},
		Viewport: box(0, 0, 100, 100),
	},
	{
		Name:     "line_crossing",
		Width:    128,
		Height:   128,
		Op:       Line{Algorithm: DDA, P0: pt(20, 60), P1: pt(120, 10)},
		Viewport: box(30, 20, 90, 100),
	},
	{
		Name:     "line_vertical",
		Width:    128,
		Height:   128,
		Op:       Line{Algorithm: Bresenham, P0: pt(40, 5), P1: pt(40, 120)},
		Viewport: box(20, 20, 100, 100),
	},
	{
		Name:     "line_corner_miss",
		Width:    128,
		Height:   128,
		Op:       Line{Algorithm: Bresenham, P0: pt(0, 30), P1: pt(40, 0)},
		Viewport: box(30, 20, 100, 100),
	},
	{
		Name:     "polygon_contains_viewport",
		Width:    128,
		Height:   128,
		Op:       Polygon{Vertices: rectangle(10, 10, 120, 120), Filled: true},
		Viewport: box(20, 20, 100, 100),
	},
	{
		Name:   "polygon_partial",
		Width:  128,
		Height: 128,
		Op: Polygon{
			Vertices: []vec.Vec2{pt(10, 30), pt(90, 10), pt(110, 80), pt(40, 110)},
			Filled:   true,
		},
		Viewport: box(20, 20, 100, 100),
	},
	{
		Name:     "polygon_outside",
		Width:    128,
		Height:   128,
		Op:       Polygon{Vertices: rectangle(0, 0, 10, 10), Filled: true},
		Viewport: box(20, 20, 100, 100),
	},
	{
		Name:     "circle_partial",
		Width:    128,
		Height:   128,
		Op:       Circle{Center: pt(30, 30), Radius: 25},
		Viewport: box(20, 20, 100, 100),
	},
}
