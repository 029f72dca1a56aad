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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raster/affine"
)

var transformCases = []TestCase{
	{
		Name:      "translate_square",
		Width:     64,
		Height:    64,
		Op:        Polygon{Vertices: rectangle(0, 0, 20, 20), Filled: true},
		Transform: affine.Translate(30, 12),
	},
	{
		Name:      "rotate_45deg",
		Width:     64,
		Height:    64,
		Op:        Polygon{Vertices: rectangle(22, 22, 42, 42), Filled: true},
		Transform: affine.Rotate(45, 32, 32),
	},
	{
		Name:      "rotate_outline_30deg",
		Width:     64,
		Height:    64,
		Op:        Polygon{Vertices: rectangle(12, 22, 52, 42)},
		Transform: affine.Rotate(30, 32, 32),
	},
	{
		Name:      "scale_pivot",
		Width:     64,
		Height:    64,
		Op:        Polygon{Vertices: rectangle(24, 24, 40, 40), Filled: true},
		Transform: affine.Scale(1.5, 0.5, 32, 32),
	},
	{
		Name:      "shear_x",
		Width:     64,
		Height:    64,
		Op:        Polygon{Vertices: rectangle(10, 10, 30, 50), Filled: true},
		Transform: affine.Shear(0.5, 0, 10, 10),
	},
	{
		Name:      "mirror_x",
		Width:     64,
		Height:    64,
		Op:        Polygon{Vertices: []vec.Vec2{pt(10, 10), pt(54, 10), pt(32, 30)}, Filled: true},
		Transform: affine.Translate(0, 64).Mul(affine.MirrorX()),
	},
	{
		Name:      "rotate_line",
		Width:     64,
		Height:    64,
		Op:        Line{Algorithm: Bresenham, P0: pt(12, 32), P1: pt(52, 32)},
		Transform: affine.Rotate(60, 32, 32),
	},
	{
		Name:      "translate_circle",
		Width:     64,
		Height:    64,
		Op:        Circle{Center: pt(16, 16), Radius: 10},
		Transform: affine.Translate(30, 30),
	},
}
