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

var lineCases = []TestCase{
	{
		Name:   "bresenham_shallow",
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: Bresenham, P0: pt(4, 10), P1: pt(60, 30)},
	},
	{
		Name:   "bresenham_steep",
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: Bresenham, P0: pt(10, 4), P1: pt(30, 60)},
	},
	{
		Name:   "bresenham_descending",
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: Bresenham, P0: pt(60, 4), P1: pt(4, 50)},
	},
	{
		Name:   "bresenham_vertical",
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: Bresenham, P0: pt(32, 60), P1: pt(32, 4)},
	},
	{
		Name:   "dda_shallow",
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: DDA, P0: pt(4, 10), P1: pt(60, 30)},
	},
	{
		Name:   "dda_steep",
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: DDA, P0: pt(30, 60), P1: pt(10, 4)},
	},
	{
		Name:   "dda_point",
		Width:  64,
		Height: 64,
		Op:     Line{Algorithm: DDA, P0: pt(32, 32), P1: pt(32, 32)},
	},
}
