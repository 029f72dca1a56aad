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

var circleCases = []TestCase{
	{
		Name:   "radius_zero",
		Width:  16,
		Height: 16,
		Op:     Circle{Center: pt(8, 8), Radius: 0},
	},
	{
		Name:   "small",
		Width:  16,
		Height: 16,
		Op:     Circle{Center: pt(8, 8), Radius: 5},
	},
	{
		Name:   "large",
		Width:  128,
		Height: 128,
		Op:     Circle{Center: pt(64, 64), Radius: 50},
	},
	{
		Name:   "off_center",
		Width:  64,
		Height: 64,
		Op:     Circle{Center: pt(20, 40), Radius: 15},
	},
}
