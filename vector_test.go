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
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
)

// TestFillAgainstVector compares the scan line fill with the area coverage
// computed by x/image/vector.  Pixel (x, y) of the fill corresponds to the
// unit square centred at (x, y), so the polygon is shifted by one half for
// the vector rasterizer.  Fully covered squares must be filled, and every
// filled pixel must be at least partially covered.
func TestFillAgainstVector(t *testing.T) {
	cases := map[string][]Point{
		"concave":   {Pt(40, 60), Pt(140, 20), Pt(260, 100), Pt(260, 200), Pt(140, 140), Pt(40, 180)},
		"triangle":  {Pt(10, 10), Pt(54, 10), Pt(32, 50)},
		"staircase": {Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(3, 10), Pt(3, 5), Pt(0, 5)},
	}
	for name, vertices := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, xMax, yMax := bounds(vertices)
			w, h := xMax+2, yMax+2

			r := vector.NewRasterizer(w, h)
			addPolygonToVector(r, vertices, 0.5)
			mask := image.NewAlpha(image.Rect(0, 0, w, h))
			r.Draw(mask, mask.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})

			pix, err := FillPolygon(vertices)
			if err != nil {
				t.Fatal(err)
			}
			filled := make(map[Pixel]bool, len(pix))
			for _, p := range pix {
				filled[p] = true
				if mask.AlphaAt(p.X, p.Y).A == 0 {
					t.Errorf("pixel %v filled but not covered", p)
				}
			}
			for y := range h {
				for x := range w {
					if mask.AlphaAt(x, y).A == 255 && !filled[Pixel{x, y}] {
						t.Errorf("pixel (%d, %d) covered but not filled", x, y)
					}
				}
			}
		})
	}
}
