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
	"slices"
	"testing"
)

var lineEndpoints = [][2]Point{
	{Pt(0, 0), Pt(10, 0)},
	{Pt(0, 0), Pt(10, 4)},
	{Pt(0, 0), Pt(10, 10)},
	{Pt(0, 0), Pt(4, 10)},
	{Pt(0, 0), Pt(0, 10)},
	{Pt(10, 0), Pt(0, 4)},
	{Pt(10, 10), Pt(0, 0)},
	{Pt(3, 9), Pt(5, -7)},
	{Pt(-6, 2), Pt(7, -3)},
	{Pt(0, 10), Pt(0, 0)},
	{Pt(5, 5), Pt(5, 5)},
	{Pt(0.4, 0.6), Pt(7.7, 2.2)},
}

func checkConnected(t *testing.T, pix []Pixel) {
	t.Helper()
	for i := 1; i < len(pix); i++ {
		dx := abs(pix[i].X - pix[i-1].X)
		dy := abs(pix[i].Y - pix[i-1].Y)
		if dx > 1 || dy > 1 || dx+dy == 0 {
			t.Errorf("pixels %d and %d are not 8-neighbours: %v, %v",
				i-1, i, pix[i-1], pix[i])
		}
	}
}

func TestLineBresenham(t *testing.T) {
	for _, ends := range lineEndpoints {
		p0, p1 := ends[0], ends[1]
		t.Run(fmt.Sprintf("%v-%v", p0.Pixel(), p1.Pixel()), func(t *testing.T) {
			pix := LineBresenham(p0, p1)
			if !slices.Contains(pix, p0.Pixel()) {
				t.Errorf("start %v missing", p0.Pixel())
			}
			if !slices.Contains(pix, p1.Pixel()) {
				t.Errorf("end %v missing", p1.Pixel())
			}
			checkConnected(t, pix)

			a, b := p0.Pixel(), p1.Pixel()
			n := max(abs(b.X-a.X), abs(b.Y-a.Y)) + 1
			if len(pix) != n {
				t.Errorf("got %d pixels, want %d", len(pix), n)
			}

			// the major axis is walked in increasing order
			steep := abs(b.Y-a.Y) > abs(b.X-a.X)
			for i := 1; i < len(pix); i++ {
				if !steep && pix[i].X != pix[i-1].X+1 {
					t.Errorf("x not increasing at %d: %v", i, pix)
					break
				}
				if steep && pix[i].Y != pix[i-1].Y+1 {
					t.Errorf("y not increasing at %d: %v", i, pix)
					break
				}
			}
		})
	}
}

func TestLineBresenhamShallow(t *testing.T) {
	got := LineBresenham(Pt(0, 0), Pt(5, 2))
	want := []Pixel{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLineBresenhamVertical(t *testing.T) {
	got := LineBresenham(Pt(2, 3), Pt(2, 0))
	want := []Pixel{{2, 0}, {2, 1}, {2, 2}, {2, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLineDDA(t *testing.T) {
	for _, ends := range lineEndpoints {
		p0, p1 := ends[0], ends[1]
		t.Run(fmt.Sprintf("%v-%v", p0.Pixel(), p1.Pixel()), func(t *testing.T) {
			pix := LineDDA(p0, p1)
			if pix[0] != p0.Pixel() {
				t.Errorf("first pixel %v, want %v", pix[0], p0.Pixel())
			}
			if last := pix[len(pix)-1]; last != p1.Pixel() {
				t.Errorf("last pixel %v, want %v", last, p1.Pixel())
			}
			checkConnected(t, pix)
		})
	}
}

func TestLineDDADegenerate(t *testing.T) {
	got := LineDDA(Pt(7, -2), Pt(7, -2))
	want := []Pixel{{7, -2}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLineDDASteps(t *testing.T) {
	got := LineDDA(Pt(0, 0), Pt(2, 6))
	want := []Pixel{{0, 0}, {0, 1}, {1, 2}, {1, 3}, {1, 4}, {2, 5}, {2, 6}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
