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
	"errors"
	"math"
	"slices"
	"testing"
)

func TestCircleRadiusZero(t *testing.T) {
	pix, err := CircleBresenham(Pt(3, 4), 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []Pixel{{3, 4}}; !slices.Equal(pix, want) {
		t.Errorf("got %v, want %v", pix, want)
	}
}

func TestCircleNegativeRadius(t *testing.T) {
	_, err := CircleBresenham(Pt(0, 0), -1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestCircleNonFiniteCenter(t *testing.T) {
	for _, c := range []Point{Pt(math.NaN(), 0), Pt(0, math.Inf(-1))} {
		if _, err := CircleBresenham(c, 3); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("center %v: got %v, want ErrInvalidArgument", c, err)
		}
	}
}

func TestCircleProperties(t *testing.T) {
	center := Pt(20, -7)
	for r := 1; r <= 40; r++ {
		pix, err := CircleBresenham(center, r)
		if err != nil {
			t.Fatal(err)
		}

		set := make(map[Pixel]bool, len(pix))
		for _, p := range pix {
			if set[p] {
				t.Errorf("r=%d: pixel %v emitted twice", r, p)
			}
			set[p] = true

			dist := math.Hypot(float64(p.X)-center.X, float64(p.Y)-center.Y)
			if math.Abs(dist-float64(r)) > 1 {
				t.Errorf("r=%d: pixel %v has distance %.3f", r, p, dist)
			}
		}

		// invariant under the eight reflections of the circle
		c := center.Pixel()
		for _, p := range pix {
			x, y := p.X-c.X, p.Y-c.Y
			for _, q := range [8][2]int{
				{x, y}, {y, x}, {y, -x}, {x, -y},
				{-x, -y}, {-y, -x}, {-y, x}, {-x, y},
			} {
				if !set[Pixel{c.X + q[0], c.Y + q[1]}] {
					t.Errorf("r=%d: reflection (%d, %d) of %v missing", r, q[0], q[1], p)
				}
			}
		}

		// the four extreme points are on the circle
		for _, p := range []Pixel{{c.X + r, c.Y}, {c.X - r, c.Y}, {c.X, c.Y + r}, {c.X, c.Y - r}} {
			if !set[p] {
				t.Errorf("r=%d: extreme point %v missing", r, p)
			}
		}
	}
}

func TestCircleSmall(t *testing.T) {
	pix, err := CircleBresenham(Pt(0, 0), 1)
	if err != nil {
		t.Fatal(err)
	}
	slices.SortFunc(pix, comparePixels)
	want := []Pixel{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	if !slices.Equal(pix, want) {
		t.Errorf("got %v, want %v", pix, want)
	}
}

// comparePixels orders pixels by x, then y.
func comparePixels(a, b Pixel) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Y - b.Y
}
