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

// Package raster implements the classic raster graphics algorithms for
// lines, circles and polygons: Bresenham and DDA line drawing, the midpoint
// circle algorithm, scan line polygon filling with an edge table and an
// active edge list, Cohen-Sutherland line clipping and Sutherland-Hodgman
// polygon clipping.  Shapes are transformed with the homogeneous matrices
// from the [seehuhn.de/go/raster/affine] package.
//
// Coordinates are y-up.  Rasterized output is a list of [Pixel] values,
// which a [Sink] presents to the user.
package raster

//go:generate go run ./testcases/export

import (
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/raster/affine"
	"seehuhn.de/go/raster/testcases"
)

// RenderCase builds the shape of a test case, applies its transformation
// and clips it to its viewport.  The result is nil if nothing is visible.
func RenderCase(tc testcases.TestCase) (Shape, error) {
	var s Shape
	switch op := tc.Op.(type) {
	case testcases.Line:
		alg := Bresenham
		if op.Algorithm == testcases.DDA {
			alg = DDA
		}
		l, err := NewLine(FromVec(op.P0), FromVec(op.P1), alg)
		if err != nil {
			return nil, fmt.Errorf("test case %q: %w", tc.Name, err)
		}
		s = l
	case testcases.Circle:
		c, err := NewCircle(FromVec(op.Center), op.Radius)
		if err != nil {
			return nil, err
		}
		s = c
	case testcases.Polygon:
		vertices := make([]Point, len(op.Vertices))
		for i, v := range op.Vertices {
			vertices[i] = FromVec(v)
		}
		p, err := NewPolygon(vertices, op.Filled)
		if err != nil {
			return nil, err
		}
		s = p
	default:
		return nil, fmt.Errorf("test case %q: unknown operation %T: %w",
			tc.Name, tc.Op, ErrInvalidArgument)
	}

	if tc.Transform != (affine.Matrix{}) {
		var err error
		s, err = Transform(s, tc.Transform)
		if err != nil {
			return nil, err
		}
	}

	if tc.Viewport != (rect.Rect{}) {
		visible, err := NewViewport(tc.Viewport).Clip([]Shape{s})
		if err != nil {
			return nil, err
		}
		if len(visible) == 0 {
			return nil, nil
		}
		s = visible[0]
	}
	return s, nil
}
