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

// Package testcases contains example scenes for the rasterizers, grouped
// by category.  The scenes are plain data, so that the commands in the
// subdirectories and the tests of the raster package can share them.
package testcases

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raster/affine"
)

// TestCase defines a single scene.
type TestCase struct {
	Name      string        // lowercase a-z, 0-9 and _ only
	Width     int           // canvas width in pixels
	Height    int           // canvas height in pixels
	Op        Operation     // the shape to draw
	Transform affine.Matrix // applied before rasterizing (zero-value means no transform)
	Viewport  rect.Rect     // clip rectangle (zero-value means no clipping)
}

// Operation is the shape drawn by a test case.
type Operation interface {
	isOperation()
}

// LineAlgorithm selects the line rasterizer.
type LineAlgorithm int

const (
	Bresenham LineAlgorithm = iota
	DDA
)

// Line draws a straight segment.
type Line struct {
	Algorithm LineAlgorithm
	P0, P1    vec.Vec2
}

func (Line) isOperation() {}

// Circle draws a circle outline.
type Circle struct {
	Center vec.Vec2
	Radius int
}

func (Circle) isOperation() {}

// Polygon draws a polygon, filled or as an outline.
type Polygon struct {
	Vertices []vec.Vec2
	Filled   bool
}

func (Polygon) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// box is a helper for viewport rectangles.
func box(xMin, yMin, xMax, yMax float64) rect.Rect {
	return rect.Rect{LLx: xMin, LLy: yMin, URx: xMax, URy: yMax}
}
