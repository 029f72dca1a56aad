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

package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/testcases"
)

// scene is a canvas size together with the shapes to draw on it.
type scene struct {
	width, height int
	shapes        []raster.Shape
}

// loadScene returns the named scene.  The name is either "demo" or
// "category/name" for one of the test cases; test cases bring their own
// canvas size.
func loadScene(name string, width, height int, fill bool) (*scene, error) {
	if name == "demo" {
		return demoScene(width, height, fill)
	}

	category, caseName, ok := strings.Cut(name, "/")
	if !ok {
		return nil, fmt.Errorf("invalid scene name %q", name)
	}
	for _, tc := range testcases.All[category] {
		if tc.Name != caseName {
			continue
		}
		s, err := raster.RenderCase(tc)
		if err != nil {
			return nil, err
		}
		sc := &scene{width: tc.Width, height: tc.Height}
		if s != nil {
			sc.shapes = append(sc.shapes, s)
		}
		return sc, nil
	}
	return nil, fmt.Errorf("unknown scene %q", name)
}

// demoScene draws one shape of every kind, scaled to the canvas.
func demoScene(width, height int, fill bool) (*scene, error) {
	w, h := float64(width), float64(height)
	at := func(fx, fy float64) raster.Point {
		return raster.Pt(fx*w, fy*h)
	}

	var errs []error
	sc := &scene{width: width, height: height}

	hexagon, err := raster.NewPolygon([]raster.Point{
		at(0.13, 0.27), at(0.47, 0.09), at(0.87, 0.45),
		at(0.87, 0.91), at(0.47, 0.64), at(0.13, 0.82),
	}, fill)
	if err == nil {
		sc.shapes = append(sc.shapes, hexagon.WithColor(raster.RGB{R: 0.8, G: 0.2, B: 0.2}))
	}
	errs = append(errs, err)

	square, err := raster.NewPolygon([]raster.Point{
		at(0.05, 0.05), at(0.25, 0.05), at(0.25, 0.25), at(0.05, 0.25),
	}, fill)
	if err == nil {
		var rotated raster.Shape
		rotated, err = raster.Rotate(square.WithColor(raster.RGB{G: 0.8}), 30, 0.15*w, 0.15*h)
		if err == nil {
			sc.shapes = append(sc.shapes, rotated)
		}
	}
	errs = append(errs, err)

	circle, err := raster.NewCircle(at(0.5, 0.5), int(min(w, h)/6))
	if err == nil {
		sc.shapes = append(sc.shapes, circle.WithColor(raster.RGB{B: 1}))
	}
	errs = append(errs, err)

	diagonal, err := raster.NewLine(at(0, 0), at(1, 1), raster.Bresenham)
	if err == nil {
		sc.shapes = append(sc.shapes, diagonal)
	}
	errs = append(errs, err)

	anti, err := raster.NewLine(at(0, 1), at(1, 0), raster.DDA)
	if err == nil {
		sc.shapes = append(sc.shapes, anti.WithColor(raster.RGB{R: 1, G: 1}))
	}
	errs = append(errs, err)

	return sc, errors.Join(errs...)
}

// listScenes writes the names of all available scenes to w.
func listScenes(w io.Writer) {
	fmt.Fprintln(w, "demo")
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			fmt.Fprintf(w, "%s/%s\n", category, tc.Name)
		}
	}
}
