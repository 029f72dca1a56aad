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

// Command export writes the rasterized output of all test cases to
// testdata/testcases.json, for comparison with other implementations.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/affine"
	"seehuhn.de/go/raster/testcases"
)

const outFile = "testdata/testcases.json"

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outFile), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string      `json:"name"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Shape     string      `json:"shape"`
	Algorithm string      `json:"algorithm,omitempty"`
	Filled    bool        `json:"filled,omitempty"`
	Transform [][]float64 `json:"transform,omitempty"`
	Viewport  []float64   `json:"viewport,omitempty"`
	Pixels    [][2]int    `json:"pixels"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Pixels: [][2]int{},
	}

	switch op := tc.Op.(type) {
	case testcases.Line:
		jtc.Shape = "line"
		jtc.Algorithm = "bresenham"
		if op.Algorithm == testcases.DDA {
			jtc.Algorithm = "dda"
		}
	case testcases.Polygon:
		jtc.Shape = "polygon"
		jtc.Filled = op.Filled
	case testcases.Circle:
		jtc.Shape = "circle"
	}

	if tc.Transform != (affine.Matrix{}) {
		jtc.Transform = tc.Transform.Dense()
	}
	if v := tc.Viewport; v != (rect.Rect{}) {
		jtc.Viewport = []float64{v.LLx, v.LLy, v.URx, v.URy}
	}

	s, err := raster.RenderCase(tc)
	if err != nil {
		return jtc, err
	}
	if s != nil {
		for _, p := range s.Pixels() {
			jtc.Pixels = append(jtc.Pixels, [2]int{p.X, p.Y})
		}
	}
	return jtc, nil
}
