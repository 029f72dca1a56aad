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

// Command genpdf generates reference images for the test cases.  For each
// case it writes a PDF page, which shows the pixels together with the
// exact outline of the shape, and a PNG image of the pixels alone.
package main

import (
	"fmt"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/display"
	"seehuhn.de/go/raster/testcases"
)

const (
	refDir = "testdata/reference"
	zoom   = 4
)

// outliner is implemented by shapes which have an exact path.
type outliner interface {
	Path() path.Path
}

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, name string) error {
	s, err := raster.RenderCase(tc)
	if err != nil {
		return err
	}

	page := display.NewPDF(tc.Width, tc.Height, zoom)
	img := display.NewImage(tc.Width, tc.Height, color.Black)
	if s != nil {
		raster.Display(page, s)
		raster.Display(img, s)
		if o, ok := s.(outliner); ok {
			page.StrokeOutline(o.Path(), raster.RGB{R: 0.5, G: 0.5, B: 0.5}, 0.1)
		}
	}

	if err := page.WriteFile(filepath.Join(refDir, name+".pdf")); err != nil {
		return err
	}
	return img.Save(filepath.Join(refDir, name+".png"), zoom)
}
