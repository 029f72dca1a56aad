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

// Package display provides the output sinks for rasterized shapes: raster
// images, PDF pages and plain text.  All sinks use the y-up coordinates of
// the raster package, with pixel (0, 0) in the lower left corner.
package display

import (
	"image"
	"image/color"
	"io"
	"log/slog"

	"github.com/disintegration/imaging"

	"seehuhn.de/go/raster"
)

// Image is a [raster.Sink] which paints pixels into an in-memory image.
// Pixels outside the canvas are counted but otherwise ignored.
type Image struct {
	// canvas is stored y-up: row r of canvas holds scan line r.
	canvas  *image.NRGBA
	dropped int
}

// NewImage returns an empty canvas of the given size.
func NewImage(width, height int, background color.Color) *Image {
	return &Image{canvas: imaging.New(width, height, background)}
}

// Plot implements the [raster.Sink] interface.
func (im *Image) Plot(pixels []raster.Pixel, c raster.RGB) {
	b := im.canvas.Bounds()
	for _, p := range pixels {
		if p.X < b.Min.X || p.X >= b.Max.X || p.Y < b.Min.Y || p.Y >= b.Max.Y {
			im.dropped++
			continue
		}
		im.canvas.Set(p.X, p.Y, c)
	}
}

// Dropped returns the number of pixels which fell outside the canvas.
func (im *Image) Dropped() int {
	return im.dropped
}

// Image returns the canvas in image orientation, with the first row at the
// top.  Each raster pixel becomes a zoom×zoom block; zoom values below 1
// are treated as 1.
func (im *Image) Image(zoom int) *image.NRGBA {
	res := imaging.FlipV(im.canvas)
	if zoom > 1 {
		b := res.Bounds()
		res = imaging.Resize(res, b.Dx()*zoom, b.Dy()*zoom, imaging.NearestNeighbor)
	}
	return res
}

// Save writes the canvas to a file.  The image format is chosen from the
// file name extension (png, jpg, gif, tif or bmp).
func (im *Image) Save(filename string, zoom int) error {
	raster.Logger().Debug("saving image",
		slog.String("file", filename),
		slog.Int("zoom", zoom),
		slog.Int("dropped", im.dropped))
	return imaging.Save(im.Image(zoom), filename)
}

// Encode writes the canvas to w in the given format.
func (im *Image) Encode(w io.Writer, format imaging.Format, zoom int) error {
	return imaging.Encode(w, im.Image(zoom), format)
}
