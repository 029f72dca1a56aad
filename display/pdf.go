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

package display

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/affine"
)

// PDF is a [raster.Sink] which collects pixels and outlines for a single
// PDF page.  Each pixel becomes a filled square of side zoom, centred on
// the pixel position; the page is painted in gray levels on a black
// background.  Nothing is written until [PDF.WriteFile] is called.
type PDF struct {
	width, height int
	zoom          float64

	plots    []plot
	outlines []outline
}

type plot struct {
	pixels []raster.Pixel
	gray   float64
}

type outline struct {
	path  path.Path
	gray  float64
	width float64
}

// NewPDF returns an empty page covering width×height pixels.
func NewPDF(width, height int, zoom float64) *PDF {
	if zoom <= 0 {
		zoom = 1
	}
	return &PDF{width: width, height: height, zoom: zoom}
}

// Plot implements the [raster.Sink] interface.
func (p *PDF) Plot(pixels []raster.Pixel, c raster.RGB) {
	p.plots = append(p.plots, plot{
		pixels: append([]raster.Pixel(nil), pixels...),
		gray:   luminance(c),
	})
}

// StrokeOutline adds the exact geometry of a shape, drawn on top of the
// pixels as a thin line.  This shows how the rasterization approximates
// the defining path.
func (p *PDF) StrokeOutline(outlinePath path.Path, c raster.RGB, width float64) {
	p.outlines = append(p.outlines, outline{
		path:  outlinePath,
		gray:  luminance(c),
		width: width,
	})
}

// WriteFile writes the page to the named file.
func (p *PDF) WriteFile(fileName string) error {
	paper := &pdf.Rectangle{
		URx: float64(p.width) * p.zoom,
		URy: float64(p.height) * p.zoom,
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// PDF user space is y-up, like raster coordinates.  Pixel centres are
	// at integer positions, so the page origin is shifted by half a pixel.
	device := affine.Scale(p.zoom, p.zoom, 0, 0).Mul(affine.Translate(0.5, 0.5))
	page.Transform(device.CTM())

	for _, pl := range p.plots {
		if len(pl.pixels) == 0 {
			continue
		}
		page.SetFillColor(color.DeviceGray(pl.gray))
		for _, px := range pl.pixels {
			page.Rectangle(float64(px.X)-0.5, float64(px.Y)-0.5, 1, 1)
		}
		page.Fill()
	}

	if len(p.outlines) > 0 {
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
	}
	for _, o := range p.outlines {
		page.SetStrokeColor(color.DeviceGray(o.gray))
		page.SetLineWidth(o.width)
		for cmd, pts := range o.path {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}
