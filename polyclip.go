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

// halfPlane is one side of a viewport, used by the polygon clipper.
type halfPlane int

const (
	planeTop halfPlane = iota
	planeBottom
	planeRight
	planeLeft
)

// inside reports whether p lies on the visible side of the half-plane h.
func (v Viewport) inside(h halfPlane, p Point) bool {
	switch h {
	case planeTop:
		return p.Y <= v.YMax
	case planeBottom:
		return p.Y >= v.YMin
	case planeRight:
		return p.X <= v.XMax
	default:
		return p.X >= v.XMin
	}
}

// crossing returns the point where the segment p-q crosses the boundary of
// h.  The caller guarantees that p and q are on different sides, so the
// denominator is never zero.
func (v Viewport) crossing(h halfPlane, p, q Point) Point {
	switch h {
	case planeTop, planeBottom:
		y := v.YMax
		if h == planeBottom {
			y = v.YMin
		}
		t := (y - p.Y) / (q.Y - p.Y)
		return Point{X: p.X + t*(q.X-p.X), Y: y, W: 1}
	default:
		x := v.XMax
		if h == planeLeft {
			x = v.XMin
		}
		t := (x - p.X) / (q.X - p.X)
		return Point{X: x, Y: p.Y + t*(q.Y-p.Y), W: 1}
	}
}

// ClipPolygon clips a convex polygon to the viewport with the
// Sutherland-Hodgman algorithm.  The polygon is cut by the top, bottom,
// right and left half-planes in this order; the output of each stage is
// the input of the next.  An empty result means that the polygon lies
// entirely outside the viewport.
//
// Concave polygons can produce spurious edges along the viewport border;
// they must be decomposed into convex parts first.
func (v Viewport) ClipPolygon(vertices []Point) []Point {
	out := vertices
	for h := planeTop; h <= planeLeft; h++ {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]Point, 0, len(in)+1)
		for i, e := range in {
			s := in[(i+len(in)-1)%len(in)]
			sIn, eIn := v.inside(h, s), v.inside(h, e)
			switch {
			case sIn && eIn:
				out = append(out, e)
			case sIn && !eIn:
				out = append(out, v.crossing(h, s, e))
			case !sIn && eIn:
				out = append(out, v.crossing(h, s, e), e)
			}
		}
	}
	return out
}
