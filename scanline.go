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
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// polygonEdge is a non-horizontal polygon side.  The edge is active on the
// scan lines yMin ≤ y < yMax.
type polygonEdge struct {
	yMin, yMax   int     // scan line range
	xAtYMin      float64 // x at the lower endpoint
	currentX     float64 // x-intercept on the current scan line
	inverseSlope float64 // (x1-x0)/(y1-y0), added to currentX once per scan line
}

// edgeTable maps a scan line to the edges whose yMin is on that line.
type edgeTable map[int][]*polygonEdge

// span is a run of pixels x0 ≤ x ≤ x1 on one scan line.
type span struct {
	x0, x1 int
}

// ScanLineFiller fills polygons with the scan line algorithm, using an
// edge table and an active edge list.  Internal buffers are reused between
// calls.
//
// A ScanLineFiller is not safe for concurrent use.
type ScanLineFiller struct {
	edges    []polygonEdge
	table    edgeTable
	boundary map[int][]span // horizontal edges and peak vertices, by scan line
	active   []*polygonEdge
	spans    []span
}

// NewScanLineFiller returns a ScanLineFiller with empty buffers.
func NewScanLineFiller() *ScanLineFiller {
	return &ScanLineFiller{
		table:    make(edgeTable),
		boundary: make(map[int][]span),
	}
}

// FillPolygon returns the pixels inside the polygon with the given
// vertices, including the pixels on its boundary.  Rows are emitted in
// increasing y, pixels within a row in increasing x, and every pixel
// occurs once.  See [ScanLineFiller.Fill] for the preconditions.
func FillPolygon(vertices []Point) ([]Pixel, error) {
	var pix []Pixel
	err := NewScanLineFiller().Fill(vertices, func(y, xMin, xMax int) {
		for x := xMin; x <= xMax; x++ {
			pix = append(pix, Pixel{X: x, Y: y})
		}
	})
	if err != nil {
		return nil, err
	}
	return pix, nil
}

// Fill sweeps the polygon given by vertices (closed implicitly from the
// last vertex back to the first) and calls emit for every run of interior
// pixels.  Interior is determined by the even-odd rule.  Runs are reported
// in increasing y and, within a scan line, in increasing x; runs on the
// same scan line never overlap.  Vertex y coordinates are rounded to the
// nearest scan line.
//
// The polygon must have at least three vertices, no two vertices may
// coincide and all coordinates must be finite; otherwise an
// error wrapping ErrMalformedPolygon or ErrInvalidArgument is returned.
// If a scan line meets an odd number of edges, Fill stops with
// ErrMalformedPolygon.  Runs emitted before the error are not retracted.
func (f *ScanLineFiller) Fill(vertices []Point, emit func(y, xMin, xMax int)) error {
	if err := checkPolygon(vertices); err != nil {
		return err
	}
	yStart := f.buildEdgeTable(vertices)
	return f.sweep(yStart, emit)
}

// checkPolygon verifies the preconditions of the scan line fill.
func checkPolygon(vertices []Point) error {
	n := len(vertices)
	if n < 3 {
		return fmt.Errorf("polygon with %d vertices: %w", n, ErrMalformedPolygon)
	}
	seen := make(map[[2]float64]int, n)
	for i, v := range vertices {
		if !isFinite(v.X) || !isFinite(v.Y) {
			return fmt.Errorf("vertex %d (%g, %g): %w", i, v.X, v.Y, ErrInvalidArgument)
		}
		key := [2]float64{v.X, v.Y}
		if j, dup := seen[key]; dup {
			return fmt.Errorf("vertex %d repeats vertex %d (%g, %g): %w",
				i, j, v.X, v.Y, ErrMalformedPolygon)
		}
		seen[key] = i
	}
	return nil
}

// buildEdgeTable fills f.table with one entry per non-horizontal side of
// the polygon, keyed by the lower scan line of the side.  Horizontal sides
// and vertices above both of their neighbours are recorded in f.boundary,
// since no active edge covers them.  The return value is the lowest scan
// line of the polygon.
func (f *ScanLineFiller) buildEdgeTable(vertices []Point) int {
	clear(f.table)
	clear(f.boundary)
	f.edges = f.edges[:0]

	n := len(vertices)
	yStart := math.MaxInt
	for i, v := range vertices {
		w := vertices[(i+1)%n]
		y0, y1 := round(v.Y), round(w.Y)
		yStart = min(yStart, y0)

		if y0 == y1 {
			lo, hi := min(v.X, w.X), max(v.X, w.X)
			f.addBoundary(y0, lo, hi)
			continue
		}

		// The edge from the previous vertex ends at v as well.  If both
		// sides go down from v, v is a peak.
		u := vertices[(i+n-1)%n]
		if yu := round(u.Y); yu < y0 && y1 < y0 {
			f.addBoundary(y0, v.X, v.X)
		}

		e := polygonEdge{inverseSlope: (w.X - v.X) / (w.Y - v.Y)}
		if y0 < y1 {
			e.yMin, e.yMax = y0, y1
			e.xAtYMin = v.X
		} else {
			e.yMin, e.yMax = y1, y0
			e.xAtYMin = w.X
		}
		e.currentX = e.xAtYMin
		f.edges = append(f.edges, e)
	}

	// Pointers are taken only after f.edges has stopped growing.
	for i := range f.edges {
		e := &f.edges[i]
		f.table[e.yMin] = append(f.table[e.yMin], e)
	}

	Logger().Debug("edge table built",
		slog.Int("vertices", n),
		slog.Int("edges", len(f.edges)),
		slog.Int("buckets", len(f.table)),
		slog.Int("yMin", yStart))
	return yStart
}

// addBoundary records the pixels between x0 and x1 on scan line y.
func (f *ScanLineFiller) addBoundary(y int, x0, x1 float64) {
	s := span{
		x0: int(math.Ceil(x0 - spanTolerance)),
		x1: int(math.Floor(x1 + spanTolerance)),
	}
	if s.x0 <= s.x1 {
		f.boundary[y] = append(f.boundary[y], s)
	}
}

// sweep runs the active edge list over the edge table, one scan line at a
// time, starting at scan line y.
func (f *ScanLineFiller) sweep(y int, emit func(y, xMin, xMax int)) error {
	f.active = f.active[:0]
	f.moveBucket(y)

	for len(f.active) > 0 || len(f.table) > 0 || len(f.boundary) > 0 {
		if len(f.active)%2 != 0 {
			return fmt.Errorf("scan line %d meets %d edges: %w",
				y, len(f.active), ErrMalformedPolygon)
		}

		// pair up the active edges from left to right
		f.spans = f.spans[:0]
		for i := 0; i < len(f.active); i += 2 {
			s := span{
				x0: int(math.Ceil(f.active[i].currentX - spanTolerance)),
				x1: int(math.Floor(f.active[i+1].currentX + spanTolerance)),
			}
			if s.x0 <= s.x1 {
				f.spans = append(f.spans, s)
			}
		}
		if extra, ok := f.boundary[y]; ok {
			f.spans = append(f.spans, extra...)
			delete(f.boundary, y)
		}
		emitMerged(y, f.spans, emit)

		y++

		// edges are active on [yMin, yMax)
		f.active = slices.DeleteFunc(f.active, func(e *polygonEdge) bool {
			return e.yMax == y
		})
		for _, e := range f.active {
			e.currentX += e.inverseSlope
		}
		f.moveBucket(y)
	}
	return nil
}

// moveBucket moves the edges starting on scan line y from the edge table
// to the active list and restores the order by currentX.
func (f *ScanLineFiller) moveBucket(y int) {
	if bucket, ok := f.table[y]; ok {
		f.active = append(f.active, bucket...)
		delete(f.table, y)
	}
	slices.SortFunc(f.active, func(a, b *polygonEdge) int {
		return cmp.Compare(a.currentX, b.currentX)
	})
}

// emitMerged sorts the spans of one scan line, joins overlapping and
// adjacent runs, and emits the result.
func emitMerged(y int, spans []span, emit func(y, xMin, xMax int)) {
	if len(spans) == 0 {
		return
	}
	slices.SortFunc(spans, func(a, b span) int {
		return cmp.Compare(a.x0, b.x0)
	})
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.x0 <= cur.x1+1 {
			cur.x1 = max(cur.x1, s.x1)
			continue
		}
		emit(y, cur.x0, cur.x1)
		cur = s
	}
	emit(y, cur.x0, cur.x1)
}

// OutlinePolygon returns the pixels on the boundary of the polygon, drawn
// as DDA segments between consecutive vertices and from the last vertex
// back to the first.  A pixel shared by consecutive steps, in particular
// at the vertices, is emitted once.
func OutlinePolygon(vertices []Point) []Pixel {
	n := len(vertices)
	if n == 0 {
		return nil
	}

	var pix []Pixel
	for i, v := range vertices {
		for _, p := range LineDDA(v, vertices[(i+1)%n]) {
			if len(pix) > 0 && pix[len(pix)-1] == p {
				continue
			}
			pix = append(pix, p)
		}
	}
	if len(pix) > 1 && pix[len(pix)-1] == pix[0] {
		pix = pix[:len(pix)-1] // back at the first vertex
	}
	return pix
}

// spanTolerance absorbs rounding error in the accumulated x-intercepts, so
// that an intercept of 2.9999999999 still covers pixel 3.
const spanTolerance = 1e-9
