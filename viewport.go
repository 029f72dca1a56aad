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
	"fmt"
	"log/slog"
)

// Clip returns the visible parts of the given shapes:
//
//   - lines are clipped with [Viewport.ClipLine],
//   - polygons are clipped with [Viewport.ClipPolygon] and rasterized again,
//   - circles keep those of their pixels which lie inside the viewport,
//     and remember the viewport for later transformations.
//
// Shapes which are entirely outside are dropped.  A shape which cannot be
// clipped is also dropped, and its error is included in the returned
// error; the remaining shapes are still processed.
func (v Viewport) Clip(shapes []Shape) ([]Shape, error) {
	var visible []Shape
	var errs []error
	for i, s := range shapes {
		res, err := v.clipShape(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("shape %d: %w", i, err))
			continue
		}
		if res != nil {
			visible = append(visible, res)
		}
	}
	Logger().Debug("viewport clip",
		slog.Int("shapes", len(shapes)),
		slog.Int("visible", len(visible)),
		slog.Int("errors", len(errs)))
	return visible, errors.Join(errs...)
}

// clipShape returns nil, nil if s is not visible.
func (v Viewport) clipShape(s Shape) (Shape, error) {
	switch s := s.(type) {
	case *Line:
		q0, q1, ok, err := v.ClipLine(s.p0, s.p1)
		if err != nil || !ok {
			return nil, err
		}
		if q0 == s.p0 && q1 == s.p1 {
			return s, nil
		}
		l, err := NewLine(q0, q1, s.alg)
		if err != nil {
			return nil, err
		}
		l.color = s.color
		return l, nil

	case *Polygon:
		clipped := dedupe(v.ClipPolygon(s.vertices))
		if len(clipped) < 3 {
			return nil, nil
		}
		p, err := NewPolygon(clipped, s.filled)
		if err != nil {
			return nil, err
		}
		p.color = s.color
		return p, nil

	case *Circle:
		c := s.clipTo(v)
		if len(c.pixels) == 0 {
			return nil, nil
		}
		return c, nil

	default:
		return nil, fmt.Errorf("unsupported shape %T: %w", s, ErrInvalidArgument)
	}
}

// dedupe removes consecutive repeated vertices, including a last vertex
// equal to the first.  The clipper produces these when a vertex lies on
// the viewport border.
func dedupe(vertices []Point) []Point {
	var res []Point
	for _, p := range vertices {
		if len(res) > 0 && sameXY(res[len(res)-1], p) {
			continue
		}
		res = append(res, p)
	}
	for len(res) > 1 && sameXY(res[0], res[len(res)-1]) {
		res = res[:len(res)-1]
	}
	return res
}

// overlap returns the intersection of two viewports.  The result may be
// empty, in which case it contains no points.
func (v Viewport) overlap(w Viewport) Viewport {
	return Viewport{
		XMin: max(v.XMin, w.XMin),
		YMin: max(v.YMin, w.YMin),
		XMax: min(v.XMax, w.XMax),
		YMax: min(v.YMax, w.YMax),
	}
}

func sameXY(p, q Point) bool {
	return p.X == q.X && p.Y == q.Y
}
