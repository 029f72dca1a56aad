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
	"fmt"
	"log/slog"

	"seehuhn.de/go/geom/rect"
)

// Viewport is an axis-aligned clipping rectangle.  Points on the border are
// inside.
type Viewport struct {
	XMin, YMin, XMax, YMax float64
}

// NewViewport returns the viewport covering r.
func NewViewport(r rect.Rect) Viewport {
	return Viewport{XMin: r.LLx, YMin: r.LLy, XMax: r.URx, YMax: r.URy}
}

// Rect returns the viewport as a rectangle.
func (v Viewport) Rect() rect.Rect {
	return rect.Rect{LLx: v.XMin, LLy: v.YMin, URx: v.XMax, URy: v.YMax}
}

// Contains reports whether p lies inside the viewport or on its border.
func (v Viewport) Contains(p Point) bool {
	return v.code(p) == 0
}

// ContainsPixel reports whether the pixel lies inside the viewport or on
// its border.
func (v Viewport) ContainsPixel(p Pixel) bool {
	return v.code(p.Point()) == 0
}

// regionCode classifies a point against the four sides of a viewport.
// At most one of top/bottom and at most one of left/right is set.
type regionCode uint8

const (
	codeLeft regionCode = 1 << iota
	codeRight
	codeBottom
	codeTop
)

func (c regionCode) String() string {
	b := []byte("----")
	for i, ch := range "TBRL" {
		if c&(codeTop>>i) != 0 {
			b[i] = byte(ch)
		}
	}
	return string(b)
}

// code returns the region code of p relative to v.
func (v Viewport) code(p Point) regionCode {
	var c regionCode
	if p.Y > v.YMax {
		c |= codeTop
	} else if p.Y < v.YMin {
		c |= codeBottom
	}
	if p.X > v.XMax {
		c |= codeRight
	} else if p.X < v.XMin {
		c |= codeLeft
	}
	return c
}

// ClipState is the state of the Cohen-Sutherland line clipper.
type ClipState int

// The states of the Cohen-Sutherland line clipper.
const (
	StateTesting ClipState = iota
	StateAccepted
	StateRejected
	StateClipping
)

func (s ClipState) String() string {
	switch s {
	case StateTesting:
		return "testing"
	case StateAccepted:
		return "accepted"
	case StateRejected:
		return "rejected"
	case StateClipping:
		return "clipping"
	default:
		return fmt.Sprintf("ClipState(%d)", int(s))
	}
}

// ClipLine clips the segment p0-p1 to the viewport, using the
// Cohen-Sutherland algorithm.  If any part of the segment is visible,
// ClipLine returns the visible part with ok set to true; q0 corresponds to
// p0 and q1 to p1.  If the segment lies entirely outside, ok is false.
//
// Vertical and horizontal segments are supported.  Non-finite endpoints
// give ErrInvalidArgument; ErrDivisionByZero is only returned if an
// intersection cannot be computed.
func (v Viewport) ClipLine(p0, p1 Point) (q0, q1 Point, ok bool, err error) {
	if err := checkFinite(p0, p1); err != nil {
		return Point{}, Point{}, false, err
	}

	c0, c1 := v.code(p0), v.code(p1)
	state := StateTesting
	log := Logger()

	for {
		switch {
		case c0|c1 == 0:
			state = StateAccepted
		case c0&c1 != 0:
			state = StateRejected
		default:
			state = StateClipping
		}
		log.Debug("clip line", slog.String("state", state.String()),
			slog.String("code0", c0.String()), slog.String("code1", c1.String()))

		switch state {
		case StateAccepted:
			return p0, p1, true, nil
		case StateRejected:
			return Point{}, Point{}, false, nil
		}

		// Move one endpoint which is outside onto the boundary.
		if c0 != 0 {
			p0, err = v.intersect(p0, p1, c0)
			if err != nil {
				return Point{}, Point{}, false, err
			}
			c0 = v.code(p0)
		} else {
			p1, err = v.intersect(p1, p0, c1)
			if err != nil {
				return Point{}, Point{}, false, err
			}
			c1 = v.code(p1)
		}
	}
}

// intersect moves p along the line through p and q onto the first
// boundary, in the order left, right, bottom, top, whose bit is set in c.
func (v Viewport) intersect(p, q Point, c regionCode) (Point, error) {
	dx := q.X - p.X
	dy := q.Y - p.Y

	var x, y float64
	switch {
	case c&codeLeft != 0, c&codeRight != 0:
		x = v.XMin
		if c&codeLeft == 0 {
			x = v.XMax
		}
		if dx == 0 {
			return Point{}, fmt.Errorf("segment (%g, %g)-(%g, %g) at x = %g: %w",
				p.X, p.Y, q.X, q.Y, x, ErrDivisionByZero)
		}
		y = p.Y + dy*(x-p.X)/dx
	default:
		y = v.YMin
		if c&codeBottom == 0 {
			y = v.YMax
		}
		if dy == 0 {
			return Point{}, fmt.Errorf("segment (%g, %g)-(%g, %g) at y = %g: %w",
				p.X, p.Y, q.X, q.Y, y, ErrDivisionByZero)
		}
		// uses Δx/Δy, which is defined for vertical segments
		x = p.X + dx*(y-p.Y)/dy
	}
	return Point{X: x, Y: y, W: p.W}, nil
}
