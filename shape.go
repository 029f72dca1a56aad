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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raster/affine"
)

// Shape is a geometric figure together with its rasterization.  The
// implementations are *Line, *Polygon and *Circle.
//
// Shapes are immutable: the pixel list always matches the defining
// geometry, and transformations return a new shape.  The slice returned
// by Pixels must not be modified.
type Shape interface {
	Pixels() []Pixel
	Color() RGB
	isShape()
}

// LineAlgorithm selects the rasterizer used for a [Line].
type LineAlgorithm int

const (
	Bresenham LineAlgorithm = iota
	DDA
)

func (a LineAlgorithm) String() string {
	switch a {
	case Bresenham:
		return "bresenham"
	case DDA:
		return "dda"
	default:
		return fmt.Sprintf("LineAlgorithm(%d)", int(a))
	}
}

func (a LineAlgorithm) rasterize(p0, p1 Point) []Pixel {
	if a == DDA {
		return LineDDA(p0, p1)
	}
	return LineBresenham(p0, p1)
}

// Line is a straight segment.
type Line struct {
	p0, p1 Point
	alg    LineAlgorithm
	color  RGB
	pixels []Pixel
}

// NewLine returns the segment from p0 to p1, rasterized with alg.
// Non-finite endpoints give ErrInvalidArgument.
func NewLine(p0, p1 Point, alg LineAlgorithm) (*Line, error) {
	if err := checkFinite(p0, p1); err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	return &Line{
		p0:     p0,
		p1:     p1,
		alg:    alg,
		color:  White,
		pixels: alg.rasterize(p0, p1),
	}, nil
}

// Endpoints returns the defining points of the line.
func (l *Line) Endpoints() (p0, p1 Point) { return l.p0, l.p1 }

// Algorithm returns the rasterizer used for the line.
func (l *Line) Algorithm() LineAlgorithm { return l.alg }

// Pixels implements the [Shape] interface.
func (l *Line) Pixels() []Pixel { return l.pixels }

// Color implements the [Shape] interface.
func (l *Line) Color() RGB { return l.color }

// WithColor returns a copy of l with the given display color.
func (l *Line) WithColor(c RGB) *Line {
	res := *l
	res.color = c
	return &res
}

// Path returns the segment as a path.
func (l *Line) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{l.p0.Vec()}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{l.p1.Vec()})
	}
}

func (*Line) isShape() {}

// Polygon is a closed polygon, either filled with the scan line algorithm
// or drawn as an outline.
type Polygon struct {
	vertices []Point
	filled   bool
	color    RGB
	pixels   []Pixel
}

// NewPolygon returns the polygon with the given vertices.  If filled is
// true, the interior is rasterized by [FillPolygon] and the polygon must
// satisfy its preconditions; otherwise only the outline is drawn.
func NewPolygon(vertices []Point, filled bool) (*Polygon, error) {
	vertices = slices.Clone(vertices)

	var pix []Pixel
	if filled {
		var err error
		pix, err = FillPolygon(vertices)
		if err != nil {
			return nil, err
		}
	} else {
		if len(vertices) == 0 {
			return nil, fmt.Errorf("empty polygon: %w", ErrMalformedPolygon)
		}
		pix = OutlinePolygon(vertices)
	}

	return &Polygon{
		vertices: vertices,
		filled:   filled,
		color:    White,
		pixels:   pix,
	}, nil
}

// Vertices returns a copy of the defining vertices.
func (p *Polygon) Vertices() []Point { return slices.Clone(p.vertices) }

// Filled reports whether the interior of the polygon is rasterized.
func (p *Polygon) Filled() bool { return p.filled }

// Pixels implements the [Shape] interface.
func (p *Polygon) Pixels() []Pixel { return p.pixels }

// Color implements the [Shape] interface.
func (p *Polygon) Color() RGB { return p.color }

// WithColor returns a copy of p with the given display color.
func (p *Polygon) WithColor(c RGB) *Polygon {
	res := *p
	res.color = c
	return &res
}

// Path returns the outline of the polygon as a closed path.
func (p *Polygon) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, v := range p.vertices {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{v.Vec()}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

func (*Polygon) isShape() {}

// Circle is a circle with integer radius.  A circle returned by
// [Viewport.Clip] remembers the viewport, and only the pixels inside it
// are kept, also after later transformations.
type Circle struct {
	center Point
	radius int
	clip   *Viewport
	color  RGB
	pixels []Pixel
}

// NewCircle returns the circle around center.  A negative radius gives
// ErrInvalidArgument.
func NewCircle(center Point, radius int) (*Circle, error) {
	pix, err := CircleBresenham(center, radius)
	if err != nil {
		return nil, err
	}
	return &Circle{
		center: center,
		radius: radius,
		color:  White,
		pixels: pix,
	}, nil
}

// Center returns the center of the circle.
func (c *Circle) Center() Point { return c.center }

// Radius returns the radius of the circle.
func (c *Circle) Radius() int { return c.radius }

// Viewport returns the viewport the circle is clipped to.  The second
// result is false if the circle is not clipped.
func (c *Circle) Viewport() (Viewport, bool) {
	if c.clip == nil {
		return Viewport{}, false
	}
	return *c.clip, true
}

// clipTo restricts the circle to v, in addition to any earlier viewport.
func (c *Circle) clipTo(v Viewport) *Circle {
	if c.clip != nil {
		v = v.overlap(*c.clip)
	}
	res := *c
	res.clip = &v
	res.pixels = nil
	for _, p := range c.pixels {
		if v.ContainsPixel(p) {
			res.pixels = append(res.pixels, p)
		}
	}
	return &res
}

// Pixels implements the [Shape] interface.
func (c *Circle) Pixels() []Pixel { return c.pixels }

// Color implements the [Shape] interface.
func (c *Circle) Color() RGB { return c.color }

// WithColor returns a copy of c with the given display color.
func (c *Circle) WithColor(col RGB) *Circle {
	res := *c
	res.color = col
	return &res
}

func (*Circle) isShape() {}

// Transform applies m to the defining geometry of s and rasterizes the
// result from scratch.  Rasterized pixels are never transformed directly.
//
// For circles only the center is transformed; the radius is kept, so
// rotations about the center and translations are exact, while scaling
// does not change the size of a circle.  The viewport of a clipped circle
// stays where it is.
func Transform(s Shape, m affine.Matrix) (Shape, error) {
	var res Shape
	switch s := s.(type) {
	case *Line:
		l, err := NewLine(apply(m, s.p0), apply(m, s.p1), s.alg)
		if err != nil {
			return nil, fmt.Errorf("transformed %w", err)
		}
		l.color = s.color
		res = l
	case *Polygon:
		vertices := make([]Point, len(s.vertices))
		for i, v := range s.vertices {
			vertices[i] = apply(m, v)
		}
		p, err := NewPolygon(vertices, s.filled)
		if err != nil {
			return nil, fmt.Errorf("transformed polygon: %w", err)
		}
		p.color = s.color
		res = p
	case *Circle:
		c, err := NewCircle(apply(m, s.center), s.radius)
		if err != nil {
			return nil, err
		}
		if s.clip != nil {
			c = c.clipTo(*s.clip)
		}
		c.color = s.color
		res = c
	default:
		return nil, fmt.Errorf("unsupported shape %T: %w", s, ErrInvalidArgument)
	}

	Logger().Debug("shape re-rasterized",
		slog.String("shape", fmt.Sprintf("%T", s)),
		slog.Int("pixels", len(res.Pixels())))
	return res, nil
}

func apply(m affine.Matrix, p Point) Point {
	return FromVec(m.Apply(p.Vec()))
}

// Translate moves s by (dx, dy).
func Translate(s Shape, dx, dy float64) (Shape, error) {
	return Transform(s, affine.Translate(dx, dy))
}

// Rotate rotates s counter-clockwise by angle degrees around (px, py).
func Rotate(s Shape, angle, px, py float64) (Shape, error) {
	return Transform(s, affine.Rotate(angle, px, py))
}

// Scale scales s by sx and sy, keeping (px, py) fixed.
func Scale(s Shape, sx, sy, px, py float64) (Shape, error) {
	return Transform(s, affine.Scale(sx, sy, px, py))
}

// Shear shears s by shx and shy, keeping (px, py) fixed.
func Shear(s Shape, shx, shy, px, py float64) (Shape, error) {
	return Transform(s, affine.Shear(shx, shy, px, py))
}
