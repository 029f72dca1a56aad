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
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/raster/affine"
)

func TestViewportClip(t *testing.T) {
	inside := newLine(t, Pt(10, 10), Pt(50, 60), Bresenham)
	crossing := newLine(t, Pt(-10, 50), Pt(50, 50), DDA)
	outside := newLine(t, Pt(150, 150), Pt(200, 200), Bresenham)
	poly, _ := NewPolygon([]Point{Pt(50, 50), Pt(150, 50), Pt(150, 150), Pt(50, 150)}, true)
	far, _ := NewPolygon([]Point{Pt(200, 200), Pt(300, 200), Pt(250, 300)}, true)
	circle, _ := NewCircle(Pt(0, 50), 20)

	visible, err := unitView.Clip([]Shape{inside, crossing, outside, poly, far, circle})
	if err != nil {
		t.Fatal(err)
	}
	if len(visible) != 4 {
		t.Fatalf("got %d visible shapes, want 4", len(visible))
	}

	if visible[0] != Shape(inside) {
		t.Error("a line inside the viewport was replaced")
	}

	l := visible[1].(*Line)
	if p0, p1 := l.Endpoints(); !sameXY(p0, Pt(0, 50)) || !sameXY(p1, Pt(50, 50)) {
		t.Errorf("clipped line %v-%v", p0, p1)
	}
	if l.Algorithm() != DDA {
		t.Error("clipping changed the line algorithm")
	}

	p := visible[2].(*Polygon)
	if n := len(p.Pixels()); n != 51*51 {
		t.Errorf("clipped polygon: got %d pixels, want %d", n, 51*51)
	}

	c := visible[3].(*Circle)
	if len(c.Pixels()) >= len(circle.Pixels()) {
		t.Error("circle was not clipped")
	}
	if c.Radius() != 20 || c.Center() != circle.Center() {
		t.Error("clipping changed the circle geometry")
	}

	for i, s := range visible {
		for _, q := range s.Pixels() {
			if !unitView.ContainsPixel(q) {
				t.Errorf("shape %d: pixel %v outside the viewport", i, q)
			}
		}
	}
}

func TestViewportClipBorder(t *testing.T) {
	// a triangle touching the viewport in one vertex only
	touch, _ := NewPolygon([]Point{Pt(100, 100), Pt(150, 100), Pt(150, 150)}, true)
	visible, err := unitView.Clip([]Shape{touch})
	if err != nil {
		t.Fatal(err)
	}
	if len(visible) != 0 {
		t.Errorf("degenerate clip result kept: %v", visible[0].Pixels())
	}
}

func TestViewportClipErrors(t *testing.T) {
	line := newLine(t, Pt(10, 10), Pt(20, 20), Bresenham)
	visible, err := unitView.Clip([]Shape{otherShape{}, line})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
	if len(visible) != 1 || visible[0] != Shape(line) {
		t.Error("valid shapes must still be clipped")
	}
}

func TestDedupe(t *testing.T) {
	in := []Point{Pt(0, 0), Pt(0, 0), Pt(5, 0), Pt(5, 5), Pt(5, 5), Pt(0, 0)}
	got := dedupe(in)
	want := []Point{Pt(0, 0), Pt(5, 0), Pt(5, 5)}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if !sameXY(got[i], want[i]) {
			t.Errorf("vertex %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

type recordSink struct {
	pixels int
	colors []RGB
}

func (s *recordSink) Plot(pix []Pixel, c RGB) {
	s.pixels += len(pix)
	s.colors = append(s.colors, c)
}

func TestDisplay(t *testing.T) {
	a := newLine(t, Pt(0, 0), Pt(9, 0), Bresenham)
	b, _ := NewCircle(Pt(0, 0), 0)
	sink := &recordSink{}
	Display(sink, a, b.WithColor(RGB{G: 1}))

	if sink.pixels != 11 {
		t.Errorf("got %d pixels, want 11", sink.pixels)
	}
	if len(sink.colors) != 2 || sink.colors[0] != White || sink.colors[1] != (RGB{G: 1}) {
		t.Errorf("got colors %v", sink.colors)
	}
}

func TestRGBA(t *testing.T) {
	r, g, b, a := RGB{R: 1, G: 0.5, B: -3}.RGBA()
	if r != 0xffff || g != 0x8000 || b != 0 || a != 0xffff {
		t.Errorf("got %04x %04x %04x %04x", r, g, b, a)
	}
}

func TestClippedCircleTransform(t *testing.T) {
	circle, err := NewCircle(Pt(0, 50), 20)
	if err != nil {
		t.Fatal(err)
	}
	visible, err := unitView.Clip([]Shape{circle})
	if err != nil {
		t.Fatal(err)
	}
	clipped := visible[0].(*Circle)
	if v, ok := clipped.Viewport(); !ok || v != unitView {
		t.Errorf("got viewport %v, %t", v, ok)
	}
	if _, ok := circle.Viewport(); ok {
		t.Error("clipping changed the original circle")
	}

	same, err := Transform(clipped, affine.Identity)
	if err != nil {
		t.Fatal(err)
	}
	if !samePixels(same.Pixels(), clipped.Pixels()) {
		t.Errorf("identity transform: got %d pixels, want %d",
			len(same.Pixels()), len(clipped.Pixels()))
	}

	// moved fully inside, the whole circle is visible
	moved, err := Translate(clipped, 50, 0)
	if err != nil {
		t.Fatal(err)
	}
	full, _ := CircleBresenham(Pt(50, 50), 20)
	if !samePixels(moved.Pixels(), full) {
		t.Error("circle moved inside the viewport is not complete")
	}

	// moved outside, nothing is left
	gone, err := Translate(clipped, 500, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(gone.Pixels()); n != 0 {
		t.Errorf("circle outside the viewport has %d pixels", n)
	}
}

func TestClipCircleTwice(t *testing.T) {
	circle, _ := NewCircle(Pt(50, 50), 30)
	first, err := unitView.Clip([]Shape{circle})
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewViewport(rect.Rect{LLx: 40, LLy: -100, URx: 200, URy: 200}).Clip(first)
	if err != nil {
		t.Fatal(err)
	}
	c := second[0].(*Circle)
	want := Viewport{XMin: 40, YMin: 0, XMax: 100, YMax: 100}
	if v, _ := c.Viewport(); v != want {
		t.Errorf("got viewport %v, want %v", v, want)
	}
	for _, p := range c.Pixels() {
		if !want.ContainsPixel(p) {
			t.Errorf("pixel %v outside both viewports", p)
		}
	}
}
