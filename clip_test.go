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
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
)

var unitView = NewViewport(rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 100})

func TestClipLine(t *testing.T) {
	cases := []struct {
		name   string
		p0, p1 Point
		ok     bool
		q0, q1 Point
	}{
		{"inside", Pt(10, 20), Pt(80, 90), true, Pt(10, 20), Pt(80, 90)},
		{"on border", Pt(0, 0), Pt(100, 0), true, Pt(0, 0), Pt(100, 0)},
		{"outside", Pt(150, 150), Pt(200, 200), false, Point{}, Point{}},
		{"left of viewport", Pt(-50, 10), Pt(-1, 90), false, Point{}, Point{}},
		{"left crossing", Pt(-10, 50), Pt(50, 50), true, Pt(0, 50), Pt(50, 50)},
		{"right crossing", Pt(50, 50), Pt(110, 50), true, Pt(50, 50), Pt(100, 50)},
		{"vertical", Pt(50, -20), Pt(50, 120), true, Pt(50, 0), Pt(50, 100)},
		{"diagonal", Pt(-10, -10), Pt(110, 110), true, Pt(0, 0), Pt(100, 100)},
		{"corner miss", Pt(-10, 90), Pt(10, 120), false, Point{}, Point{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q0, q1, ok, err := unitView.ClipLine(tc.p0, tc.p1)
			if err != nil {
				t.Fatal(err)
			}
			if ok != tc.ok {
				t.Fatalf("got ok=%t, want %t", ok, tc.ok)
			}
			if !ok {
				return
			}
			if !sameXY(q0, tc.q0) || !sameXY(q1, tc.q1) {
				t.Errorf("got %v-%v, want %v-%v", q0, q1, tc.q0, tc.q1)
			}
			if !unitView.Contains(q0) || !unitView.Contains(q1) {
				t.Errorf("clipped segment %v-%v leaves the viewport", q0, q1)
			}
		})
	}
}

func TestIntersectDivisionByZero(t *testing.T) {
	// A horizontal segment below the viewport has no crossing with y = YMin.
	_, err := unitView.intersect(Pt(5, -10), Pt(8, -10), codeBottom)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("got %v, want ErrDivisionByZero", err)
	}
	_, err = unitView.intersect(Pt(-5, 10), Pt(-5, 20), codeLeft)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("got %v, want ErrDivisionByZero", err)
	}
}

func TestRegionCode(t *testing.T) {
	cases := []struct {
		p    Point
		want string
	}{
		{Pt(50, 50), "----"},
		{Pt(-1, 50), "---L"},
		{Pt(101, 50), "--R-"},
		{Pt(50, -1), "-B--"},
		{Pt(-1, 101), "T--L"},
		{Pt(101, -1), "-BR-"},
	}
	for _, tc := range cases {
		if got := unitView.code(tc.p).String(); got != tc.want {
			t.Errorf("code(%v) = %s, want %s", tc.p, got, tc.want)
		}
	}
}

func TestClipStateString(t *testing.T) {
	for s, want := range map[ClipState]string{
		StateTesting:  "testing",
		StateAccepted: "accepted",
		StateRejected: "rejected",
		StateClipping: "clipping",
		ClipState(9):  "ClipState(9)",
	} {
		if got := s.String(); got != want {
			t.Errorf("%d: got %q, want %q", int(s), got, want)
		}
	}
}

func TestViewportRect(t *testing.T) {
	r := rect.Rect{LLx: -1, LLy: 2, URx: 30, URy: 40}
	if got := NewViewport(r).Rect(); got != r {
		t.Errorf("got %v, want %v", got, r)
	}
	v := NewViewport(r)
	if !v.ContainsPixel(Pixel{30, 40}) || v.ContainsPixel(Pixel{31, 40}) {
		t.Error("ContainsPixel disagrees with the border rule")
	}
}

func TestClipLineNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	cases := []struct {
		name   string
		p0, p1 Point
	}{
		{"NaN", Pt(nan, nan), Pt(50, 50)},
		{"NaN inside range", Pt(50, nan), Pt(50, 50)},
		{"-Inf", Pt(-inf, 50), Pt(50, 50)},
		{"+Inf", Pt(50, 50), Pt(10, inf)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, ok, err := unitView.ClipLine(tc.p0, tc.p1)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("got %v, want ErrInvalidArgument", err)
			}
			if ok {
				t.Error("non-finite segment reported as visible")
			}
		})
	}
}
