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

// Package affine implements 2D affine transformations as homogeneous
// 3×3 matrices.
//
// Matrices act on column vectors [x y 1]ᵗ.  In a product A.Mul(B) the
// right-hand factor B is applied to a point first.  To rotate about a pivot
// P the three steps are composed as
//
//	Translate(P).Mul(rotation).Mul(Translate(-P))
//
// which is what [Rotate], [Scale] and [Shear] return.
package affine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidArgument is returned when the operands of a general matrix
// product are not conformable.
var ErrInvalidArgument = errors.New("affine: invalid argument")

// Matrix is a homogeneous 2D transformation in row-major order.
// For the builders in this package the bottom row is always [0 0 1].
type Matrix [3][3]float64

// Identity is the identity transformation.
var Identity = Matrix{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Matrix {
	return Matrix{
		{1, 0, dx},
		{0, 1, dy},
		{0, 0, 1},
	}
}

// TranslateBetween returns the translation which moves (x0, y0) to (x1, y1).
func TranslateBetween(x0, y0, x1, y1 float64) Matrix {
	return Translate(x1-x0, y1-y0)
}

// Rotate returns a counter-clockwise rotation by angle degrees around the
// pivot (px, py).
func Rotate(angle, px, py float64) Matrix {
	s, c := math.Sincos(angle * math.Pi / 180)
	r := Matrix{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
	return aboutPivot(r, px, py)
}

// Scale returns a scaling by the factors sx and sy which keeps the pivot
// (px, py) fixed.
func Scale(sx, sy, px, py float64) Matrix {
	s := Matrix{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
	return aboutPivot(s, px, py)
}

// Shear returns a shear transformation with x-factor shx and y-factor shy
// which keeps the pivot (px, py) fixed:
//
//	x' = x + shx·y
//	y' = shy·x + y
//
// (relative to the pivot).
func Shear(shx, shy, px, py float64) Matrix {
	s := Matrix{
		{1, shx, 0},
		{shy, 1, 0},
		{0, 0, 1},
	}
	return aboutPivot(s, px, py)
}

// MirrorX returns the reflection in the x-axis (y ↦ -y).
func MirrorX() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, -1, 0},
		{0, 0, 1},
	}
}

// MirrorY returns the reflection in the y-axis (x ↦ -x).
func MirrorY() Matrix {
	return Matrix{
		{-1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// aboutPivot conjugates m with a translation, so that (px, py) takes the
// role of the origin.  The order of the factors is significant.
func aboutPivot(m Matrix, px, py float64) Matrix {
	return Translate(px, py).Mul(m).Mul(Translate(-px, -py))
}

// Mul returns the matrix product A·B.  The resulting transformation first
// applies B, then A.
func (A Matrix) Mul(B Matrix) Matrix {
	var C Matrix
	for i := range 3 {
		for j := range 3 {
			var sum float64
			for k := range 3 {
				sum += A[i][k] * B[k][j]
			}
			C[i][j] = sum
		}
	}
	return C
}

// Apply transforms the point v, promoted to the column [v.X v.Y 1]ᵗ.
// Only the first two rows of the product are returned.
func (A Matrix) Apply(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: A[0][0]*v.X + A[0][1]*v.Y + A[0][2],
		Y: A[1][0]*v.X + A[1][1]*v.Y + A[1][2],
	}
}

// ApplyH transforms a point given in homogeneous coordinates.
// The result is not renormalized.
func (A Matrix) ApplyH(p [3]float64) [3]float64 {
	var q [3]float64
	for i := range 3 {
		q[i] = A[i][0]*p[0] + A[i][1]*p[1] + A[i][2]*p[2]
	}
	return q
}

// IsAffine reports whether the bottom row of A is [0 0 1].
func (A Matrix) IsAffine() bool {
	return A[2][0] == 0 && A[2][1] == 0 && A[2][2] == 1
}

// CTM converts A to the six-element form used by PDF and PostScript.
// The bottom row of A is ignored.
func (A Matrix) CTM() matrix.Matrix {
	return matrix.Matrix{
		A[0][0], A[1][0],
		A[0][1], A[1][1],
		A[0][2], A[1][2],
	}
}

// FromCTM converts a six-element PDF transformation matrix to a
// homogeneous 3×3 matrix.
func FromCTM(m matrix.Matrix) Matrix {
	return Matrix{
		{m[0], m[2], m[4]},
		{m[1], m[3], m[5]},
		{0, 0, 1},
	}
}

// Dense returns the entries of A as a slice of rows.
func (A Matrix) Dense() [][]float64 {
	rows := make([][]float64, 3)
	for i := range rows {
		rows[i] = []float64{A[i][0], A[i][1], A[i][2]}
	}
	return rows
}

// String formats the matrix one row per line.
func (A Matrix) String() string {
	b := &strings.Builder{}
	for i, row := range A {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(b, "[%8.3f %8.3f %8.3f]", row[0], row[1], row[2])
	}
	return b.String()
}

// MulDense multiplies two general matrices, given as slices of rows.
// A 3×1 column can be used for b to transform a single point.
// If the inner dimensions do not agree, or if the rows of an operand have
// different lengths, ErrInvalidArgument is returned.
func MulDense(a, b [][]float64) ([][]float64, error) {
	n, inner, err := dims(a)
	if err != nil {
		return nil, fmt.Errorf("left operand: %w", err)
	}
	bRows, m, err := dims(b)
	if err != nil {
		return nil, fmt.Errorf("right operand: %w", err)
	}
	if inner != bRows {
		return nil, fmt.Errorf("cannot multiply %d×%d by %d×%d: %w",
			n, inner, bRows, m, ErrInvalidArgument)
	}

	c := make([][]float64, n)
	for i := range c {
		c[i] = make([]float64, m)
		for j := range m {
			var sum float64
			for k := range inner {
				sum += a[i][k] * b[k][j]
			}
			c[i][j] = sum
		}
	}
	return c, nil
}

// dims returns the shape of a rectangular matrix.
func dims(a [][]float64) (rows, cols int, err error) {
	if len(a) == 0 || len(a[0]) == 0 {
		return 0, 0, fmt.Errorf("empty matrix: %w", ErrInvalidArgument)
	}
	cols = len(a[0])
	for i, row := range a {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("row %d has %d columns, expected %d: %w",
				i, len(row), cols, ErrInvalidArgument)
		}
	}
	return len(a), cols, nil
}
