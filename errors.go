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

import "errors"

// Errors returned by the rasterization and clipping functions.  All of them
// are reported at the point of detection and abort only the operation in
// progress.
var (
	// ErrInvalidArgument indicates a parameter outside the domain of an
	// operation, for example a negative circle radius.
	ErrInvalidArgument = errors.New("raster: invalid argument")

	// ErrMalformedPolygon indicates a polygon which violates the
	// preconditions of the scan line fill: too few vertices, repeated
	// vertices, or an odd number of active edges on a scan line.
	ErrMalformedPolygon = errors.New("raster: malformed polygon")

	// ErrDivisionByZero indicates that an intersection could not be
	// computed because the segment has no extent along the required axis.
	ErrDivisionByZero = errors.New("raster: division by zero")
)
