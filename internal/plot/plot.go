// seehuhn.de/go/rolloff - edge rolloff models for imaging sensors
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

// Package plot draws sampled rolloff curves, either into a PDF page or into
// a raster image.
package plot

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/rolloff"
)

// Curve is a polyline through sampled function values.
type Curve struct {
	Points []vec.Vec2

	// Window is the data range shown in the plot.
	// If this is the zero rectangle, the bounding box of Points is used.
	Window rect.Rect
}

// window returns the data range of the plot.  Degenerate extents are
// widened so that the data to device transformation is invertible.
func (c Curve) window() rect.Rect {
	w := c.Window
	if w == (rect.Rect{}) {
		w = rolloff.Bounds(c.Points)
	}
	if w.URx <= w.LLx {
		w.LLx -= 0.5
		w.URx = w.LLx + 1
	}
	if w.URy <= w.LLy {
		w.LLy -= 0.5
		w.URy = w.LLy + 1
	}
	return w
}

// fit returns the matrix which maps the data rectangle src onto dst.
// dst may be flipped, for example to map onto image coordinates.
func fit(src, dst rect.Rect) matrix.Matrix {
	sx := (dst.URx - dst.LLx) / (src.URx - src.LLx)
	sy := (dst.URy - dst.LLy) / (src.URy - src.LLy)
	return matrix.Matrix{
		sx, 0,
		0, sy,
		dst.LLx - sx*src.LLx, dst.LLy - sy*src.LLy,
	}
}

// apply transforms the point p using M.
func apply(M matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: M[0]*p.X + M[2]*p.Y + M[4],
		Y: M[1]*p.X + M[3]*p.Y + M[5],
	}
}

// devicePath returns the curve, transformed by M, as a path with one open
// subpath per run of finite points.
func (c Curve) devicePath(M matrix.Matrix) *path.Data {
	p := &path.Data{}
	segments(c.Points, func(seg []vec.Vec2) {
		for i, pt := range seg {
			if i == 0 {
				p.MoveTo(apply(M, pt))
			} else {
				p.LineTo(apply(M, pt))
			}
		}
	})
	return p
}

// segments calls yield for every maximal run of finite points.
func segments(pts []vec.Vec2, yield func([]vec.Vec2)) {
	start := -1
	for i, p := range pts {
		finite := isFinite(p.X) && isFinite(p.Y)
		switch {
		case finite && start < 0:
			start = i
		case !finite && start >= 0:
			yield(pts[start:i])
			start = -1
		}
	}
	if start >= 0 {
		yield(pts[start:])
	}
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
