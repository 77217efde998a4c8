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

package rolloff

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Sample evaluates f at n equally spaced points between x0 and x1, both
// included, and returns the points (x, f(x)).
// If n < 2, only x0 is sampled.
func Sample(f Functor, x0, x1 float64, n int) []vec.Vec2 {
	return sample(f, x0, x1, n, false)
}

// Displacement is like [Sample], but returns the points (x, f(x) - x).
// For an [EdgeRolloff] this is the shift of the pixel position caused by
// the rolloff.
func Displacement(f Functor, x0, x1 float64, n int) []vec.Vec2 {
	return sample(f, x0, x1, n, true)
}

func sample(f Functor, x0, x1 float64, n int, shift bool) []vec.Vec2 {
	if n < 2 {
		n = 1
	}
	res := make([]vec.Vec2, n)
	for i := range n {
		x := x0
		if i == n-1 && n > 1 {
			x = x1
		} else if i > 0 {
			x = x0 + (x1-x0)*float64(i)/float64(n-1)
		}
		y := f.Evaluate(x)
		if shift {
			y -= x
		}
		res[i] = vec.Vec2{X: x, Y: y}
	}
	return res
}

// Bounds returns the smallest rectangle which contains all finite points
// in pts.  The zero rectangle is returned if there are no such points.
func Bounds(pts []vec.Vec2) rect.Rect {
	var r rect.Rect
	first := true
	for _, p := range pts {
		if !isFinite(p.X) || !isFinite(p.Y) {
			continue
		}
		if first {
			r = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
			first = false
			continue
		}
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
