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

package plot

import (
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// flatness is the maximum deviation, in pixels, between a round join and
// the polygon which approximates it.
const flatness = 0.1

// stroke adds the outline of the polyline subpaths in p, stroked with the
// given width, round joins and round caps, to r.  Only MoveTo and LineTo
// commands are used.  The return value reports whether anything was added.
//
// All polygons are added with the same orientation, so that overlaps
// between segment bodies and joins accumulate instead of cancelling.
func stroke(r *vector.Rasterizer, p path.Path, width float64) bool {
	d := width / 2
	drawn := false

	var current vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			addDisc(r, current, d)
			drawn = true
		case path.CmdLineTo:
			next := pts[0]
			addSegment(r, current, next, d)
			addDisc(r, next, d)
			current = next
		}
	}
	return drawn
}

// addSegment adds the rectangle of half-width d around the segment from a
// to b.  Zero-length segments have no direction and are skipped; the discs
// at the endpoints cover them.
func addSegment(r *vector.Rasterizer, a, b vec.Vec2, d float64) {
	l := b.Sub(a).Length()
	if l == 0 {
		return
	}
	T := b.Sub(a).Mul(1 / l)
	N := vec.Vec2{X: -T.Y, Y: T.X}.Mul(d)

	moveTo(r, a.Add(N))
	lineTo(r, b.Add(N))
	lineTo(r, b.Sub(N))
	lineTo(r, a.Sub(N))
	r.ClosePath()
}

// addDisc adds a polygon approximating the circle of radius d around
// center.  The circle is traversed in the same rotational direction as the
// rectangles from addSegment.
func addDisc(r *vector.Rasterizer, center vec.Vec2, d float64) {
	// A chord spanning angle θ deviates from the circle by d*(1 - cos(θ/2)).
	angleStep := 2 * math.Acos(1-flatness/d)
	if angleStep <= 0 || math.IsNaN(angleStep) {
		angleStep = math.Pi / 4
	}
	n := max(int(math.Ceil(2*math.Pi/angleStep)), 8)

	for i := range n {
		phi := -2 * math.Pi * float64(i) / float64(n)
		pt := vec.Vec2{
			X: center.X + d*math.Cos(phi),
			Y: center.Y + d*math.Sin(phi),
		}
		if i == 0 {
			moveTo(r, pt)
		} else {
			lineTo(r, pt)
		}
	}
	r.ClosePath()
}

func moveTo(r *vector.Rasterizer, p vec.Vec2) {
	r.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(r *vector.Rasterizer, p vec.Vec2) {
	r.LineTo(float32(p.X), float32(p.Y))
}
