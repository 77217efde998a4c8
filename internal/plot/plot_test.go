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
	"bytes"
	"image"
	"image/png"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/rolloff"
)

func TestFit(t *testing.T) {
	src := rect.Rect{LLx: 0, LLy: -1, URx: 100, URy: 1}
	dst := rect.Rect{LLx: 10, LLy: 90, URx: 210, URy: 10}
	M := fit(src, dst)

	cases := []struct {
		in, want vec.Vec2
	}{
		{vec.Vec2{X: 0, Y: -1}, vec.Vec2{X: 10, Y: 90}},
		{vec.Vec2{X: 100, Y: 1}, vec.Vec2{X: 210, Y: 10}},
		{vec.Vec2{X: 50, Y: 0}, vec.Vec2{X: 110, Y: 50}},
	}
	for _, test := range cases {
		if d := cmp.Diff(test.want, apply(M, test.in)); d != "" {
			t.Errorf("%v (-want +got):\n%s", test.in, d)
		}
	}
}

func TestWindow(t *testing.T) {
	c := Curve{Points: rolloff.Displacement(rolloff.Identity, 0, 10, 11)}
	w := c.window()
	if w.URx <= w.LLx || w.URy <= w.LLy {
		t.Errorf("degenerate window %v", w)
	}
	if w.LLx != 0 || w.URx != 10 {
		t.Errorf("x range [%g, %g], want [0, 10]", w.LLx, w.URx)
	}

	given := rect.Rect{LLx: -1, LLy: -2, URx: 3, URy: 4}
	c.Window = given
	if w := c.window(); w != given {
		t.Errorf("window %v, want %v", w, given)
	}
}

func TestSegments(t *testing.T) {
	nan := vec.Vec2{X: 2, Y: math.NaN()}
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, nan, {X: 3, Y: 3}, nan, nan}

	var lengths []int
	segments(pts, func(seg []vec.Vec2) {
		lengths = append(lengths, len(seg))
	})
	if d := cmp.Diff([]int{2, 1}, lengths); d != "" {
		t.Errorf("unexpected segments (-want +got):\n%s", d)
	}
}

func TestRasterize(t *testing.T) {
	f := rolloff.NewEdgeRolloff(2, 30, 4000)
	c := Curve{Points: rolloff.Displacement(f, 0, 4000, 201)}
	img := Rasterize(c, 64, 32)

	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Fatalf("image size %v", b)
	}

	total := 0
	for _, a := range img.Pix {
		total += int(a)
	}
	if total == 0 {
		t.Error("nothing was drawn")
	}

	// The displacement is close to zero in the middle of the sensor, which
	// lies half way between the extremes -2 and 2.
	mid := img.Bounds().Dy() / 2
	col := 32
	hit := false
	for y := mid - 2; y <= mid+2; y++ {
		if img.AlphaAt(col, y).A > 0 {
			hit = true
		}
	}
	if !hit {
		t.Errorf("curve does not pass through the centre of the image")
	}
}

// ink returns the total coverage of the image.
func ink(img *image.Alpha) int {
	total := 0
	for _, a := range img.Pix {
		total += int(a)
	}
	return total
}

func TestRasterizeSteep(t *testing.T) {
	window := rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}
	flat := Curve{
		Points: []vec.Vec2{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}},
		Window: window,
	}
	steep := Curve{
		Points: []vec.Vec2{{X: 0.5, Y: 0}, {X: 0.501, Y: 1}},
		Window: window,
	}
	diagonal := Curve{
		Points: []vec.Vec2{{X: 0, Y: 0}, {X: 0.5, Y: 0.5}, {X: 1, Y: 1}},
		Window: window,
	}

	flatInk := ink(Rasterize(flat, 200, 200))
	if flatInk == 0 {
		t.Fatal("horizontal line was not drawn")
	}
	for _, test := range []struct {
		name string
		c    Curve
	}{
		{"steep", steep},
		{"diagonal", diagonal},
	} {
		got := ink(Rasterize(test.c, 200, 200))
		ratio := float64(got) / float64(flatInk)
		if test.name == "diagonal" {
			ratio /= math.Sqrt2
		}
		if ratio < 0.9 || ratio > 1.1 {
			t.Errorf("%s: ink %d, horizontal line has %d", test.name, got, flatInk)
		}
	}
}

func TestRasterizeOverlap(t *testing.T) {
	// A curve which doubles back on itself must not cancel out.
	c := Curve{
		Points: []vec.Vec2{{X: 0, Y: 0.5}, {X: 1, Y: 0.5}, {X: 0, Y: 0.5}},
		Window: rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1},
	}
	img := Rasterize(c, 100, 100)
	if a := img.AlphaAt(50, 50).A; a == 0 {
		t.Error("overlapping segments cancelled")
	}
}

func TestRasterizeEmpty(t *testing.T) {
	img := Rasterize(Curve{}, 16, 16)
	for i, a := range img.Pix {
		if a != 0 {
			t.Fatalf("pixel %d has coverage %d", i, a)
		}
	}
}

func TestWritePNG(t *testing.T) {
	c := Curve{Points: rolloff.Sample(rolloff.Identity, 0, 1, 2)}
	buf := &bytes.Buffer{}
	if err := WritePNG(buf, c, 40, 30); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("image size %v", b)
	}
}

func TestWritePDF(t *testing.T) {
	f := rolloff.NewEdgeRolloff(0.5, 10, 100)
	c := Curve{Points: rolloff.Displacement(f, 0, 100, 101)}
	buf := &bytes.Buffer{}
	if err := WritePDF(buf, c); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-1.7")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(buf.Len(), 16)])
	}
}
