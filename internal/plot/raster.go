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
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
)

// lineWidth is the thickness of rasterized curves, in pixels.
const lineWidth = 1.5

// Rasterize draws the curve c into a new width×height coverage image.
// Each pixel holds the fraction of its area covered by the curve.
func Rasterize(c Curve, width, height int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return dst
	}

	// Image rows run top to bottom, so the y axis is flipped.
	pad := lineWidth
	M := fit(c.window(), rect.Rect{
		LLx: pad,
		LLy: float64(height) - pad,
		URx: float64(width) - pad,
		URy: pad,
	})

	r := vector.NewRasterizer(width, height)
	if stroke(r, c.devicePath(M).Iter(), lineWidth) {
		src := image.NewUniform(color.Alpha{A: 255})
		r.Draw(dst, dst.Bounds(), src, image.Point{})
	}
	return dst
}

// WritePNG rasterizes c and writes the result as a grayscale PNG image,
// white curve on black background.
func WritePNG(w io.Writer, c Curve, width, height int) error {
	a := Rasterize(c, width, height)
	img := &image.Gray{Pix: a.Pix, Stride: a.Stride, Rect: a.Rect}
	return png.Encode(w, img)
}
