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
	"io"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// Page layout in PDF points.
const (
	pageWidth  = 432.0
	pageHeight = 288.0
	margin     = 36.0
)

// WritePDF writes a single-page PDF file showing the curve c.
//
// The plot area is framed.  If the data window contains y = 0, the
// zero line is drawn dashed.
func WritePDF(w io.Writer, c Curve) error {
	paper := &pdf.Rectangle{URx: pageWidth, URy: pageHeight}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	area := rect.Rect{
		LLx: margin,
		LLy: margin,
		URx: pageWidth - margin,
		URy: pageHeight - margin,
	}
	win := c.window()
	M := fit(win, area)

	// frame
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(0.5)
	page.Rectangle(area.LLx, area.LLy, area.URx-area.LLx, area.URy-area.LLy)
	page.Stroke()

	if win.LLy < 0 && win.URy > 0 {
		page.PushGraphicsState()
		page.SetLineDash([]float64{3, 3}, 0)
		y := apply(M, vec.Vec2{}).Y
		page.MoveTo(area.LLx, y)
		page.LineTo(area.URx, y)
		page.Stroke()
		page.PopGraphicsState()
	}

	page.SetStrokeColor(color.DeviceRGB{0.1, 0.2, 0.7})
	page.SetLineWidth(1)
	page.SetLineJoin(graphics.LineJoinRound)
	// Isolated points are skipped, so that every subpath which is started
	// also gets painted.
	var start vec.Vec2
	pending := false
	drawn := false
	for cmd, pts := range c.devicePath(M).Iter() {
		switch cmd {
		case path.CmdMoveTo:
			start = pts[0]
			pending = true
		case path.CmdLineTo:
			if pending {
				page.MoveTo(start.X, start.Y)
				pending = false
			}
			page.LineTo(pts[0].X, pts[0].Y)
			drawn = true
		}
	}
	if drawn {
		page.Stroke()
	}

	return page.Close()
}
