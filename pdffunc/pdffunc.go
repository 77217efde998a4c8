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

// Package pdffunc expresses rolloff models as PDF functions.
//
// The resulting [function.Type4] objects can be embedded into PDF files,
// for example as transfer functions in shadings, and reproduce the rolloff
// curve inside a PDF viewer.
package pdffunc

import (
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/pdf/function"

	"seehuhn.de/go/rolloff"
)

// FromEdgeRolloff returns a PostScript calculator function which computes
// e.Evaluate on the domain [0, width].
//
// PDF functions have no way to represent infinite values, so the
// parameters must be finite, the scale must be positive and the width must
// be positive.  Otherwise an [*rolloff.InvalidParameterError] is returned.
func FromEdgeRolloff(e rolloff.EdgeRolloff) (*function.Type4, error) {
	p := e.Params()
	if err := p.Check(); err != nil {
		return nil, err
	}
	if p.Scale < 0 {
		return nil, &rolloff.InvalidParameterError{
			Param:   "scale",
			Value:   p.Scale,
			Message: "must be positive for PDF functions",
		}
	}
	if p.Width <= 0 {
		return nil, &rolloff.InvalidParameterError{
			Param:   "width",
			Value:   p.Width,
			Message: "must be positive for PDF functions",
		}
	}

	// On [0, width] each exponential lies in (0, 1], so the rolloff term
	// is bounded by 2|A|.
	pad := 2 * math.Abs(p.Amplitude)

	f := &function.Type4{
		Domain:  []float64{0, p.Width},
		Range:   []float64{-pad, p.Width + pad},
		Program: program(p),
	}
	return f, nil
}

// program returns the PostScript code for
//
//	x + A*(exp(-(w - x)/s) - exp(-x/s))
//
// The input x is the only value on the stack when the program starts.
func program(p rolloff.Params) string {
	A := num(p.Amplitude)
	s := num(p.Scale)
	w := num(p.Width)
	e := num(math.E)
	return fmt.Sprintf(
		"dup dup %[3]s sub %[2]s div %[4]s exch exp "+
			"exch neg %[2]s div %[4]s exch exp "+
			"sub %[1]s mul add",
		A, s, w, e)
}

// num formats x as a PostScript real number, without exponent.
func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
