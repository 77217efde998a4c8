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
	"fmt"
	"math"
)

// EdgeRolloff describes the edge rolloff effect along one axis of a sensor.
//
// A nominal pixel coordinate x, measured from the edge at x = 0, is mapped
// to the actual coordinate
//
//	x + A*(exp(-(w - x)/s) - exp(-x/s))
//
// where A is the amplitude, s the length scale and w the width of the
// sensor, all in pixels.
//
// EdgeRolloff values are immutable and safe for concurrent use.
type EdgeRolloff struct {
	amplitude float64
	scale     float64
	width     float64
}

// NewEdgeRolloff returns the rolloff model with the given parameters.
//
// The parameters are not checked.  If scale is zero, Evaluate and Derivative
// return infinite or NaN values.  Use [NewEdgeRolloffChecked] to reject
// such parameters up front.
func NewEdgeRolloff(amplitude, scale, width float64) EdgeRolloff {
	return EdgeRolloff{
		amplitude: amplitude,
		scale:     scale,
		width:     width,
	}
}

// NewEdgeRolloffChecked is like [NewEdgeRolloff], but returns an
// [*InvalidParameterError] if a parameter is not finite or if scale is zero.
func NewEdgeRolloffChecked(amplitude, scale, width float64) (EdgeRolloff, error) {
	p := Params{Amplitude: amplitude, Scale: scale, Width: width}
	if err := p.Check(); err != nil {
		return EdgeRolloff{}, err
	}
	return p.New(), nil
}

// Amplitude returns the amplitude of the rolloff effect, in pixels.
func (e EdgeRolloff) Amplitude() float64 {
	return e.amplitude
}

// Scale returns the length scale of the rolloff effect, in pixels.
func (e EdgeRolloff) Scale() float64 {
	return e.scale
}

// Width returns the width of the sensor, in pixels.
func (e EdgeRolloff) Width() float64 {
	return e.width
}

// Params returns the parameters of the model.
func (e EdgeRolloff) Params() Params {
	return Params{Amplitude: e.amplitude, Scale: e.scale, Width: e.width}
}

// Domain returns the range of nominal pixel coordinates, [0, width].
// Evaluate and Derivative accept values outside this range and
// extrapolate.
func (e EdgeRolloff) Domain() (float64, float64) {
	return 0, e.width
}

// Name returns "EdgeRolloffFunctor".
func (e EdgeRolloff) Name() string {
	return "EdgeRolloffFunctor"
}

// Evaluate maps the nominal pixel coordinate x to the actual coordinate.
func (e EdgeRolloff) Evaluate(x float64) float64 {
	return x + e.amplitude*(math.Exp(-(e.width-x)/e.scale)-math.Exp(-x/e.scale))
}

// Derivative returns the derivative of Evaluate with respect to x.
func (e EdgeRolloff) Derivative(x float64) float64 {
	return 1 + e.amplitude/e.scale*(math.Exp(-(e.width-x)/e.scale)+math.Exp(-x/e.scale))
}

// Clone returns a copy of e.
func (e EdgeRolloff) Clone() Functor {
	return e
}

// Inverse returns the nominal coordinate x with Evaluate(x) == y, using
// [DefaultTolerance] and [DefaultMaxIter].
func (e EdgeRolloff) Inverse(y float64) (float64, error) {
	return Inverse(e, y, DefaultTolerance, DefaultMaxIter)
}

func (e EdgeRolloff) String() string {
	return fmt.Sprintf("%s(amplitude=%g, scale=%g, width=%g)",
		e.Name(), e.amplitude, e.scale, e.width)
}
