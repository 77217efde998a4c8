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

// Functor is a scalar function of one variable, together with its
// derivative.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Functor interface {
	// Name returns a short identifier for the kind of function.
	Name() string

	// Evaluate returns the function value at x.
	Evaluate(x float64) float64

	// Derivative returns the derivative of the function at x.
	Derivative(x float64) float64

	// Clone returns an independent copy of the function.
	Clone() Functor
}

// Linear is the function y = Slope*x + Offset.
//
// With Slope 1 and Offset 0 this is the identity, which describes a sensor
// without any edge effects.
type Linear struct {
	Slope  float64
	Offset float64
}

// Identity is the linear function which maps every x to itself.
var Identity = Linear{Slope: 1}

// Name returns "LinearFunctor".
func (f Linear) Name() string {
	return "LinearFunctor"
}

// Evaluate returns Slope*x + Offset.
func (f Linear) Evaluate(x float64) float64 {
	return f.Slope*x + f.Offset
}

// Derivative returns Slope.
func (f Linear) Derivative(x float64) float64 {
	return f.Slope
}

// Clone returns a copy of f.
func (f Linear) Clone() Functor {
	return f
}

var (
	_ Functor = Linear{}
	_ Functor = EdgeRolloff{}
)
