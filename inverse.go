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

import "math"

const (
	// DefaultTolerance is the default residual at which [Inverse] stops.
	DefaultTolerance = 1e-10

	// DefaultMaxIter is the default iteration limit for [Inverse].
	DefaultMaxIter = 1000
)

// Inverse solves f(x) = y for x, using Newton's method started at x = y.
//
// The residual y - f(x) is checked before every step, and x is returned
// once it is smaller than tol in absolute value.  A step taken in the last
// of the maxIter iterations is therefore never accepted unchecked.
// tol must satisfy 0 < tol < 1 and maxIter must be positive, otherwise an
// [*OutOfRangeError] is returned.  If the method does not converge within
// maxIter steps, or if a step is not finite, the error is a
// [*ConvergenceError].
func Inverse(f Functor, y, tol float64, maxIter int) (float64, error) {
	if !(tol > 0 && tol < 1) {
		return 0, &OutOfRangeError{Param: "tol", Message: "need 0 < tol < 1"}
	}
	if maxIter < 1 {
		return 0, &OutOfRangeError{Param: "maxIter", Message: "need maxIter >= 1"}
	}

	x := y
	for i := range maxIter {
		res := y - f.Evaluate(x)
		if math.Abs(res) < tol {
			return x, nil
		}
		dx := res / f.Derivative(x)
		if math.IsNaN(dx) || math.IsInf(dx, 0) {
			return x, &ConvergenceError{Y: y, X: x, Residual: res, Iter: i + 1}
		}
		x += dx
	}
	return x, &ConvergenceError{Y: y, X: x, Residual: y - f.Evaluate(x), Iter: maxIter}
}
