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
	"errors"
	"fmt"
)

// InvalidParameterError is returned when a model parameter cannot be used.
type InvalidParameterError struct {
	Param   string
	Value   float64
	Message string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %g: %s", e.Param, e.Value, e.Message)
}

func (e *InvalidParameterError) Is(target error) bool {
	_, ok := target.(*InvalidParameterError)
	return ok
}

// OutOfRangeError is returned by [Inverse] when a control argument is
// outside its allowed range.
type OutOfRangeError struct {
	Param   string
	Message string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s out of range: %s", e.Param, e.Message)
}

func (e *OutOfRangeError) Is(target error) bool {
	_, ok := target.(*OutOfRangeError)
	return ok
}

// ErrNoConvergence indicates that an iterative method did not converge.
var ErrNoConvergence = errors.New("no convergence")

// ConvergenceError gives details when [Inverse] fails to converge.
// It matches [ErrNoConvergence] with [errors.Is].
type ConvergenceError struct {
	Y        float64 // the target function value
	X        float64 // the last iterate
	Residual float64 // y - f(x) at the last iterate
	Iter     int     // the number of iterations performed
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("inverse of %g: %v after %d iterations (x=%g, residual=%g)",
		e.Y, ErrNoConvergence, e.Iter, e.X, e.Residual)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrNoConvergence
}
