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

package testcases

import (
	"math"

	"seehuhn.de/go/rolloff"
)

// TestCase defines a rolloff model together with the points at which it
// is checked.
type TestCase struct {
	Name   string         // lowercase a-z, 0-9 and _ only
	Params rolloff.Params // the model parameters
	X      []float64      // nominal pixel coordinates to test

	// Physical is set for parameters where the rolloff is small enough that
	// the mapping is increasing on [0, width].
	Physical bool
}

// Model returns the rolloff model for the test case.
func (tc TestCase) Model() rolloff.EdgeRolloff {
	return tc.Params.New()
}

// logspace returns n points spaced evenly on a log scale from 10^a to 10^b.
func logspace(a, b float64, n int) []float64 {
	res := make([]float64, n)
	for i := range n {
		res[i] = math.Pow(10, a+(b-a)*float64(i)/float64(n-1))
	}
	return res
}

// linspace returns n evenly spaced points from a to b, both included.
func linspace(a, b float64, n int) []float64 {
	res := make([]float64, n)
	for i := range n {
		res[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	res[n-1] = b
	return res
}
