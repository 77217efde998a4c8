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
	"testing"
)

var sink float64

// BenchmarkEvaluate measures evaluation of the rolloff model across the
// sensor width.
func BenchmarkEvaluate(b *testing.B) {
	f := NewEdgeRolloff(2, 30, 4000)
	b.ReportAllocs()
	x := 0.0
	for b.Loop() {
		sink = f.Evaluate(x)
		x += 0.5
		if x > 4000 {
			x = 0
		}
	}
}

// BenchmarkDerivative measures evaluation of the derivative.
func BenchmarkDerivative(b *testing.B) {
	f := NewEdgeRolloff(2, 30, 4000)
	b.ReportAllocs()
	x := 0.0
	for b.Loop() {
		sink = f.Derivative(x)
		x += 0.5
		if x > 4000 {
			x = 0
		}
	}
}

// BenchmarkInverse compares the cost of inverting the model for different
// tolerances.
func BenchmarkInverse(b *testing.B) {
	f := NewEdgeRolloff(2, 30, 4000)
	for _, tol := range []float64{1e-4, 1e-7, 1e-10} {
		b.Run(fmt.Sprintf("tol=%g", tol), func(b *testing.B) {
			b.ReportAllocs()
			y := 0.0
			for b.Loop() {
				x, err := Inverse(f, y, tol, DefaultMaxIter)
				if err != nil {
					b.Fatal(err)
				}
				sink = x
				y += 7
				if y > 4000 {
					y = 0
				}
			}
		})
	}
}

// BenchmarkInterface measures calls through the Functor interface.
func BenchmarkInterface(b *testing.B) {
	var f Functor = NewEdgeRolloff(2, 30, 4000)
	b.ReportAllocs()
	for b.Loop() {
		sink = f.Evaluate(17) + f.Derivative(17)
	}
}
