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

import "seehuhn.de/go/rolloff"

var lsstSimCases = []TestCase{
	{
		Name:     "sensor_4000",
		Params:   rolloff.Params{Amplitude: 2, Scale: 30, Width: 4000},
		X:        logspace(-8, 1, 10),
		Physical: true,
	},
	{
		Name:     "sensor_4000_full",
		Params:   rolloff.Params{Amplitude: 2, Scale: 30, Width: 4000},
		X:        linspace(0, 4000, 41),
		Physical: true,
	},
	{
		Name:     "small_100",
		Params:   rolloff.Params{Amplitude: 0.5, Scale: 10, Width: 100},
		X:        linspace(0, 100, 21),
		Physical: true,
	},
	{
		Name:     "near_edges",
		Params:   rolloff.Params{Amplitude: 1.5, Scale: 20, Width: 509},
		X:        []float64{0, 0.25, 1, 3, 10, 254.5, 499, 506, 508.75, 509},
		Physical: true,
	},
}

var degenerateCases = []TestCase{
	{
		Name:     "zero_amplitude",
		Params:   rolloff.Params{Amplitude: 0, Scale: 30, Width: 4000},
		X:        linspace(0, 4000, 9),
		Physical: true,
	},
	{
		Name:     "wide_scale",
		Params:   rolloff.Params{Amplitude: 0.1, Scale: 500, Width: 2000},
		X:        linspace(0, 2000, 11),
		Physical: true,
	},
}

var extrapolateCases = []TestCase{
	{
		Name:   "outside_domain",
		Params: rolloff.Params{Amplitude: 0.5, Scale: 10, Width: 100},
		X:      []float64{-20, -5, -0.5, 100.5, 105, 120},
	},
}

var negativeCases = []TestCase{
	{
		Name:     "negative_amplitude",
		Params:   rolloff.Params{Amplitude: -2, Scale: 30, Width: 4000},
		X:        linspace(0, 4000, 17),
		Physical: true,
	},
	{
		Name:   "strong_rolloff",
		Params: rolloff.Params{Amplitude: -50, Scale: 10, Width: 200},
		X:      linspace(0, 200, 11),
	},
}
