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

// Command genpdf plots the rolloff displacement of every test case.
// For each case it writes a PDF file to testdata/plots, showing the shift
// f(x) - x over the sensor width.
package main

import (
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/rolloff"
	"seehuhn.de/go/rolloff/internal/plot"
	"seehuhn.de/go/rolloff/testcases"
)

const plotDir = "testdata/plots"

// numSamples is the number of points used for each curve.
const numSamples = 401

func main() {
	if err := os.MkdirAll(plotDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(plotDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	f := tc.Model()
	x0, x1 := f.Domain()
	if len(tc.X) > 0 {
		x0 = min(x0, slices.Min(tc.X))
		x1 = max(x1, slices.Max(tc.X))
	}
	c := plot.Curve{
		Points: rolloff.Displacement(f, x0, x1, numSamples),
	}

	out, err := os.Create(pdfPath)
	if err != nil {
		return err
	}
	err = plot.WritePDF(out, c)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
