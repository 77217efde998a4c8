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

// Command rolloffplot plots an edge rolloff curve.
//
// Usage:
//
//	rolloffplot [options] -rolloff amplitude,scale,width
//	rolloffplot [options] -params calib.json
//
// The parameters can also be given in keyword form, for example
// -rolloff width=4000,amplitude=2,scale=30.  By default the displacement
// f(x) - x is plotted; use -mapping to plot f(x) itself.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"seehuhn.de/go/rolloff"
	"seehuhn.de/go/rolloff/internal/plot"
)

func main() {
	var params rolloff.Params
	flag.Var(&params, "rolloff", "rolloff parameters `amplitude,scale,width`")
	paramsFile := flag.String("params", "", "read rolloff parameters from a JSON `file`")
	pdfFile := flag.String("pdf", "", "write the plot to this PDF `file`")
	pngFile := flag.String("png", "", "write the plot to this PNG `file`")
	pngWidth := flag.Int("png-width", 640, "width of the PNG image in pixels")
	pngHeight := flag.Int("png-height", 400, "height of the PNG image in pixels")
	samples := flag.Int("n", 1001, "number of sample points")
	mapping := flag.Bool("mapping", false, "plot f(x) instead of f(x) - x")
	flag.Parse()

	if *pdfFile == "" && *pngFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *paramsFile != "" {
		p, err := readParams(*paramsFile)
		if err != nil {
			log.Fatal(err)
		}
		params = p
	}

	f, err := params.NewChecked()
	if err != nil {
		log.Fatal(err)
	}

	x0, x1 := f.Domain()
	var c plot.Curve
	if *mapping {
		c.Points = rolloff.Sample(f, x0, x1, *samples)
	} else {
		c.Points = rolloff.Displacement(f, x0, x1, *samples)
	}

	if *pdfFile != "" {
		err := writeFile(*pdfFile, func(out *os.File) error {
			return plot.WritePDF(out, c)
		})
		if err != nil {
			log.Fatal(err)
		}
	}
	if *pngFile != "" {
		err := writeFile(*pngFile, func(out *os.File) error {
			return plot.WritePNG(out, c, *pngWidth, *pngHeight)
		})
		if err != nil {
			log.Fatal(err)
		}
	}
}

func readParams(fileName string) (rolloff.Params, error) {
	fd, err := os.Open(fileName)
	if err != nil {
		return rolloff.Params{}, err
	}
	defer fd.Close()
	return rolloff.ReadParams(fd)
}

func writeFile(fileName string, write func(*os.File) error) error {
	out, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = write(out)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
