// Command export writes the rolloff test cases, together with the model
// values at every sample point, to JSON.  The output is used to cross-check
// other implementations of the rolloff model.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/rolloff/testcases"
)

func main() {
	outFile := flag.String("o", "testdata/testcases.json", "output file")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create(*outFile)
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

type jsonTestCase struct {
	Name      string       `json:"name"`
	Amplitude float64      `json:"amplitude"`
	Scale     float64      `json:"scale"`
	Width     float64      `json:"width"`
	Samples   []jsonSample `json:"samples"`
}

type jsonSample struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Derivative float64 `json:"dydx"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	f := tc.Model()
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Amplitude: tc.Params.Amplitude,
		Scale:     tc.Params.Scale,
		Width:     tc.Params.Width,
		Samples:   make([]jsonSample, len(tc.X)),
	}
	for i, x := range tc.X {
		jtc.Samples[i] = jsonSample{
			X:          x,
			Y:          f.Evaluate(x),
			Derivative: f.Derivative(x),
		}
	}
	return jtc
}
