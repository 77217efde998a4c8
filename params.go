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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Params holds the parameters of an [EdgeRolloff] model in keyword form.
//
// The field order and the keys amplitude, scale and width are shared with
// existing calibration files and scripts.
type Params struct {
	Amplitude float64 `json:"amplitude"` // amplitude of the rolloff (pixels)
	Scale     float64 `json:"scale"`     // length scale of the rolloff (pixels)
	Width     float64 `json:"width"`     // width of the sensor (pixels)
}

var paramNames = [3]string{"amplitude", "scale", "width"}

// New returns the rolloff model for p, without checking the parameters.
func (p Params) New() EdgeRolloff {
	return NewEdgeRolloff(p.Amplitude, p.Scale, p.Width)
}

// NewChecked returns the rolloff model for p, after calling [Params.Check].
func (p Params) NewChecked() (EdgeRolloff, error) {
	return NewEdgeRolloffChecked(p.Amplitude, p.Scale, p.Width)
}

// Check verifies that all parameters are finite and that the scale is
// non-zero.
func (p Params) Check() error {
	for i, v := range p.values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidParameterError{
				Param:   paramNames[i],
				Value:   v,
				Message: "must be finite",
			}
		}
	}
	if p.Scale == 0 {
		return &InvalidParameterError{
			Param:   "scale",
			Value:   p.Scale,
			Message: "must be non-zero",
		}
	}
	return nil
}

func (p Params) values() [3]float64 {
	return [3]float64{p.Amplitude, p.Scale, p.Width}
}

// String formats the parameters in the keyword form accepted by
// [ParseParams].
func (p Params) String() string {
	return fmt.Sprintf("amplitude=%g,scale=%g,width=%g", p.Amplitude, p.Scale, p.Width)
}

// Set implements the [flag.Value] interface.
func (p *Params) Set(s string) error {
	q, err := ParseParams(s)
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// ParseParams parses rolloff parameters from a comma-separated list.
//
// Two forms are accepted: three positional values in the order amplitude,
// scale, width (for example "2,30,4000"), or keyword assignments in any
// order (for example "width=4000,amplitude=2,scale=30").  In both forms
// all three parameters must be given.
func ParseParams(s string) (Params, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Params{}, fmt.Errorf("rolloff parameters %q: need 3 values, got %d", s, len(fields))
	}

	var vals [3]float64
	var seen [3]bool
	keyword := strings.Contains(fields[0], "=")
	for i, field := range fields {
		field = strings.TrimSpace(field)
		pos := i
		if key, val, ok := strings.Cut(field, "="); ok != keyword {
			return Params{}, fmt.Errorf("rolloff parameters %q: cannot mix positional and keyword values", s)
		} else if ok {
			key = strings.TrimSpace(key)
			pos = paramIndex(key)
			if pos < 0 {
				return Params{}, fmt.Errorf("rolloff parameters %q: unknown parameter %q", s, key)
			}
			if seen[pos] {
				return Params{}, fmt.Errorf("rolloff parameters %q: duplicate parameter %q", s, key)
			}
			field = strings.TrimSpace(val)
		}
		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Params{}, fmt.Errorf("rolloff parameters %q: %s: %w", s, paramNames[pos], err)
		}
		vals[pos] = x
		seen[pos] = true
	}

	return Params{Amplitude: vals[0], Scale: vals[1], Width: vals[2]}, nil
}

func paramIndex(name string) int {
	for i, n := range paramNames {
		if n == name {
			return i
		}
	}
	return -1
}

// ReadParams decodes rolloff parameters from a JSON object with the keys
// amplitude, scale and width.  Unknown or missing keys are an error.
func ReadParams(r io.Reader) (Params, error) {
	var raw struct {
		Amplitude *float64 `json:"amplitude"`
		Scale     *float64 `json:"scale"`
		Width     *float64 `json:"width"`
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return Params{}, fmt.Errorf("rolloff parameters: %w", err)
	}

	var missing []string
	for i, v := range []*float64{raw.Amplitude, raw.Scale, raw.Width} {
		if v == nil {
			missing = append(missing, paramNames[i])
		}
	}
	if missing != nil {
		return Params{}, errors.New("rolloff parameters: missing " + strings.Join(missing, ", "))
	}

	return Params{Amplitude: *raw.Amplitude, Scale: *raw.Scale, Width: *raw.Width}, nil
}
