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
	"maps"
	"regexp"
	"slices"
	"testing"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(All)) {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		for _, tc := range All[category] {
			name := category + "_" + tc.Name
			if !validName.MatchString(tc.Name) {
				t.Errorf("invalid test case name %q", name)
			}
			if seen[name] {
				t.Errorf("duplicate test case %q", name)
			}
			seen[name] = true

			if len(tc.X) == 0 {
				t.Errorf("%s: no sample points", name)
			}
			if err := tc.Params.Check(); err != nil {
				t.Errorf("%s: %v", name, err)
			}
		}
	}
}

func TestLinspace(t *testing.T) {
	x := linspace(0, 4000, 41)
	if x[0] != 0 || x[40] != 4000 || x[1] != 100 {
		t.Errorf("unexpected points %v", x)
	}
}
