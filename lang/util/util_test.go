// Mgmt
// Copyright (C) 2013-2024+ James Shubin and the project contributors
// Written by James Shubin <james@shubin.ca> and the project contributors
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

//go:build !root

package util

import (
	"sort"
	"testing"
)

func TestToIng0(t *testing.T) {
	testCases := map[string]string{
		"begin": "beginning",
		"start": "starting",
		"Begin": "Beginning",
		"START": "Starting",
		"Carry": "Carrying",
		"Bake":  "Baking",
		"bake":  "baking",
		"tie":   "tying",
		"die":   "dying",
		"see":   "seeing",
		"free":  "freeing",
		"play":  "playing",
		"run":   "runing", // no consonant doubling
		"":      "ing",
	}

	keys := []string{}
	for k := range testCases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e := testCases[k]
		if out := ToIng(k); out != e {
			t.Errorf("key: `%s` expected: `%s`, got: `%s`", k, e, out)
		}
	}
}

func TestMatchCase0(t *testing.T) {
	if s := MatchCase("Word", "other"); s != "Other" {
		t.Errorf("expected capitalized result, got: %s", s)
	}
	if s := MatchCase("word", "other"); s != "other" {
		t.Errorf("expected unchanged result, got: %s", s)
	}
	if s := MatchCase("", "other"); s != "other" {
		t.Errorf("expected unchanged result, got: %s", s)
	}
}

func TestIsPunctuation0(t *testing.T) {
	testCases := map[string]bool{
		"":        false,
		" .":      false,
		"word":    false,
		"(":       false,
		".":       true,
		", and":   true,
		"; then":  true,
		": x":     true,
		"!":       true,
		"?":       true,
		") after": true,
	}
	for k, e := range testCases {
		if b := IsPunctuation(k); b != e {
			t.Errorf("key: `%s` expected: %t, got: %t", k, e, b)
		}
	}
}

func TestValidateBinderName0(t *testing.T) {
	testCases := map[string]bool{
		"":      false,
		"v":     true,
		"verb2": true,
		"a_b":   true,
		"a.b":   false,
		"a b":   false,
		"#v":    false,
	}
	for k, e := range testCases {
		if b := ValidateBinderName(k); b != e {
			t.Errorf("key: `%s` expected: %t, got: %t", k, e, b)
		}
	}
}
