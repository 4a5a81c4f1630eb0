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

// Package util contains some utility functions that are specific to the
// template language, such as the small amount of English word inflection it
// does.
package util

import (
	"regexp"
	"strings"

	"github.com/purpleidea/phrasebook/lang/interfaces"
	"github.com/purpleidea/phrasebook/util"
)

// irregularIng lists verbs whose -ing form doesn't follow the simple rules.
var irregularIng = map[string]string{
	"begin": "beginning",
	"start": "starting",
}

// binderNameRegexp matches valid binder names.
var binderNameRegexp = regexp.MustCompile(`^\w+$`)

// ToIng returns the present participle of a word. It knows a small table of
// irregular verbs, and otherwise turns a trailing "ie" into "ying", drops a
// single trailing "e", and appends "ing". The output is lower case except for
// the first letter, which is capitalized if the input's was.
func ToIng(word string) string {
	lower := strings.ToLower(word)

	if out, exists := irregularIng[lower]; exists {
		return MatchCase(word, out)
	}

	if strings.HasSuffix(lower, "ie") {
		return MatchCase(word, strings.TrimSuffix(lower, "ie")+"ying")
	}
	if strings.HasSuffix(lower, "e") && !strings.HasSuffix(lower, "ee") {
		return MatchCase(word, strings.TrimSuffix(lower, "e")+interfaces.IngSuffix)
	}
	return MatchCase(word, lower+interfaces.IngSuffix)
}

// MatchCase capitalizes the first letter of out if src starts with an upper case
// ASCII letter. Otherwise out is returned unchanged.
func MatchCase(src, out string) string {
	if src == "" || src[0] < 'A' || src[0] > 'Z' {
		return out
	}
	return util.FirstToUpper(out)
}

// IsPunctuation returns true if the string begins with a punctuation character
// which should attach directly to the preceding word.
func IsPunctuation(s string) bool {
	return s != "" && strings.IndexByte(interfaces.Punctuation, s[0]) >= 0
}

// ValidateBinderName returns true if the name can be used for a binder. The
// leading symbol must not be passed in.
func ValidateBinderName(name string) bool {
	return binderNameRegexp.MatchString(name)
}
