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

package interfaces

const (
	// Punctuation is the set of characters which attach directly to the
	// previous word when joining pieces, instead of being preceded by a
	// space.
	Punctuation = ",.;:!?)"

	// BinderSymbol is the character that starts a binder, a binder ref, or
	// the ref suffix of a map lookup.
	BinderSymbol = "#"

	// RefChosen is the binder ref suffix which repeats the chosen option.
	RefChosen = "0"

	// RefOther is the binder ref suffix which picks the next option.
	RefOther = "1"

	// IngSuffix is the text which triggers word-form inflection when it
	// directly follows a binder ref inside of a glue.
	IngSuffix = "ing"
)
