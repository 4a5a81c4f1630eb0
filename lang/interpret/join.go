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

package interpret

import (
	"strings"

	"github.com/purpleidea/phrasebook/lang/ast"
	"github.com/purpleidea/phrasebook/lang/interfaces"
	langUtil "github.com/purpleidea/phrasebook/lang/util"
)

// whitespace is the set of characters which is trimmed before punctuation.
const whitespace = " \t\r\n\f\v"

// Join appends a piece to the accumulated output. Blank pieces are skipped. A
// piece that starts with punctuation attaches to the previous word, and anything
// else is separated from it with a space.
func Join(acc, piece string) string {
	if strings.TrimSpace(piece) == "" {
		return acc
	}
	if acc == "" {
		return piece
	}
	if langUtil.IsPunctuation(piece) {
		return strings.TrimRight(acc, whitespace) + piece
	}
	return acc + " " + piece
}

// Normalize collapses every run of whitespace into a single space and trims the
// ends.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// join is Join, except that inside of a glue pieces are concatenated as is.
func join(acc, piece string, glued bool) string {
	if glued {
		return acc + piece
	}
	return Join(acc, piece)
}

// isInflection returns true if the node at index i of a glue body is a binder
// ref that is directly followed by an "ing" suffix.
func isInflection(seq ast.Seq, i int) bool {
	if i+1 >= len(seq) {
		return false
	}
	if _, ok := seq[i].(*ast.BindRef); !ok {
		return false
	}
	text, ok := seq[i+1].(*ast.Text)
	return ok && strings.HasPrefix(text.V, interfaces.IngSuffix)
}

// inflect renders a binder ref and the text following it, as matched by
// isInflection. If the binder isn't set, the ref renders nothing and the text
// is left alone.
func inflect(ref *ast.BindRef, text *ast.Text, binds Binds) string {
	word, ok := binds.Resolve(ref.Key, ref.Mode)
	if !ok {
		return text.V
	}
	rest := strings.TrimPrefix(text.V, interfaces.IngSuffix)
	return langUtil.ToIng(word) + rest
}
