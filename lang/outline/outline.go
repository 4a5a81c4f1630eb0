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

// Package outline parses the bullet outline format and expands it into the
// list of templates that it describes.
//
// Each top level bullet is a prefix group. Every nested bullet is an optional
// continuation of its parent, so this outline:
//
//	- ${Subject}
//	    - is available now.
//	    - is available on {PC|Console}.
//
// ...describes two templates, which both start with `${Subject}`.
package outline

import (
	"fmt"
	"regexp"
	"strings"

	langUtil "github.com/purpleidea/phrasebook/lang/util"
	"github.com/purpleidea/phrasebook/util"

	"golang.org/x/text/unicode/norm"
)

const (
	// tabWidth is the number of spaces that a tab counts as.
	tabWidth = 2

	// backtick is removed from all outline text. It lets authors quote a
	// bullet that would otherwise be formatted by a markdown editor.
	backtick = "`"
)

var (
	// lineRegexp splits the input into lines.
	lineRegexp = regexp.MustCompile(`\r?\n`)

	// bulletRegexp matches a bullet line, and captures the indentation and
	// the text.
	bulletRegexp = regexp.MustCompile(`^(\s*)-\s+(.*)$`)
)

// Node is one bullet of an outline. The root node has no text and a level of
// minus one.
type Node struct {
	Text     string
	Level    int
	Children []*Node
}

// String returns a short representation of this node and its children.
func (obj *Node) String() string {
	children := []string{}
	for _, x := range obj.Children {
		children = append(children, x.String())
	}
	if len(children) == 0 {
		return fmt.Sprintf("%q", obj.Text)
	}
	return fmt.Sprintf("%q[%s]", obj.Text, strings.Join(children, ", "))
}

// Parse builds the outline tree from the input text. The text is normalized to
// NFC first. Blank lines and lines which aren't bullets are skipped. A bullet
// closes every open bullet whose level is at least its own, so inconsistent
// indentation still builds a valid tree.
func Parse(text string) *Node {
	root := &Node{
		Text:     "",
		Level:    -1,
		Children: []*Node{},
	}
	stack := []*Node{root}

	text = norm.NFC.String(text)
	for _, line := range lineRegexp.Split(text, -1) {
		line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := bulletRegexp.FindStringSubmatch(line)
		if m == nil {
			continue // not a bullet
		}

		node := &Node{
			Text:     strings.TrimSpace(m[2]),
			Level:    InferIndentLevel(len(m[1])),
			Children: []*Node{},
		}
		for len(stack) > 1 && stack[len(stack)-1].Level >= node.Level {
			stack = stack[:len(stack)-1] // pop
		}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, node)
		stack = append(stack, node)
	}

	return root
}

// InferIndentLevel returns the nesting level for an indentation of this many
// spaces. Four space and two space indents are both accepted.
func InferIndentLevel(spaces int) int {
	if spaces%4 == 0 {
		return spaces / 4
	}
	if spaces%2 == 0 {
		return spaces / 2
	}
	return spaces / 2 // round down
}

// Expand returns every template described by the tree, without duplicates, in
// the order they are found.
func Expand(root *Node) []string {
	out := []string{}
	for _, group := range root.Children {
		out = append(out, expandFrom(group, false)...)
	}
	return util.StrRemoveDuplicatesInList(out)
}

// Templates parses and expands the outline text in one step.
func Templates(text string) []string {
	return Expand(Parse(text))
}

// expandFrom returns the templates of a node. A continuation emits its own text
// as well as its text joined with each of its children's. A prefix group only
// emits itself if it has no children.
func expandFrom(node *Node, emitSelf bool) []string {
	results := []string{}
	self := strings.ReplaceAll(node.Text, backtick, "")

	if emitSelf {
		results = append(results, self)
	}
	if len(node.Children) == 0 {
		if !emitSelf {
			results = append(results, self)
		}
		return results
	}

	for _, child := range node.Children {
		for _, s := range expandFrom(child, true) {
			results = append(results, joinPieces(self, s))
		}
	}
	return results
}

// joinPieces joins a prefix and a continuation with a space, unless the
// continuation starts with punctuation.
func joinPieces(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if langUtil.IsPunctuation(b) {
		return a + b
	}
	return a + " " + b
}
