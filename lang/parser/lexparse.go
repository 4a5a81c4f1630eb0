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

// Package parser contains the template parser. It turns one template string
// into an AST.
package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/purpleidea/phrasebook/lang/ast"
	"github.com/purpleidea/phrasebook/lang/interfaces"
	langUtil "github.com/purpleidea/phrasebook/lang/util"
)

// These constants represent the different possible parser errors.
const (
	ErrUnterminatedArg    = interfaces.Error("unterminated argument")
	ErrUnterminatedGlue   = interfaces.Error("unterminated glue")
	ErrUnbalancedBrace    = interfaces.Error("unbalanced brace")
	ErrMalformedMapLookup = interfaces.Error("malformed map lookup")
	ErrTrailingContent    = interfaces.Error("trailing content")
)

// maxErrStr is the longest source excerpt that we'll put in an error message.
const maxErrStr = 32

var (
	// binderRegexp matches the start of an inline binder, eg: `#v{`.
	binderRegexp = regexp.MustCompile(`^#(\w+)\{`)

	// refRegexp matches the whole contents of a binder ref group.
	refRegexp = regexp.MustCompile(`^#(\w+)\.([01])$`)
)

// ParseErr is a permanent failure error to notify about borkage in a template.
type ParseErr struct {
	Err   interfaces.Error
	Str   string // excerpt of the source starting at Index
	Index int    // this is zero-indexed (the first byte is 0)
}

// Error displays this error with all the relevant state information.
func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s: `%s` @%d", e.Err, e.Str, e.Index)
}

// ParseTemplate parses a single template string and returns the normalized
// AST. All positions in returned errors are relative to the start of input.
func ParseTemplate(input string) (ast.Seq, error) {
	obj := &parser{src: input}
	return obj.parseBounded(0, len(input))
}

// parser holds the source being parsed. Every method works on absolute byte
// offsets into src, with hi being exclusive, so that nested parses report
// positions in the original template.
type parser struct {
	src string
}

// errorf builds a parse error at lo, with an excerpt bounded by hi.
func (obj *parser) errorf(e interfaces.Error, lo, hi int) *ParseErr {
	if hi > lo+maxErrStr {
		hi = lo + maxErrStr
	}
	if hi > len(obj.src) {
		hi = len(obj.src)
	}
	return &ParseErr{
		Err:   e,
		Str:   obj.src[lo:hi],
		Index: lo,
	}
}

// parseBounded parses the whole range, and errors if anything is left over.
func (obj *parser) parseBounded(lo, hi int) (ast.Seq, error) {
	seq, i, err := obj.parseSeq(lo, hi)
	if err != nil {
		return nil, err
	}
	if i != hi {
		return nil, obj.errorf(ErrTrailingContent, i, hi)
	}
	return seq, nil
}

// parseSeq parses a sequence of nodes in the range, and returns the index that
// it stopped at.
func (obj *parser) parseSeq(lo, hi int) (ast.Seq, int, error) {
	seq := ast.Seq{}
	i := lo
	for i < hi {
		var nodes ast.Seq
		var next int
		var err error

		switch { // order matters, this is the token precedence
		case obj.isArg(i, hi):
			nodes, next, err = obj.parseArg(i, hi)
		case obj.isGlue(i, hi):
			nodes, next, err = obj.parseGlue(i, hi)
		case obj.isBinder(i, hi):
			nodes, next, err = obj.parseBinder(i, hi)
		case obj.src[i] == '{':
			nodes, next, err = obj.parseGroup(i, hi)
		default:
			next = obj.nextToken(i+1, hi)
			nodes = ast.Seq{&ast.Text{V: obj.src[i:next]}}
		}
		if err != nil {
			return nil, i, err
		}
		seq = append(seq, nodes...)
		i = next
	}
	return ast.Normalize(seq), i, nil
}

// isArg returns true if an argument placeholder starts at i.
func (obj *parser) isArg(i, hi int) bool {
	return strings.HasPrefix(obj.src[i:hi], "${")
}

// isGlue returns true if a glue or a map lookup starts at i.
func (obj *parser) isGlue(i, hi int) bool {
	return strings.HasPrefix(obj.src[i:hi], "{{")
}

// isBinder returns true if an inline binder starts at i.
func (obj *parser) isBinder(i, hi int) bool {
	return obj.src[i] == interfaces.BinderSymbol[0] && binderRegexp.MatchString(obj.src[i:hi])
}

// nextToken returns the index of the next token start at or after from. If
// there isn't one, then hi is returned. A lone `$` or `#` is just text.
func (obj *parser) nextToken(from, hi int) int {
	for j := from; j < hi; j++ {
		if obj.src[j] == '{' || obj.isArg(j, hi) || obj.isBinder(j, hi) {
			return j
		}
	}
	return hi
}

// parseArg parses `${name}`.
func (obj *parser) parseArg(i, hi int) (ast.Seq, int, error) {
	end := strings.IndexByte(obj.src[i+2:hi], '}')
	if end == -1 {
		return nil, i, obj.errorf(ErrUnterminatedArg, i, hi)
	}
	end += i + 2 // make absolute
	arg := &ast.Arg{
		Key: strings.TrimSpace(obj.src[i+2 : end]),
	}
	return ast.Seq{arg}, end + 1, nil
}

// parseGlue parses a glue or a map lookup. The extent is the balanced group
// starting at the first brace. If the content is itself one group wrapping all
// of it, as in `{{ x }}`, then the body is what's inside that. Otherwise the
// second brace belongs to the body, as in `{{#v.1}ing}`.
func (obj *parser) parseGlue(i, hi int) (ast.Seq, int, error) {
	end := obj.matchBrace(i, hi)
	if end < 0 {
		return nil, i, obj.errorf(ErrUnterminatedGlue, i, hi)
	}
	lo, bhi := i+1, end
	if obj.matchBrace(i+1, end) == end-1 { // double closing brace form
		lo, bhi = i+2, end-1
	}
	lo, bhi = obj.trim(lo, bhi)

	lookup, err := obj.parseMapLookup(lo, bhi)
	if err != nil {
		return nil, i, err
	}
	if lookup != nil {
		return ast.Seq{lookup}, end + 1, nil
	}

	seq, err := obj.parseBounded(lo, bhi)
	if err != nil {
		return nil, i, err
	}
	return ast.Seq{&ast.Glue{Inner: seq}}, end + 1, nil
}

// parseMapLookup parses `key: value, key: value [#name]`. If the range doesn't
// end with a map lookup suffix, then it returns nil without error, and the
// caller should treat it as a plain glue instead.
func (obj *parser) parseMapLookup(lo, hi int) (*ast.MapLookup, error) {
	if !strings.HasSuffix(obj.src[lo:hi], "]") {
		return nil, nil
	}
	open := obj.lastTopLevel(lo, hi, "["+interfaces.BinderSymbol)
	if open < 0 {
		return nil, nil
	}
	name := obj.src[open+2 : hi-1]
	if !langUtil.ValidateBinderName(name) {
		return nil, obj.errorf(ErrMalformedMapLookup, open, hi)
	}

	lookup := &ast.MapLookup{
		Keys: []string{},
		Map:  make(map[string]ast.Seq),
		Ref:  name,
	}
	for _, pair := range obj.splitTopLevel(lo, open, ',') {
		plo, phi := obj.trim(pair[0], pair[1])
		if plo == phi {
			continue // allow a trailing comma
		}
		colon := obj.indexTopLevel(plo, phi, ':')
		if colon < 0 {
			return nil, obj.errorf(ErrMalformedMapLookup, plo, phi)
		}
		klo, khi := obj.trim(plo, colon)
		key := obj.src[klo:khi]

		vlo, vhi := obj.trim(colon+1, phi)
		seq, err := obj.parseBounded(vlo, vhi)
		if err != nil {
			return nil, err
		}

		if _, exists := lookup.Map[key]; !exists {
			lookup.Keys = append(lookup.Keys, key)
		}
		lookup.Map[key] = seq // last one wins
	}
	return lookup, nil
}

// parseBinder parses `#name{a|b|c}`. If it's followed by whitespace, the text
// after it up to the next token is captured too, as in `#v{a|b} playing`.
func (obj *parser) parseBinder(i, hi int) (ast.Seq, int, error) {
	m := binderRegexp.FindStringSubmatch(obj.src[i:hi])
	if m == nil { // programming error
		return nil, i, fmt.Errorf("binder expected at %d", i)
	}
	open := i + len(m[0]) - 1
	end := obj.matchBrace(open, hi)
	if end < 0 {
		return nil, i, obj.errorf(ErrUnbalancedBrace, open, hi)
	}

	bind := &ast.Bind{
		Key:     m[1],
		Options: []string{},
	}
	for _, part := range obj.splitTopLevel(open+1, end, '|') {
		plo, phi := obj.trim(part[0], part[1])
		if plo == phi {
			continue // skip empty options
		}
		bind.Options = append(bind.Options, obj.src[plo:phi])
	}

	seq := ast.Seq{bind}
	next := end + 1
	if next < hi && isSpace(obj.src[next]) {
		j := obj.nextToken(next, hi)
		seq = append(seq, &ast.Text{V: obj.src[next:j]})
		next = j
	}
	return seq, next, nil
}

// parseGroup parses `{...}` and `{...}?`, which are binder refs, choices, or
// plain groups, and optionals of any of those.
func (obj *parser) parseGroup(i, hi int) (ast.Seq, int, error) {
	end := obj.matchBrace(i, hi)
	if end < 0 {
		return nil, i, obj.errorf(ErrUnbalancedBrace, i, hi)
	}
	next := end + 1
	optional := next < hi && obj.src[next] == '?'
	if optional {
		next++
	}

	node, err := obj.group(i+1, end)
	if err != nil {
		return nil, i, err
	}
	if optional {
		node = &ast.Opt{Inner: ast.Seq{node}}
	}
	return ast.Seq{node}, next, nil
}

// group builds the node for the contents of a brace group.
func (obj *parser) group(lo, hi int) (interfaces.Node, error) {
	tlo, thi := obj.trim(lo, hi)

	if m := refRegexp.FindStringSubmatch(obj.src[tlo:thi]); m != nil {
		mode := ast.RefModeOther
		if m[2] == interfaces.RefChosen {
			mode = ast.RefModeChosen
		}
		return &ast.BindRef{Key: m[1], Mode: mode}, nil
	}

	if parts := obj.splitTopLevel(lo, hi, '|'); len(parts) > 1 {
		choice := &ast.Choice{}
		for _, part := range parts {
			plo, phi := obj.trim(part[0], part[1])
			seq, err := obj.parseBounded(plo, phi)
			if err != nil {
				return nil, err
			}
			choice.Options = append(choice.Options, seq)
		}
		return choice, nil
	}

	seq, err := obj.parseBounded(tlo, thi)
	if err != nil {
		return nil, err
	}
	if len(seq) == 1 {
		return seq[0], nil
	}
	return &ast.Glue{Inner: seq}, nil
}

// matchBrace returns the index of the brace that closes the one at open, or -1
// if it isn't closed before hi.
func (obj *parser) matchBrace(open, hi int) int {
	depth := 0
	for j := open; j < hi; j++ {
		switch obj.src[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// splitTopLevel splits the range on sep wherever it isn't nested in braces. It
// returns the [lo, hi) bounds of each part. There is always at least one part.
func (obj *parser) splitTopLevel(lo, hi int, sep byte) [][2]int {
	parts := [][2]int{}
	depth := 0
	last := lo
	for j := lo; j < hi; j++ {
		switch c := obj.src[j]; {
		case c == '{':
			depth++
		case c == '}':
			if depth > 0 {
				depth--
			}
		case depth == 0 && c == sep:
			parts = append(parts, [2]int{last, j})
			last = j + 1
		}
	}
	return append(parts, [2]int{last, hi})
}

// indexTopLevel returns the index of the first sep which isn't nested in
// braces, or -1 if there isn't one.
func (obj *parser) indexTopLevel(lo, hi int, sep byte) int {
	parts := obj.splitTopLevel(lo, hi, sep)
	if len(parts) == 1 {
		return -1
	}
	return parts[0][1]
}

// lastTopLevel returns the index of the last occurrence of tok which isn't
// nested in braces, or -1 if there isn't one.
func (obj *parser) lastTopLevel(lo, hi int, tok string) int {
	found := -1
	depth := 0
	for j := lo; j < hi; j++ {
		switch obj.src[j] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		}
		if depth == 0 && strings.HasPrefix(obj.src[j:hi], tok) {
			found = j
		}
	}
	return found
}

// trim shrinks the range to exclude leading and trailing whitespace.
func (obj *parser) trim(lo, hi int) (int, int) {
	for lo < hi && isSpace(obj.src[lo]) {
		lo++
	}
	for hi > lo && isSpace(obj.src[hi-1]) {
		hi--
	}
	return lo, hi
}

// isSpace is an ASCII only whitespace check. It's used on raw bytes, so it must
// not match any part of a multi-byte UTF-8 sequence.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
