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

// Package ast contains the structs implementing and some utility functions for
// interacting with the abstract syntax tree of a template.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/purpleidea/phrasebook/lang/interfaces"
)

// RefMode specifies which option a binder ref resolves to.
type RefMode int

const (
	// RefModeChosen repeats the option that the binder picked.
	RefModeChosen RefMode = iota

	// RefModeOther picks the option after the chosen one, wrapping around.
	// For a binder with two options this is a toggle.
	RefModeOther
)

// String returns the name of this mode.
func (obj RefMode) String() string {
	switch obj {
	case RefModeChosen:
		return "chosen"
	case RefModeOther:
		return "other"
	}
	return fmt.Sprintf("RefMode(%d)", int(obj))
}

// Text is a literal fragment of a template.
type Text struct {
	V string // value of this fragment
}

// String returns a short representation of this node.
func (obj *Text) String() string { return fmt.Sprintf("text(%s)", strconv.Quote(obj.V)) }

// Apply is a general purpose iterator method that operates on any AST node. It
// is not used as the primary AST traversal function because it is less readable
// and easy to reason about than manually implementing traversal for each node.
// Nevertheless, it is a useful facility for operations that might only apply to
// a select number of node types, since they won't need extra noop iterators...
func (obj *Text) Apply(fn func(interfaces.Node) error) error { return fn(obj) }

// Variance of a literal is always one.
func (obj *Text) Variance() int { return 1 }

// Arg is an argument placeholder. It is resolved from the caller's argument
// values when rendering. The key may be a dotted path.
type Arg struct {
	Key string
}

// String returns a short representation of this node.
func (obj *Arg) String() string { return fmt.Sprintf("arg(%s)", obj.Key) }

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *Arg) Apply(fn func(interfaces.Node) error) error { return fn(obj) }

// Variance of an argument is one, since its value is given by the caller.
func (obj *Arg) Variance() int { return 1 }

// Choice is a set of mutually exclusive alternatives. Exactly one of them is
// used in each rendering.
type Choice struct {
	Options []Seq
}

// String returns a short representation of this node.
func (obj *Choice) String() string {
	s := []string{}
	for _, x := range obj.Options {
		s = append(s, x.String())
	}
	return fmt.Sprintf("choice(%s)", strings.Join(s, " | "))
}

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *Choice) Apply(fn func(interfaces.Node) error) error {
	for _, x := range obj.Options {
		if err := x.Apply(fn); err != nil {
			return err
		}
	}
	return fn(obj)
}

// Variance of a choice is the sum of the variance of each alternative. A choice
// with no alternatives renders nothing, which counts as one.
func (obj *Choice) Variance() int {
	if len(obj.Options) == 0 {
		return 1
	}
	total := 0
	for _, x := range obj.Options {
		total = AddVariance(total, x.Variance())
	}
	return total
}

// Opt is an optional sequence. It is either entirely omitted or entirely
// included.
type Opt struct {
	Inner Seq
}

// String returns a short representation of this node.
func (obj *Opt) String() string { return fmt.Sprintf("opt(%s)", obj.Inner) }

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *Opt) Apply(fn func(interfaces.Node) error) error {
	if err := obj.Inner.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// Variance is one for the omitted case plus the variance of the inner sequence.
func (obj *Opt) Variance() int { return AddVariance(1, obj.Inner.Variance()) }

// Bind picks one of its literal options, emits it, and records the choice under
// Key so that later binder refs and map lookups can use it.
type Bind struct {
	Key     string
	Options []string
}

// String returns a short representation of this node.
func (obj *Bind) String() string {
	return fmt.Sprintf("bind(#%s: %s)", obj.Key, strings.Join(obj.Options, " | "))
}

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *Bind) Apply(fn func(interfaces.Node) error) error { return fn(obj) }

// Variance is the number of options, but never less than one.
func (obj *Bind) Variance() int {
	if len(obj.Options) == 0 {
		return 1
	}
	return len(obj.Options)
}

// BindRef looks up an earlier binder choice by key.
type BindRef struct {
	Key  string
	Mode RefMode
}

// String returns a short representation of this node.
func (obj *BindRef) String() string { return fmt.Sprintf("ref(#%s, %s)", obj.Key, obj.Mode) }

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *BindRef) Apply(fn func(interfaces.Node) error) error { return fn(obj) }

// Variance of a ref is one, since it's fully determined by its binder.
func (obj *BindRef) Variance() int { return 1 }

// Glue renders its contents with no whitespace inserted between the pieces, and
// the result is used as a single word.
type Glue struct {
	Inner Seq
}

// String returns a short representation of this node.
func (obj *Glue) String() string { return fmt.Sprintf("glue(%s)", obj.Inner) }

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *Glue) Apply(fn func(interfaces.Node) error) error {
	if err := obj.Inner.Apply(fn); err != nil {
		return err
	}
	return fn(obj)
}

// Variance of a glue is the variance of its contents.
func (obj *Glue) Variance() int { return obj.Inner.Variance() }

// MapLookup dispatches on the word most recently chosen by the binder named in
// Ref. That word is used as a key into Map, and the matching sequence is
// rendered as a single word.
type MapLookup struct {
	// Keys stores the map keys in source order, since the map won't.
	Keys []string
	Map  map[string]Seq
	Ref  string
}

// String returns a short representation of this node.
func (obj *MapLookup) String() string {
	s := []string{}
	for _, k := range obj.Keys {
		s = append(s, fmt.Sprintf("%s: %s", strconv.Quote(k), obj.Map[k]))
	}
	return fmt.Sprintf("map(#%s; %s)", obj.Ref, strings.Join(s, ", "))
}

// Apply is a general purpose iterator method that operates on any AST node.
func (obj *MapLookup) Apply(fn func(interfaces.Node) error) error {
	for _, k := range obj.Keys {
		if err := obj.Map[k].Apply(fn); err != nil {
			return err
		}
	}
	return fn(obj)
}

// Variance of a map lookup is one. The binder it refers to has already been
// counted wherever it appears.
func (obj *MapLookup) Variance() int { return 1 }
