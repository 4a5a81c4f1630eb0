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

// Package interfaces contains the common interfaces and small shared types that
// the template language packages use to talk to each other.
package interfaces

import (
	"fmt"
)

// Node represents any element of a compiled template. The set of node types is
// closed and lives in the ast package. Anything that walks an AST should panic
// if it ever receives a node that it doesn't know about, since that is a bug in
// the parser and not something a user can cause.
type Node interface {
	fmt.Stringer

	// Apply is a general purpose iterator method that operates on any node.
	// Children are visited before the node itself.
	Apply(fn func(Node) error) error

	// Variance returns the number of distinct renderings this node counts
	// for. It is always at least one.
	Variance() int
}

// RandFunc is a source of uniformly distributed floats in the range [0, 1). The
// default is math/rand.Float64, but tests usually pass in a scripted sequence.
type RandFunc func() float64
