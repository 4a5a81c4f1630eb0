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

package ast

import (
	"fmt"
	"math"
	"strings"

	"github.com/purpleidea/phrasebook/lang/interfaces"
	"github.com/purpleidea/phrasebook/util"
)

// Seq is an ordered sequence of nodes. A compiled template is one of these.
type Seq []interfaces.Node

// String returns a short representation of this sequence.
func (obj Seq) String() string {
	s := []string{}
	for _, x := range obj {
		s = append(s, x.String())
	}
	return fmt.Sprintf("seq(%s)", strings.Join(s, ", "))
}

// Apply runs Apply on each node in the sequence in order.
func (obj Seq) Apply(fn func(interfaces.Node) error) error {
	for _, x := range obj {
		if err := x.Apply(fn); err != nil {
			return err
		}
	}
	return nil
}

// Variance of a sequence is the product of the variance of its nodes. An empty
// sequence has a variance of one.
func (obj Seq) Variance() int {
	total := 1
	for _, x := range obj {
		total = mulVariance(total, x.Variance())
	}
	return total
}

// Normalize merges adjacent text nodes. It returns a new sequence and does not
// modify the input.
func Normalize(seq Seq) Seq {
	merged := Seq{}
	for _, x := range seq {
		t, ok := x.(*Text)
		if !ok {
			merged = append(merged, x)
			continue
		}
		if l := len(merged); l > 0 {
			if prev, ok := merged[l-1].(*Text); ok {
				merged[l-1] = &Text{V: prev.V + t.V}
				continue
			}
		}
		merged = append(merged, &Text{V: t.V})
	}
	return merged
}

// CollectArgs returns the keys of every argument placeholder in the sequence,
// in the order they are first found. Every branch is visited, so this is a
// superset of what any one rendering will use.
func CollectArgs(seq Seq) []string {
	keys := []string{}
	fn := func(node interfaces.Node) error {
		if x, ok := node.(*Arg); ok {
			keys = append(keys, x.Key)
		}
		return nil
	}
	if err := seq.Apply(fn); err != nil {
		panic(err) // programming error, fn never errors
	}
	return util.StrRemoveDuplicatesInList(keys)
}

// AddVariance adds two variances and saturates at math.MaxInt instead of
// overflowing.
func AddVariance(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// mulVariance multiplies two variances and saturates instead of overflowing.
func mulVariance(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
