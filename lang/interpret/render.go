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

// Package interpret renders compiled templates, either by sampling a single
// output or by enumerating every output.
package interpret

import (
	"fmt"

	"github.com/purpleidea/phrasebook/lang/ast"
	"github.com/purpleidea/phrasebook/lang/interfaces"
)

// Render returns one random rendering of the template. Each choice, optional
// and binder draws from rand once, in order.
func Render(seq ast.Seq, rand interfaces.RandFunc, args map[string]interface{}) string {
	obj := &renderer{
		rand:  rand,
		args:  args,
		binds: make(Binds),
	}
	return Normalize(obj.renderSeq(seq, "", false))
}

// renderer is the context of one rendering. It must not be reused.
type renderer struct {
	rand  interfaces.RandFunc
	args  map[string]interface{}
	binds Binds
}

// pick draws an index in [0, count).
func (obj *renderer) pick(count int) int {
	return clamp(int(obj.rand()*float64(count)), count)
}

func (obj *renderer) renderSeq(seq ast.Seq, acc string, glued bool) string {
	for i := 0; i < len(seq); i++ {
		if glued && isInflection(seq, i) {
			acc += inflect(seq[i].(*ast.BindRef), seq[i+1].(*ast.Text), obj.binds)
			i++ // consumed the suffix
			continue
		}
		acc = obj.renderNode(seq[i], acc, glued)
	}
	return acc
}

func (obj *renderer) renderNode(node interfaces.Node, acc string, glued bool) string {
	switch x := node.(type) {
	case *ast.Text:
		return join(acc, x.V, glued)

	case *ast.Arg:
		return join(acc, ResolveArg(x.Key, obj.args), glued)

	case *ast.Choice:
		if len(x.Options) == 0 {
			return acc
		}
		return obj.renderSeq(x.Options[obj.pick(len(x.Options))], acc, glued)

	case *ast.Opt:
		if obj.rand() < 0.5 {
			return acc // omitted
		}
		return obj.renderSeq(x.Inner, acc, glued)

	case *ast.Bind:
		if len(x.Options) == 0 {
			return acc
		}
		st := &BindState{
			Options: x.Options,
			Index:   obj.pick(len(x.Options)),
		}
		obj.binds[x.Key] = st
		return join(acc, st.Chosen(), glued)

	case *ast.BindRef:
		word, ok := obj.binds.Resolve(x.Key, x.Mode)
		if !ok {
			return acc
		}
		return join(acc, word, glued)

	case *ast.Glue:
		return join(acc, obj.renderSeq(x.Inner, "", true), glued)

	case *ast.MapLookup:
		word, ok := obj.binds.Resolve(x.Ref, ast.RefModeChosen)
		if !ok {
			return acc
		}
		value, exists := x.Map[word]
		if !exists {
			return acc
		}
		return join(acc, obj.renderSeq(value, "", true), glued)
	}

	panic(fmt.Sprintf("unknown node type: %T", node))
}

// clamp keeps an index drawn from a random source within [0, count). A source
// that returns 1.0 would otherwise index past the end.
func clamp(i, count int) int {
	if i >= count {
		return count - 1
	}
	if i < 0 {
		return 0
	}
	return i
}
