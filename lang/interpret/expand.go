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
	"fmt"

	"github.com/purpleidea/phrasebook/lang/ast"
	"github.com/purpleidea/phrasebook/lang/interfaces"
	"github.com/purpleidea/phrasebook/util"
)

// Expand returns every distinct rendering of the template, in the order they
// are found. The result can grow exponentially with the number of choices,
// optionals and binders in the template.
func Expand(seq ast.Seq, args map[string]interface{}) []string {
	obj := &expander{
		args: args,
	}
	initial := []*state{{binds: make(Binds)}}

	out := []string{}
	for _, st := range obj.expandSeq(seq, initial, false) {
		out = append(out, Normalize(st.s))
	}
	return util.StrRemoveDuplicatesInList(out)
}

// state is one partial rendering. A state is never modified once built. A
// binder makes a new state with a copy of the binds, so that sibling branches
// never see each other's choices.
type state struct {
	s     string
	binds Binds
}

type expander struct {
	args map[string]interface{}
}

func (obj *expander) expandSeq(seq ast.Seq, states []*state, glued bool) []*state {
	for i := 0; i < len(seq); i++ {
		if glued && isInflection(seq, i) {
			ref, text := seq[i].(*ast.BindRef), seq[i+1].(*ast.Text)
			states = mapStates(states, func(st *state) string {
				return st.s + inflect(ref, text, st.binds)
			})
			i++ // consumed the suffix
			continue
		}
		states = obj.expandNode(seq[i], states, glued)
	}
	return states
}

func (obj *expander) expandNode(node interfaces.Node, states []*state, glued bool) []*state {
	switch x := node.(type) {
	case *ast.Text:
		return mapStates(states, func(st *state) string {
			return join(st.s, x.V, glued)
		})

	case *ast.Arg:
		value := ResolveArg(x.Key, obj.args)
		return mapStates(states, func(st *state) string {
			return join(st.s, value, glued)
		})

	case *ast.Choice:
		if len(x.Options) == 0 {
			return states
		}
		out := []*state{}
		for _, option := range x.Options {
			out = append(out, obj.expandSeq(option, states, glued)...)
		}
		return out

	case *ast.Opt:
		out := append([]*state{}, states...) // omitted
		return append(out, obj.expandSeq(x.Inner, states, glued)...)

	case *ast.Bind:
		if len(x.Options) == 0 {
			return states
		}
		out := []*state{}
		for _, st := range states {
			for i, option := range x.Options {
				binds := st.binds.Copy()
				binds[x.Key] = &BindState{
					Options: x.Options,
					Index:   i,
				}
				out = append(out, &state{
					s:     join(st.s, option, glued),
					binds: binds,
				})
			}
		}
		return out

	case *ast.BindRef:
		return mapStates(states, func(st *state) string {
			word, ok := st.binds.Resolve(x.Key, x.Mode)
			if !ok {
				return st.s
			}
			return join(st.s, word, glued)
		})

	case *ast.Glue:
		out := []*state{}
		for _, st := range states {
			out = append(out, obj.expandGlued(x.Inner, st, glued)...)
		}
		return out

	case *ast.MapLookup:
		out := []*state{}
		for _, st := range states {
			word, ok := st.binds.Resolve(x.Ref, ast.RefModeChosen)
			if !ok {
				out = append(out, st)
				continue
			}
			value, exists := x.Map[word]
			if !exists {
				out = append(out, st)
				continue
			}
			out = append(out, obj.expandGlued(value, st, glued)...)
		}
		return out
	}

	panic(fmt.Sprintf("unknown node type: %T", node))
}

// expandGlued expands seq as one atomic piece appended to st. Binders set in
// seq stay set afterwards.
func (obj *expander) expandGlued(seq ast.Seq, st *state, glued bool) []*state {
	initial := []*state{{binds: st.binds}}
	out := []*state{}
	for _, inner := range obj.expandSeq(seq, initial, true) {
		out = append(out, &state{
			s:     join(st.s, inner.s, glued),
			binds: inner.binds,
		})
	}
	return out
}

// mapStates returns a new state per input state with the string replaced.
func mapStates(states []*state, fn func(*state) string) []*state {
	out := make([]*state, 0, len(states))
	for _, st := range states {
		out = append(out, &state{
			s:     fn(st),
			binds: st.binds,
		})
	}
	return out
}
