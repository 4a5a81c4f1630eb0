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
)

// BindState is the recorded choice of one binder during a single rendering.
type BindState struct {
	// Options are the options of the binder. This must not be modified.
	Options []string

	// Index is the position of the chosen option.
	Index int
}

// Chosen returns the option that was picked.
func (obj *BindState) Chosen() string {
	return obj.Options[obj.Index]
}

// Other returns the option after the chosen one, wrapping around at the end.
// For a binder with two options, this is a toggle.
func (obj *BindState) Other() string {
	return obj.Options[(obj.Index+1)%len(obj.Options)]
}

// Lookup returns the option for the given reference mode.
func (obj *BindState) Lookup(mode ast.RefMode) string {
	switch mode {
	case ast.RefModeChosen:
		return obj.Chosen()
	case ast.RefModeOther:
		return obj.Other()
	}
	panic(fmt.Sprintf("unknown ref mode: %d", mode))
}

// Binds maps binder names to their state. Values are never modified once
// stored, so a copy may share them.
type Binds map[string]*BindState

// Copy returns a new map with the same contents.
func (obj Binds) Copy() Binds {
	binds := make(Binds, len(obj)+1)
	for k, v := range obj {
		binds[k] = v
	}
	return binds
}

// Resolve returns the option that a reference to the named binder resolves
// to. The boolean is false if the binder was never set.
func (obj Binds) Resolve(key string, mode ast.RefMode) (string, bool) {
	st, exists := obj[key]
	if !exists || st == nil || len(st.Options) == 0 {
		return "", false
	}
	return st.Lookup(mode), true
}
