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

// Package lang is the main entry point of the template language. It compiles an
// outline into a program which can write random phrases, or all of them.
package lang

import (
	"math/rand"

	"github.com/purpleidea/phrasebook/lang/ast"
	"github.com/purpleidea/phrasebook/lang/interfaces"
	"github.com/purpleidea/phrasebook/lang/interpret"
	"github.com/purpleidea/phrasebook/lang/outline"
	"github.com/purpleidea/phrasebook/lang/parser"
	"github.com/purpleidea/phrasebook/util"
	"github.com/purpleidea/phrasebook/util/errwrap"
)

// Template is one compiled template. It must not be modified.
type Template struct {
	// Source is the template text, as expanded from the outline.
	Source string

	// AST is the parsed template.
	AST ast.Seq

	// Variance is the number of distinct outputs this template counts for.
	Variance int

	// Args are the argument names used anywhere in the template.
	Args []string
}

// Program is a compiled outline. After Init, it can be used concurrently, as
// long as Rand is safe for concurrent use, which the default source is.
type Program struct {
	// Input is the outline text to compile.
	Input string

	// Rand returns a random number in [0, 1). If it's nil, then a default
	// source is used.
	Rand interfaces.RandFunc

	Debug bool
	Logf  func(format string, v ...interface{})

	templates []*Template
	args      []string
	variance  int
}

// Compile builds and initializes a program from an outline. If source is nil,
// then the default random source is used.
func Compile(input string, source interfaces.RandFunc) (*Program, error) {
	obj := &Program{
		Input: input,
		Rand:  source,
	}
	if err := obj.Init(); err != nil {
		return nil, err
	}
	return obj, nil
}

// Init expands the outline and compiles every template in it. If any template
// fails to parse, the whole program fails, and the returned error contains the
// failure of every broken template.
func (obj *Program) Init() error {
	if obj.Rand == nil {
		obj.Rand = rand.Float64
	}
	if obj.Logf == nil {
		obj.Logf = func(format string, v ...interface{}) {} // noop
	}

	sources := outline.Templates(obj.Input)
	if obj.Debug {
		obj.Logf("outline: found %d template(s)", len(sources))
	}

	var reterr error
	templates := []*Template{}
	for i, source := range sources {
		seq, err := parser.ParseTemplate(source)
		if err != nil {
			reterr = errwrap.Append(reterr, errwrap.Wrapf(err, "template #%d `%s`", i, source))
			continue
		}
		template := &Template{
			Source:   source,
			AST:      seq,
			Variance: seq.Variance(),
			Args:     ast.CollectArgs(seq),
		}
		if obj.Debug {
			obj.Logf("template: #%d has variance %d: %s", i, template.Variance, seq)
		}
		templates = append(templates, template)
	}
	if reterr != nil {
		return errwrap.Wrapf(reterr, "could not compile outline")
	}

	args := []string{}
	variance := 0
	for _, template := range templates {
		args = append(args, template.Args...)
		variance = ast.AddVariance(variance, template.Variance)
	}

	obj.templates = templates
	obj.args = util.StrRemoveDuplicatesInList(args)
	obj.variance = variance
	return nil
}

// Args returns every argument name used by the program, each mapped to nil. It
// advertises what a caller should pass in, and is a superset of what any one
// output will use.
func (obj *Program) Args() map[string]interface{} {
	m := make(map[string]interface{}, len(obj.args))
	for _, name := range obj.args {
		m[name] = nil
	}
	return m
}

// ArgNames returns the argument names in the order they first appear.
func (obj *Program) ArgNames() []string {
	return append([]string{}, obj.args...)
}

// Variance returns the sum of the variance of every template. It's zero if
// there are no templates.
func (obj *Program) Variance() int {
	return obj.variance
}

// Templates returns the compiled templates in outline order.
func (obj *Program) Templates() []*Template {
	return append([]*Template{}, obj.templates...)
}

// Write returns one random phrase. Templates are picked in proportion to their
// variance. If there are no templates, it returns the empty string.
func (obj *Program) Write(args map[string]interface{}) string {
	template := obj.pick()
	if template == nil {
		return ""
	}
	s := interpret.Render(template.AST, obj.Rand, args)
	if obj.Debug {
		obj.Logf("write: %s", s)
	}
	return s
}

// WriteAll returns every distinct phrase of every template, in the order they
// are found. This can be very large.
func (obj *Program) WriteAll(args map[string]interface{}) []string {
	out := []string{}
	for i, template := range obj.templates {
		all := interpret.Expand(template.AST, args)
		if obj.Debug {
			obj.Logf("write: template #%d expanded to %d phrase(s)", i, len(all))
		}
		out = append(out, all...)
	}
	return util.StrRemoveDuplicatesInList(out)
}

// pick chooses a template weighted by variance. It returns nil if there are no
// templates.
func (obj *Program) pick() *Template {
	if len(obj.templates) == 0 {
		return nil
	}
	roll := obj.Rand() * float64(obj.variance)
	for _, template := range obj.templates {
		roll -= float64(template.Variance)
		if roll <= 0 {
			return template
		}
	}
	return obj.templates[len(obj.templates)-1]
}
