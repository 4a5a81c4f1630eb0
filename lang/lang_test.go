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

//go:build !root

package lang

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/purpleidea/phrasebook/lang/interfaces"
	"github.com/purpleidea/phrasebook/lang/parser"
	"github.com/purpleidea/phrasebook/util"
	"github.com/purpleidea/phrasebook/util/errwrap"

	"github.com/kylelemons/godebug/pretty"
)

const availableOutline = "- ${Subject}\n    - is available now.\n    - is available on {PC|Console}."

// scripted returns a random source which returns the values in order, and then
// starts over.
func scripted(values ...float64) interfaces.RandFunc {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func sorted(list []string) []string {
	out := append([]string{}, list...)
	sort.Strings(out)
	return out
}

func TestCompile0(t *testing.T) {
	program, err := Compile(availableOutline, nil)
	if err != nil {
		t.Fatalf("compile failed: %+v", err)
	}

	if diff := pretty.Compare(program.Args(), map[string]interface{}{"Subject": nil}); diff != "" {
		t.Errorf("unexpected args:\n%s", diff)
	}
	if v := program.Variance(); v != 3 {
		t.Errorf("expected variance 3, got: %d", v)
	}

	exp := []string{
		"X is available now.",
		"X is available on PC.",
		"X is available on Console.",
	}
	out := program.WriteAll(map[string]interface{}{"Subject": "X"})
	if diff := pretty.Compare(sorted(out), sorted(exp)); diff != "" {
		t.Errorf("unexpected phrases:\n%s", diff)
	}
}

func TestVariance0(t *testing.T) {
	type test struct { // an individual test
		name  string
		input string
		exp   int
	}
	testCases := []test{
		{"empty", "", 0},
		{"text", "- hello", 1},
		{"choice and optional", "- {a|b} {c}?", 4},
		{"nested choice", "- {a|{b|c}}", 3},
		{"binder", "- #v{a|b|c} {#v.1}", 3},
		{"empty binder", "- #v{}", 1},
		{"glue", "- {{x{a|b}}}", 2},
		{"map lookup", "- #v{a|b} {{a: {x|y}, b: z [#v]}}", 2},
		{"sum of templates", "- a\n- {b|c}\n- {d}?", 5},
	}

	for index, tc := range testCases {
		t.Run(fmt.Sprintf("test #%d (%s)", index, tc.name), func(t *testing.T) {
			program, err := Compile(tc.input, nil)
			if err != nil {
				t.Errorf("test #%d: compile failed: %+v", index, err)
				return
			}
			if v := program.Variance(); v != tc.exp {
				t.Errorf("test #%d: expected variance %d, got: %d", index, tc.exp, v)
			}
		})
	}
}

func TestWriteAll0(t *testing.T) {
	program, err := Compile("- {a|b} {c}?\n- a\n- {x}?", nil)
	if err != nil {
		t.Fatalf("compile failed: %+v", err)
	}
	out1 := program.WriteAll(nil)
	out2 := program.WriteAll(nil)
	if diff := pretty.Compare(out1, out2); diff != "" {
		t.Errorf("write all is not stable:\n%s", diff)
	}

	exp := []string{"a", "b", "a c", "b c", "", "x"} // duplicates across templates are removed
	if diff := pretty.Compare(out1, exp); diff != "" {
		t.Errorf("unexpected phrases:\n%s", diff)
	}
}

// TestWriteInWriteAll checks that every sampled phrase can also be enumerated.
func TestWriteInWriteAll(t *testing.T) {
	input := `
- ${Subject}
    - is available now.
    - is {currently}? available on {PC|Console|${Platform}}.
- {#v{start|begin} playing|play} the game and {{#v.1}ing} again!
- #n{one|two} {{one: {a|an} single, two: a pair [#n]}}
`
	args := map[string]interface{}{
		"Subject":  "X",
		"Platform": map[string]interface{}{"name": "Y"},
	}
	r := rand.New(rand.NewSource(42))
	program, err := Compile(input, r.Float64)
	if err != nil {
		t.Fatalf("compile failed: %+v", err)
	}
	all := program.WriteAll(args)
	for i := 0; i < 500; i++ {
		s := program.Write(args)
		if !util.StrInList(s, all) {
			t.Errorf("phrase `%s` is not in: %+v", s, all)
			return
		}
	}
}

func TestWrite0(t *testing.T) {
	type test struct { // an individual test
		name string
		rand []float64
		exp  string
	}
	testCases := []test{
		{"first template", []float64{0.0}, "a"},
		{"second template first option", []float64{0.5, 0.0}, "b"},
		{"second template last option", []float64{0.99, 0.99}, "c"},
		{"boundary goes to earlier template", []float64{1.0 / 3.0, 0.0}, "a"},
	}

	for index, tc := range testCases {
		t.Run(fmt.Sprintf("test #%d (%s)", index, tc.name), func(t *testing.T) {
			program, err := Compile("- a\n- {b|c}", scripted(tc.rand...))
			if err != nil {
				t.Errorf("test #%d: compile failed: %+v", index, err)
				return
			}
			if s := program.Write(nil); s != tc.exp {
				t.Errorf("test #%d: expected: `%s`, got: `%s`", index, tc.exp, s)
			}
		})
	}
}

func TestEmptyProgram0(t *testing.T) {
	program, err := Compile("not an outline\n", nil)
	if err != nil {
		t.Fatalf("compile failed: %+v", err)
	}
	if v := program.Variance(); v != 0 {
		t.Errorf("expected variance 0, got: %d", v)
	}
	if s := program.Write(nil); s != "" {
		t.Errorf("expected empty phrase, got: `%s`", s)
	}
	if out := program.WriteAll(nil); len(out) != 0 {
		t.Errorf("expected no phrases, got: %+v", out)
	}
	if args := program.Args(); len(args) != 0 {
		t.Errorf("expected no args, got: %+v", args)
	}
}

func TestCompileError0(t *testing.T) {
	_, err := Compile("- ${unterminated", nil)
	if err == nil {
		t.Fatalf("compile passed, expected fail")
	}
	var e *parser.ParseErr
	if !errors.As(err, &e) {
		t.Fatalf("expected a parse error, got: %+v", err)
	}
	if e.Err != parser.ErrUnterminatedArg {
		t.Errorf("unexpected parse error: %+v", e)
	}
	t.Logf("output: %+v", err)
}

func TestCompileError1(t *testing.T) {
	// every broken template is reported
	_, err := Compile("- ${a\n- fine\n- {b", nil)
	if err == nil {
		t.Fatalf("compile passed, expected fail")
	}
	if l := len(errwrap.List(err)); l != 2 {
		t.Errorf("expected 2 errors, got %d: %+v", l, err)
	}
}

func TestTemplates0(t *testing.T) {
	program, err := Compile(availableOutline, nil)
	if err != nil {
		t.Fatalf("compile failed: %+v", err)
	}
	templates := program.Templates()
	if l := len(templates); l != 2 {
		t.Fatalf("expected 2 templates, got: %d", l)
	}
	if s := templates[1].Source; s != "${Subject} is available on {PC|Console}." {
		t.Errorf("unexpected source: %s", s)
	}
	if v := templates[1].Variance; v != 2 {
		t.Errorf("unexpected variance: %d", v)
	}
	if diff := pretty.Compare(templates[0].Args, []string{"Subject"}); diff != "" {
		t.Errorf("unexpected args:\n%s", diff)
	}
	if diff := pretty.Compare(program.ArgNames(), []string{"Subject"}); diff != "" {
		t.Errorf("unexpected arg names:\n%s", diff)
	}
}

func TestArgs0(t *testing.T) {
	program, err := Compile("- ${b} {${a}|${c.d}}\n- {${e}}? ${a}", nil)
	if err != nil {
		t.Fatalf("compile failed: %+v", err)
	}
	if diff := pretty.Compare(program.ArgNames(), []string{"b", "a", "c.d", "e"}); diff != "" {
		t.Errorf("unexpected arg names:\n%s", diff)
	}
}

func TestDebug0(t *testing.T) {
	logs := []string{}
	program := &Program{
		Input: availableOutline,
		Rand:  scripted(0.0),
		Debug: true,
		Logf: func(format string, v ...interface{}) {
			logs = append(logs, fmt.Sprintf(format, v...))
		},
	}
	if err := program.Init(); err != nil {
		t.Fatalf("init failed: %+v", err)
	}
	program.Write(nil)
	if len(logs) == 0 {
		t.Errorf("expected some debug logs")
	}
	for _, s := range logs {
		t.Logf("log: %s", s)
	}
}

func TestConcurrent0(t *testing.T) {
	program, err := Compile(availableOutline, nil) // default source is safe
	if err != nil {
		t.Fatalf("compile failed: %+v", err)
	}
	args := map[string]interface{}{"Subject": "X"}
	all := program.WriteAll(args)

	wg := &sync.WaitGroup{}
	errs := make(chan string, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if s := program.Write(args); !util.StrInList(s, all) {
					errs <- s
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for s := range errs {
		t.Errorf("unexpected phrase: `%s`", s)
	}
}
