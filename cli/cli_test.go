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

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	cliUtil "github.com/purpleidea/phrasebook/cli/util"
	"github.com/purpleidea/phrasebook/lang/parser"
	"github.com/purpleidea/phrasebook/util"

	"github.com/kylelemons/godebug/pretty"
	"github.com/spf13/afero"
)

const testOutline = "- ${Subject}\n    - is available now.\n    - is available on {PC|Console}.\n"

// run runs the CLI on a memory fs which holds some test files, and returns
// what it printed.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/outline.txt": testOutline,
		"/args.yaml":   "Subject: Y\n",
		"/bad.txt":     "- ${unterminated\n",
		"/big.txt":     "- {0|1|2|3|4|5|6|7|8|9} {0|1|2|3|4|5|6|7|8|9} {0|1|2|3|4|5|6|7|8|9}\n",
	}
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0644); err != nil {
			t.Fatalf("could not write file: %+v", err)
		}
	}

	stdout := &bytes.Buffer{}
	data := &cliUtil.Data{
		Program: "phrasebook",
		Version: "0.0.1-test",
		Tagline: "test",
		Flags: cliUtil.Flags{
			Logf: func(format string, v ...interface{}) {
				t.Logf("cli: "+format, v...)
			},
		},
		Args:   append([]string{"phrasebook"}, args...),
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Fs:     fs,
	}
	err := CLI(context.Background(), data)
	return stdout.String(), err
}

func lines(s string) []string {
	out := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	sort.Strings(out)
	return out
}

func TestAll0(t *testing.T) {
	exp := []string{
		"X is available now.",
		"X is available on Console.",
		"X is available on PC.",
	}

	out, err := run(t, "", "all", "/outline.txt", "--set", "Subject=X")
	if err != nil {
		t.Fatalf("cli failed: %+v", err)
	}
	if diff := pretty.Compare(lines(out), exp); diff != "" {
		t.Errorf("unexpected output:\n%s", diff)
	}

	// the flag wins over the file
	out, err = run(t, "", "all", "/outline.txt", "--args", "/args.yaml", "--set", "Subject=X")
	if err != nil {
		t.Fatalf("cli failed: %+v", err)
	}
	if diff := pretty.Compare(lines(out), exp); diff != "" {
		t.Errorf("unexpected output:\n%s", diff)
	}

	out, err = run(t, testOutline, "all", "-", "--args", "/args.yaml")
	if err != nil {
		t.Fatalf("cli failed: %+v", err)
	}
	if l := lines(out); len(l) != 3 || !strings.HasPrefix(l[0], "Y ") {
		t.Errorf("unexpected output: %+v", l)
	}
}

func TestWrite0(t *testing.T) {
	all, err := run(t, "", "all", "/outline.txt", "--set", "Subject=X")
	if err != nil {
		t.Fatalf("cli failed: %+v", err)
	}

	out1, err := run(t, "", "write", "/outline.txt", "--set", "Subject=X", "--seed", "42", "--count", "20")
	if err != nil {
		t.Fatalf("cli failed: %+v", err)
	}
	l := strings.Split(strings.TrimSuffix(out1, "\n"), "\n")
	if len(l) != 20 {
		t.Errorf("expected 20 phrases, got: %d", len(l))
	}
	for _, s := range l {
		if !util.StrInList(s, lines(all)) {
			t.Errorf("unexpected phrase: %s", s)
		}
	}

	out2, err := run(t, "", "write", "/outline.txt", "--set", "Subject=X", "--seed", "42", "--count", "20")
	if err != nil {
		t.Fatalf("cli failed: %+v", err)
	}
	if out1 != out2 {
		t.Errorf("the same seed gave different output")
	}

	out, err := run(t, "", "write", "/outline.txt")
	if err != nil {
		t.Fatalf("cli failed: %+v", err)
	}
	if l := lines(out); len(l) != 1 {
		t.Errorf("expected one phrase by default, got: %+v", l)
	}
}

func TestInfo0(t *testing.T) {
	out, err := run(t, "", "info", "/outline.txt")
	if err != nil {
		t.Fatalf("cli failed: %+v", err)
	}
	for _, s := range []string{"args: Subject\n", "variance: 3\n", "template #1: variance 2: ${Subject} is available on {PC|Console}.\n"} {
		if !strings.Contains(out, s) {
			t.Errorf("output is missing `%s`:\n%s", s, out)
		}
	}

	out, err = run(t, "", "info", "/big.txt", "--dump")
	if err != nil {
		t.Fatalf("cli failed: %+v", err)
	}
	if !strings.Contains(out, "variance: 1,000\n") {
		t.Errorf("variance was not humanized:\n%s", out)
	}
	if !strings.Contains(out, "Choice") {
		t.Errorf("dump is missing:\n%s", out)
	}
}

func TestErrors0(t *testing.T) {
	type test struct { // an individual test
		name string
		args []string
		fn   func(error) bool
	}
	testCases := []test{
		{
			name: "missing file",
			args: []string{"all", "/missing.txt"},
			fn:   func(err error) bool { return err != nil },
		},
		{
			name: "parse error",
			args: []string{"write", "/bad.txt"},
			fn: func(err error) bool {
				var e *parser.ParseErr
				return errors.As(err, &e) && e.Err == parser.ErrUnterminatedArg
			},
		},
		{
			name: "bad set",
			args: []string{"all", "/outline.txt", "--set", "nope"},
			fn:   func(err error) bool { return errors.Is(err, cliUtil.MissingEquals) },
		},
		{
			name: "unknown flag",
			args: []string{"all", "/outline.txt", "--nope"},
			fn: func(err error) bool {
				return err != nil && strings.Contains(err.Error(), "cli parse error")
			},
		},
		{
			name: "negative count",
			args: []string{"write", "/outline.txt", "--count=-1"},
			fn:   func(err error) bool { return errors.Is(err, cliUtil.NegativeCount) },
		},
	}

	for index, tc := range testCases {
		t.Run(fmt.Sprintf("test #%d (%s)", index, tc.name), func(t *testing.T) {
			_, err := run(t, "", tc.args...)
			if !tc.fn(err) {
				t.Errorf("test #%d: unexpected error: %+v", index, err)
			}
		})
	}
}

func TestHelp0(t *testing.T) {
	out, err := run(t, "")
	if err != nil {
		t.Fatalf("cli failed: %+v", err)
	}
	if !strings.Contains(out, "Usage") {
		t.Errorf("expected usage:\n%s", out)
	}

	out, err = run(t, "", "--version")
	if err != nil {
		t.Fatalf("cli failed: %+v", err)
	}
	if out != "0.0.1-test\n" {
		t.Errorf("unexpected version: %s", out)
	}
}

func TestDebug0(t *testing.T) {
	out, err := run(t, "", "--debug", "all", "/outline.txt", "--set", "Subject=X")
	if err != nil {
		t.Fatalf("cli failed: %+v", err)
	}
	if l := lines(out); len(l) != 3 {
		t.Errorf("unexpected output: %+v", l)
	}
}
