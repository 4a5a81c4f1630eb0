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

// Package cli handles all of the core command line parsing. It's the first
// entry point after the real main function, and it compiles and runs the
// outline that it's given.
package cli

import (
	"context"
	"fmt"

	cliUtil "github.com/purpleidea/phrasebook/cli/util"
	"github.com/purpleidea/phrasebook/lang"
	"github.com/purpleidea/phrasebook/lang/interfaces"
	"github.com/purpleidea/phrasebook/util"
	"github.com/purpleidea/phrasebook/util/errwrap"

	"github.com/alexflint/go-arg"
	"github.com/davecgh/go-spew/spew"
)

// CLI is the entry point for using phrasebook normally from the CLI.
func CLI(ctx context.Context, data *cliUtil.Data) error {
	// test for sanity
	if data == nil {
		return fmt.Errorf("this CLI was not run correctly")
	}
	if data.Program == "" || data.Version == "" {
		return fmt.Errorf("program was not compiled correctly")
	}
	if data.Flags.Logf == nil || data.Stdout == nil || data.Fs == nil {
		return fmt.Errorf("this CLI was not run correctly")
	}

	args := Args{}
	args.version = data.Version // copy this in
	args.description = data.Tagline

	config := arg.Config{
		Program: data.Program,
	}
	parser, err := arg.NewParser(config, &args)
	if err != nil {
		// programming error
		return errwrap.Wrapf(err, "cli config error")
	}
	err = parser.Parse(data.Args[1:]) // XXX: args[0] needs to be dropped
	if err == arg.ErrHelp {
		parser.WriteHelp(data.Stdout)
		return nil
	}
	if err == arg.ErrVersion {
		fmt.Fprintf(data.Stdout, "%s\n", data.Version) // byon: bring your own newline
		return nil
	}
	if err != nil {
		return cliUtil.CliParseError(err) // consistent errors
	}

	data.Flags.Debug = data.Flags.Debug || args.Debug
	data.Flags.Verbose = data.Flags.Verbose || args.Verbose

	if ok, err := args.Run(ctx, data); err != nil {
		return err
	} else if ok { // did we activate one of the commands?
		return nil
	}

	// print help if no subcommands are set
	parser.WriteHelp(data.Stdout)

	return nil
}

// Args is the CLI parsing structure and type of the parsed result. This
// particular struct is the top-most one.
type Args struct {
	Debug bool `arg:"--debug,env:PHRASEBOOK_DEBUG" help:"add additional log messages"`

	Verbose bool `arg:"--verbose" help:"add extra log message output"`

	WriteCmd *WriteArgs `arg:"subcommand:write" help:"write random phrases"`

	AllCmd *AllArgs `arg:"subcommand:all" help:"write every distinct phrase"`

	InfoCmd *InfoArgs `arg:"subcommand:info" help:"describe the templates of an outline"`

	// version is a private handle for our version string.
	version string `arg:"-"` // ignored from parsing

	// description is a private handle for our description string.
	description string `arg:"-"` // ignored from parsing
}

// Version returns the version string. Implementing this signature is part of
// the API for the cli library.
func (obj *Args) Version() string {
	return obj.version
}

// Description returns a description string. Implementing this signature is part
// of the API for the cli library.
func (obj *Args) Description() string {
	return obj.description
}

// Run executes the correct subcommand. It errors if there's ever an error. It
// returns true if we did activate one of the subcommands. It returns false if
// we did not. This information is used so that the top-level parser can return
// usage or help information if no subcommand activates.
func (obj *Args) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	var name string
	var cmd interface {
		Run(context.Context, *cliUtil.Data) (bool, error)
	}
	if x := obj.WriteCmd; x != nil {
		name, cmd = cliUtil.LookupSubcommand(obj, x), x // "write"
	}
	if x := obj.AllCmd; x != nil {
		name, cmd = cliUtil.LookupSubcommand(obj, x), x // "all"
	}
	if x := obj.InfoCmd; x != nil {
		name, cmd = cliUtil.LookupSubcommand(obj, x), x // "info"
	}
	if cmd == nil {
		return false, nil // nobody activated
	}

	cliUtil.Hello(data.Program, data.Version, data.Flags) // say hello!
	Logf := func(format string, v ...interface{}) {
		data.Flags.Logf("main: "+format, v...)
	}
	if data.Flags.Verbose || data.Flags.Debug {
		Logf("running: %s", name)
		defer Logf("goodbye!")
	}

	return cmd.Run(ctx, data)
}

// compile reads the input and builds the program. If source is nil, then the
// default random source is used.
func compile(data *cliUtil.Data, input string, source interfaces.RandFunc) (*lang.Program, error) {
	text, err := cliUtil.ReadInput(data.Fs, data.Stdin, input)
	if err != nil {
		return nil, err
	}

	program := &lang.Program{
		Input: text,
		Rand:  source,
		Debug: data.Flags.Debug,
		Logf: func(format string, v ...interface{}) {
			data.Flags.Logf("lang: "+format, v...)
		},
	}
	if err := program.Init(); err != nil {
		return nil, errwrap.Wrapf(err, "could not compile `%s`", input)
	}
	if data.Flags.Verbose || data.Flags.Debug {
		data.Flags.Logf("main: compiled %d template(s)", len(program.Templates()))
	}
	if data.Flags.Debug {
		w := &util.LogWriter{
			Prefix: "ast: ",
			Logf:   data.Flags.Logf,
		}
		for i, template := range program.Templates() {
			data.Flags.Logf("ast: template #%d:", i)
			spew.Fdump(w, template.AST)
		}
	}
	return program, nil
}
