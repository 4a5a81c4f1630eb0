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

package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	cliUtil "github.com/purpleidea/phrasebook/cli/util"
	"github.com/purpleidea/phrasebook/lang/interfaces"
	"github.com/purpleidea/phrasebook/util"
)

// WriteArgs is the CLI parsing structure and type of the parsed result. This
// particular one is for the `write` subcommand.
type WriteArgs struct {
	cliUtil.ValueArgs // embedded config (can't be a pointer) https://github.com/alexflint/go-arg/issues/240

	Seed *int64 `arg:"--seed,env:PHRASEBOOK_SEED" help:"seed the random source for repeatable output"`

	Count int `arg:"--count" default:"1" help:"number of phrases to write"`
}

// Run executes the `write` subcommand. It prints one random phrase per line.
func (obj *WriteArgs) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	if obj.Count < 0 {
		return false, cliUtil.CliParseError(cliUtil.NegativeCount)
	}

	args, err := cliUtil.LoadArgs(data.Fs, obj.ArgsFile, obj.Set)
	if err != nil {
		return false, err
	}
	if data.Flags.Verbose || data.Flags.Debug {
		data.Flags.Logf("main: args: %s", strings.Join(util.StrMapKeys(args), ", "))
	}

	var source interfaces.RandFunc // nil is the default source
	if obj.Seed != nil {
		source = rand.New(rand.NewSource(*obj.Seed)).Float64
	}

	program, err := compile(data, obj.Input, source)
	if err != nil {
		return false, err
	}

	for i := 0; i < obj.Count; i++ {
		select {
		case <-ctx.Done():
			return true, ctx.Err()
		default:
		}
		if _, err := fmt.Fprintln(data.Stdout, program.Write(args)); err != nil {
			return true, err
		}
	}
	return true, nil
}
