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
	"strings"

	cliUtil "github.com/purpleidea/phrasebook/cli/util"
	"github.com/purpleidea/phrasebook/util"
)

// AllArgs is the CLI parsing structure and type of the parsed result. This
// particular one is for the `all` subcommand.
type AllArgs struct {
	cliUtil.ValueArgs // embedded config (can't be a pointer) https://github.com/alexflint/go-arg/issues/240
}

// Run executes the `all` subcommand. It prints every distinct phrase, one per
// line.
func (obj *AllArgs) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	args, err := cliUtil.LoadArgs(data.Fs, obj.ArgsFile, obj.Set)
	if err != nil {
		return false, err
	}
	if data.Flags.Verbose || data.Flags.Debug {
		data.Flags.Logf("main: args: %s", strings.Join(util.StrMapKeys(args), ", "))
	}

	program, err := compile(data, obj.Input, nil) // no randomness needed
	if err != nil {
		return false, err
	}

	for _, s := range program.WriteAll(args) {
		select {
		case <-ctx.Done():
			return true, ctx.Err()
		default:
		}
		if _, err := fmt.Fprintln(data.Stdout, s); err != nil {
			return true, err
		}
	}
	return true, nil
}
