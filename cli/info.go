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

	"github.com/dustin/go-humanize"
	"github.com/sanity-io/litter"
)

// InfoArgs is the CLI parsing structure and type of the parsed result. This
// particular one is for the `info` subcommand.
type InfoArgs struct {
	cliUtil.InputArgs // embedded config (can't be a pointer) https://github.com/alexflint/go-arg/issues/240

	Dump bool `arg:"--dump" help:"also print the syntax tree of every template"`
}

// Run executes the `info` subcommand. It prints the arguments and the variance
// of the outline, and of each template in it.
func (obj *InfoArgs) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	program, err := compile(data, obj.Input, nil)
	if err != nil {
		return false, err
	}

	lo := litter.Options{
		StripPackageNames: true,
		HidePrivateFields: true,
		HideZeroValues:    true,
	}

	w := data.Stdout
	fmt.Fprintf(w, "args: %s\n", strings.Join(program.ArgNames(), ", "))
	fmt.Fprintf(w, "templates: %d\n", len(program.Templates()))
	fmt.Fprintf(w, "variance: %s\n", humanize.Comma(int64(program.Variance())))
	for i, template := range program.Templates() {
		fmt.Fprintf(w, "template #%d: variance %s: %s\n", i, humanize.Comma(int64(template.Variance)), template.Source)
		if obj.Dump {
			fmt.Fprintf(w, "%s\n", lo.Sdump(template.AST))
		}
	}
	return true, nil
}
