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

package util

import (
	"io"
	"reflect"
	"strings"

	"github.com/purpleidea/phrasebook/util/errwrap"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// stdinInput is the input name which reads the outline from stdin.
const stdinInput = "-"

// LookupSubcommand returns the name of the subcommand in the obj, of a struct.
// This is useful for determining the name of the subcommand that was activated.
// It returns an empty string if a specific name was not found.
func LookupSubcommand(obj interface{}, st interface{}) string {
	val := reflect.ValueOf(obj)
	if val.Kind() == reflect.Ptr { // max one de-referencing
		val = val.Elem()
	}

	v := reflect.ValueOf(st) // value of the struct
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := val.Field(i) // value of the field
		if !f.CanInterface() || f.Interface() != v.Interface() {
			continue
		}

		field := typ.Field(i)
		alias, ok := field.Tag.Lookup("arg")
		if !ok {
			continue
		}

		// XXX: `arg` needs a split by comma first or fancier parsing
		prefix := "subcommand"
		split := strings.Split(alias, ":")
		if len(split) != 2 || split[0] != prefix {
			continue
		}

		return split[1] // found
	}
	return "" // not found
}

// InputArgs is the common positional outline argument of every subcommand.
type InputArgs struct {
	// Input is the path to the outline file, or a single dash for stdin.
	Input string `arg:"positional,required" help:"outline file to read, or - for stdin"`
}

// ValueArgs are the flags of the subcommands which render phrases.
type ValueArgs struct {
	InputArgs

	ArgsFile string `arg:"--args,env:PHRASEBOOK_ARGS" help:"yaml file of argument values"`

	Set []string `arg:"--set,separate" help:"argument value as key=value, which overrides the args file"`
}

// ReadInput returns the outline text. If the input is a single dash, then it is
// read from stdin, otherwise it's a path on the fs.
func ReadInput(fs afero.Fs, stdin io.Reader, input string) (string, error) {
	if input == stdinInput {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", errwrap.Wrapf(err, "could not read stdin")
		}
		return string(b), nil
	}

	b, err := afero.ReadFile(fs, input)
	if err != nil {
		return "", errwrap.Wrapf(err, "could not read input")
	}
	return string(b), nil
}

// LoadArgs builds the argument values. The yaml file is read first if one is
// named, and then each key=value pair is applied on top. Nested yaml values can
// be reached with dotted argument names.
func LoadArgs(fs afero.Fs, file string, set []string) (map[string]interface{}, error) {
	args := make(map[string]interface{})

	if file != "" {
		b, err := afero.ReadFile(fs, file)
		if err != nil {
			return nil, errwrap.Wrapf(err, "could not read args file")
		}
		if err := yaml.Unmarshal(b, &args); err != nil {
			return nil, errwrap.Wrapf(err, "could not decode args file")
		}
		if args == nil { // the file was a null document
			args = make(map[string]interface{})
		}
	}

	for _, x := range set {
		key, value, found := strings.Cut(x, "=")
		if !found || key == "" {
			return nil, errwrap.Wrapf(MissingEquals, "bad value `%s`", x)
		}
		args[key] = value
	}

	return args, nil
}
