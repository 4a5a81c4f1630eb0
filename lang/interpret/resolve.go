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
	"reflect"
	"strconv"
	"strings"
)

// lengthField is the path segment which returns the length of a list or a
// string.
const lengthField = "length"

// ResolveArg returns the string value of an argument. The literal key is tried
// first, so that dotted keys can be passed in as is. Otherwise the key is split
// on dots and walked as a path through maps, structs and lists, starting from
// the first segment. Anything missing resolves to the empty string.
func ResolveArg(key string, args map[string]interface{}) string {
	if v, exists := args[key]; exists {
		return Stringify(v)
	}

	parts := strings.Split(key, ".")
	v, exists := args[parts[0]]
	if !exists {
		return ""
	}
	for _, part := range parts[1:] {
		var ok bool
		if v, ok = lookup(v, part); !ok {
			return ""
		}
	}
	return Stringify(v)
}

// lookup returns the named field, key or index of v.
func lookup(v interface{}, name string) (interface{}, bool) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Map:
		var key reflect.Value
		switch kt := rv.Type().Key(); kt.Kind() {
		case reflect.String:
			key = reflect.ValueOf(name).Convert(kt)
		case reflect.Interface: // eg: map[interface{}]interface{} from yaml
			key = reflect.ValueOf(name)
		default:
			return nil, false
		}
		value := rv.MapIndex(key)
		if !value.IsValid() {
			return nil, false
		}
		return value.Interface(), true

	case reflect.Struct:
		field := rv.FieldByName(name)
		if !field.IsValid() || !field.CanInterface() {
			return nil, false
		}
		return field.Interface(), true

	case reflect.Slice, reflect.Array, reflect.String:
		if name == lengthField {
			return rv.Len(), true
		}
		i, err := strconv.Atoi(name)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		if rv.Kind() == reflect.String {
			return rv.String()[i : i+1], true
		}
		return rv.Index(i).Interface(), true
	}

	return nil, false
}

// Stringify returns the string form of an argument value. A nil value is the
// empty string, and floats are printed without trailing zeroes.
func Stringify(v interface{}) string {
	if v == nil {
		return ""
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}

	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	return fmt.Sprint(v)
}
