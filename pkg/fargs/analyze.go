// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fargs/fargs/pkg/docstring"
)

// paramSpec is the normalized record of one wrapped-function parameter,
// derived from one exported field of the args struct.
type paramSpec struct {
	name       string // long flag / positional name
	fieldIndex int
	conv       *converter
	hasDefault bool
	defaultRaw string // re-coerced on every invocation, validated once here
	help       string
	short      string // single-character alias, "" if none
	positional bool
}

// reserved help flag names. A parameter may not claim either.
const (
	helpName  = "help"
	helpShort = "h"
)

// analyzeParams extracts the parameter descriptors from the args struct
// type. docs supplies per-parameter help text parsed from the docstring;
// aliases supplies caller-provided short names that take precedence over
// `short` struct tags.
func analyzeParams(t reflect.Type, docs docstring.Doc, aliases map[string]string, fname string) ([]paramSpec, error) {
	var params []paramSpec
	byName := make(map[string]bool)
	byShort := make(map[string]bool)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Tag.Get("arg")
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		if name == helpName {
			return nil, &ConfigError{Func: fname, Reason: fmt.Sprintf("parameter %s collides with the reserved help flag", field.Name)}
		}
		if byName[name] {
			return nil, &ConfigError{Func: fname, Reason: fmt.Sprintf("duplicate parameter name %q", name)}
		}
		byName[name] = true

		conv, err := converterFor(field.Type)
		if err != nil {
			return nil, &ConfigError{Func: fname, Reason: fmt.Sprintf("parameter %s: %v", name, err)}
		}

		p := paramSpec{
			name:       name,
			fieldIndex: i,
			conv:       conv,
			help:       docs.Param(name),
		}
		if p.help == "" {
			p.help = field.Tag.Get("help")
		}

		if raw, ok := field.Tag.Lookup("default"); ok {
			if _, err := conv.coerce(raw); err != nil {
				return nil, &ConfigError{Func: fname, Reason: fmt.Sprintf("parameter %s: bad default %q: %v", name, raw, err)}
			}
			p.hasDefault = true
			p.defaultRaw = raw
		}

		// Optional (pointer) parameters are inherently defaulted: absence
		// binds nil. Everything else without a default is positional.
		p.positional = !p.hasDefault && conv.shape != shapeOptional

		short := field.Tag.Get("short")
		if s, ok := aliases[name]; ok {
			short = s
		}
		if short != "" {
			if len([]rune(short)) != 1 {
				return nil, &ConfigError{Func: fname, Reason: fmt.Sprintf("parameter %s: short alias %q is not a single character", name, short)}
			}
			if short == helpShort {
				return nil, &ConfigError{Func: fname, Reason: fmt.Sprintf("parameter %s: short alias %q collides with the reserved help flag", name, short)}
			}
			if byShort[short] {
				return nil, &ConfigError{Func: fname, Reason: fmt.Sprintf("short alias %q assigned to more than one parameter", short)}
			}
			byShort[short] = true
			p.short = short
		}

		params = append(params, p)
	}

	// Aliases for parameters that do not exist are declaration mistakes.
	for name := range aliases {
		if !byName[name] {
			return nil, &ConfigError{Func: fname, Reason: fmt.Sprintf("short alias given for unknown parameter %q", name)}
		}
	}

	return params, nil
}
