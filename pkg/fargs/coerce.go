// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// shape classifies a parameter's declared type. The set is closed:
// anything that does not fit one of these shapes is rejected when the
// command is constructed, never at invocation time.
type shape int

const (
	shapeScalar shape = iota
	shapeBool
	shapeSeq
	shapeOptional
)

// converter turns one raw command-line token into a typed value for a
// single declared type shape. Converters are pure and built once per
// parameter at construction time.
type converter struct {
	shape shape
	typ   reflect.Type

	parse func(string) (reflect.Value, error) // scalar leaf only
	elem  *converter                          // sequence element or optional inner type
}

var durationType = reflect.TypeOf(time.Duration(0))

// converterFor builds the converter for a declared parameter type.
// Supported shapes: scalar (string, ints, uints, floats, time.Duration),
// bool, slice of scalar, and pointer to any of those.
func converterFor(t reflect.Type) (*converter, error) {
	switch t.Kind() {
	case reflect.Ptr:
		inner, err := converterFor(t.Elem())
		if err != nil {
			return nil, err
		}
		if inner.shape == shapeOptional {
			return nil, fmt.Errorf("unsupported parameter type %s (nested pointers)", t)
		}
		return &converter{shape: shapeOptional, typ: t, elem: inner}, nil

	case reflect.Bool:
		return &converter{shape: shapeBool, typ: t}, nil

	case reflect.Slice:
		elem, err := scalarConverter(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("unsupported parameter type %s: %v", t, err)
		}
		return &converter{shape: shapeSeq, typ: t, elem: elem}, nil

	default:
		return scalarConverter(t)
	}
}

// scalarConverter builds the converter for a single-token type. The parse
// functions set values through the reflect kind so that named types
// (e.g. "type Count int") work transparently.
func scalarConverter(t reflect.Type) (*converter, error) {
	var parse func(string) (reflect.Value, error)

	switch t.Kind() {
	case reflect.String:
		parse = func(s string) (reflect.Value, error) {
			v := reflect.New(t).Elem()
			v.SetString(s)
			return v, nil
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if t == durationType {
			parse = func(s string) (reflect.Value, error) {
				d, err := time.ParseDuration(s)
				if err != nil {
					return reflect.Value{}, fmt.Errorf("invalid duration %q", s)
				}
				return reflect.ValueOf(d), nil
			}
			break
		}
		bits := t.Bits()
		parse = func(s string) (reflect.Value, error) {
			i, err := strconv.ParseInt(s, 10, bits)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("invalid int value %q", s)
			}
			v := reflect.New(t).Elem()
			v.SetInt(i)
			return v, nil
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		bits := t.Bits()
		parse = func(s string) (reflect.Value, error) {
			u, err := strconv.ParseUint(s, 10, bits)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("invalid uint value %q", s)
			}
			v := reflect.New(t).Elem()
			v.SetUint(u)
			return v, nil
		}

	case reflect.Float32, reflect.Float64:
		bits := t.Bits()
		parse = func(s string) (reflect.Value, error) {
			f, err := strconv.ParseFloat(s, bits)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("invalid float value %q", s)
			}
			v := reflect.New(t).Elem()
			v.SetFloat(f)
			return v, nil
		}

	default:
		return nil, fmt.Errorf("unsupported parameter type %s", t)
	}

	return &converter{shape: shapeScalar, typ: t, parse: parse}, nil
}

// parseBoolToken accepts only "true" and "false", case-insensitively.
// Presence of a bare boolean flag is resolved to "true" before this runs.
func parseBoolToken(raw string) (bool, error) {
	if strings.EqualFold(raw, "true") {
		return true, nil
	}
	if strings.EqualFold(raw, "false") {
		return false, nil
	}
	return false, fmt.Errorf("boolean value must be true or false, got %q", raw)
}

// coerce converts a raw token into a value of the converter's type.
// A sequence token is atomic: if any element fails, the whole token fails
// and nothing is bound.
func (c *converter) coerce(raw string) (reflect.Value, error) {
	switch c.shape {
	case shapeBool:
		b, err := parseBoolToken(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		v := reflect.New(c.typ).Elem()
		v.SetBool(b)
		return v, nil

	case shapeSeq:
		if raw == "" {
			return reflect.MakeSlice(c.typ, 0, 0), nil
		}
		parts := strings.Split(raw, ",")
		out := reflect.MakeSlice(c.typ, len(parts), len(parts))
		for i, part := range parts {
			v, err := c.elem.coerce(part)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("element %d: %v", i, err)
			}
			out.Index(i).Set(v)
		}
		return out, nil

	case shapeOptional:
		v, err := c.elem.coerce(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(c.elem.typ)
		p.Elem().Set(v)
		return p.Convert(c.typ), nil

	default:
		return c.parse(raw)
	}
}

// isBool reports whether a bare flag (no value) is legal for this
// converter: plain booleans and optional booleans.
func (c *converter) isBool() bool {
	if c.shape == shapeBool {
		return true
	}
	return c.shape == shapeOptional && c.elem.shape == shapeBool
}
