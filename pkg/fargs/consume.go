// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import (
	"fmt"
	"reflect"
	"strings"
)

// Extract parses a single flag out of a token list without a full Command:
// it returns the flag's typed value and the remaining tokens with the flag
// and its value removed. Unrecognized tokens are left intact, so calls can
// be chained to peel flags off one at a time. short may be empty.
//
// The flag must be present; use ExtractOr for a fallback value.
func Extract[T any](args []string, name, short string) (T, []string, error) {
	var zero T
	val, remaining, found, err := extract[T](args, name, short)
	if err != nil {
		return zero, args, err
	}
	if !found {
		return zero, args, &UsageError{Reason: fmt.Sprintf("missing flag --%s", name)}
	}
	return val, remaining, nil
}

// ExtractOr is Extract with a fallback for when the flag is absent.
func ExtractOr[T any](args []string, name, short string, fallback T) (T, []string, error) {
	val, remaining, found, err := extract[T](args, name, short)
	if err != nil {
		return fallback, args, err
	}
	if !found {
		return fallback, remaining, nil
	}
	return val, remaining, nil
}

func extract[T any](args []string, name, short string) (val T, remaining []string, found bool, err error) {
	var zero T
	conv, cerr := converterFor(reflect.TypeOf(zero))
	if cerr != nil {
		return zero, args, false, &ConfigError{Reason: fmt.Sprintf("flag %s: %v", name, cerr)}
	}
	boolFlag := conv.isBool()
	seq := conv.shape == shapeSeq

	var raw string
	remaining = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || isNumeric(arg) {
			remaining = append(remaining, arg)
			continue
		}

		tokName := strings.TrimLeft(arg, "-")
		value := ""
		hasValue := false
		if idx := strings.Index(tokName, "="); idx != -1 {
			value = tokName[idx+1:]
			tokName = tokName[:idx]
			hasValue = true
		}
		if tokName != name && (short == "" || tokName != short) {
			remaining = append(remaining, arg)
			continue
		}

		if !hasValue {
			if boolFlag {
				value = "true"
			} else {
				if i+1 >= len(args) {
					return zero, args, false, &UsageError{Token: arg, Reason: "flag needs a value"}
				}
				next := args[i+1]
				if strings.HasPrefix(next, "-") && !isNumeric(next) {
					return zero, args, false, &UsageError{Token: arg, Reason: "flag needs a value"}
				}
				value = next
				i++
			}
		}

		switch {
		case !found || !seq:
			raw = value
		case raw == "":
			raw = value
		case value != "":
			raw = raw + "," + value
		}
		found = true
	}

	if !found {
		return zero, remaining, false, nil
	}

	v, err := conv.coerce(raw)
	if err != nil {
		return zero, args, true, &UsageError{
			Token:  raw,
			Reason: fmt.Sprintf("invalid value for %s", name),
			Err:    &ValueError{Param: name, Value: raw, Err: err},
		}
	}
	return v.Interface().(T), remaining, true, nil
}
