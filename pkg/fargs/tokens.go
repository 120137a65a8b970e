// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import "strings"

// The token engine recognizes flag tokens and separates them from
// positional tokens. It knows nothing about types beyond "is this a
// boolean flag": booleans never consume the following token, everything
// else takes a value from "=value" or from the next token.

// scanSpec tells the engine how to treat one registered flag name.
type scanSpec struct {
	canon    string // canonical long name
	boolFlag bool   // bare token means "true", never consumes the next token
	seq      bool   // repeated occurrences accumulate, comma-joined
}

// scanTokens walks raw argument tokens and produces the mapping from
// canonical flag name to raw value plus the ordered positional tokens.
// specs is keyed by every accepted spelling (long and short names).
//
// A token starting with "-" is a flag unless it reads as a negative
// number. "--help" and "-h" short-circuit with ErrHelp.
func scanTokens(args []string, specs map[string]scanSpec) (map[string]string, []string, error) {
	flags := make(map[string]string)
	var positionals []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if !strings.HasPrefix(arg, "-") || isNumeric(arg) {
			positionals = append(positionals, arg)
			continue
		}

		name := strings.TrimLeft(arg, "-")
		value := ""
		hasValue := false
		if idx := strings.Index(name, "="); idx != -1 {
			value = name[idx+1:]
			name = name[:idx]
			hasValue = true
		}

		if name == helpName || name == helpShort {
			return nil, nil, ErrHelp
		}

		spec, ok := specs[name]
		if !ok {
			return nil, nil, &UsageError{Token: arg, Reason: "unknown flag"}
		}

		if !hasValue {
			if spec.boolFlag {
				value = "true"
			} else {
				if i+1 >= len(args) {
					return nil, nil, &UsageError{Token: arg, Reason: "flag needs a value"}
				}
				next := args[i+1]
				if strings.HasPrefix(next, "-") && !isNumeric(next) {
					return nil, nil, &UsageError{Token: arg, Reason: "flag needs a value"}
				}
				value = next
				i++
			}
		}

		if existing, ok := flags[spec.canon]; ok && spec.seq {
			switch {
			case existing == "":
				flags[spec.canon] = value
			case value != "":
				flags[spec.canon] = existing + "," + value
			}
		} else {
			flags[spec.canon] = value
		}
	}

	return flags, positionals, nil
}

// isNumeric reports whether a token reads as a number, e.g. "10", "-10",
// "3.14", "-3.14". Such tokens are never treated as flags.
func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}

	start := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}

	hasDigit := false
	hasDot := false
	for i := start; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			hasDigit = true
		case s[i] == '.':
			if hasDot {
				return false
			}
			hasDot = true
		case s[i] == ',':
			// Comma-delimited numeric sequences ("-1,2,3") are values too.
		default:
			return false
		}
	}
	return hasDigit
}
