// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by Invoke when help was requested. The caller should
// print the command's help text and exit with a success status.
var ErrHelp = errors.New("help requested")

// ConfigError reports a mistake in a wrapped function's declaration: an
// unsupported parameter type, a duplicate name, or a colliding short alias.
// It is always surfaced at construction time, never at invocation time.
type ConfigError struct {
	Func   string // wrapped function name, when known
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Func != "" {
		return fmt.Sprintf("%s: %s", e.Func, e.Reason)
	}
	return e.Reason
}

// UsageError reports malformed command-line input: an unknown flag, a wrong
// number of positional arguments, or a value that failed coercion. The
// wrapped function is never called when a UsageError is returned.
type UsageError struct {
	Token  string // the offending token, when one can be identified
	Reason string
	Err    error // underlying coercion error, if any
}

func (e *UsageError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %s", e.Token, e.Reason)
	}
	return e.Reason
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ValueError reports a supplied value that failed its parameter's type
// coercion. It is always wrapped in a UsageError.
type ValueError struct {
	Param string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Param, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
