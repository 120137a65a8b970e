// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fargs turns an ordinary function into a command-line interface.
//
// The function's parameters are declared as the fields of a single args
// struct; fargs derives the whole parser from that declaration: positional
// and keyword arguments, boolean flags, help text, and type coercion. No
// parser is declared by hand.
//
// # Basic usage
//
//	type HelloArgs struct {
//	    Count int    `arg:"count"`
//	    Name  string `arg:"name"`
//	}
//
//	func hello(a HelloArgs) {
//	    for i := 0; i < a.Count; i++ {
//	        fmt.Printf("Hello, %s!\n", a.Name)
//	    }
//	}
//
//	func main() {
//	    fargs.MustNew(hello, fargs.WithDoc(`Greets NAME for a total of COUNT times.
//
//	:param count: The number of times to repeat
//	:param name: The name to repeat`)).Main()
//	}
//
//	$ hello 3 world
//	$ hello --help
//
// # Parameter declaration
//
// Each exported field of the args struct is one parameter:
//   - `arg:"name"` sets the parameter name (default: lowercased field name)
//   - `default:"v"` gives a default and exposes the parameter as --name
//   - `short:"s"` assigns a single-character alias (-s); aliases are never
//     derived automatically
//   - `help:"..."` is fallback help text when the docstring has none
//
// Fields without a default are required positional arguments, bound in
// declaration order. Pointer fields are optional: they stay nil when the
// flag is absent.
//
// # Supported types
//
// string, bool, int (all widths), uint (all widths), float32/float64,
// time.Duration, slices of those scalars (comma-delimited on the command
// line), and pointers to any of them. Anything else is rejected by New with
// a *ConfigError.
//
// # Boolean flags
//
// A bare --flag or -f means true. An explicit value is accepted only as
// --flag=true or --flag=false (case-insensitive); anything else is a usage
// error.
//
// # Call reports
//
// With WithReport(true), every successful invocation prints the
// reconstructed call, the elapsed wall-clock time, and the return value:
//
//	........
//	Call to 'movingavg 2,2,0,0,1 -s' took 0.001s and returned [2 2 1.5 1.125 1.09]
package fargs
