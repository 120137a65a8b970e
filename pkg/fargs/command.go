// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/fargs/fargs/pkg/docstring"
)

// Command wraps a function and the argument parser derived from its args
// struct. A Command is built once, immutably, and may be invoked any number
// of times.
type Command struct {
	fn      reflect.Value
	argType reflect.Type
	name    string
	summary string
	report  bool
	out     io.Writer
	errOut  io.Writer

	params      []paramSpec
	positionals []*paramSpec          // required parameters, declaration order
	specs       map[string]scanSpec   // every accepted flag spelling
	byName      map[string]*paramSpec // canonical long name -> spec
}

type config struct {
	name    string
	doc     string
	report  bool
	aliases map[string]string
	out     io.Writer
	errOut  io.Writer
}

// Option configures command construction.
type Option func(*config)

// WithDoc attaches a documentation string. Its leading block becomes the
// help banner; ":param name: text" lines become per-parameter help.
func WithDoc(doc string) Option {
	return func(c *config) { c.doc = doc }
}

// WithName overrides the command name derived from the function.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithReport enables printing a call report (call line, elapsed time,
// return value) after every successful invocation.
func WithReport(report bool) Option {
	return func(c *config) { c.report = report }
}

// WithAliases assigns single-character aliases to parameters by name.
// Aliases given here take precedence over `short` struct tags.
func WithAliases(aliases map[string]string) Option {
	return func(c *config) {
		if c.aliases == nil {
			c.aliases = make(map[string]string)
		}
		for name, short := range aliases {
			c.aliases[name] = short
		}
	}
}

// WithOutput redirects help and report output (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithErrorOutput redirects usage error output (default os.Stderr).
func WithErrorOutput(w io.Writer) Option {
	return func(c *config) { c.errOut = w }
}

// New builds a Command around fn, which must be a function taking exactly
// one struct argument. Each exported field of that struct becomes one
// command-line parameter. Declaration mistakes (unsupported field types,
// colliding aliases) return a *ConfigError.
func New(fn any, opts ...Option) (*Command, error) {
	cfg := config{out: os.Stdout, errOut: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, &ConfigError{Func: cfg.name, Reason: "wrapped value is not a function"}
	}

	name := cfg.name
	if name == "" {
		name = funcName(v)
	}

	t := v.Type()
	if t.NumIn() != 1 || t.IsVariadic() || t.In(0).Kind() != reflect.Struct {
		return nil, &ConfigError{Func: name, Reason: "function must take exactly one struct argument"}
	}

	docs := docstring.Parse(cfg.doc)
	params, err := analyzeParams(t.In(0), docs, cfg.aliases, name)
	if err != nil {
		return nil, err
	}

	c := &Command{
		fn:      v,
		argType: t.In(0),
		name:    name,
		summary: docs.Summary,
		report:  cfg.report,
		out:     cfg.out,
		errOut:  cfg.errOut,
		params:  params,
		specs:   make(map[string]scanSpec),
		byName:  make(map[string]*paramSpec),
	}
	for i := range c.params {
		p := &c.params[i]
		c.byName[p.name] = p
		if p.positional {
			c.positionals = append(c.positionals, p)
			continue
		}
		spec := scanSpec{canon: p.name, boolFlag: p.conv.isBool(), seq: p.conv.shape == shapeSeq}
		c.specs[p.name] = spec
		if p.short != "" {
			c.specs[p.short] = spec
		}
	}
	return c, nil
}

// MustNew is New that panics on a declaration mistake.
func MustNew(fn any, opts ...Option) *Command {
	c, err := New(fn, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// Summary returns the help banner derived from the docstring.
func (c *Command) Summary() string { return c.summary }

// Invoke parses raw argument tokens, calls the wrapped function exactly
// once with the bound values, and returns its result. Malformed input
// returns a *UsageError without calling the function; a help request
// returns ErrHelp. Errors returned by the function itself are propagated
// unchanged.
func (c *Command) Invoke(args []string) (any, error) {
	argv, err := c.bind(args)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := c.fn.Call([]reflect.Value{argv})
	elapsed := time.Since(start)

	ret, err := splitResults(c.fn.Type(), results)
	if err != nil {
		return nil, err
	}
	if c.report {
		c.printReport(args, ret, elapsed)
	}
	return ret, nil
}

// bind parses tokens into a fresh args struct value.
func (c *Command) bind(args []string) (reflect.Value, error) {
	flags, positionals, err := scanTokens(args, c.specs)
	if err != nil {
		return reflect.Value{}, err
	}
	if len(positionals) != len(c.positionals) {
		return reflect.Value{}, &UsageError{
			Reason: fmt.Sprintf("requires %d argument(s), got %d", len(c.positionals), len(positionals)),
		}
	}

	argv := reflect.New(c.argType).Elem()
	pos := 0
	for i := range c.params {
		p := &c.params[i]

		var raw string
		var supplied bool
		if p.positional {
			raw = positionals[pos]
			pos++
			supplied = true
		} else {
			raw, supplied = flags[p.name]
		}

		if !supplied {
			if p.hasDefault {
				raw = p.defaultRaw
			} else {
				// Optional parameter with no default: stays nil.
				continue
			}
		}

		val, err := p.conv.coerce(raw)
		if err != nil {
			return reflect.Value{}, &UsageError{
				Token:  raw,
				Reason: fmt.Sprintf("invalid value for %s", p.name),
				Err:    &ValueError{Param: p.name, Value: raw, Err: err},
			}
		}
		argv.Field(p.fieldIndex).Set(val)
	}
	return argv, nil
}

// splitResults separates a trailing error result from the values the
// wrapped function returned.
func splitResults(t reflect.Type, results []reflect.Value) (any, error) {
	n := t.NumOut()
	if n > 0 && t.Out(n-1) == reflect.TypeOf((*error)(nil)).Elem() {
		if errv := results[n-1]; !errv.IsNil() {
			return nil, errv.Interface().(error)
		}
		results = results[:n-1]
	}
	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0].Interface(), nil
	default:
		out := make([]any, len(results))
		for i, r := range results {
			out[i] = r.Interface()
		}
		return out, nil
	}
}

// Main invokes the command with os.Args and applies the process-boundary
// behavior: help exits 0, usage errors print to stderr and exit 2, and an
// error from the wrapped function prints and exits 1. This is the only
// place the library terminates the process.
func (c *Command) Main() {
	c.main(os.Args[1:])
}

func (c *Command) main(args []string) {
	_, err := c.Invoke(args)
	switch {
	case err == nil:
	case errors.Is(err, ErrHelp):
		fmt.Fprint(c.out, c.Help())
		os.Exit(0)
	default:
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintf(c.errOut, "Error: %v\n", err)
			fmt.Fprintf(c.errOut, "Try '%s --help' for more information\n", c.name)
			os.Exit(2)
		}
		fmt.Fprintf(c.errOut, "%s: %v\n", c.name, err)
		os.Exit(1)
	}
}

// funcName derives a command name from the function's runtime name,
// e.g. "github.com/acme/tool/pkg.MovingAverage" -> "MovingAverage".
func funcName(v reflect.Value) string {
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "command"
	}
	name := f.Name()
	name = strings.TrimSuffix(name, "-fm") // bound methods
	if idx := strings.LastIndex(name, "."); idx != -1 {
		name = name[idx+1:]
	}
	if name == "" {
		return "command"
	}
	return name
}
