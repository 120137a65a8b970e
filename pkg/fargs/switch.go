// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Switch selects one of several named commands with the first token and
// hands the remaining tokens to it. It is a flat dispatcher: commands do
// not nest.
//
//	sw := fargs.Switch{
//	    Name: "calc",
//	    Commands: map[string]*fargs.Command{
//	        "add": fargs.MustNew(add),
//	        "mul": fargs.MustNew(mul),
//	    },
//	}
//	sw.Main()
type Switch struct {
	Name     string
	Commands map[string]*Command

	// Out and ErrOut default to os.Stdout and os.Stderr.
	Out    io.Writer
	ErrOut io.Writer
}

// Invoke routes args[0] to the matching command and invokes it with the
// remaining tokens. A missing or unknown name is a *UsageError; "--help"
// and "-h" return ErrHelp.
func (s *Switch) Invoke(args []string) (any, error) {
	if len(args) == 0 {
		return nil, &UsageError{Reason: fmt.Sprintf("no function specified; options: %s", strings.Join(s.names(), ", "))}
	}
	if args[0] == "--"+helpName || args[0] == "-"+helpShort || args[0] == helpName {
		return nil, ErrHelp
	}
	cmd, ok := s.Commands[args[0]]
	if !ok {
		return nil, &UsageError{
			Token:  args[0],
			Reason: fmt.Sprintf("unknown function; options: %s", strings.Join(s.names(), ", ")),
		}
	}
	return cmd.Invoke(args[1:])
}

// Help lists the available commands with their summaries.
func (s *Switch) Help() string {
	var b strings.Builder

	name := s.Name
	if name == "" {
		name = "COMMAND"
	}
	b.WriteString("USAGE:\n")
	b.WriteString(fmt.Sprintf("    %s FUNCTION [ARGS...]\n\n", name))

	b.WriteString("FUNCTIONS:\n")
	for _, cmdName := range s.names() {
		cmd := s.Commands[cmdName]
		if cmd.Summary() != "" {
			b.WriteString(fmt.Sprintf("    %-12s %s\n", cmdName, cmd.Summary()))
		} else {
			b.WriteString(fmt.Sprintf("    %s\n", cmdName))
		}
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Run '%s FUNCTION --help' for more information on a function.\n", name))
	return b.String()
}

// Main routes os.Args and applies the same process-boundary behavior as
// Command.Main, with switch-level help for a missing or bare help token.
func (s *Switch) Main() {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := s.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	args := os.Args[1:]
	if len(args) == 0 || args[0] == "--"+helpName || args[0] == "-"+helpShort || args[0] == helpName {
		fmt.Fprint(out, s.Help())
		os.Exit(0)
	}
	cmd, ok := s.Commands[args[0]]
	if !ok {
		fmt.Fprintf(errOut, "Error: unknown function: %s\n", args[0])
		fmt.Fprint(errOut, s.Help())
		os.Exit(2)
	}
	cmd.main(args[1:])
}

func (s *Switch) names() []string {
	names := make([]string, 0, len(s.Commands))
	for name := range s.Commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
