// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	reportRule    = color.New(color.Faint)
	reportElapsed = color.New(color.FgGreen)
)

// printReport writes the call report after a successful invocation: the
// reconstructed call line, the elapsed wall-clock time, and the textual
// return value. It never runs when the call itself failed.
func (c *Command) printReport(args []string, ret any, elapsed time.Duration) {
	colored := isTerminal(c.out)

	rule := "........"
	took := fmt.Sprintf("took %.3fs", elapsed.Seconds())
	if colored {
		rule = reportRule.Sprint(rule)
		took = reportElapsed.Sprint(took)
	}

	line := fmt.Sprintf("Call to '%s %s' %s", c.name, strings.Join(args, " "), took)
	if len(args) == 0 {
		line = fmt.Sprintf("Call to '%s' %s", c.name, took)
	}

	fmt.Fprintln(c.out, rule)
	if ret == nil {
		fmt.Fprintln(c.out, line)
		return
	}

	retStr := fmt.Sprintf("%v", ret)
	if strings.Contains(retStr, "\n") || len(retStr) > 80 {
		fmt.Fprintf(c.out, "%s and returned\n-----\n%s\n", line, strings.Trim(retStr, "\n"))
		return
	}
	fmt.Fprintf(c.out, "%s and returned %s\n", line, retStr)
}

// isTerminal reports whether w is an interactive terminal. Report
// coloring is disabled for pipes, files, and test buffers.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
