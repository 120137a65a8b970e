// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package docstring parses the documentation strings attached to wrapped
// functions.
//
// The format is deliberately small. A docstring consists of a leading
// summary block followed by per-parameter lines:
//
//	Compute an exponential moving average of the input items.
//
//	:param items: The input samples
//	:param decay: Per-step decay factor
//
// The summary is everything before the first blank line or the first
// parameter line, whitespace-trimmed. A parameter line has the form
// ":param NAME: HELP", with optional leading whitespace and an optional run
// of words between NAME and the colon. Anything else is ignored.
package docstring

import (
	"regexp"
	"strings"
)

// Doc is the parsed form of a documentation string.
type Doc struct {
	// Summary is the leading block, used as the command's help banner.
	Summary string
	// Params maps a parameter name to its help text. Parameters without a
	// matching line are simply absent.
	Params map[string]string
}

var paramLine = regexp.MustCompile(`^\s*:param\s+([A-Za-z0-9_-]+)[^:]*:\s*(.*)$`)

// Parse parses a documentation string. It never fails: unrecognized lines
// are skipped, and a missing summary or parameter section yields empty
// fields.
func Parse(doc string) Doc {
	d := Doc{Params: make(map[string]string)}

	var summary []string
	inSummary := true
	for _, line := range strings.Split(doc, "\n") {
		if m := paramLine.FindStringSubmatch(line); m != nil {
			inSummary = false
			// First line wins on duplicate names.
			if _, ok := d.Params[m[1]]; !ok {
				d.Params[m[1]] = strings.TrimSpace(m[2])
			}
			continue
		}
		if !inSummary {
			continue
		}
		if strings.TrimSpace(line) == "" {
			if len(summary) > 0 {
				inSummary = false
			}
			continue
		}
		summary = append(summary, strings.TrimSpace(line))
	}

	d.Summary = strings.Join(summary, " ")
	return d
}

// Param returns the help text for a parameter, or "" if it has none.
func (d Doc) Param(name string) string {
	return d.Params[name]
}
