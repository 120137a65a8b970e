// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import (
	"fmt"
	"strings"
)

// Help renders the command's usage text: the summary banner, one line per
// positional argument, and one line per option with its default.
func (c *Command) Help() string {
	var b strings.Builder

	b.WriteString(c.name)
	if c.summary != "" {
		b.WriteString(" - ")
		b.WriteString(c.summary)
	}
	b.WriteString("\n\n")

	b.WriteString("USAGE:\n")
	usage := fmt.Sprintf("    %s [OPTIONS]", c.name)
	for _, p := range c.positionals {
		usage += fmt.Sprintf(" <%s>", strings.ToUpper(p.name))
	}
	b.WriteString(usage)
	b.WriteString("\n\n")

	if len(c.positionals) > 0 {
		b.WriteString("ARGUMENTS:\n")
		for _, p := range c.positionals {
			name := strings.ToUpper(p.name)
			if p.help != "" {
				b.WriteString(fmt.Sprintf("    %-20s %s\n", name, p.help))
			} else {
				b.WriteString(fmt.Sprintf("    %s\n", name))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("OPTIONS:\n")
	for i := range c.params {
		p := &c.params[i]
		if p.positional {
			continue
		}
		var flagStr string
		if p.short != "" {
			flagStr = fmt.Sprintf("    -%s, --%s", p.short, p.name)
		} else {
			flagStr = fmt.Sprintf("    --%s", p.name)
		}
		if p.help != "" {
			b.WriteString(fmt.Sprintf("%-28s %s", flagStr, p.help))
		} else {
			b.WriteString(flagStr)
		}
		if p.hasDefault {
			b.WriteString(fmt.Sprintf(" (default: %s)", p.defaultRaw))
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%-28s %s\n", "    -h, --help", "Show this help message"))

	return b.String()
}
