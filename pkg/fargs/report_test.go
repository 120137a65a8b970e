// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var tookRE = regexp.MustCompile(`took (\d+\.\d+)s`)

func TestReportOutput(t *testing.T) {
	type sumArgs struct {
		Items []int `arg:"items"`
	}
	sum := func(a sumArgs) int {
		total := 0
		for _, v := range a.Items {
			total += v
		}
		return total
	}

	var out bytes.Buffer
	cmd := MustNew(sum, WithName("sum"), WithReport(true), WithOutput(&out))

	got, err := cmd.Invoke([]string{"1,2,3"})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if got != 6 {
		t.Fatalf("Invoke() = %v, want 6", got)
	}

	report := out.String()
	if !strings.Contains(report, "Call to 'sum 1,2,3'") {
		t.Errorf("report missing the call line:\n%s", report)
	}
	if !strings.Contains(report, "and returned 6") {
		t.Errorf("report missing the return value:\n%s", report)
	}

	m := tookRE.FindStringSubmatch(report)
	if m == nil {
		t.Fatalf("report missing elapsed time:\n%s", report)
	}
	secs, err := strconv.ParseFloat(m[1], 64)
	if err != nil || secs < 0 {
		t.Errorf("elapsed %q does not parse as a non-negative duration", m[1])
	}
}

func TestReportNilReturn(t *testing.T) {
	type noArgs struct{}
	var out bytes.Buffer
	cmd := MustNew(func(noArgs) {}, WithName("noop"), WithReport(true), WithOutput(&out))

	if _, err := cmd.Invoke(nil); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}

	report := out.String()
	if !strings.Contains(report, "Call to 'noop'") {
		t.Errorf("report missing the call line:\n%s", report)
	}
	if strings.Contains(report, "and returned") {
		t.Errorf("report shows a return value for a void function:\n%s", report)
	}
}

func TestReportMultilineReturn(t *testing.T) {
	type noArgs struct{}
	var out bytes.Buffer
	cmd := MustNew(func(noArgs) string { return "line one\nline two" },
		WithName("lines"), WithReport(true), WithOutput(&out))

	if _, err := cmd.Invoke(nil); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}

	report := out.String()
	if !strings.Contains(report, "and returned\n-----\nline one\nline two\n") {
		t.Errorf("multiline return not set off in its own block:\n%s", report)
	}
}

func TestReportDisabledByDefault(t *testing.T) {
	type noArgs struct{}
	var out bytes.Buffer
	cmd := MustNew(func(noArgs) int { return 7 }, WithName("quiet"), WithOutput(&out))

	if _, err := cmd.Invoke(nil); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output with reporting off:\n%s", out.String())
	}
}

func TestReportSkippedOnError(t *testing.T) {
	type noArgs struct{}
	var out bytes.Buffer
	cmd := MustNew(func(noArgs) error { return strconv.ErrRange },
		WithName("fail"), WithReport(true), WithOutput(&out))

	if _, err := cmd.Invoke(nil); err == nil {
		t.Fatal("Invoke() error = nil, want the function's error")
	}
	if out.Len() != 0 {
		t.Errorf("report printed despite the call failing:\n%s", out.String())
	}
}
