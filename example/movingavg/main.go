// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command movingavg computes an exponential moving average over a
// comma-separated list of samples.
//
//	$ movingavg 2,2,0,0,1 --decay=0.5 -s
//	........
//	Call to 'movingavg 2,2,0,0,1 --decay=0.5 -s' took 0.000s and returned 0.8125
package main

import (
	"github.com/fargs/fargs/pkg/fargs"
)

type movingAvgArgs struct {
	Items []float64 `arg:"items"`
	Decay float64   `arg:"decay" short:"d" default:"0.25"`
	Seed  bool      `arg:"start-average-at-first" short:"s" default:"false"`
}

func movingAverage(a movingAvgArgs) float64 {
	avg := 0.0
	if a.Seed && len(a.Items) > 0 {
		avg = a.Items[0]
	}
	for _, item := range a.Items {
		avg = a.Decay*item + (1-a.Decay)*avg
	}
	return avg
}

func main() {
	fargs.MustNew(movingAverage,
		fargs.WithName("movingavg"),
		fargs.WithReport(true),
		fargs.WithDoc(`Compute an exponential moving average of the input items.

:param items: The input samples, oldest first
:param decay: Per-step weight of the newest sample, between 0 and 1
:param start-average-at-first: Seed the average with the first sample instead of zero`),
	).Main()
}
