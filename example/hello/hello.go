// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hello greets someone a number of times.
//
//	$ hello 3 world
//	Hello, world!
//	Hello, world!
//	Hello, world!
package main

import (
	"fmt"
	"strings"

	"github.com/fargs/fargs/pkg/fargs"
)

type helloArgs struct {
	Count    int    `arg:"count"`
	Name     string `arg:"name"`
	Shouting bool   `arg:"shouting" short:"s" default:"false"`
}

func hello(a helloArgs) {
	greeting := fmt.Sprintf("Hello, %s!", a.Name)
	if a.Shouting {
		greeting = strings.ToUpper(greeting)
	}
	for i := 0; i < a.Count; i++ {
		fmt.Println(greeting)
	}
}

func main() {
	fargs.MustNew(hello,
		fargs.WithName("hello"),
		fargs.WithDoc(`Print a greeting a number of times.

:param count: How many times to greet
:param name: Who to greet
:param shouting: Print the greeting in upper case`),
	).Main()
}
