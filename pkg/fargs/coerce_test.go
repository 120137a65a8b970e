// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fargs

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestCoerceScalars(t *testing.T) {
	tests := []struct {
		name    string
		typ     reflect.Type
		raw     string
		want    any
		wantErr bool
	}{
		{name: "int", typ: reflect.TypeOf(0), raw: "42", want: 42},
		{name: "negative int", typ: reflect.TypeOf(0), raw: "-42", want: -42},
		{name: "int8 overflow", typ: reflect.TypeOf(int8(0)), raw: "300", wantErr: true},
		{name: "bad int", typ: reflect.TypeOf(0), raw: "abc", wantErr: true},
		{name: "uint", typ: reflect.TypeOf(uint(0)), raw: "7", want: uint(7)},
		{name: "negative uint", typ: reflect.TypeOf(uint(0)), raw: "-7", wantErr: true},
		{name: "float", typ: reflect.TypeOf(0.0), raw: "3.14", want: 3.14},
		{name: "bad float", typ: reflect.TypeOf(0.0), raw: "3.1.4", wantErr: true},
		{name: "string", typ: reflect.TypeOf(""), raw: "world", want: "world"},
		{name: "empty string", typ: reflect.TypeOf(""), raw: "", want: ""},
		{name: "duration", typ: reflect.TypeOf(time.Duration(0)), raw: "1500ms", want: 1500 * time.Millisecond},
		{name: "bad duration", typ: reflect.TypeOf(time.Duration(0)), raw: "fast", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := converterFor(tt.typ)
			if err != nil {
				t.Fatalf("converterFor(%s) error = %v", tt.typ, err)
			}
			got, err := conv.coerce(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("coerce(%q) = %v, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerce(%q) error = %v", tt.raw, err)
			}
			if diff := cmp.Diff(tt.want, got.Interface()); diff != "" {
				t.Errorf("coerce(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{raw: "true", want: true},
		{raw: "TRUE", want: true},
		{raw: "True", want: true},
		{raw: "false", want: false},
		{raw: "FALSE", want: false},
		{raw: "1", wantErr: true},
		{raw: "0", wantErr: true},
		{raw: "yes", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "blahblah", wantErr: true},
	}

	conv, err := converterFor(reflect.TypeOf(false))
	if err != nil {
		t.Fatalf("converterFor(bool) error = %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := conv.coerce(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("coerce(%q) = %v, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerce(%q) error = %v", tt.raw, err)
			}
			if got.Bool() != tt.want {
				t.Errorf("coerce(%q) = %v, want %v", tt.raw, got.Bool(), tt.want)
			}
		})
	}
}

func TestCoerceSequence(t *testing.T) {
	tests := []struct {
		name    string
		typ     reflect.Type
		raw     string
		want    any
		wantErr bool
	}{
		{name: "floats", typ: reflect.TypeOf([]float64{}), raw: "2,2,0,0,1", want: []float64{2, 2, 0, 0, 1}},
		{name: "ints", typ: reflect.TypeOf([]int{}), raw: "3,4,5", want: []int{3, 4, 5}},
		{name: "strings", typ: reflect.TypeOf([]string{}), raw: "afds,cds", want: []string{"afds", "cds"}},
		{name: "empty token is empty sequence", typ: reflect.TypeOf([]float64{}), raw: "", want: []float64{}},
		{name: "order preserved no dedup", typ: reflect.TypeOf([]int{}), raw: "5,1,5,1", want: []int{5, 1, 5, 1}},
		{name: "single element", typ: reflect.TypeOf([]int{}), raw: "9", want: []int{9}},
		{name: "bad element fails whole token", typ: reflect.TypeOf([]int{}), raw: "1,x,3", wantErr: true},
		{name: "mixed float int token for ints", typ: reflect.TypeOf([]int{}), raw: "3.14,2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := converterFor(tt.typ)
			if err != nil {
				t.Fatalf("converterFor(%s) error = %v", tt.typ, err)
			}
			got, err := conv.coerce(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("coerce(%q) = %v, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerce(%q) error = %v", tt.raw, err)
			}
			if diff := cmp.Diff(tt.want, got.Interface()); diff != "" {
				t.Errorf("coerce(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestCoerceOptional(t *testing.T) {
	conv, err := converterFor(reflect.TypeOf((*int)(nil)))
	if err != nil {
		t.Fatalf("converterFor(*int) error = %v", err)
	}
	got, err := conv.coerce("54")
	if err != nil {
		t.Fatalf("coerce(54) error = %v", err)
	}
	p, ok := got.Interface().(*int)
	if !ok || p == nil || *p != 54 {
		t.Errorf("coerce(54) = %v, want *int(54)", got)
	}

	if _, err := conv.coerce("abc"); err == nil {
		t.Error("coerce(abc) for *int succeeded, want error")
	}
}

func TestConverterForUnsupported(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
	}{
		{name: "map", typ: reflect.TypeOf(map[string]int{})},
		{name: "struct", typ: reflect.TypeOf(struct{ X int }{})},
		{name: "slice of slice", typ: reflect.TypeOf([][]int{})},
		{name: "slice of bool", typ: reflect.TypeOf([]bool{})},
		{name: "nested pointer", typ: reflect.TypeOf((**int)(nil))},
		{name: "chan", typ: reflect.TypeOf(make(chan int))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if conv, err := converterFor(tt.typ); err == nil {
				t.Errorf("converterFor(%s) = %+v, want error", tt.typ, conv)
			}
		})
	}
}
