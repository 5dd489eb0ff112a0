//go:build cgo

// Package main builds the C-callable strmath library.
//
//	go build -buildmode=c-shared -o libstrmath.so ./cmd/libstrmath
//
// The generated header declares:
//
//	int exqudens_math_add(int a, int b);
package main

import "C"

import "strmath/pkg/mathx"

//export exqudens_math_add
func exqudens_math_add(a, b C.int) C.int {
	return C.int(mathx.Add(int32(a), int32(b)))
}

func main() {}
