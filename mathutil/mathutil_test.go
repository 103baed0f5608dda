//
// Tencent is pleased to support the open source community by making calckit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// calckit is licensed under the Apache License Version 2.0.
//
//

package mathutil

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want int64
	}{
		{name: "zero", n: 0, want: 1},
		{name: "one", n: 1, want: 1},
		{name: "five", n: 5, want: 120},
		{name: "ten", n: 10, want: 3628800},
		{name: "twenty is the largest exact int64 factorial", n: 20, want: 2432902008176640000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Factorial(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("negative input", func(t *testing.T) {
		_, err := Factorial(-1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNegativeFactorial))

		var mathErr *Error
		require.True(t, errors.As(err, &mathErr))
		assert.Equal(t, KindInvalidArgument, mathErr.Kind)
	})

	t.Run("input beyond int64 range", func(t *testing.T) {
		_, err := Factorial(21)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFactorialOverflow))

		var mathErr *Error
		require.True(t, errors.As(err, &mathErr))
		assert.Equal(t, KindInvalidArgument, mathErr.Kind)
	})
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want bool
	}{
		{name: "negative", n: -7, want: false},
		{name: "zero", n: 0, want: false},
		{name: "one", n: 1, want: false},
		{name: "two", n: 2, want: true},
		{name: "three", n: 3, want: true},
		{name: "four", n: 4, want: false},
		{name: "nine", n: 9, want: false},
		{name: "ninety seven", n: 97, want: true},
		{name: "one hundred", n: 100, want: false},
		{name: "large prime", n: 1_000_000_007, want: true},
		{name: "large composite", n: 1_000_000_008, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrime(tt.n))
		})
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{name: "common factor", a: 12, b: 8, want: 4},
		{name: "equal operands", a: 7, b: 7, want: 7},
		{name: "zero second operand", a: 5, b: 0, want: 5},
		{name: "zero first operand", a: 0, b: 8, want: 8},
		{name: "coprime", a: 9, b: 28, want: 1},
		{name: "large operands", a: 1071, b: 462, want: 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GCD(tt.a, tt.b))
		})
	}
}

func TestFibonacci(t *testing.T) {
	t.Run("sequence prefix", func(t *testing.T) {
		want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}
		for n, expected := range want {
			assert.Equal(t, expected, Fibonacci(int64(n)), "fibonacci(%d)", n)
		}
	})

	t.Run("larger terms", func(t *testing.T) {
		assert.Equal(t, int64(6765), Fibonacci(20))
		assert.Equal(t, int64(7540113804746346429), Fibonacci(92))
	})
}

func TestPower(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		exponent int64
		want     float64
	}{
		{name: "positive exponent", base: 2, exponent: 3, want: 8},
		{name: "zero exponent", base: 5, exponent: 0, want: 1},
		{name: "zero base zero exponent", base: 0, exponent: 0, want: 1},
		{name: "exponent one", base: 9, exponent: 1, want: 9},
		{name: "negative exponent", base: 2, exponent: -2, want: 0.25},
		{name: "negative base odd exponent", base: -3, exponent: 3, want: -27},
		{name: "fractional base", base: 0.5, exponent: 2, want: 0.25},
		{name: "large negative exponent underflows to zero", base: 2, exponent: -1000000, want: 0},
		{name: "minimum int64 exponent", base: 2, exponent: math.MinInt64, want: 0},
		{name: "base one minimum int64 exponent", base: 1, exponent: math.MinInt64, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Power(tt.base, tt.exponent))
		})
	}
}
