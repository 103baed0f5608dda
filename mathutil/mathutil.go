//
// Tencent is pleased to support the open source community by making calckit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// calckit is licensed under the Apache License Version 2.0.
//
//

// Package mathutil provides stateless integer math helpers: factorial,
// primality testing, greatest common divisor, Fibonacci and integer power.
//
// Results use int64 (float64 for Power); Factorial rejects inputs above
// 20 and Fibonacci is exact for n <= 92, beyond which int64 overflows.
package mathutil

// maxFactorialInput is the largest n whose factorial fits in int64.
const maxFactorialInput = 20

// Factorial returns n! as the product of 1..n. Factorial(0) is 1.
// It returns ErrNegativeFactorial when n is negative and
// ErrFactorialOverflow when n! does not fit in int64.
func Factorial(n int64) (int64, error) {
	if n < 0 {
		return 0, ErrNegativeFactorial
	}
	if n > maxFactorialInput {
		return 0, ErrFactorialOverflow
	}
	result := int64(1)
	for i := int64(2); i <= n; i++ {
		result *= i
	}
	return result, nil
}

// IsPrime reports whether n is prime. Numbers below 2 are not prime.
// Trial division runs only up to the square root of n.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// GCD returns the greatest common divisor of a and b using the Euclidean
// algorithm. GCD(x, 0) is x.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Fibonacci returns the nth term of the sequence 0, 1, 1, 2, 3, 5, 8, ...
// Negative n yields 0.
func Fibonacci(n int64) int64 {
	if n <= 0 {
		return 0
	}
	prev, curr := int64(0), int64(1)
	for i := int64(1); i < n; i++ {
		prev, curr = curr, prev+curr
	}
	return curr
}

// Power returns base raised to exponent. Power(base, 0) is 1; negative
// exponents invert the positive power, so Power(2, -2) is 0.25.
func Power(base float64, exponent int64) float64 {
	if exponent == 0 {
		return 1
	}
	invert := exponent < 0
	// Negate through uint64 so the smallest int64 exponent does not
	// overflow back to itself.
	var n uint64
	if invert {
		n = uint64(-(exponent + 1)) + 1
	} else {
		n = uint64(exponent)
	}
	result := 1.0
	for n > 0 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
		n >>= 1
	}
	if invert {
		return 1 / result
	}
	return result
}
