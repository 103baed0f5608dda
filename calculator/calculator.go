//
// Tencent is pleased to support the open source community by making calckit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// calckit is licensed under the Apache License Version 2.0.
//
//

// Package calculator provides basic arithmetic operations with an owned,
// chronological history of every successful operation.
package calculator

import (
	"fmt"
	"strconv"
)

// Calculator performs the four basic arithmetic operations and records a
// human-readable history entry for each successful call.
//
// A Calculator is not safe for concurrent use; callers that share an
// instance across goroutines must serialize access externally.
type Calculator struct {
	history []string
}

// New creates a Calculator with an empty history.
func New() *Calculator {
	return &Calculator{}
}

// Add returns the sum of a and b and records the operation.
func (c *Calculator) Add(a, b float64) float64 {
	result := a + b
	c.record(a, "+", b, result)
	return result
}

// Subtract returns a minus b and records the operation.
func (c *Calculator) Subtract(a, b float64) float64 {
	result := a - b
	c.record(a, "-", b, result)
	return result
}

// Multiply returns the product of a and b and records the operation.
func (c *Calculator) Multiply(a, b float64) float64 {
	result := a * b
	c.record(a, "*", b, result)
	return result
}

// Divide returns a divided by b under true division. When b is zero it
// returns ErrDivisionByZero and records nothing; it never yields Inf or NaN.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	result := a / b
	c.record(a, "/", b, result)
	return result, nil
}

// History returns a copy of the operation history in chronological order.
// Its length equals the number of successful operations since construction
// or the last ClearHistory call.
func (c *Calculator) History() []string {
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// ClearHistory resets the history and returns the now-empty history.
func (c *Calculator) ClearHistory() []string {
	c.history = c.history[:0]
	return []string{}
}

func (c *Calculator) record(a float64, op string, b, result float64) {
	c.history = append(c.history, fmt.Sprintf("%s %s %s = %s",
		formatOperand(a), op, formatOperand(b), formatOperand(result)))
}

// formatOperand renders a number in its shortest form so that integral
// values read as integers ("2", not "2.000000").
func formatOperand(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
