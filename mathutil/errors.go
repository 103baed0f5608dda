//
// Tencent is pleased to support the open source community by making calckit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// calckit is licensed under the Apache License Version 2.0.
//
//

package mathutil

// Kind discriminates mathutil failures.
type Kind string

// KindInvalidArgument tags a call with an argument outside the function's
// domain.
const KindInvalidArgument Kind = "invalid_argument"

// Error represents a mathutil failure with a kind tag and message.
type Error struct {
	Kind    Kind   // Kind is the failure category.
	Message string // Message is the human-readable error message.
}

// Error returns the error message.
func (e *Error) Error() string {
	return e.Message
}

// ErrNegativeFactorial is returned by Factorial for negative input.
var ErrNegativeFactorial = &Error{
	Kind:    KindInvalidArgument,
	Message: "factorial is not defined for negative numbers",
}

// ErrFactorialOverflow is returned by Factorial when the result does not
// fit in int64.
var ErrFactorialOverflow = &Error{
	Kind:    KindInvalidArgument,
	Message: "factorial overflows int64 for n > 20",
}
