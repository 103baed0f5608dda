//
// Tencent is pleased to support the open source community by making calckit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// calckit is licensed under the Apache License Version 2.0.
//
//

package calculator

// Kind discriminates calculator failures so that callers can match on the
// failure category instead of the message text.
type Kind string

// KindDivisionByZero tags an attempt to divide by zero.
const KindDivisionByZero Kind = "division_by_zero"

// Error represents a calculator failure with a kind tag and message.
type Error struct {
	Kind    Kind   // Kind is the failure category.
	Message string // Message is the human-readable error message.
}

// Error returns the error message.
func (e *Error) Error() string {
	return e.Message
}

// ErrDivisionByZero is returned by Divide when the divisor is zero.
// Callers can match it with errors.Is or unwrap the kind with errors.As.
var ErrDivisionByZero = &Error{
	Kind:    KindDivisionByZero,
	Message: "Cannot divide by zero",
}
