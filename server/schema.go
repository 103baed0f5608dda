//
// Tencent is pleased to support the open source community by making calckit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// calckit is licensed under the Apache License Version 2.0.
//
//

package server

// Calculator operation names accepted by the calculate endpoint.
const (
	opAdd      = "add"
	opSubtract = "subtract"
	opMultiply = "multiply"
	opDivide   = "divide"
)

// Math function names accepted by the math endpoint.
const (
	fnFactorial = "factorial"
	fnPrime     = "prime"
	fnGCD       = "gcd"
	fnFibonacci = "fibonacci"
	fnPower     = "power"
)

// Error codes carried in error responses. Division-by-zero and
// invalid-argument failures reuse the kind tags of the underlying errors.
const (
	codeInvalidRequest   = "invalid_request"
	codeUnknownOperation = "unknown_operation"
	codeUnknownFunction  = "unknown_function"
	codeSessionNotFound  = "session_not_found"
	codeInternal         = "internal_error"
)

// calculateRequest is the body of the calculate endpoint.
type calculateRequest struct {
	// Op is one of add, subtract, multiply, divide.
	Op string `json:"op"`
	// A is the first operand.
	A float64 `json:"a"`
	// B is the second operand.
	B float64 `json:"b"`
}

// calculateResponse is the reply of a successful calculation.
type calculateResponse struct {
	// Result is the numeric result of the operation.
	Result float64 `json:"result"`
	// Record is the history entry appended for this operation.
	Record string `json:"record"`
}

// historyResponse carries a session's operation history.
type historyResponse struct {
	History []string `json:"history"`
}

// mathResponse is the reply of a math function call. Result is a number
// for most functions and a boolean for primality checks.
type mathResponse struct {
	Result any `json:"result"`
}

// errorBody is the envelope of all error responses.
type errorBody struct {
	Error errorDetail `json:"error"`
}

// errorDetail carries the machine-readable code and human-readable message
// of a failure.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
