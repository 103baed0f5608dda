//
// Tencent is pleased to support the open source community by making calckit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// calckit is licensed under the Apache License Version 2.0.
//
//

// Package session defines calculator sessions and the service interface
// that manages their lifecycle.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"trpc.group/trpc-go/calckit/calculator"
)

// ErrSessionNotFound is returned when the requested session does not exist
// or has expired.
var ErrSessionNotFound = errors.New("session: session not found")

// Session binds a calculator instance to a server-side identifier.
//
// The embedded Calculator is single-threaded; callers lock Mu around any
// access to Calc so that concurrent requests against the same session are
// serialized.
type Session struct {
	// ID is the unique session identifier.
	ID string `json:"id"`
	// CreatedAt is the session creation time.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time of the last operation on the session.
	UpdatedAt time.Time `json:"updatedAt"`
	// Calc is the calculator owned by this session.
	Calc *calculator.Calculator `json:"-"`
	// Mu serializes access to Calc and UpdatedAt.
	Mu sync.Mutex `json:"-"`
}

// Service manages calculator sessions.
type Service interface {
	// CreateSession creates a fresh session with an empty calculator.
	CreateSession(ctx context.Context) (*Session, error)
	// GetSession returns the session with the given ID, or
	// ErrSessionNotFound when it does not exist.
	GetSession(ctx context.Context, id string) (*Session, error)
	// DeleteSession removes the session with the given ID. Deleting an
	// unknown session is not an error.
	DeleteSession(ctx context.Context, id string) error
	// ListSessions returns all live sessions.
	ListSessions(ctx context.Context) ([]*Session, error)
	// Close releases resources held by the service.
	Close() error
}
