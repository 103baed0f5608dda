//
// Tencent is pleased to support the open source community by making calckit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// calckit is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory session service implementation.
package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"trpc.group/trpc-go/calckit/calculator"
	"trpc.group/trpc-go/calckit/session"
)

// sessionWithTTL wraps a session with its expiration time.
type sessionWithTTL struct {
	session   *session.Session
	expiredAt time.Time
}

var _ session.Service = (*SessionService)(nil)

// isExpired checks if the given time has passed.
func isExpired(expiredAt time.Time) bool {
	return !expiredAt.IsZero() && time.Now().After(expiredAt)
}

// calculateExpiredAt calculates expiration time based on TTL.
func calculateExpiredAt(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{} // Zero time means no expiration
	}
	return time.Now().Add(ttl)
}

// SessionService provides an in-memory implementation of session.Service.
type SessionService struct {
	mu            sync.RWMutex
	sessions      map[string]*sessionWithTTL
	opts          serviceOpts
	cleanupTicker *time.Ticker
	cleanupDone   chan struct{}
	cleanupOnce   sync.Once
}

// NewSessionService creates a new in-memory session service.
func NewSessionService(options ...ServiceOpt) *SessionService {
	opts := defaultOptions
	for _, option := range options {
		option(&opts)
	}

	// Set default cleanup interval if a TTL is configured.
	if opts.cleanupInterval <= 0 && opts.sessionTTL > 0 {
		opts.cleanupInterval = defaultCleanupInterval
	}

	s := &SessionService{
		sessions:    make(map[string]*sessionWithTTL),
		opts:        opts,
		cleanupDone: make(chan struct{}),
	}

	if opts.cleanupInterval > 0 {
		s.startCleanupRoutine()
	}
	return s
}

// CreateSession creates a session with a fresh calculator and a UUID
// identifier.
func (s *SessionService) CreateSession(_ context.Context) (*session.Session, error) {
	now := time.Now()
	sess := &session.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Calc:      calculator.New(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = &sessionWithTTL{
		session:   sess,
		expiredAt: calculateExpiredAt(s.opts.sessionTTL),
	}
	return sess, nil
}

// GetSession returns the session with the given ID and refreshes its TTL.
func (s *SessionService) GetSession(_ context.Context, id string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[id]
	if !ok || isExpired(st.expiredAt) {
		delete(s.sessions, id)
		return nil, session.ErrSessionNotFound
	}
	st.expiredAt = calculateExpiredAt(s.opts.sessionTTL)
	return st.session, nil
}

// DeleteSession removes the session with the given ID.
func (s *SessionService) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// ListSessions returns all live sessions.
func (s *SessionService) ListSessions(_ context.Context) ([]*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*session.Session, 0, len(s.sessions))
	for _, st := range s.sessions {
		if isExpired(st.expiredAt) {
			continue
		}
		out = append(out, st.session)
	}
	return out, nil
}

// Close stops the background cleanup routine.
func (s *SessionService) Close() error {
	s.cleanupOnce.Do(func() {
		if s.cleanupTicker != nil {
			s.cleanupTicker.Stop()
		}
		close(s.cleanupDone)
	})
	return nil
}

func (s *SessionService) startCleanupRoutine() {
	s.cleanupTicker = time.NewTicker(s.opts.cleanupInterval)
	go func() {
		for {
			select {
			case <-s.cleanupTicker.C:
				s.cleanupExpired()
			case <-s.cleanupDone:
				return
			}
		}
	}()
}

func (s *SessionService) cleanupExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, st := range s.sessions {
		if isExpired(st.expiredAt) {
			delete(s.sessions, id)
		}
	}
}
