//
// Tencent is pleased to support the open source community by making calckit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// calckit is licensed under the Apache License Version 2.0.
//
//

package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/calckit/session"
)

func TestCreateAndGetSession(t *testing.T) {
	svc := NewSessionService()
	defer svc.Close()

	ctx := context.Background()
	sess, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.ID)
	require.NotNil(t, sess.Calc)
	assert.Empty(t, sess.Calc.History())

	got, err := svc.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestGetSessionNotFound(t *testing.T) {
	svc := NewSessionService()
	defer svc.Close()

	_, err := svc.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestDeleteSession(t *testing.T) {
	svc := NewSessionService()
	defer svc.Close()

	ctx := context.Background()
	sess, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(ctx, sess.ID))
	_, err = svc.GetSession(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	// Deleting an unknown session is not an error.
	assert.NoError(t, svc.DeleteSession(ctx, "missing"))
}

func TestListSessions(t *testing.T) {
	svc := NewSessionService()
	defer svc.Close()

	ctx := context.Background()
	assert.Empty(t, mustList(t, svc, ctx))

	s1, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	s2, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, s := range mustList(t, svc, ctx) {
		ids[s.ID] = true
	}
	assert.True(t, ids[s1.ID])
	assert.True(t, ids[s2.ID])
	assert.Len(t, ids, 2)
}

func TestSessionTTLExpiry(t *testing.T) {
	svc := NewSessionService(
		WithSessionTTL(20*time.Millisecond),
		WithCleanupInterval(5*time.Millisecond),
	)
	defer svc.Close()

	ctx := context.Background()
	sess, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	// Still alive right after creation.
	_, err = svc.GetSession(ctx, sess.ID)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)
	_, err = svc.GetSession(ctx, sess.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	assert.Empty(t, mustList(t, svc, ctx))
}

func TestCloseIsIdempotent(t *testing.T) {
	svc := NewSessionService(WithSessionTTL(time.Minute))
	assert.NoError(t, svc.Close())
	assert.NoError(t, svc.Close())
}

func mustList(t *testing.T, svc *SessionService, ctx context.Context) []*session.Session {
	t.Helper()
	out, err := svc.ListSessions(ctx)
	require.NoError(t, err)
	return out
}
