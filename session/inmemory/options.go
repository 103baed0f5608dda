//
// Tencent is pleased to support the open source community by making calckit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// calckit is licensed under the Apache License Version 2.0.
//
//

package inmemory

import "time"

// defaultCleanupInterval is used when a TTL is configured without an
// explicit cleanup interval.
const defaultCleanupInterval = 30 * time.Second

// serviceOpts holds the configuration of the in-memory session service.
type serviceOpts struct {
	sessionTTL      time.Duration
	cleanupInterval time.Duration
}

var defaultOptions = serviceOpts{}

// ServiceOpt configures the in-memory session service.
type ServiceOpt func(*serviceOpts)

// WithSessionTTL sets the idle lifetime of a session. Zero means sessions
// never expire.
func WithSessionTTL(ttl time.Duration) ServiceOpt {
	return func(o *serviceOpts) {
		o.sessionTTL = ttl
	}
}

// WithCleanupInterval sets how often expired sessions are swept.
func WithCleanupInterval(interval time.Duration) ServiceOpt {
	return func(o *serviceOpts) {
		o.cleanupInterval = interval
	}
}
