//
// Tencent is pleased to support the open source community by making calckit available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// calckit is licensed under the Apache License Version 2.0.
//
//

// Package server exposes calculator sessions and math utilities over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"trpc.group/trpc-go/calckit/calculator"
	"trpc.group/trpc-go/calckit/log"
	"trpc.group/trpc-go/calckit/mathutil"
	"trpc.group/trpc-go/calckit/session"
	sessioninmemory "trpc.group/trpc-go/calckit/session/inmemory"
)

const defaultAddr = ":8080"

// Server exposes HTTP endpoints for calculator sessions and the mathutil
// functions. Each session owns a private calculator; concurrent requests
// against the same session are serialized on the session mutex.
type Server struct {
	addr       string
	router     *mux.Router
	sessionSvc session.Service
	sessionTTL time.Duration
	httpSrv    *http.Server
}

// Option configures the Server instance.
type Option func(*Server)

// WithAddr sets the listen address. Defaults to ":8080".
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithSessionService allows providing a custom session storage backend.
// If omitted, an in-memory implementation is used.
func WithSessionService(svc session.Service) Option {
	return func(s *Server) {
		if svc != nil {
			s.sessionSvc = svc
		}
	}
}

// WithSessionTTL sets the idle lifetime of sessions in the default
// in-memory backend. Zero means sessions never expire. It has no effect
// when WithSessionService supplies a custom backend.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) { s.sessionTTL = ttl }
}

// New creates a new calculator HTTP server. The behaviour can be tweaked
// via functional options.
func New(opts ...Option) *Server {
	s := &Server{
		addr:   defaultAddr,
		router: mux.NewRouter(),
	}

	// Apply user-provided options.
	for _, opt := range opts {
		opt(s)
	}
	if s.sessionSvc == nil {
		s.sessionSvc = sessioninmemory.NewSessionService(
			sessioninmemory.WithSessionTTL(s.sessionTTL),
		)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Length", "Content-Type"},
	})
	s.router.Use(c.Handler)
	s.router.Use(logRequests)
	s.registerRoutes()
	return s
}

// Handler returns the underlying HTTP handler, mainly for testing.
func (s *Server) Handler() http.Handler { return s.router }

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.httpSrv = &http.Server{Addr: s.addr, Handler: s.router}
	log.Infof("calculator server listening on %s", s.addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

// Close shuts down the HTTP server and the session service.
func (s *Server) Close() error {
	if s.httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return s.sessionSvc.Close()
}

func (s *Server) registerRoutes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/sessions", s.handleCreateSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions", s.handleListSessions).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/calculate", s.handleCalculate).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/history", s.handleHistory).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/history", s.handleClearHistory).Methods(http.MethodDelete)
	api.HandleFunc("/math/{fn}", s.handleMath).Methods(http.MethodGet)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionSvc.CreateSession(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, codeInternal, err.Error())
		return
	}
	log.Debugf("created session %s", sess.ID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(sess)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.sessionSvc.ListSessions(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, codeInternal, err.Error())
		return
	}
	s.writeJSON(w, sessions)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.sessionSvc.DeleteSession(r.Context(), id); err != nil {
		s.writeError(w, http.StatusInternalServerError, codeInternal, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid request body: "+err.Error())
		return
	}

	sess.Mu.Lock()
	defer sess.Mu.Unlock()

	var result float64
	switch req.Op {
	case opAdd:
		result = sess.Calc.Add(req.A, req.B)
	case opSubtract:
		result = sess.Calc.Subtract(req.A, req.B)
	case opMultiply:
		result = sess.Calc.Multiply(req.A, req.B)
	case opDivide:
		var err error
		result, err = sess.Calc.Divide(req.A, req.B)
		if err != nil {
			var calcErr *calculator.Error
			if errors.As(err, &calcErr) {
				s.writeError(w, http.StatusUnprocessableEntity, string(calcErr.Kind), calcErr.Message)
				return
			}
			s.writeError(w, http.StatusInternalServerError, codeInternal, err.Error())
			return
		}
	default:
		s.writeError(w, http.StatusBadRequest, codeUnknownOperation,
			fmt.Sprintf("unknown operation %q", req.Op))
		return
	}
	sess.UpdatedAt = time.Now()

	history := sess.Calc.History()
	s.writeJSON(w, calculateResponse{
		Result: result,
		Record: history[len(history)-1],
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	sess.Mu.Lock()
	history := sess.Calc.History()
	sess.Mu.Unlock()
	s.writeJSON(w, historyResponse{History: history})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	sess.Mu.Lock()
	history := sess.Calc.ClearHistory()
	sess.UpdatedAt = time.Now()
	sess.Mu.Unlock()
	s.writeJSON(w, historyResponse{History: history})
}

func (s *Server) handleMath(w http.ResponseWriter, r *http.Request) {
	switch mux.Vars(r)["fn"] {
	case fnFactorial:
		n, err := queryInt(r, "n")
		if err != nil {
			s.writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
			return
		}
		result, err := mathutil.Factorial(n)
		if err != nil {
			var mathErr *mathutil.Error
			if errors.As(err, &mathErr) {
				s.writeError(w, http.StatusUnprocessableEntity, string(mathErr.Kind), mathErr.Message)
				return
			}
			s.writeError(w, http.StatusInternalServerError, codeInternal, err.Error())
			return
		}
		s.writeJSON(w, mathResponse{Result: result})
	case fnPrime:
		n, err := queryInt(r, "n")
		if err != nil {
			s.writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
			return
		}
		s.writeJSON(w, mathResponse{Result: mathutil.IsPrime(n)})
	case fnGCD:
		a, err := queryInt(r, "a")
		if err != nil {
			s.writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
			return
		}
		b, err := queryInt(r, "b")
		if err != nil {
			s.writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
			return
		}
		s.writeJSON(w, mathResponse{Result: mathutil.GCD(a, b)})
	case fnFibonacci:
		n, err := queryInt(r, "n")
		if err != nil {
			s.writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
			return
		}
		s.writeJSON(w, mathResponse{Result: mathutil.Fibonacci(n)})
	case fnPower:
		base, err := queryFloat(r, "base")
		if err != nil {
			s.writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
			return
		}
		exponent, err := queryInt(r, "exponent")
		if err != nil {
			s.writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
			return
		}
		s.writeJSON(w, mathResponse{Result: mathutil.Power(base, exponent)})
	default:
		s.writeError(w, http.StatusNotFound, codeUnknownFunction,
			fmt.Sprintf("unknown math function %q", mux.Vars(r)["fn"]))
	}
}

// lookupSession resolves the session from the request path, writing a 404
// response when it does not exist.
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := mux.Vars(r)["id"]
	sess, err := s.sessionSvc.GetSession(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			s.writeError(w, http.StatusNotFound, codeSessionNotFound,
				fmt.Sprintf("session %q not found", id))
		} else {
			s.writeError(w, http.StatusInternalServerError, codeInternal, err.Error())
		}
		return nil, false
	}
	return sess, true
}

func queryInt(r *http.Request, key string) (int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, fmt.Errorf("missing query parameter %q", key)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q is not an integer: %s", key, raw)
	}
	return v, nil
}

func queryFloat(r *http.Request, key string) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, fmt.Errorf("missing query parameter %q", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q is not a number: %s", key, raw)
	}
	return v, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error: errorDetail{Code: code, Message: message},
	})
}
