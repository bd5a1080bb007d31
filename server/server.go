// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DataDog/datadog-localip/common"
	"github.com/DataDog/datadog-localip/localip"
	"github.com/DataDog/datadog-localip/log"
	"github.com/DataDog/datadog-localip/result"
	"github.com/DataDog/datadog-localip/runner"
)

// Server is the HTTP server for the local IP API
type Server struct {
	runLookup func(ctx context.Context, params runner.LookupParams) (*result.Report, error)
	startTime time.Time
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}

// NewServer creates a new HTTP server performing lookups with runner.RunLookup
func NewServer() *Server {
	return &Server{
		runLookup: runner.RunLookup,
		startTime: time.Now(),
	}
}

// LocalIPHandler handles GET /localip requests
func (s *Server) LocalIPHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params, err := s.parseLookupParams(r)
	if err != nil {
		writeError(w, &localip.LookupError{Code: localip.ErrCodeInvalidRequest, Message: err.Error(), Err: err})
		return
	}

	report, err := s.runLookup(r.Context(), params)
	if err != nil {
		lookupErr := localip.ClassifyError(err)
		log.Debugf("lookup for %q failed with %s: %s", params.Hostname, lookupErr.Code, lookupErr.Message)
		writeError(w, lookupErr)
		return
	}

	w.Header().Set("X-Request-Id", report.RequestID)
	writeJSON(w, http.StatusOK, report)
}

// HealthHandler handles GET and HEAD /health requests
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	})
}

// parseLookupParams extracts and validates query parameters from the HTTP request
func (s *Server) parseLookupParams(r *http.Request) (runner.LookupParams, error) {
	query := r.URL.Query()

	host := query.Get("host")
	if host == "" {
		return runner.LookupParams{}, fmt.Errorf("missing required parameter: host")
	}

	method := localip.Method(getStringParam(query, "method", common.DefaultMethod))
	if !isValidMethod(method) {
		return runner.LookupParams{}, fmt.Errorf("%w: %q", localip.ErrUnknownMethod, method)
	}

	timeoutMs := getIntParam(query, "timeout", common.DefaultTimeout)
	if timeoutMs < 0 {
		return runner.LookupParams{}, fmt.Errorf("invalid timeout: %d", timeoutMs)
	}

	return runner.LookupParams{
		Hostname:   host,
		Method:     method,
		Timeout:    time.Duration(timeoutMs) * time.Millisecond,
		ReverseDns: getBoolParam(query, "reverse-dns", common.DefaultReverseDns),
	}, nil
}

// Handler returns the routes served by Start.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/localip", s.LocalIPHandler)
	mux.HandleFunc("/health", s.HealthHandler)
	return mux
}

// Start starts the HTTP server on the specified address
func (s *Server) Start(addr string) error {
	log.Debugf("Starting HTTP server on %s", addr)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return httpServer.ListenAndServe()
}

func writeError(w http.ResponseWriter, lookupErr *localip.LookupError) {
	status := http.StatusInternalServerError
	if lookupErr.Code == localip.ErrCodeInvalidRequest {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, localip.ErrorResponse{Code: lookupErr.Code, Message: lookupErr.Message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to encode response: %s", err)
	}
}
