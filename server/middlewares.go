// SPDX-License-Identifier: MIT

// Package server - request logging and panic recovery.
package server

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"
)

// ResponseWriter records the status code written by a handler.
type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (s *Server) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w, StatusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)

		httpRequests.WithLabelValues(r.Method, strconv.Itoa(rw.StatusCode)).Inc()
		s.log.Info("request handled",
			"status", rw.StatusCode,
			"ip", r.RemoteAddr,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", duration,
		)
	})
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				s.log.Debug("panic stack", "stack", string(debug.Stack()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
