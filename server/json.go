// SPDX-License-Identifier: MIT

// Package server - JSON envelope helpers.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// maxBodyBytes bounds request bodies; a 2000-vertex matrix fits comfortably.
const maxBodyBytes = 64 << 20

// Response is the envelope of every API reply.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (s *Server) logInternalServerError(r *http.Request, err error) {
	s.log.Error("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logInternalServerError(r, err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, r, status, Response{
		Success: false,
		Message: msg,
	})
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		s.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	s.errorResponse(w, r, http.StatusBadRequest, verrs[0].Translate(s.translator))
}

func (s *Server) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	s.logInternalServerError(r, err)
	s.errorResponse(w, r, http.StatusInternalServerError, "internal server error")
}

func (s *Server) successResponse(w http.ResponseWriter, r *http.Request, status int, msg string, data any) {
	s.writeJSON(w, r, status, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}
