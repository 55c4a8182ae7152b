package server

import (
	"encoding/json"
	"net/http"
)

func (s *Server) respond(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response", "error", err)
	}
}

// ok wraps payload in the {success, data} envelope.
func (s *Server) ok(w http.ResponseWriter, status int, data interface{}) {
	s.respond(w, status, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// fail wraps an error message in the {success: false, error} envelope.
func (s *Server) fail(w http.ResponseWriter, status int, msg string) {
	s.respond(w, status, map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}
