package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/chenmo1212/foodorder/internal/models"
)

// handleCreateMessage is the notification intake. The envelope differs from
// the rest of the API: clients check for status == 200 in the body.
func (s *Server) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	var msg models.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		s.respond(w, http.StatusBadRequest, map[string]interface{}{
			"status": http.StatusBadRequest,
			"error":  "invalid request body",
		})
		return
	}
	if msg.Content == "" {
		s.respond(w, http.StatusBadRequest, map[string]interface{}{
			"status": http.StatusBadRequest,
			"error":  "Missing required field: content",
		})
		return
	}
	if msg.CreateTime.IsZero() {
		msg.CreateTime = time.Now().UTC()
	}

	if err := s.messages.Create(r.Context(), &msg); err != nil {
		s.respond(w, http.StatusInternalServerError, map[string]interface{}{
			"status": http.StatusInternalServerError,
			"error":  err.Error(),
		})
		return
	}

	s.relayMessage(&msg)

	s.respond(w, http.StatusOK, map[string]interface{}{
		"status": http.StatusOK,
		"data":   map[string]string{"id": msg.ID},
	})
}

// relayMessage forwards the stored message to the configured downstream
// webhook. Best effort: a relay failure never fails the intake.
func (s *Server) relayMessage(msg *models.Message) {
	if s.relayURL == "" {
		return
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	resp, err := http.Post(s.relayURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		s.log.Warn("message relay failed", "id", msg.ID, "error", err)
		return
	}
	resp.Body.Close()
	if resp.StatusCode >= 300 {
		s.log.Warn("message relay rejected", "id", msg.ID, "status", resp.StatusCode)
	}
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, total, err := s.messages.GetAll(r.Context(), intParam(r, "limit", 50), intParam(r, "skip", 0))
	if err != nil {
		s.respond(w, http.StatusInternalServerError, map[string]interface{}{
			"status": http.StatusInternalServerError,
			"error":  err.Error(),
		})
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"status": http.StatusOK,
		"data":   msgs,
		"total":  total,
	})
}
