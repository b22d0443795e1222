package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Eric-Mao06/Mailfish/internal/clone"
)

type personRequest struct {
	Name string `json:"name"`
}

type chatRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type speakRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

func (s *Server) handleCreateClone(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req personRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	rec, err := s.service.CreateClone(r.Context(), strings.TrimSpace(req.Name))
	if err != nil {
		s.logger.Error(r.Context(), "Create clone failed for %q: %v", req.Name, err)
		writeError(w, http.StatusInternalServerError, "error creating clone: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Clone created successfully",
		"has_voice": rec.HasVoice(),
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "name and message are required")
		return
	}

	reply, err := s.service.Chat(r.Context(), req.Name, req.Message)
	if errors.Is(err, clone.ErrPersonaNotFound) {
		writeError(w, http.StatusNotFound, "Clone not found. Please create the clone first.")
		return
	}
	if err != nil {
		s.logger.Error(r.Context(), "Chat failed for %q: %v", req.Name, err)
		writeError(w, http.StatusInternalServerError, "error generating response")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req speakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Text == "" {
		writeError(w, http.StatusBadRequest, "name and text are required")
		return
	}

	audio, err := s.service.Speak(r.Context(), req.Name, req.Text)
	if errors.Is(err, clone.ErrPersonaNotFound) {
		writeError(w, http.StatusNotFound, "Clone not found. Please create the clone first.")
		return
	}
	if errors.Is(err, clone.ErrNoVoice) {
		writeError(w, http.StatusConflict, "This clone has no voice. Audio extraction may have failed.")
		return
	}
	if err != nil {
		s.logger.Error(r.Context(), "Speak failed for %q: %v", req.Name, err)
		writeError(w, http.StatusInternalServerError, "error generating speech")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}

func (s *Server) handleVoice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/voices/")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	rec, found, err := s.service.Lookup(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Clone not found.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":           rec.Name,
		"voice_id":       rec.VoiceID,
		"has_voice":      rec.HasVoice(),
		"prompt_preview": preview(rec.Prompt, 160),
		"created_at":     rec.CreatedAt,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	personas, err := s.store.Count(r.Context())
	if err != nil {
		s.logger.Warn(r.Context(), "Persona count failed: %v", err)
	}

	stats := s.coordinator.Stats()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":                "healthy",
		"personas":              personas,
		"extractions_active":    stats.Active,
		"extractions_completed": stats.Completed,
		"extractions_failed":    stats.Failed,
		"uptime":                time.Since(s.startedAt).Round(time.Second).String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
