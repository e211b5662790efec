package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/agroclima/agroclima-api/internal/domain"
	"github.com/agroclima/agroclima-api/internal/observability"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	OK    bool   `json:"ok"`
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}

// handleChat runs one conversational turn for the request's session.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	// A malformed or absent body behaves like an empty message.
	_ = json.NewDecoder(r.Body).Decode(&req)

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, chatResponse{OK: false, Error: "Mensaje vacío"})
		return
	}

	id := s.sessions.Resolve(w, r)

	reply, err := s.chat.Send(r.Context(), id, message)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, chatResponse{OK: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{OK: true, Reply: reply})
}

// handleRecommendation answers a one-shot recommendation request. All
// fields are optional; a body that fails to parse means all fields absent.
func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	var req domain.RecommendationRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	message, err := s.advisor.Recommend(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

// handleIndex renders the landing page; ?new=1 drops the session's
// conversation history first.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	id := s.sessions.Resolve(w, r)

	if r.URL.Query().Get("new") == "1" {
		s.chat.Reset(id)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, nil); err != nil {
		observability.LoggerFromContext(r.Context()).Error("rendering index", "error", err)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
