package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-chat-wizard/internal/session"
	"github.com/jonathan/resume-chat-wizard/internal/types"
)

// SessionResponse represents a session in API responses.
type SessionResponse struct {
	ID          string                   `json:"id"`
	State       types.ConversationState  `json:"state"`
	Transcript  []types.ChatMessage      `json:"transcript,omitempty"`
	Prompt      string                   `json:"prompt,omitempty"`
	Suggestions []string                 `json:"suggestions,omitempty"`
}

// TurnResponse represents the result of one chat turn.
type TurnResponse struct {
	Patch       types.ExtractionPatch   `json:"patch"`
	State       types.ConversationState `json:"state"`
	Prompt      string                  `json:"prompt"`
	Suggestions []string                `json:"suggestions"`
}

// handleCreateSession starts a new wizard conversation.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.sessions.Start()

	greeting := sess.Transcript[0]
	s.jsonResponse(w, http.StatusCreated, SessionResponse{
		ID:          sess.ID.String(),
		State:       sess.State,
		Prompt:      greeting.Text,
		Suggestions: greeting.Suggestions,
	})
}

// handleGetSession returns the session state and transcript.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	sess, err := s.sessions.Get(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SessionResponse{
		ID:         sess.ID.String(),
		State:      sess.State,
		Transcript: sess.Transcript,
	})
}

// handleDeleteSession discards a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	if err := s.sessions.Delete(id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePostMessage processes one user utterance and advances the wizard.
func (s *Server) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	var req types.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	turn, _, err := s.sessions.Advance(id, req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, TurnResponse{
		Patch:       turn.Patch,
		State:       turn.State,
		Prompt:      turn.Prompt,
		Suggestions: turn.Suggestions,
	})
}

// sessionID parses the {id} path value, writing an error response on failure.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "Session ID is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid session ID format")
		return uuid.Nil, false
	}
	return id, true
}

// sessionSnapshot is a small helper shared by the autofill handlers.
func (s *Server) sessionSnapshot(w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return session.Session{}, false
	}
	sess, err := s.sessions.Get(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return session.Session{}, false
	}
	return sess, true
}
