package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-chat-wizard/internal/autofill"
	"github.com/jonathan/resume-chat-wizard/internal/conversation"
	"github.com/jonathan/resume-chat-wizard/internal/types"
)

// AutofillResponse carries the form data handed to the resume form.
type AutofillResponse struct {
	FormData types.FormData `json:"form_data"`
	Enhanced bool           `json:"enhanced"`
}

// ArchiveResponse is returned when a session is archived.
type ArchiveResponse struct {
	ArchiveID string `json:"archive_id"`
}

// handleGetForm returns the deterministic form data for the session at any
// stage; before completion it simply reflects partial data.
func (s *Server) handleGetForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionSnapshot(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, AutofillResponse{
		FormData: autofill.ToFormData(sess.State),
	})
}

// handleAutofill returns form data, optionally polished by the model. An
// enhancement failure is not an error: the deterministic form is returned
// and the response says enhancement did not apply.
func (s *Server) handleAutofill(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionSnapshot(w, r)
	if !ok {
		return
	}

	var req types.AutofillRequest
	if r.Body != nil {
		// An empty body means a plain auto-fill request.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}

	if !req.Enhance || !s.enhancer.Enabled() {
		s.jsonResponse(w, http.StatusOK, AutofillResponse{
			FormData: autofill.ToFormData(sess.State),
		})
		return
	}

	form, err := s.enhancer.Enhance(r.Context(), sess.State)
	if err != nil {
		log.Printf("Auto-fill enhancement fell back for session %s: %v", sess.ID, err)
	}
	s.jsonResponse(w, http.StatusOK, AutofillResponse{
		FormData: form,
		Enhanced: err == nil,
	})
}

// handleAutofillStream streams auto-fill over SSE: the deterministic form is
// sent immediately, then the enhanced form follows when the model call
// succeeds.
func (s *Server) handleAutofillStream(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionSnapshot(w, r)
	if !ok {
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	base := autofill.ToFormData(sess.State)
	if err := sse.WriteEvent("form", AutofillResponse{FormData: base}); err != nil {
		return
	}

	if s.enhancer.Enabled() {
		form, err := s.enhancer.EnhanceDocument(r.Context(), sess.State)
		if err != nil {
			log.Printf("Streaming enhancement fell back for session %s: %v", sess.ID, err)
			sse.WriteNotice("enhancement unavailable, deterministic form applies")
		} else {
			if err := sse.WriteEvent("enhanced", AutofillResponse{FormData: form, Enhanced: true}); err != nil {
				return
			}
		}
	} else {
		sse.WriteNotice("enhancement disabled, deterministic form applies")
	}

	sse.WriteComplete(sess.ID.String(), string(sess.State.Stage))
}

// handleArchiveSession persists a completed session to the archive store.
func (s *Server) handleArchiveSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionSnapshot(w, r)
	if !ok {
		return
	}
	if !conversation.IsTerminal(sess.State.Stage) {
		err := &ErrSessionNotComplete{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if s.archive == nil {
		err := &ErrArchiveUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	archiveID, err := s.archive.SaveArchive(r.Context(), types.SessionArchive{
		SessionID:  sess.ID,
		State:      sess.State,
		Transcript: sess.Transcript,
		FormData:   autofill.ToFormData(sess.State),
		CreatedAt:  sess.CreatedAt,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to archive session: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, ArchiveResponse{ArchiveID: archiveID.String()})
}

// handleListArchives lists recent archives.
func (s *Server) handleListArchives(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		err := &ErrArchiveUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	summaries, err := s.archive.ListArchives(r.Context(), 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list archives: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"archives": summaries})
}

// handleGetArchive loads one archived session.
func (s *Server) handleGetArchive(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		err := &ErrArchiveUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	archive, err := s.archive.GetArchive(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, archive)
}
