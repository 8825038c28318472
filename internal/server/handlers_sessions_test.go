package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-chat-wizard/internal/autofill"
	"github.com/jonathan/resume-chat-wizard/internal/session"
	"github.com/jonathan/resume-chat-wizard/internal/types"
)

// newTestServer builds a server with an in-memory session store and no
// database or model client attached.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		sessions: session.NewManager(time.Minute),
		enhancer: autofill.NewEnhancer(nil),
	}
	t.Cleanup(s.sessions.Stop)
	return s
}

func createTestSession(t *testing.T, s *Server) string {
	t.Helper()
	w := httptest.NewRecorder()
	s.handleCreateSession(w, httptest.NewRequest(http.MethodPost, "/sessions", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func postTestMessage(t *testing.T, s *Server, id, text string) TurnResponse {
	t.Helper()
	body, _ := json.Marshal(types.MessageRequest{Text: text})
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handlePostMessage(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp TurnResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleCreateSession(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.handleCreateSession(w, httptest.NewRequest(http.MethodPost, "/sessions", nil))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)
	assert.Equal(t, types.StageGreeting, resp.State.Stage)
	assert.NotEmpty(t, resp.Prompt)
	assert.NotEmpty(t, resp.Suggestions)
}

func TestHandleGetSession_NotFound(t *testing.T) {
	s := newTestServer(t)

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/sessions/"+id, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handleGetSession(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetSession_InvalidID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/sessions/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetSession(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Invalid session ID format", resp["error"])
}

func TestHandleDeleteSession(t *testing.T) {
	s := newTestServer(t)
	id := createTestSession(t, s)

	req := httptest.NewRequest(http.MethodDelete, "/sessions/"+id, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handleDeleteSession(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	getReq := httptest.NewRequest(http.MethodGet, "/sessions/"+id, nil)
	getReq.SetPathValue("id", id)
	getW := httptest.NewRecorder()
	s.handleGetSession(getW, getReq)
	assert.Equal(t, http.StatusNotFound, getW.Code)
}

func TestHandlePostMessage_EmptyText(t *testing.T) {
	s := newTestServer(t)
	id := createTestSession(t, s)

	body, _ := json.Marshal(types.MessageRequest{Text: ""})
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/messages", bytes.NewReader(body))
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handlePostMessage(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "text is required", resp["error"])
}

func TestHandlePostMessage_AdvancesStages(t *testing.T) {
	s := newTestServer(t)
	id := createTestSession(t, s)

	turn := postTestMessage(t, s, id, "Hello!")
	assert.Equal(t, types.StageProfession, turn.State.Stage)

	turn = postTestMessage(t, s, id, "I work as a software engineer")
	assert.Equal(t, types.StageEducation, turn.State.Stage)
	assert.Equal(t, types.ProfessionSoftwareEngineer, turn.State.Profession)
	assert.Equal(t, types.ProfessionSoftwareEngineer, turn.Patch.Profession)
	assert.NotEmpty(t, turn.Prompt)
}

func TestHandlePostMessage_TerminalStageKeepsData(t *testing.T) {
	s := newTestServer(t)
	id := createTestSession(t, s)

	utterances := []string{
		"Hi there",
		"software engineer",
		"Bachelor's in computer science from Boston College",
		"I was a developer at Google",
		"Python and SQL",
		"Led a team of five",
		"Engineer who ships reliable systems.",
	}
	var turn TurnResponse
	for _, u := range utterances {
		turn = postTestMessage(t, s, id, u)
	}
	require.Equal(t, types.StageComplete, turn.State.Stage)

	// Another message after completion must not change the collected data.
	after := postTestMessage(t, s, id, "please add ten years of experience")
	assert.Equal(t, types.StageComplete, after.State.Stage)
	assert.Equal(t, turn.State, after.State)
	assert.True(t, after.Patch.IsZero())
}

func TestHandlePostMessage_SessionNotFound(t *testing.T) {
	s := newTestServer(t)

	id := uuid.New().String()
	body, _ := json.Marshal(types.MessageRequest{Text: "hello"})
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/messages", bytes.NewReader(body))
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handlePostMessage(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
