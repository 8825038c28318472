package server

import (
	"bytes"
	"context"
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

type fakeLLMClient struct {
	text    string
	jsonDoc string
	err     error
}

func (f *fakeLLMClient) Generate(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func (f *fakeLLMClient) GenerateJSON(_ context.Context, _ string) (string, error) {
	return f.jsonDoc, f.err
}

func (f *fakeLLMClient) Close() error { return nil }

// completeTestSession walks a session through every stage to completion.
func completeTestSession(t *testing.T, s *Server) string {
	t.Helper()
	id := createTestSession(t, s)
	for _, u := range []string{
		"Hello",
		"I'm a software engineer",
		"Bachelor's in computer science from Boston College",
		"I was a developer at Google",
		"Python and SQL",
		"Led a team of five",
		"Engineer who ships reliable systems.",
	} {
		postTestMessage(t, s, id, u)
	}
	return id
}

func getForm(t *testing.T, s *Server, id string) AutofillResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/sessions/"+id+"/form", nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handleGetForm(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp AutofillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleGetForm_PartialSession(t *testing.T) {
	s := newTestServer(t)
	id := createTestSession(t, s)
	postTestMessage(t, s, id, "Hello")
	postTestMessage(t, s, id, "I'm a nurse, healthcare is my field")

	resp := getForm(t, s, id)
	assert.Equal(t, types.ProfessionHealthcareProfessional, resp.FormData.Profession)
	assert.Empty(t, resp.FormData.Education)
	assert.Empty(t, resp.FormData.Experience)
	assert.False(t, resp.Enhanced)
}

func TestHandleGetForm_CompleteSession(t *testing.T) {
	s := newTestServer(t)
	id := completeTestSession(t, s)

	resp := getForm(t, s, id)
	assert.Equal(t, types.ProfessionSoftwareEngineer, resp.FormData.Profession)
	require.Len(t, resp.FormData.Education, 1)
	assert.Equal(t, "Boston College", resp.FormData.Education[0].Institution)
	require.Len(t, resp.FormData.Experience, 1)
	assert.Equal(t, "Google", resp.FormData.Experience[0].Company)
	assert.Contains(t, resp.FormData.Skills, "Python")
	assert.NotEmpty(t, resp.FormData.Summary)
}

func TestHandleAutofill_EnhancementDisabled(t *testing.T) {
	s := newTestServer(t)
	id := completeTestSession(t, s)

	body, _ := json.Marshal(types.AutofillRequest{Enhance: true})
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/autofill", bytes.NewReader(body))
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handleAutofill(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AutofillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Enhanced)
	assert.Equal(t, types.ProfessionSoftwareEngineer, resp.FormData.Profession)
}

func TestHandleAutofill_EmptyBody(t *testing.T) {
	s := newTestServer(t)
	id := completeTestSession(t, s)

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/autofill", http.NoBody)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handleAutofill(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AutofillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Enhanced)
}

func TestHandleAutofill_Enhanced(t *testing.T) {
	s := newTestServer(t)
	s.enhancer = autofill.NewEnhancer(&fakeLLMClient{text: "Polished by the model."})
	id := completeTestSession(t, s)

	body, _ := json.Marshal(types.AutofillRequest{Enhance: true})
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/autofill", bytes.NewReader(body))
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handleAutofill(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AutofillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Enhanced)
	assert.Equal(t, "Polished by the model.", resp.FormData.Summary)
	require.Len(t, resp.FormData.Experience, 1)
	assert.Equal(t, "Polished by the model.", resp.FormData.Experience[0].Responsibilities)
}

func TestHandleAutofill_EnhancementFailureFallsBack(t *testing.T) {
	s := newTestServer(t)
	s.enhancer = autofill.NewEnhancer(&fakeLLMClient{err: assert.AnError})
	id := completeTestSession(t, s)

	body, _ := json.Marshal(types.AutofillRequest{Enhance: true})
	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/autofill", bytes.NewReader(body))
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handleAutofill(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AutofillResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Enhanced)
	assert.Equal(t, "Engineer who ships reliable systems.", resp.FormData.Summary)
}

func TestHandleAutofillStream_Disabled(t *testing.T) {
	s := newTestServer(t)
	id := completeTestSession(t, s)

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/autofill/stream", nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handleAutofillStream(w, req)

	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "event: form")
	assert.Contains(t, body, "event: notice")
	assert.Contains(t, body, "event: complete")
	assert.Contains(t, body, `"stage":"complete"`)
}

func TestHandleAutofillStream_Enhanced(t *testing.T) {
	s := newTestServer(t)
	id := completeTestSession(t, s)

	enhanced := types.FormData{
		Profession: types.ProfessionSoftwareEngineer,
		Summary:    "Rewritten as a whole document.",
	}
	doc, _ := json.Marshal(enhanced)
	s.enhancer = autofill.NewEnhancer(&fakeLLMClient{jsonDoc: string(doc)})

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/autofill/stream", nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handleAutofillStream(w, req)

	body := w.Body.String()
	assert.Contains(t, body, "event: form")
	assert.Contains(t, body, "event: enhanced")
	assert.Contains(t, body, "Rewritten as a whole document.")
	assert.NotContains(t, body, "event: notice")
}

func TestHandleArchiveSession_NotComplete(t *testing.T) {
	s := newTestServer(t)
	id := createTestSession(t, s)

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/archive", nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handleArchiveSession(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleArchiveSession_NoArchiveStore(t *testing.T) {
	s := newTestServer(t)
	id := completeTestSession(t, s)

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/archive", nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handleArchiveSession(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleListArchives_NoArchiveStore(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.handleListArchives(w, httptest.NewRequest(http.MethodGet, "/archives", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleGetArchive_NoArchiveStore(t *testing.T) {
	s := newTestServer(t)

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/archives/"+id, nil)
	req.SetPathValue("id", id)
	w := httptest.NewRecorder()

	s.handleGetArchive(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	s.sessions = session.NewManager(time.Minute)
	t.Cleanup(s.sessions.Stop)

	w := httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, false, resp["enhancement"])
	assert.Equal(t, false, resp["archive_enabled"])
}
