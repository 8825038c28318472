package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-chat-wizard/internal/db"
	"github.com/jonathan/resume-chat-wizard/internal/session"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"session not found", &session.ErrSessionNotFound{SessionID: uuid.New()}, http.StatusNotFound},
		{"archive not found", &db.ErrArchiveNotFound{ID: uuid.New()}, http.StatusNotFound},
		{"archive unavailable", &ErrArchiveUnavailable{}, http.StatusServiceUnavailable},
		{"session not complete", &ErrSessionNotComplete{}, http.StatusConflict},
		{"wrapped session not found", fmt.Errorf("lookup: %w", &session.ErrSessionNotFound{SessionID: uuid.New()}), http.StatusNotFound},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
