package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-chat-wizard/internal/db"
	"github.com/jonathan/resume-chat-wizard/internal/session"
)

// ErrArchiveUnavailable indicates the server runs without an archive store.
type ErrArchiveUnavailable struct{}

func (e *ErrArchiveUnavailable) Error() string {
	return "archive store not configured"
}

// ErrSessionNotComplete indicates an operation that requires a finished
// conversation was invoked too early.
type ErrSessionNotComplete struct{}

func (e *ErrSessionNotComplete) Error() string {
	return "session has not reached the complete stage"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		sessionNotFound *session.ErrSessionNotFound
		archiveNotFound *db.ErrArchiveNotFound
		unavailable     *ErrArchiveUnavailable
		notComplete     *ErrSessionNotComplete
	)
	switch {
	case errors.As(err, &sessionNotFound), errors.As(err, &archiveNotFound):
		return http.StatusNotFound
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &notComplete):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
