package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MessageRequest is the body of a chat turn submission.
type MessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// AutofillRequest is the body of an auto-fill invocation.
type AutofillRequest struct {
	Enhance bool `json:"enhance,omitempty"`
}

// ChatMessage is one transcript entry: either the user's utterance or the
// wizard's reply for a turn.
type ChatMessage struct {
	Role        string    `json:"role"` // "user" or "assistant"
	Text        string    `json:"text"`
	Stage       Stage     `json:"stage"`
	Suggestions []string  `json:"suggestions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SessionArchive is a completed session persisted by the archive store.
type SessionArchive struct {
	ID          uuid.UUID         `json:"id"`
	SessionID   uuid.UUID         `json:"session_id"`
	State       ConversationState `json:"state"`
	Transcript  []ChatMessage     `json:"transcript"`
	FormData    FormData          `json:"form_data"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt time.Time         `json:"completed_at"`
}

// Validate validates the MessageRequest using the validator.
func (r *MessageRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
