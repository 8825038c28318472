package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain json", `{"summary": "ok"}`, `{"summary": "ok"}`},
		{"json fence", "```json\n{\"summary\": \"ok\"}\n```", `{"summary": "ok"}`},
		{"bare fence", "```\n{\"summary\": \"ok\"}\n```", `{"summary": "ok"}`},
		{"fence with language", "```javascript\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  {\"a\": 1}  ", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}
