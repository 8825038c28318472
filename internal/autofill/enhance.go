package autofill

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-chat-wizard/internal/llm"
	"github.com/jonathan/resume-chat-wizard/internal/prompts"
	"github.com/jonathan/resume-chat-wizard/internal/schemas"
	"github.com/jonathan/resume-chat-wizard/internal/types"
)

// maxConcurrentSections bounds the number of in-flight enhancement calls.
const maxConcurrentSections = 3

// Enhancer layers model-polished prose over the deterministic converter
// output. It is strictly optional: a nil client, a failed call, or output that
// fails schema validation all fall back to the deterministic form data. The
// extraction core never depends on it.
type Enhancer struct {
	client llm.Client
}

// NewEnhancer creates an Enhancer. A nil client disables enhancement; Enhance
// then returns the deterministic form unchanged.
func NewEnhancer(client llm.Client) *Enhancer {
	return &Enhancer{client: client}
}

// Enabled reports whether a text-generation client is configured.
func (e *Enhancer) Enabled() bool {
	return e != nil && e.client != nil
}

// Enhance returns form data for the state, with prose fields rewritten by the
// model where possible. The returned form is always usable; a non-nil error
// means enhancement was skipped or discarded and the deterministic form was
// returned instead.
func (e *Enhancer) Enhance(ctx context.Context, state types.ConversationState) (types.FormData, error) {
	base := ToFormData(state)
	if !e.Enabled() {
		return base, fmt.Errorf("enhancement disabled: no text-generation client configured")
	}

	enhanced := base
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSections)

	if base.Summary != "" {
		g.Go(func() error {
			text, err := e.enhanceSummary(gCtx, base.Profession, base.Summary)
			if err != nil {
				return err
			}
			enhanced.Summary = text
			return nil
		})
	}

	if len(base.Experience) > 0 {
		// Work on a copy so a failed group never leaves base half-written.
		enhanced.Experience = make([]types.FormExperience, len(base.Experience))
		copy(enhanced.Experience, base.Experience)
		for i := range enhanced.Experience {
			g.Go(func() error {
				text, err := e.enhanceResponsibilities(gCtx, enhanced.Experience[i])
				if err != nil {
					return err
				}
				enhanced.Experience[i].Responsibilities = text
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return base, fmt.Errorf("enhancement failed: %w", err)
	}

	if err := validateForm(enhanced); err != nil {
		return base, fmt.Errorf("enhanced form rejected: %w", err)
	}
	return enhanced, nil
}

func (e *Enhancer) enhanceSummary(ctx context.Context, profession, summary string) (string, error) {
	template, err := prompts.Get("autofill.json", "enhance-summary")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"Profession": profession,
		"Summary":    summary,
	})

	text, err := e.client.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("model returned an empty summary")
	}
	return text, nil
}

func (e *Enhancer) enhanceResponsibilities(ctx context.Context, entry types.FormExperience) (string, error) {
	template, err := prompts.Get("autofill.json", "enhance-responsibilities")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"Position": entry.Position,
		"Company":  entry.Company,
		"Duration": entry.Duration,
	})

	text, err := e.client.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("model returned empty responsibilities")
	}
	return text, nil
}

// EnhanceDocument rewrites the whole form in a single structured-output call.
// The model receives the deterministic form as JSON and must return the same
// shape; anything that fails schema validation is discarded. This is the
// variant used when one round trip matters more than per-section fallback,
// such as the streaming endpoint.
func (e *Enhancer) EnhanceDocument(ctx context.Context, state types.ConversationState) (types.FormData, error) {
	base := ToFormData(state)
	if !e.Enabled() {
		return base, fmt.Errorf("enhancement disabled: no text-generation client configured")
	}

	baseDoc, err := json.Marshal(base)
	if err != nil {
		return base, err
	}

	template, err := prompts.Get("autofill.json", "enhance-form")
	if err != nil {
		return base, err
	}
	prompt := prompts.Format(template, map[string]string{"FormData": string(baseDoc)})

	doc, err := e.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return base, fmt.Errorf("enhancement failed: %w", err)
	}
	if err := schemas.ValidateFormData(doc); err != nil {
		return base, fmt.Errorf("enhanced form rejected: %w", err)
	}

	var enhanced types.FormData
	if err := json.Unmarshal([]byte(doc), &enhanced); err != nil {
		return base, fmt.Errorf("enhanced form rejected: %w", err)
	}
	return enhanced, nil
}

// validateForm round-trips the form through JSON and checks it against the
// embedded form-data schema.
func validateForm(form types.FormData) error {
	doc, err := json.Marshal(form)
	if err != nil {
		return err
	}
	return schemas.ValidateFormData(string(doc))
}
