// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-chat-wizard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPatch outputs the fields one turn extracted, or a note when the turn
// extracted nothing.
func (p *Printer) PrintPatch(patch types.ExtractionPatch) {
	if patch.IsZero() {
		p.printBox("Extracted this turn", "(nothing extracted)")
		return
	}

	var sb strings.Builder
	if patch.Profession != "" {
		sb.WriteString(fmt.Sprintf("Profession:   %s\n", patch.Profession))
	}
	if !patch.Education.IsZero() {
		sb.WriteString(fmt.Sprintf("Education:    %s\n", formatEducation(patch.Education)))
	}
	for _, entry := range patch.Experience {
		sb.WriteString(fmt.Sprintf("Experience:   %s at %s (%s)\n", entry.Position, entry.Company, entry.Duration))
	}
	if len(patch.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:       %s\n", strings.Join(patch.Skills, ", ")))
	}
	for _, achievement := range patch.Achievements {
		sb.WriteString(fmt.Sprintf("Achievement:  %s\n", achievement))
	}
	if patch.Summary != "" {
		sb.WriteString(fmt.Sprintf("Summary:      %s\n", patch.Summary))
	}

	p.printBox("Extracted this turn", strings.TrimRight(sb.String(), "\n"))
}

// PrintState outputs a human-readable summary of the accumulated state.
func (p *Printer) PrintState(state types.ConversationState) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Stage:        %s\n", state.Stage))
	sb.WriteString(fmt.Sprintf("Profession:   %s\n", orUnset(state.Profession)))
	sb.WriteString(fmt.Sprintf("Education:    %s\n", orUnset(formatEducation(state.Education))))
	sb.WriteString(fmt.Sprintf("Experience:   %d entries\n", len(state.Experience)))
	sb.WriteString(fmt.Sprintf("Skills:       %s\n", orUnset(strings.Join(state.Skills, ", "))))
	sb.WriteString(fmt.Sprintf("Achievements: %d entries\n", len(state.Achievements)))
	sb.WriteString(fmt.Sprintf("Summary:      %s", orUnset(state.Summary)))

	p.printBox("Conversation state", sb.String())
}

// PrintFormData outputs the flattened form fields produced for auto-fill.
func (p *Printer) PrintFormData(form types.FormData) {
	var sb strings.Builder
	if form.Profession != "" {
		sb.WriteString(fmt.Sprintf("Profession:   %s\n", form.Profession))
	}
	if form.Summary != "" {
		sb.WriteString(fmt.Sprintf("Summary:      %s\n", form.Summary))
	}
	for _, edu := range form.Education {
		sb.WriteString(fmt.Sprintf("Education:    %s, %s, %s\n", edu.Degree, edu.Field, edu.Institution))
	}
	for _, exp := range form.Experience {
		sb.WriteString(fmt.Sprintf("Experience:   %s at %s (%s)\n", exp.Position, exp.Company, exp.Duration))
	}
	if form.Skills != "" {
		sb.WriteString(fmt.Sprintf("Skills:       %s\n", form.Skills))
	}
	if form.Achievements != "" {
		for _, line := range strings.Split(form.Achievements, "\n") {
			sb.WriteString(fmt.Sprintf("Achievement:  %s\n", line))
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("(no fields collected)")
	}

	p.printBox("Auto-fill form data", strings.TrimRight(sb.String(), "\n"))
}

func formatEducation(e types.Education) string {
	parts := make([]string, 0, 3)
	if e.Degree != "" {
		parts = append(parts, e.Degree)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Institution != "" {
		parts = append(parts, e.Institution)
	}
	return strings.Join(parts, ", ")
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}
