// Package schemas provides JSON Schema validation for the form-data shape
// exchanged with the enhancement model. Model output that fails validation is
// discarded in favor of the deterministic converter result.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed form_data.json
var formDataSchema string

// ValidationError reports schema violations with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("form data validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateFormData validates a JSON document against the embedded form-data
// schema. It returns nil when the document conforms, a *ValidationError when
// it does not, and a plain error when the document is not valid JSON at all.
func ValidateFormData(jsonDocument string) error {
	schemaLoader := gojsonschema.NewStringLoader(formDataSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonDocument)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate form data: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
