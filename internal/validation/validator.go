package validation

import (
	"bytes"
	"encoding/json"
	"strings"

	"grammologue/internal/domain"
)

// Validator provides request validation functionality.
// Only presence is checked; content rules belong to the inference service.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuestionAnswer validates a question/answer pair
func (v *Validator) ValidateQuestionAnswer(question, answer string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(question) == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	}
	if strings.TrimSpace(answer) == "" {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	}

	return errors
}

// ValidateTextAnalysis validates an analyze-text request. The question is optional.
func (v *Validator) ValidateTextAnalysis(text string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(text) == "" {
		errors = append(errors, domain.NewMissingFieldError("text"))
	}

	return errors
}

// ValidateAudioUpload validates that a non-empty file was uploaded
func (v *Validator) ValidateAudioUpload(present bool, size int64) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if !present {
		errors = append(errors, domain.NewMissingFieldError("file"))
	} else if size == 0 {
		errors = append(errors, domain.NewInvalidFormatError("file", "must not be empty"))
	}

	return errors
}

// ValidateSetup decodes a question-generation setup body, which must be a JSON object
func (v *Validator) ValidateSetup(body []byte) (domain.SetupData, domain.ValidationErrors) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("setup")}
	}

	var setup domain.SetupData
	if err := json.Unmarshal(trimmed, &setup); err != nil || setup == nil {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("setup", "must be a JSON object")}
	}

	return setup, nil
}
