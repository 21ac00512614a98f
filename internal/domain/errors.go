package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Inference service errors
	CodeInvalidResponse ErrorCode = "INVALID_RESPONSE"
	CodeServerReported  ErrorCode = "SERVER_REPORTED_ERROR"
	CodeUpstream        ErrorCode = "UPSTREAM_ERROR"
)

// MsgInvalidIdealAnswer is returned when /get-ideal-answer answers without a usable envelope.
const MsgInvalidIdealAnswer = "Invalid response structure from ideal answer endpoint"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Err     error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// WithContext attaches a key/value pair that the gateway reports as error details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

// NewInvalidResponseError reports a response whose envelope does not have the expected shape.
func NewInvalidResponseError(message string) *DomainError {
	return NewError(CodeInvalidResponse, message, nil)
}

// NewServerReportedError carries the message of an envelope with status "error".
// Error() returns the server message unchanged.
func NewServerReportedError(message string) *DomainError {
	return NewError(CodeServerReported, message, nil)
}

// UpstreamError is returned when a backend answers with a non-2xx status.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	if detail := e.Detail(); detail != "" {
		return fmt.Sprintf("%s failed: HTTP %d: %s", e.Operation, e.StatusCode, detail)
	}
	return fmt.Sprintf("%s failed: HTTP %d", e.Operation, e.StatusCode)
}

// Detail returns the human readable part of the error body. FastAPI reports
// errors as {"detail": "..."}; envelopes use {"message": "..."}. Anything else
// is returned as trimmed text.
func (e *UpstreamError) Detail() string {
	var body struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(e.Body, &body); err == nil {
		if len(body.Detail) > 0 {
			var s string
			if err := json.Unmarshal(body.Detail, &s); err == nil {
				return s
			}
			// validation errors come back as a list
			return string(body.Detail)
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return strings.TrimSpace(string(e.Body))
}
