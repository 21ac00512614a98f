package domain

import (
	"context"
	"encoding/json"
)

// InferenceClient defines the calls the assessment feature makes against the inference service
type InferenceClient interface {
	// GetIdealAnswer returns the full {status, data} envelope for a question and the user's answer
	GetIdealAnswer(ctx context.Context, question, answer string) (*Envelope, error)

	// ProcessAudio uploads a recording and returns the transcription result as sent by the server
	ProcessAudio(ctx context.Context, audio AudioFile) (json.RawMessage, error)

	// AnalyzeText returns the grammar, pronunciation and fluency feedback for a transcript.
	// A nil question is sent as null.
	AnalyzeText(ctx context.Context, text string, question *string) (json.RawMessage, error)

	// CheckAnswer returns the correctness scoring for an answer
	CheckAnswer(ctx context.Context, question, answer string) (json.RawMessage, error)

	// GenerateQuestions returns the assessment questions for a setup record
	GenerateQuestions(ctx context.Context, setup SetupData) (json.RawMessage, error)
}

// Backend names one of the two services the client is configured with
type Backend string

const (
	BackendAPI       Backend = "api"
	BackendInference Backend = "inference"
)

// HealthChecker probes a backend for reachability
type HealthChecker interface {
	Ping(ctx context.Context, backend Backend) error
}
