package service

import (
	"context"
	"encoding/json"

	"grammologue/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockInferenceClient ---
type MockInferenceClient struct {
	mock.Mock
}

func (m *MockInferenceClient) GetIdealAnswer(ctx context.Context, question, answer string) (*domain.Envelope, error) {
	args := m.Called(ctx, question, answer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Envelope), args.Error(1)
}

func (m *MockInferenceClient) ProcessAudio(ctx context.Context, audio domain.AudioFile) (json.RawMessage, error) {
	args := m.Called(ctx, audio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockInferenceClient) AnalyzeText(ctx context.Context, text string, question *string) (json.RawMessage, error) {
	args := m.Called(ctx, text, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockInferenceClient) CheckAnswer(ctx context.Context, question, answer string) (json.RawMessage, error) {
	args := m.Called(ctx, question, answer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockInferenceClient) GenerateQuestions(ctx context.Context, setup domain.SetupData) (json.RawMessage, error) {
	args := m.Called(ctx, setup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// --- MockHealthChecker ---
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context, backend domain.Backend) error {
	args := m.Called(ctx, backend)
	return args.Error(0)
}

var (
	_ domain.InferenceClient = (*MockInferenceClient)(nil)
	_ domain.HealthChecker   = (*MockHealthChecker)(nil)
)
