package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"grammologue/internal/domain"
	"grammologue/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// AssessmentService defines the assessment operations exposed to the gateway and the CLI
type AssessmentService interface {
	GetIdealAnswer(ctx context.Context, question, answer string) (*domain.Envelope, error)
	ProcessAudio(ctx context.Context, audio domain.AudioFile) (json.RawMessage, error)
	AnalyzeText(ctx context.Context, text string, question *string) (json.RawMessage, error)
	CheckAnswer(ctx context.Context, question, answer string) (json.RawMessage, error)
	GenerateQuestions(ctx context.Context, setup domain.SetupData) (json.RawMessage, error)

	// EvaluateResponse runs text analysis, answer checking and the ideal answer
	// lookup for one transcribed answer concurrently.
	EvaluateResponse(ctx context.Context, question, answer string) (*domain.Evaluation, error)

	// Readiness pings both backends.
	Readiness(ctx context.Context) *Readiness
}

// Readiness is the result of probing every configured backend
type Readiness struct {
	Ready    bool              `json:"ready"`
	Backends map[string]string `json:"backends"`
}

const (
	readinessKey = "readiness"
	// readinessTimeout bounds one shared round of backend pings.
	readinessTimeout = 5 * time.Second
)

// assessmentService implements AssessmentService
type assessmentService struct {
	inference domain.InferenceClient
	health    domain.HealthChecker
	sfGroup   singleflight.Group
}

// NewAssessmentService creates a new instance of assessmentService
func NewAssessmentService(inference domain.InferenceClient, health domain.HealthChecker) AssessmentService {
	return &assessmentService{
		inference: inference,
		health:    health,
	}
}

func (s *assessmentService) GetIdealAnswer(ctx context.Context, question, answer string) (*domain.Envelope, error) {
	return s.inference.GetIdealAnswer(ctx, question, answer)
}

func (s *assessmentService) ProcessAudio(ctx context.Context, audio domain.AudioFile) (json.RawMessage, error) {
	return s.inference.ProcessAudio(ctx, audio)
}

func (s *assessmentService) AnalyzeText(ctx context.Context, text string, question *string) (json.RawMessage, error) {
	return s.inference.AnalyzeText(ctx, text, question)
}

func (s *assessmentService) CheckAnswer(ctx context.Context, question, answer string) (json.RawMessage, error) {
	return s.inference.CheckAnswer(ctx, question, answer)
}

func (s *assessmentService) GenerateQuestions(ctx context.Context, setup domain.SetupData) (json.RawMessage, error) {
	return s.inference.GenerateQuestions(ctx, setup)
}

// EvaluateResponse implements AssessmentService. The first failure cancels the
// remaining calls and is returned as is.
func (s *assessmentService) EvaluateResponse(ctx context.Context, question, answer string) (*domain.Evaluation, error) {
	var questionPtr *string
	if strings.TrimSpace(question) != "" {
		questionPtr = &question
	}

	var eval domain.Evaluation
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		analysis, err := s.inference.AnalyzeText(gctx, answer, questionPtr)
		if err != nil {
			return err
		}
		eval.Analysis = analysis
		return nil
	})
	g.Go(func() error {
		correctness, err := s.inference.CheckAnswer(gctx, question, answer)
		if err != nil {
			return err
		}
		eval.Correctness = correctness
		return nil
	})
	g.Go(func() error {
		ideal, err := s.inference.GetIdealAnswer(gctx, question, answer)
		if err != nil {
			return err
		}
		eval.IdealAnswer = ideal
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Get().Error("Failed to evaluate response", zap.Error(err))
		return nil, err
	}
	return &eval, nil
}

// Readiness implements AssessmentService. Concurrent callers share one round of pings,
// which runs detached from the first caller's cancellation.
func (s *assessmentService) Readiness(ctx context.Context) *Readiness {
	res, _, _ := s.sfGroup.Do(readinessKey, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), readinessTimeout)
		defer cancel()

		report := &Readiness{Ready: true, Backends: make(map[string]string, 2)}
		for _, backend := range []domain.Backend{domain.BackendAPI, domain.BackendInference} {
			if err := s.health.Ping(ctx, backend); err != nil {
				report.Ready = false
				report.Backends[string(backend)] = fmt.Sprintf("down: %v", err)
				continue
			}
			report.Backends[string(backend)] = "up"
		}
		return report, nil
	})
	return res.(*Readiness)
}
