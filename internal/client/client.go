package client

import (
	"context"
	"fmt"
	"time"

	"grammologue/internal/config"
	"grammologue/internal/domain"
	"grammologue/internal/util"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Inference service paths
const (
	PathIdealAnswer       = "/get-ideal-answer"
	PathProcessAudio      = "/process-audio"
	PathAnalyzeText       = "/analyze-text"
	PathCheckAnswer       = "/check-answer"
	PathGenerateQuestions = "/generate-questions"
)

// Client is the facade over the general API and the inference service.
// It holds no mutable state after New returns and is safe for concurrent use.
type Client struct {
	api       *resty.Client
	inference *resty.Client
	logger    *zap.Logger
}

// New creates a Client bound to the two base URLs in cfg.
func New(cfg *config.Config, logger *zap.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("client config cannot be nil")
	}
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api base URL cannot be empty")
	}
	if cfg.Inference.BaseURL == "" {
		return nil, fmt.Errorf("inference base URL cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		api:       newRestyClient(cfg.API.BaseURL, cfg.HTTP.Timeout, logger),
		inference: newRestyClient(cfg.Inference.BaseURL, cfg.HTTP.Timeout, logger),
		logger:    logger,
	}, nil
}

func newRestyClient(baseURL string, timeout time.Duration, logger *zap.Logger) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout).
		SetLogger(logger.Sugar())
}

// API returns the HTTP client bound to the general API base URL.
func (c *Client) API() *resty.Client {
	return c.api
}

// Inference returns the HTTP client bound to the inference service base URL.
func (c *Client) Inference() *resty.Client {
	return c.inference
}

func (c *Client) request(ctx context.Context) (*resty.Request, string) {
	requestID := util.RequestIDFromContext(ctx)
	return c.inference.R().
		SetContext(ctx).
		SetHeader(util.RequestIDHeader, requestID), requestID
}

// post sends req to path and returns the raw body of a 2xx response.
// Transport errors are returned unchanged; non-2xx responses become *domain.UpstreamError.
func (c *Client) post(operation, path, requestID string, req *resty.Request) ([]byte, error) {
	log := c.logger.With(
		zap.String("operation", operation),
		zap.String("request_id", requestID),
	)

	resp, err := req.Post(path)
	if err != nil {
		log.Error("Inference request failed", zap.Error(err))
		return nil, err
	}

	if resp.IsError() {
		upstreamErr := &domain.UpstreamError{
			Operation:  operation,
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
		}
		log.Error("Inference service returned an error status",
			zap.Int("status", resp.StatusCode()),
			zap.ByteString("body", resp.Body()),
		)
		return nil, upstreamErr
	}

	log.Debug("Inference response received",
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", resp.Time()),
		zap.ByteString("body", resp.Body()),
	)
	return resp.Body(), nil
}

var _ domain.InferenceClient = (*Client)(nil)
