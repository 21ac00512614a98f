package client

import (
	"context"
	"fmt"

	"grammologue/internal/domain"
	"grammologue/internal/util"

	"go.uber.org/zap"
)

// Ping issues GET / against the selected backend and returns nil on a 2xx answer.
func (c *Client) Ping(ctx context.Context, backend domain.Backend) error {
	var rc = c.inference
	switch backend {
	case domain.BackendAPI:
		rc = c.api
	case domain.BackendInference:
	default:
		return fmt.Errorf("unknown backend: %s", backend)
	}

	requestID := util.RequestIDFromContext(ctx)
	resp, err := rc.R().
		SetContext(ctx).
		SetHeader(util.RequestIDHeader, requestID).
		Get("/")
	if err != nil {
		c.logger.Warn("Ping failed", zap.String("backend", string(backend)), zap.Error(err))
		return err
	}
	if resp.IsError() {
		return &domain.UpstreamError{
			Operation:  "ping " + string(backend),
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
		}
	}
	return nil
}

var _ domain.HealthChecker = (*Client)(nil)
