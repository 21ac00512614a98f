package client

import (
	"context"
	"encoding/json"

	"grammologue/internal/domain"

	"go.uber.org/zap"
)

// GenerateQuestions forwards setup as the request body and returns the server body unchanged.
func (c *Client) GenerateQuestions(ctx context.Context, setup domain.SetupData) (json.RawMessage, error) {
	req, requestID := c.request(ctx)
	c.logger.Debug("Calling generate-questions",
		zap.String("request_id", requestID),
		zap.Any("setup", setup),
	)

	body, err := c.post("generate-questions", PathGenerateQuestions, requestID, req.SetBody(setup))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
