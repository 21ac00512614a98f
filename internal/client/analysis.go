package client

import (
	"context"
	"encoding/json"

	"grammologue/internal/domain"

	"go.uber.org/zap"
)

type analyzeTextRequest struct {
	Text     string  `json:"text"`
	Question *string `json:"question"`
}

// AnalyzeText requests the complete feedback analysis for a transcript.
// When the body is an envelope with status "error" the returned error's message
// is the server message; every other body is returned unchanged.
func (c *Client) AnalyzeText(ctx context.Context, text string, question *string) (json.RawMessage, error) {
	req, requestID := c.request(ctx)
	c.logger.Debug("Calling analyze-text",
		zap.String("request_id", requestID),
		zap.String("text", text),
		zap.Stringp("question", question),
	)

	body, err := c.post("analyze-text", PathAnalyzeText, requestID,
		req.SetBody(analyzeTextRequest{Text: text, Question: question}))
	if err != nil {
		return nil, err
	}

	if env, err := domain.ParseEnvelope(body); err == nil && env.Status == domain.StatusError {
		c.logger.Error("Text analysis reported an error",
			zap.String("request_id", requestID),
			zap.String("message", env.Message),
		)
		return nil, domain.NewServerReportedError(env.Message)
	}

	return json.RawMessage(body), nil
}
