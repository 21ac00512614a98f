package client

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// CheckAnswer scores an answer's relevance and quality. The body is not validated.
func (c *Client) CheckAnswer(ctx context.Context, question, answer string) (json.RawMessage, error) {
	req, requestID := c.request(ctx)
	c.logger.Debug("Calling check-answer",
		zap.String("request_id", requestID),
		zap.String("question", question),
		zap.String("answer", answer),
	)

	body, err := c.post("check-answer", PathCheckAnswer, requestID,
		req.SetBody(questionAnswerRequest{Question: question, Answer: answer}))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
