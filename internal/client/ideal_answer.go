package client

import (
	"context"

	"grammologue/internal/domain"

	"go.uber.org/zap"
)

type questionAnswerRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GetIdealAnswer asks the inference service for a corrected answer and a
// strengths/improvements analysis. The envelope is returned only when it reports
// success and carries data; any other shape is an INVALID_RESPONSE error.
func (c *Client) GetIdealAnswer(ctx context.Context, question, answer string) (*domain.Envelope, error) {
	req, requestID := c.request(ctx)
	c.logger.Debug("Calling get-ideal-answer",
		zap.String("request_id", requestID),
		zap.String("question", question),
		zap.String("answer", answer),
	)

	body, err := c.post("get-ideal-answer", PathIdealAnswer, requestID,
		req.SetBody(questionAnswerRequest{Question: question, Answer: answer}))
	if err != nil {
		return nil, err
	}

	env, err := domain.ParseEnvelope(body)
	if err == nil && env.Status == domain.StatusSuccess && env.HasData() {
		return env, nil
	}

	c.logger.Error("Invalid ideal answer response",
		zap.String("request_id", requestID),
		zap.ByteString("body", body),
	)
	return nil, domain.NewInvalidResponseError(domain.MsgInvalidIdealAnswer)
}
