package client

import (
	"context"
	"encoding/json"
	"fmt"

	"grammologue/internal/domain"

	"go.uber.org/zap"
)

const defaultAudioFilename = "recording.webm"

// ProcessAudio uploads a recording as the multipart field "file" and returns the
// server body without inspecting it.
func (c *Client) ProcessAudio(ctx context.Context, audio domain.AudioFile) (json.RawMessage, error) {
	if audio.Content == nil {
		return nil, fmt.Errorf("audio content cannot be nil")
	}
	filename := audio.Filename
	if filename == "" {
		filename = defaultAudioFilename
	}

	req, requestID := c.request(ctx)
	c.logger.Debug("Calling process-audio",
		zap.String("request_id", requestID),
		zap.String("filename", filename),
		zap.String("language", audio.Language),
	)

	req.SetFileReader("file", filename, audio.Content)
	if audio.Language != "" {
		req.SetFormData(map[string]string{"language": audio.Language})
	}

	body, err := c.post("process-audio", PathProcessAudio, requestID, req)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
