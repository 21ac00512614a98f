package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Envelope statuses reported by the inference service
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the {status, data, message} wrapper some inference endpoints respond with.
type Envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`

	// Raw is the response body the envelope was decoded from, when known.
	Raw json.RawMessage `json:"-"`
}

// ParseEnvelope reads the exact keys "status", "data" and "message" from a JSON
// object and keeps body as Raw. Other members, differently cased keys included,
// are ignored. Status is set only when it is a JSON string. Message is the string
// value, or the raw JSON text when message is not a string.
func ParseEnvelope(body []byte) (*Envelope, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, err
	}
	if members == nil {
		return nil, fmt.Errorf("envelope is not a JSON object")
	}

	env := &Envelope{
		Data: members["data"],
		Raw:  json.RawMessage(body),
	}
	if status, ok := members["status"]; ok {
		_ = json.Unmarshal(status, &env.Status)
	}
	if message, ok := members["message"]; ok {
		if err := json.Unmarshal(message, &env.Message); err != nil {
			env.Message = string(bytes.TrimSpace(message))
		}
	}
	return env, nil
}

// HasData reports whether the data member is present and not an empty value
// (null, false, 0 or "").
func (e *Envelope) HasData() bool {
	trimmed := bytes.TrimSpace(e.Data)
	if len(trimmed) == 0 {
		return false
	}
	var v interface{}
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return false
	}
	switch data := v.(type) {
	case nil:
		return false
	case bool:
		return data
	case float64:
		return data != 0
	case string:
		return data != ""
	}
	return true
}

// Body returns the original response body, or the re-encoded envelope when it was built in memory.
func (e *Envelope) Body() (json.RawMessage, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}
	return json.Marshal(e)
}

// DecodeData unmarshals the data member into v.
func (e *Envelope) DecodeData(v interface{}) error {
	if !e.HasData() {
		return fmt.Errorf("envelope has no data")
	}
	return json.Unmarshal(e.Data, v)
}

// AudioFile is an uploaded recording. It is sent as the multipart field "file".
type AudioFile struct {
	Filename string
	Content  io.Reader
	// Language is optional; the inference service assumes English when it is empty.
	Language string
}

// SetupData is the opaque assessment setup forwarded to /generate-questions.
type SetupData map[string]interface{}

// IdealAnswer is the data member of a successful /get-ideal-answer envelope.
type IdealAnswer struct {
	IdealAnswer         string `json:"ideal_answer"`
	UserStrengths       string `json:"user_strengths"`
	AreasForImprovement string `json:"areas_for_improvement"`
}

// CorrectnessResult is the body returned by /check-answer.
type CorrectnessResult struct {
	Score          float64 `json:"score"`
	RelevanceScore float64 `json:"relevance_score"`
	QualityScore   float64 `json:"quality_score"`
	Feedback       string  `json:"feedback"`
	Suggestions    string  `json:"suggestions"`
	Remark         string  `json:"remark"`
}

// QuestionSet is the body returned by /generate-questions.
type QuestionSet struct {
	Questions []string `json:"questions"`
}

// Evaluation groups the three inference results produced for one spoken answer.
type Evaluation struct {
	Analysis    json.RawMessage `json:"analysis"`
	Correctness json.RawMessage `json:"correctness"`
	IdealAnswer *Envelope       `json:"ideal_answer"`
}
