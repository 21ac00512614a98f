package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NewServerReportedError("transcript is empty")
		assert.Equal(t, "transcript is empty", err.Error())
		assert.Equal(t, CodeServerReported, err.Code)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewInternalError("failed to decode", cause)
		assert.Equal(t, "failed to decode: boom", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("marshal hides cause", func(t *testing.T) {
		err := NewInternalError("failed", errors.New("secret"))
		data, mErr := json.Marshal(err)
		assert.NoError(t, mErr)
		assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"failed"}`, string(data))
	})

	t.Run("context details", func(t *testing.T) {
		err := NewInvalidInputError("bad setup").WithContext("field", "setup")
		assert.Equal(t, "setup", err.Context["field"])
	})
}

func TestUpstreamError_Detail(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
		wantError  string
	}{
		{
			name:       "fastapi detail string",
			body:       `{"detail":"Both question and answer are required"}`,
			wantDetail: "Both question and answer are required",
			wantError:  "check-answer failed: HTTP 400: Both question and answer are required",
		},
		{
			name:       "fastapi validation list",
			body:       `{"detail":[{"loc":["body","text"],"msg":"field required"}]}`,
			wantDetail: `[{"loc":["body","text"],"msg":"field required"}]`,
			wantError:  `check-answer failed: HTTP 400: [{"loc":["body","text"],"msg":"field required"}]`,
		},
		{
			name:       "envelope message",
			body:       `{"status":"error","message":"model unavailable"}`,
			wantDetail: "model unavailable",
			wantError:  "check-answer failed: HTTP 400: model unavailable",
		},
		{
			name:       "plain text",
			body:       "  Internal Server Error\n",
			wantDetail: "Internal Server Error",
			wantError:  "check-answer failed: HTTP 400: Internal Server Error",
		},
		{
			name:       "empty body",
			body:       "",
			wantDetail: "",
			wantError:  "check-answer failed: HTTP 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &UpstreamError{Operation: "check-answer", StatusCode: 400, Body: []byte(tt.body)}
			assert.Equal(t, tt.wantDetail, err.Detail())
			assert.Equal(t, tt.wantError, err.Error())
		})
	}
}

func TestEnvelope_HasData(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"object data", `{"status":"success","data":{"ideal_answer":"x"}}`, true},
		{"array data", `{"status":"success","data":[]}`, true},
		{"text data", `{"status":"success","data":"ok"}`, true},
		{"empty string data", `{"status":"success","data":""}`, false},
		{"zero data", `{"status":"success","data":0}`, false},
		{"false data", `{"status":"success","data":false}`, false},
		{"null data", `{"status":"success","data":null}`, false},
		{"missing data", `{"status":"success"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var env Envelope
			assert.NoError(t, json.Unmarshal([]byte(tt.raw), &env))
			assert.Equal(t, tt.want, env.HasData())
		})
	}
}

func TestEnvelope_DecodeData(t *testing.T) {
	env := Envelope{
		Status: StatusSuccess,
		Data:   json.RawMessage(`{"ideal_answer":"I go to school.","user_strengths":"clear","areas_for_improvement":"tense"}`),
	}

	var ideal IdealAnswer
	assert.NoError(t, env.DecodeData(&ideal))
	assert.Equal(t, "I go to school.", ideal.IdealAnswer)
	assert.Equal(t, "clear", ideal.UserStrengths)
	assert.Equal(t, "tense", ideal.AreasForImprovement)

	empty := Envelope{Status: StatusSuccess}
	assert.Error(t, empty.DecodeData(&ideal))
}

func TestParseEnvelope(t *testing.T) {
	body := []byte(`{"status":"success","data":{"ideal_answer":"x"},"extra":1}`)

	env, err := ParseEnvelope(body)
	assert.NoError(t, err)
	assert.Equal(t, StatusSuccess, env.Status)
	assert.JSONEq(t, `{"ideal_answer":"x"}`, string(env.Data))

	raw, err := env.Body()
	assert.NoError(t, err)
	assert.Equal(t, string(body), string(raw))

	_, err = ParseEnvelope([]byte("<html>"))
	assert.Error(t, err)

	_, err = ParseEnvelope([]byte("null"))
	assert.Error(t, err)

	env, err = ParseEnvelope([]byte(`{"Status":"success","DATA":{"x":1},"message":{"detail":"d"}}`))
	assert.NoError(t, err)
	assert.Empty(t, env.Status)
	assert.Empty(t, env.Data)
	assert.Equal(t, `{"detail":"d"}`, env.Message)

	env, err = ParseEnvelope([]byte(`{"status":1,"data":"yes","message":"m"}`))
	assert.NoError(t, err)
	assert.Empty(t, env.Status)
	assert.True(t, env.HasData())
	assert.Equal(t, "m", env.Message)

	built := &Envelope{Status: StatusError, Message: "nope"}
	raw, err = built.Body()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","message":"nope"}`, string(raw))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		NewMissingFieldError("question"),
		NewInvalidFormatError("setup", "must be a JSON object"),
	}
	assert.Equal(t, "question is required; setup must be a JSON object", errs.Error())
	assert.Equal(t, CodeMissingField, errs[0].Code)
	assert.Equal(t, "setup", errs[1].Field)
}
