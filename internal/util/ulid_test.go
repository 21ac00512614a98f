package util

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewRequestID()
		assert.Len(t, id, 26)
		assert.True(t, IsRequestID(id))
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestIsRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"valid", "01ARZ3NDEKTSV4RRFFQ69G5FAV", true},
		{"too short", "01ARZ3NDEK", false},
		{"invalid character", "01ARZ3NDEKTSV4RRFFQ69G5FAU!", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRequestID(tt.id))
		})
	}
}

func TestRequestIDFromContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", RequestIDFromContext(ctx))

	generated := RequestIDFromContext(context.Background())
	assert.True(t, IsRequestID(generated))
}
