package util

import (
	"github.com/oklog/ulid/v2"
)

// RequestIDHeader carries the correlation id between the gateway, the client and the inference service.
const RequestIDHeader = "X-Request-ID"

// NewRequestID generates a new ULID string.
// ulid.Make draws from a process-wide monotonic entropy source and is safe for concurrent use.
func NewRequestID() string {
	return ulid.Make().String()
}

// IsRequestID reports whether s parses as a ULID.
func IsRequestID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
