package logger

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "regular address", input: "johnathan@example.com", expected: "jo...n@example.com"},
		{name: "short local part", input: "jo@example.com", expected: "**@example.com"},
		{name: "not an address", input: "not-an-email", expected: "no...il"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskEmail(tt.input))
		})
	}
}

func TestMaskEmails(t *testing.T) {
	masked := MaskEmails([]string{"johnathan@example.com", "ab@x.io"})
	assert.Equal(t, []string{"jo...n@example.com", "**@x.io"}, masked)
}

func TestMaskSensitiveString(t *testing.T) {
	assert.Equal(t, "", MaskSensitiveString("", 2, 2))
	assert.Equal(t, "****", MaskSensitiveString("abcd", 2, 2))
	assert.Equal(t, "ab...yz", MaskSensitiveString("abcdefghijklmnopqrstuvwxyz", 2, 2))
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFrom(ctx))
	assert.Equal(t, "", RequestIDFrom(context.Background()))
}

func TestFilterSensitiveHeaders(t *testing.T) {
	headers := http.Header{
		"Authorization": []string{"Bearer abc"},
		"X-Api-Key":     []string{"secret"},
		"Content-Type":  []string{"application/json"},
	}

	filtered := filterSensitiveHeaders(headers)
	assert.Equal(t, "[REDACTED]", filtered["Authorization"])
	assert.Equal(t, "[REDACTED]", filtered["X-Api-Key"])
	assert.Equal(t, "application/json", filtered["Content-Type"])
}
