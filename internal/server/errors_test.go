package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "body", Message: "resume_content is required"}
	assert.Equal(t, "validation error: body - resume_content is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrMalformedBody(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &ErrMalformedBody{Cause: cause}
	assert.Equal(t, "malformed request body: unexpected end of JSON input", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "validation error",
			err:      &ErrValidation{Field: "url", Message: "must be a valid URL"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "malformed body",
			err:      &ErrMalformedBody{Cause: assert.AnError},
			expected: http.StatusBadRequest,
		},
		{
			name:     "fetch error",
			err:      &fetch.Error{URL: "https://example.com/job", Message: "request failed"},
			expected: http.StatusBadGateway,
		},
		{
			name:     "wrapped fetch error",
			err:      errors.Join(errors.New("upstream"), &fetch.Error{URL: "https://example.com", Message: "timeout"}),
			expected: http.StatusBadGateway,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
