package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "format", Message: "unsupported"}
	assert.Equal(t, "validation error: format - unsupported", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrUploadTooLarge(t *testing.T) {
	err := &ErrUploadTooLarge{Limit: 1024}
	assert.Equal(t, "upload exceeds 1024 bytes", err.Error())
	assert.Equal(t, http.StatusRequestEntityTooLarge, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "templateId", Message: "required"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "ErrMissingImage",
			err:      &ErrMissingImage{},
			expected: http.StatusBadRequest,
		},
		{
			name:     "FormatError",
			err:      &export.FormatError{Value: "gif"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped ExportError",
			err:      fmt.Errorf("download: %w", &export.ExportError{Format: "pdf", Message: "print failed"}),
			expected: http.StatusBadGateway,
		},
		{
			name:     "RenderError",
			err:      &rendering.RenderError{Message: "boom"},
			expected: http.StatusInternalServerError,
		},
		{
			name:     "generic error",
			err:      errors.New("something went wrong"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
