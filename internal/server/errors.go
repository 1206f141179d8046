// Package server provides the HTTP surface of the resume builder wizard.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrMissingImage indicates an upload request without a file part
type ErrMissingImage struct{}

func (e *ErrMissingImage) Error() string {
	return "no image file in request"
}

// ErrUploadTooLarge indicates an upload body over the configured limit
type ErrUploadTooLarge struct {
	Limit int64
}

func (e *ErrUploadTooLarge) Error() string {
	return fmt.Sprintf("upload exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation *ErrValidation
		missing    *ErrMissingImage
		tooLarge   *ErrUploadTooLarge
		format     *export.FormatError
		exportErr  *export.ExportError
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &missing), errors.As(err, &format):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &exportErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
