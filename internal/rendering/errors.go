// Package rendering turns a resume document into HTML using one of the four
// template layouts.
package rendering

import "fmt"

// TemplateError represents an error parsing or executing a layout template.
type TemplateError struct {
	Layout  string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error (%s): %s: %v", e.Layout, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error (%s): %s", e.Layout, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
