// Package schemas embeds the JSON Schemas describing the resume builder's
// file formats.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var files embed.FS

// Resume is the schema file name of a ResumeDocument.
const Resume = "resume.schema.json"

// Load returns the raw contents of the named schema.
func Load(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("schema %s not found: %w", name, err)
	}
	return data, nil
}
