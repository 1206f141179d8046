package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

const defaultTemplateID = "classic-professional"

// loadDocument reads a ResumeDocument JSON file, validates it against the
// resume schema and assigns fresh ids to entries whose id is missing or
// repeats an earlier entry of the same list.
func loadDocument(path string) (types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to read input file: %w", err)
	}
	if err := schemas.ValidateResume(data); err != nil {
		return types.ResumeDocument{}, fmt.Errorf("invalid resume %s: %w", path, err)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	seen := map[string]bool{}
	for i := range doc.Experience {
		doc.Experience[i].ID = uniqueID(doc.Experience[i].ID, seen)
	}
	seen = map[string]bool{}
	for i := range doc.Education {
		doc.Education[i].ID = uniqueID(doc.Education[i].ID, seen)
	}
	seen = map[string]bool{}
	for i := range doc.Skills {
		doc.Skills[i].ID = uniqueID(doc.Skills[i].ID, seen)
		if doc.Skills[i].Level == "" {
			doc.Skills[i].Level = types.DefaultSkillLevel
		}
	}
	return doc, nil
}

func uniqueID(id string, seen map[string]bool) string {
	if id == "" || seen[id] {
		id = uuid.NewString()
	}
	seen[id] = true
	return id
}

// lookupTemplate resolves a catalog id.
func lookupTemplate(id string) (*types.TemplateDescriptor, error) {
	if id == "" {
		id = defaultTemplateID
	}
	t, ok := catalog.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown template %q (see 'resume_builder templates')", id)
	}
	return &t, nil
}
