// Package wizard owns the state of one resume-building session: the resume
// document, the current wizard step and the selected template.
//
// A Store is created per session and passed explicitly to whoever needs it.
// Every method is synchronous and takes the store lock, so a read issued after
// a write always observes it.
package wizard

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/types"
)

// List identifies one of the repeatable entry lists of a document.
type List string

const (
	ListExperience List = "experience"
	ListEducation  List = "education"
	ListSkills     List = "skills"
)

// ParseList maps a URL segment to a List.
func ParseList(s string) (List, bool) {
	switch List(s) {
	case ListExperience, ListEducation, ListSkills:
		return List(s), true
	}
	return "", false
}

// State is a snapshot of the wizard's navigation state.
type State struct {
	CurrentStep      Step                      `json:"currentStep"`
	SelectedTemplate *types.TemplateDescriptor `json:"selectedTemplate"`
}

// Store holds the resume document and wizard state for a single session.
type Store struct {
	mu       sync.Mutex
	doc      types.ResumeDocument
	step     Step
	selected *types.TemplateDescriptor

	// image upload slot
	uploadGen uint64
	uploadErr error

	newID func() string
}

// NewStore returns a store holding the empty document on the Welcome step.
func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// Document returns a copy of the current resume document.
func (s *Store) Document() types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// State returns the current step and selected template.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Store) stateLocked() State {
	st := State{CurrentStep: NormalizeStep(int(s.step))}
	if s.selected != nil {
		t := *s.selected
		st.SelectedTemplate = &t
	}
	return st
}

// UpdateDocument shallow-merges patch into the document. List fields in the
// patch replace the stored list wholesale; the store does not diff them.
func (s *Store) UpdateDocument(patch types.DocumentPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyLocked(patch)
}

func (s *Store) applyLocked(patch types.DocumentPatch) {
	if patch.PersonalInfo != nil {
		s.doc.PersonalInfo = *patch.PersonalInfo
	}
	if patch.PersonalFields != nil {
		s.doc.PersonalInfo = patch.PersonalFields.Apply(s.doc.PersonalInfo)
	}
	if patch.Summary != nil {
		s.doc.Summary = *patch.Summary
	}
	if patch.Experience != nil {
		s.doc.Experience = append([]types.ExperienceEntry(nil), patch.Experience...)
	}
	if patch.Education != nil {
		s.doc.Education = append([]types.EducationEntry(nil), patch.Education...)
	}
	if patch.Skills != nil {
		s.doc.Skills = append([]types.SkillEntry(nil), patch.Skills...)
	}
}

// AddExperience appends an empty experience entry and returns its id.
func (s *Store) AddExperience() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.uniqueIDLocked(ListExperience)
	s.doc.Experience = append(s.doc.Experience, types.ExperienceEntry{ID: id})
	return id
}

// AddEducation appends an empty education entry and returns its id.
func (s *Store) AddEducation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.uniqueIDLocked(ListEducation)
	s.doc.Education = append(s.doc.Education, types.EducationEntry{ID: id})
	return id
}

// AddSkill appends a skill at the default level and returns its id.
func (s *Store) AddSkill() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.uniqueIDLocked(ListSkills)
	s.doc.Skills = append(s.doc.Skills, types.SkillEntry{ID: id, Level: types.DefaultSkillLevel})
	return id
}

// Add appends a default entry to the named list.
func (s *Store) Add(list List) (string, bool) {
	switch list {
	case ListExperience:
		return s.AddExperience(), true
	case ListEducation:
		return s.AddEducation(), true
	case ListSkills:
		return s.AddSkill(), true
	}
	return "", false
}

// UpdateExperience merges patch into the entry with the given id.
// It is a no-op when no entry matches.
func (s *Store) UpdateExperience(id string, patch types.ExperiencePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Experience {
		if s.doc.Experience[i].ID == id {
			s.doc.Experience[i] = patch.Apply(s.doc.Experience[i])
			return
		}
	}
}

// UpdateEducation merges patch into the entry with the given id.
// It is a no-op when no entry matches.
func (s *Store) UpdateEducation(id string, patch types.EducationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Education {
		if s.doc.Education[i].ID == id {
			s.doc.Education[i] = patch.Apply(s.doc.Education[i])
			return
		}
	}
}

// UpdateSkill merges patch into the entry with the given id.
// It is a no-op when no entry matches.
func (s *Store) UpdateSkill(id string, patch types.SkillPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Skills {
		if s.doc.Skills[i].ID == id {
			s.doc.Skills[i] = patch.Apply(s.doc.Skills[i])
			return
		}
	}
}

// RemoveEntry deletes the entry with the given id from list.
// Removing an absent id leaves the list unchanged.
func (s *Store) RemoveEntry(list List, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch list {
	case ListExperience:
		s.doc.Experience = without(s.doc.Experience, func(e types.ExperienceEntry) bool { return e.ID == id })
	case ListEducation:
		s.doc.Education = without(s.doc.Education, func(e types.EducationEntry) bool { return e.ID == id })
	case ListSkills:
		s.doc.Skills = without(s.doc.Skills, func(e types.SkillEntry) bool { return e.ID == id })
	}
}

// SelectTemplate makes the catalog entry with the given id the active
// template. Ids outside the catalog are rejected and leave the selection as is.
func (s *Store) SelectTemplate(id string) bool {
	tmpl, ok := catalog.Lookup(id)
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &tmpl
	return true
}

// SelectedTemplate returns a copy of the active template, or nil.
func (s *Store) SelectedTemplate() *types.TemplateDescriptor {
	return s.State().SelectedTemplate
}

// Reset restores the empty document, the Welcome step and no selection in a
// single critical section. Any image upload still in flight becomes stale.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Store) resetLocked() {
	s.doc = types.ResumeDocument{}
	s.step = StepWelcome
	s.selected = nil
	s.uploadGen++
	s.uploadErr = nil
}

func (s *Store) uniqueIDLocked(list List) string {
	for {
		id := s.newID()
		if !s.hasIDLocked(list, id) {
			return id
		}
	}
}

func (s *Store) hasIDLocked(list List, id string) bool {
	switch list {
	case ListExperience:
		for _, e := range s.doc.Experience {
			if e.ID == id {
				return true
			}
		}
	case ListEducation:
		for _, e := range s.doc.Education {
			if e.ID == id {
				return true
			}
		}
	case ListSkills:
		for _, e := range s.doc.Skills {
			if e.ID == id {
				return true
			}
		}
	}
	return false
}

func without[T any](entries []T, match func(T) bool) []T {
	out := entries[:0:0]
	for _, e := range entries {
		if !match(e) {
			out = append(out, e)
		}
	}
	return out
}
