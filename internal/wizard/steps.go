package wizard

import "github.com/jonathan/resume-builder/internal/types"

// Step is a wizard screen.
type Step int

const (
	StepWelcome Step = iota
	StepTemplateSelect
	StepDetailsForm
	StepPreview
)

// Steps lists the wizard screens in display order.
var Steps = []Step{StepWelcome, StepTemplateSelect, StepDetailsForm, StepPreview}

// NormalizeStep maps an arbitrary integer onto a Step; out-of-range values fall back to Welcome.
func NormalizeStep(n int) Step {
	if n < int(StepWelcome) || n > int(StepPreview) {
		return StepWelcome
	}
	return Step(n)
}

// Name is the short label shown in the progress bar.
func (s Step) Name() string {
	switch s {
	case StepTemplateSelect:
		return "Template"
	case StepDetailsForm:
		return "Details"
	case StepPreview:
		return "Preview"
	default:
		return "Welcome"
	}
}

func (s Step) String() string {
	return s.Name()
}

// FormValid reports whether the document may advance to the preview. Skills
// and summary are never required.
func FormValid(doc types.ResumeDocument) bool {
	return doc.PersonalInfo.FullName != "" &&
		doc.PersonalInfo.Email != "" &&
		len(doc.Experience) > 0 &&
		len(doc.Education) > 0
}

// Transitions. Each one applies only from its source step and, where guarded,
// only while its guard holds. A refused transition changes nothing and
// returns false; it is a disabled button, not an error.

// Start moves from Welcome to the template picker.
func (s *Store) Start() bool {
	return s.transition(StepWelcome, StepTemplateSelect, nil)
}

// BackToWelcome returns from the template picker to the welcome screen.
func (s *Store) BackToWelcome() bool {
	return s.transition(StepTemplateSelect, StepWelcome, nil)
}

// ContinueToDetails moves to the details form once a template is selected.
func (s *Store) ContinueToDetails() bool {
	return s.transition(StepTemplateSelect, StepDetailsForm, func() bool {
		return s.selected != nil
	})
}

// BackToTemplates returns from the details form to the template picker.
func (s *Store) BackToTemplates() bool {
	return s.transition(StepDetailsForm, StepTemplateSelect, nil)
}

// ContinueToPreview moves to the preview once the document is FormValid.
func (s *Store) ContinueToPreview() bool {
	return s.transition(StepDetailsForm, StepPreview, func() bool {
		return FormValid(s.doc)
	})
}

// Edit returns from the preview to the details form.
func (s *Store) Edit() bool {
	return s.transition(StepPreview, StepDetailsForm, nil)
}

// StartOver resets the whole session from the preview screen.
func (s *Store) StartOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if NormalizeStep(int(s.step)) != StepPreview {
		return false
	}
	s.resetLocked()
	return true
}

// CanContinueToDetails reports whether ContinueToDetails would succeed.
func (s *Store) CanContinueToDetails() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected != nil
}

// CanContinueToPreview reports whether ContinueToPreview would succeed.
func (s *Store) CanContinueToPreview() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FormValid(s.doc)
}

func (s *Store) transition(from, to Step, guard func() bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if NormalizeStep(int(s.step)) != from {
		return false
	}
	if guard != nil && !guard() {
		return false
	}
	s.step = to
	return true
}

// StepStatus is how a step appears in the progress bar.
type StepStatus string

const (
	StatusDone    StepStatus = "done"
	StatusCurrent StepStatus = "current"
	StatusPending StepStatus = "pending"
)

// ProgressItem is one entry of the progress bar.
type ProgressItem struct {
	Step   Step       `json:"step"`
	Name   string     `json:"name"`
	Status StepStatus `json:"status"`
}

// Progress describes the progress bar for current. It is nil on the welcome
// screen, which shows no progress bar.
func Progress(current Step) []ProgressItem {
	current = NormalizeStep(int(current))
	if current == StepWelcome {
		return nil
	}
	items := make([]ProgressItem, 0, len(Steps))
	for _, st := range Steps {
		status := StatusPending
		switch {
		case st == current:
			status = StatusCurrent
		case st < current:
			status = StatusDone
		}
		items = append(items, ProgressItem{Step: st, Name: st.Name(), Status: status})
	}
	return items
}
