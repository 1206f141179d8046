package server

import (
	"net/http"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// StateResponse is the JSON snapshot of a session's wizard
type StateResponse struct {
	Step             wizard.Step               `json:"step"`
	StepName         string                    `json:"stepName"`
	SelectedTemplate *types.TemplateDescriptor `json:"selectedTemplate"`
	Document         types.ResumeDocument      `json:"document"`
	FormValid        bool                      `json:"formValid"`
	Progress         []wizard.ProgressItem     `json:"progress,omitempty"`
	UploadError      string                    `json:"uploadError,omitempty"`
}

// handleState returns the caller's wizard state
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	store := wizard.FromContext(r.Context())
	st := store.State()
	doc := store.Document()

	resp := StateResponse{
		Step:             st.CurrentStep,
		StepName:         st.CurrentStep.Name(),
		SelectedTemplate: st.SelectedTemplate,
		Document:         doc,
		FormValid:        wizard.FormValid(doc),
		Progress:         wizard.Progress(st.CurrentStep),
	}
	if err := store.UploadError(); err != nil {
		resp.UploadError = err.Error()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleTemplates returns the catalog grouped by category
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, catalog.Grouped())
}
