package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// backToWizard sends the browser back to the current screen.
func backToWizard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleIndex renders the screen for the current wizard step
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	store := wizard.FromContext(r.Context())

	data, err := s.screens.build(store)
	if err != nil {
		s.errorFor(w, err)
		return
	}
	if sess, err := middleware.GetSession(r); err == nil {
		data.Notice = sess.TakeNotice()
	}

	if err := s.screens.render(w, data); err != nil {
		s.errorFor(w, err)
	}
}

// transition adapts a step transition to a form endpoint. A refused
// transition is a disabled button, so it redirects like an accepted one.
func (s *Server) transition(move func(*wizard.Store) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := wizard.FromContext(r.Context())
		if !move(store) {
			logging.Debug("transition refused", "path", r.URL.Path, "step", store.State().CurrentStep.Name())
		}
		backToWizard(w, r)
	}
}

// handleSelectTemplate selects a catalog template
func (s *Server) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	req := types.SelectTemplateRequest{TemplateID: r.PostFormValue("templateId")}
	if err := req.Validate(); err != nil {
		s.errorFor(w, &ErrValidation{Field: "templateId", Message: "is required"})
		return
	}
	if _, ok := catalog.Lookup(req.TemplateID); !ok {
		s.errorFor(w, &ErrValidation{Field: "templateId", Message: "unknown template " + strconv.Quote(req.TemplateID)})
		return
	}

	wizard.FromContext(r.Context()).SelectTemplate(req.TemplateID)
	backToWizard(w, r)
}

// handlePersonalInfo saves the personal info section and summary
func (s *Server) handlePersonalInfo(w http.ResponseWriter, r *http.Request) {
	store := wizard.FromContext(r.Context())

	form := types.PersonalInfoForm{
		FullName: r.PostFormValue("fullName"),
		Email:    r.PostFormValue("email"),
		Phone:    r.PostFormValue("phone"),
		Location: r.PostFormValue("location"),
		Website:  r.PostFormValue("website"),
		LinkedIn: r.PostFormValue("linkedin"),
		Summary:  r.PostFormValue("summary"),
	}
	store.UpdateDocument(form.Patch())
	backToWizard(w, r)
}

// handleAddEntry appends a default entry to list
func (s *Server) handleAddEntry(list wizard.List) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := wizard.FromContext(r.Context()).Add(list)
		logging.Debug("entry added", "list", list, "id", id)
		backToWizard(w, r)
	}
}

// handleUpdateEntry merges the submitted fields into one entry of list
func (s *Server) handleUpdateEntry(list wizard.List) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := wizard.FromContext(r.Context())
		id := r.PathValue("id")

		switch list {
		case wizard.ListExperience:
			form := types.ExperienceForm{
				JobTitle:    r.PostFormValue("jobTitle"),
				Company:     r.PostFormValue("company"),
				Location:    r.PostFormValue("location"),
				StartDate:   r.PostFormValue("startDate"),
				EndDate:     r.PostFormValue("endDate"),
				Current:     checkbox(r.PostFormValue("current")),
				Description: r.PostFormValue("description"),
			}
			store.UpdateExperience(id, form.Patch())
		case wizard.ListEducation:
			form := types.EducationForm{
				Degree:         r.PostFormValue("degree"),
				School:         r.PostFormValue("school"),
				Location:       r.PostFormValue("location"),
				GraduationDate: r.PostFormValue("graduationDate"),
				GPA:            r.PostFormValue("gpa"),
			}
			store.UpdateEducation(id, form.Patch())
		case wizard.ListSkills:
			form := types.SkillForm{
				Name:  r.PostFormValue("name"),
				Level: r.PostFormValue("level"),
			}
			if err := form.Validate(); err != nil {
				s.errorFor(w, &ErrValidation{Field: "level", Message: "must be one of Beginner, Intermediate, Advanced, Expert"})
				return
			}
			store.UpdateSkill(id, form.Patch())
		}
		backToWizard(w, r)
	}
}

// handleRemoveEntry deletes one entry of list; unknown ids are ignored
func (s *Server) handleRemoveEntry(list wizard.List) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wizard.FromContext(r.Context()).RemoveEntry(list, r.PathValue("id"))
		backToWizard(w, r)
	}
}

func checkbox(v string) bool {
	switch v {
	case "on", "true", "1":
		return true
	}
	return false
}
