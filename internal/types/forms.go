package types

import (
	"github.com/go-playground/validator/v10"
)

// Form and request payloads decoded by the HTTP layer. The validate tags only
// check shape (enumerations, presence of a selector); content fields stay free
// text because the wizard performs no format validation.

var validate = validator.New()

// PersonalInfoForm carries the personal info section plus the summary.
type PersonalInfoForm struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	Summary  string `json:"summary"`
}

// Patch converts the form into a document patch. The profile image is left
// out so a concurrent upload is never overwritten.
func (f *PersonalInfoForm) Patch() DocumentPatch {
	return DocumentPatch{
		PersonalFields: &PersonalInfoPatch{
			FullName: Ptr(f.FullName),
			Email:    Ptr(f.Email),
			Phone:    Ptr(f.Phone),
			Location: Ptr(f.Location),
			Website:  Ptr(f.Website),
			LinkedIn: Ptr(f.LinkedIn),
		},
		Summary: Ptr(f.Summary),
	}
}

// SelectTemplateRequest names the catalog entry picked on the template screen.
type SelectTemplateRequest struct {
	TemplateID string `json:"templateId" validate:"required"`
}

// Validate validates the SelectTemplateRequest using the validator.
func (r *SelectTemplateRequest) Validate() error {
	return validate.Struct(r)
}

// SkillForm edits one skill entry.
type SkillForm struct {
	Name  string `json:"name"`
	Level string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
}

// Validate validates the SkillForm using the validator.
func (f *SkillForm) Validate() error {
	return validate.Struct(f)
}

// Patch converts the form into a skill patch. An empty level leaves the level unchanged.
func (f *SkillForm) Patch() SkillPatch {
	p := SkillPatch{Name: Ptr(f.Name)}
	if f.Level != "" {
		p.Level = Ptr(SkillLevel(f.Level))
	}
	return p
}

// ExperienceForm edits one experience entry. Current arrives as a checkbox.
type ExperienceForm struct {
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Patch converts the form into an experience patch. While Current is set the
// end date input is disabled in the browser and therefore not submitted, so
// the stored end date is left alone.
func (f *ExperienceForm) Patch() ExperiencePatch {
	p := ExperiencePatch{
		JobTitle:    Ptr(f.JobTitle),
		Company:     Ptr(f.Company),
		Location:    Ptr(f.Location),
		StartDate:   Ptr(f.StartDate),
		Current:     Ptr(f.Current),
		Description: Ptr(f.Description),
	}
	if !f.Current {
		p.EndDate = Ptr(f.EndDate)
	}
	return p
}

// EducationForm edits one education entry.
type EducationForm struct {
	Degree         string `json:"degree"`
	School         string `json:"school"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
}

// Patch converts the form into an education patch.
func (f *EducationForm) Patch() EducationPatch {
	return EducationPatch{
		Degree:         Ptr(f.Degree),
		School:         Ptr(f.School),
		Location:       Ptr(f.Location),
		GraduationDate: Ptr(f.GraduationDate),
		GPA:            Ptr(f.GPA),
	}
}

// ExportRequest names the requested download format.
type ExportRequest struct {
	Format string `json:"format" validate:"required,oneof=pdf png jpeg jpg document-print raster-png raster-jpeg raster-jpg"`
}

// Validate validates the ExportRequest using the validator.
func (r *ExportRequest) Validate() error {
	return validate.Struct(r)
}
