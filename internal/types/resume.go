// Package types provides the data model shared by the wizard, renderers and HTTP layer.
package types

// PersonalInfo holds the contact block of a resume.
// Only FullName and Email take part in the form validity check.
type PersonalInfo struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Website      string `json:"website,omitempty"`
	LinkedIn     string `json:"linkedin,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"` // data URL or empty
}

// ExperienceEntry is one job in the work history.
// When Current is true EndDate is ignored.
type ExperienceEntry struct {
	ID          string `json:"id"`
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationEntry is one degree or program.
type EducationEntry struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	School         string `json:"school"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
}

// SkillEntry is a named skill with a proficiency level.
type SkillEntry struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// ResumeDocument is the aggregate edited by the wizard.
// The zero value is the empty document a session starts with.
type ResumeDocument struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Summary      string            `json:"summary"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       []SkillEntry      `json:"skills"`
}

// Clone returns a deep copy so callers never alias the store's slices.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.Experience = append([]ExperienceEntry(nil), d.Experience...)
	out.Education = append([]EducationEntry(nil), d.Education...)
	out.Skills = append([]SkillEntry(nil), d.Skills...)
	return out
}

// DocumentPatch is a shallow partial update of a ResumeDocument.
// Nil fields are left untouched; non-nil list fields replace the whole list.
type DocumentPatch struct {
	PersonalInfo *PersonalInfo
	// PersonalFields merges individual personal info fields after
	// PersonalInfo is applied. It never touches the profile image.
	PersonalFields *PersonalInfoPatch
	Summary      *string
	Experience   []ExperienceEntry
	Education    []EducationEntry
	Skills       []SkillEntry
}

// PersonalInfoPatch updates the text fields of PersonalInfo. The profile
// image belongs to the upload slot and has no field here.
type PersonalInfoPatch struct {
	FullName *string
	Email    *string
	Phone    *string
	Location *string
	Website  *string
	LinkedIn *string
}

// Apply merges the non-nil fields into info.
func (p PersonalInfoPatch) Apply(info PersonalInfo) PersonalInfo {
	setString(&info.FullName, p.FullName)
	setString(&info.Email, p.Email)
	setString(&info.Phone, p.Phone)
	setString(&info.Location, p.Location)
	setString(&info.Website, p.Website)
	setString(&info.LinkedIn, p.LinkedIn)
	return info
}

// ExperiencePatch updates selected fields of an ExperienceEntry.
type ExperiencePatch struct {
	JobTitle    *string
	Company     *string
	Location    *string
	StartDate   *string
	EndDate     *string
	Current     *bool
	Description *string
}

// Apply merges the non-nil fields into e.
func (p ExperiencePatch) Apply(e ExperienceEntry) ExperienceEntry {
	setString(&e.JobTitle, p.JobTitle)
	setString(&e.Company, p.Company)
	setString(&e.Location, p.Location)
	setString(&e.StartDate, p.StartDate)
	setString(&e.EndDate, p.EndDate)
	setString(&e.Description, p.Description)
	if p.Current != nil {
		e.Current = *p.Current
	}
	return e
}

// EducationPatch updates selected fields of an EducationEntry.
type EducationPatch struct {
	Degree         *string
	School         *string
	Location       *string
	GraduationDate *string
	GPA            *string
}

// Apply merges the non-nil fields into e.
func (p EducationPatch) Apply(e EducationEntry) EducationEntry {
	setString(&e.Degree, p.Degree)
	setString(&e.School, p.School)
	setString(&e.Location, p.Location)
	setString(&e.GraduationDate, p.GraduationDate)
	setString(&e.GPA, p.GPA)
	return e
}

// SkillPatch updates selected fields of a SkillEntry.
type SkillPatch struct {
	Name  *string
	Level *SkillLevel
}

// Apply merges the non-nil fields into s.
func (p SkillPatch) Apply(s SkillEntry) SkillEntry {
	setString(&s.Name, p.Name)
	if p.Level != nil {
		s.Level = *p.Level
	}
	return s
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Ptr returns a pointer to v. Handy for building patches.
func Ptr[T any](v T) *T {
	return &v
}
