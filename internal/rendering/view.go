package rendering

import (
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// view is what the layout templates execute against. Dates are already
// formatted and skill levels already mapped, so templates stay declarative.
type view struct {
	Name         string
	Initials     string
	Email        string
	Phone        string
	Location     string
	Website      string
	LinkedIn     string
	ProfileImage template.URL
	HasContact   bool

	Summary    string
	Experience []experienceView
	Education  []educationView
	Skills     []skillView
}

type experienceView struct {
	JobTitle    string
	Company     string
	Location    string
	Dates       string
	Description string
}

type educationView struct {
	Degree    string
	School    string
	Location  string
	Graduated string
	GPA       string
}

type skillView struct {
	Name  string
	Level string
	Width string // modern bar
	Stars []bool // creative star row
	Dots  []bool // traditional dot row
}

func buildView(doc types.ResumeDocument, style DateStyle) view {
	info := doc.PersonalInfo
	v := view{
		Name:         info.FullName,
		Initials:     Initials(info.FullName),
		Email:        info.Email,
		Phone:        info.Phone,
		Location:     info.Location,
		Website:      info.Website,
		LinkedIn:     info.LinkedIn,
		ProfileImage: ImageURL(info.ProfileImage),
		Summary:      strings.TrimSpace(doc.Summary),
	}
	v.HasContact = v.Email != "" || v.Phone != "" || v.Location != "" || v.Website != "" || v.LinkedIn != ""

	for _, e := range doc.Experience {
		v.Experience = append(v.Experience, experienceView{
			JobTitle:    e.JobTitle,
			Company:     e.Company,
			Location:    e.Location,
			Dates:       DateRange(e.StartDate, e.EndDate, e.Current, style),
			Description: e.Description,
		})
	}
	for _, e := range doc.Education {
		v.Education = append(v.Education, educationView{
			Degree:    e.Degree,
			School:    e.School,
			Location:  e.Location,
			Graduated: FormatDate(e.GraduationDate, style),
			GPA:       e.GPA,
		})
	}
	for _, s := range doc.Skills {
		rank := effectiveRank(s.Level)
		v.Skills = append(v.Skills, skillView{
			Name:  s.Name,
			Level: string(s.Level),
			Width: BarWidth(s.Level),
			Stars: meter(Stars(s.Level)),
			Dots:  meter(rank),
		})
	}
	return v
}

// Initials returns the first letter of each word of name, as shown in the
// creative layout when no photo is set.
func Initials(name string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}

// ImageURL trusts inline image data URLs produced by the upload slot and
// plain http(s) links. Anything else is dropped so the photo is simply omitted.
func ImageURL(s string) template.URL {
	switch {
	case strings.HasPrefix(s, "data:image/"),
		strings.HasPrefix(s, "https://"),
		strings.HasPrefix(s, "http://"):
		return template.URL(s)
	}
	return ""
}
