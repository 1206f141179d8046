package rendering

import (
	"bytes"
	"html/template"

	"github.com/jonathan/resume-builder/internal/types"
)

// ContentSelector is the CSS selector of the resume fragment root. Raster
// export captures exactly this node.
const ContentSelector = "#resume-content"

var pageTmpl = template.Must(template.New("page.html").ParseFS(layoutFS, "layouts/page.html"))

// Stylesheet returns the CSS shared by every layout.
func Stylesheet() template.CSS {
	css, err := layoutFS.ReadFile("layouts/resume.css")
	if err != nil {
		return ""
	}
	return template.CSS(css) //nolint:gosec // embedded asset
}

type pageData struct {
	Title   string
	CSS     template.CSS
	Content template.HTML
}

// Page renders doc with the layout of tmpl (classic when nil) and wraps it in
// a standalone HTML document suitable for printing or screenshotting.
func Page(doc types.ResumeDocument, tmpl *types.TemplateDescriptor) (string, error) {
	content, err := ForTemplate(tmpl).Render(doc)
	if err != nil {
		return "", err
	}

	title := "Resume"
	if doc.PersonalInfo.FullName != "" {
		title = doc.PersonalInfo.FullName + " - Resume"
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pageData{Title: title, CSS: Stylesheet(), Content: content}); err != nil {
		return "", &RenderError{Message: "failed to build page", Cause: err}
	}
	return buf.String(), nil
}
