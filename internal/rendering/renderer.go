package rendering

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed layouts/*.html layouts/resume.css
var layoutFS embed.FS

// Renderer renders a resume document with one layout. Renderers hold no
// mutable state and are safe for concurrent use.
type Renderer struct {
	category types.Category
	style    DateStyle
	tmpl     *template.Template
}

var (
	classic     = mustRenderer(types.CategoryClassic, DateLong)
	modern      = mustRenderer(types.CategoryModern, DateShort)
	traditional = mustRenderer(types.CategoryTraditional, DateLong)
	creative    = mustRenderer(types.CategoryCreative, DateShort)
)

// For returns the renderer for category. Unknown categories get the classic layout.
func For(category types.Category) *Renderer {
	switch category {
	case types.CategoryModern:
		return modern
	case types.CategoryTraditional:
		return traditional
	case types.CategoryCreative:
		return creative
	case types.CategoryClassic:
		return classic
	default:
		return classic
	}
}

// ForTemplate returns the renderer for the selected template, or classic when
// nothing is selected.
func ForTemplate(t *types.TemplateDescriptor) *Renderer {
	if t == nil {
		return classic
	}
	return For(t.Category)
}

// Category is the layout family this renderer draws.
func (r *Renderer) Category() types.Category {
	return r.category
}

// DateStyle is the month format this layout prints.
func (r *Renderer) DateStyle() DateStyle {
	return r.style
}

// Render produces the resume fragment rooted at #resume-content.
func (r *Renderer) Render(doc types.ResumeDocument) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, buildView(doc, r.style)); err != nil {
		return "", &TemplateError{
			Layout:  string(r.category),
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}

func mustRenderer(category types.Category, style DateStyle) *Renderer {
	name := string(category) + ".html"
	tmpl, err := template.New(name).ParseFS(layoutFS, "layouts/"+name)
	if err != nil {
		panic(&TemplateError{Layout: string(category), Message: "failed to parse template", Cause: err})
	}
	return &Renderer{category: category, style: style, tmpl: tmpl}
}
