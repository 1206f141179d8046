package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

//go:embed screens/*.html
var screenFS embed.FS

// screenFiles maps each wizard step to the file defining its "content" block.
var screenFiles = map[wizard.Step]string{
	wizard.StepWelcome:        "welcome.html",
	wizard.StepTemplateSelect: "templates.html",
	wizard.StepDetailsForm:    "details.html",
	wizard.StepPreview:        "preview.html",
}

// exportLink is one download button on the preview screen.
type exportLink struct {
	Label  string
	Format string
}

var exportLinks = []exportLink{
	{Label: "Download PDF", Format: "pdf"},
	{Label: "Download PNG", Format: "png"},
	{Label: "Download JPEG", Format: "jpeg"},
	{Label: "Download JPG", Format: "jpg"},
}

// screenData is the view model shared by all wizard screens.
type screenData struct {
	Step        wizard.Step
	Progress    []wizard.ProgressItem
	Notice      string
	UploadError string

	Doc          types.ResumeDocument
	ProfileImage template.URL
	Selected     *types.TemplateDescriptor
	Groups       []catalog.Group
	SkillLevels  []types.SkillLevel

	CanContinueToDetails bool
	CanContinueToPreview bool

	ResumeCSS   template.CSS
	Resume      template.HTML
	ExportLinks []exportLink
}

type screens struct {
	byStep map[wizard.Step]*template.Template
}

func loadScreens() (*screens, error) {
	base, err := template.New("layout.html").ParseFS(screenFS, "screens/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse screen layout: %w", err)
	}

	sc := &screens{byStep: make(map[wizard.Step]*template.Template, len(screenFiles))}
	for step, file := range screenFiles {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone screen layout: %w", err)
		}
		if _, err := t.ParseFS(screenFS, "screens/"+file); err != nil {
			return nil, fmt.Errorf("failed to parse screen %s: %w", file, err)
		}
		sc.byStep[step] = t
	}
	return sc, nil
}

// build collects everything the current screen needs from store. Only the
// screen for the current step is rendered, so only its data is computed.
func (sc *screens) build(store *wizard.Store) (screenData, error) {
	st := store.State()
	doc := store.Document()

	data := screenData{
		Step:     st.CurrentStep,
		Progress: wizard.Progress(st.CurrentStep),
		Doc:      doc,
		Selected: st.SelectedTemplate,
	}
	if err := store.UploadError(); err != nil {
		data.UploadError = err.Error()
	}

	switch st.CurrentStep {
	case wizard.StepTemplateSelect:
		data.Groups = catalog.Grouped()
		data.CanContinueToDetails = store.CanContinueToDetails()
	case wizard.StepDetailsForm:
		data.ProfileImage = rendering.ImageURL(doc.PersonalInfo.ProfileImage)
		data.SkillLevels = types.SkillLevels
		data.CanContinueToPreview = store.CanContinueToPreview()
	case wizard.StepPreview:
		resume, err := rendering.ForTemplate(st.SelectedTemplate).Render(doc)
		if err != nil {
			return screenData{}, err
		}
		data.Resume = resume
		data.ResumeCSS = rendering.Stylesheet()
		data.ExportLinks = exportLinks
	}
	return data, nil
}

func (sc *screens) render(w http.ResponseWriter, data screenData) error {
	t, ok := sc.byStep[data.Step]
	if !ok {
		t = sc.byStep[wizard.StepWelcome]
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return &rendering.TemplateError{Layout: screenFiles[data.Step], Message: "failed to render screen", Cause: err}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, err := buf.WriteTo(w)
	return err
}
