package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// handleResume serves the standalone resume page for the selected template
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	store := wizard.FromContext(r.Context())

	page, err := rendering.Page(store.Document(), store.SelectedTemplate())
	if err != nil {
		s.errorFor(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(page))
}

// handleExport renders the resume and returns it as a download. Failures are
// reported to the caller and remembered for the next screen; nothing is retried.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	store := wizard.FromContext(r.Context())

	req := types.ExportRequest{Format: strings.ToLower(r.PathValue("format"))}
	if err := req.Validate(); err != nil {
		s.errorFor(w, &export.FormatError{Value: r.PathValue("format")})
		return
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		s.errorFor(w, err)
		return
	}

	page, err := rendering.Page(store.Document(), store.SelectedTemplate())
	if err != nil {
		s.errorFor(w, err)
		return
	}

	artifact, err := s.exporter.Export(r.Context(), format, page)
	if err != nil {
		if sess, serr := middleware.GetSession(r); serr == nil {
			sess.SetNotice(fmt.Sprintf("Export to %s failed. Please try again.", format.Ext))
		}
		s.errorFor(w, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}
