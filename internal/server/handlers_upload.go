package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// handleUploadImage reads the uploaded photo and encodes it on its own
// goroutine. The encode goes through the store's upload slot, so when several
// uploads overlap only the last one started is kept. The redirect waits for
// the encode so the next screen shows the new photo; a client that goes away
// stops the wait but not the encode.
func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	store := wizard.FromContext(r.Context())
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorFor(w, &ErrUploadTooLarge{Limit: s.maxUpload})
			return
		}
		s.errorFor(w, &ErrValidation{Field: "image", Message: err.Error()})
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			s.errorFor(w, &ErrMissingImage{})
			return
		}
		s.errorFor(w, &ErrValidation{Field: "image", Message: err.Error()})
		return
	}
	defer file.Close()

	upload := store.BeginImageUpload()

	data, err := io.ReadAll(file)
	if err != nil {
		upload.Fail(fmt.Errorf("could not read %s: %w", header.Filename, err))
		backToWizard(w, r)
		return
	}

	contentType := header.Header.Get("Content-Type")
	done := make(chan struct{})
	go func() {
		defer close(done)
		if !upload.Complete(wizard.EncodeDataURL(contentType, data)) {
			logging.Debug("discarded stale profile image", "file", header.Filename)
		}
	}()

	select {
	case <-done:
	case <-r.Context().Done():
		return
	}
	backToWizard(w, r)
}

// handleRemoveImage clears the profile photo
func (s *Server) handleRemoveImage(w http.ResponseWriter, r *http.Request) {
	wizard.FromContext(r.Context()).RemoveProfileImage()
	backToWizard(w, r)
}
