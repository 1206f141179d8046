package wizard

import (
	"encoding/base64"
	"fmt"
	"net/http"
)

// Upload is one attempt at setting the profile image. Only the most recently
// begun attempt may apply its result; older attempts are stale and dropped.
type Upload struct {
	store *Store
	gen   uint64
}

// BeginImageUpload starts a new attempt and supersedes any pending one.
func (s *Store) BeginImageUpload() Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploadGen++
	s.uploadErr = nil
	return Upload{store: s, gen: s.uploadGen}
}

// Complete stores payload as the profile image. It returns false and changes
// nothing when a newer attempt (or a reset) has started since this one.
func (u Upload) Complete(payload string) bool {
	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.gen != s.uploadGen {
		return false
	}
	s.doc.PersonalInfo.ProfileImage = payload
	return true
}

// Fail records err so it can be shown to the user. Stale failures are dropped.
func (u Upload) Fail(err error) bool {
	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.gen != s.uploadGen {
		return false
	}
	s.uploadErr = err
	return true
}

// UploadError returns the failure of the latest attempt, if any.
func (s *Store) UploadError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploadErr
}

// RemoveProfileImage clears the profile image and abandons pending uploads.
func (s *Store) RemoveProfileImage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploadGen++
	s.uploadErr = nil
	s.doc.PersonalInfo.ProfileImage = ""
}

// EncodeDataURL encodes data as a data URL. contentType is sniffed when empty.
// No format or size checks are made; whatever the client sent is passed through.
func EncodeDataURL(contentType string, data []byte) string {
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}
