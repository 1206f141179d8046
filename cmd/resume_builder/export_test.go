package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBrowser struct {
	err  error
	html string
}

func (b *stubBrowser) PrintToPDF(_ context.Context, html string) ([]byte, error) {
	b.html = html
	return []byte("%PDF-1.4"), b.err
}

func (b *stubBrowser) Screenshot(_ context.Context, html, _ string) ([]byte, error) {
	b.html = html
	if b.err != nil {
		return nil, b.err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func useStubBrowser(t *testing.T, b *stubBrowser) {
	t.Helper()
	orig := newBrowser
	newBrowser = func(string) export.Browser { return b }
	t.Cleanup(func() { newBrowser = orig })
}

func TestExportCommand(t *testing.T) {
	tests := []struct {
		format string
		file   string
		magic  []byte
	}{
		{"pdf", "resume.pdf", []byte("%PDF")},
		{"png", "resume.png", []byte("\x89PNG")},
		{"jpg", "resume.jpg", []byte{0xFF, 0xD8}},
		{"raster-jpeg", "resume.jpeg", []byte{0xFF, 0xD8}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			browser := &stubBrowser{}
			useStubBrowser(t, browser)
			in := writeFile(t, "resume.json", sampleResume)
			t.Chdir(t.TempDir())

			_, stderr, err := runCLI(t, "export", "--in", in, "--format", tt.format, "--template", "creative-designer")
			require.NoError(t, err)
			assert.Contains(t, stderr, "Exported "+tt.file)

			data, err := os.ReadFile(tt.file)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, tt.magic))
			assert.Contains(t, browser.html, "resume-creative")
		})
	}
}

func TestExportCommand_OutFile(t *testing.T) {
	useStubBrowser(t, &stubBrowser{})
	in := writeFile(t, "resume.json", sampleResume)
	out := filepath.Join(t.TempDir(), "cv.pdf")

	_, _, err := runCLI(t, "export", "-i", in, "-o", out)
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestExportCommand_Errors(t *testing.T) {
	in := writeFile(t, "resume.json", sampleResume)

	t.Run("unknown format", func(t *testing.T) {
		useStubBrowser(t, &stubBrowser{})
		_, _, err := runCLI(t, "export", "--in", in, "--format", "gif")
		require.Error(t, err)
		var formatErr *export.FormatError
		assert.True(t, errors.As(err, &formatErr))
	})

	t.Run("browser failure", func(t *testing.T) {
		useStubBrowser(t, &stubBrowser{err: errors.New("no chrome")})
		_, _, err := runCLI(t, "export", "--in", in, "--format", "png", "--out", filepath.Join(t.TempDir(), "x.png"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rasterization failed")
	})
}
