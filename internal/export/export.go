package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"time"

	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/rendering"
	"golang.org/x/sync/semaphore"
)

// Browser is the rasterization/print collaborator. Implementations load a
// standalone HTML page and either print it or capture one node as PNG.
type Browser interface {
	PrintToPDF(ctx context.Context, html string) ([]byte, error)
	Screenshot(ctx context.Context, html, selector string) ([]byte, error)
}

// Artifact is a finished export ready to be downloaded.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportError wraps a failed export. Exports are never retried; the caller
// shows the error and the user may try again.
type ExportError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export %s failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("export %s failed: %s", e.Format, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// Options configures an Exporter.
type Options struct {
	MaxConcurrent int64         // browser sessions allowed at once
	Timeout       time.Duration // per export, including the wait for a slot
	JPEGQuality   int
}

// DefaultOptions returns sensible defaults for exporting.
func DefaultOptions() Options {
	return Options{
		MaxConcurrent: 2,
		Timeout:       60 * time.Second,
		JPEGQuality:   92,
	}
}

// Exporter dispatches export requests to the browser.
type Exporter struct {
	browser Browser
	slots   *semaphore.Weighted
	opts    Options
}

// New creates an Exporter. Zero option fields take their defaults.
func New(browser Browser, opts Options) *Exporter {
	def := DefaultOptions()
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = def.MaxConcurrent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.JPEGQuality <= 0 || opts.JPEGQuality > 100 {
		opts.JPEGQuality = def.JPEGQuality
	}
	return &Exporter{
		browser: browser,
		slots:   semaphore.NewWeighted(opts.MaxConcurrent),
		opts:    opts,
	}
}

// Export produces the file for format from a page rendered by rendering.Page.
func (e *Exporter) Export(ctx context.Context, format Format, pageHTML string) (*Artifact, error) {
	ctx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
	defer cancel()

	if err := e.slots.Acquire(ctx, 1); err != nil {
		return nil, &ExportError{Format: format.Ext, Message: "no export slot available", Cause: err}
	}
	defer e.slots.Release(1)

	start := time.Now()
	data, err := e.produce(ctx, format, pageHTML)
	if err != nil {
		logging.Warn("export failed", "format", format.Ext, "error", err)
		return nil, err
	}
	logging.Debug("export finished", "format", format.Ext, "bytes", len(data), "elapsed", time.Since(start))

	return &Artifact{
		Filename:    format.Filename(),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

func (e *Exporter) produce(ctx context.Context, format Format, pageHTML string) ([]byte, error) {
	switch format.Kind {
	case KindPrint:
		pdf, err := e.browser.PrintToPDF(ctx, pageHTML)
		if err != nil {
			return nil, &ExportError{Format: format.Ext, Message: "print failed", Cause: err}
		}
		return pdf, nil
	case KindPNG, KindJPEG:
		shot, err := e.browser.Screenshot(ctx, pageHTML, rendering.ContentSelector)
		if err != nil {
			return nil, &ExportError{Format: format.Ext, Message: "rasterization failed", Cause: err}
		}
		if format.Kind == KindPNG {
			return shot, nil
		}
		out, err := pngToJPEG(shot, e.opts.JPEGQuality)
		if err != nil {
			return nil, &ExportError{Format: format.Ext, Message: "jpeg encoding failed", Cause: err}
		}
		return out, nil
	}
	return nil, &ExportError{Format: format.Ext, Message: "unknown export kind"}
}

// pngToJPEG re-encodes a screenshot, flattening transparency onto white.
func pngToJPEG(data []byte, quality int) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode screenshot: %w", err)
	}

	flat := image.NewRGBA(src.Bounds())
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), src, src.Bounds().Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
