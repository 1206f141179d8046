// Package export turns a rendered resume page into a downloadable file,
// either through the browser's print facility (PDF) or by rasterizing the
// resume node (PNG/JPEG).
package export

import (
	"fmt"
	"strings"
)

// Kind is the export path taken for a format.
type Kind int

const (
	KindPrint Kind = iota
	KindPNG
	KindJPEG
)

// Format is a parsed export format. Ext is the extension the user asked for,
// so "jpg" and "jpeg" both encode JPEG but keep their own file name.
type Format struct {
	Kind Kind
	Ext  string
}

// FormatError reports an export format outside the supported set.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %q", e.Value)
}

// ParseFormat accepts document-print|pdf, raster-png|png, raster-jpeg|jpeg
// and raster-jpg|jpg, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "document-print", "pdf":
		return Format{Kind: KindPrint, Ext: "pdf"}, nil
	case "raster-png", "png":
		return Format{Kind: KindPNG, Ext: "png"}, nil
	case "raster-jpeg", "jpeg":
		return Format{Kind: KindJPEG, Ext: "jpeg"}, nil
	case "raster-jpg", "jpg":
		return Format{Kind: KindJPEG, Ext: "jpg"}, nil
	}
	return Format{}, &FormatError{Value: s}
}

// Filename is the download name, resume.<ext>.
func (f Format) Filename() string {
	return "resume." + f.Ext
}

// ContentType is the MIME type of the produced file.
func (f Format) ContentType() string {
	switch f.Kind {
	case KindPNG:
		return "image/png"
	case KindJPEG:
		return "image/jpeg"
	default:
		return "application/pdf"
	}
}

func (f Format) String() string {
	return f.Ext
}
