package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume JSON file to PDF or an image",
	Long: `Renders a ResumeDocument JSON file and exports it through headless Chrome.
Formats: pdf (document-print), png (raster-png), jpeg (raster-jpeg), jpg (raster-jpg).`,
	RunE: runExport,
}

var (
	exportInputFile  string
	exportTemplateID string
	exportFormat     string
	exportOutputFile string
	exportChromePath string
	exportTimeout    time.Duration
)

// newBrowser is replaced in tests.
var newBrowser = func(execPath string) export.Browser {
	return export.NewChromeBrowser(export.ChromeOptions{ExecPath: execPath})
}

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "in", "i", "", "Path to ResumeDocument JSON file (required)")
	exportCmd.Flags().StringVarP(&exportTemplateID, "template", "t", defaultTemplateID, "Template id")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Output format: pdf, png, jpeg or jpg")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Output file (default resume.<ext>)")
	exportCmd.Flags().StringVar(&exportChromePath, "chrome", "", "Chrome executable (default CHROME_PATH or auto-detect)")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", 60*time.Second, "Export deadline")

	if err := exportCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	doc, err := loadDocument(exportInputFile)
	if err != nil {
		return err
	}
	tmpl, err := lookupTemplate(exportTemplateID)
	if err != nil {
		return err
	}
	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintDocument(&doc, tmpl)
	}

	page, err := rendering.Page(doc, tmpl)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	exporter := export.New(newBrowser(exportChromePath), export.Options{MaxConcurrent: 1, Timeout: exportTimeout})
	artifact, err := exporter.Export(context.Background(), format, page)
	if err != nil {
		return err
	}

	out := exportOutputFile
	if out == "" {
		out = artifact.Filename
	}
	if err := os.WriteFile(out, artifact.Data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s (%d bytes)\n", out, len(artifact.Data))
	return nil
}
