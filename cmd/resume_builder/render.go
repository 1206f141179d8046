package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume JSON file to HTML",
	Long:  "Renders a ResumeDocument JSON file with one of the built-in templates and writes a standalone HTML page.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderTemplateID string
	renderOutputFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to ResumeDocument JSON file (required)")
	renderCmd.Flags().StringVarP(&renderTemplateID, "template", "t", defaultTemplateID, "Template id")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output HTML file (default stdout)")

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	doc, err := loadDocument(renderInputFile)
	if err != nil {
		return err
	}
	tmpl, err := lookupTemplate(renderTemplateID)
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

	if renderOutputFile == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), page)
		return err
	}
	if err := os.WriteFile(renderOutputFile, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Rendered %s with %s to %s\n", renderInputFile, tmpl.Name, renderOutputFile)
	return nil
}
