package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-builder/internal/catalog"
	"github.com/spf13/cobra"
)

var templatesJSON bool

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available resume templates",
	Long:  "Lists the built-in templates grouped by category. Use an id with render or export --template.",
	RunE:  runTemplates,
}

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Print the catalog as JSON")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	groups := catalog.Grouped()
	out := cmd.OutOrStdout()

	if templatesJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(groups)
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s\n  %s\n", g.Info.Title, g.Info.Description)
		for _, t := range g.Templates {
			fmt.Fprintf(out, "  %-22s %s\n", t.ID, t.Description)
		}
	}
	return nil
}
