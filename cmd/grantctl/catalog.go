package main

import (
	"encoding/json"
	"fmt"
	"io"

	"grantflow-be/pkg/workflow"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var catalogJSON bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the grant-writing checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCatalog(cmd.OutOrStdout(), workflow.DefaultCatalog(), catalogJSON)
	},
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "print the catalog as JSON")
}

func printCatalog(w io.Writer, catalog *workflow.Catalog, asJSON bool) error {
	steps := catalog.ListSteps()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(workflow.GroupByPhase(steps))
	}

	phase := color.New(color.FgCyan, color.Bold)
	id := color.New(color.FgYellow)
	n := 0
	for _, group := range workflow.GroupByPhase(steps) {
		phase.Fprintf(w, "%s\n", group.Phase)
		for _, s := range group.Steps {
			n++
			fmt.Fprintf(w, "  %2d. %s %s (%s)\n", n, s.Title, id.Sprintf("[%s]", s.ID), s.EstimatedTime)
		}
	}
	fmt.Fprintf(w, "\n%d steps in %d phases\n", catalog.Len(), len(catalog.Phases()))
	return nil
}
