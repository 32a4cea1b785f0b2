package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/oskar-dragon/ccflow/internal/search"
	"github.com/oskar-dragon/ccflow/internal/ui"
)

type searchReport struct {
	Query string              `json:"query" yaml:"query"`
	Prds  []search.Result     `json:"prds" yaml:"prds"`
	Epics []search.Result     `json:"epics" yaml:"epics"`
	Tasks []search.TaskResult `json:"tasks" yaml:"tasks"`
}

var searchLimit int

var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Short:   "Search across PRDs, epics, and tasks",
	Long:    "Search PRDs, epics and tasks for a case-insensitive regular expression.",
	GroupID: "workflow",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		query := args[0]
		s, err := search.New(st, query)
		if err != nil {
			return err
		}
		limit := searchLimit
		if limit <= 0 {
			limit = cfg.Search.TaskLimit
		}

		report := searchReport{Query: query, Prds: s.Prds(), Epics: s.Epics(), Tasks: s.Tasks(limit)}
		if ok, err := printStructured(w, report); ok {
			return err
		}

		printBanner(w, fmt.Sprintf("🔍 Search results for: '%s'", query))

		fmt.Fprintln(w, "📄 PRDs:")
		printSearchResults(w, report.Prds)
		fmt.Fprintln(w)

		fmt.Fprintln(w, "📚 Epics:")
		printSearchResults(w, report.Epics)
		fmt.Fprintln(w)

		fmt.Fprintln(w, "📝 Tasks:")
		if len(report.Tasks) == 0 {
			fmt.Fprintln(w, "  "+ui.RenderMuted("No matches"))
		}
		for _, t := range report.Tasks {
			fmt.Fprintf(w, "  • Task #%s in %s\n", t.TaskNumber, t.EpicName)
		}

		fmt.Fprintln(w)
		fmt.Fprintf(w, "📊 Total files with matches: %d\n", len(report.Prds)+len(report.Epics)+len(report.Tasks))
		return nil
	},
}

func printSearchResults(w io.Writer, results []search.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "  "+ui.RenderMuted("No matches"))
		return
	}
	for _, r := range results {
		fmt.Fprintf(w, "  • %s (%d matches)\n", r.Name, r.MatchCount)
	}
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "maximum task results (default from config)")
}
