package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oskar-dragon/ccflow/internal/model"
)

type statusReport struct {
	Prds  int             `json:"prds" yaml:"prds"`
	Epics int             `json:"epics" yaml:"epics"`
	Tasks model.TaskStats `json:"tasks" yaml:"tasks"`
}

var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show project status overview",
	GroupID: "workflow",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		report := statusReport{
			Prds:  len(st.ListPrds()),
			Epics: len(st.EpicNames()),
			Tasks: st.TaskStats(),
		}
		if ok, err := printStructured(w, report); ok {
			return err
		}

		printHeader(w, "📊 Project Status")

		fmt.Fprintln(w, "📄 PRDs:")
		if isDir(st.PrdsDir()) {
			fmt.Fprintf(w, "  Total: %d\n", report.Prds)
		} else {
			fmt.Fprintln(w, "  No PRDs found")
		}
		fmt.Fprintln(w)

		epicsPresent := isDir(st.EpicsDir())
		fmt.Fprintln(w, "📚 Epics:")
		if epicsPresent {
			fmt.Fprintf(w, "  Total: %d\n", report.Epics)
		} else {
			fmt.Fprintln(w, "  No epics found")
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "📝 Tasks:")
		if epicsPresent {
			fmt.Fprintf(w, "  Open: %d\n", report.Tasks.Open)
			fmt.Fprintf(w, "  Closed: %d\n", report.Tasks.Closed)
			fmt.Fprintf(w, "  Total: %d\n", report.Tasks.Total)
		} else {
			fmt.Fprintln(w, "  No tasks found")
		}
		return nil
	},
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
