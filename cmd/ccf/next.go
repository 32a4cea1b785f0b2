package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oskar-dragon/ccflow/internal/ui"
)

var nextCmd = &cobra.Command{
	Use:     "next",
	Short:   "Show next available tasks ready to start",
	GroupID: "workflow",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		tasks := st.AvailableTasks()
		if ok, err := printStructured(w, tasks); ok {
			return err
		}

		printHeader(w, "📋 Next Available Tasks")
		if len(tasks) == 0 {
			fmt.Fprintln(w, "No available tasks found.")
			fmt.Fprintln(w)
			fmt.Fprintln(w, "💡 Suggestions:")
			fmt.Fprintln(w, "  • Check blocked tasks: ccf blocked")
			fmt.Fprintln(w, "  • View all epics: ccf epic-list")
			return nil
		}

		for _, t := range tasks {
			fmt.Fprintf(w, "%s #%s - %s\n", ui.RenderPass("✅ Ready:"), t.ID, t.Name)
			fmt.Fprintf(w, "   Epic: %s\n", t.EpicName)
			if t.Parallel {
				fmt.Fprintln(w, "   🔄 Can run in parallel")
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "📊 Summary: %d tasks ready to start\n", len(tasks))
		return nil
	},
}
