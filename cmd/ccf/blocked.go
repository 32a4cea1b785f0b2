package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oskar-dragon/ccflow/internal/ui"
)

var blockedCmd = &cobra.Command{
	Use:     "blocked",
	Short:   "Show tasks blocked by dependencies",
	GroupID: "workflow",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		tasks := st.BlockedTasks()
		if ok, err := printStructured(w, tasks); ok {
			return err
		}

		printHeader(w, "🚫 Blocked Tasks")
		if len(tasks) == 0 {
			fmt.Fprintln(w, "No blocked tasks found!")
			fmt.Fprintln(w)
			fmt.Fprintln(w, "💡 All tasks with dependencies are either completed or in progress.")
			return nil
		}

		for _, t := range tasks {
			fmt.Fprintf(w, "%s #%s - %s\n", ui.RenderWarn("⏸️ Task"), t.ID, t.Name)
			fmt.Fprintf(w, "   Epic: %s\n", t.EpicName)
			fmt.Fprintf(w, "   Blocked by: [%s]\n", strings.Join(t.Dependencies, ", "))
			if len(t.OpenDependencies) > 0 {
				waiting := make([]string, len(t.OpenDependencies))
				for i, d := range t.OpenDependencies {
					waiting[i] = "#" + d
				}
				fmt.Fprintf(w, "   Waiting for: %s\n", strings.Join(waiting, " "))
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "📊 Total blocked: %d tasks\n", len(tasks))
		return nil
	},
}
