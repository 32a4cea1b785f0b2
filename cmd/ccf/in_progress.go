package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/oskar-dragon/ccflow/internal/model"
)

var inProgressCmd = &cobra.Command{
	Use:     "in-progress",
	Short:   "Show work currently in progress",
	GroupID: "workflow",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		active := model.GroupEpics(st.ListEpics())[model.BucketActive]
		if ok, err := printStructured(w, active); ok {
			return err
		}

		printHeader(w, "🔄 In Progress Work")
		fmt.Fprintln(w, "📚 Active Epics:")
		printActiveEpics(w, active, "   ")
		fmt.Fprintln(w)

		if len(active) == 0 {
			fmt.Fprintln(w, "No active work items found.")
			fmt.Fprintln(w)
			fmt.Fprintln(w, "💡 Start work with: ccf next")
			return nil
		}
		fmt.Fprintf(w, "📊 Total active items: %d\n", len(active))
		return nil
	},
}

func printActiveEpics(w io.Writer, epics []model.Epic, indent string) {
	if len(epics) == 0 {
		printNone(w, indent)
		return
	}
	for _, e := range epics {
		fmt.Fprintf(w, "%s• %s - %s complete\n", indent, e.Name, e.Progress)
	}
}
