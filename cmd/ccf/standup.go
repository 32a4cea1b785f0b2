package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oskar-dragon/ccflow/internal/git"
	"github.com/oskar-dragon/ccflow/internal/model"
	"github.com/oskar-dragon/ccflow/internal/runner"
	"github.com/oskar-dragon/ccflow/internal/store"
)

// standupNextLimit is how many available tasks the standup lists.
const standupNextLimit = 3

type standupReport struct {
	Date       string           `json:"date" yaml:"date"`
	User       string           `json:"user,omitempty" yaml:"user,omitempty"`
	Activity   []store.Activity `json:"activity" yaml:"activity"`
	InProgress []model.Epic     `json:"in_progress" yaml:"in_progress"`
	Next       []model.Task     `json:"next" yaml:"next"`
	Tasks      model.TaskStats  `json:"tasks" yaml:"tasks"`
}

// now is replaced in tests.
var now = time.Now

var standupCmd = &cobra.Command{
	Use:     "standup",
	Short:   "Generate daily standup report",
	GroupID: "workflow",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		t := now()
		midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

		next := st.AvailableTasks()
		if len(next) > standupNextLimit {
			next = next[:standupNextLimit]
		}
		report := standupReport{
			Date:       t.Format(time.DateOnly),
			User:       git.New(&runner.Exec{}).UserName(cmd.Context()),
			Activity:   st.ModifiedSince(midnight),
			InProgress: model.GroupEpics(st.ListEpics())[model.BucketActive],
			Next:       next,
			Tasks:      st.TaskStats(),
		}
		if ok, err := printStructured(w, report); ok {
			return err
		}

		title := "📅 Daily Standup - " + report.Date
		if report.User != "" {
			title += " (" + report.User + ")"
		}
		printBanner(w, title)

		fmt.Fprintln(w, "📝 Today's Activity:")
		if len(report.Activity) == 0 {
			fmt.Fprintln(w, "  No activity recorded today")
		}
		for _, a := range report.Activity {
			fmt.Fprintf(w, "  • %s %s (%s)\n", a.Kind, a.Path, a.Modified.Format(time.TimeOnly))
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "🔄 Currently In Progress:")
		printActiveEpics(w, report.InProgress, "  ")
		fmt.Fprintln(w)

		fmt.Fprintln(w, "⏭️ Next Available Tasks:")
		if len(report.Next) == 0 {
			printNone(w, "  ")
		}
		for _, task := range report.Next {
			fmt.Fprintf(w, "  • #%s - %s\n", task.ID, task.Name)
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "📊 Quick Stats:")
		fmt.Fprintf(w, "  Tasks: %d open, %d closed, %d total\n", report.Tasks.Open, report.Tasks.Closed, report.Tasks.Total)
		return nil
	},
}
