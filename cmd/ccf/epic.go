package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/oskar-dragon/ccflow/internal/frontmatter"
	"github.com/oskar-dragon/ccflow/internal/model"
	"github.com/oskar-dragon/ccflow/internal/ui"
)

// progressWidth is the cell count of the epic-status progress bar.
const progressWidth = 20

var epicSections = []struct {
	bucket model.Bucket
	title  string
}{
	{model.BucketEarliest, "📝 Planning:"},
	{model.BucketActive, "🚀 In Progress:"},
	{model.BucketDone, "✅ Completed:"},
}

var epicListCmd = &cobra.Command{
	Use:     "epic-list",
	Short:   "List all epics grouped by status",
	GroupID: "epics",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		epics := st.ListEpics()
		grouped := model.GroupEpics(epics)
		if ok, err := printStructured(w, grouped); ok {
			return err
		}

		if len(epics) == 0 {
			fmt.Fprintln(w, "📁 No epics found. Create your first epic with: /pm:prd-parse <feature-name>")
			return nil
		}

		printHeader(w, "📚 Project Epics")
		for i, sec := range epicSections {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, sec.title)
			printEpics(w, grouped[sec.bucket])
		}

		tasks := 0
		for _, e := range epics {
			tasks += e.TaskCount
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "📊 Summary")
		fmt.Fprintf(w, "   Total epics: %d\n", len(epics))
		fmt.Fprintf(w, "   Total tasks: %d\n", tasks)
		return nil
	},
}

func printEpics(w io.Writer, epics []model.Epic) {
	if len(epics) == 0 {
		printNone(w, "   ")
		return
	}
	for _, e := range epics {
		issue := ""
		if e.GitHubIssueNumber != "" {
			issue = " (#" + e.GitHubIssueNumber + ")"
		}
		fmt.Fprintf(w, "   📋 %s%s - %s complete (%d tasks)\n", e.FilePath, issue, e.Progress, e.TaskCount)
	}
}

type epicShowReport struct {
	Epic  model.Epic      `json:"epic" yaml:"epic"`
	Tasks []model.Task    `json:"tasks" yaml:"tasks"`
	Stats model.TaskStats `json:"stats" yaml:"stats"`
	Body  string          `json:"body,omitempty" yaml:"body,omitempty"`
}

var showBody bool

var epicShowCmd = &cobra.Command{
	Use:     "epic-show <name>",
	Short:   "Show detailed information about an epic",
	GroupID: "epics",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		name := args[0]
		if err := requireEpic(w, name); err != nil {
			return err
		}

		epic := st.EpicMetadata(st.EpicDir(name))
		report := epicShowReport{Epic: epic, Tasks: st.ListTasks(name)}
		for _, t := range report.Tasks {
			report.Stats.Add(t)
		}
		if showBody {
			content, _ := frontmatter.ReadFile(epic.FilePath)
			report.Body = frontmatter.Body(content)
		}
		if ok, err := printStructured(w, report); ok {
			return err
		}

		printBanner(w, "📚 Epic: "+name)

		status := epic.Status
		if status == "" {
			status = "planning"
		}
		created := epic.Created
		if created == "" {
			created = "unknown"
		}
		fmt.Fprintln(w, "📊 Metadata:")
		fmt.Fprintf(w, "  Status: %s\n", status)
		fmt.Fprintf(w, "  Progress: %s\n", epic.Progress)
		if epic.GitHub != "" {
			fmt.Fprintf(w, "  GitHub: %s\n", epic.GitHub)
		}
		fmt.Fprintf(w, "  Created: %s\n", created)
		fmt.Fprintln(w)

		if showBody && report.Body != "" {
			fmt.Fprintln(w, "📖 Description:")
			fmt.Fprintln(w, ui.RenderMarkdown(report.Body))
		}

		fmt.Fprintln(w, "📝 Tasks:")
		if len(report.Tasks) == 0 {
			fmt.Fprintln(w, "  No tasks created yet")
			fmt.Fprintf(w, "  Run: /pm:epic-decompose %s\n", name)
		}
		for _, t := range report.Tasks {
			if t.IsClosed() {
				fmt.Fprintf(w, "  %s #%s - %s\n", ui.RenderPass("✅"), t.ID, t.Name)
				continue
			}
			line := fmt.Sprintf("  ⬜ #%s - %s", t.ID, t.Name)
			if t.Parallel {
				line += ui.RenderMuted(" (parallel)")
			}
			fmt.Fprintln(w, line)
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "📈 Statistics:")
		fmt.Fprintf(w, "  Total tasks: %d\n", report.Stats.Total)
		fmt.Fprintf(w, "  Open: %d\n", report.Stats.Open)
		fmt.Fprintf(w, "  Closed: %d\n", report.Stats.Closed)
		if report.Stats.Total > 0 {
			fmt.Fprintf(w, "  Completion: %d%%\n", report.Stats.Completion())
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "💡 Actions:")
		if report.Stats.Total == 0 {
			fmt.Fprintf(w, "  • Decompose into tasks: /pm:epic-decompose %s\n", name)
		}
		if epic.GitHub == "" && report.Stats.Total > 0 {
			fmt.Fprintf(w, "  • Sync to GitHub: /pm:epic-sync %s\n", name)
		}
		if epic.GitHub != "" && model.ClassifyEpic(epic.Status) != model.BucketDone {
			fmt.Fprintf(w, "  • Start work: /pm:epic-start %s\n", name)
		}
		return nil
	},
}

type epicStatusReport struct {
	Epic       model.Epic      `json:"epic" yaml:"epic"`
	Stats      model.TaskStats `json:"stats" yaml:"stats"`
	Completion int             `json:"completion" yaml:"completion"`
}

var epicStatusCmd = &cobra.Command{
	Use:     "epic-status <name>",
	Short:   "Show status of an epic's tasks",
	GroupID: "epics",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		name := args[0]
		if err := requireEpic(w, name); err != nil {
			return err
		}

		stats := st.EpicTaskStats(name)
		report := epicStatusReport{
			Epic:       st.EpicMetadata(st.EpicDir(name)),
			Stats:      stats,
			Completion: stats.Completion(),
		}
		if ok, err := printStructured(w, report); ok {
			return err
		}

		printBanner(w, "📚 Epic Status: "+name)
		if stats.Total == 0 {
			fmt.Fprintln(w, "Progress: No tasks created")
		} else {
			fmt.Fprintf(w, "Progress: [%s] %d%%\n", ui.RenderPass(ui.ProgressBar(report.Completion, progressWidth)), report.Completion)
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "📊 Breakdown:")
		fmt.Fprintf(w, "  Total tasks: %d\n", stats.Total)
		fmt.Fprintf(w, "  ✅ Completed: %d\n", stats.Closed)
		fmt.Fprintf(w, "  🔄 Available: %d\n", stats.Available)
		fmt.Fprintf(w, "  ⏸️  Blocked: %d\n", stats.Blocked)

		if report.Epic.GitHub != "" {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "🔗 GitHub: %s\n", report.Epic.GitHub)
		}
		return nil
	},
}

func init() {
	epicShowCmd.Flags().BoolVar(&showBody, "body", false, "render the epic description as markdown")
}
