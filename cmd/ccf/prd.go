package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oskar-dragon/ccflow/internal/model"
	"github.com/oskar-dragon/ccflow/internal/ui"
)

// prdRecentLimit is how many PRDs prd-status lists as recent.
const prdRecentLimit = 5

// distributionWidth is the bar length for a bucket holding every PRD.
const distributionWidth = 20

var prdSections = []struct {
	bucket model.Bucket
	title  string
}{
	{model.BucketEarliest, "🔍 Backlog PRDs:"},
	{model.BucketActive, "🔄 In-Progress PRDs:"},
	{model.BucketDone, "✅ Implemented PRDs:"},
}

var prdListCmd = &cobra.Command{
	Use:     "prd-list",
	Short:   "List all PRDs grouped by status",
	GroupID: "prds",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		prds := st.ListPrds()
		grouped := model.GroupPrds(prds)
		if ok, err := printStructured(w, grouped); ok {
			return err
		}

		if len(prds) == 0 {
			fmt.Fprintln(w, "📁 No PRDs found. Create your first PRD with: /pm:prd-new <feature-name>")
			return nil
		}

		printHeader(w, "📋 PRD List")
		for i, sec := range prdSections {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, sec.title)
			printPrds(w, grouped[sec.bucket])
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "📊 PRD Summary")
		fmt.Fprintf(w, "   Total PRDs: %d\n", len(prds))
		fmt.Fprintf(w, "   Backlog: %d\n", len(grouped[model.BucketEarliest]))
		fmt.Fprintf(w, "   In-Progress: %d\n", len(grouped[model.BucketActive]))
		fmt.Fprintf(w, "   Implemented: %d\n", len(grouped[model.BucketDone]))
		return nil
	},
}

func printPrds(w io.Writer, prds []model.Prd) {
	if len(prds) == 0 {
		printNone(w, "   ")
		return
	}
	for _, p := range prds {
		fmt.Fprintf(w, "   📋 %s - %s\n", p.FilePath, p.Description)
	}
}

type prdStatusReport struct {
	Counts map[model.Bucket]int `json:"counts" yaml:"counts"`
	Total  int                  `json:"total" yaml:"total"`
	Recent []string             `json:"recent" yaml:"recent"`
}

var prdStatusCmd = &cobra.Command{
	Use:     "prd-status",
	Short:   "Show PRD status report with distribution chart",
	GroupID: "prds",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		prds := st.ListPrds()
		report := prdStatusReport{Counts: map[model.Bucket]int{}, Total: len(prds), Recent: recentPrds(prds)}
		for _, b := range model.Buckets {
			report.Counts[b] = 0
		}
		for _, p := range prds {
			report.Counts[model.ClassifyPrd(p.Status)]++
		}
		if ok, err := printStructured(w, report); ok {
			return err
		}

		printHeader(w, "📄 PRD Status Report")
		if report.Total == 0 {
			fmt.Fprintln(w, "No PRDs found.")
			return nil
		}

		fmt.Fprintln(w, "📊 Distribution:")
		fmt.Fprintln(w, "================")
		fmt.Fprintln(w)
		for _, b := range model.Buckets {
			n := report.Counts[b]
			bar := strings.Repeat(ui.BarFilled, n*distributionWidth/report.Total)
			fmt.Fprintf(w, "  %-13s%3d [%s]\n", model.PrdStatuses.Label(b)+":", n, ui.RenderAccent(bar))
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Total PRDs: %d\n", report.Total)

		fmt.Fprintln(w)
		fmt.Fprintln(w, "📅 Recent PRDs (last 5 modified):")
		for _, name := range report.Recent {
			fmt.Fprintf(w, "  • %s\n", name)
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "💡 Next Actions:")
		if report.Counts[model.BucketEarliest] > 0 {
			fmt.Fprintln(w, "  • Parse backlog PRDs to epics: /pm:prd-parse <name>")
		}
		if report.Counts[model.BucketActive] > 0 {
			fmt.Fprintln(w, "  • Check progress on active PRDs: ccf epic-status <name>")
		}
		return nil
	},
}

// recentPrds returns up to prdRecentLimit PRD names ordered by file path,
// descending.
func recentPrds(prds []model.Prd) []string {
	sorted := slices.Clone(prds)
	slices.SortStableFunc(sorted, func(a, b model.Prd) int { return strings.Compare(b.FilePath, a.FilePath) })
	names := []string{}
	for _, p := range sorted[:min(prdRecentLimit, len(sorted))] {
		names = append(names, p.Name)
	}
	return names
}
