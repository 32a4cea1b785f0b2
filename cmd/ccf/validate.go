package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/oskar-dragon/ccflow/internal/ui"
	"github.com/oskar-dragon/ccflow/internal/validation"
)

var validateSections = []struct {
	section    validation.Section
	icon       string
	title      string
	fallback   string
	hideIfNone bool
}{
	{section: validation.SectionDirectories, icon: "📁", title: "Directory Structure:"},
	{section: validation.SectionIntegrity, icon: "🗂️", title: "Data Integrity:", hideIfNone: true},
	{section: validation.SectionReferences, icon: "🔗", title: "Reference Check:", fallback: "All references valid"},
	{section: validation.SectionFrontmatter, icon: "📝", title: "Frontmatter Validation:", fallback: "All files have frontmatter"},
}

var validateCmd = &cobra.Command{
	Use:     "validate",
	Short:   "Validate PM system integrity",
	GroupID: "setup",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		result := validation.New(st).Validate()
		if ok, err := printStructured(w, result); ok {
			return err
		}

		printHeader(w, "🔍 Validating PM System")
		for _, sec := range validateSections {
			msgs := result.Section(sec.section)
			if len(msgs) == 0 && sec.hideIfNone {
				continue
			}
			fmt.Fprintf(w, "%s %s\n", sec.icon, sec.title)
			if len(msgs) == 0 && sec.fallback != "" {
				msgs = []validation.Message{{Level: validation.LevelSuccess, Text: sec.fallback}}
			}
			for _, m := range msgs {
				printMessage(w, m.Level, m.Text)
			}
			fmt.Fprintln(w)
		}

		printHeader(w, "📊 Validation Summary:")
		fmt.Fprintf(w, "  Errors: %d\n", result.Errors)
		fmt.Fprintf(w, "  Warnings: %d\n", result.Warnings)
		fmt.Fprintf(w, "  Invalid files: %d\n", result.Invalid)
		fmt.Fprintln(w)
		if result.Healthy() {
			fmt.Fprintln(w, ui.RenderPass("✅ System is healthy!"))
		} else {
			fmt.Fprintln(w, "💡 Fix the issues above and run ccf validate again")
		}
		return nil
	},
}

// printMessage writes one indented status line with the icon for lvl.
func printMessage(w io.Writer, lvl validation.Level, text string) {
	switch lvl {
	case validation.LevelSuccess:
		fmt.Fprintf(w, "  %s %s\n", ui.RenderPass("✅"), text)
	case validation.LevelError:
		fmt.Fprintf(w, "  %s %s\n", ui.RenderFail("❌"), ui.RenderFail(text))
	case validation.LevelWarning:
		fmt.Fprintf(w, "  %s  %s\n", ui.RenderWarn("⚠️"), text)
	default:
		fmt.Fprintf(w, "  %s  %s\n", ui.RenderAccent("ℹ️"), text)
	}
}
