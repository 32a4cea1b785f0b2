package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/oskar-dragon/ccflow/internal/config"
	"github.com/oskar-dragon/ccflow/internal/store"
	"github.com/oskar-dragon/ccflow/internal/ui"
)

var (
	rootDir    string
	jsonOutput bool
	yamlOutput bool
	verbose    bool
	noColor    bool

	cfg *config.Config
	st  *store.Store
)

var rootCmd = &cobra.Command{
	Use:           "ccf <command>",
	Short:         "Claude Code Flow project management",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput && yamlOutput {
			return errors.New("--json and --yaml are mutually exclusive")
		}
		c, err := config.Load(rootDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		lvl, err := c.Level()
		if err != nil {
			return err
		}
		if verbose {
			lvl = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})))
		if noColor || !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}

		cfg = c
		st = store.New(c.Root)
		slog.Debug("config resolved", "root", c.Root, "search_limit", c.Search.TaskLimit)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "project-management directory (default $CCF_ROOT or .claude)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&yamlOutput, "yaml", false, "output as YAML")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "workflow", Title: "Workflow:"},
		&cobra.Group{ID: "prds", Title: "PRDs:"},
		&cobra.Group{ID: "epics", Title: "Epics:"},
		&cobra.Group{ID: "setup", Title: "Setup:"},
	)
	rootCmd.SetHelpCommandGroupID("setup")
	rootCmd.SetCompletionCommandGroupID("setup")

	cobra.EnableCommandSorting = false
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	// Workflow
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(blockedCmd)
	rootCmd.AddCommand(inProgressCmd)
	rootCmd.AddCommand(standupCmd)
	rootCmd.AddCommand(searchCmd)

	// PRDs
	rootCmd.AddCommand(prdListCmd)
	rootCmd.AddCommand(prdStatusCmd)

	// Epics
	rootCmd.AddCommand(epicListCmd)
	rootCmd.AddCommand(epicShowCmd)
	rootCmd.AddCommand(epicStatusCmd)

	// Setup
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errEpicNotFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
