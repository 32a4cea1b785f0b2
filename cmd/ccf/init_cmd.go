package main

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/oskar-dragon/ccflow/internal/git"
	"github.com/oskar-dragon/ccflow/internal/github"
	"github.com/oskar-dragon/ccflow/internal/runner"
	"github.com/oskar-dragon/ccflow/internal/setup"
	"github.com/oskar-dragon/ccflow/internal/ui"
	"github.com/oskar-dragon/ccflow/internal/validation"
)

// rulesTimeout bounds the whole rules download.
const rulesTimeout = 30 * time.Second

// newRunner builds the subprocess runner used by init; tests replace it.
var newRunner = func() runner.Runner { return &runner.Exec{} }

// newHTTPClient builds the client used for the rules download.
var newHTTPClient = func() *http.Client { return &http.Client{Timeout: rulesTimeout} }

const banner = `
 ██████╗ ██████╗███████╗
██╔════╝██╔════╝██╔════╝
██║     ██║     █████╗
██║     ██║     ██╔══╝
╚██████╗╚██████╗██║
 ╚═════╝ ╚═════╝╚═╝
┌─────────────────────────────────┐
│  Claude Code Flow System        │
└─────────────────────────────────┘
`

// consoleReporter prints init progress lines.
type consoleReporter struct {
	w io.Writer
}

func (r consoleReporter) Section(icon, text string) { fmt.Fprintf(r.w, "\n%s %s\n", icon, text) }
func (r consoleReporter) Success(text string)       { printMessage(r.w, validation.LevelSuccess, text) }
func (r consoleReporter) Warning(text string)       { printMessage(r.w, validation.LevelWarning, text) }
func (r consoleReporter) Error(text string)         { printMessage(r.w, validation.LevelError, text) }
func (r consoleReporter) Info(text string)          { printMessage(r.w, validation.LevelInfo, text) }
func (r consoleReporter) Step(text string)          { fmt.Fprintf(r.w, "  %s\n", text) }

var initCmd = &cobra.Command{
	Use:     "init",
	Short:   "Initialize the Claude Code Flow system",
	GroupID: "setup",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		progress := w
		if jsonOutput || yamlOutput {
			progress = cmd.ErrOrStderr()
		}

		fmt.Fprint(progress, ui.RenderAccent(banner))
		fmt.Fprintln(progress)
		printHeader(progress, "🚀 Initializing Claude Code Flow System")

		r := newRunner()
		in := &setup.Initializer{
			Config: cfg,
			GitHub: github.New(r),
			Git:    git.New(r),
			HTTP:   newHTTPClient(),
			Out:    consoleReporter{w: progress},
		}
		sum, err := in.Run(cmd.Context())
		if err != nil {
			return err
		}
		if ok, err := printStructured(w, sum); ok {
			return err
		}

		fmt.Fprintln(w)
		printHeader(w, "✅ Initialization Complete!")
		fmt.Fprintln(w, "📊 System Status:")
		fmt.Fprintf(w, "  %s\n", sum.GhVersion)
		fmt.Fprintf(w, "  Extensions: %d installed\n", sum.Extensions)
		fmt.Fprintf(w, "  Auth: %s\n", sum.Auth)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "🔌 Plugin Setup:")
		fmt.Fprintln(w, "  1. Add marketplace: /plugin marketplace add https://github.com/oskar-dragon/claude-code.git")
		fmt.Fprintln(w, "  2. Install plugin: /plugin install flow@claude-code")
		fmt.Fprintln(w, "  3. Quit and re-enter Claude Code to activate the plugin")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "🎯 Next Steps:")
		fmt.Fprintln(w, "  1. Create your first PRD: /pm:prd-new <feature-name>")
		fmt.Fprintln(w, "  2. View help: ccf help")
		fmt.Fprintln(w, "  3. Check status: ccf status")
		return nil
	},
}
