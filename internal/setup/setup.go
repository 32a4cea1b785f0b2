// Package setup implements the init flow: GitHub CLI checks, directory
// scaffolding, rules download, label creation and CLAUDE.md.
package setup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/oskar-dragon/ccflow/internal/config"
	"github.com/oskar-dragon/ccflow/internal/git"
	"github.com/oskar-dragon/ccflow/internal/github"
	"github.com/oskar-dragon/ccflow/internal/store"
)

// ErrGhUnavailable means gh is missing and could not be installed.
var ErrGhUnavailable = errors.New("GitHub CLI (gh) is not installed")

// Reporter receives progress lines from the init flow.
type Reporter interface {
	Section(icon, text string)
	Success(text string)
	Warning(text string)
	Error(text string)
	Info(text string)
	Step(text string)
}

// Summary is the system status shown once init completes.
type Summary struct {
	GhVersion       string      `json:"gh_version"`
	Extensions      int         `json:"extensions"`
	Auth            string      `json:"auth"`
	Rules           RulesResult `json:"rules"`
	Git             git.Status  `json:"git"`
	ClaudeMdCreated bool        `json:"claude_md_created"`
}

// Initializer runs the init sequence against a .claude root.
type Initializer struct {
	Config *config.Config
	GitHub *github.Client
	Git    *git.Client
	HTTP   *http.Client
	Out    Reporter

	// ProjectDir receives CLAUDE.md. Defaults to the parent of Config.Root.
	ProjectDir string
}

// Run executes every step in order. Only a missing, uninstallable gh aborts
// the sequence; other failures are reported and skipped.
func (in *Initializer) Run(ctx context.Context) (*Summary, error) {
	if err := in.ensureGh(ctx); err != nil {
		return nil, err
	}
	in.ensureAuth(ctx)
	in.ensureExtension(ctx)

	sum := &Summary{}
	in.Out.Section("📁", "Creating directory structure...")
	if err := CreateDirectories(in.Config.Root); err != nil {
		return nil, err
	}
	in.Out.Success("Directories created")

	in.Out.Section("📥", "Copying rules from GitHub...")
	sum.Rules = FetchRules(ctx, in.HTTP, in.Config.Rules.BaseURL, in.Config.Rules.Files, in.Config.Path(store.RulesDir))
	in.reportRules(sum.Rules)

	sum.Git = in.setupGit(ctx)

	created, err := CreateClaudeMd(in.projectDir())
	if err != nil {
		return nil, err
	}
	if created {
		in.Out.Section("📄", "Creating CLAUDE.md...")
		in.Out.Success("CLAUDE.md created")
	}
	sum.ClaudeMdCreated = created

	sum.GhVersion = in.GitHub.Version(ctx)
	sum.Extensions = in.GitHub.ExtensionCount(ctx)
	sum.Auth = in.GitHub.AuthStatus(ctx)
	return sum, nil
}

func (in *Initializer) projectDir() string {
	if in.ProjectDir != "" {
		return in.ProjectDir
	}
	return filepath.Dir(filepath.Clean(in.Config.Root))
}

func (in *Initializer) ensureGh(ctx context.Context) error {
	in.Out.Section("🔍", "Checking dependencies...")
	if in.GitHub.Installed() {
		in.Out.Success("GitHub CLI (gh) installed")
		return nil
	}
	in.Out.Error("GitHub CLI (gh) not found")
	in.Out.Step("Installing gh...")
	if !in.GitHub.Install(ctx) {
		in.Out.Step("Please install GitHub CLI manually: https://cli.github.com/")
		return ErrGhUnavailable
	}
	return nil
}

func (in *Initializer) ensureAuth(ctx context.Context) {
	in.Out.Section("🔐", "Checking GitHub authentication...")
	if in.GitHub.Authenticated(ctx) {
		in.Out.Success("GitHub authenticated")
		return
	}
	in.Out.Warning("GitHub not authenticated")
	in.Out.Step("Running: gh auth login")
	if !in.GitHub.Login(ctx) {
		in.Out.Error("gh auth login failed")
	}
}

func (in *Initializer) ensureExtension(ctx context.Context) {
	in.Out.Section("📦", "Checking gh extensions...")
	if in.GitHub.HasSubIssueExtension(ctx) {
		in.Out.Success("gh-sub-issue extension installed")
		return
	}
	in.Out.Step("📥 Installing gh-sub-issue extension...")
	if !in.GitHub.InstallSubIssueExtension(ctx) {
		in.Out.Error("Could not install gh-sub-issue extension")
	}
}

func (in *Initializer) reportRules(res RulesResult) {
	if !res.OK() {
		in.Out.Error("Failed to copy rules from GitHub")
		in.Out.Step("Check your internet connection and try again")
		return
	}
	in.Out.Success(fmt.Sprintf("Rules copied (%d/%d)", res.Count, res.Total()))
	if len(res.Errors) > 0 {
		in.Out.Warning(fmt.Sprintf("Failed to copy %d rules:", len(res.Errors)))
		for _, e := range res.Errors {
			in.Out.Step(e)
		}
	}
}

func (in *Initializer) setupGit(ctx context.Context) git.Status {
	in.Out.Section("🔗", "Checking Git configuration...")
	st := in.Git.Status(ctx)
	if !st.IsRepository {
		in.Out.Warning("Not a git repository")
		in.Out.Step("Initialize with: git init")
		return st
	}
	in.Out.Success("Git repository detected")

	if !st.HasRemote || st.RemoteURL == "" {
		in.Out.Warning("No remote configured")
		in.Out.Step("Add with: git remote add origin <url>")
		return st
	}
	in.Out.Success("Remote configured: " + st.RemoteURL)
	in.createLabels(ctx)
	return st
}

func (in *Initializer) createLabels(ctx context.Context) {
	if !in.GitHub.IsRepo(ctx) {
		in.Out.Info("Not a GitHub repository - skipping label creation")
		return
	}
	in.Out.Section("🏷️", "Creating GitHub labels...")
	results := in.GitHub.CreateLabels(ctx, in.Config.Labels)

	var ready, names []string
	for _, r := range results {
		names = append(names, r.Name)
		if r.Ready {
			ready = append(ready, r.Name)
		}
	}
	switch {
	case len(ready) == len(results):
		in.Out.Success(fmt.Sprintf("GitHub labels created (%s)", strings.Join(names, ", ")))
	case len(ready) > 0:
		in.Out.Warning(fmt.Sprintf("Some GitHub labels created (%s)", labelStates(results)))
	default:
		in.Out.Error("Could not create GitHub labels (check repository permissions)")
	}
}

func labelStates(results []github.LabelResult) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, fmt.Sprintf("%s: %t", r.Name, r.Ready))
	}
	return strings.Join(parts, ", ")
}
