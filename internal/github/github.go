// Package github wraps the gh CLI operations used to bootstrap a repository:
// installation, authentication, the sub-issue extension and issue labels.
package github

import (
	"context"
	"regexp"
	"strings"

	"github.com/oskar-dragon/ccflow/internal/config"
	"github.com/oskar-dragon/ccflow/internal/runner"
)

// SubIssueExtension is the gh extension used to link task issues to epics.
const SubIssueExtension = "yahsan2/gh-sub-issue"

// Client runs gh through a Runner.
type Client struct {
	r runner.Runner
}

// New returns a client that executes gh via r.
func New(r runner.Runner) *Client {
	return &Client{r: r}
}

func (c *Client) gh(ctx context.Context, args ...string) runner.Result {
	return c.r.Run(ctx, "gh", args...)
}

// Installed reports whether gh is on PATH.
func (c *Client) Installed() bool {
	return c.r.LookPath("gh")
}

// Install tries Homebrew, then apt-get. It returns false when neither package
// manager is available or the install fails.
func (c *Client) Install(ctx context.Context) bool {
	switch {
	case c.r.LookPath("brew"):
		return c.r.Attach(ctx, "brew", "install", "gh").OK()
	case c.r.LookPath("apt-get"):
		if !c.r.Attach(ctx, "sudo", "apt-get", "update").OK() {
			return false
		}
		return c.r.Attach(ctx, "sudo", "apt-get", "install", "gh").OK()
	}
	return false
}

// Authenticated reports whether "gh auth status" succeeds.
func (c *Client) Authenticated(ctx context.Context) bool {
	return c.gh(ctx, "auth", "status").OK()
}

// Login runs the interactive "gh auth login".
func (c *Client) Login(ctx context.Context) bool {
	return c.r.Attach(ctx, "gh", "auth", "login").OK()
}

// HasSubIssueExtension reports whether the sub-issue extension is installed.
func (c *Client) HasSubIssueExtension(ctx context.Context) bool {
	return strings.Contains(c.gh(ctx, "extension", "list").Stdout, SubIssueExtension)
}

// InstallSubIssueExtension installs the sub-issue extension.
func (c *Client) InstallSubIssueExtension(ctx context.Context) bool {
	return c.r.Attach(ctx, "gh", "extension", "install", SubIssueExtension).OK()
}

// IsRepo reports whether the working directory is a repository gh can see.
func (c *Client) IsRepo(ctx context.Context) bool {
	return c.gh(ctx, "repo", "view").OK()
}

// LabelResult reports whether a label exists after CreateLabels.
type LabelResult struct {
	Name  string
	Ready bool
}

// CreateLabels force-creates each label. When creation fails, the label
// still counts as ready if "gh label list" already shows it.
func (c *Client) CreateLabels(ctx context.Context, labels []config.Label) []LabelResult {
	results := make([]LabelResult, 0, len(labels))
	var existing map[string]bool
	for _, l := range labels {
		res := c.gh(ctx, "label", "create", l.Name, "--color", l.Color, "--description", l.Description, "--force")
		ready := res.OK()
		if !ready {
			if existing == nil {
				existing = c.labelNames(ctx)
			}
			ready = existing[l.Name]
		}
		results = append(results, LabelResult{Name: l.Name, Ready: ready})
	}
	return results
}

// labelNames parses the first column of "gh label list".
func (c *Client) labelNames(ctx context.Context) map[string]bool {
	names := map[string]bool{}
	for _, line := range strings.Split(c.gh(ctx, "label", "list").Stdout, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			names[fields[0]] = true
		}
	}
	return names
}

// Version returns the first line of "gh --version", or "unknown".
func (c *Client) Version(ctx context.Context) string {
	res := c.gh(ctx, "--version")
	first, _, _ := strings.Cut(res.Stdout, "\n")
	if first = strings.TrimSpace(first); !res.OK() || first == "" {
		return "unknown"
	}
	return first
}

// ExtensionCount returns the number of installed gh extensions.
func (c *Client) ExtensionCount(ctx context.Context) int {
	n := 0
	for _, line := range strings.Split(strings.TrimSpace(c.gh(ctx, "extension", "list").Stdout), "\n") {
		if line != "" {
			n++
		}
	}
	return n
}

var loggedInRe = regexp.MustCompile(`Logged in to [^ ]*`)

// AuthStatus summarizes "gh auth status" as "Logged in to <host>".
func (c *Client) AuthStatus(ctx context.Context) string {
	if m := loggedInRe.FindString(c.gh(ctx, "auth", "status").Stdout); m != "" {
		return m
	}
	return "Not authenticated"
}
