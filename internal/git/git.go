// Package git answers the handful of repository questions the init flow and
// reports need, by shelling out to git.
package git

import (
	"context"
	"strings"

	"github.com/oskar-dragon/ccflow/internal/runner"
)

// Client runs git through a Runner.
type Client struct {
	r runner.Runner
}

// New returns a client that executes git via r.
func New(r runner.Runner) *Client {
	return &Client{r: r}
}

func (c *Client) git(ctx context.Context, args ...string) runner.Result {
	return c.r.Run(ctx, "git", args...)
}

// IsRepository reports whether the working directory is inside a git repo.
func (c *Client) IsRepository(ctx context.Context) bool {
	return c.git(ctx, "rev-parse", "--git-dir").OK()
}

// HasRemote reports whether an "origin" remote is configured.
func (c *Client) HasRemote(ctx context.Context) bool {
	return strings.Contains(c.git(ctx, "remote", "-v").Stdout, "origin")
}

// RemoteURL returns the origin URL, or "" when it cannot be read.
func (c *Client) RemoteURL(ctx context.Context) string {
	res := c.git(ctx, "remote", "get-url", "origin")
	if !res.OK() {
		return ""
	}
	return strings.TrimSpace(res.Stdout)
}

// UserName returns the configured user.name, or "" when unset.
func (c *Client) UserName(ctx context.Context) string {
	res := c.git(ctx, "config", "user.name")
	if !res.OK() {
		return ""
	}
	return strings.TrimSpace(res.Stdout)
}

// Status summarizes repository and remote state.
type Status struct {
	IsRepository bool   `json:"is_repository"`
	HasRemote    bool   `json:"has_remote"`
	RemoteURL    string `json:"remote_url,omitempty"`
}

// Status inspects the repository. Remote checks are skipped outside a repo.
func (c *Client) Status(ctx context.Context) Status {
	if !c.IsRepository(ctx) {
		return Status{}
	}
	st := Status{IsRepository: true, HasRemote: c.HasRemote(ctx)}
	if st.HasRemote {
		st.RemoteURL = c.RemoteURL(ctx)
	}
	return st
}
