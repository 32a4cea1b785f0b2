package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oskar-dragon/ccflow/internal/config"
	"github.com/oskar-dragon/ccflow/internal/runner"
	"github.com/oskar-dragon/ccflow/internal/setup"
)

func stubInit(t *testing.T, fake *runner.Fake) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "# %s\n", r.URL.Path)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("CCF_RULES_URL", srv.URL)

	origRunner, origHTTP := newRunner, newHTTPClient
	newRunner = func() runner.Runner { return fake }
	newHTTPClient = srv.Client
	t.Cleanup(func() { newRunner, newHTTPClient = origRunner, origHTTP })

	return filepath.Join(t.TempDir(), config.DefaultRoot)
}

func readyGh() *runner.Fake {
	return runner.NewFake().Binary("gh").
		On("gh auth status", runner.Result{Stdout: "Logged in to github.com account octo\n"}).
		On("gh extension list", runner.Result{Stdout: "gh sub-issue\tyahsan2/gh-sub-issue\tv1\n"}).
		On("gh --version", runner.Result{Stdout: "gh version 2.60.0\n"})
}

func TestInit(t *testing.T) {
	root := stubInit(t, readyGh())

	out, _, err := execute(t, root, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "🚀 Initializing Claude Code Flow System")
	assert.Contains(t, out, "  ✅ Directories created\n")
	assert.Contains(t, out, fmt.Sprintf("  ✅ Rules copied (%d/%d)\n", len(config.DefaultRuleFiles), len(config.DefaultRuleFiles)))
	assert.Contains(t, out, "  ⚠️  Not a git repository\n  Initialize with: git init\n")
	assert.Contains(t, out, "✅ Initialization Complete!")
	assert.Contains(t, out, "  gh version 2.60.0\n  Extensions: 1 installed\n  Auth: Logged in to github.com\n")

	assert.DirExists(t, filepath.Join(root, "epics"))
	assert.FileExists(t, filepath.Join(root, "rules", "datetime.md"))
	assert.FileExists(t, filepath.Join(filepath.Dir(root), setup.ClaudeMdName))
}

func TestInitJSON(t *testing.T) {
	root := stubInit(t, readyGh())

	out, progress, err := execute(t, root, "init", "--json")
	require.NoError(t, err)
	assert.Contains(t, progress, "Creating directory structure...")

	var sum setup.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, "gh version 2.60.0", sum.GhVersion)
	assert.Equal(t, len(config.DefaultRuleFiles), sum.Rules.Count)
	assert.True(t, sum.ClaudeMdCreated)
}

func TestInitWithoutGh(t *testing.T) {
	root := stubInit(t, runner.NewFake())

	out, _, err := execute(t, root, "init")
	require.ErrorIs(t, err, setup.ErrGhUnavailable)
	assert.Contains(t, out, "  ❌ GitHub CLI (gh) not found\n")
	assert.NoDirExists(t, root)
}
