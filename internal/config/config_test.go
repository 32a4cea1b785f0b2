package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearAllEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CCF_ROOT", "CCF_LOG_LEVEL", "CCF_RULES_URL", "CCF_SEARCH_LIMIT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearAllEnv(t)
	root := filepath.Join(t.TempDir(), ".claude")

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, 10, cfg.Search.TaskLimit)
	assert.Equal(t, DefaultRulesURL, cfg.Rules.BaseURL)
	assert.Len(t, cfg.Rules.Files, len(DefaultRuleFiles))
	assert.Equal(t, DefaultLabels, cfg.Labels)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestLoadFile(t *testing.T) {
	clearAllEnv(t)
	root := t.TempDir()
	data := `log_level = "debug"

[search]
task_limit = 3

[rules]
base_url = "http://example.test/rules"
files = ["a.md"]

[[labels]]
name = "epic"
color = "000000"
description = "Epic"
`
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(data), 0o644))

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Search.TaskLimit)
	assert.Equal(t, "http://example.test/rules", cfg.Rules.BaseURL)
	assert.Equal(t, []string{"a.md"}, cfg.Rules.Files)
	assert.Equal(t, []Label{{Name: "epic", Color: "000000", Description: "Epic"}}, cfg.Labels)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearAllEnv(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("[search]\ntask_limit = 3\n"), 0o644))
	t.Setenv("CCF_SEARCH_LIMIT", "7")
	t.Setenv("CCF_RULES_URL", "http://env.test")

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Search.TaskLimit)
	assert.Equal(t, "http://env.test", cfg.Rules.BaseURL)
}

func TestLoadRootFromEnv(t *testing.T) {
	clearAllEnv(t)
	root := t.TempDir()
	t.Setenv("CCF_ROOT", root)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, filepath.Join(root, "epics", "x"), cfg.Path("epics", "x"))
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "BadTOML", file: "search = ["},
		{name: "BadLimitEnv", env: map[string]string{"CCF_SEARCH_LIMIT": "ten"}},
		{name: "ZeroLimit", file: "[search]\ntask_limit = 0\n"},
		{name: "BadLevel", env: map[string]string{"CCF_LOG_LEVEL": "loud"}},
		{name: "UnnamedLabel", file: "[[labels]]\ncolor = \"fff\"\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			clearAllEnv(t)
			root := t.TempDir()
			if tc.file != "" {
				require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(tc.file), 0o644))
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load(root)
			assert.Error(t, err)
		})
	}
}
