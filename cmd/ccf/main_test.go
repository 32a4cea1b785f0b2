package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the root command against root with color disabled and returns
// stdout and stderr.
func execute(t *testing.T, root string, args ...string) (string, string, error) {
	t.Helper()
	rootDir, jsonOutput, yamlOutput, verbose, noColor = "", false, false, false, false
	showBody, searchLimit = false, 0

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--root", root, "--no-color"}, args...))
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// writeFile creates root/rel with content, making parent directories.
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// fixture builds a small project:
//
//	prds:  auth (in-progress), billing (backlog)
//	epics: auth (in-progress, issue #42) with tasks 1 (closed), 2 (open,
//	       depends on 1, parallel), 3 (open, depends on 2)
//	       billing (planning) with no tasks
func fixture(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), ".claude")
	writeFile(t, root, "prds/auth.md", "---\nname: auth\ndescription: Login rework\nstatus: in-progress\n---\n\nOAuth everywhere.\n")
	writeFile(t, root, "prds/billing.md", "---\nname: billing\nstatus: backlog\n---\n")
	writeFile(t, root, "epics/auth/epic.md", "---\nname: auth\nstatus: in-progress\nprogress: 33%\ngithub: https://github.com/o/r/issues/42\ncreated: 2026-01-02T10:00:00Z\n---\n\n# Auth epic\n\nReplace session login.\n")
	writeFile(t, root, "epics/auth/1.md", "---\nname: Schema\nstatus: closed\n---\n")
	writeFile(t, root, "epics/auth/2.md", "---\nname: Token service\nstatus: open\ndepends_on: [1]\nparallel: true\n---\nOAuth tokens\n")
	writeFile(t, root, "epics/auth/3.md", "---\nname: Login UI\nstatus: open\ndepends_on: [2]\n---\n")
	writeFile(t, root, "epics/billing/epic.md", "---\nname: billing\nstatus: planning\n---\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "rules"), 0o755))
	return root
}
