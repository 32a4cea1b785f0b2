package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oskar-dragon/ccflow/internal/store"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func texts(msgs []Message) []string {
	out := []string{}
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}

func TestCheckDirectoriesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), ".claude")
	r := New(store.New(root)).CheckDirectories()

	assert.Equal(t, 1, r.Errors)
	assert.Equal(t, 0, r.Warnings)
	require.Len(t, r.Messages, 4)
	assert.Equal(t, LevelError, r.Messages[0].Level)
	for _, m := range r.Messages[1:] {
		assert.Equal(t, LevelWarning, m.Level)
	}
}

func TestCheckDirectoriesNotADirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "prds", "oops")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "epics"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "rules"), 0o755))

	r := New(store.New(root)).CheckDirectories()
	assert.Equal(t, 0, r.Errors)
	assert.Equal(t, 1, r.Warnings)
	assert.Contains(t, texts(r.Messages), filepath.Join(root, "prds")+" exists but is not a directory")

	file := filepath.Join(t.TempDir(), "claude")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	r = New(store.New(file)).CheckDirectories()
	assert.Equal(t, 1, r.Errors)
}

func TestCheckIntegrity(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "epics/good/epic.md", "---\n---\n")
	writeFile(t, root, "epics/good/1.md", "---\n---\n")
	writeFile(t, root, "epics/bad/1.md", "---\n---\n")
	writeFile(t, root, "prds/3.md", "---\n---\n")
	writeFile(t, root, "epics/good/nested/4.md", "")
	writeFile(t, root, "5.md", "")

	r := New(store.New(root)).CheckIntegrity()
	assert.Equal(t, 2, r.Warnings)
	assert.Equal(t, []string{"Missing epic.md in bad", "Found 3 orphaned task files"}, texts(r.Messages))
}

func TestCheckIntegrityClean(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "epics/good/epic.md", "")
	writeFile(t, root, "epics/good/1.md", "")

	r := New(store.New(root)).CheckIntegrity()
	assert.Zero(t, r.Warnings)
	assert.Empty(t, r.Messages)
}

func TestCheckReferences(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "epics/e/1.md", "status: open\n")
	writeFile(t, root, "epics/e/2.md", "depends_on: [1, 9]\n")
	writeFile(t, root, "epics/other/9.md", "")

	r := New(store.New(root)).CheckReferences()
	assert.Equal(t, 1, r.Warnings)
	assert.Equal(t, []string{"Task 2 references missing task: 9"}, texts(r.Messages))
}

func TestCheckReferencesAllValid(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "epics/e/1.md", "")
	writeFile(t, root, "epics/e/2.md", "depends_on: [1]\n")

	r := New(store.New(root)).CheckReferences()
	assert.Zero(t, r.Warnings)
	require.Len(t, r.Messages, 1)
	assert.Equal(t, LevelSuccess, r.Messages[0].Level)

	r = New(store.New(t.TempDir())).CheckReferences()
	assert.Empty(t, r.Messages)
}

func TestCheckFrontmatter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "prds/good.md", "---\nname: good\n---\n")
	writeFile(t, root, "prds/bad.md", "# no frontmatter\n")

	r := New(store.New(root)).CheckFrontmatter()
	assert.Equal(t, 1, r.Invalid)
	require.Len(t, r.Messages, 1)
	assert.Equal(t, LevelWarning, r.Messages[0].Level)
	assert.Contains(t, r.Messages[0].Text, "bad.md")
}

func TestCheckFrontmatterAllPresent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "epics/e/epic.md", "---\n---\n")
	writeFile(t, root, "epics/e/1.md", "---\n---\n")

	r := New(store.New(root)).CheckFrontmatter()
	assert.Zero(t, r.Invalid)
	assert.Equal(t, []string{"All files have frontmatter"}, texts(r.Messages))
}

func TestValidateAggregates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "epics/e/epic.md", "---\n---\n")
	writeFile(t, root, "epics/e/1.md", "depends_on: [7]\n")
	writeFile(t, root, "epics/orphan/2.md", "---\n---\n")

	v := New(store.New(root))
	r := v.Validate()

	parts := []Result{v.CheckDirectories(), v.CheckIntegrity(), v.CheckReferences(), v.CheckFrontmatter()}
	var want Result
	for _, p := range parts {
		want.Merge(p)
	}
	assert.Equal(t, want.Errors, r.Errors)
	assert.Equal(t, want.Warnings, r.Warnings)
	assert.Equal(t, want.Invalid, r.Invalid)
	assert.Equal(t, want.Messages, r.Messages)

	assert.Equal(t, 1, r.Invalid)
	assert.False(t, r.Healthy())
	assert.Len(t, r.Section(SectionReferences), 1)
	assert.Equal(t, SectionDirectories, r.Messages[0].Section)
}

func TestValidateHealthy(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "prds/p.md", "---\n---\n")
	writeFile(t, root, "epics/e/epic.md", "---\n---\n")
	writeFile(t, root, "epics/e/1.md", "---\n---\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "rules"), 0o755))

	r := New(store.New(root)).Validate()
	assert.True(t, r.Healthy(), "%+v", r.Messages)
}
