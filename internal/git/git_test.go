package git

import (
	"context"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oskar-dragon/ccflow/internal/runner"
)

func TestStatusOutsideRepository(t *testing.T) {
	f := runner.NewFake()
	assert.Equal(t, Status{}, New(f).Status(context.Background()))
	assert.Equal(t, []string{"git rev-parse --git-dir"}, f.Calls())
}

func TestStatusWithRemote(t *testing.T) {
	f := runner.NewFake().
		On("git rev-parse --git-dir", runner.Result{Stdout: ".git\n"}).
		On("git remote -v", runner.Result{Stdout: "origin\tgit@github.com:o/r.git (fetch)\n"}).
		On("git remote get-url origin", runner.Result{Stdout: "git@github.com:o/r.git\n"})

	assert.Equal(t, Status{IsRepository: true, HasRemote: true, RemoteURL: "git@github.com:o/r.git"}, New(f).Status(context.Background()))
}

func TestStatusWithoutRemote(t *testing.T) {
	f := runner.NewFake().
		On("git rev-parse --git-dir", runner.Result{}).
		On("git remote -v", runner.Result{})

	assert.Equal(t, Status{IsRepository: true}, New(f).Status(context.Background()))
}

func TestUserName(t *testing.T) {
	ctx := context.Background()
	f := runner.NewFake().On("git config user.name", runner.Result{Stdout: "Ada\n"})
	assert.Equal(t, "Ada", New(f).UserName(ctx))
	assert.Equal(t, "", New(runner.NewFake()).UserName(ctx))
}

func TestStatusRealRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}
	dir := t.TempDir()
	run(t, dir, "git", "init")
	run(t, dir, "git", "remote", "add", "origin", "https://example.com/o/r.git")

	st := New(&runner.Exec{Dir: dir}).Status(context.Background())
	assert.Equal(t, Status{IsRepository: true, HasRemote: true, RemoteURL: "https://example.com/o/r.git"}, st)

	st = New(&runner.Exec{Dir: t.TempDir()}).Status(context.Background())
	assert.False(t, st.IsRepository)
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	require.NoError(t, cmd.Run(), "%s %v", name, args)
}
