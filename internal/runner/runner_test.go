package runner

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecRun(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found in PATH")
	}
	r := &Exec{Dir: t.TempDir()}

	res := r.Run(context.Background(), "sh", "-c", "echo hello; echo oops >&2")
	assert.True(t, res.OK())
	assert.Equal(t, "hello\n", res.Stdout)

	res = r.Run(context.Background(), "sh", "-c", "exit 3")
	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.OK())
}

func TestExecMissingBinary(t *testing.T) {
	r := &Exec{}
	res := r.Run(context.Background(), "ccf-definitely-not-a-binary")
	assert.Equal(t, ExitNotFound, res.ExitCode)
	assert.False(t, r.LookPath("ccf-definitely-not-a-binary"))
}

func TestFake(t *testing.T) {
	f := NewFake().
		Binary("gh").
		On("gh auth status", Result{Stdout: "Logged in to github.com"})

	assert.True(t, f.LookPath("gh"))
	assert.False(t, f.LookPath("brew"))

	res := f.Run(context.Background(), "gh", "auth", "status")
	assert.True(t, res.OK())
	assert.Equal(t, "Logged in to github.com", res.Stdout)

	res = f.Attach(context.Background(), "gh", "auth", "login")
	assert.Equal(t, 1, res.ExitCode)

	assert.Equal(t, []string{"gh auth status", "gh auth login"}, f.Calls())
}
