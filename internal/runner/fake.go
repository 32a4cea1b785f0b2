package runner

import (
	"context"
	"strings"
	"sync"
)

// Fake is a scripted Runner for tests. Responses are keyed by the full
// command line ("gh auth status"); unscripted commands exit 1.
type Fake struct {
	mu        sync.Mutex
	responses map[string]Result
	binaries  map[string]bool
	calls     []string
}

var _ Runner = (*Fake)(nil)

// NewFake returns a Fake with no scripted commands and no binaries on PATH.
func NewFake() *Fake {
	return &Fake{responses: map[string]Result{}, binaries: map[string]bool{}}
}

// On scripts the result for a command line.
func (f *Fake) On(cmdline string, res Result) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmdline] = res
	return f
}

// Binary marks name as resolvable on PATH.
func (f *Fake) Binary(name string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.binaries[name] = true
	return f
}

// Calls returns the command lines executed so far, in order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *Fake) record(name string, args []string) Result {
	line := strings.Join(append([]string{name}, args...), " ")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, line)
	if res, ok := f.responses[line]; ok {
		return res
	}
	return Result{ExitCode: 1}
}

// Run implements Runner.
func (f *Fake) Run(_ context.Context, name string, args ...string) Result {
	return f.record(name, args)
}

// Attach implements Runner.
func (f *Fake) Attach(_ context.Context, name string, args ...string) Result {
	return f.record(name, args)
}

// LookPath implements Runner.
func (f *Fake) LookPath(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.binaries[name]
}
