// Package validation checks a .claude tree for structural problems: missing
// directories, epics without epic.md, orphaned task files, dangling
// dependency references and files without frontmatter.
package validation

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/oskar-dragon/ccflow/internal/frontmatter"
	"github.com/oskar-dragon/ccflow/internal/store"
)

// Level is the severity of a message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Section names the check a message came from.
type Section string

const (
	SectionDirectories Section = "directories"
	SectionIntegrity   Section = "integrity"
	SectionReferences  Section = "references"
	SectionFrontmatter Section = "frontmatter"
)

// Message is one line of a validation report.
type Message struct {
	Level   Level   `json:"level" yaml:"level"`
	Section Section `json:"section" yaml:"section"`
	Text    string  `json:"text" yaml:"text"`
}

// Result aggregates counts and messages from one or more checks.
type Result struct {
	Errors   int       `json:"errors" yaml:"errors"`
	Warnings int       `json:"warnings" yaml:"warnings"`
	Invalid  int       `json:"invalid" yaml:"invalid"`
	Messages []Message `json:"messages" yaml:"messages"`
}

// Healthy reports whether no errors, warnings or invalid files were counted.
func (r Result) Healthy() bool {
	return r.Errors == 0 && r.Warnings == 0 && r.Invalid == 0
}

// Merge adds other's counts to r and appends its messages.
func (r *Result) Merge(other Result) {
	r.Errors += other.Errors
	r.Warnings += other.Warnings
	r.Invalid += other.Invalid
	r.Messages = append(r.Messages, other.Messages...)
}

// Section returns the messages belonging to sec, in order.
func (r Result) Section(sec Section) []Message {
	var out []Message
	for _, m := range r.Messages {
		if m.Section == sec {
			out = append(out, m)
		}
	}
	return out
}

func (r *Result) add(sec Section, lvl Level, format string, args ...any) {
	r.Messages = append(r.Messages, Message{Level: lvl, Section: sec, Text: fmt.Sprintf(format, args...)})
}

// Validator runs checks against a store's root.
type Validator struct {
	store *store.Store
}

// New returns a validator for s.
func New(s *store.Store) *Validator {
	return &Validator{store: s}
}

// Validate runs every check and combines the results in a fixed order. The
// checks share no state.
func (v *Validator) Validate() Result {
	combined := Result{Messages: []Message{}}
	for _, check := range []func() Result{
		v.CheckDirectories,
		v.CheckIntegrity,
		v.CheckReferences,
		v.CheckFrontmatter,
	} {
		combined.Merge(check())
	}
	return combined
}

// CheckDirectories verifies the root exists and looks for the optional
// prds, epics and rules subdirectories. A missing optional directory is
// reported as a warning message but not counted.
func (v *Validator) CheckDirectories() Result {
	var r Result
	root := v.store.Root()
	dirs := []struct {
		path     string
		required bool
	}{
		{root, true},
		{filepath.Join(root, store.PrdsDir), false},
		{filepath.Join(root, store.EpicsDir), false},
		{filepath.Join(root, store.RulesDir), false},
	}

	for _, d := range dirs {
		info, err := os.Stat(d.path)
		switch {
		case err != nil && d.required:
			r.Errors++
			r.add(SectionDirectories, LevelError, "%s directory missing", d.path)
		case err != nil:
			r.add(SectionDirectories, LevelWarning, "%s directory missing", d.path)
		case info.IsDir():
			r.add(SectionDirectories, LevelSuccess, "%s directory exists", d.path)
		case d.required:
			r.Errors++
			r.add(SectionDirectories, LevelError, "%s exists but is not a directory", d.path)
		default:
			r.Warnings++
			r.add(SectionDirectories, LevelWarning, "%s exists but is not a directory", d.path)
		}
	}
	return r
}

// CheckIntegrity warns about epic directories without epic.md and about
// task-shaped files that live anywhere other than epics/<name>/<digits>.md.
func (v *Validator) CheckIntegrity() Result {
	var r Result
	for _, name := range v.store.EpicNames() {
		if _, err := os.Stat(filepath.Join(v.store.EpicDir(name), store.EpicFileName)); err != nil {
			r.Warnings++
			r.add(SectionIntegrity, LevelWarning, "Missing %s in %s", store.EpicFileName, name)
		}
	}

	root := v.store.Root()
	orphaned := 0
	walkFiles(root, store.IsTaskFile, func(path string) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) != 3 || parts[0] != store.EpicsDir {
			orphaned++
		}
	})
	if orphaned > 0 {
		r.Warnings++
		r.add(SectionIntegrity, LevelWarning, "Found %d orphaned task files", orphaned)
	}
	return r
}

// CheckReferences warns once per dependency that names a sibling task file
// which does not exist.
func (v *Validator) CheckReferences() Result {
	var r Result
	scanned, broken := 0, 0
	walkFiles(v.store.EpicsDir(), store.IsTaskFile, func(path string) {
		scanned++
		content, ok := frontmatter.ReadFile(path)
		if !ok {
			return
		}
		dir := filepath.Dir(path)
		id := strings.TrimSuffix(filepath.Base(path), ".md")
		for _, dep := range frontmatter.ParseDependencies(content) {
			if _, err := os.Stat(filepath.Join(dir, dep+".md")); err != nil {
				broken++
				r.Warnings++
				r.add(SectionReferences, LevelWarning, "Task %s references missing task: %s", id, dep)
			}
		}
	})
	if broken == 0 && scanned > 0 {
		r.add(SectionReferences, LevelSuccess, "All references valid")
	}
	return r
}

// CheckFrontmatter counts every markdown file under the epics and PRDs roots
// that does not open with a frontmatter delimiter as invalid.
func (v *Validator) CheckFrontmatter() Result {
	var r Result
	root := v.store.Root()
	isMarkdown := func(name string) bool { return strings.HasSuffix(name, ".md") }

	scanned := 0
	for _, dir := range []string{v.store.EpicsDir(), v.store.PrdsDir()} {
		walkFiles(dir, isMarkdown, func(path string) {
			scanned++
			content, ok := frontmatter.ReadFile(path)
			if !ok || frontmatter.HasDelimiter(content) {
				return
			}
			r.Invalid++
			name := path
			if rel, err := filepath.Rel(root, path); err == nil {
				name = rel
			}
			r.add(SectionFrontmatter, LevelWarning, "Missing frontmatter: %s", name)
		})
	}
	if r.Invalid == 0 && scanned > 0 {
		r.add(SectionFrontmatter, LevelSuccess, "All files have frontmatter")
	}
	return r
}

// walkFiles calls fn for every regular file under dir whose base name
// satisfies keep. Unreadable directories are skipped.
func walkFiles(dir string, keep func(name string) bool, fn func(path string)) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && keep(d.Name()) {
			fn(path)
		}
		return nil
	})
}
