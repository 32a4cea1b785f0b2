// Package search counts case-insensitive regular-expression matches across
// PRD, epic and task files.
package search

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/oskar-dragon/ccflow/internal/frontmatter"
	"github.com/oskar-dragon/ccflow/internal/store"
)

// DefaultTaskLimit caps task results when the caller passes no limit.
const DefaultTaskLimit = 10

// Result is one file with at least one match.
type Result struct {
	Name       string `json:"name" yaml:"name"`
	FilePath   string `json:"file_path" yaml:"file_path"`
	MatchCount int    `json:"match_count" yaml:"match_count"`
}

// TaskResult is a matching task file.
type TaskResult struct {
	Result     `yaml:",inline"`
	EpicName   string `json:"epic_name" yaml:"epic_name"`
	TaskNumber string `json:"task_number" yaml:"task_number"`
}

// Searcher runs one compiled query against a store.
type Searcher struct {
	store *store.Store
	re    *regexp.Regexp
}

// New compiles query as a case-insensitive regular expression. The query is
// not escaped, so metacharacters keep their regexp meaning.
func New(s *store.Store, query string) (*Searcher, error) {
	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		return nil, fmt.Errorf("invalid search query %q: %w", query, err)
	}
	return &Searcher{store: s, re: re}, nil
}

// Count returns the number of non-overlapping matches in content.
func (s *Searcher) Count(content string) int {
	return len(s.re.FindAllStringIndex(content, -1))
}

func (s *Searcher) match(name, path string) (Result, bool) {
	content, ok := frontmatter.ReadFile(path)
	if !ok {
		return Result{}, false
	}
	n := s.Count(content)
	if n == 0 {
		return Result{}, false
	}
	return Result{Name: name, FilePath: path, MatchCount: n}, true
}

// Prds searches the *.md files directly under the PRDs root.
func (s *Searcher) Prds() []Result {
	results := []Result{}
	dir := s.store.PrdsDir()
	for _, e := range store.ReadDir(dir) {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		if r, ok := s.match(strings.TrimSuffix(e.Name(), ".md"), filepath.Join(dir, e.Name())); ok {
			results = append(results, r)
		}
	}
	return results
}

// Epics searches each epic's epic.md, not its task files.
func (s *Searcher) Epics() []Result {
	results := []Result{}
	for _, name := range s.store.EpicNames() {
		path := filepath.Join(s.store.EpicDir(name), store.EpicFileName)
		if r, ok := s.match(name, path); ok {
			results = append(results, r)
		}
	}
	return results
}

// Tasks searches task files across all epics in directory order and returns
// as soon as limit matches are collected. A limit <= 0 means DefaultTaskLimit.
func (s *Searcher) Tasks(limit int) []TaskResult {
	if limit <= 0 {
		limit = DefaultTaskLimit
	}
	results := []TaskResult{}
	for _, name := range s.store.EpicNames() {
		dir := s.store.EpicDir(name)
		for _, e := range store.ReadDir(dir) {
			if e.IsDir() || !store.IsTaskFile(e.Name()) {
				continue
			}
			id := strings.TrimSuffix(e.Name(), ".md")
			r, ok := s.match(id, filepath.Join(dir, e.Name()))
			if !ok {
				continue
			}
			results = append(results, TaskResult{Result: r, EpicName: name, TaskNumber: id})
			if len(results) >= limit {
				return results
			}
		}
	}
	return results
}
