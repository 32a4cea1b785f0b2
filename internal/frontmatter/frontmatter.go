// Package frontmatter reads the flat "key: value" header lines used by PRD,
// epic and task markdown files. It is deliberately not a YAML parser: a field
// is recognized only when its key starts a line.
package frontmatter

import (
	"log/slog"
	"os"
	"strings"
)

// Delimiter opens (and closes) a frontmatter block.
const Delimiter = "---"

// DependsOnField is the task field listing sibling task ids.
const DependsOnField = "depends_on"

// ExtractField returns the trimmed remainder of the first line that begins
// with "<field>:". It returns "" when no line matches.
func ExtractField(content, field string) string {
	prefix := field + ":"
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return ""
}

// ParseDependencies extracts the depends_on field and splits a bracketed,
// comma-separated list such as "[1, 2, 3]" into its trimmed, non-empty
// elements. Ids are not validated here.
func ParseDependencies(content string) []string {
	raw := ExtractField(content, DependsOnField)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	deps := []string{}
	for _, dep := range strings.Split(raw, ",") {
		if dep = strings.TrimSpace(dep); dep != "" {
			deps = append(deps, dep)
		}
	}
	return deps
}

// HasDelimiter reports whether content opens with a frontmatter delimiter.
func HasDelimiter(content string) bool {
	return strings.HasPrefix(content, Delimiter)
}

// ReadFile returns the file's content and whether it could be read. Read
// failures are logged at debug level and otherwise swallowed; callers treat
// an unreadable file like an absent one.
func ReadFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("read markdown file", "path", path, "err", err)
		return "", false
	}
	return string(data), true
}

// ReadField reads path and extracts field from it, returning "" when the file
// is missing or unreadable.
func ReadField(path, field string) string {
	content, ok := ReadFile(path)
	if !ok {
		return ""
	}
	return ExtractField(content, field)
}

// Body returns content without its leading frontmatter block. Content that
// does not open with a delimiter, or whose block is never closed, is
// returned unchanged.
func Body(content string) string {
	if !HasDelimiter(content) {
		return content
	}
	_, rest, ok := strings.Cut(content, "\n")
	if !ok {
		return content
	}
	for rest != "" {
		line, next, _ := strings.Cut(rest, "\n")
		if strings.TrimSpace(line) == Delimiter {
			return strings.TrimLeft(next, "\n")
		}
		rest = next
	}
	return content
}
