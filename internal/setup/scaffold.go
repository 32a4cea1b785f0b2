package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oskar-dragon/ccflow/internal/store"
)

// ClaudeMdName is the project instructions file created next to the root.
const ClaudeMdName = "CLAUDE.md"

const claudeMdTemplate = `# CLAUDE.md

> Think carefully and implement the most concise solution that changes as little code as possible.

## Project-Specific Instructions

Add your project-specific instructions here.

## Testing

Always run tests before committing:
- ` + "`npm test`" + ` or equivalent for your stack

## Code Style

Follow existing patterns in the codebase.
`

// CreateDirectories makes the prds, epics and rules directories under root.
func CreateDirectories(root string) error {
	for _, dir := range []string{store.PrdsDir, store.EpicsDir, store.RulesDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// CreateClaudeMd writes the CLAUDE.md template into dir unless one exists.
// It reports whether the file was created.
func CreateClaudeMd(dir string) (bool, error) {
	path := filepath.Join(dir, ClaudeMdName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create %s: %w", ClaudeMdName, err)
	}
	if _, err := f.WriteString(claudeMdTemplate); err != nil {
		f.Close()
		return false, fmt.Errorf("write %s: %w", ClaudeMdName, err)
	}
	return true, f.Close()
}
