package store

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
)

// Activity is a markdown file changed since a point in time.
type Activity struct {
	Path     string    `json:"path" yaml:"path"`
	Kind     string    `json:"kind" yaml:"kind"`
	Modified time.Time `json:"modified" yaml:"modified"`
}

// Activity kinds, derived from where the file sits under the root.
const (
	KindPrd   = "prd"
	KindEpic  = "epic"
	KindTask  = "task"
	KindOther = "other"
)

// ModifiedSince lists markdown files under the PRDs and epics roots modified
// at or after since. Paths are relative to the store root, in walk order.
func (s *Store) ModifiedSince(since time.Time) []Activity {
	out := []Activity{}
	for _, dir := range []string{s.PrdsDir(), s.EpicsDir()} {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				slog.Debug("walk for activity", "path", path, "err", err)
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
				return nil
			}
			info, err := d.Info()
			if err != nil || info.ModTime().Before(since) {
				return nil
			}
			rel, err := filepath.Rel(s.root, path)
			if err != nil {
				rel = path
			}
			out = append(out, Activity{Path: rel, Kind: activityKind(rel), Modified: info.ModTime()})
			return nil
		})
	}
	return out
}

func activityKind(rel string) string {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	switch {
	case len(parts) == 2 && parts[0] == PrdsDir:
		return KindPrd
	case len(parts) == 3 && parts[0] == EpicsDir && parts[2] == EpicFileName:
		return KindEpic
	case len(parts) == 3 && parts[0] == EpicsDir && IsTaskFile(parts[2]):
		return KindTask
	}
	return KindOther
}
