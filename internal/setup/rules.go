package setup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// RulesResult reports a rules download.
type RulesResult struct {
	Count  int      `json:"count"`
	Errors []string `json:"errors,omitempty"`
}

// Total is the number of rule files attempted.
func (r RulesResult) Total() int { return r.Count + len(r.Errors) }

// OK reports whether at least one rule was copied.
func (r RulesResult) OK() bool { return r.Count > 0 }

// FetchRules downloads each file from baseURL into dir. Failures are
// collected per file as "<file>: <reason>" and never stop the loop.
func FetchRules(ctx context.Context, client *http.Client, baseURL string, files []string, dir string) RulesResult {
	if client == nil {
		client = http.DefaultClient
	}
	base := strings.TrimSuffix(baseURL, "/")
	res := RulesResult{}
	for _, name := range files {
		if err := fetchRule(ctx, client, base+"/"+name, filepath.Join(dir, name)); err != nil {
			slog.Debug("rule download failed", "file", name, "err", err)
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		res.Count++
	}
	return res
}

func fetchRule(ctx context.Context, client *http.Client, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	return os.WriteFile(dest, body, 0o644)
}
