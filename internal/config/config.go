package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the optional config file inside the .claude root.
const FileName = "ccf.toml"

// DefaultRoot is the project-management directory relative to the working
// directory.
const DefaultRoot = ".claude"

// DefaultRulesURL serves the rule templates fetched by init.
const DefaultRulesURL = "https://raw.githubusercontent.com/oskar-dragon/claude-code/main/plugins/flow/rules"

// DefaultRuleFiles are downloaded into <root>/rules by init.
var DefaultRuleFiles = []string{
	"github-operations.md",
	"worktree-operations.md",
	"path-standards.md",
	"test-execution.md",
	"datetime.md",
	"strip-frontmatter.md",
	"agent-coordination.md",
	"branch-operations.md",
	"frontmatter-operations.md",
	"standard-patterns.md",
	"use-ast-grep.md",
}

type Config struct {
	Root     string `toml:"-" json:"root" yaml:"root"`                   // CCF_ROOT or --root (default ".claude")
	LogLevel string `toml:"log_level" json:"log_level" yaml:"log_level"` // CCF_LOG_LEVEL (default "warn")

	Search SearchConfig `toml:"search" json:"search" yaml:"search"`
	Rules  RulesConfig  `toml:"rules" json:"rules" yaml:"rules"`
	Labels []Label      `toml:"labels" json:"labels" yaml:"labels"`
}

type SearchConfig struct {
	TaskLimit int `toml:"task_limit" json:"task_limit" yaml:"task_limit"` // CCF_SEARCH_LIMIT (default 10)
}

type RulesConfig struct {
	BaseURL string   `toml:"base_url" json:"base_url" yaml:"base_url"` // CCF_RULES_URL
	Files   []string `toml:"files" json:"files" yaml:"files"`
}

// Label is a GitHub issue label created by init.
type Label struct {
	Name        string `toml:"name" json:"name" yaml:"name"`
	Color       string `toml:"color" json:"color" yaml:"color"`
	Description string `toml:"description" json:"description" yaml:"description"`
}

// DefaultLabels mark epic and task issues.
var DefaultLabels = []Label{
	{Name: "epic", Color: "0E8A16", Description: "Epic issue containing multiple related tasks"},
	{Name: "task", Color: "1D76DB", Description: "Individual task within an epic"},
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Root:     DefaultRoot,
		LogLevel: "warn",
		Search:   SearchConfig{TaskLimit: 10},
		Rules: RulesConfig{
			BaseURL: DefaultRulesURL,
			Files:   append([]string(nil), DefaultRuleFiles...),
		},
		Labels: append([]Label(nil), DefaultLabels...),
	}
}

// Load resolves configuration in order: built-in defaults, <root>/ccf.toml,
// then CCF_* environment variables. root overrides CCF_ROOT when non-empty.
// A missing config file is not an error.
func Load(root string) (*Config, error) {
	c := Default()
	c.Root = envOrDefault("CCF_ROOT", DefaultRoot)
	if root != "" {
		c.Root = root
	}

	// Lists in the file replace the defaults rather than merging into them.
	c.Labels, c.Rules.Files = nil, nil
	path := filepath.Join(c.Root, FileName)
	if _, err := toml.DecodeFile(path, c); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Labels == nil {
		c.Labels = append([]Label(nil), DefaultLabels...)
	}
	if c.Rules.Files == nil {
		c.Rules.Files = append([]string(nil), DefaultRuleFiles...)
	}

	c.LogLevel = envOrDefault("CCF_LOG_LEVEL", c.LogLevel)
	c.Rules.BaseURL = envOrDefault("CCF_RULES_URL", c.Rules.BaseURL)
	if s := os.Getenv("CCF_SEARCH_LIMIT"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("CCF_SEARCH_LIMIT: %w", err)
		}
		c.Search.TaskLimit = n
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Search.TaskLimit <= 0 {
		return fmt.Errorf("search task limit must be positive, got %d", c.Search.TaskLimit)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for _, l := range c.Labels {
		if l.Name == "" {
			return errors.New("label name must not be empty")
		}
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Path joins elems under the configured root.
func (c *Config) Path(elems ...string) string {
	return filepath.Join(append([]string{c.Root}, elems...)...)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
