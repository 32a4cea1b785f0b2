package model

import "regexp"

// DefaultEpicProgress is reported when epic.md has no progress field.
const DefaultEpicProgress = "0%"

// Epic is a directory holding an epic.md metadata file and its task files.
type Epic struct {
	Name              string `json:"name" yaml:"name"`
	DirName           string `json:"dir_name" yaml:"dir_name"`
	Status            string `json:"status" yaml:"status"`
	Progress          string `json:"progress" yaml:"progress"`
	GitHub            string `json:"github,omitempty" yaml:"github,omitempty"`
	GitHubIssueNumber string `json:"github_issue_number,omitempty" yaml:"github_issue_number,omitempty"`
	Created           string `json:"created,omitempty" yaml:"created,omitempty"`
	TaskCount         int    `json:"task_count" yaml:"task_count"`
	FilePath          string `json:"file_path" yaml:"file_path"`
}

var issueNumberRe = regexp.MustCompile(`/(\d+)$`)

// IssueNumberFromURL returns the trailing numeric path segment of a GitHub
// issue URL, or "" if there is none.
func IssueNumberFromURL(url string) string {
	if m := issueNumberRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}
