package model

// Default PRD field values applied when the file omits them.
const (
	DefaultPrdStatus      = "backlog"
	DefaultPrdDescription = "No description"
)

// Prd is a product requirement document under the PRDs root.
type Prd struct {
	Name        string `json:"name" yaml:"name"`
	FileName    string `json:"file_name" yaml:"file_name"`
	Description string `json:"description" yaml:"description"`
	Status      string `json:"status" yaml:"status"`
	FilePath    string `json:"file_path" yaml:"file_path"`
}
