// Package changes turns raw git output into a bounded, inspectable view of a
// repository's pending changes against a base branch.
package changes

import "errors"

// ErrValidation marks a malformed request argument, detected before any git
// command runs.
var ErrValidation = errors.New("invalid argument")

// FileChange is one entry of `git diff --name-status`.
type FileChange struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

// ChangeSet is the assembled result of one analysis. Immutable once built;
// never persisted.
type ChangeSet struct {
	BaseBranch      string         `json:"base_branch"`
	FilesChanged    []FileChange   `json:"files_changed"`
	Statistics      string         `json:"statistics"`
	Commits         []string       `json:"commits"`
	Diff            string         `json:"diff,omitempty"`
	TotalDiffLines  int            `json:"total_diff_lines"`
	Truncated       bool           `json:"truncated"`
	FunctionCounts  map[string]int `json:"function_counts,omitempty"`
	EstimatedTokens int            `json:"estimated_tokens,omitempty"`
}

// Request carries the arguments of one analysis invocation.
type Request struct {
	BaseBranch   string
	IncludeDiff  bool
	MaxDiffLines int
	// Page/PageSize select the paging window when both are positive;
	// otherwise the MaxDiffLines hard cap applies.
	Page     int
	PageSize int
	Workdir  string
}

var statusLabels = map[byte]string{
	'A': "added",
	'M': "modified",
	'D': "deleted",
	'R': "renamed",
	'C': "copied",
	'T': "typechanged",
}

func statusLabel(code string) string {
	if code == "" {
		return ""
	}
	if label, ok := statusLabels[code[0]]; ok {
		return label
	}
	return code
}
