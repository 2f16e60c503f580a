package types

import (
	"github.com/avelloso/prkit/internal/changes"
	"github.com/avelloso/prkit/internal/gitrun"
)

// DebugInfo records how the working directory was resolved plus any
// environment diagnostics. Attached best-effort to analysis payloads and to
// error envelopes.
type DebugInfo struct {
	WorkingDirectory        string             `json:"working_directory"`
	WorkingDirectorySource  string             `json:"working_directory_source"`
	ProcessWorkingDirectory string             `json:"process_working_directory"`
	Remote                  *gitrun.RemoteInfo `json:"remote,omitempty"`
	Notes                   []string           `json:"notes,omitempty"`
}

// ErrorEnvelope is the uniform failure shape every tool returns instead of
// raising. Error is human-readable; Stderr carries the raw git diagnostic
// text when the failure came from a git command.
type ErrorEnvelope struct {
	Error  string     `json:"error"`
	Stderr string     `json:"stderr,omitempty"`
	Debug  *DebugInfo `json:"_debug,omitempty"`
}

// AnalyzeResult is the analyze_file_changes success payload.
type AnalyzeResult struct {
	changes.ChangeSet
	Debug *DebugInfo `json:"_debug,omitempty"`
}
