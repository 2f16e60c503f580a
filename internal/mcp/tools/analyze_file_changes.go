package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/avelloso/prkit/internal/changes"
	"github.com/avelloso/prkit/internal/gitrun"
	"github.com/avelloso/prkit/internal/mcp/tools/types"
)

// ChangeAnalyzer is the pipeline contract behind analyze_file_changes.
type ChangeAnalyzer interface {
	Analyze(ctx context.Context, req changes.Request) (*changes.ChangeSet, error)
}

type AnalyzeFileChangesHandler struct {
	Analyzer     ChangeAnalyzer
	Runner       gitrun.Runner
	BaseBranch   string
	MaxDiffLines int
}

func (h *AnalyzeFileChangesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	baseBranch := stringArg(args, "base_branch", h.BaseBranch)
	maxLines := intArg(args, "max_diff_lines", h.MaxDiffLines)
	analyzeReq := changes.Request{
		BaseBranch:   baseBranch,
		IncludeDiff:  boolArg(args, "include_diff", true),
		MaxDiffLines: maxLines,
		Page:         intArg(args, "page", 0),
		PageSize:     intArg(args, "page_size", 0),
	}

	wd := gitrun.ResolveWorkdir(stringArg(args, "working_directory", ""))
	analyzeReq.Workdir = wd.Dir
	debug := &types.DebugInfo{
		WorkingDirectory:        wd.Dir,
		WorkingDirectorySource:  wd.Source,
		ProcessWorkingDirectory: wd.ProcessDir,
		Remote:                  h.Runner.OriginInfo(ctx, wd.Dir),
		Notes:                   []string{rootListing(wd.Dir)},
	}

	cs, err := h.Analyzer.Analyze(ctx, analyzeReq)
	if err != nil {
		// Malformed arguments are rejected before any git command runs.
		if errors.Is(err, changes.ErrValidation) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		envelope := types.ErrorEnvelope{
			Error:  err.Error(),
			Stderr: gitrun.Stderr(err),
			Debug:  debug,
		}
		return mcp.NewToolResultText(string(mustMarshal(envelope))), nil
	}

	result := types.AnalyzeResult{ChangeSet: *cs, Debug: debug}
	return mcp.NewToolResultText(string(mustMarshal(result))), nil
}
