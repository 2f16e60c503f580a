package changes

import (
	"context"
	"fmt"
	"strings"

	"github.com/avelloso/prkit/internal/logging"
)

// GitRunner is the collaborator contract the analyzer consumes: run a git
// subcommand in a directory, get stdout or an error carrying stderr.
type GitRunner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
	IsWorkTree(ctx context.Context, dir string) (inside bool, checked bool)
}

type Analyzer struct {
	runner GitRunner
	log    logging.Logger
}

func NewAnalyzer(runner GitRunner, log logging.Logger) *Analyzer {
	return &Analyzer{runner: runner, log: log}
}

// optionalStep holds the outcome of a best-effort git invocation: either its
// stdout or an empty value with the failure reason. Failures here never abort
// the analysis.
type optionalStep struct {
	out    string
	reason string
}

func (a *Analyzer) optional(ctx context.Context, dir string, args ...string) optionalStep {
	out, err := a.runner.Run(ctx, dir, args...)
	if err != nil {
		a.log.Debug("optional git step failed", "args", strings.Join(args, " "), "reason", err.Error())
		return optionalStep{reason: err.Error()}
	}
	return optionalStep{out: out}
}

// Analyze runs the collection pipeline against req.Workdir and assembles a
// ChangeSet. The name-status step is required: its failure aborts the whole
// analysis. The stat, log and diff-fetch steps degrade to empty output.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*ChangeSet, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	base := req.BaseBranch
	if base == "" {
		base = "main"
	}
	rangeSpec := base + "...HEAD"

	// Liveness check before any expensive diff work. When the check itself
	// cannot run we proceed and rely on command-level failure.
	if inside, checked := a.runner.IsWorkTree(ctx, req.Workdir); checked && !inside {
		return nil, fmt.Errorf("not a git working tree: %s", req.Workdir)
	}

	nameStatus, err := a.runner.Run(ctx, req.Workdir, "diff", "--name-status", rangeSpec)
	if err != nil {
		return nil, fmt.Errorf("collecting changed files: %w", err)
	}

	cs := &ChangeSet{
		BaseBranch:   base,
		FilesChanged: parseNameStatus(nameStatus),
	}

	stat := a.optional(ctx, req.Workdir, "diff", "--stat", rangeSpec)
	cs.Statistics = stat.out

	if req.IncludeDiff {
		full := a.optional(ctx, req.Workdir, "diff", rangeSpec)
		lines := splitDiffLines(full.out)
		window := applyWindow(lines, windowSpec{
			MaxLines: req.MaxDiffLines,
			Page:     req.Page,
			PageSize: req.PageSize,
		})
		cs.Diff = window.Text
		cs.TotalDiffLines = window.TotalLines
		cs.Truncated = window.Truncated
		// Heuristics run over the windowed lines only, never the full diff.
		cs.FunctionCounts = countFunctions(window.Lines)
		cs.EstimatedTokens = estimateTokens(window.Text)
	}

	log := a.optional(ctx, req.Workdir, "log", "--oneline", rangeSpec)
	cs.Commits = parseCommits(log.out)

	a.log.Info("analyzed changes",
		"base", base,
		"files", len(cs.FilesChanged),
		"diff_lines", cs.TotalDiffLines,
		"truncated", cs.Truncated)
	return cs, nil
}

func validate(req Request) error {
	if req.MaxDiffLines <= 0 {
		return fmt.Errorf("%w: max_diff_lines must be positive, got %d", ErrValidation, req.MaxDiffLines)
	}
	if req.Page < 0 || req.PageSize < 0 {
		return fmt.Errorf("%w: page and page_size must be positive", ErrValidation)
	}
	if (req.Page > 0) != (req.PageSize > 0) {
		return fmt.Errorf("%w: page and page_size must be supplied together", ErrValidation)
	}
	return nil
}
