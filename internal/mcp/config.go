package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/avelloso/prkit/internal/changes"
	"github.com/avelloso/prkit/internal/config"
	"github.com/avelloso/prkit/internal/gitrun"
	"github.com/avelloso/prkit/internal/logging"
	"github.com/avelloso/prkit/internal/mcp/tools"
	"github.com/avelloso/prkit/internal/templates"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	baseLogger := logging.Root(config.LogLevel())
	log := logging.New(baseLogger)

	runner := gitrun.Runner{Timeout: config.GitTimeout()}
	analyzer := changes.NewAnalyzer(runner, log.WithName("changes"))
	loader := templates.NewLoader(config.TemplatesDir(), log.WithName("templates"))

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"analyze_file_changes": &tools.AnalyzeFileChangesHandler{
				Analyzer:     analyzer,
				Runner:       runner,
				BaseBranch:   config.DefaultBaseBranch(),
				MaxDiffLines: config.MaxDiffLines(),
			},
			"list_templates":   &tools.ListTemplatesHandler{Source: loader},
			"get_pr_template":  &tools.GetPRTemplateHandler{Source: loader},
			"suggest_template": &tools.SuggestTemplateHandler{Source: loader},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
