package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"prkit-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"analyze_file_changes": mcp.NewTool("analyze_file_changes",
			mcp.WithDescription("Analyze pending git changes against a base branch. Returns changed files, diff statistics, commit summaries, and a bounded diff view sized for token-limited consumers."),
			mcp.WithString("base_branch",
				mcp.Description("Base branch to compare against (default: main)"),
			),
			mcp.WithBoolean("include_diff",
				mcp.Description("Include the diff text in the result (default: true)"),
			),
			mcp.WithNumber("max_diff_lines",
				mcp.Description("Maximum diff lines returned when not paging (default: 500)"),
			),
			mcp.WithNumber("page",
				mcp.Description("1-based page of diff lines; must be supplied together with page_size"),
			),
			mcp.WithNumber("page_size",
				mcp.Description("Diff lines per page; must be supplied together with page"),
			),
			mcp.WithString("working_directory",
				mcp.Description("Directory of the repository to analyze (default: the server's working directory)"),
			),
		),
		"list_templates": mcp.NewTool("list_templates",
			mcp.WithDescription("List the available PR description templates with their type labels and contents."),
		),
		"get_pr_template": mcp.NewTool("get_pr_template",
			mcp.WithDescription("Fetch a single PR description template by filename."),
			mcp.WithString("template_name",
				mcp.Description("Template filename, e.g. 'bug.md' (default: feature.md)"),
			),
		),
		"suggest_template": mcp.NewTool("suggest_template",
			mcp.WithDescription("Suggest the best-matching PR template for a change summary, with ranked alternatives and a confidence level."),
			mcp.WithString("changes_summary",
				mcp.Required(),
				mcp.Description("Free-text description of the changes (e.g. 'Fixed a crash in the login flow')"),
			),
			mcp.WithString("change_type",
				mcp.Description("Optional change type hint: bug, fix, feature, enhancement, docs, refactor, cleanup, test, performance, optimization, security"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio serves the MCP protocol over stdin/stdout for agent-local use.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
