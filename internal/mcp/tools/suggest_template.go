package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/avelloso/prkit/internal/mcp/tools/types"
	"github.com/avelloso/prkit/internal/templates"
)

type SuggestTemplateHandler struct {
	Source TemplateSource
}

func (h *SuggestTemplateHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	summary, _ := args["changes_summary"].(string)
	if summary == "" {
		return mcp.NewToolResultError("changes_summary parameter is required"), nil
	}
	changeType := stringArg(args, "change_type", "")

	suggestion, err := templates.Suggest(h.Source.Load(), h.Source.Keywords(), summary, changeType)
	if err != nil {
		if errors.Is(err, templates.ErrNoTemplates) {
			envelope := types.ErrorEnvelope{Error: "no templates available to suggest from"}
			return mcp.NewToolResultText(string(mustMarshal(envelope))), nil
		}
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(suggestion))), nil
}
