package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/avelloso/prkit/internal/mcp/tools/types"
)

type GetPRTemplateHandler struct {
	Source TemplateSource
}

func (h *GetPRTemplateHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringArg(req.GetArguments(), "template_name", "feature.md")

	loaded := h.Source.Load()
	for _, tpl := range loaded {
		if strings.EqualFold(tpl.Filename, name) {
			return mcp.NewToolResultText(string(mustMarshal(tpl))), nil
		}
	}

	available := make([]string, 0, len(loaded))
	for _, tpl := range loaded {
		available = append(available, tpl.Filename)
	}
	envelope := types.ErrorEnvelope{
		Error: fmt.Sprintf("template %q not found; available: %s", name, strings.Join(available, ", ")),
	}
	return mcp.NewToolResultText(string(mustMarshal(envelope))), nil
}
