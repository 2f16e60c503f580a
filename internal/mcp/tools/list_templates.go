package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/avelloso/prkit/internal/templates"
)

// TemplateSource loads the template set and its keyword profiles. Loaded
// fresh on every request; staleness between calls is acceptable.
type TemplateSource interface {
	Load() []templates.Template
	Keywords() map[string][]string
}

type ListTemplatesHandler struct {
	Source TemplateSource
}

func (h *ListTemplatesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	loaded := h.Source.Load()
	return mcp.NewToolResultText(string(mustMarshal(loaded))), nil
}
