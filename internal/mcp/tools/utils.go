package tools

import (
	"encoding/json"
	"os"
	"strings"
)

const maxRootEntries = 20

// rootListing produces a capped listing of the resolved directory for the
// debug block. Best-effort: a failure becomes a note, never an error.
func rootListing(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "root listing failed: " + err.Error()
	}
	names := make([]string, 0, maxRootEntries)
	for _, e := range entries {
		if len(names) == maxRootEntries {
			names = append(names, "...")
			break
		}
		names = append(names, e.Name())
	}
	return "root entries: " + strings.Join(names, ", ")
}

func stringArg(args map[string]any, key, def string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return def
}

func boolArg(args map[string]any, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}

// intArg reads a JSON number argument. MCP arguments arrive as float64.
func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
