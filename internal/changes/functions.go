package changes

import (
	"regexp"
	"strings"
)

// Per-language patterns for function definitions on added diff lines. This is
// a heuristic, not a parser: false positives and negatives are acceptable.
var functionPatterns = []struct {
	lang    string
	pattern *regexp.Regexp
}{
	{"python", regexp.MustCompile(`^\+.*\bdef\s+[A-Za-z_]\w*\s*\(`)},
	{"go", regexp.MustCompile(`^\+.*\bfunc\s+(\([^)]*\)\s*)?[A-Za-z_]\w*\s*\(`)},
	{"javascript", regexp.MustCompile(`^\+.*\b(function\s+[A-Za-z_$][\w$]*\s*\(|(const|let|var)\s+[A-Za-z_$][\w$]*\s*=\s*(async\s+)?(function\b|\())`)},
	{"java", regexp.MustCompile(`^\+.*\b(public|private|protected)\s+(static\s+)?[\w<>\[\]]+\s+\w+\s*\(`)},
}

// countFunctions scans windowed diff lines for added function definitions.
// Only `+` lines are considered; `+++` file headers are skipped.
func countFunctions(lines []string) map[string]int {
	counts := make(map[string]int)
	for _, line := range lines {
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+++") {
			continue
		}
		for _, fp := range functionPatterns {
			if fp.pattern.MatchString(line) {
				counts[fp.lang]++
			}
		}
	}
	if len(counts) == 0 {
		return nil
	}
	return counts
}
