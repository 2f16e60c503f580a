package templates

// defaultTemplates is the known template set with friendly labels, in the
// order used when the template directory cannot be scanned.
var defaultTemplates = []struct {
	Filename string
	Label    string
}{
	{"bug.md", "Bug Fix"},
	{"feature.md", "Feature"},
	{"docs.md", "Documentation"},
	{"refactor.md", "Refactor"},
	{"test.md", "Test"},
	{"performance.md", "Performance"},
	{"security.md", "Security"},
}

// typeMapping routes an explicit change-type label to a template filename.
// Unrecognized or absent labels fall through to the feature template.
var typeMapping = map[string]string{
	"bug":           "bug.md",
	"fix":           "bug.md",
	"feature":       "feature.md",
	"enhancement":   "feature.md",
	"docs":          "docs.md",
	"documentation": "docs.md",
	"refactor":      "refactor.md",
	"cleanup":       "refactor.md",
	"test":          "test.md",
	"testing":       "test.md",
	"performance":   "performance.md",
	"optimization":  "performance.md",
	"security":      "security.md",
}

const fallbackTemplateFile = "feature.md"

// typeLabels drives friendly-label derivation from a filename: first keyword
// contained in the extension-stripped name wins.
var typeLabels = []struct {
	Keyword string
	Label   string
}{
	{"bug", "Bug Fix"},
	{"feature", "Feature"},
	{"docs", "Documentation"},
	{"refactor", "Refactor"},
	{"test", "Test"},
	{"performance", "Performance"},
	{"security", "Security"},
}

// templateKeywords is the static lexical profile per template file. Scores
// are coverage ratios over these sets; a file missing here scores 0.
var templateKeywords = map[string][]string{
	"bug.md":         {"bug", "fix", "fixed", "error", "crash", "issue", "broken", "fail"},
	"feature.md":     {"feature", "add", "added", "new", "implement", "support"},
	"docs.md":        {"docs", "documentation", "readme", "comment", "guide", "typo"},
	"refactor.md":    {"refactor", "cleanup", "restructure", "simplify", "rename", "extract"},
	"test.md":        {"test", "tests", "testing", "coverage", "spec", "assertion"},
	"performance.md": {"performance", "optimize", "slow", "fast", "memory", "cache", "speed"},
	"security.md":    {"security", "vulnerability", "auth", "sanitize", "injection", "cve"},
}
