package templates

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9_]+`)

// Tokenize lowercases the text and extracts maximal alphanumeric/underscore
// runs. Punctuation and whitespace are discarded; empty input yields nil.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// OverlapScore is the fraction of keywords present at least once among the
// tokens. A coverage ratio, not a count: repeats do not raise the score.
// Empty keyword sets score 0.
func OverlapScore(keywords []string, tokens []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		seen[tok] = struct{}{}
	}
	matched := 0
	for _, kw := range keywords {
		if _, ok := seen[kw]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords))
}

// A lexical score below this threshold is considered too weak to trust;
// selection falls through to the change-type mapping instead.
const fallbackThreshold = 0.2

// fallbackScore is the fixed placeholder reported for a mapping-based
// selection. Consumers depend on the literal value.
const fallbackScore = 0.1

const maxAlternatives = 3

// Suggest ranks the loaded templates against the change summary and picks one
// deterministically. keywords maps filename to its lexical profile. changeType
// is the caller's optional label, used verbatim in the reasoning text.
func Suggest(loaded []Template, keywords map[string][]string, changesSummary, changeType string) (Suggestion, error) {
	if len(loaded) == 0 {
		return Suggestion{}, ErrNoTemplates
	}

	tokens := Tokenize(changesSummary)

	type ranked struct {
		tpl   Template
		score float64
	}
	order := make([]ranked, 0, len(loaded))
	for _, tpl := range loaded {
		order = append(order, ranked{tpl: tpl, score: OverlapScore(keywords[tpl.Filename], tokens)})
	}
	// Ties keep the loader's enumeration order; stability is part of the
	// observable contract.
	sort.SliceStable(order, func(i, j int) bool { return order[i].score > order[j].score })

	selected := order[0].tpl
	score := order[0].score
	var reasoning string

	if score < fallbackThreshold {
		target := typeMapping[strings.ToLower(strings.TrimSpace(changeType))]
		if target == "" {
			target = fallbackTemplateFile
		}
		selected = loaded[0]
		for _, tpl := range loaded {
			if tpl.Filename == target {
				selected = tpl
				break
			}
		}
		score = fallbackScore
		reasoning = fmt.Sprintf(
			"Low keyword overlap with the change summary; selected %s from the change type mapping (score %.2f, change type: %q).",
			selected.Filename, score, changeType)
	} else {
		reasoning = fmt.Sprintf(
			"Selected %s by keyword overlap with the change summary (score %.2f, change type: %q).",
			selected.Filename, score, changeType)
	}

	alternatives := make([]Template, 0, maxAlternatives)
	for _, r := range order {
		if r.tpl.Filename == selected.Filename {
			continue
		}
		alternatives = append(alternatives, r.tpl)
		if len(alternatives) == maxAlternatives {
			break
		}
	}

	return Suggestion{
		RecommendedTemplate: selected,
		Alternatives:        alternatives,
		ConfidenceScore:     score,
		Confidence:          confidenceLevel(score),
		Reasoning:           reasoning,
	}, nil
}

// confidenceLevel buckets a score. Boundary values belong to the lower tier.
func confidenceLevel(score float64) string {
	switch {
	case score > 0.6:
		return "high"
	case score > 0.3:
		return "medium"
	default:
		return "low"
	}
}
