// Package templates loads PR description templates and ranks them against a
// free-text change summary using keyword overlap.
package templates

import "errors"

// ErrNoTemplates signals that the template directory yielded nothing to
// suggest from.
var ErrNoTemplates = errors.New("no templates available")

// Template is one PR template file with its derived friendly type label.
type Template struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Content  string `json:"content"`
}

// Suggestion is the scoring engine's output.
type Suggestion struct {
	RecommendedTemplate Template   `json:"recommended_template"`
	Alternatives        []Template `json:"alternatives"`
	ConfidenceScore     float64    `json:"confidence_score"`
	Confidence          string     `json:"confidence"`
	Reasoning           string     `json:"reasoning"`
}
