package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"sigs.k8s.io/yaml"

	"github.com/avelloso/prkit/internal/logging"
)

const manifestFile = "templates.yaml"

// Loader reads the template directory fresh on every call; the directory is
// treated as read-only and nothing is cached between requests.
type Loader struct {
	dir string
	log logging.Logger
}

func NewLoader(dir string, log logging.Logger) *Loader {
	return &Loader{dir: dir, log: log}
}

// Load enumerates templates. When the directory is readable its .md files are
// listed alphabetically (case-insensitive); when it is not, the static default
// table supplies the set in its own order, with placeholder contents. An
// unreadable individual file never aborts the load: its content becomes a
// descriptive error string and it keeps its derived type.
func (l *Loader) Load() []Template {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		l.log.Debug("template directory not readable, using default set", "dir", l.dir, "reason", err.Error())
		out := make([]Template, 0, len(defaultTemplates))
		for _, dt := range defaultTemplates {
			out = append(out, Template{
				Filename: dt.Filename,
				Type:     dt.Label,
				Content:  fmt.Sprintf("Template file not found: %s (%v)", filepath.Join(l.dir, dt.Filename), err),
			})
		}
		return out
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".md") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	out := make([]Template, 0, len(names))
	for _, name := range names {
		path := filepath.Join(l.dir, name)
		content, err := os.ReadFile(path)
		tpl := Template{Filename: name, Type: deriveType(name)}
		if err != nil {
			l.log.Debug("template file not readable", "file", name, "reason", err.Error())
			tpl.Content = fmt.Sprintf("Failed to read template %s: %v", name, err)
		} else {
			tpl.Content = string(content)
		}
		out = append(out, tpl)
	}
	return out
}

// Keywords returns the lexical profile per filename: the static table,
// overridden per entry by an optional templates.yaml manifest in the
// directory mapping filename to a keyword list. Manifest problems are
// logged and ignored.
func (l *Loader) Keywords() map[string][]string {
	merged := make(map[string][]string, len(templateKeywords))
	for name, kws := range templateKeywords {
		merged[name] = kws
	}
	raw, err := os.ReadFile(filepath.Join(l.dir, manifestFile))
	if err != nil {
		return merged
	}
	var overrides map[string][]string
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		l.log.Debug("template manifest not parseable", "file", manifestFile, "reason", err.Error())
		return merged
	}
	for name, kws := range overrides {
		lowered := make([]string, 0, len(kws))
		for _, kw := range kws {
			lowered = append(lowered, strings.ToLower(kw))
		}
		merged[name] = lowered
	}
	return merged
}

// deriveType turns a filename into a friendly label: strip the extension,
// replace separators with spaces, then match the fixed type keywords by
// substring; no match falls back to the title-cased name.
func deriveType(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	cleaned := strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(base)
	lowered := strings.ToLower(cleaned)
	for _, tl := range typeLabels {
		if strings.Contains(lowered, tl.Keyword) {
			return tl.Label
		}
	}
	return titleCase(cleaned)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
