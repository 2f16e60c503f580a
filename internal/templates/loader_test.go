package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr"

	"github.com/avelloso/prkit/internal/logging"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func newTestLoader(dir string) *Loader {
	return NewLoader(dir, logging.New(logr.Discard()))
}

func TestLoad_AlphabeticalCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "Zebra.md", "z")
	writeTemplate(t, dir, "bug.md", "# Bug template")
	writeTemplate(t, dir, "Feature.md", "# Feature template")
	writeTemplate(t, dir, "notes.txt", "ignored")

	loaded := newTestLoader(dir).Load()
	if len(loaded) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(loaded))
	}
	order := []string{loaded[0].Filename, loaded[1].Filename, loaded[2].Filename}
	want := []string{"bug.md", "Feature.md", "Zebra.md"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
	if loaded[0].Content != "# Bug template" {
		t.Fatalf("content not read: %q", loaded[0].Content)
	}
}

func TestLoad_MissingDirectoryFallsBackToDefaults(t *testing.T) {
	loaded := newTestLoader(filepath.Join(t.TempDir(), "nope")).Load()
	if len(loaded) != len(defaultTemplates) {
		t.Fatalf("expected the default set, got %d entries", len(loaded))
	}
	if loaded[0].Filename != "bug.md" || loaded[0].Type != "Bug Fix" {
		t.Fatalf("default table order and labels must hold: %+v", loaded[0])
	}
	if !strings.Contains(loaded[0].Content, "bug.md") {
		t.Fatalf("placeholder content must name the missing file: %q", loaded[0].Content)
	}
}

func TestDeriveType(t *testing.T) {
	cases := map[string]string{
		"bug.md":           "Bug Fix",
		"feature.md":       "Feature",
		"docs.md":          "Documentation",
		"refactor.md":      "Refactor",
		"test.md":          "Test",
		"performance.md":   "Performance",
		"security.md":      "Security",
		"bug_report.md":    "Bug Fix",
		"new-feature.md":   "Feature",
		"release-notes.md": "Release Notes",
	}
	for filename, want := range cases {
		if got := deriveType(filename); got != want {
			t.Fatalf("%s: expected %q, got %q", filename, want, got)
		}
	}
}

func TestKeywords_StaticTable(t *testing.T) {
	kws := newTestLoader(t.TempDir()).Keywords()
	if len(kws["bug.md"]) == 0 {
		t.Fatalf("static keyword table must apply without a manifest")
	}
}

func TestKeywords_ManifestOverride(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, manifestFile, "hotfix.md:\n  - Hotfix\n  - urgent\nbug.md:\n  - broken\n")

	kws := newTestLoader(dir).Keywords()
	if len(kws["hotfix.md"]) != 2 || kws["hotfix.md"][0] != "hotfix" {
		t.Fatalf("manifest entries must be added lowercased: %v", kws["hotfix.md"])
	}
	if len(kws["bug.md"]) != 1 || kws["bug.md"][0] != "broken" {
		t.Fatalf("manifest must override the static entry: %v", kws["bug.md"])
	}
	if len(kws["feature.md"]) == 0 {
		t.Fatalf("untouched static entries must survive the merge")
	}
}

func TestKeywords_BadManifestIgnored(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, manifestFile, "{not yaml: [")
	kws := newTestLoader(dir).Keywords()
	if len(kws["bug.md"]) == 0 {
		t.Fatalf("a broken manifest must not discard the static table")
	}
}
