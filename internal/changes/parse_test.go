package changes

import "testing"

func TestParseNameStatus(t *testing.T) {
	out := "M\tinternal/server.go\nA\tinternal/handler.go\n\nD\tREADME.md\nR100\told.go\tnew.go\nnot a status line\n"
	files := parseNameStatus(out)
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d: %+v", len(files), files)
	}
	if files[0].Status != "modified" || files[0].Path != "internal/server.go" {
		t.Fatalf("unexpected first entry: %+v", files[0])
	}
	if files[1].Status != "added" {
		t.Fatalf("expected added, got %s", files[1].Status)
	}
	if files[2].Status != "deleted" {
		t.Fatalf("expected deleted, got %s", files[2].Status)
	}
}

func TestParseNameStatus_Empty(t *testing.T) {
	if files := parseNameStatus(""); len(files) != 0 {
		t.Fatalf("expected no files, got %d", len(files))
	}
}

func TestParseCommits(t *testing.T) {
	commits := parseCommits("abc1234 Fix login crash\ndef5678 Add retry logic\n\n")
	if len(commits) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(commits))
	}
	if commits[0] != "abc1234 Fix login crash" {
		t.Fatalf("unexpected commit line: %q", commits[0])
	}
}

func TestSplitDiffLines(t *testing.T) {
	lines := splitDiffLines("a\nb\nc\n")
	if len(lines) != 3 {
		t.Fatalf("trailing newline should not add a line, got %d", len(lines))
	}
	if lines := splitDiffLines(""); lines != nil {
		t.Fatalf("empty diff should yield no lines")
	}
}
