package changes

import "strings"

// parseNameStatus parses `git diff --name-status` output. Each line must
// split on a single tab into exactly two fields; anything else (blank lines,
// rename/copy lines with a second path, header noise) is dropped, never fatal.
func parseNameStatus(out string) []FileChange {
	files := make([]FileChange, 0)
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			continue
		}
		files = append(files, FileChange{
			Status: statusLabel(strings.TrimSpace(fields[0])),
			Path:   fields[1],
		})
	}
	return files
}

// parseCommits parses `git log --oneline` output into one summary per line.
func parseCommits(out string) []string {
	commits := make([]string, 0)
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		commits = append(commits, line)
	}
	return commits
}

// splitDiffLines splits a raw diff into lines, discarding the empty trailing
// element a final newline produces. An empty diff yields no lines.
func splitDiffLines(diff string) []string {
	if diff == "" {
		return nil
	}
	lines := strings.Split(diff, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
