package changes

import (
	"fmt"
	"strings"
)

// windowSpec selects exactly one windowing policy for a diff. When Page and
// PageSize are both positive the paging window applies and MaxLines is
// ignored; otherwise the first MaxLines lines are kept.
type windowSpec struct {
	MaxLines int
	Page     int
	PageSize int
}

func (w windowSpec) paged() bool { return w.Page > 0 && w.PageSize > 0 }

// windowResult is the bounded view of a diff. TotalLines is always the
// un-windowed ground truth; Text includes the truncation marker when lines
// were omitted.
type windowResult struct {
	Text       string
	Lines      []string
	TotalLines int
	Truncated  bool
}

// applyWindow bounds the diff to the requested window. The marker line states
// how much of the diff is shown and how to request more; it is appended after
// the kept lines and is not counted in TotalLines.
func applyWindow(lines []string, spec windowSpec) windowResult {
	total := len(lines)
	res := windowResult{TotalLines: total}
	if total == 0 {
		return res
	}

	if spec.paged() {
		start := (spec.Page - 1) * spec.PageSize
		end := start + spec.PageSize
		sliceStart, sliceEnd := start, end
		if sliceStart > total {
			sliceStart = total
		}
		if sliceEnd > total {
			sliceEnd = total
		}
		window := lines[sliceStart:sliceEnd]
		res.Lines = window
		text := strings.Join(window, "\n")
		// The marker appears only when lines remain past this page; the
		// final page is a complete view of its tail.
		if end < total {
			res.Truncated = true
			pages := (total + spec.PageSize - 1) / spec.PageSize
			text += fmt.Sprintf(
				"\n... Page %d of %d (lines %d-%d of %d). Request another page to see more.",
				spec.Page, pages, start+1, end, total)
		}
		res.Text = text
		return res
	}

	if total > spec.MaxLines {
		window := lines[:spec.MaxLines]
		res.Lines = window
		res.Truncated = true
		res.Text = strings.Join(window, "\n") + fmt.Sprintf(
			"\n... Diff truncated: showing first %d of %d lines. Increase max_diff_lines or use page/page_size to see more.",
			spec.MaxLines, total)
		return res
	}

	res.Lines = lines
	res.Text = strings.Join(lines, "\n")
	return res
}
