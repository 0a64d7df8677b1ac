// Package diff compares rendered markup for snapshot checks: a unified line
// diff for reports and an inline character diff for one-line summaries.
package diff

import (
	"bytes"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
	contextLines    = 3
)

// GenerateUnifiedDiff generates a unified diff comparing expected and actual content.
// Returns empty string if content is identical.
// Truncates diffs exceeding 10,000 lines with a truncation marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	ud := difflib.UnifiedDiff{
		A:        splitLines(string(expected)),
		B:        splitLines(string(actual)),
		FromFile: expectedLabel,
		ToFile:   actualLabel,
		Context:  contextLines,
	}
	result, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return ""
	}

	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

// splitLines splits s after each newline. A missing final newline is
// supplied so every line prints on its own; a present one adds no empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		return lines[:len(lines)-1]
	}
	lines[len(lines)-1] += "\n"
	return lines
}

// Stats counts changed lines between two texts.
type Stats struct {
	Insertions int
	Deletions  int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool { return s.Insertions > 0 || s.Deletions > 0 }

// LineStats counts inserted and deleted lines.
func LineStats(expected, actual string) Stats {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var s Stats
	for _, d := range diffs {
		n := strings.Count(d.Text, "\n")
		if !strings.HasSuffix(d.Text, "\n") && d.Text != "" {
			n++
		}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			s.Insertions += n
		case diffmatchpatch.DiffDelete:
			s.Deletions += n
		}
	}
	return s
}

// Inline renders a character-level diff of two short strings, marking
// deletions as [-text-] and insertions as {+text+}.
func Inline(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		}
	}
	return b.String()
}

// FirstDifference returns the 1-based line number of the first differing
// line, or 0 when the texts are equal.
func FirstDifference(expected, actual string) int {
	if expected == actual {
		return 0
	}
	a := strings.Split(expected, "\n")
	b := strings.Split(actual, "\n")
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] != b[i] {
			return i + 1
		}
	}
	return min(len(a), len(b)) + 1
}
