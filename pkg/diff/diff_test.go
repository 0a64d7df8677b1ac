package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	content := []byte("line1\nline2\nline3\n")
	assert.Empty(t, GenerateUnifiedDiff(content, content, "expected", "actual"))
}

func TestGenerateUnifiedDiff_SingleLineChange(t *testing.T) {
	result := GenerateUnifiedDiff([]byte("line1\nline2\nline3\n"), []byte("line1\nmodified\nline3\n"), "expected", "actual")

	require.NotEmpty(t, result)
	assert.Contains(t, result, "--- expected")
	assert.Contains(t, result, "+++ actual")
	assert.Contains(t, result, "@@ -1,3 +1,3 @@")
	assert.Contains(t, result, "-line2\n")
	assert.Contains(t, result, "+modified\n")
	assert.Contains(t, result, " line1\n")
}

func TestGenerateUnifiedDiff_TrailingNewlineAddsNoLine(t *testing.T) {
	result := GenerateUnifiedDiff([]byte("a\nb\n"), []byte("a\nc\n"), "expected", "actual")
	assert.Contains(t, result, "@@ -1,2 +1,2 @@")
	assert.NotContains(t, result, " \n", "no empty context line")

	bare := GenerateUnifiedDiff([]byte("a"), []byte("b"), "expected", "actual")
	assert.Contains(t, bare, "@@ -1 +1 @@")
	assert.Contains(t, bare, "-a\n")
	assert.Contains(t, bare, "+b\n")
}

func TestGenerateUnifiedDiff_ContextIsLimited(t *testing.T) {
	var expected, actual []string
	for i := 0; i < 20; i++ {
		expected = append(expected, "same")
		actual = append(actual, "same")
	}
	actual[10] = "changed"

	result := GenerateUnifiedDiff([]byte(strings.Join(expected, "\n")+"\n"), []byte(strings.Join(actual, "\n")+"\n"), "a", "b")
	assert.Equal(t, 1, strings.Count(result, "@@ -"))
	assert.Equal(t, 6, strings.Count(result, " same\n"), "three context lines on each side")
}

func TestGenerateUnifiedDiff_Truncation(t *testing.T) {
	var expectedLines, actualLines []string
	for i := 0; i < 11000; i++ {
		expectedLines = append(expectedLines, "expected line")
		if i%2 == 0 {
			actualLines = append(actualLines, "actual line")
		} else {
			actualLines = append(actualLines, "expected line")
		}
	}

	result := GenerateUnifiedDiff([]byte(strings.Join(expectedLines, "\n")), []byte(strings.Join(actualLines, "\n")), "expected", "actual")

	require.NotEmpty(t, result)
	assert.Contains(t, result, "truncated")
	assert.LessOrEqual(t, strings.Count(result, "\n"), maxDiffLines+1)
}

func TestGenerateUnifiedDiff_EmptyContent(t *testing.T) {
	result := GenerateUnifiedDiff([]byte(""), []byte("new content\n"), "expected", "actual")
	assert.Contains(t, result, "+new content")
}

func TestLineStats(t *testing.T) {
	s := LineStats("a\nb\nc\n", "a\nB\nc\nd\n")
	assert.Equal(t, Stats{Insertions: 2, Deletions: 1}, s)
	assert.True(t, s.Changed())
	assert.False(t, LineStats("x\n", "x\n").Changed())
}

func TestInline(t *testing.T) {
	assert.Equal(t, `<div style="width: [-40-]{+65+}%">`,
		Inline(`<div style="width: 40%">`, `<div style="width: 65%">`))
	assert.Equal(t, "same", Inline("same", "same"))
}

func TestFirstDifference(t *testing.T) {
	assert.Zero(t, FirstDifference("a\nb", "a\nb"))
	assert.Equal(t, 2, FirstDifference("a\nb", "a\nc"))
	assert.Equal(t, 3, FirstDifference("a\nb", "a\nb\nc"))
}
