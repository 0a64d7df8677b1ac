package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/dom/domtest"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

func TestSanitizeSegments(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"A", "B", "1", "2", "C", "D"}, SanitizeSegments("ab-12 cd", 6))
	require.Equal(t, []string{"A", "B"}, SanitizeSegments("ab-12 cd", 2))
	require.Empty(t, SanitizeSegments("--- !", 6))
	require.Empty(t, SanitizeSegments("abc", 0))
	for _, s := range SanitizeSegments("x9-é_Q", 10) {
		require.Len(t, []rune(s), 1)
	}
}

type segmentedHarness struct {
	tt        *domtest.Tester
	input     *SegmentedInput
	changes   []string
	completes []string
}

func mountSegmented(t *testing.T, props SegmentedInputProps) *segmentedHarness {
	t.Helper()
	h := &segmentedHarness{}
	props.OnChange = func(v string) { h.changes = append(h.changes, v) }
	props.OnComplete = func(v string) { h.completes = append(h.completes, v) }
	h.tt = domtest.New(t, func(s *reactive.Scope) dom.Component {
		h.input = NewSegmentedInput(s, props)
		return h.input
	})
	return h
}

func (h *segmentedHarness) segment(i int) *dom.Element {
	return h.tt.FindAll(dom.ByClass("glade-segmented-input__segment"))[i]
}

func TestSegmentedInputPasteSpreads(t *testing.T) {
	t.Parallel()

	h := mountSegmented(t, SegmentedInputProps{Length: 6, SeparatorAfter: 3})
	require.Len(t, h.tt.FindAll(dom.ByClass("glade-segmented-input__separator")), 1)

	h.tt.Focus(h.segment(0))
	ev := h.tt.Paste(h.segment(0), "ab-12 cd")
	require.True(t, ev.DefaultPrevented())

	require.Equal(t, []string{"A", "B", "1", "2", "C", "D"}, h.input.Slots())
	require.Equal(t, []string{"AB12CD"}, h.changes)
	require.Equal(t, []string{"AB12CD"}, h.completes)
	require.Same(t, h.segment(5), h.tt.Document().ActiveElement())
	require.Equal(t, "C", h.segment(4).Value())
}

func TestSegmentedInputTypingAdvancesAndBackspaceRetreats(t *testing.T) {
	t.Parallel()

	h := mountSegmented(t, SegmentedInputProps{Length: 4})
	h.tt.Focus(h.segment(0))
	h.tt.Type(nil, "a7")

	require.Equal(t, []string{"A", "7", "", ""}, h.input.Slots())
	require.Same(t, h.segment(2), h.tt.Document().ActiveElement())
	require.Equal(t, []string{"A", "A7"}, h.changes)

	h.tt.Press(nil, dom.KeyBackspace)
	require.Equal(t, []string{"A", "", "", ""}, h.input.Slots())
	require.Same(t, h.segment(1), h.tt.Document().ActiveElement())

	h.tt.Press(nil, dom.KeyBackspace)
	require.Equal(t, "", h.input.Value())
	require.Same(t, h.segment(0), h.tt.Document().ActiveElement())

	h.tt.Press(nil, dom.KeyBackspace)
	require.Same(t, h.segment(0), h.tt.Document().ActiveElement())
	require.Empty(t, h.completes)
}

func TestSegmentedInputRejectsSymbols(t *testing.T) {
	t.Parallel()

	h := mountSegmented(t, SegmentedInputProps{Length: 3})
	h.tt.Focus(h.segment(0))
	h.tt.Type(nil, "-")
	require.Equal(t, []string{"", "", ""}, h.input.Slots())
	require.Empty(t, h.changes)
	require.Equal(t, "", h.segment(0).Value())
}

func TestSegmentedInputArrowsAndCompletion(t *testing.T) {
	t.Parallel()

	h := mountSegmented(t, SegmentedInputProps{Length: 3, Mask: true})
	require.Equal(t, "password", h.segment(0).AttributeOr("type", ""))

	h.tt.Focus(h.segment(0))
	h.tt.KeyDown(nil, dom.KeyArrowRight)
	h.tt.KeyDown(nil, dom.KeyArrowRight)
	h.tt.KeyDown(nil, dom.KeyArrowRight)
	require.Same(t, h.segment(2), h.tt.Document().ActiveElement())
	h.tt.KeyDown(nil, dom.KeyArrowLeft)
	require.Same(t, h.segment(1), h.tt.Document().ActiveElement())

	h.tt.Paste(h.segment(1), "xyz")
	require.Equal(t, "XYZ", h.input.Value())
	require.Equal(t, []string{"XYZ"}, h.completes)

	// Rewriting a slot with the same character is not a change.
	h.tt.Focus(h.segment(0))
	h.tt.Type(nil, "x")
	require.Len(t, h.changes, 1)
}

func TestSegmentedInputZeroLength(t *testing.T) {
	t.Parallel()

	h := mountSegmented(t, SegmentedInputProps{Length: 0, TestID: "otp"})
	require.Empty(t, h.tt.ByTestID("otp").Children())
	require.Equal(t, "", h.input.Value())
}
