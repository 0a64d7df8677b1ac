package domtest

import (
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
)

// Find returns the first mounted element matching pred, or nil.
func (tt *Tester) Find(pred dom.Predicate) *dom.Element {
	return dom.Find(tt.doc.Body(), pred)
}

// FindAll returns every mounted element matching pred.
func (tt *Tester) FindAll(pred dom.Predicate) []*dom.Element {
	return dom.FindAll(tt.doc.Body(), pred)
}

// Must returns the first element matching pred and fails the test if none does.
func (tt *Tester) Must(pred dom.Predicate, what string) *dom.Element {
	tt.t.Helper()
	el := tt.Find(pred)
	require.NotNil(tt.t, el, "no element matches %s", what)
	return el
}

// ByTestID returns the element with a data-testid, failing if absent.
func (tt *Tester) ByTestID(id string) *dom.Element {
	tt.t.Helper()
	return tt.Must(dom.ByTestID(id), "data-testid="+id)
}

// ByRole returns the first element with a role, failing if absent.
func (tt *Tester) ByRole(role string) *dom.Element {
	tt.t.Helper()
	return tt.Must(dom.ByRole(role), "role="+role)
}

// ByText returns the innermost element whose trimmed text equals text,
// failing if there is none.
func (tt *Tester) ByText(text string) *dom.Element {
	tt.t.Helper()
	matches := tt.FindAll(dom.ByText(text))
	require.NotEmpty(tt.t, matches, "no element with text %q", text)
	return matches[len(matches)-1]
}

// ByClass returns the first element with a class, failing if absent.
func (tt *Tester) ByClass(class string) *dom.Element {
	tt.t.Helper()
	return tt.Must(dom.ByClass(class), "class="+class)
}

// Exists reports whether any mounted element matches pred.
func (tt *Tester) Exists(pred dom.Predicate) bool {
	return tt.Find(pred) != nil
}
