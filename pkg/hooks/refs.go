package hooks

import "github.com/alexisbeaulieu97/glade/pkg/dom"

// RefList is a fixed-length list of refs, one per repeated element.
type RefList []*dom.Ref

// NewRefList allocates n refs.
func NewRefList(n int) RefList {
	refs := make(RefList, max(n, 0))
	for i := range refs {
		refs[i] = dom.NewRef()
	}
	return refs
}

// At returns ref i, or nil when out of range.
func (l RefList) At(i int) *dom.Ref {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

// Focus focuses element i when it exists.
func (l RefList) Focus(i int) {
	if ref := l.At(i); ref != nil {
		ref.SetFocus(true)
	}
}
