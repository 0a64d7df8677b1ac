package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/dom/domtest"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

func TestModal(t *testing.T) {
	t.Parallel()

	var open *reactive.Signal[bool]
	closes := 0
	builds := 0
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		open = reactive.NewSignal(s, false)
		return NewModal(s, ModalProps{
			Open:    open,
			Title:   "Rename file",
			OnClose: func() { closes++; open.Set(false) },
			Content: func(*reactive.Scope) dom.Node {
				builds++
				return ModalBody(dom.Input(dom.TestID("name"), dom.Type("text")))
			},
		})
	})
	require.False(t, tt.Exists(dom.ByRole("dialog")))
	require.Zero(t, builds)

	tt.Do(func() { open.Set(true) })
	panel := tt.ByRole("dialog")
	require.Equal(t, "true", panel.AttributeOr("aria-modal", ""))
	require.Same(t, panel, tt.Document().ActiveElement(), "focus moves into the panel")
	labelledBy, _ := panel.Attribute("aria-labelledby")
	require.Equal(t, "Rename file", tt.Must(dom.AttrEquals("id", labelledBy), "title").TextContent())

	tt.Click(tt.ByTestID("name"))
	require.Zero(t, closes, "clicks inside the panel stay inside")

	tt.KeyDown(tt.ByTestID("name"), dom.KeyEscape)
	require.Equal(t, 1, closes)
	require.False(t, tt.Exists(dom.ByRole("dialog")))

	tt.Do(func() { open.Set(true) })
	tt.Click(tt.ByClass("glade-modal__overlay"))
	require.Equal(t, 2, closes)

	tt.Do(func() { open.Set(true) })
	tt.Click(tt.ByClass("glade-modal__close"))
	require.Equal(t, 3, closes)
	require.Equal(t, 3, builds, "content is rebuilt on each open")
}

func TestModalOverlayCloseDisabled(t *testing.T) {
	t.Parallel()

	closes := 0
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		return NewModal(s, ModalProps{
			Open:                reactive.Static(true),
			DisableOverlayClose: true,
			HideCloseButton:     true,
			OnClose:             func() { closes++ },
		})
	})
	tt.Click(tt.ByClass("glade-modal__overlay"))
	require.Zero(t, closes)
	require.False(t, tt.Exists(dom.ByClass("glade-modal__close")))

	tt.KeyDown(tt.ByRole("dialog"), dom.KeyEscape)
	require.Equal(t, 1, closes)
}

func TestAlertDialog(t *testing.T) {
	t.Parallel()

	var loading *reactive.Signal[bool]
	confirms, cancels := 0, 0
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		loading = reactive.NewSignal(s, false)
		return NewAlertDialog(s, AlertDialogProps{
			Open:         reactive.Static(true),
			Title:        "Delete project?",
			Description:  "This cannot be undone.",
			Variant:      AlertDanger,
			ConfirmLabel: "Delete",
			Loading:      loading,
			OnConfirm:    func() { confirms++ },
			OnCancel:     func() { cancels++ },
		})
	})

	dialog := tt.ByRole("alertdialog")
	require.True(t, dialog.HasClass("glade-alert-dialog--danger"))
	require.True(t, tt.ByClass("glade-alert-dialog__confirm").HasClass("glade-button--danger"))
	require.Equal(t, "Delete", tt.ByClass("glade-alert-dialog__confirm").TextContent())
	require.Equal(t, "Cancel", tt.ByClass("glade-alert-dialog__cancel").TextContent())

	tt.Click(tt.ByClass("glade-alert-dialog__confirm"))
	tt.Click(tt.ByClass("glade-alert-dialog__cancel"))
	tt.KeyDown(tt.ByRole("alertdialog"), dom.KeyEscape)
	require.Equal(t, 1, confirms)
	require.Equal(t, 2, cancels)

	tt.Do(func() { loading.Set(true) })
	confirm := tt.ByClass("glade-alert-dialog__confirm")
	require.True(t, confirm.HasAttribute("disabled"))
	require.True(t, tt.ByClass("glade-alert-dialog__cancel").HasAttribute("disabled"))
	require.NotNil(t, dom.Find(confirm, dom.ByRole("status")), "spinner on confirm")

	tt.Click(confirm)
	tt.Click(tt.ByClass("glade-alert-dialog__overlay"))
	require.Equal(t, 1, confirms)
	require.Equal(t, 2, cancels)
}

func TestDrawer(t *testing.T) {
	t.Parallel()

	var open *reactive.Signal[bool]
	closed := 0
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		open = reactive.NewSignal(s, false)
		return NewDrawer(s, DrawerProps{
			Open:    open,
			Side:    DrawerLeft,
			Size:    DrawerLarge,
			Title:   "Filters",
			Content: dom.Static(dom.P(dom.TestID("body"), dom.Text("Filter list"))),
			OnClose: func() { closed++ },
		})
	})

	panel := tt.ByRole("dialog")
	require.True(t, panel.HasClass("glade-drawer--left"))
	require.True(t, panel.HasClass("glade-drawer--lg"))
	require.False(t, panel.HasClass("glade-drawer--open"))
	require.Equal(t, "true", panel.AttributeOr("aria-hidden", ""))

	tt.Do(func() { open.Set(true) })
	require.True(t, tt.ByRole("dialog").HasClass("glade-drawer--open"))

	tt.Click(tt.ByTestID("body"))
	require.True(t, open.Peek())

	tt.Click(tt.ByClass("glade-drawer__overlay"))
	require.False(t, open.Peek(), "the drawer writes the shared signal")
	require.Equal(t, 1, closed)

	tt.Do(func() { open.Set(true) })
	tt.KeyDown(tt.ByTestID("body"), dom.KeyEscape)
	require.False(t, open.Peek())

	tt.Do(func() { open.Set(true) })
	tt.Click(tt.ByClass("glade-drawer__close"))
	require.False(t, open.Peek())
	require.Equal(t, 3, closed)
}

func TestDialogsFocusPanelAndEscapeFromFocus(t *testing.T) {
	t.Parallel()

	type opened struct {
		open  *reactive.Signal[bool]
		comp  dom.Component
		role  string
	}
	tests := map[string]func(s *reactive.Scope, closes *int) opened{
		"modal": func(s *reactive.Scope, closes *int) opened {
			open := reactive.NewSignal(s, false)
			return opened{open: open, role: "dialog", comp: NewModal(s, ModalProps{
				Open:    open,
				Title:   "Invite",
				OnClose: func() { *closes++; open.Set(false) },
			})}
		},
		"alert dialog": func(s *reactive.Scope, closes *int) opened {
			open := reactive.NewSignal(s, false)
			return opened{open: open, role: "alertdialog", comp: NewAlertDialog(s, AlertDialogProps{
				Open:     open,
				Title:    "Discard?",
				OnCancel: func() { *closes++; open.Set(false) },
			})}
		},
		"drawer": func(s *reactive.Scope, closes *int) opened {
			open := reactive.NewSignal(s, false)
			return opened{open: open, role: "dialog", comp: NewDrawer(s, DrawerProps{
				Open:    open,
				Title:   "Filters",
				OnClose: func() { *closes++ },
			})}
		},
	}
	for name, build := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			closes := 0
			var d opened
			tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
				d = build(s, &closes)
				return d.comp
			})

			tt.Do(func() { d.open.Set(true) })
			active := tt.Document().ActiveElement()
			require.NotNil(t, active, "opening moves focus")
			require.NotNil(t, dom.Closest(active, dom.ByRole(d.role)), "focus lands inside the panel")

			tt.KeyDown(nil, dom.KeyEscape)
			require.Equal(t, 1, closes)
			require.False(t, d.open.Peek())
		})
	}
}
