package components

import (
	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/hooks"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// ModalProps configures a Modal.
type ModalProps struct {
	Open    reactive.Accessor[bool]
	OnClose func()
	Title   string
	Size    Size
	// Content is mounted only while the modal is open.
	Content dom.Slot
	// DisableOverlayClose keeps the modal open on backdrop clicks.
	DisableOverlayClose bool
	HideCloseButton     bool
	TestID              string
}

// Modal is a dialog over a backdrop. It renders nothing while closed.
// Backdrop clicks and Escape ask the caller to close it via OnClose.
type Modal struct {
	base
	props   ModalProps
	panel   *dom.Ref
	content *hooks.Presence
	titleID string
}

// NewModal creates a Modal.
func NewModal(scope *reactive.Scope, props ModalProps) *Modal {
	props.Open = boolAccessor(props.Open)
	props.Size = props.Size.orDefault()
	m := &Modal{
		base:    newBase(scope, "Modal"),
		props:   props,
		panel:   dom.NewRef(),
		content: hooks.NewPresence(scope, props.Content),
	}
	if doc := m.document(); doc != nil {
		m.titleID = doc.NewID("glade-modal-title")
	}
	focusOnOpen(scope, props.Open, m.panel)
	return m
}

// focusOnOpen moves focus into panel each time open turns true. The request
// is posted so it runs after the render that mounts the panel.
func focusOnOpen(scope *reactive.Scope, open reactive.Accessor[bool], panel *dom.Ref) {
	was := false
	reactive.NewEffect(scope, func() {
		now := open.Get()
		if now && !was {
			scope.Runtime().Post(func() {
				if !scope.Disposed() {
					panel.SetFocus(true)
				}
			})
		}
		was = now
	})
}

func (m *Modal) close() {
	m.emit("on_close", m.props.OnClose)
}

// Render renders the modal.
func (m *Modal) Render() *dom.Element {
	open := m.props.Open.Get()
	content := m.content.Render(open)
	if !open {
		return dom.Div(cls("modal-root"), dom.TestID(m.props.TestID))
	}
	return dom.Div(
		cls("modal-root"),
		dom.TestID(m.props.TestID),
		dialogOverlay("modal", !m.props.DisableOverlayClose, m.close, dom.Div(
			cls("modal", string(m.props.Size)),
			dom.Role("dialog"),
			dom.Aria("modal", "true"),
			dom.If(m.props.Title != "" && m.titleID != "", dom.Aria("labelledby", m.titleID)),
			dom.TabIndex(-1),
			dom.WithRef(m.panel),
			dom.StopClick(),
			dom.If(m.props.Title != "" || !m.props.HideCloseButton, dom.Div(
				part("modal", "header"),
				dom.If(m.props.Title != "", dom.H2(part("modal", "title"), dom.ID(m.titleID), dom.Text(m.props.Title))),
				dom.If(!m.props.HideCloseButton, dom.Button(
					part("modal", "close"),
					dom.Type("button"),
					dom.Aria("label", "Close"),
					dom.OnClick(func(*dom.Event) { m.close() }),
					Icon(IconClose),
				)),
			)),
			content,
		)),
	)
}

// dialogOverlay renders the backdrop around panel. Clicks that reach it call
// onClose when closable; the panel stops its own clicks. Escape anywhere
// inside calls onClose.
func dialogOverlay(block string, closable bool, onClose func(), panel *dom.Element) *dom.Element {
	return dom.Div(
		part(block, "overlay"),
		dom.OnClick(func(*dom.Event) {
			if closable {
				onClose()
			}
		}),
		dom.OnKeyDown(escapeCloses(onClose)),
		panel,
	)
}

func escapeCloses(onClose func()) dom.Handler {
	return func(ev *dom.Event) {
		if ev.Key == dom.KeyEscape {
			ev.PreventDefault()
			onClose()
		}
	}
}

// ModalHeader lays out a modal's heading row.
func ModalHeader(nodes ...dom.Node) *dom.Element {
	return dom.Div(append([]dom.Node{part("modal", "header")}, nodes...)...)
}

// ModalBody wraps a modal's main content.
func ModalBody(nodes ...dom.Node) *dom.Element {
	return dom.Div(append([]dom.Node{part("modal", "body")}, nodes...)...)
}

// ModalFooter holds a modal's actions.
func ModalFooter(nodes ...dom.Node) *dom.Element {
	return dom.Div(append([]dom.Node{part("modal", "footer")}, nodes...)...)
}

// AlertDialogProps configures an AlertDialog.
type AlertDialogProps struct {
	Open         reactive.Accessor[bool]
	Title        string
	Description  string
	Variant      AlertVariant
	ConfirmLabel string
	CancelLabel  string
	Loading      reactive.Accessor[bool]
	OnConfirm    func()
	OnCancel     func()
	TestID       string
}

// AlertDialog asks the user to confirm or cancel an action. Escape and
// backdrop clicks count as cancel; both buttons are disabled while loading.
type AlertDialog struct {
	base
	props   AlertDialogProps
	panel   *dom.Ref
	titleID string
}

// NewAlertDialog creates an AlertDialog.
func NewAlertDialog(scope *reactive.Scope, props AlertDialogProps) *AlertDialog {
	props.Open = boolAccessor(props.Open)
	props.Loading = boolAccessor(props.Loading)
	props.Variant = props.Variant.orDefault()
	if props.ConfirmLabel == "" {
		props.ConfirmLabel = "Confirm"
	}
	if props.CancelLabel == "" {
		props.CancelLabel = "Cancel"
	}
	a := &AlertDialog{base: newBase(scope, "AlertDialog"), props: props, panel: dom.NewRef()}
	if doc := a.document(); doc != nil {
		a.titleID = doc.NewID("glade-alert-dialog-title")
	}
	focusOnOpen(scope, props.Open, a.panel)
	return a
}

func (a *AlertDialog) icon() IconName {
	switch a.props.Variant {
	case AlertDanger:
		return IconAlertCircle
	case AlertWarning:
		return IconAlertTriangle
	default:
		return IconInfo
	}
}

func (a *AlertDialog) cancel() {
	if untracked(a.scope, a.props.Loading) {
		return
	}
	a.emit("on_cancel", a.props.OnCancel)
}

func (a *AlertDialog) confirm() {
	if untracked(a.scope, a.props.Loading) {
		return
	}
	a.emit("on_confirm", a.props.OnConfirm)
}

// Render renders the dialog.
func (a *AlertDialog) Render() *dom.Element {
	if !a.props.Open.Get() {
		return dom.Div(cls("alert-dialog-root"), dom.TestID(a.props.TestID))
	}
	loading := a.props.Loading.Get()
	confirmVariant := VariantPrimary
	if a.props.Variant == AlertDanger {
		confirmVariant = VariantDanger
	}
	return dom.Div(
		cls("alert-dialog-root"),
		dom.TestID(a.props.TestID),
		dialogOverlay("alert-dialog", true, a.cancel, dom.Div(
			cls("alert-dialog", string(a.props.Variant)),
			dom.Role("alertdialog"),
			dom.Aria("modal", "true"),
			dom.If(a.titleID != "", dom.Aria("labelledby", a.titleID)),
			dom.TabIndex(-1),
			dom.WithRef(a.panel),
			dom.StopClick(),
			dom.Div(part("alert-dialog", "icon", string(a.props.Variant)), Icon(a.icon())),
			dom.Div(
				part("alert-dialog", "content"),
				dom.H2(part("alert-dialog", "title"), dom.ID(a.titleID), dom.Text(a.props.Title)),
				dom.If(a.props.Description != "", dom.P(part("alert-dialog", "description"), dom.Text(a.props.Description))),
			),
			dom.Div(
				part("alert-dialog", "actions"),
				dom.Button(
					cls("button", string(VariantSecondary), string(SizeMedium)),
					part("alert-dialog", "cancel"),
					dom.Type("button"),
					dom.Disabled(loading),
					dom.OnClick(func(*dom.Event) { a.cancel() }),
					dom.Text(a.props.CancelLabel),
				),
				dom.Button(
					cls("button", string(confirmVariant), string(SizeMedium), when(loading, "loading")),
					part("alert-dialog", "confirm"),
					dom.Type("button"),
					dom.Disabled(loading),
					dom.If(loading, dom.Aria("busy", "true")),
					dom.OnClick(func(*dom.Event) { a.confirm() }),
					dom.If(loading, Spinner(SizeSmall)),
					dom.Text(a.props.ConfirmLabel),
				),
			),
		)),
	)
}

// DrawerProps configures a Drawer. Open is shared with the caller: the
// drawer writes false to it when dismissed.
type DrawerProps struct {
	Open    *reactive.Signal[bool]
	Side    DrawerSide
	Size    DrawerSize
	Title   string
	Content dom.Slot
	Footer  dom.Slot
	OnClose func()
	TestID  string
}

// Drawer is a panel that slides in from the left or right edge.
type Drawer struct {
	base
	props   DrawerProps
	panel   *dom.Ref
	content dom.Node
	footer  dom.Node
}

// NewDrawer creates a Drawer.
func NewDrawer(scope *reactive.Scope, props DrawerProps) *Drawer {
	props.Side = props.Side.orDefault()
	props.Size = props.Size.orDefault()
	d := &Drawer{base: newBase(scope, "Drawer"), props: props, panel: dom.NewRef()}
	if props.Open == nil {
		d.warn("no open signal; the drawer stays closed")
		d.props.Open = reactive.NewSignal(scope, false)
	}
	d.content = props.Content.Build(scope)
	d.footer = props.Footer.Build(scope)
	focusOnOpen(scope, d.props.Open, d.panel)
	return d
}

func (d *Drawer) close() {
	if !d.props.Open.Peek() {
		return
	}
	d.props.Open.Set(false)
	d.emit("on_close", d.props.OnClose)
}

// Render renders the drawer. The panel stays in the tree so the slide
// transition can run; the open modifier drives it.
func (d *Drawer) Render() *dom.Element {
	open := d.props.Open.Get()
	return dom.Div(
		cls("drawer-root", when(open, "open")),
		dom.TestID(d.props.TestID),
		dom.If(open, dom.Div(part("drawer", "overlay"), dom.OnClick(func(*dom.Event) { d.close() }))),
		dom.Div(
			cls("drawer", string(d.props.Side), string(d.props.Size), when(open, "open")),
			dom.Role("dialog"),
			dom.Aria("modal", "true"),
			dom.AriaBool("hidden", !open),
			dom.TabIndex(-1),
			dom.WithRef(d.panel),
			dom.StopClick(),
			dom.OnKeyDown(escapeCloses(d.close)),
			dom.Div(
				part("drawer", "header"),
				dom.If(d.props.Title != "", dom.H2(part("drawer", "title"), dom.Text(d.props.Title))),
				dom.Button(
					part("drawer", "close"),
					dom.Type("button"),
					dom.Aria("label", "Close"),
					dom.OnClick(func(*dom.Event) { d.close() }),
					Icon(IconClose),
				),
			),
			dom.Div(part("drawer", "body"), d.content),
			dom.If(d.footer != nil, dom.Div(part("drawer", "footer"), d.footer)),
		),
	)
}
