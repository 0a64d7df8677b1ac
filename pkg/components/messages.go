package components

import (
	"strings"
	"time"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

// ScrollEdgeThreshold is how close, in pixels, the viewport must be to an
// edge to count as reaching it.
const ScrollEdgeThreshold = 10

// MessageListProps configures a MessageList.
type MessageListProps struct {
	Messages      dom.Slot
	OnReachTop    func()
	OnReachBottom func()
	TestID        string
}

// MessageList is a scrollable message column that reports when the reader
// reaches its top (to load history) or bottom.
type MessageList struct {
	base
	props    MessageListProps
	atBottom *reactive.Signal[bool]
	viewport *dom.Ref
	messages dom.Node
}

// NewMessageList creates a MessageList. It starts at the bottom.
func NewMessageList(scope *reactive.Scope, props MessageListProps) *MessageList {
	return &MessageList{
		base:     newBase(scope, "MessageList"),
		props:    props,
		atBottom: reactive.NewSignal(scope, true),
		viewport: dom.NewRef(),
		messages: props.Messages.Build(scope),
	}
}

// AtBottom reports whether the viewport rests at the bottom.
func (m *MessageList) AtBottom() reactive.Accessor[bool] { return m.atBottom }

func (m *MessageList) scrolled(*dom.Event) {
	m.viewport.ScrollMetrics(func(sm dom.ScrollMetrics) {
		if sm.AtTop(ScrollEdgeThreshold) {
			m.emit("on_reach_top", m.props.OnReachTop)
		}
		bottom := sm.AtBottom(ScrollEdgeThreshold)
		if bottom != m.atBottom.Peek() {
			m.atBottom.Set(bottom)
		}
		if bottom {
			m.emit("on_reach_bottom", m.props.OnReachBottom)
		}
	})
}

// Render renders the list.
func (m *MessageList) Render() *dom.Element {
	atBottom := m.atBottom.Get()
	return dom.Div(
		cls("message-list", when(atBottom, "at-bottom")),
		dom.Role("log"),
		dom.Aria("live", "polite"),
		dom.TestID(m.props.TestID),
		dom.WithRef(m.viewport),
		dom.On(dom.EventScroll, m.scrolled),
		m.messages,
	)
}

// MessageRole says who sent a message.
type MessageRole string

const (
	MessageUser      MessageRole = "user"
	MessageAssistant MessageRole = "assistant"
	MessageSystem    MessageRole = "system"
)

// MessageBubbleProps configures a MessageBubble.
type MessageBubbleProps struct {
	Role    MessageRole
	Author  string
	Content string
	SentAt  time.Time
	Pending bool
}

// MessageBubble renders one chat message.
func MessageBubble(props MessageBubbleProps) *dom.Element {
	role := props.Role
	if role == "" {
		role = MessageUser
	}
	return dom.Div(
		cls("message", string(role), when(props.Pending, "pending")),
		dom.If(props.Author != "", dom.Span(part("message", "author"), dom.Text(props.Author))),
		dom.Div(part("message", "content"), dom.Text(props.Content)),
		dom.If(!props.SentAt.IsZero(), dom.El("time",
			part("message", "time"),
			dom.Attr("datetime", props.SentAt.Format(time.RFC3339)),
			dom.Text(props.SentAt.Format("15:04")),
		)),
	)
}

// MessageComposerProps configures a MessageComposer.
type MessageComposerProps struct {
	Placeholder string
	IsSending   reactive.Accessor[bool]
	Disabled    bool
	OnSend      func(string)
	TestID      string
}

// MessageComposer is a textarea with a send button. Ctrl+Enter or Cmd+Enter
// sends.
type MessageComposer struct {
	base
	props  MessageComposerProps
	buffer *reactive.Signal[string]
}

// NewMessageComposer creates a MessageComposer.
func NewMessageComposer(scope *reactive.Scope, props MessageComposerProps) *MessageComposer {
	props.IsSending = boolAccessor(props.IsSending)
	if props.Placeholder == "" {
		props.Placeholder = "Type a message..."
	}
	return &MessageComposer{
		base:   newBase(scope, "MessageComposer"),
		props:  props,
		buffer: reactive.NewSignal(scope, ""),
	}
}

// Buffer returns the unsent text.
func (c *MessageComposer) Buffer() reactive.Accessor[string] { return c.buffer }

func (c *MessageComposer) canSend(buffer string, sending bool) bool {
	return strings.TrimSpace(buffer) != "" && !sending && !c.props.Disabled
}

func (c *MessageComposer) send() {
	text := c.buffer.Peek()
	if !c.canSend(text, untracked(c.scope, c.props.IsSending)) {
		return
	}
	c.emit("on_send", func() {
		if c.props.OnSend != nil {
			c.props.OnSend(text)
		}
	})
	c.buffer.Set("")
}

// Render renders the composer.
func (c *MessageComposer) Render() *dom.Element {
	buffer := c.buffer.Get()
	sending := c.props.IsSending.Get()
	return dom.Div(
		cls("message-composer", when(c.props.Disabled, "disabled")),
		dom.TestID(c.props.TestID),
		dom.Textarea(
			part("message-composer", "input"),
			dom.Attr("rows", "1"),
			dom.Value(buffer),
			dom.Placeholder(c.props.Placeholder),
			dom.Disabled(c.props.Disabled),
			dom.OnInput(func(ev *dom.Event) { c.buffer.Set(ev.Value) }),
			dom.OnKeyDown(func(ev *dom.Event) {
				if ev.Key == dom.KeyEnter && (ev.Modifiers.Ctrl || ev.Modifiers.Meta) {
					ev.PreventDefault()
					c.send()
				}
			}),
		),
		dom.Button(
			part("message-composer", "send", when(sending, "sending")),
			dom.Type("button"),
			dom.Aria("label", "Send message"),
			dom.Disabled(!c.canSend(buffer, sending)),
			dom.OnClick(func(*dom.Event) { c.send() }),
			dom.If(sending, Spinner(SizeSmall)),
			dom.If(!sending, Icon(IconSend)),
		),
	)
}
