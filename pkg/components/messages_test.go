package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glade/pkg/dom"
	"github.com/alexisbeaulieu97/glade/pkg/dom/domtest"
	"github.com/alexisbeaulieu97/glade/pkg/reactive"
)

func TestMessageListEdges(t *testing.T) {
	t.Parallel()

	var top, bottom int
	var list *MessageList
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		list = NewMessageList(s, MessageListProps{
			TestID: "log",
			Messages: dom.Static(
				MessageBubble(MessageBubbleProps{Role: MessageAssistant, Author: "Bot", Content: "hi"}),
				MessageBubble(MessageBubbleProps{Content: "hello", SentAt: time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC)}),
			),
			OnReachTop:    func() { top++ },
			OnReachBottom: func() { bottom++ },
		})
		return list
	})
	log := func() *dom.Element { return tt.ByTestID("log") }
	require.Equal(t, "log", log().AttributeOr("role", ""))
	require.True(t, log().HasClass("glade-message-list--at-bottom"))
	require.Len(t, tt.FindAll(dom.ByClass("glade-message")), 2)
	require.Equal(t, "09:05", tt.ByClass("glade-message__time").TextContent())

	tt.Host().SetScrollByTestID("log", dom.ScrollMetrics{ScrollTop: 200, ClientHeight: 300, ScrollHeight: 1000})
	tt.Scroll(log())
	require.False(t, list.AtBottom().Get())
	require.False(t, log().HasClass("glade-message-list--at-bottom"))
	require.Zero(t, top)
	require.Zero(t, bottom)

	tt.Host().SetScrollByTestID("log", dom.ScrollMetrics{ScrollTop: 4, ClientHeight: 300, ScrollHeight: 1000})
	tt.Scroll(log())
	require.Equal(t, 1, top)

	tt.Host().SetScrollByTestID("log", dom.ScrollMetrics{ScrollTop: 695, ClientHeight: 300, ScrollHeight: 1000})
	tt.Scroll(log())
	require.Equal(t, 1, bottom)
	require.True(t, list.AtBottom().Get())
}

func TestMessageListScrollWithoutLayout(t *testing.T) {
	t.Parallel()

	called := false
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		return NewMessageList(s, MessageListProps{TestID: "log", OnReachTop: func() { called = true }})
	})
	require.NotPanics(t, func() { tt.Scroll(tt.ByTestID("log")) })
	require.False(t, called)
}

func TestMessageComposerSend(t *testing.T) {
	t.Parallel()

	var sent []string
	var sending *reactive.Signal[bool]
	var c *MessageComposer
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		sending = reactive.NewSignal(s, false)
		c = NewMessageComposer(s, MessageComposerProps{
			IsSending: sending,
			OnSend:    func(text string) { sent = append(sent, text) },
		})
		return c
	})
	input := func() *dom.Element { return tt.ByClass("glade-message-composer__input") }
	send := func() *dom.Element { return tt.ByClass("glade-message-composer__send") }

	require.Equal(t, "Type a message...", input().AttributeOr("placeholder", ""))
	require.True(t, send().HasAttribute("disabled"))

	tt.Focus(input())
	tt.Type(nil, "   ")
	require.True(t, send().HasAttribute("disabled"))
	tt.Press(nil, dom.KeyEnter, dom.Modifiers{Ctrl: true})
	require.Empty(t, sent)

	tt.Type(nil, "hi")
	require.False(t, send().HasAttribute("disabled"))
	tt.Press(nil, dom.KeyEnter)
	require.Empty(t, sent, "plain Enter does not send")

	tt.Press(nil, dom.KeyEnter, dom.Modifiers{Meta: true})
	require.Equal(t, []string{"   hi"}, sent)
	require.Equal(t, "", c.Buffer().Get())
	require.Equal(t, "", input().Value())

	tt.Type(input(), "again")
	tt.Do(func() { sending.Set(true) })
	require.True(t, send().HasClass("glade-message-composer__send--sending"))
	tt.Click(send())
	require.Len(t, sent, 1)

	tt.Do(func() { sending.Set(false) })
	tt.Click(send())
	require.Equal(t, []string{"   hi", "again"}, sent)
}

func TestMessageComposerKeepsFocusWhileTyping(t *testing.T) {
	t.Parallel()

	var c *MessageComposer
	tt := domtest.New(t, func(s *reactive.Scope) dom.Component {
		c = NewMessageComposer(s, MessageComposerProps{})
		return c
	})
	input := func() *dom.Element { return tt.ByClass("glade-message-composer__input") }

	tt.Focus(input())
	tt.Type(nil, "hello")
	require.Equal(t, "hello", c.Buffer().Get())
	require.Same(t, input(), tt.Document().ActiveElement(), "the re-rendered textarea keeps focus")
	require.Equal(t, "hello", input().Value())

	tt.Press(nil, dom.KeyBackspace)
	require.Equal(t, "hell", c.Buffer().Get())
}
