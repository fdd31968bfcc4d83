package messages

import (
	"fmt"
	"strings"
	"time"

	"chucklechain/tui/common"
)

// View renders the inbox or the open thread.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Messages"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("  %s Loading conversations...\n", m.spinner.View()))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("  Error: "+m.err.Error()) + "\n")
	case m.activeID != "":
		b.WriteString(m.viewThread())
	case len(m.conversations) == 0:
		b.WriteString(common.CaptionStyle.Render("  No conversations yet.") + "\n")
	default:
		b.WriteString(m.viewInbox())
	}

	b.WriteString(m.viewHints())
	return b.String()
}

func (m Model) viewInbox() string {
	now := time.Now()
	var b strings.Builder
	for i, c := range m.conversations {
		line := common.UsernameStyle.Render(c.User.Username)
		if c.LastMessage.Text != "" {
			line += " " + common.CaptionStyle.Render(common.TruncateRight(c.LastMessage.Text, 40))
			line += " " + common.TimestampStyle.Render(common.RelativeTime(c.LastMessage.Timestamp, now))
		}
		if i == m.cursor {
			b.WriteString(common.SelectedStyle.Render(line))
		} else {
			b.WriteString(common.UnselectedStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewThread() string {
	conv, ok := m.Active()
	if !ok {
		return ""
	}
	now := time.Now()
	me := m.session.User().ID

	var b strings.Builder
	b.WriteString(common.UsernameStyle.Render("@"+conv.User.Username) + "\n\n")
	for _, msg := range conv.Messages {
		who := conv.User.Username
		if msg.SenderID == me {
			who = "you"
		}
		b.WriteString("  " + common.UsernameStyle.Render(who) + " " +
			common.CaptionStyle.Render(msg.Text) + " " +
			common.TimestampStyle.Render(common.RelativeTime(msg.Timestamp, now)) + "\n")
	}
	b.WriteString("\n  " + m.input.View() + "\n")
	return b.String()
}

func (m Model) viewHints() string {
	if m.activeID != "" {
		return common.StatusBarStyle.Render("enter send · esc back")
	}
	return common.StatusBarStyle.Render("j/k move · enter open · r refresh")
}
