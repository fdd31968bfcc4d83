package notifications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chucklechain/app"
	"chucklechain/domain"
	"chucklechain/tui/common"
)

// LoadedMsg is sent when the notification fetch completes.
type LoadedMsg struct {
	Notifications []domain.Notification
}

// ErrorMsg is sent when the notification fetch fails.
type ErrorMsg struct {
	Err error
}

// Model is the read-only notification list.
type Model struct {
	service app.NotificationService

	notifications []domain.Notification
	cursor        int
	loading       bool
	err           error

	keys    common.KeyMap
	spinner spinner.Model
	height  int
}

// New creates a notifications model.
func New(service app.NotificationService) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A97F"))

	return Model{
		service: service,
		loading: true,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init starts the notification fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.spinner.Tick)
}

// SetSize records the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.height = height
}

func (m Model) fetch() tea.Cmd {
	service := m.service
	return func() tea.Msg {
		ns, err := service.Notifications(context.Background())
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return LoadedMsg{Notifications: ns}
	}
}

// Update handles messages for the notification view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LoadedMsg:
		m.notifications = msg.Notifications
		m.loading = false
		m.err = nil
		m.cursor = 0
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.notifications)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.err = nil
			return m, m.fetch()
		}
	}

	return m, nil
}

// View renders the notification list.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Notifications"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("  %s Loading notifications...\n", m.spinner.View()))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("  Error: "+m.err.Error()) + "\n")
	case len(m.notifications) == 0:
		b.WriteString(common.CaptionStyle.Render("  All caught up.") + "\n")
	default:
		now := time.Now()
		for i, n := range m.notifications {
			line := common.UsernameStyle.Render(n.User.Username) +
				" " + common.CaptionStyle.Render(describe(n)) +
				" " + common.TimestampStyle.Render(common.RelativeTime(n.Timestamp, now))
			cursor := "  "
			if i == m.cursor {
				cursor = common.LikedStyle.Render("> ")
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	b.WriteString(common.StatusBarStyle.Render("j/k move · r refresh"))
	return b.String()
}

// describe turns a notification into a feed-style sentence.
func describe(n domain.Notification) string {
	switch n.Type {
	case domain.NotificationLike:
		return "liked your meme"
	case domain.NotificationComment:
		if n.Content != "" {
			return "commented: " + n.Content
		}
		return "commented on your meme"
	case domain.NotificationFollow:
		return "started following you"
	}
	return string(n.Type)
}
