package messages

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chucklechain/app"
	"chucklechain/chat"
	"chucklechain/domain"
	"chucklechain/tui/common"
)

// ConversationsLoadedMsg is sent when the inbox fetch completes.
type ConversationsLoadedMsg struct {
	Conversations []domain.Conversation
}

// ConversationsErrorMsg is sent when the inbox fetch fails.
type ConversationsErrorMsg struct {
	Err error
}

// Model holds the direct-message view: an inbox list and, once a thread is
// opened, the message history with a reply input.
type Model struct {
	service app.MessageService
	session *app.Session

	conversations []domain.Conversation
	cursor        int
	activeID      string // empty while the inbox list is showing
	loading       bool
	err           error

	input   textinput.Model
	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a messages model with injected dependencies.
func New(service app.MessageService, session *app.Session) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A97F"))

	in := textinput.New()
	in.Placeholder = "Type a message..."
	in.CharLimit = 500

	return Model{
		service: service,
		session: session,
		loading: true,
		input:   in,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init starts the inbox fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchConversations(), m.spinner.Tick)
}

// SetSize records the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = min(width-8, 60)
}

// CapturingInput reports whether key presses belong to the reply input.
func (m Model) CapturingInput() bool {
	return m.activeID != ""
}

// Active returns the open conversation, if any.
func (m Model) Active() (domain.Conversation, bool) {
	for _, c := range m.conversations {
		if c.ID == m.activeID {
			return c, true
		}
	}
	return domain.Conversation{}, false
}

func (m Model) fetchConversations() tea.Cmd {
	service := m.service
	return func() tea.Msg {
		convs, err := service.Conversations(context.Background())
		if err != nil {
			return ConversationsErrorMsg{Err: err}
		}
		return ConversationsLoadedMsg{Conversations: convs}
	}
}

// Update handles messages for the DM view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ConversationsLoadedMsg:
		m.conversations = msg.Conversations
		m.loading = false
		m.err = nil
		m.cursor = 0
		return m, nil

	case ConversationsErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		if m.activeID != "" {
			return m.handleThreadKey(msg)
		}
		return m.handleListKey(msg)
	}

	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.conversations)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		if m.cursor < len(m.conversations) {
			m.activeID = m.conversations[m.cursor].ID
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.err = nil
		return m, m.fetchConversations()
	}
	return m, nil
}

func (m Model) handleThreadKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.activeID = ""
		m.input.Reset()
		m.input.Blur()
		return m, nil

	case "enter":
		conv, ok := m.Active()
		if !ok {
			return m, nil
		}
		updated, sent := chat.SendMessage(conv, m.session.User().ID, m.input.Value())
		if sent {
			m.conversations = chat.Replace(m.conversations, updated)
			m.input.Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
