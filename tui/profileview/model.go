package profileview

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chucklechain/app"
	"chucklechain/domain"
	"chucklechain/feed"
	"chucklechain/profile"
	"chucklechain/tui/common"
)

// ProfileLoadedMsg is sent when a profile fetch completes.
type ProfileLoadedMsg struct {
	Profile domain.UserProfile
	ReqSeq  int
}

// ProfileErrorMsg is sent when a profile fetch fails.
type ProfileErrorMsg struct {
	Err    error
	ReqSeq int
}

// Editable fields of the profile form, top to bottom.
const (
	editFullName = iota
	editBio
	editWebsite
	editUsername
	editCount
)

// Model shows a user's profile with their posts, a follow control for other
// people, and an edit form for the session user's own page.
type Model struct {
	account app.AccountService
	session *app.Session

	username string // whose profile is requested; session user when empty
	profile  domain.UserProfile
	cursor   int
	loading  bool
	err      error
	reqSeq   int

	editing   bool
	editFocus int
	inputs    [editCount]textinput.Model

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a profile model pointed at the session user's own page.
func New(account app.AccountService, session *app.Session) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A97F"))

	var inputs [editCount]textinput.Model
	placeholders := [editCount]string{"full name", "bio", "website", "username"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 200
	}

	return Model{
		account: account,
		session: session,
		loading: true,
		inputs:  inputs,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init starts the profile fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(m.reqSeq), m.spinner.Tick)
}

// SetSize records the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.inputs {
		m.inputs[i].Width = min(width-8, 50)
	}
}

// CapturingInput reports whether the edit form owns key presses.
func (m Model) CapturingInput() bool {
	return m.editing
}

// IsOwn reports whether the loaded profile belongs to the session user.
func (m Model) IsOwn() bool {
	return m.profile.ID == m.session.User().ID
}

// Open points the view at another user's profile and refetches.
func (m Model) Open(username string) (Model, tea.Cmd) {
	m.username = username
	m.reqSeq++
	m.loading = true
	m.err = nil
	m.cursor = 0
	m.editing = false
	return m, m.fetch(m.reqSeq)
}

func (m Model) fetch(seq int) tea.Cmd {
	account := m.account
	session := m.session
	username := m.username
	return func() tea.Msg {
		ctx := context.Background()
		if username == "" {
			username = session.User().Username
		}
		p, err := account.Profile(ctx, username)
		if err != nil {
			return ProfileErrorMsg{Err: err, ReqSeq: seq}
		}
		return ProfileLoadedMsg{Profile: p, ReqSeq: seq}
	}
}

// Update handles messages for the profile view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ProfileLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.profile = msg.Profile
		m.loading = false
		m.err = nil
		m.cursor = 0
		return m, nil

	case ProfileErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.err = msg.Err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.profile.Posts)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Like):
		if m.cursor < len(m.profile.Posts) {
			m.profile.Posts = feed.ToggleLike(m.profile.Posts, m.profile.Posts[m.cursor].ID)
		}

	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.profile.Posts) {
			p := m.profile.Posts[m.cursor]
			if p.OwnedBy(m.session.User().ID) {
				m.profile.Posts = feed.DeletePost(m.profile.Posts, p.ID)
				if m.cursor >= len(m.profile.Posts) && m.cursor > 0 {
					m.cursor--
				}
			}
		}

	case key.Matches(msg, m.keys.Follow):
		// Following yourself is not a thing; the control is hidden on the
		// session user's own page.
		if !m.IsOwn() {
			m.profile = profile.ToggleFollow(m.profile)
		}

	case key.Matches(msg, m.keys.Edit):
		if m.IsOwn() {
			m.startEdit()
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Refresh):
		m.reqSeq++
		m.loading = true
		m.err = nil
		return m, m.fetch(m.reqSeq)
	}
	return m, nil
}

func (m *Model) startEdit() {
	m.editing = true
	m.editFocus = editFullName
	m.inputs[editFullName].SetValue(m.profile.FullName)
	m.inputs[editBio].SetValue(m.profile.Bio)
	m.inputs[editWebsite].SetValue(m.profile.Website)
	m.inputs[editUsername].SetValue(m.profile.Username)
	m.focusInput(editFullName)
}

func (m *Model) focusInput(i int) {
	m.editFocus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil

	case "tab", "down":
		m.focusInput((m.editFocus + 1) % editCount)
		return m, nil

	case "shift+tab", "up":
		m.focusInput((m.editFocus - 1 + editCount) % editCount)
		return m, nil

	case "enter":
		patch := profile.Patch{
			FullName: m.inputs[editFullName].Value(),
			Bio:      m.inputs[editBio].Value(),
			Website:  m.inputs[editWebsite].Value(),
			Username: m.inputs[editUsername].Value(),
		}
		m.profile = profile.Apply(m.profile, patch)
		// Identity changes flow through the session so the feed, composer
		// and message views all pick them up.
		m.session.SetIdentity(patch.Username, patch.ProfilePicture)
		m.editing = false
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.editFocus], cmd = m.inputs[m.editFocus].Update(msg)
	return m, cmd
}
