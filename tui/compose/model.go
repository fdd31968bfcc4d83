package compose

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"chucklechain/app"
	"chucklechain/composer"
	"chucklechain/domain"
)

// Focusable fields, top to bottom.
const (
	fieldCaption = iota
	fieldImage
	fieldCategory
	fieldPlacement
	fieldPosition
	fieldSubmit
	fieldCount
)

// DoneMsg carries the assembled post back to the root model.
type DoneMsg struct {
	Post domain.Post
}

// CancelMsg asks the root model to leave the composer without posting.
type CancelMsg struct{}

// failedMsg reports a validation or file error back to the form.
type failedMsg struct {
	err error
}

// Model is the meme composition form.
type Model struct {
	session *app.Session

	caption   textarea.Model
	imagePath textinput.Model
	category  textinput.Model
	placement domain.CaptionPlacement
	position  composer.TextPosition
	focus     int

	errText string
	width   int
}

// New creates an empty composer form.
func New(session *app.Session) Model {
	ta := textarea.New()
	ta.Placeholder = "What's the caption?"
	ta.SetHeight(3)
	ta.CharLimit = 500
	ta.Focus()

	ip := textinput.New()
	ip.Placeholder = "path/to/image.png"

	cat := textinput.New()
	cat.Placeholder = "category (optional)"

	return Model{
		session:   session,
		caption:   ta,
		imagePath: ip,
		category:  cat,
		placement: domain.PlacementOnImage,
		position:  composer.TextTop,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// SetSize records the terminal width.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.caption.SetWidth(min(width-8, 60))
	m.imagePath.Width = min(width-8, 60)
	m.category.Width = min(width-8, 60)
}

// CapturingInput reports whether a text field currently owns key presses.
func (m Model) CapturingInput() bool {
	return m.focus <= fieldCategory
}

// Update handles messages for the composer form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case failedMsg:
		m.errText = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return CancelMsg{} }

		case "tab", "down":
			if msg.String() == "down" && m.focus == fieldCaption {
				break // let the textarea move its own cursor
			}
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			if msg.String() == "up" && m.focus == fieldCaption {
				break
			}
			m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
			return m, nil

		case "ctrl+s":
			return m, m.submit()

		case "enter", " ":
			switch m.focus {
			case fieldPlacement:
				m.placement = togglePlacement(m.placement)
				return m, nil
			case fieldPosition:
				m.position = togglePosition(m.position)
				return m, nil
			case fieldSubmit:
				return m, m.submit()
			}
		}
	}

	// Any edit invalidates the previous validation error.
	if _, ok := msg.(tea.KeyMsg); ok && m.CapturingInput() {
		m.errText = ""
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldCaption:
		m.caption, cmd = m.caption.Update(msg)
	case fieldImage:
		m.imagePath, cmd = m.imagePath.Update(msg)
	case fieldCategory:
		m.category, cmd = m.category.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	m.caption.Blur()
	m.imagePath.Blur()
	m.category.Blur()
	switch focus {
	case fieldCaption:
		m.caption.Focus()
	case fieldImage:
		m.imagePath.Focus()
	case fieldCategory:
		m.category.Focus()
	}
}

// submit reads the image file and runs the composition rules. Errors come
// back as a failedMsg so the form can show them inline.
func (m Model) submit() tea.Cmd {
	user := m.session.User()
	in := composer.Input{
		Caption:      m.caption.Value(),
		Category:     strings.TrimSpace(m.category.Value()),
		Placement:    m.placement,
		TextPosition: m.position,
	}
	path := strings.TrimSpace(m.imagePath.Value())

	return func() tea.Msg {
		if path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return failedMsg{err: err}
			}
			in.Image = data
		}
		post, err := composer.Compose(user, in)
		if err != nil {
			return failedMsg{err: err}
		}
		return DoneMsg{Post: post}
	}
}

func togglePlacement(p domain.CaptionPlacement) domain.CaptionPlacement {
	if p == domain.PlacementOnImage {
		return domain.PlacementWhitespace
	}
	return domain.PlacementOnImage
}

func togglePosition(p composer.TextPosition) composer.TextPosition {
	if p == composer.TextTop {
		return composer.TextBottom
	}
	return composer.TextTop
}
