package settings

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"chucklechain/infra/config"
	"chucklechain/tui/common"
)

// SavedMsg reports the outcome of writing the preferences file.
type SavedMsg struct {
	Err error
}

// fontScaleStep is one notch of the text-size slider.
const fontScaleStep = 0.1

// Model is the settings page. For now it only holds the text-size slider;
// changes are written to the preferences file immediately.
type Model struct {
	prefsPath string
	prefs     config.Prefs
	scale     float64
	status    string
	saveErr   error
}

// New creates a settings model from the loaded preferences.
func New(prefsPath string, prefs config.Prefs) Model {
	return Model{
		prefsPath: prefsPath,
		prefs:     prefs,
		scale:     prefs.FontScaleValue(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize records the terminal dimensions. Nothing here depends on them yet.
func (m *Model) SetSize(width, height int) {}

// CapturingInput is always false; settings has no text fields.
func (m Model) CapturingInput() bool {
	return false
}

// FontScale returns the current multiplier.
func (m Model) FontScale() float64 {
	return m.scale
}

// Update handles messages for the settings view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SavedMsg:
		m.saveErr = msg.Err
		if msg.Err == nil {
			m.status = "saved"
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "+", "=", "right", "l":
			return m.adjust(fontScaleStep)
		case "-", "_", "left", "h":
			return m.adjust(-fontScaleStep)
		case "0":
			m.scale = config.DefaultFontScale
			return m.persist()
		}
	}
	return m, nil
}

func (m Model) adjust(delta float64) (Model, tea.Cmd) {
	next := m.scale + delta
	// Steps accumulate floating point noise; snap back onto the 0.1 grid.
	next = math.Round(next*10) / 10
	if next < config.MinFontScale {
		next = config.MinFontScale
	}
	if next > config.MaxFontScale {
		next = config.MaxFontScale
	}
	if next == m.scale {
		return m, nil
	}
	m.scale = next
	return m.persist()
}

func (m Model) persist() (Model, tea.Cmd) {
	m.prefs.SetFontScale(m.scale)
	m.status = ""
	scale := m.scale
	path := m.prefsPath
	// Re-read before writing so values other pages own, like the saved
	// feed source, survive a font-scale save.
	return m, func() tea.Msg {
		prefs, err := config.LoadPrefs(path)
		if err != nil {
			prefs = config.Prefs{}
		}
		prefs.SetFontScale(scale)
		return SavedMsg{Err: config.SavePrefs(path, prefs)}
	}
}

// View renders the settings page.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Settings"))
	b.WriteString("\n\n")

	b.WriteString(common.CaptionStyle.Render("  Text size") + "\n")
	b.WriteString("  " + m.slider() + fmt.Sprintf("  %.1fx", m.scale) + "\n")

	if m.saveErr != nil {
		b.WriteString("\n" + common.ErrorStyle.Render("  Could not save: "+m.saveErr.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + common.SuccessStyle.Render("  Preferences "+m.status+".") + "\n")
	}

	b.WriteString(common.StatusBarStyle.Render("+/- adjust · 0 reset"))
	return b.String()
}

// slider draws the scale as notches between the min and max bounds.
func (m Model) slider() string {
	notches := int(math.Round((config.MaxFontScale-config.MinFontScale)/fontScaleStep)) + 1
	active := int(math.Round((m.scale - config.MinFontScale) / fontScaleStep))

	var b strings.Builder
	for i := 0; i < notches; i++ {
		if i == active {
			b.WriteString(common.LikedStyle.Render("●"))
		} else {
			b.WriteString(common.TimestampStyle.Render("─"))
		}
	}
	return b.String()
}
