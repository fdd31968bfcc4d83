package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chucklechain/app"
	"chucklechain/domain"
	"chucklechain/tui/common"
)

// Source identifies which feed a ring entry draws from.
type Source int

const (
	SourceHome Source = iota
	SourceTrending
	SourceFresh
	SourceCategory
	SourceHashtag
)

// ringEntry is one stop in the tab-cycled feed ring.
type ringEntry struct {
	source Source
	arg    string // category or hashtag name
	label  string
}

// sourceRing mirrors the pages of the app: main feed, trending, fresh, the
// category pages and the hashtag pages.
var sourceRing = []ringEntry{
	{source: SourceHome, label: "home"},
	{source: SourceTrending, label: "trending"},
	{source: SourceFresh, label: "fresh"},
	{source: SourceCategory, arg: "entertainment", label: "entertainment"},
	{source: SourceCategory, arg: "sports", label: "sports"},
	{source: SourceCategory, arg: "gaming", label: "gaming"},
	{source: SourceCategory, arg: "technology", label: "technology"},
	{source: SourceHashtag, arg: "MemeMonday", label: "#MemeMonday"},
	{source: SourceHashtag, arg: "FunnyFriday", label: "#FunnyFriday"},
	{source: SourceHashtag, arg: "DadJokes", label: "#DadJokes"},
	{source: SourceHashtag, arg: "ProgrammerHumor", label: "#ProgrammerHumor"},
}

// --- Messages ---

// PostsLoadedMsg is sent when a feed fetch completes successfully.
type PostsLoadedMsg struct {
	Posts  []domain.Post
	ReqSeq int
}

// PostsErrorMsg is sent when a feed fetch fails.
type PostsErrorMsg struct {
	Err    error
	ReqSeq int
}

// AddPostMsg hands a freshly composed post to the feed. Only the main feed
// prepends; other sources ignore it until their next fetch.
type AddPostMsg struct {
	Post domain.Post
}

// --- Model ---

// Model holds the state for the feed view.
type Model struct {
	timeline app.TimelineService
	session  *app.Session

	ringIndex int
	posts     []domain.Post
	cursor    int
	loading   bool
	err       error
	reqSeq    int

	showDetail    bool
	commenting    bool
	commentInput  textinput.Model
	confirmDelete bool

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// ringIndexFor finds the ring entry with the given label. Unknown or empty
// labels land on the main feed.
func ringIndexFor(label string) int {
	for i, entry := range sourceRing {
		if entry.label == label {
			return i
		}
	}
	return 0
}

// New creates a feed model with injected dependencies, starting on the feed
// source saved from the previous session.
func New(timeline app.TimelineService, session *app.Session, sourceLabel string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A97F"))

	ci := textinput.New()
	ci.Placeholder = "Add a comment..."
	ci.CharLimit = 280

	return Model{
		timeline:     timeline,
		session:      session,
		ringIndex:    ringIndexFor(sourceLabel),
		loading:      true,
		keys:         common.DefaultKeyMap(),
		spinner:      s,
		commentInput: ci,
	}
}

// Init starts the initial feed fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchPosts(m.reqSeq),
		m.spinner.Tick,
	)
}

// SetSize records the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// CapturingInput reports whether key presses belong to the comment input.
func (m Model) CapturingInput() bool {
	return m.commenting
}

// InDetail reports whether the full-post view is open.
func (m Model) InDetail() bool {
	return m.showDetail
}

// Posts returns the current post list for external access.
func (m Model) Posts() []domain.Post {
	return m.posts
}

// SourceLabel names the active feed source for the header.
func (m Model) SourceLabel() string {
	return sourceRing[m.ringIndex].label
}

// SelectedPost returns the currently highlighted post, if any.
func (m Model) SelectedPost() (domain.Post, bool) {
	if len(m.posts) == 0 || m.cursor < 0 || m.cursor >= len(m.posts) {
		return domain.Post{}, false
	}
	return m.posts[m.cursor], true
}
