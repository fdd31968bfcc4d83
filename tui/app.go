// Package tui wires the individual views into the root Bubble Tea program.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"chucklechain/app"
	"chucklechain/infra/config"
	"chucklechain/tui/common"
	"chucklechain/tui/compose"
	"chucklechain/tui/feed"
	"chucklechain/tui/messages"
	"chucklechain/tui/notifications"
	"chucklechain/tui/profileview"
	"chucklechain/tui/settings"
)

// View identifies the active top-level page.
type View int

const (
	ViewFeed View = iota
	ViewCompose
	ViewMessages
	ViewNotifications
	ViewProfile
	ViewSettings
)

// Deps carries everything the root model needs.
type Deps struct {
	Timeline      app.TimelineService
	Account       app.AccountService
	Messages      app.MessageService
	Notifications app.NotificationService
	Session       *app.Session
	PrefsPath     string
	Prefs         config.Prefs
	Logger        *log.Logger
}

// App is the root model. It owns one model per page and routes messages to
// whichever page is active.
type App struct {
	deps Deps
	view View

	feed          feed.Model
	compose       compose.Model
	messages      messages.Model
	notifications notifications.Model
	profile       profileview.Model
	settings      settings.Model

	keys   common.KeyMap
	width  int
	height int
}

// NewApp assembles the root model from its dependencies.
func NewApp(deps Deps) App {
	return App{
		deps:          deps,
		view:          ViewFeed,
		feed:          feed.New(deps.Timeline, deps.Session, deps.Prefs.FeedSource),
		compose:       compose.New(deps.Session),
		messages:      messages.New(deps.Messages, deps.Session),
		notifications: notifications.New(deps.Notifications),
		profile:       profileview.New(deps.Account, deps.Session),
		settings:      settings.New(deps.PrefsPath, deps.Prefs),
		keys:          common.DefaultKeyMap(),
	}
}

// Init starts every page's initial fetch so switching tabs is instant.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.feed.Init(),
		a.messages.Init(),
		a.notifications.Init(),
		a.profile.Init(),
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.feed.SetSize(msg.Width, msg.Height)
		a.compose.SetSize(msg.Width, msg.Height)
		a.messages.SetSize(msg.Width, msg.Height)
		a.notifications.SetSize(msg.Width, msg.Height)
		a.profile.SetSize(msg.Width, msg.Height)
		a.settings.SetSize(msg.Width, msg.Height)
		return a, nil

	case compose.DoneMsg:
		a.deps.Logger.Info("meme posted", "post", msg.Post.ID)
		a.view = ViewFeed
		a.compose = compose.New(a.deps.Session)
		a.compose.SetSize(a.width, a.height)
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(feed.AddPostMsg{Post: msg.Post})
		return a, cmd

	case compose.CancelMsg:
		a.view = ViewFeed
		a.compose = compose.New(a.deps.Session)
		a.compose.SetSize(a.width, a.height)
		return a, nil

	case tea.KeyMsg:
		if handled, model, cmd := a.handleGlobalKey(msg); handled {
			return model, cmd
		}
	}

	return a.routeToActive(msg)
}

// handleGlobalKey deals with quit and page switching. Pages that are reading
// text keep every key press to themselves.
func (a App) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return true, a, tea.Quit
	}
	if a.activeCapturesInput() {
		return false, a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return true, a, tea.Quit

	case key.Matches(msg, a.keys.Compose):
		if a.view == ViewFeed && !a.feed.InDetail() {
			a.view = ViewCompose
			return true, a, a.compose.Init()
		}

	case key.Matches(msg, a.keys.GoFeed):
		a.view = ViewFeed
		return true, a, nil

	case key.Matches(msg, a.keys.GoMessages):
		a.view = ViewMessages
		return true, a, nil

	case key.Matches(msg, a.keys.GoAlerts):
		a.view = ViewNotifications
		return true, a, nil

	case key.Matches(msg, a.keys.GoProfile):
		a.view = ViewProfile
		return true, a, nil

	case key.Matches(msg, a.keys.GoSettings):
		a.view = ViewSettings
		return true, a, nil
	}

	return false, a, nil
}

func (a App) activeCapturesInput() bool {
	switch a.view {
	case ViewFeed:
		return a.feed.CapturingInput()
	case ViewCompose:
		return a.compose.CapturingInput()
	case ViewMessages:
		return a.messages.CapturingInput()
	case ViewProfile:
		return a.profile.CapturingInput()
	}
	return false
}

// routeToActive forwards a message to the page it belongs to. Async results
// are routed by type rather than by the active view, so a fetch that finishes
// while the user is elsewhere still lands.
func (a App) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case feed.PostsLoadedMsg, feed.PostsErrorMsg:
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd
	case messages.ConversationsLoadedMsg, messages.ConversationsErrorMsg:
		a.messages, cmd = a.messages.Update(msg)
		return a, cmd
	case notifications.LoadedMsg, notifications.ErrorMsg:
		a.notifications, cmd = a.notifications.Update(msg)
		return a, cmd
	case profileview.ProfileLoadedMsg, profileview.ProfileErrorMsg:
		a.profile, cmd = a.profile.Update(msg)
		return a, cmd
	case settings.SavedMsg:
		a.settings, cmd = a.settings.Update(msg)
		return a, cmd
	}

	switch a.view {
	case ViewFeed:
		before := a.feed.SourceLabel()
		a.feed, cmd = a.feed.Update(msg)
		if label := a.feed.SourceLabel(); label != before {
			cmds = append(cmds, a.saveFeedSource(label))
		}
	case ViewCompose:
		a.compose, cmd = a.compose.Update(msg)
	case ViewMessages:
		a.messages, cmd = a.messages.Update(msg)
	case ViewNotifications:
		a.notifications, cmd = a.notifications.Update(msg)
	case ViewProfile:
		a.profile, cmd = a.profile.Update(msg)
	case ViewSettings:
		a.settings, cmd = a.settings.Update(msg)
	}
	cmds = append(cmds, cmd)

	// Spinner ticks drive every page's spinner, not just the active one.
	if _, ok := msg.(tea.KeyMsg); !ok && a.view != ViewFeed {
		a.feed, cmd = a.feed.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// saveFeedSource records the active feed source so the next session starts
// there. The file is re-read first so values other pages own stay intact.
func (a App) saveFeedSource(label string) tea.Cmd {
	path := a.deps.PrefsPath
	logger := a.deps.Logger
	return func() tea.Msg {
		prefs, err := config.LoadPrefs(path)
		if err != nil {
			prefs = config.Prefs{}
		}
		prefs.FeedSource = label
		if err := config.SavePrefs(path, prefs); err != nil {
			logger.Warn("could not save feed source", "err", err)
		}
		return nil
	}
}

// View implements tea.Model.
func (a App) View() string {
	var body string
	switch a.view {
	case ViewFeed:
		body = a.feed.View()
	case ViewCompose:
		body = a.compose.View()
	case ViewMessages:
		body = a.messages.View()
	case ViewNotifications:
		body = a.notifications.View()
	case ViewProfile:
		body = a.profile.View()
	case ViewSettings:
		body = a.settings.View()
	}
	return body + "\n" + a.statusBar()
}

func (a App) statusBar() string {
	tabs := []struct {
		view  View
		label string
	}{
		{ViewFeed, "1 feed"},
		{ViewMessages, "2 messages"},
		{ViewNotifications, "3 alerts"},
		{ViewProfile, "4 profile"},
		{ViewSettings, "5 settings"},
	}

	bar := ""
	for i, t := range tabs {
		if i > 0 {
			bar += "  "
		}
		if t.view == a.view {
			bar += common.LikedStyle.Render(t.label)
		} else {
			bar += common.TimestampStyle.Render(t.label)
		}
	}
	return common.StatusBarStyle.Render(bar)
}
