package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit        key.Binding
	Up          key.Binding
	Down        key.Binding
	Enter       key.Binding
	Back        key.Binding
	Like        key.Binding // l: like/unlike the selected meme
	Comment     key.Binding // c: comment on the selected meme
	Delete      key.Binding // d: delete own meme
	Compose     key.Binding // p: post a new meme
	Follow      key.Binding // f: follow/unfollow the viewed profile
	Edit        key.Binding // e: edit own profile
	Refresh     key.Binding
	CycleSource key.Binding // tab: next feed source
	GoFeed      key.Binding
	GoMessages  key.Binding
	GoAlerts    key.Binding
	GoProfile   key.Binding
	GoSettings  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Compose: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "post meme"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit profile"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		CycleSource: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next feed"),
		),
		GoFeed: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "feed"),
		),
		GoMessages: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "messages"),
		),
		GoAlerts: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "notifications"),
		),
		GoProfile: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "profile"),
		),
		GoSettings: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "settings"),
		),
	}
}
