package feed

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"chucklechain/domain"
	"chucklechain/feed"
)

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PostsLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil // stale response from a previous source
		}
		m.posts = msg.Posts
		m.loading = false
		m.err = nil
		m.cursor = 0
		m.showDetail = false
		return m, nil

	case PostsErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.err = msg.Err
		m.loading = false
		return m, nil

	case AddPostMsg:
		// Newest-first is a main-feed display invariant only; other
		// sources keep their fetched order.
		if sourceRing[m.ringIndex].source == SourceHome {
			m.posts = feed.AddPost(m.posts, msg.Post)
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.commenting {
		var cmd tea.Cmd
		m.commentInput, cmd = m.commentInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.commenting {
		return m.handleCommentKey(msg)
	}
	if m.confirmDelete {
		return m.handleConfirmDeleteKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.posts)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		if len(m.posts) > 0 {
			m.showDetail = true
		}

	case key.Matches(msg, m.keys.Back):
		m.showDetail = false

	case key.Matches(msg, m.keys.Like):
		if p, ok := m.SelectedPost(); ok {
			m.posts = feed.ToggleLike(m.posts, p.ID)
		}

	case key.Matches(msg, m.keys.Comment):
		if _, ok := m.SelectedPost(); ok {
			m.showDetail = true
			m.commenting = true
			m.commentInput.Focus()
			return m, nil
		}

	case key.Matches(msg, m.keys.Delete):
		// Deleting is only offered for the user's own posts; the state
		// transition itself does not check ownership.
		if p, ok := m.SelectedPost(); ok && p.OwnedBy(m.session.User().ID) {
			m.confirmDelete = true
		}

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.err = nil
		return m, m.fetchPosts(m.reqSeq)

	case key.Matches(msg, m.keys.CycleSource):
		m.ringIndex = (m.ringIndex + 1) % len(sourceRing)
		m.reqSeq++
		m.loading = true
		m.err = nil
		m.cursor = 0
		m.showDetail = false
		return m, m.fetchPosts(m.reqSeq)
	}

	return m, nil
}

func (m Model) handleCommentKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.commenting = false
		m.commentInput.Reset()
		m.commentInput.Blur()
		return m, nil

	case "enter":
		text := m.commentInput.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		if p, ok := m.SelectedPost(); ok {
			m.posts = feed.AddComment(m.posts, p.ID, domain.Comment{
				ID:   uuid.NewString(),
				User: m.session.User().Username,
				Text: text,
			})
		}
		m.commenting = false
		m.commentInput.Reset()
		m.commentInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmDeleteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if p, ok := m.SelectedPost(); ok {
			m.posts = feed.DeletePost(m.posts, p.ID)
			if m.cursor >= len(m.posts) && m.cursor > 0 {
				m.cursor--
			}
			m.showDetail = false
		}
		m.confirmDelete = false
	case "n", "esc":
		m.confirmDelete = false
	}
	return m, nil
}
