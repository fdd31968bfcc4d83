package feed

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"chucklechain/domain"
)

// fetchPosts loads the active ring entry's posts. The sequence number lets
// the model drop responses that arrive after the user has already switched
// to another source.
func (m Model) fetchPosts(seq int) tea.Cmd {
	timeline := m.timeline
	entry := sourceRing[m.ringIndex]
	return func() tea.Msg {
		ctx := context.Background()
		var (
			posts []domain.Post
			err   error
		)
		switch entry.source {
		case SourceHome:
			posts, err = timeline.Home(ctx)
		case SourceTrending:
			posts, err = timeline.Trending(ctx)
		case SourceFresh:
			posts, err = timeline.Fresh(ctx)
		case SourceCategory:
			posts, err = timeline.ByCategory(ctx, entry.arg)
		case SourceHashtag:
			posts, err = timeline.ByHashtag(ctx, entry.arg)
		}
		if err != nil {
			return PostsErrorMsg{Err: err, ReqSeq: seq}
		}
		return PostsLoadedMsg{Posts: posts, ReqSeq: seq}
	}
}
