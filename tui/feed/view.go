package feed

import (
	"fmt"
	"strings"
	"time"

	"chucklechain/domain"
	"chucklechain/tui/common"
)

// View renders the feed.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("ChuckleChain"))
	b.WriteString(" " + common.SourceStyle.Render(m.SourceLabel()))
	b.WriteString(common.TaglineStyle.Render("· tab cycles feeds"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("  %s Loading memes...\n", m.spinner.View()))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("  Error: "+m.err.Error()) + "\n")
	case len(m.posts) == 0:
		b.WriteString(common.CaptionStyle.Render("  No memes yet. Create the first one or check another feed.") + "\n")
	case m.showDetail:
		b.WriteString(m.viewDetail())
	default:
		b.WriteString(m.viewList())
	}

	if m.confirmDelete {
		b.WriteString("\n" + common.ConfirmStyle.Render("Delete this meme? (y/n)") + "\n")
	}

	b.WriteString(m.viewHints())
	return b.String()
}

func (m Model) viewList() string {
	visible := m.visibleCount()
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(m.posts))

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderPostCard(m.posts[i], i == m.cursor, false))
		b.WriteString("\n")
	}
	if end < len(m.posts) {
		b.WriteString(common.TimestampStyle.Render(fmt.Sprintf("  … %d more below", len(m.posts)-end)) + "\n")
	}
	return b.String()
}

func (m Model) viewDetail() string {
	p, ok := m.SelectedPost()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderPostCard(p, true, true))
	b.WriteString("\n")

	if len(p.Comments) == 0 {
		b.WriteString(common.TimestampStyle.Render("  No comments yet.") + "\n")
	}
	for _, c := range p.Comments {
		b.WriteString("  " + common.UsernameStyle.Render(c.User) + " " + common.CaptionStyle.Render(c.Text) + "\n")
	}

	if m.commenting {
		b.WriteString("\n  " + m.commentInput.View() + "\n")
	}
	return b.String()
}

func (m Model) renderPostCard(p domain.Post, selected, detail bool) string {
	now := time.Now()

	header := common.UsernameStyle.Render(p.User.Username) +
		" " + common.TimestampStyle.Render(common.RelativeTime(p.CreatedAt, now))
	if p.OwnedBy(m.session.User().ID) {
		header += common.OwnBadgeStyle.Render("(you)")
	}
	if p.Category != "" {
		header += " " + common.SourceStyle.Render(p.Category)
	}

	card := renderMemeCard(p, m.cardWidth(), detail)

	likes := common.CountStyle.Render(fmt.Sprintf("%d likes", p.Likes))
	if p.IsLiked {
		likes = common.LikedStyle.Render(fmt.Sprintf("♥ %d likes", p.Likes))
	}
	counts := likes + common.CountStyle.Render(fmt.Sprintf("  %d comments", len(p.Comments)))

	body := header + "\n" + card + "\n" + counts
	if selected {
		return common.SelectedStyle.Render(body)
	}
	return common.UnselectedStyle.Render(body)
}

func (m Model) viewHints() string {
	if m.commenting {
		return common.StatusBarStyle.Render("enter post comment · esc cancel")
	}
	if m.showDetail {
		return common.StatusBarStyle.Render("l like · c comment · d delete · esc back")
	}
	return common.StatusBarStyle.Render("j/k move · enter open · l like · c comment · p post · tab feed · r refresh · q quit")
}

// visibleCount derives how many cards fit in the current window; meme cards
// are tall, so this is small.
func (m Model) visibleCount() int {
	if m.height <= 0 {
		return 2
	}
	n := (m.height - 6) / 14
	if n < 1 {
		return 1
	}
	return n
}

func (m Model) cardWidth() int {
	w := m.width - 8
	if w < 28 {
		return 28
	}
	if w > 52 {
		return 52
	}
	return w
}
