package profileview

import (
	"fmt"
	"strings"
	"time"

	"chucklechain/tui/common"
)

// View renders the profile page.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Profile"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("  %s Loading profile...\n", m.spinner.View()))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("  Error: "+m.err.Error()) + "\n")
	case m.editing:
		b.WriteString(m.viewEditForm())
	default:
		b.WriteString(m.viewProfile())
	}

	b.WriteString(m.viewHints())
	return b.String()
}

func (m Model) viewProfile() string {
	p := m.profile
	var b strings.Builder

	name := common.UsernameStyle.Render("@" + p.Username)
	if p.FullName != "" {
		name = common.CaptionStyle.Render(p.FullName) + " " + name
	}
	if m.IsOwn() {
		name += common.OwnBadgeStyle.Render("(you)")
	}
	b.WriteString("  " + name + "\n")

	if p.Bio != "" {
		b.WriteString("  " + common.CaptionStyle.Render(p.Bio) + "\n")
	}
	if p.Website != "" {
		b.WriteString("  " + common.TimestampStyle.Render(p.Website) + "\n")
	}

	counts := fmt.Sprintf("%d followers · %d following · %d memes", p.Followers, p.Following, len(p.Posts))
	b.WriteString("  " + common.CountStyle.Render(counts) + "\n")

	if !m.IsOwn() {
		state := "f follow"
		if p.IsFollowing {
			state = "f unfollow ✓"
		}
		b.WriteString("  " + common.SuccessStyle.Render(state) + "\n")
	}
	b.WriteString("\n")

	if len(p.Posts) == 0 {
		b.WriteString(common.CaptionStyle.Render("  No memes posted yet.") + "\n")
		return b.String()
	}

	now := time.Now()
	for i, post := range p.Posts {
		line := common.CaptionStyle.Render(common.TruncateRight(post.Text, 44)) +
			" " + common.TimestampStyle.Render(common.RelativeTime(post.CreatedAt, now))
		likes := fmt.Sprintf(" %d♥", post.Likes)
		if post.IsLiked {
			line += common.LikedStyle.Render(likes)
		} else {
			line += common.CountStyle.Render(likes)
		}
		cursor := "  "
		if i == m.cursor {
			cursor = common.LikedStyle.Render("> ")
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m Model) viewEditForm() string {
	labels := [editCount]string{"Full name", "Bio", "Website", "Username"}
	var b strings.Builder
	b.WriteString(common.CaptionStyle.Render("  Edit profile") + "\n\n")
	for i := range m.inputs {
		label := "  " + labels[i]
		if i == m.editFocus {
			label = common.UsernameStyle.Render("> " + labels[i])
		} else {
			label = common.TimestampStyle.Render(label)
		}
		b.WriteString(label + "\n  " + m.inputs[i].View() + "\n")
	}
	return b.String()
}

func (m Model) viewHints() string {
	if m.editing {
		return common.StatusBarStyle.Render("tab next field · enter save · esc cancel")
	}
	if m.IsOwn() {
		return common.StatusBarStyle.Render("j/k move · l like · d delete · e edit · r refresh")
	}
	return common.StatusBarStyle.Render("j/k move · l like · f follow · r refresh")
}
