package feed

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"chucklechain/app"
	"chucklechain/domain"
)

type stubTimeline struct {
	home     []domain.Post
	trending []domain.Post
}

func (s stubTimeline) Home(ctx context.Context) ([]domain.Post, error)     { return s.home, nil }
func (s stubTimeline) Trending(ctx context.Context) ([]domain.Post, error) { return s.trending, nil }
func (s stubTimeline) Fresh(ctx context.Context) ([]domain.Post, error)    { return nil, nil }
func (s stubTimeline) ByCategory(ctx context.Context, category string) ([]domain.Post, error) {
	return nil, nil
}
func (s stubTimeline) ByHashtag(ctx context.Context, tag string) ([]domain.Post, error) {
	return nil, nil
}

func makePost(id, userID string, likes int, liked bool) domain.Post {
	return domain.Post{
		ID:        id,
		User:      domain.User{ID: userID, Username: "someone"},
		Text:      "caption " + id,
		Image:     "https://example.com/" + id + ".jpg",
		CreatedAt: time.Now().Add(-time.Hour),
		Likes:     likes,
		IsLiked:   liked,
	}
}

func newLoadedModel(posts ...domain.Post) Model {
	m := New(stubTimeline{}, app.NewSession(domain.User{ID: "user1", Username: "johndoe"}), "")
	m.SetSize(100, 40)
	m.posts = posts
	m.loading = false
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPostsLoaded_ReplacesListAndResetsCursor(t *testing.T) {
	m := newLoadedModel(makePost("old", "user2", 0, false))
	m.cursor = 0
	m.loading = true

	updated, _ := m.Update(PostsLoadedMsg{Posts: []domain.Post{makePost("a", "user2", 1, false), makePost("b", "user3", 2, false)}})
	if updated.loading || len(updated.posts) != 2 || updated.cursor != 0 {
		t.Fatalf("unexpected state after load: loading=%v n=%d cursor=%d", updated.loading, len(updated.posts), updated.cursor)
	}
}

func TestPostsLoaded_StaleSequenceDropped(t *testing.T) {
	m := newLoadedModel(makePost("keep", "user2", 0, false))
	m.reqSeq = 3

	updated, _ := m.Update(PostsLoadedMsg{Posts: []domain.Post{makePost("stale", "user2", 0, false)}, ReqSeq: 2})
	if updated.posts[0].ID != "keep" {
		t.Fatalf("stale response must be dropped, got %q", updated.posts[0].ID)
	}
}

func TestLikeKey_TogglesSelectedPost(t *testing.T) {
	m := newLoadedModel(makePost("a", "user2", 42, true), makePost("b", "user3", 7, false))

	once, _ := m.Update(keyRune('l'))
	if once.posts[0].Likes != 41 || once.posts[0].IsLiked {
		t.Fatalf("first toggle: %+v", once.posts[0])
	}
	if once.posts[1].Likes != 7 {
		t.Fatalf("unselected post changed: %+v", once.posts[1])
	}

	twice, _ := once.Update(keyRune('l'))
	if twice.posts[0].Likes != 42 || !twice.posts[0].IsLiked {
		t.Fatalf("second toggle: %+v", twice.posts[0])
	}
}

func TestDeleteKey_OnlyOffersOwnPosts(t *testing.T) {
	m := newLoadedModel(makePost("theirs", "user2", 0, false))
	updated, _ := m.Update(keyRune('d'))
	if updated.confirmDelete {
		t.Fatalf("delete must not be offered for someone else's post")
	}

	own := newLoadedModel(makePost("mine", "user1", 0, false))
	updated, _ = own.Update(keyRune('d'))
	if !updated.confirmDelete {
		t.Fatalf("delete should ask for confirmation on own post")
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	m := newLoadedModel(makePost("mine", "user1", 0, false), makePost("other", "user2", 0, false))

	armed, _ := m.Update(keyRune('d'))
	kept, _ := armed.Update(keyRune('n'))
	if kept.confirmDelete || len(kept.posts) != 2 {
		t.Fatalf("n must cancel the delete")
	}

	armed, _ = m.Update(keyRune('d'))
	deleted, _ := armed.Update(keyRune('y'))
	if len(deleted.posts) != 1 || deleted.posts[0].ID != "other" {
		t.Fatalf("y must delete the selected post: %v", deleted.posts)
	}
}

func TestCommentFlow_AppendsWithSessionUsername(t *testing.T) {
	p := makePost("a", "user2", 0, false)
	p.Comments = []domain.Comment{{ID: "c1", User: "bobsmith", Text: "first"}}
	m := newLoadedModel(p)

	opened, _ := m.Update(keyRune('c'))
	if !opened.commenting || !opened.showDetail {
		t.Fatalf("c must open the detail comment input")
	}

	typed := opened
	for _, r := range "nice one" {
		typed, _ = typed.Update(keyRune(r))
	}
	done, _ := typed.Update(tea.KeyMsg{Type: tea.KeyEnter})

	comments := done.posts[0].Comments
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].ID != "c1" {
		t.Fatalf("prior comment lost: %+v", comments)
	}
	if comments[1].User != "johndoe" || comments[1].Text != "nice one" {
		t.Fatalf("unexpected appended comment: %+v", comments[1])
	}
	if comments[1].ID == "" {
		t.Fatalf("comment id must be generated")
	}
	if done.commenting {
		t.Fatalf("input should close after posting")
	}
}

func TestNew_StartsFromSavedSource(t *testing.T) {
	session := app.NewSession(domain.User{ID: "user1", Username: "johndoe"})

	m := New(stubTimeline{}, session, "fresh")
	if m.SourceLabel() != "fresh" {
		t.Fatalf("saved source must be restored: %q", m.SourceLabel())
	}

	m = New(stubTimeline{}, session, "no-such-feed")
	if m.SourceLabel() != "home" {
		t.Fatalf("unknown saved source must fall back to home: %q", m.SourceLabel())
	}
}

func TestCommentFlow_WhitespaceOnlyRejected(t *testing.T) {
	m := newLoadedModel(makePost("a", "user2", 0, false))
	opened, _ := m.Update(keyRune('c'))

	typed := opened
	for _, r := range "   " {
		typed, _ = typed.Update(keyRune(r))
	}
	done, _ := typed.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(done.posts[0].Comments) != 0 {
		t.Fatalf("whitespace-only comment must not append: %+v", done.posts[0].Comments)
	}
	if !done.commenting {
		t.Fatalf("rejected comment must leave the input open")
	}
}

func TestCommentFlow_EscCancels(t *testing.T) {
	m := newLoadedModel(makePost("a", "user2", 0, false))
	opened, _ := m.Update(keyRune('c'))
	closed, _ := opened.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if closed.commenting {
		t.Fatalf("esc must cancel commenting")
	}
	if len(closed.posts[0].Comments) != 0 {
		t.Fatalf("cancelled comment must not append")
	}
}

func TestAddPostMsg_PrependsOnHomeOnly(t *testing.T) {
	m := newLoadedModel(makePost("a", "user2", 0, false))
	fresh := makePost("new", "user1", 0, false)

	updated, _ := m.Update(AddPostMsg{Post: fresh})
	if updated.posts[0].ID != "new" || updated.cursor != 0 {
		t.Fatalf("home feed must prepend composed posts: %v", updated.posts)
	}

	// On a non-home source the message is ignored until the next fetch.
	trending := newLoadedModel(makePost("t1", "user2", 0, false))
	trending.ringIndex = 1
	updated, _ = trending.Update(AddPostMsg{Post: fresh})
	if len(updated.posts) != 1 || updated.posts[0].ID != "t1" {
		t.Fatalf("non-home feeds must not re-sort on add: %v", updated.posts)
	}
}

func TestCycleSource_ResetsAndFetches(t *testing.T) {
	m := newLoadedModel(makePost("a", "user2", 0, false))
	m.cursor = 0
	seq := m.reqSeq

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil {
		t.Fatalf("cycling sources must trigger a fetch")
	}
	if !updated.loading || updated.reqSeq != seq+1 {
		t.Fatalf("expected loading with bumped sequence: loading=%v seq=%d", updated.loading, updated.reqSeq)
	}
	if updated.SourceLabel() != "trending" {
		t.Fatalf("expected trending after home, got %q", updated.SourceLabel())
	}
}

func TestView_RendersOverlayUppercaseCentered(t *testing.T) {
	p := makePost("a", "user2", 0, false)
	p.CaptionPlacement = domain.PlacementOnImage
	p.MemeTexts = []domain.MemeText{{
		ID: "mt1", Text: "top text", X: 50, Y: 10,
		TextAlign: "center", Uppercase: true, Outline: true, Color: "#FFFFFF",
	}}
	m := newLoadedModel(p)

	out := m.View()
	if !strings.Contains(out, "TOP TEXT") {
		t.Fatalf("uppercase overlay missing from view:\n%s", out)
	}
	if strings.Contains(out, "caption a\n") && !strings.Contains(out, "TOP TEXT") {
		t.Fatalf("on-image captions must not also render as a band")
	}
}

func TestView_WhitespacePlacementRendersCaptionBand(t *testing.T) {
	p := makePost("a", "user2", 0, false)
	p.Text = "header band caption"
	p.CaptionPlacement = domain.PlacementWhitespace
	m := newLoadedModel(p)

	if out := m.View(); !strings.Contains(out, "header band caption") {
		t.Fatalf("whitespace caption band missing:\n%s", out)
	}
}
