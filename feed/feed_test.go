package feed

import (
	"reflect"
	"testing"
	"time"

	"chucklechain/domain"
)

func makePost(id string, likes int, liked bool) domain.Post {
	return domain.Post{
		ID:        id,
		User:      domain.User{ID: "user2", Username: "janedoe"},
		Text:      "caption for " + id,
		Image:     "https://example.com/" + id + ".jpg",
		CreatedAt: time.Now().Add(-time.Hour),
		Likes:     likes,
		IsLiked:   liked,
	}
}

func TestAddPost_PrependsNewestFirst(t *testing.T) {
	posts := []domain.Post{makePost("a", 1, false), makePost("b", 2, false)}
	got := AddPost(posts, makePost("new", 0, false))
	if len(got) != 3 || got[0].ID != "new" || got[1].ID != "a" || got[2].ID != "b" {
		t.Fatalf("unexpected order after add: %v", ids(got))
	}
	if len(posts) != 2 {
		t.Fatalf("input list was mutated")
	}
}

func TestToggleLike_PairsCountWithFlag(t *testing.T) {
	posts := []domain.Post{makePost("a", 42, true)}

	once := ToggleLike(posts, "a")
	if once[0].Likes != 41 || once[0].IsLiked {
		t.Fatalf("first toggle: got likes=%d liked=%v want 41/false", once[0].Likes, once[0].IsLiked)
	}
	twice := ToggleLike(once, "a")
	if twice[0].Likes != 42 || !twice[0].IsLiked {
		t.Fatalf("second toggle: got likes=%d liked=%v want 42/true", twice[0].Likes, twice[0].IsLiked)
	}

	// Original list untouched.
	if posts[0].Likes != 42 || !posts[0].IsLiked {
		t.Fatalf("input post was mutated: %+v", posts[0])
	}
}

func TestToggleLike_NeverGoesNegative(t *testing.T) {
	posts := []domain.Post{{ID: "a", Likes: 0, IsLiked: true}}
	got := ToggleLike(posts, "a")
	if got[0].Likes != 0 || got[0].IsLiked {
		t.Fatalf("unliking at zero must clamp: %+v", got[0])
	}
}

func TestToggleLike_LeavesOtherPostsShared(t *testing.T) {
	posts := []domain.Post{makePost("a", 1, false), makePost("b", 2, false)}
	got := ToggleLike(posts, "a")
	if !reflect.DeepEqual(got[1], posts[1]) {
		t.Fatalf("unmatched post changed: %+v", got[1])
	}
	if got[0].Likes != 2 || !got[0].IsLiked {
		t.Fatalf("matched post not toggled: %+v", got[0])
	}
}

func TestToggleLike_UnknownID_NoOp(t *testing.T) {
	posts := []domain.Post{makePost("a", 1, false)}
	got := ToggleLike(posts, "missing")
	if !reflect.DeepEqual(got, posts) {
		t.Fatalf("unknown id must be a no-op")
	}
}

func TestDeletePost_RemovesMatch(t *testing.T) {
	posts := []domain.Post{makePost("a", 1, false), makePost("b", 2, false), makePost("c", 3, false)}
	got := DeletePost(posts, "b")
	if want := []string{"a", "c"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("unexpected list after delete: %v", ids(got))
	}
}

func TestDeletePost_AbsentID_IsIdempotent(t *testing.T) {
	posts := []domain.Post{makePost("a", 1, false), makePost("b", 2, false)}
	got := DeletePost(posts, "nope")
	if len(got) != len(posts) {
		t.Fatalf("length changed on absent delete")
	}
	for i := range got {
		if !reflect.DeepEqual(got[i], posts[i]) {
			t.Fatalf("element %d changed on absent delete", i)
		}
	}
	// No copy is made for a no-op: the returned list shares the input's array.
	if &got[0] != &posts[0] {
		t.Fatalf("expected returned list to alias the input")
	}
}

func TestAddComment_AppendsAndPreserves(t *testing.T) {
	p := makePost("a", 1, false)
	p.Comments = []domain.Comment{
		{ID: "c1", User: "bobsmith", Text: "Been there!"},
		{ID: "c2", User: "johndoe", Text: "So relatable!"},
	}
	posts := []domain.Post{p}

	got := AddComment(posts, "a", domain.Comment{ID: "c3", User: "alicejones", Text: "lol"})
	if len(got[0].Comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(got[0].Comments))
	}
	if got[0].Comments[0].ID != "c1" || got[0].Comments[1].ID != "c2" {
		t.Fatalf("prior comments reordered: %+v", got[0].Comments)
	}
	if got[0].Comments[2].Text != "lol" {
		t.Fatalf("new comment not at tail: %+v", got[0].Comments[2])
	}
	if len(posts[0].Comments) != 2 {
		t.Fatalf("input post's comments were mutated")
	}
}

func TestAddComment_UnknownPost_NoOp(t *testing.T) {
	posts := []domain.Post{makePost("a", 1, false)}
	got := AddComment(posts, "missing", domain.Comment{ID: "c1", User: "x", Text: "y"})
	if !reflect.DeepEqual(got, posts) {
		t.Fatalf("unknown post id must be a no-op")
	}
}

func ids(posts []domain.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}
