package profile

import (
	"testing"

	"chucklechain/domain"
)

func makeProfile() domain.UserProfile {
	return domain.UserProfile{
		User:        domain.User{ID: "user2", Username: "janedoe", ProfilePicture: "https://example.com/jane.jpg"},
		FullName:    "Jane Doe",
		Bio:         "Digital artist and meme creator",
		Website:     "https://janedoe.com",
		Followers:   1024,
		Following:   567,
		IsFollowing: true,
	}
}

func TestToggleFollow_MovesCountWithFlag(t *testing.T) {
	p := makeProfile()

	unfollowed := ToggleFollow(p)
	if unfollowed.IsFollowing || unfollowed.Followers != 1023 {
		t.Fatalf("unfollow: got following=%v followers=%d", unfollowed.IsFollowing, unfollowed.Followers)
	}

	followed := ToggleFollow(unfollowed)
	if !followed.IsFollowing || followed.Followers != 1024 {
		t.Fatalf("toggle must be self-inverse: got following=%v followers=%d", followed.IsFollowing, followed.Followers)
	}

	if !p.IsFollowing || p.Followers != 1024 {
		t.Fatalf("input profile was mutated: %+v", p)
	}
}

func TestToggleFollow_FollowersNeverNegative(t *testing.T) {
	p := domain.UserProfile{IsFollowing: true, Followers: 0}
	got := ToggleFollow(p)
	if got.Followers != 0 {
		t.Fatalf("followers went negative: %d", got.Followers)
	}
}

func TestApply_MergesEditableFields(t *testing.T) {
	p := makeProfile()
	got := Apply(p, Patch{
		FullName: "Jane A. Doe",
		Bio:      "Still making memes",
		Username: "janeadoe",
	})

	if got.FullName != "Jane A. Doe" || got.Bio != "Still making memes" || got.Username != "janeadoe" {
		t.Fatalf("patched fields not applied: %+v", got)
	}
	if got.Website != p.Website || got.ProfilePicture != p.ProfilePicture {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if got.Followers != p.Followers || got.Following != p.Following || got.IsFollowing != p.IsFollowing {
		t.Fatalf("non-editable fields changed: %+v", got)
	}
}

func TestApply_EmptyPatch_IsNoOp(t *testing.T) {
	p := makeProfile()
	got := Apply(p, Patch{})
	if got.Username != p.Username || got.FullName != p.FullName || got.Bio != p.Bio {
		t.Fatalf("empty patch changed the profile: %+v", got)
	}
}
