// Package fixture serves the demo dataset behind the app service interfaces.
// The store is seeded once at construction and never mutated afterwards;
// every accessor returns a deep copy, so callers may freely rework the
// returned collections in their own view state without corrupting the seed.
package fixture

import (
	"context"

	"chucklechain/domain"
)

// Store holds the seed collections.
type Store struct {
	currentUser   domain.User
	posts         []domain.Post
	profiles      map[string]domain.UserProfile
	conversations []domain.Conversation
	notifications []domain.Notification
	trending      []domain.Post
	fresh         []domain.Post
	categories    map[string][]domain.Post
	hashtags      map[string][]domain.Post
}

// New builds a store with seed timestamps relative to now.
func New() *Store {
	return seed()
}

// CurrentUser returns the session owner's identity.
func (s *Store) CurrentUser(ctx context.Context) (domain.User, error) {
	return s.currentUser, nil
}

// Profile returns the profile page for a username. Unknown usernames fall
// back to the session owner's profile; the seed dataset signals no
// "not found" condition. This is a deliberate demo-data policy, not an
// oversight.
func (s *Store) Profile(ctx context.Context, username string) (domain.UserProfile, error) {
	p, ok := s.profiles[username]
	if !ok {
		p = s.profiles[s.currentUser.Username]
	}
	return copyProfile(p), nil
}

// Home returns the main feed, newest first.
func (s *Store) Home(ctx context.Context) ([]domain.Post, error) {
	return copyPosts(s.posts), nil
}

// Trending returns posts with the highest engagement.
func (s *Store) Trending(ctx context.Context) ([]domain.Post, error) {
	return copyPosts(s.trending), nil
}

// Fresh returns the most recently posted memes.
func (s *Store) Fresh(ctx context.Context) ([]domain.Post, error) {
	return copyPosts(s.fresh), nil
}

// ByCategory returns posts for a category; unknown categories yield an
// empty slice.
func (s *Store) ByCategory(ctx context.Context, category string) ([]domain.Post, error) {
	return copyPosts(s.categories[category]), nil
}

// ByHashtag returns posts for a hashtag; unknown tags yield an empty slice.
func (s *Store) ByHashtag(ctx context.Context, tag string) ([]domain.Post, error) {
	return copyPosts(s.hashtags[tag]), nil
}

// Conversations returns the session user's message threads.
func (s *Store) Conversations(ctx context.Context) ([]domain.Conversation, error) {
	out := make([]domain.Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		messages := make([]domain.Message, len(c.Messages))
		copy(messages, c.Messages)
		c.Messages = messages
		out = append(out, c)
	}
	return out, nil
}

// Notifications returns the session user's activity feed.
func (s *Store) Notifications(ctx context.Context) ([]domain.Notification, error) {
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out, nil
}

func copyPosts(posts []domain.Post) []domain.Post {
	out := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		comments := make([]domain.Comment, len(p.Comments))
		copy(comments, p.Comments)
		p.Comments = comments
		if p.MemeTexts != nil {
			overlays := make([]domain.MemeText, len(p.MemeTexts))
			copy(overlays, p.MemeTexts)
			p.MemeTexts = overlays
		}
		out = append(out, p)
	}
	return out
}

func copyProfile(p domain.UserProfile) domain.UserProfile {
	p.Posts = copyPosts(p.Posts)
	return p
}
