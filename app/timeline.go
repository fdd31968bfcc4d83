package app

import (
	"context"

	"chucklechain/domain"
)

// TimelineService fetches posts for the feed views.
type TimelineService interface {
	// Home returns the main feed, newest first.
	Home(ctx context.Context) ([]domain.Post, error)

	// Trending returns posts with the highest engagement.
	Trending(ctx context.Context) ([]domain.Post, error)

	// Fresh returns the most recently posted memes.
	Fresh(ctx context.Context) ([]domain.Post, error)

	// ByCategory returns posts for a category. Unknown categories yield an
	// empty slice, not an error.
	ByCategory(ctx context.Context, category string) ([]domain.Post, error)

	// ByHashtag returns posts for a hashtag. Unknown tags yield an empty
	// slice, not an error.
	ByHashtag(ctx context.Context, tag string) ([]domain.Post, error)
}
