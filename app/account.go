package app

import (
	"context"

	"chucklechain/domain"
)

// AccountService provides user identities and profile pages.
type AccountService interface {
	// CurrentUser returns the session owner's identity.
	CurrentUser(ctx context.Context) (domain.User, error)

	// Profile returns the profile page for a username. Unknown usernames
	// fall back to the session owner's profile instead of failing.
	Profile(ctx context.Context, username string) (domain.UserProfile, error)
}
