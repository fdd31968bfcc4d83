// Package profile implements the state transitions for profile pages.
package profile

import "chucklechain/domain"

// ToggleFollow flips IsFollowing and moves Followers with it in the same
// operation: +1 on follow, -1 on unfollow, never below zero. Self-follow is
// prevented by the presentation layer, which hides the control on the
// session user's own profile.
func ToggleFollow(p domain.UserProfile) domain.UserProfile {
	if p.IsFollowing {
		p.IsFollowing = false
		if p.Followers > 0 {
			p.Followers--
		}
	} else {
		p.IsFollowing = true
		p.Followers++
	}
	return p
}

// Patch carries the editable profile fields. Empty fields leave the existing
// value untouched.
type Patch struct {
	FullName       string
	Bio            string
	Website        string
	Username       string
	ProfilePicture string
}

// Apply shallow-merges patch into p and returns the result. When the edited
// profile belongs to the session user, the caller must also refresh the
// shared app.Session so every other surface picks up the new identity.
func Apply(p domain.UserProfile, patch Patch) domain.UserProfile {
	if patch.FullName != "" {
		p.FullName = patch.FullName
	}
	if patch.Bio != "" {
		p.Bio = patch.Bio
	}
	if patch.Website != "" {
		p.Website = patch.Website
	}
	if patch.Username != "" {
		p.Username = patch.Username
	}
	if patch.ProfilePicture != "" {
		p.ProfilePicture = patch.ProfilePicture
	}
	return p
}
