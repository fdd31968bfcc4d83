package domain

// User is the public identity snapshot attached to posts, conversations
// and notifications.
type User struct {
	ID             string
	Username       string
	ProfilePicture string
}

// UserProfile is the full profile-page view of a user.
type UserProfile struct {
	User
	FullName  string
	Bio       string
	Website   string
	Followers int
	Following int
	// IsFollowing reports whether the session user follows this profile.
	// It moves together with Followers: toggling it adjusts the count by
	// exactly one in the same operation.
	IsFollowing bool
	Posts       []Post
}
