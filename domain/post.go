package domain

import "time"

// CaptionPlacement selects how a post's caption is rendered.
type CaptionPlacement string

const (
	// PlacementOnImage overlays the caption on the image itself.
	PlacementOnImage CaptionPlacement = "on-image"
	// PlacementWhitespace renders the caption as a header band above the image.
	PlacementWhitespace CaptionPlacement = "whitespace"
)

// Post is a single meme: an image with a caption, optional category tag and
// optional on-image text overlays.
type Post struct {
	ID        string
	User      User
	Text      string
	Image     string // URL or base64 data URI
	CreatedAt time.Time
	// Likes and IsLiked move together: liking increments Likes by one and
	// sets IsLiked, unliking does the reverse. Likes never goes negative.
	Likes            int
	IsLiked          bool
	Comments         []Comment
	Category         string
	MemeTexts        []MemeText
	CaptionPlacement CaptionPlacement
}

// OwnedBy reports whether the post was authored by the given user.
func (p Post) OwnedBy(userID string) bool {
	return p.User.ID == userID
}

// Comment is a single comment under a post. Comments are append-only and
// keep insertion order.
type Comment struct {
	ID   string
	User string // username, not a full identity snapshot
	Text string
}

// MemeText is a positioned text overlay rendered atop a post's image.
// X and Y are percentages of the image width and height.
type MemeText struct {
	ID              string
	Text            string
	X               float64
	Y               float64
	FontSize        int
	FontFamily      string
	Color           string
	BackgroundColor string
	TextAlign       string
	Bold            bool
	Italic          bool
	Underline       bool
	Uppercase       bool
	Outline         bool
}
