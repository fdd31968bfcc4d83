// Package composer validates and assembles new posts before they are handed
// to the feed.
package composer

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/google/uuid"

	"chucklechain/domain"
)

// MaxImageBytes is the largest accepted image payload.
const MaxImageBytes = 5 << 20 // 5 MiB

// TextPosition selects where an on-image caption overlay sits.
type TextPosition string

const (
	TextTop    TextPosition = "top"
	TextBottom TextPosition = "bottom"
)

// Input is everything the compose form collects.
type Input struct {
	Caption      string
	Image        []byte
	Category     string
	Placement    domain.CaptionPlacement
	TextPosition TextPosition // only meaningful with PlacementOnImage
}

// Compose validates in and assembles a ready-to-publish post authored by
// user. Validation order: caption presence, image presence, image size.
// On success the post carries a fresh id, the author's identity snapshot,
// the current time, zero likes and no comments. With on-image placement
// exactly one default-styled overlay is synthesized from the caption; with
// whitespace placement the caption renders as a separate header band.
func Compose(user domain.User, in Input) (domain.Post, error) {
	if in.Caption == "" {
		return domain.Post{}, domain.ErrMissingCaption
	}
	if len(in.Image) == 0 {
		return domain.Post{}, domain.ErrMissingImage
	}
	if len(in.Image) > MaxImageBytes {
		return domain.Post{}, domain.ErrImageTooLarge
	}

	post := domain.Post{
		ID: uuid.NewString(),
		User: domain.User{
			ID:             user.ID,
			Username:       user.Username,
			ProfilePicture: user.ProfilePicture,
		},
		Text:             in.Caption,
		Image:            dataURI(in.Image),
		CreatedAt:        time.Now(),
		Likes:            0,
		IsLiked:          false,
		Comments:         []domain.Comment{},
		Category:         in.Category,
		CaptionPlacement: in.Placement,
	}
	if in.Placement == domain.PlacementOnImage {
		post.MemeTexts = []domain.MemeText{overlayFor(in.Caption, in.TextPosition)}
	}
	return post, nil
}

// overlayFor builds the single default-styled overlay for an on-image
// caption: horizontally centered, near the top or bottom edge, classic
// white uppercase with an outline.
func overlayFor(caption string, pos TextPosition) domain.MemeText {
	y := 90.0
	if pos == TextTop {
		y = 10
	}
	return domain.MemeText{
		ID:         uuid.NewString(),
		Text:       caption,
		X:          50,
		Y:          y,
		FontSize:   32,
		FontFamily: "Impact",
		Color:      "#FFFFFF",
		TextAlign:  "center",
		Uppercase:  true,
		Outline:    true,
	}
}

// dataURI encodes raw image bytes the way a browser FileReader would.
func dataURI(img []byte) string {
	return "data:" + http.DetectContentType(img) + ";base64," + base64.StdEncoding.EncodeToString(img)
}
