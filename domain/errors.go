package domain

import "errors"

var (
	// ErrMissingCaption indicates the user submitted a meme without a caption.
	ErrMissingCaption = errors.New("meme needs a caption")

	// ErrMissingImage indicates the user submitted a meme without an image.
	ErrMissingImage = errors.New("meme needs an image")

	// ErrImageTooLarge indicates the image payload exceeds the size limit.
	ErrImageTooLarge = errors.New("image must be smaller than 5 MiB")
)
