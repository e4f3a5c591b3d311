package images

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrNoFile indicates the multipart form carried no image part
	ErrNoFile = errors.New("no image was uploaded")

	// ErrNoFilename indicates the image part had an empty filename
	ErrNoFilename = errors.New("no file was selected")

	// ErrUnsupportedExtension indicates the filename extension is not allowed
	ErrUnsupportedExtension = errors.New("unsupported file extension")

	// ErrTooLarge indicates the upload exceeds the configured size limit
	ErrTooLarge = errors.New("image is too large")

	// ErrMissingUsername indicates the upload had no owner
	ErrMissingUsername = errors.New("missing username")
)

// IsValidationError reports whether err is a rejected upload
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoFile) ||
		errors.Is(err, ErrNoFilename) ||
		errors.Is(err, ErrUnsupportedExtension) ||
		errors.Is(err, ErrTooLarge) ||
		errors.Is(err, ErrMissingUsername)
}

// Image is the upload log row for a post image
type Image struct {
	CreatedTime time.Time `json:"created_time" db:"created_time"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	Author      string    `json:"author" db:"author"`
	ID          int64     `json:"id" db:"id"`
}

// Upload is one file taken from a multipart request
type Upload struct {
	Body     io.Reader
	Filename string
	Size     int64
}

// Service stores uploads in the blob store
type Service interface {
	// UploadPostImage stores an image for use in a post and logs it
	UploadPostImage(ctx context.Context, username string, upload Upload) (*Image, error)

	// UploadProfileImage stores a profile picture and returns its URL
	UploadProfileImage(ctx context.Context, username string, upload Upload) (string, error)
}

// Repository records uploaded post images
type Repository interface {
	Create(ctx context.Context, image *Image) error
}
