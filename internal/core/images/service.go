package images

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/google/uuid"

	"Dealio/internal/blobstore"
)

// Options configures upload validation
type Options struct {
	// Extensions is the lowercase extension whitelist without dots
	Extensions []string
	// MaxBytes rejects larger uploads when positive
	MaxBytes int64
}

type imageService struct {
	repo         Repository
	postStore    blobstore.Store
	profileStore blobstore.Store
	logger       *slog.Logger
	allowed      map[string]bool
	maxBytes     int64
}

// NewService creates an image service writing post images to postStore and
// profile pictures to profileStore. Nil stores reject uploads as unconfigured.
func NewService(repo Repository, postStore, profileStore blobstore.Store, opts Options, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if postStore == nil {
		postStore = blobstore.Disabled{}
	}
	if profileStore == nil {
		profileStore = blobstore.Disabled{}
	}
	allowed := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}
	return &imageService{
		repo:         repo,
		postStore:    postStore,
		profileStore: profileStore,
		logger:       logger,
		allowed:      allowed,
		maxBytes:     opts.MaxBytes,
	}
}

func (s *imageService) UploadPostImage(ctx context.Context, username string, upload Upload) (*Image, error) {
	url, err := s.put(ctx, s.postStore, username, upload)
	if err != nil {
		return nil, err
	}

	// the blob is already public; a failed insert leaves it orphaned
	img := &Image{ImageURL: url, Author: username}
	if err := s.repo.Create(ctx, img); err != nil {
		s.logger.Error("failed to record uploaded image",
			"error", err,
			"author", username,
			"image_url", url)
		return nil, fmt.Errorf("failed to record image: %w", err)
	}

	s.logger.Info("post image uploaded", "author", username, "image_url", url)
	return img, nil
}

func (s *imageService) UploadProfileImage(ctx context.Context, username string, upload Upload) (string, error) {
	url, err := s.put(ctx, s.profileStore, username, upload)
	if err != nil {
		return "", err
	}
	s.logger.Info("profile image uploaded", "username", username, "image_url", url)
	return url, nil
}

func (s *imageService) put(ctx context.Context, store blobstore.Store, username string, upload Upload) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrMissingUsername
	}
	ext, err := s.checkUpload(upload)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.%s", username, uuid.NewString(), ext)
	url, err := store.Put(ctx, key, contentType(ext), upload.Body, upload.Size)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return url, nil
}

// checkUpload validates the upload and returns its normalized extension
func (s *imageService) checkUpload(upload Upload) (string, error) {
	if upload.Body == nil {
		return "", ErrNoFile
	}
	if strings.TrimSpace(upload.Filename) == "" {
		return "", ErrNoFilename
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(upload.Filename), "."))
	if ext == "" || !s.allowed[ext] {
		return "", fmt.Errorf("%w: only accept %s", ErrUnsupportedExtension, strings.Join(s.extensions(), ", "))
	}
	if s.maxBytes > 0 && upload.Size > s.maxBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, s.maxBytes)
	}
	return ext, nil
}

func (s *imageService) extensions() []string {
	out := make([]string, 0, len(s.allowed))
	for ext := range s.allowed {
		out = append(out, ext)
	}
	slices.Sort(out)
	return out
}

func contentType(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
