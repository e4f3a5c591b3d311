package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"Dealio/internal/core/images"
	"Dealio/internal/identity"
)

type userService struct {
	provider identity.Provider
	images   images.Service
	logger   *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(provider identity.Provider, imageService images.Service, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		provider: provider,
		images:   imageService,
		logger:   logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, username string) (*Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUserNotFound
	}

	user, err := s.provider.LookupUser(ctx, username)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to look up user", "error", err, "username", username)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return &Profile{
		CreatedTime: user.CreatedTime,
		Username:    user.Username,
		Email:       identity.MaskEmail(user.Email),
		Picture:     user.Picture,
	}, nil
}

func (s *userService) UpdateProfileImage(ctx context.Context, userID, username string, upload images.Upload) (string, error) {
	userID = strings.TrimSpace(userID)
	username = strings.TrimSpace(username)
	if userID == "" || username == "" {
		return "", ErrMissingIdentity
	}

	url, err := s.images.UploadProfileImage(ctx, username, upload)
	if err != nil {
		return "", err
	}

	if err := s.provider.UpdatePicture(ctx, userID, url); err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		s.logger.Error("failed to update profile picture",
			"error", err,
			"user_id", userID,
			"image_url", url)
		return "", fmt.Errorf("failed to update profile picture: %w", err)
	}

	s.logger.Info("profile picture updated", "username", username, "user_id", userID)
	return url, nil
}
