package users

import (
	"context"

	"Dealio/internal/core/images"
)

// UserService defines the interface for user business logic.
// Accounts live in the external identity provider; nothing is stored locally.
type UserService interface {
	// GetProfile looks the user up by username and masks the email
	GetProfile(ctx context.Context, username string) (*Profile, error)

	// UpdateProfileImage uploads a new picture and points the account at it
	UpdateProfileImage(ctx context.Context, userID, username string, upload images.Upload) (string, error)
}
