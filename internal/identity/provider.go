// Package identity talks to the external identity provider's management API.
package identity

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUserNotFound indicates the identity provider has no such user
	ErrUserNotFound = errors.New("user not found")

	// ErrNotConfigured is returned by Disabled for every call
	ErrNotConfigured = errors.New("identity provider is not configured")
)

// User is the provider's public view of an account
type User struct {
	CreatedTime string `json:"created_time"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Picture     string `json:"picture"`
}

// Provider looks up and updates accounts held by the identity provider
type Provider interface {
	// LookupUser returns the user with this username, or ErrUserNotFound
	LookupUser(ctx context.Context, username string) (*User, error)

	// UpdatePicture stores pictureURL in the user's metadata
	UpdatePicture(ctx context.Context, userID, pictureURL string) error
}

// Disabled is the Provider used when no management API credentials are set
type Disabled struct{}

func (Disabled) LookupUser(ctx context.Context, username string) (*User, error) {
	return nil, ErrNotConfigured
}

func (Disabled) UpdatePicture(ctx context.Context, userID, pictureURL string) error {
	return ErrNotConfigured
}

// MaskEmail hides the middle of the local part: one character is kept at each
// end for local parts up to six characters, three otherwise
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "****"
	}
	local, domain := email[:at], email[at+1:]

	n := 3
	if utf8.RuneCountInString(local) <= 6 {
		n = 1
	}
	runes := []rune(local)
	if len(runes) < n {
		return "****@" + domain
	}
	return string(runes[:n]) + "****" + string(runes[len(runes)-n:]) + "@" + domain
}
