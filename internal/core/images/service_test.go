package images

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Dealio/internal/blobstore"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	args := m.Called(ctx, key, contentType, body, size)
	return args.String(0), args.Error(1)
}

type mockImageRepo struct {
	mock.Mock
}

func (m *mockImageRepo) Create(ctx context.Context, image *Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

var testOpts = Options{Extensions: []string{"png", "jpg", "jpeg", "gif"}, MaxBytes: 1024}

func upload(name string, size int64) Upload {
	return Upload{Filename: name, Size: size, Body: strings.NewReader("data")}
}

func TestUploadPostImage(t *testing.T) {
	store := new(mockStore)
	repo := new(mockImageRepo)
	store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "alice/") && strings.HasSuffix(key, ".jpg")
	}), "image/jpeg", mock.Anything, int64(4)).Return("https://b.s3.r.amazonaws.com/alice/x.jpg", nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*images.Image")).Return(nil)

	svc := NewService(repo, store, nil, testOpts, nil)
	img, err := svc.UploadPostImage(context.Background(), "alice", upload("Photo.JPG", 4))
	require.NoError(t, err)

	assert.Equal(t, "https://b.s3.r.amazonaws.com/alice/x.jpg", img.ImageURL)
	assert.Equal(t, "alice", img.Author)
	store.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUploadPostImage_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		upload  Upload
		wantErr error
	}{
		{"no file", "alice", Upload{Filename: "a.png"}, ErrNoFile},
		{"no filename", "alice", upload("", 4), ErrNoFilename},
		{"bad extension", "alice", upload("script.exe", 4), ErrUnsupportedExtension},
		{"no extension", "alice", upload("README", 4), ErrUnsupportedExtension},
		{"too large", "alice", upload("big.png", 4096), ErrTooLarge},
		{"no user", " ", upload("a.png", 4), ErrMissingUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockStore)
			repo := new(mockImageRepo)
			svc := NewService(repo, store, nil, testOpts, nil)

			_, err := svc.UploadPostImage(context.Background(), tt.user, tt.upload)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
			store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUploadPostImage_InsertFailureAfterPut(t *testing.T) {
	store := new(mockStore)
	repo := new(mockImageRepo)
	store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://x/y.png", nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := NewService(repo, store, nil, testOpts, nil)
	_, err := svc.UploadPostImage(context.Background(), "alice", upload("a.png", 4))
	require.Error(t, err)
	assert.False(t, IsValidationError(err))
	store.AssertNumberOfCalls(t, "Put", 1)
}

func TestUploadProfileImage_NotConfigured(t *testing.T) {
	svc := NewService(new(mockImageRepo), nil, nil, testOpts, nil)
	_, err := svc.UploadProfileImage(context.Background(), "alice", upload("me.png", 4))
	assert.ErrorIs(t, err, blobstore.ErrNotConfigured)
	assert.False(t, IsValidationError(err))
}

func TestUploadProfileImage(t *testing.T) {
	store := new(mockStore)
	store.On("Put", mock.Anything, mock.Anything, "image/png", mock.Anything, int64(4)).Return("https://p/alice/me.png", nil)

	svc := NewService(new(mockImageRepo), nil, store, testOpts, nil)
	url, err := svc.UploadProfileImage(context.Background(), "alice", upload("me.png", 4))
	require.NoError(t, err)
	assert.Equal(t, "https://p/alice/me.png", url)
}
