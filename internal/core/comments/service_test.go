package comments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id int64) (*Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *mockCommentRepo) UpdateText(ctx context.Context, id int64, text string) error {
	args := m.Called(ctx, id, text)
	return args.Error(0)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCommentRepo) ListByPost(ctx context.Context, postID int64, limit, offset int) ([]*Comment, error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

func (m *mockCommentRepo) CountByPost(ctx context.Context, postID int64) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

func (m *mockCommentRepo) ListByPostBefore(ctx context.Context, postID int64, startID *int64, limit int) ([]*Comment, error) {
	args := m.Called(ctx, postID, startID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

// postSet is a PostValidator backed by a fixed set of ids
type postSet map[int64]bool

func (p postSet) PostExists(ctx context.Context, postID int64) (bool, error) {
	return p[postID], nil
}

type failingValidator struct{}

func (failingValidator) PostExists(ctx context.Context, postID int64) (bool, error) {
	return false, errors.New("connection reset")
}

func newService(repo Repository) Service {
	return NewCommentService(repo, postSet{1: true, 2: true}, Options{PerPage: 20, MaxRecent: 50}, nil)
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockCommentRepo)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *Comment) bool {
			return c.PostID == 1 && c.Author == "alice" && c.Text == "great deal"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*Comment).ID = 10
		}).Return(nil)

		c, err := newService(repo).CreateComment(ctx, 1, "alice", CommentRequest{Text: "  great deal "})
		require.NoError(t, err)
		assert.Equal(t, int64(10), c.ID)
		repo.AssertExpectations(t)
	})

	t.Run("missing post", func(t *testing.T) {
		repo := new(mockCommentRepo)
		_, err := newService(repo).CreateComment(ctx, 99, "alice", CommentRequest{Text: "hi"})
		assert.ErrorIs(t, err, ErrPostNotFound)
		assert.True(t, IsNotFound(err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("validation", func(t *testing.T) {
		repo := new(mockCommentRepo)
		svc := newService(repo)

		_, err := svc.CreateComment(ctx, 1, "", CommentRequest{Text: "hi"})
		assert.ErrorIs(t, err, ErrMissingAuthor)

		_, err = svc.CreateComment(ctx, 1, "alice", CommentRequest{Text: "   "})
		assert.ErrorIs(t, err, ErrContentEmpty)

		_, err = svc.CreateComment(ctx, 1, "alice", CommentRequest{Text: strings.Repeat("a", maxCommentGraphemes+1)})
		assert.ErrorIs(t, err, ErrContentTooLong)
		assert.True(t, IsValidationError(err))

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("post lookup failure is internal", func(t *testing.T) {
		repo := new(mockCommentRepo)
		svc := NewCommentService(repo, failingValidator{}, Options{}, nil)
		_, err := svc.CreateComment(ctx, 1, "alice", CommentRequest{Text: "hi"})
		require.Error(t, err)
		assert.False(t, IsNotFound(err))
		assert.False(t, IsValidationError(err))
	})
}

func TestEditComment_Guards(t *testing.T) {
	ctx := context.Background()
	stored := &Comment{ID: 5, PostID: 1, Author: "alice", Text: "old"}

	tests := []struct {
		name    string
		postID  int64
		editor  string
		wantErr error
	}{
		{"non-author", 1, "bob", ErrNotAuthorized},
		{"wrong post", 2, "alice", ErrWrongPost},
		{"missing header", 1, "", ErrMissingAuthor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockCommentRepo)
			repo.On("GetByID", mock.Anything, int64(5)).Return(stored, nil).Maybe()

			_, err := newService(repo).EditComment(ctx, tt.postID, 5, tt.editor, CommentRequest{Text: "new"})
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "UpdateText", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("wrong post is forbidden", func(t *testing.T) {
		assert.True(t, IsForbidden(ErrWrongPost))
	})
}

func TestEditComment_Success(t *testing.T) {
	repo := new(mockCommentRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&Comment{ID: 5, PostID: 1, Author: "alice", Text: "old"}, nil)
	repo.On("UpdateText", mock.Anything, int64(5), "new text").Return(nil)

	c, err := newService(repo).EditComment(context.Background(), 1, 5, "alice", CommentRequest{Text: "new text"})
	require.NoError(t, err)
	assert.Equal(t, "new text", c.Text)
	repo.AssertExpectations(t)
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()

	t.Run("missing comment", func(t *testing.T) {
		repo := new(mockCommentRepo)
		repo.On("GetByID", mock.Anything, int64(9)).Return(nil, ErrCommentNotFound)
		err := newService(repo).DeleteComment(ctx, 1, 9, "alice")
		assert.ErrorIs(t, err, ErrCommentNotFound)
	})

	t.Run("author deletes", func(t *testing.T) {
		repo := new(mockCommentRepo)
		repo.On("GetByID", mock.Anything, int64(5)).Return(&Comment{ID: 5, PostID: 1, Author: "alice"}, nil)
		repo.On("Delete", mock.Anything, int64(5)).Return(nil)
		require.NoError(t, newService(repo).DeleteComment(ctx, 1, 5, "alice"))
		repo.AssertExpectations(t)
	})
}

func TestListComments(t *testing.T) {
	repo := new(mockCommentRepo)
	repo.On("ListByPost", mock.Anything, int64(1), 20, 20).Return([]*Comment{{ID: 3}}, nil)
	repo.On("CountByPost", mock.Anything, int64(1)).Return(21, nil)

	page, err := newService(repo).ListComments(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 21, page.Total)
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)

	_, err = newService(repo).ListComments(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListRecentComments(t *testing.T) {
	ctx := context.Background()
	start := int64(40)

	repo := new(mockCommentRepo)
	repo.On("ListByPostBefore", mock.Anything, int64(1), (*int64)(nil), 10).Return(nil, nil)
	repo.On("ListByPostBefore", mock.Anything, int64(1), &start, 50).Return([]*Comment{{ID: 40}, {ID: 38}}, nil)
	svc := newService(repo)

	list, err := svc.ListRecentComments(ctx, 1, nil, 10)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	// limit above the cap is clamped
	list, err = svc.ListRecentComments(ctx, 1, &start, 500)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.ListRecentComments(ctx, 1, nil, 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = svc.ListRecentComments(ctx, 7, nil, 5)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
