package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Dealio/internal/core/comments"
	"Dealio/internal/core/posts"
)

func TestPostRepo_CreateGetUpdateDelete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewPostRepository(db)

	code := "SAVE10"
	post := createTestPost(t, db, "alice", "Half price headphones", 3)
	assert.NotZero(t, post.ID)
	assert.Equal(t, 0, post.Votes)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", got.Category)
	assert.Equal(t, "alice", got.Author)
	assert.Nil(t, got.CouponCode)
	assert.Equal(t, 0, got.CommentCount)

	got.CouponCode = &code
	got.Title = "Half price headphones today"
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CouponCode)
	assert.Equal(t, code, *got.CouponCode)
	assert.Equal(t, "Half price headphones today", got.Title)

	exists, err := repo.Exists(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, post.ID))
	_, err = repo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, post.ID), posts.ErrPostNotFound)
}

func TestPostRepo_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewPostRepository(db)

	first := createTestPost(t, db, "alice", "Cheap laptop", 3)
	createTestPost(t, db, "bob", "Winter jackets 50% off", 5)
	third := createTestPost(t, db, "alice", "Laptop stand", 3)

	require.NoError(t, NewCommentRepository(db).Create(ctx, &comments.Comment{PostID: first.ID, Author: "carol", Text: "nice"}))
	require.NoError(t, NewCommentRepository(db).Create(ctx, &comments.Comment{PostID: first.ID, Author: "carol", Text: "again"}))

	electronics := 3
	tests := []struct {
		name    string
		filter  posts.ListFilter
		wantIDs []int64
	}{
		{"all newest first", posts.ListFilter{}, []int64{third.ID, third.ID - 1, first.ID}},
		{"category", posts.ListFilter{CategoryID: &electronics}, []int64{third.ID, first.ID}},
		{"title is case insensitive", posts.ListFilter{TitleContains: "LAPTOP"}, []int64{third.ID, first.ID}},
		{"percent matches literally", posts.ListFilter{TitleContains: "50%"}, []int64{third.ID - 1}},
		{"underscore matches literally", posts.ListFilter{TitleContains: "_"}, nil},
		{"author", posts.ListFilter{Author: "bob"}, []int64{third.ID - 1}},
		{"commented by has no duplicates", posts.ListFilter{CommentedBy: "carol"}, []int64{first.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.List(ctx, tt.filter, 10, 0)
			require.NoError(t, err)

			var ids []int64
			for _, p := range list {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)

			total, err := repo.Count(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, len(tt.wantIDs), total)
		})
	}

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentCount)
}

func TestPostRepo_ListOffset(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	for i := 0; i < 5; i++ {
		createTestPost(t, db, "alice", "deal", 1)
	}

	list, err := repo.List(context.Background(), posts.ListFilter{}, 2, 4)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)
}
