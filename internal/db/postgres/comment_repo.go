package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Dealio/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO comments (author, post_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created_time
	`, comment.Author, comment.PostID, comment.Text).Scan(&comment.ID, &comment.CreatedTime)
	if err != nil {
		if isForeignKeyViolation(err) {
			return comments.ErrPostNotFound
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (r *postgresCommentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	comment, err := scanComment(r.db.QueryRowContext(ctx, `
		SELECT id, author, post_id, text, created_time
		FROM comments
		WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return comment, nil
}

func (r *postgresCommentRepo) UpdateText(ctx context.Context, id int64, text string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE comments SET text = $2 WHERE id = $1`, id, text)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return expectOneRow(result, comments.ErrCommentNotFound)
}

func (r *postgresCommentRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return expectOneRow(result, comments.ErrCommentNotFound)
}

func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64, limit, offset int) ([]*comments.Comment, error) {
	return r.query(ctx, `
		SELECT id, author, post_id, text, created_time
		FROM comments
		WHERE post_id = $1
		ORDER BY created_time DESC, id DESC
		LIMIT $2 OFFSET $3
	`, postID, limit, offset)
}

func (r *postgresCommentRepo) CountByPost(ctx context.Context, postID int64) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return total, nil
}

func (r *postgresCommentRepo) ListByPostBefore(ctx context.Context, postID int64, startID *int64, limit int) ([]*comments.Comment, error) {
	return r.query(ctx, `
		SELECT id, author, post_id, text, created_time
		FROM comments
		WHERE post_id = $1 AND ($2::BIGINT IS NULL OR id <= $2)
		ORDER BY created_time DESC, id DESC
		LIMIT $3
	`, postID, startID, limit)
}

func (r *postgresCommentRepo) query(ctx context.Context, query string, args ...interface{}) ([]*comments.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*comments.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return result, nil
}

func scanComment(row rowScanner) (*comments.Comment, error) {
	var c comments.Comment
	if err := row.Scan(&c.ID, &c.Author, &c.PostID, &c.Text, &c.CreatedTime); err != nil {
		return nil, err
	}
	return &c, nil
}

// expectOneRow maps a zero-row write to notFound
func expectOneRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
