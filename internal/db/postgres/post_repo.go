package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Dealio/internal/core/posts"
)

// postSelect loads a post with its category name and comment count
const postSelect = `
	SELECT
		p.id, p.author, p.title, p.url, p.coupon_code, p.image_url,
		p.start_date, p.end_date, p.description,
		p.category_id, c.name, p.votes, p.created_time,
		(SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id) AS comment_count
	FROM posts p
	JOIN categories c ON c.id = p.category_id
`

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post; votes always start at zero
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (
			author, title, url, coupon_code, image_url,
			start_date, end_date, description, category_id, votes
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, 0
		)
		RETURNING id, created_time, votes
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.Author, post.Title, post.URL, post.CouponCode, post.ImageURL,
		post.StartDate, post.EndDate, post.Description, post.CategoryID,
	).Scan(&post.ID, &post.CreatedTime, &post.Votes)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	return getPostByID(ctx, r.db, id)
}

func (r *postgresPostRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}
	return exists, nil
}

// Update writes every editable column. The votes counter is never touched here;
// only the vote repository moves it, under the row lock.
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts SET
			title = $2, url = $3, coupon_code = $4, image_url = $5,
			start_date = $6, end_date = $7, description = $8, category_id = $9
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx, query,
		post.ID, post.Title, post.URL, post.CouponCode, post.ImageURL,
		post.StartDate, post.EndDate, post.Description, post.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return posts.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return posts.ErrPostNotFound
	}
	return nil
}

func (r *postgresPostRepo) List(ctx context.Context, filter posts.ListFilter, limit, offset int) ([]*posts.Post, error) {
	where, args := buildPostFilter(filter)
	args = append(args, limit, offset)
	query := postSelect + where + fmt.Sprintf(`
		ORDER BY p.created_time DESC, p.id DESC
		LIMIT $%d OFFSET $%d
	`, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return result, nil
}

func (r *postgresPostRepo) Count(ctx context.Context, filter posts.ListFilter) (int, error) {
	where, args := buildPostFilter(filter)
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts p`+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return total, nil
}

// buildPostFilter renders filter as a WHERE clause over alias p
func buildPostFilter(filter posts.ListFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.CategoryID != nil {
		add("p.category_id = $%d", *filter.CategoryID)
	}
	if filter.TitleContains != "" {
		add(`p.title ILIKE $%d ESCAPE '\'`, "%"+escapeLike(filter.TitleContains)+"%")
	}
	if filter.Author != "" {
		add("p.author = $%d", filter.Author)
	}
	if filter.CommentedBy != "" {
		add("EXISTS (SELECT 1 FROM comments cm WHERE cm.post_id = p.id AND cm.author = $%d)", filter.CommentedBy)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// queryRower is satisfied by *sql.DB and *sql.Tx
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func getPostByID(ctx context.Context, q queryRower, id int64) (*posts.Post, error) {
	post, err := scanPost(q.QueryRowContext(ctx, postSelect+` WHERE p.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var (
		post                     posts.Post
		url, coupon, image, desc sql.NullString
	)
	err := row.Scan(
		&post.ID, &post.Author, &post.Title, &url, &coupon, &image,
		&post.StartDate, &post.EndDate, &desc,
		&post.CategoryID, &post.Category, &post.Votes, &post.CreatedTime,
		&post.CommentCount,
	)
	if err != nil {
		return nil, err
	}
	post.URL = nullStringPtr(url)
	post.CouponCode = nullStringPtr(coupon)
	post.ImageURL = nullStringPtr(image)
	post.Description = nullStringPtr(desc)
	return &post, nil
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
