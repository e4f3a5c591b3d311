package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Dealio/internal/core/images"
)

type postgresImageRepo struct {
	db *sql.DB
}

// NewImageRepository creates a new PostgreSQL image repository
func NewImageRepository(db *sql.DB) images.Repository {
	return &postgresImageRepo{db: db}
}

func (r *postgresImageRepo) Create(ctx context.Context, image *images.Image) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO images (image_url, author)
		VALUES ($1, $2)
		RETURNING id, created_time
	`, image.ImageURL, image.Author).Scan(&image.ID, &image.CreatedTime)
	if err != nil {
		return fmt.Errorf("failed to insert image: %w", err)
	}
	return nil
}
