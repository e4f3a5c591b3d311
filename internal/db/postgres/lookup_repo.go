package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Dealio/internal/core/categories"
	"Dealio/internal/core/reports"
)

type postgresCategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepository creates a new PostgreSQL category repository
func NewCategoryRepository(db *sql.DB) categories.Repository {
	return &postgresCategoryRepo{db: db}
}

func (r *postgresCategoryRepo) List(ctx context.Context) ([]*categories.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*categories.Category
	for rows.Next() {
		var c categories.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return result, nil
}

func (r *postgresCategoryRepo) GetByName(ctx context.Context, name string) (*categories.Category, error) {
	var c categories.Category
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM categories WHERE name = $1`, name).Scan(&c.ID, &c.Name)
	if err == sql.ErrNoRows {
		return nil, categories.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &c, nil
}

type postgresReportRepo struct {
	db *sql.DB
}

// NewReportRepository creates a new PostgreSQL report repository
func NewReportRepository(db *sql.DB) reports.Repository {
	return &postgresReportRepo{db: db}
}

func (r *postgresReportRepo) ListReasons(ctx context.Context) ([]*reports.Reason, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM reasons ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reasons: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*reports.Reason
	for rows.Next() {
		var reason reports.Reason
		if err := rows.Scan(&reason.ID, &reason.Name); err != nil {
			return nil, fmt.Errorf("failed to scan reason: %w", err)
		}
		result = append(result, &reason)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reasons: %w", err)
	}
	return result, nil
}

func (r *postgresReportRepo) GetReasonByName(ctx context.Context, name string) (*reports.Reason, error) {
	var reason reports.Reason
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM reasons WHERE name = $1`, name).Scan(&reason.ID, &reason.Name)
	if err == sql.ErrNoRows {
		return nil, reports.ErrUnknownReason
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reason: %w", err)
	}
	return &reason, nil
}

// Create inserts the report and runs beforeCommit inside the same transaction
func (r *postgresReportRepo) Create(ctx context.Context, report *reports.Report, beforeCommit func(ctx context.Context, report *reports.Report) error) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO reports (reason_id, post_id, comment_id, reporter, description)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_time
		`, report.ReasonID, report.PostID, report.CommentID, report.Reporter, report.Description,
		).Scan(&report.ID, &report.CreatedTime)
		if err != nil {
			if isForeignKeyViolation(err) {
				return reports.ErrTargetNotFound
			}
			return fmt.Errorf("failed to insert report: %w", err)
		}

		if beforeCommit != nil {
			return beforeCommit(ctx, report)
		}
		return nil
	})
}
