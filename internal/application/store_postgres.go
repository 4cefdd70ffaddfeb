// internal/application/store_postgres.go
package application

import (
	"context"
	"database/sql"
	"fmt"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/models"
)

// PostgresStore persists applications in the applications table. Ordering by
// submitted_date DESC keeps position stable across the optimistic-to-
// confirmed swap, since Replace never touches the date.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context, userID, status string) ([]models.Application, error) {
	query := `
		SELECT id, user_id, business_name, business_type, region,
		       submitted_date, status, is_optimistic
		FROM applications
		WHERE user_id = $1`
	args := []interface{}{userID}

	if status != "" && status != "All" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY submitted_date DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, stderrors.NewStorageReadFailedError(err)
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		var app models.Application
		if err := rows.Scan(
			&app.ID, &app.UserID, &app.BusinessName, &app.Type, &app.Region,
			&app.SubmittedDate, &app.Status, &app.IsOptimistic,
		); err != nil {
			return nil, stderrors.NewStorageReadFailedError(err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewStorageReadFailedError(err)
	}
	return apps, nil
}

func (s *PostgresStore) Insert(ctx context.Context, app models.Application) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO applications (
			id, user_id, business_name, business_type, region,
			submitted_date, status, is_optimistic
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		app.ID, app.UserID, app.BusinessName, app.Type, app.Region,
		app.SubmittedDate, app.Status, app.IsOptimistic,
	)
	if err != nil {
		return stderrors.NewStorageWriteFailedError(err)
	}
	return nil
}

func (s *PostgresStore) Replace(ctx context.Context, userID, oldID string, app models.Application) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE applications
		SET id = $1, status = $2, is_optimistic = $3
		WHERE id = $4 AND user_id = $5`,
		app.ID, app.Status, app.IsOptimistic, oldID, userID,
	)
	if err != nil {
		return stderrors.NewStorageWriteFailedError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return stderrors.NewStorageWriteFailedError(fmt.Errorf("no application with id %s", oldID))
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, userID, id string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM applications WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return stderrors.NewStorageWriteFailedError(err)
	}
	return nil
}
