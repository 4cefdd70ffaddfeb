// internal/auth/store_postgres.go
package auth

import (
	"context"
	"database/sql"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/models"

	"github.com/lib/pq"
)

// PostgresUserStore persists user records in the users table.
type PostgresUserStore struct {
	db *sql.DB
}

func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) Save(ctx context.Context, rec models.UserRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (email, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4)`,
		rec.Email, rec.Name, rec.PasswordHash, rec.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return stderrors.NewDuplicateUserError(rec.Email)
		}
		return stderrors.NewStorageWriteFailedError(err)
	}
	return nil
}

func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) (models.UserRecord, error) {
	var rec models.UserRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT email, name, password_hash, created_at
		FROM users WHERE email = $1`, email,
	).Scan(&rec.Email, &rec.Name, &rec.PasswordHash, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return models.UserRecord{}, ErrNotFound
	}
	if err != nil {
		return models.UserRecord{}, stderrors.NewStorageReadFailedError(err)
	}
	return rec, nil
}
