// internal/application/store_postgres_test.go
package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func newMockedStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db), mock
}

func applicationColumns() []string {
	return []string{
		"id", "user_id", "business_name", "business_type", "region",
		"submitted_date", "status", "is_optimistic",
	}
}

func sampleApplication() models.Application {
	return models.Application{
		ID:            "app_1735600000000",
		UserID:        "jane@example.com",
		BusinessName:  "Savannah Traders",
		Type:          models.BusinessTypeSARL,
		Region:        "littoral",
		SubmittedDate: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		Status:        models.StatusSubmitted,
		IsOptimistic:  false,
	}
}

// ==========================
// List
// ==========================

func TestPostgresStore_List_AllStatuses(t *testing.T) {
	store, mock := newMockedStore(t)
	app := sampleApplication()

	rows := sqlmock.NewRows(applicationColumns()).AddRow(
		app.ID, app.UserID, app.BusinessName, string(app.Type), app.Region,
		app.SubmittedDate, string(app.Status), app.IsOptimistic,
	)
	mock.ExpectQuery(`SELECT id, user_id, business_name, business_type, region,\s+submitted_date, status, is_optimistic\s+FROM applications\s+WHERE user_id = \$1 ORDER BY submitted_date DESC`).
		WithArgs(app.UserID).
		WillReturnRows(rows)

	apps, err := store.List(context.Background(), app.UserID, "All")

	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, app, apps[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_List_FiltersByStatus(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectQuery(`WHERE user_id = \$1 AND status = \$2 ORDER BY submitted_date DESC`).
		WithArgs("jane@example.com", "Approved").
		WillReturnRows(sqlmock.NewRows(applicationColumns()))

	apps, err := store.List(context.Background(), "jane@example.com", "Approved")

	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_List_QueryFailure(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectQuery(`FROM applications`).
		WillReturnError(errors.New("connection reset"))

	_, err := store.List(context.Background(), "jane@example.com", "")

	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeStorageReadFailed))
}

// ==========================
// Insert
// ==========================

func TestPostgresStore_Insert(t *testing.T) {
	store, mock := newMockedStore(t)
	app := sampleApplication()

	mock.ExpectExec(`INSERT INTO applications`).
		WithArgs(
			app.ID, app.UserID, app.BusinessName, string(app.Type), app.Region,
			app.SubmittedDate, string(app.Status), app.IsOptimistic,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Insert(context.Background(), app)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Insert_WriteFailure(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectExec(`INSERT INTO applications`).
		WillReturnError(errors.New("duplicate key value"))

	err := store.Insert(context.Background(), sampleApplication())

	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeStorageWriteFailed))
}

// ==========================
// Replace
// ==========================

func TestPostgresStore_Replace(t *testing.T) {
	store, mock := newMockedStore(t)
	app := sampleApplication()

	mock.ExpectExec(`UPDATE applications`).
		WithArgs(app.ID, string(app.Status), app.IsOptimistic, "temp_1735600000000", app.UserID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Replace(context.Background(), app.UserID, "temp_1735600000000", app)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Replace_MissingRow(t *testing.T) {
	store, mock := newMockedStore(t)
	app := sampleApplication()

	mock.ExpectExec(`UPDATE applications`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Replace(context.Background(), app.UserID, "temp_gone", app)

	require.Error(t, err)
	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeStorageWriteFailed, stdErr.Code)
	assert.Contains(t, stdErr.Details, "temp_gone")
}

// ==========================
// Remove
// ==========================

func TestPostgresStore_Remove(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectExec(`DELETE FROM applications WHERE id = \$1 AND user_id = \$2`).
		WithArgs("temp_1735600000000", "jane@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Remove(context.Background(), "jane@example.com", "temp_1735600000000")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
