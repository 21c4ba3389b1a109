package repository_test

import (
	"regexp"
	"testing"
	"time"

	"peakform-backend/internal/database/models"
	"peakform-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newSQLMockRepo backs the repository with a sqlmock connection so statement
// shapes can be asserted without a database container.
func newSQLMockRepo(t *testing.T) (*repository.WebhookConfigRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return repository.NewWebhookConfigRepository(gdb), mock
}

func TestSetActiveUpdatesSingleColumn(t *testing.T) {
	repo, mock := newSQLMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "webhook_configs" SET`)).
		WithArgs(false, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetActive(id, false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetActiveMissingRow(t *testing.T) {
	repo, mock := newSQLMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "webhook_configs" SET`)).
		WithArgs(false, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetActive(id, false)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTouchLastTriggered(t *testing.T) {
	repo, mock := newSQLMockRepo(t)
	id := uuid.New()
	at := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "webhook_configs" SET`)).
		WithArgs(at, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.TouchLastTriggered(id, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByEventTypeFiltersOnBothColumns(t *testing.T) {
	repo, mock := newSQLMockRepo(t)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "name", "event_type", "is_active"}).
		AddRow(id, "badge hook", "badge.awarded", true)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "webhook_configs" WHERE event_type = $1 AND is_active = $2`)).
		WithArgs(string(models.EventBadgeAwarded), true).
		WillReturnRows(rows)

	configs, err := repo.GetActiveByEventType(models.EventBadgeAwarded)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "badge hook", configs[0].Name)
	assert.True(t, configs[0].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingRow(t *testing.T) {
	repo, mock := newSQLMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "webhook_configs"`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
