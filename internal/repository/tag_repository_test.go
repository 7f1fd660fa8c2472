package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestGormTagRepository_SearchByName(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTagRepository(db)

	userID := uuid.New()
	tagID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "date_created"}).
		AddRow(tagID.String(), userID.String(), "Travel Log", time.Now().UTC())

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `tags` WHERE user_id = ? AND LOWER(name) LIKE ?")).
		WithArgs(userID.String(), "%travel%").
		WillReturnRows(rows)

	tags, err := repo.SearchByName(userID, "travel")
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, tagID, tags[0].ID)
	require.Equal(t, "Travel Log", tags[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTagRepository_FindByName_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTagRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `tags` WHERE name = ?")).
		WithArgs("Cooking", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "date_created"}))

	_, err := repo.FindByName("Cooking")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTagRepository_Delete_ClearsAssociations(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTagRepository(db)

	tagID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM journal_tags WHERE tag_id = ?")).
		WithArgs(tagID.String()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM `tags` WHERE id = ?")).
		WithArgs(tagID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(tagID))
	require.NoError(t, mock.ExpectationsWereMet())
}
