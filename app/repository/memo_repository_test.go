package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamamoto-dev/pointbox/app/models"
)

func TestMemoRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemoRepository(db)

	mock.ExpectExec(`INSERT INTO .memos.`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	memo := &models.Memo{UserID: uuid.NewString(), Title: "expiry dates", Body: "rakuten points expire 2025-12"}
	require.NoError(t, repo.Create(memo))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoRepositoryListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemoRepository(db)
	userID := uuid.NewString()

	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "body"}).
		AddRow(2, userID, "newest", "").
		AddRow(1, userID, "older", "body text")
	mock.ExpectQuery(`SELECT \* FROM .memos. WHERE user_id = \? ORDER BY created_at DESC LIMIT \?`).
		WillReturnRows(rows)

	memos, err := repo.ListByUser(userID, 50)
	require.NoError(t, err)
	require.Len(t, memos, 2)
	assert.Equal(t, "newest", memos[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoRepositoryDeleteByIDAndUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMemoRepository(db)
	userID := uuid.NewString()

	mock.ExpectExec(`DELETE FROM memos WHERE id = \? AND user_id = \?`).
		WithArgs(int64(5), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteByIDAndUser(5, userID))

	// Someone else's memo: zero rows affected, still no error.
	mock.ExpectExec(`DELETE FROM memos WHERE id = \? AND user_id = \?`).
		WithArgs(int64(5), "another-user").
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, repo.DeleteByIDAndUser(5, "another-user"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
