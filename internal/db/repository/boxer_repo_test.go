package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringside-labs/boxing-platform/internal/boxer"
)

func newMockRepo(t *testing.T) (*BoxerRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBoxerRepository(db), mock
}

func boxerColumns() []string {
	return []string{"id", "name", "weight", "height", "reach", "age"}
}

func TestBoxerRepositoryCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO boxers`).
		WithArgs("Ace", 170, 71, 74.0, 27).
		WillReturnRows(sqlmock.NewRows(boxerColumns()).AddRow(1, "Ace", 170, 71, 74.0, 27))

	got, err := repo.Create(context.Background(), boxer.NewBoxer{
		Name: "Ace", Weight: 170, Height: 71, Reach: 74.0, Age: 27,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, boxer.ClassMiddleweight, got.WeightClass)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoxerRepositoryCreateDuplicateName(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO boxers`).
		WithArgs("Ace", 170, 71, 74.0, 27).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), boxer.NewBoxer{
		Name: "Ace", Weight: 170, Height: 71, Reach: 74.0, Age: 27,
	})

	assert.ErrorIs(t, err, boxer.ErrDuplicateName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoxerRepositoryGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, name, weight, height, reach, age\s+FROM boxers WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(boxerColumns()).AddRow(2, "Champ", 210, 75, 78.0, 30))

	got, err := repo.GetByID(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, "Champ", got.Name)
	assert.Equal(t, boxer.ClassHeavyweight, got.WeightClass)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoxerRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, name, weight, height, reach, age\s+FROM boxers WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(boxerColumns()))

	_, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, boxer.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoxerRepositoryGetByName(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, name, weight, height, reach, age\s+FROM boxers WHERE name = \$1`).
		WithArgs("Champ").
		WillReturnRows(sqlmock.NewRows(boxerColumns()).AddRow(2, "Champ", 210, 75, 78.0, 30))

	got, err := repo.GetByName(context.Background(), "Champ")

	assert.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoxerRepositoryDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM boxers WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoxerRepositoryDeleteNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM boxers WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), boxer.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoxerRepositoryRecordResult(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE boxers SET fights = fights \+ 1, wins = wins \+ 1 WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE boxers SET fights = fights \+ 1 WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.RecordResult(context.Background(), 1, boxer.ResultWin))
	assert.NoError(t, repo.RecordResult(context.Background(), 2, boxer.ResultLoss))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoxerRepositoryRecordResultRejectsUnknownOutcome(t *testing.T) {
	repo, _ := newMockRepo(t)

	err := repo.RecordResult(context.Background(), 1, boxer.FightResult("draw"))
	assert.ErrorContains(t, err, "invalid result")
}

func TestBoxerRepositoryLeaderboard(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "weight", "height", "reach", "age", "fights", "wins", "win_pct"}).
		AddRow(1, "Champ", 210, 75, 78.0, 30, 4, 3, 0.75).
		AddRow(2, "Contender", 160, 70, 71.0, 26, 3, 1, 1.0/3.0)

	mock.ExpectQuery(`WHERE fights > 0\s+ORDER BY wins DESC`).
		WillReturnRows(rows)

	ranking, err := repo.Leaderboard(context.Background(), SortByWins)

	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, "Champ", ranking[0].Name)
	assert.Equal(t, boxer.ClassHeavyweight, ranking[0].WeightClass)
	assert.InDelta(t, 75.0, ranking[0].WinPct, 0.001)
	assert.InDelta(t, 33.3, ranking[1].WinPct, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoxerRepositoryLeaderboardInvalidSort(t *testing.T) {
	repo, _ := newMockRepo(t)

	_, err := repo.Leaderboard(context.Background(), "height")
	assert.ErrorIs(t, err, ErrInvalidSort)
}
