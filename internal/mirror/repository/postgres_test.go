package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubnatacion/swimclub-backend/internal/mirror/domain"
)

func setupMirrorRepo(t *testing.T) (*MirrorRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewMirrorRepository(db), mock, db
}

func TestMirrorRepository_UpsertAthlete(t *testing.T) {
	repo, mock, db := setupMirrorRepo(t)
	defer db.Close()

	row := &domain.AthleteRow{
		AthleteID: "ath-1",
		Name:      "Josefa Morales",
		BirthDate: "2012-04-03",
		Gender:    "F",
		Status:    "active",
		RUT:       "123456785",
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec(`INSERT INTO athletes_mirror`).
		WithArgs(
			"ath-1",
			"Josefa Morales",
			"2012-04-03",
			"F",
			"active",
			sqlmock.AnyArg(), // rut (nullable)
			sqlmock.AnyArg(), // updated_at
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertAthlete(row))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMirrorRepository_UpsertRollup(t *testing.T) {
	repo, mock, db := setupMirrorRepo(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO attendance_monthly`).
		WithArgs("ath-1", "2025-06", 10, 2, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	roll := &domain.AttendanceRollup{AthleteID: "ath-1", Month: "2025-06", Present: 10, Absent: 2, Justified: 1}
	require.NoError(t, repo.UpsertRollup(roll))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMirrorRepository_LastSync(t *testing.T) {
	repo, mock, db := setupMirrorRepo(t)
	defer db.Close()

	t.Run("returns stored instant", func(t *testing.T) {
		syncedAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT synced_at FROM sync_state`).
			WithArgs("athletes").
			WillReturnRows(sqlmock.NewRows([]string{"synced_at"}).AddRow(syncedAt))

		got, err := repo.LastSync("athletes")
		require.NoError(t, err)
		assert.Equal(t, syncedAt, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns zero time when never synced", func(t *testing.T) {
		mock.ExpectQuery(`SELECT synced_at FROM sync_state`).
			WithArgs("attendance").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.LastSync("attendance")
		require.NoError(t, err)
		assert.True(t, got.IsZero())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMirrorRepository_SetLastSync(t *testing.T) {
	repo, mock, db := setupMirrorRepo(t)
	defer db.Close()

	syncedAt := time.Now()
	mock.ExpectExec(`INSERT INTO sync_state`).
		WithArgs("athletes", syncedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetLastSync("athletes", syncedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}
