package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/clubnatacion/swimclub-backend/internal/mirror/domain"
)

// MirrorRepository handles the PostgreSQL side of the reporting mirror.
type MirrorRepository struct {
	db *sql.DB
}

func NewMirrorRepository(db *sql.DB) *MirrorRepository {
	return &MirrorRepository{db: db}
}

// EnsureSchema creates the mirror tables when they do not exist yet.
func (r *MirrorRepository) EnsureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS athletes_mirror (
			athlete_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			birth_date TEXT,
			gender TEXT,
			status TEXT,
			rut TEXT,
			updated_at TIMESTAMPTZ,
			synced_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_monthly (
			athlete_id TEXT NOT NULL,
			month TEXT NOT NULL,
			present INT NOT NULL DEFAULT 0,
			absent INT NOT NULL DEFAULT 0,
			justified INT NOT NULL DEFAULT 0,
			synced_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (athlete_id, month)
		)`,
		`CREATE TABLE IF NOT EXISTS sync_state (
			collection TEXT PRIMARY KEY,
			synced_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure mirror schema: %w", err)
		}
	}
	return nil
}

// UpsertAthlete writes one roster row, keyed by athlete id.
func (r *MirrorRepository) UpsertAthlete(row *domain.AthleteRow) error {
	query := `
		INSERT INTO athletes_mirror (
			athlete_id, name, birth_date, gender, status, rut, updated_at, synced_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (athlete_id) DO UPDATE SET
			name = EXCLUDED.name,
			birth_date = EXCLUDED.birth_date,
			gender = EXCLUDED.gender,
			status = EXCLUDED.status,
			rut = EXCLUDED.rut,
			updated_at = EXCLUDED.updated_at,
			synced_at = NOW()
	`

	var rut sql.NullString
	if row.RUT != "" {
		rut = sql.NullString{String: row.RUT, Valid: true}
	}

	_, err := r.db.Exec(query,
		row.AthleteID,
		row.Name,
		row.BirthDate,
		row.Gender,
		row.Status,
		rut,
		row.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert athlete mirror row %s: %w", row.AthleteID, err)
	}
	return nil
}

// UpsertRollup writes one per-month attendance counter row.
func (r *MirrorRepository) UpsertRollup(roll *domain.AttendanceRollup) error {
	query := `
		INSERT INTO attendance_monthly (athlete_id, month, present, absent, justified, synced_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (athlete_id, month) DO UPDATE SET
			present = EXCLUDED.present,
			absent = EXCLUDED.absent,
			justified = EXCLUDED.justified,
			synced_at = NOW()
	`

	_, err := r.db.Exec(query, roll.AthleteID, roll.Month, roll.Present, roll.Absent, roll.Justified)
	if err != nil {
		return fmt.Errorf("upsert rollup %s/%s: %w", roll.AthleteID, roll.Month, err)
	}
	return nil
}

// LastSync returns when a collection was last mirrored, zero when never.
func (r *MirrorRepository) LastSync(collection string) (time.Time, error) {
	var syncedAt time.Time
	err := r.db.QueryRow(`SELECT synced_at FROM sync_state WHERE collection = $1`, collection).
		Scan(&syncedAt)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read sync state for %s: %w", collection, err)
	}
	return syncedAt, nil
}

// SetLastSync records a completed mirror pass for a collection.
func (r *MirrorRepository) SetLastSync(collection string, syncedAt time.Time) error {
	query := `
		INSERT INTO sync_state (collection, synced_at)
		VALUES ($1, $2)
		ON CONFLICT (collection) DO UPDATE SET synced_at = EXCLUDED.synced_at
	`

	if _, err := r.db.Exec(query, collection, syncedAt); err != nil {
		return fmt.Errorf("write sync state for %s: %w", collection, err)
	}
	return nil
}
