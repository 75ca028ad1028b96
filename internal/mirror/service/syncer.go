package service

import (
	"context"
	"log"
	"time"

	athdomain "github.com/clubnatacion/swimclub-backend/internal/athletes/domain"
	attdomain "github.com/clubnatacion/swimclub-backend/internal/attendance/domain"
	"github.com/clubnatacion/swimclub-backend/internal/meta"
	"github.com/clubnatacion/swimclub-backend/internal/mirror/domain"
)

// StampSource reads last-updated marks for Firestore collections.
type StampSource interface {
	Get(ctx context.Context, collection string) (*meta.Stamp, error)
}

// AthleteSource pulls roster documents.
type AthleteSource interface {
	List(ctx context.Context, st athdomain.Status) ([]*athdomain.Athlete, error)
}

// AttendanceSource pulls attendance deltas and per-athlete histories.
type AttendanceSource interface {
	ListSince(ctx context.Context, since time.Time) ([]*attdomain.Attendance, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]*attdomain.Attendance, error)
}

// MirrorStore is the relational sink plus its sync bookkeeping.
type MirrorStore interface {
	UpsertAthlete(row *domain.AthleteRow) error
	UpsertRollup(roll *domain.AttendanceRollup) error
	LastSync(collection string) (time.Time, error)
	SetLastSync(collection string, syncedAt time.Time) error
}

// Syncer pulls changed collections from Firestore into the Postgres mirror.
// It is driven by the meta stamps: a collection whose stamp is not newer
// than its recorded sync is skipped entirely.
type Syncer struct {
	stamps     StampSource
	athletes   AthleteSource
	attendance AttendanceSource
	store      MirrorStore
}

func NewSyncer(stamps StampSource, athletes AthleteSource, attendance AttendanceSource, store MirrorStore) *Syncer {
	return &Syncer{stamps: stamps, athletes: athletes, attendance: attendance, store: store}
}

// SyncOnce runs one mirror pass over every tracked collection. A failing
// collection is logged and does not block the others.
func (s *Syncer) SyncOnce(ctx context.Context) {
	if err := s.syncAthletes(ctx); err != nil {
		log.Printf("[warn] operation=mirror.sync collection=athletes error=%v", err)
	}
	if err := s.syncAttendance(ctx); err != nil {
		log.Printf("[warn] operation=mirror.sync collection=attendance error=%v", err)
	}
}

// stale reports whether a collection changed since its last mirror pass.
// A missing or unreadable stamp counts as stale so the mirror self-heals.
func (s *Syncer) stale(ctx context.Context, collection string) (bool, time.Time, error) {
	last, err := s.store.LastSync(collection)
	if err != nil {
		return false, time.Time{}, err
	}

	stamp, err := s.stamps.Get(ctx, collection)
	if err != nil {
		log.Printf("[warn] operation=mirror.stamp collection=%s error=%v", collection, err)
		return true, last, nil
	}
	return stamp.UpdatedAt.After(last), last, nil
}

func (s *Syncer) syncAthletes(ctx context.Context) error {
	changed, _, err := s.stale(ctx, "athletes")
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	started := time.Now()

	roster, err := s.athletes.List(ctx, "")
	if err != nil {
		return err
	}

	for _, a := range roster {
		row := &domain.AthleteRow{
			AthleteID: a.ID,
			Name:      a.Name,
			BirthDate: a.BirthDate,
			Gender:    a.Gender,
			Status:    string(a.Status),
			UpdatedAt: a.UpdatedAt,
		}
		if a.RUT != nil {
			row.RUT = *a.RUT
		}
		if err := s.store.UpsertAthlete(row); err != nil {
			return err
		}
	}

	log.Printf("[info] operation=mirror.sync collection=athletes rows=%d", len(roster))
	return s.store.SetLastSync("athletes", started)
}

func (s *Syncer) syncAttendance(ctx context.Context) error {
	changed, last, err := s.stale(ctx, "attendance")
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	started := time.Now()

	delta, err := s.attendance.ListSince(ctx, last)
	if err != nil {
		return err
	}

	// Rollups are whole-month counters, so each affected athlete's history
	// is re-read and recomputed rather than patched from the delta.
	affected := make(map[string]struct{})
	for _, rec := range delta {
		affected[rec.AthleteID] = struct{}{}
	}

	rows := 0
	for athleteID := range affected {
		history, err := s.attendance.ListByAthlete(ctx, athleteID)
		if err != nil {
			return err
		}
		for _, roll := range domain.BuildRollups(history) {
			if err := s.store.UpsertRollup(roll); err != nil {
				return err
			}
			rows++
		}
	}

	log.Printf("[info] operation=mirror.sync collection=attendance athletes=%d rows=%d", len(affected), rows)
	return s.store.SetLastSync("attendance", started)
}
