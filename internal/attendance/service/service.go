package service

import (
	"context"
	"log"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/clubnatacion/swimclub-backend/internal/attendance/domain"
	"github.com/clubnatacion/swimclub-backend/internal/attendance/repository"
	"github.com/clubnatacion/swimclub-backend/internal/meta"
	"github.com/clubnatacion/swimclub-backend/internal/swimtime"
)

// saveParallelism bounds the concurrent upserts of one session save.
const saveParallelism = 8

type AttendanceService struct {
	repo    *repository.AttendanceRepository
	stamper *meta.Stamper
}

func NewAttendanceService(repo *repository.AttendanceRepository, stamper *meta.Stamper) *AttendanceService {
	return &AttendanceService{repo: repo, stamper: stamper}
}

// SaveSession upserts every record of one session in parallel and returns
// the saved count. One failed record is logged and skipped; the rest of the
// session still lands.
func (s *AttendanceService) SaveSession(ctx context.Context, records []*domain.Attendance) (int, error) {
	for _, r := range records {
		if _, err := swimtime.ParseISO(r.Date); err != nil {
			return 0, err
		}
	}

	var saved int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(saveParallelism)

	for _, r := range records {
		g.Go(func() error {
			if err := s.repo.Upsert(gctx, r); err != nil {
				log.Printf("[warn] operation=attendance.save doc=%s error=%v", r.DocID(), err)
				return nil
			}
			atomic.AddInt64(&saved, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(saved), err
	}

	if saved > 0 {
		s.stamper.Touch(ctx, "attendance")
	}
	return int(saved), nil
}

// Session returns a session's records plus its metadata.
func (s *AttendanceService) Session(ctx context.Context, dateISO, groupID string) ([]*domain.Attendance, *domain.SessionMeta, error) {
	if _, err := swimtime.ParseISO(dateISO); err != nil {
		return nil, nil, err
	}

	records, err := s.repo.ListByDateAndGroup(ctx, dateISO, groupID)
	if err != nil {
		return nil, nil, err
	}

	sessionMeta, err := s.repo.GetSessionMeta(ctx, dateISO)
	if err != nil {
		return nil, nil, err
	}

	return records, sessionMeta, nil
}

// AthleteHistory returns one athlete's attendance records.
func (s *AttendanceService) AthleteHistory(ctx context.Context, athleteID string) ([]*domain.Attendance, error) {
	return s.repo.ListByAthlete(ctx, athleteID)
}

// SetSessionMeta upserts the per-date cancelled flag and exceptional groups.
func (s *AttendanceService) SetSessionMeta(ctx context.Context, m *domain.SessionMeta) error {
	if _, err := swimtime.ParseISO(m.Date); err != nil {
		return err
	}

	if err := s.repo.UpsertSessionMeta(ctx, m); err != nil {
		return err
	}
	s.stamper.Touch(ctx, "attendanceMeta")
	return nil
}
