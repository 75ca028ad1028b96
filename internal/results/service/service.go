package service

import (
	"context"
	"time"

	"github.com/clubnatacion/swimclub-backend/internal/meta"
	"github.com/clubnatacion/swimclub-backend/internal/results/domain"
	"github.com/clubnatacion/swimclub-backend/internal/results/repository"
	"github.com/clubnatacion/swimclub-backend/internal/swimtime"
)

type ResultService struct {
	repo    *repository.ResultRepository
	stamper *meta.Stamper
}

func NewResultService(repo *repository.ResultRepository, stamper *meta.Stamper) *ResultService {
	return &ResultService{repo: repo, stamper: stamper}
}

// Record validates and stores one performance. The time is parsed once and
// stored in both display and millisecond form.
func (s *ResultService) Record(ctx context.Context, res *domain.Result, timeEntry string) error {
	ms, err := swimtime.ParseDisplay(timeEntry)
	if err != nil {
		return err
	}
	if _, err := swimtime.ParseISO(res.Date); err != nil {
		return err
	}

	res.TimeMs = ms
	res.TimeDisplay = swimtime.FormatMs(ms)

	if err := s.repo.Create(ctx, res); err != nil {
		return err
	}
	s.stamper.Touch(ctx, "results")
	return nil
}

// History returns an athlete's results, optionally narrowed to a (style,
// distance, pool) selection.
func (s *ResultService) History(ctx context.Context, athleteID, style string, distance, poolLength int) ([]*domain.Result, error) {
	results, err := s.repo.ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	return filterSelection(results, style, distance, poolLength), nil
}

// Progress computes aggregate statistics for a selection, optionally with a
// trend projection at targetDate.
func (s *ResultService) Progress(ctx context.Context, athleteID, style string, distance, poolLength int, targetDate *time.Time) (*domain.Progress, error) {
	results, err := s.repo.ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	selection := filterSelection(results, style, distance, poolLength)
	return domain.ComputeProgress(selection, targetDate), nil
}

// EventResults lists every record for a meet.
func (s *ResultService) EventResults(ctx context.Context, eventID string) ([]*domain.Result, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

func filterSelection(results []*domain.Result, style string, distance, poolLength int) []*domain.Result {
	if style == "" && distance == 0 && poolLength == 0 {
		return results
	}

	out := make([]*domain.Result, 0, len(results))
	for _, r := range results {
		if style != "" && r.Style != style {
			continue
		}
		if distance != 0 && r.Distance != distance {
			continue
		}
		if poolLength != 0 && r.PoolLength != poolLength {
			continue
		}
		out = append(out, r)
	}
	return out
}
