package service

import (
	"context"
	"log"

	"github.com/clubnatacion/swimclub-backend/internal/meta"
	"github.com/clubnatacion/swimclub-backend/internal/standards/domain"
	"github.com/clubnatacion/swimclub-backend/internal/standards/repository"
)

type StandardService struct {
	repo    *repository.StandardRepository
	stamper *meta.Stamper
}

func NewStandardService(repo *repository.StandardRepository, stamper *meta.Stamper) *StandardService {
	return &StandardService{repo: repo, stamper: stamper}
}

// Import parses pasted sheet text and upserts every valid row. Rows that
// fail to parse or to write are counted as skipped; the import never aborts
// on a single bad row.
func (s *StandardService) Import(ctx context.Context, text string, seasonYear int) (*domain.ImportReport, error) {
	rows, skipped := domain.ParseSheet(text, seasonYear)

	imported := 0
	for _, row := range rows {
		if err := s.repo.Upsert(ctx, row); err != nil {
			log.Printf("[warn] operation=standards.import doc=%s error=%v", row.DocID(), err)
			skipped++
			continue
		}
		imported++
	}

	if imported > 0 {
		s.stamper.Touch(ctx, "qualifyingStandards")
	}
	return &domain.ImportReport{Imported: imported, Skipped: skipped}, nil
}

// Season returns every standard loaded for one season.
func (s *StandardService) Season(ctx context.Context, seasonYear int) ([]*domain.QualifyingStandard, error) {
	return s.repo.ListBySeason(ctx, seasonYear)
}

// Evaluation compares one swim against the matching season standard.
type Evaluation struct {
	Standard  *domain.QualifyingStandard `json:"standard"`
	Qualifies *bool                      `json:"qualifies"` // nil: no standard or no minimum mark
}

// Evaluate looks up the standard matching a swim and reports whether the
// given time beats it. A missing standard, or one with no minimum mark,
// yields a nil verdict rather than a failure.
func (s *StandardService) Evaluate(ctx context.Context, seasonYear int, category, gender string, distance int, style string, timeMs int64) (*Evaluation, error) {
	std, err := s.repo.Get(ctx, seasonYear, category, gender, distance, style)
	if err != nil {
		return nil, err
	}
	if std == nil || std.TimeMs == nil {
		return &Evaluation{Standard: std}, nil
	}

	qualifies := timeMs <= *std.TimeMs
	return &Evaluation{Standard: std, Qualifies: &qualifies}, nil
}
