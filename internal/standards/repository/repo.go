package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"golang.org/x/time/rate"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/clubnatacion/swimclub-backend/internal/standards/domain"
)

const standardsCollection = "qualifyingStandards"

// writeRate bounds bulk-import writes so a large pasted sheet does not
// exhaust the Firestore write quota in one burst.
var writeRate = rate.Limit(20)

type StandardRepository struct {
	client  *firestore.Client
	limiter *rate.Limiter
}

func NewStandardRepository(client *firestore.Client) *StandardRepository {
	return &StandardRepository{
		client:  client,
		limiter: rate.NewLimiter(writeRate, 5),
	}
}

// Upsert writes one standard under its composite id, overwriting any
// previous row for the same season/category/gender/distance/style.
func (r *StandardRepository) Upsert(ctx context.Context, std *domain.QualifyingStandard) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}
	std.UpdatedAt = time.Now()

	if _, err := r.client.Collection(standardsCollection).Doc(std.DocID()).Set(ctx, std); err != nil {
		return fmt.Errorf("upsert standard %s: %w", std.DocID(), err)
	}
	return nil
}

// ListBySeason returns every standard loaded for one season.
func (r *StandardRepository) ListBySeason(ctx context.Context, seasonYear int) ([]*domain.QualifyingStandard, error) {
	iter := r.client.Collection(standardsCollection).
		Where("seasonYear", "==", seasonYear).
		Documents(ctx)
	defer iter.Stop()

	var out []*domain.QualifyingStandard
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list standards: %w", err)
		}

		var std domain.QualifyingStandard
		if err := snap.DataTo(&std); err != nil {
			return nil, fmt.Errorf("decode standard %s: %w", snap.Ref.ID, err)
		}
		out = append(out, &std)
	}
	return out, nil
}

// Get looks up the single standard matching one swim, or nil when the
// season has no row for that combination.
func (r *StandardRepository) Get(ctx context.Context, seasonYear int, category, gender string, distance int, style string) (*domain.QualifyingStandard, error) {
	probe := &domain.QualifyingStandard{
		SeasonYear: seasonYear,
		Category:   category,
		Gender:     gender,
		Distance:   distance,
		Style:      style,
	}

	snap, err := r.client.Collection(standardsCollection).Doc(probe.DocID()).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get standard %s: %w", probe.DocID(), err)
	}

	var std domain.QualifyingStandard
	if err := snap.DataTo(&std); err != nil {
		return nil, fmt.Errorf("decode standard %s: %w", snap.Ref.ID, err)
	}
	return &std, nil
}
