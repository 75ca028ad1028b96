package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/clubnatacion/swimclub-backend/internal/results/domain"
)

const resultsCollection = "results"

type ResultRepository struct {
	client *firestore.Client
}

func NewResultRepository(client *firestore.Client) *ResultRepository {
	return &ResultRepository{client: client}
}

// Create writes one immutable performance record.
func (r *ResultRepository) Create(ctx context.Context, res *domain.Result) error {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	res.CreatedAt = time.Now()

	if _, err := r.client.Collection(resultsCollection).Doc(res.ID).Create(ctx, res); err != nil {
		return fmt.Errorf("create result %s: %w", res.ID, err)
	}
	return nil
}

// ListByAthlete returns an athlete's full history, oldest first.
func (r *ResultRepository) ListByAthlete(ctx context.Context, athleteID string) ([]*domain.Result, error) {
	iter := r.client.Collection(resultsCollection).
		Where("athleteId", "==", athleteID).
		OrderBy("date", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	return collect(iter)
}

// ListByEvent returns every record for one meet.
func (r *ResultRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Result, error) {
	iter := r.client.Collection(resultsCollection).
		Where("eventId", "==", eventID).
		Documents(ctx)
	defer iter.Stop()

	return collect(iter)
}

func collect(iter *firestore.DocumentIterator) ([]*domain.Result, error) {
	var out []*domain.Result
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list results: %w", err)
		}

		var res domain.Result
		if err := snap.DataTo(&res); err != nil {
			return nil, fmt.Errorf("decode result %s: %w", snap.Ref.ID, err)
		}
		res.ID = snap.Ref.ID
		out = append(out, &res)
	}
	return out, nil
}

// AthleteQuery exposes one athlete's history query for live subscriptions.
func (r *ResultRepository) AthleteQuery(athleteID string) firestore.Query {
	return r.client.Collection(resultsCollection).
		Where("athleteId", "==", athleteID).
		OrderBy("date", firestore.Asc)
}
