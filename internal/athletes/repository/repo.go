package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/clubnatacion/swimclub-backend/internal/athletes/domain"
)

const (
	athletesCollection = "athletes"
	groupsCollection   = "groups"
)

type AthleteRepository struct {
	client *firestore.Client
}

func NewAthleteRepository(client *firestore.Client) *AthleteRepository {
	return &AthleteRepository{client: client}
}

// Create writes a new athlete document. A missing id is generated.
func (r *AthleteRepository) Create(ctx context.Context, a *domain.Athlete) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := r.client.Collection(athletesCollection).Doc(a.ID).Create(ctx, a); err != nil {
		return fmt.Errorf("create athlete %s: %w", a.ID, err)
	}
	return nil
}

// GetByID retrieves one athlete.
func (r *AthleteRepository) GetByID(ctx context.Context, id string) (*domain.Athlete, error) {
	snap, err := r.client.Collection(athletesCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrAthleteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get athlete %s: %w", id, err)
	}

	var a domain.Athlete
	if err := snap.DataTo(&a); err != nil {
		return nil, fmt.Errorf("decode athlete %s: %w", id, err)
	}
	a.ID = snap.Ref.ID
	return &a, nil
}

// List returns athletes, optionally filtered by lifecycle status server-side.
func (r *AthleteRepository) List(ctx context.Context, st domain.Status) ([]*domain.Athlete, error) {
	q := r.client.Collection(athletesCollection).Query
	if st != "" {
		q = q.Where("status", "==", string(st))
	}
	q = q.OrderBy("name", firestore.Asc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.Athlete
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list athletes: %w", err)
		}

		var a domain.Athlete
		if err := snap.DataTo(&a); err != nil {
			return nil, fmt.Errorf("decode athlete %s: %w", snap.Ref.ID, err)
		}
		a.ID = snap.Ref.ID
		out = append(out, &a)
	}
	return out, nil
}

// Update merges the given fields into an athlete document.
func (r *AthleteRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["updatedAt"] = firestore.ServerTimestamp

	_, err := r.client.Collection(athletesCollection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("update athlete %s: %w", id, err)
	}
	return nil
}

// SetStatus flips the lifecycle status only.
func (r *AthleteRepository) SetStatus(ctx context.Context, id string, st domain.Status) error {
	_, err := r.client.Collection(athletesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(st)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrAthleteNotFound
	}
	if err != nil {
		return fmt.Errorf("set status for athlete %s: %w", id, err)
	}
	return nil
}

// ActivateIntoGroup sets the athlete active and appends its id to the group's
// member list in one transaction, so both land or neither does.
func (r *AthleteRepository) ActivateIntoGroup(ctx context.Context, athleteID, groupID string) error {
	athleteRef := r.client.Collection(athletesCollection).Doc(athleteID)
	groupRef := r.client.Collection(groupsCollection).Doc(groupID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(athleteRef); err != nil {
			return err
		}
		if _, err := tx.Get(groupRef); err != nil {
			return err
		}

		if err := tx.Update(athleteRef, []firestore.Update{
			{Path: "status", Value: string(domain.StatusActive)},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		}); err != nil {
			return err
		}

		return tx.Update(groupRef, []firestore.Update{
			{Path: "members", Value: firestore.ArrayUnion(athleteID)},
		})
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrAthleteNotFound
	}
	if err != nil {
		return fmt.Errorf("activate athlete %s into group %s: %w", athleteID, groupID, err)
	}
	return nil
}

// Query exposes the collection query for live subscriptions.
func (r *AthleteRepository) Query(st domain.Status) firestore.Query {
	q := r.client.Collection(athletesCollection).Query
	if st != "" {
		q = q.Where("status", "==", string(st))
	}
	return q.OrderBy("name", firestore.Asc)
}
