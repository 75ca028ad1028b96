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

	"github.com/clubnatacion/swimclub-backend/internal/events/domain"
)

const eventsCollection = "events"

type EventRepository struct {
	client *firestore.Client
}

func NewEventRepository(client *firestore.Client) *EventRepository {
	return &EventRepository{client: client}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := r.client.Collection(eventsCollection).Doc(e.ID).Create(ctx, e); err != nil {
		return fmt.Errorf("create event %s: %w", e.ID, err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	snap, err := r.client.Collection(eventsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", id, err)
	}

	var e domain.Event
	if err := snap.DataTo(&e); err != nil {
		return nil, fmt.Errorf("decode event %s: %w", id, err)
	}
	e.ID = snap.Ref.ID
	return &e, nil
}

// List returns events newest first, optionally only open ones.
func (r *EventRepository) List(ctx context.Context, onlyOpen bool) ([]*domain.Event, error) {
	q := r.client.Collection(eventsCollection).Query
	if onlyOpen {
		q = q.Where("status", "==", string(domain.StatusOpen))
	}
	q = q.OrderBy("date", firestore.Desc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.Event
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}

		var e domain.Event
		if err := snap.DataTo(&e); err != nil {
			return nil, fmt.Errorf("decode event %s: %w", snap.Ref.ID, err)
		}
		e.ID = snap.Ref.ID
		out = append(out, &e)
	}
	return out, nil
}

// SetStatus toggles between abierto and cerrado.
func (r *EventRepository) SetStatus(ctx context.Context, id string, st domain.Status) error {
	_, err := r.client.Collection(eventsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(st)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("set status for event %s: %w", id, err)
	}
	return nil
}

// Query exposes the collection query for live subscriptions.
func (r *EventRepository) Query() firestore.Query {
	return r.client.Collection(eventsCollection).Query.OrderBy("date", firestore.Desc)
}
