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

	"github.com/clubnatacion/swimclub-backend/internal/groups/domain"
)

const groupsCollection = "groups"

type GroupRepository struct {
	client *firestore.Client
}

func NewGroupRepository(client *firestore.Client) *GroupRepository {
	return &GroupRepository{client: client}
}

func (r *GroupRepository) Create(ctx context.Context, g *domain.Group) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.Members == nil {
		g.Members = []string{}
	}
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now

	if _, err := r.client.Collection(groupsCollection).Doc(g.ID).Create(ctx, g); err != nil {
		return fmt.Errorf("create group %s: %w", g.ID, err)
	}
	return nil
}

func (r *GroupRepository) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	snap, err := r.client.Collection(groupsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get group %s: %w", id, err)
	}

	var g domain.Group
	if err := snap.DataTo(&g); err != nil {
		return nil, fmt.Errorf("decode group %s: %w", id, err)
	}
	g.ID = snap.Ref.ID
	return &g, nil
}

// List scans every group; callers build membership and name indexes from it.
func (r *GroupRepository) List(ctx context.Context) ([]*domain.Group, error) {
	iter := r.client.Collection(groupsCollection).OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []*domain.Group
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list groups: %w", err)
		}

		var g domain.Group
		if err := snap.DataTo(&g); err != nil {
			return nil, fmt.Errorf("decode group %s: %w", snap.Ref.ID, err)
		}
		g.ID = snap.Ref.ID
		out = append(out, &g)
	}
	return out, nil
}

// Update merges the given fields.
func (r *GroupRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["updatedAt"] = firestore.ServerTimestamp

	_, err := r.client.Collection(groupsCollection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("update group %s: %w", id, err)
	}
	return nil
}

// RemoveMember drops an athlete id from the member list.
func (r *GroupRepository) RemoveMember(ctx context.Context, groupID, athleteID string) error {
	_, err := r.client.Collection(groupsCollection).Doc(groupID).Update(ctx, []firestore.Update{
		{Path: "members", Value: firestore.ArrayRemove(athleteID)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if status.Code(err) == codes.NotFound {
		return domain.ErrGroupNotFound
	}
	if err != nil {
		return fmt.Errorf("remove member %s from group %s: %w", athleteID, groupID, err)
	}
	return nil
}

// Query exposes the collection query for live subscriptions.
func (r *GroupRepository) Query() firestore.Query {
	return r.client.Collection(groupsCollection).Query.OrderBy("name", firestore.Asc)
}
